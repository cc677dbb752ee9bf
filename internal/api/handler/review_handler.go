package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/pascal-arya/creative-request-hub/internal/dto"
	"github.com/pascal-arya/creative-request-hub/internal/service"
	"github.com/pascal-arya/creative-request-hub/pkg/response"
)

// ReviewHandler 管理员审核模块 HTTP 处理器
type ReviewHandler struct {
	reviewSvc service.ReviewService
}

// NewReviewHandler 创建 ReviewHandler
func NewReviewHandler(reviewSvc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewSvc: reviewSvc}
}

// Queue 审核队列
// GET /api/v1/admin/requests?view=review|delivery
func (h *ReviewHandler) Queue(c *gin.Context) {
	var req dto.ReviewQueueRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	view := req.View
	if view == "" {
		view = service.ViewReview
	}

	result, err := h.reviewSvc.Queue(c.Request.Context(), view)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": result})
}

// Accept 接受申请
// POST /api/v1/admin/requests/:id/accept
func (h *ReviewHandler) Accept(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "申请ID不能为空")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.reviewSvc.Accept(c.Request.Context(), id, callerID)
	if err != nil {
		h.handleReviewError(c, err)
		return
	}

	response.OK(c, result)
}

// Reject 拒绝申请
// POST /api/v1/admin/requests/:id/reject
func (h *ReviewHandler) Reject(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "申请ID不能为空")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.reviewSvc.Reject(c.Request.Context(), id, callerID)
	if err != nil {
		h.handleReviewError(c, err)
		return
	}

	response.OK(c, result)
}

// Negotiate 发起协商（备注必填）
// POST /api/v1/admin/requests/:id/negotiate
func (h *ReviewHandler) Negotiate(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "申请ID不能为空")
		return
	}

	var req dto.NegotiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.reviewSvc.Negotiate(c.Request.Context(), id, req.Notes, callerID)
	if err != nil {
		h.handleReviewError(c, err)
		return
	}

	response.OK(c, result)
}

// AssignPIC 指派负责人
// PUT /api/v1/admin/requests/:id/pic
func (h *ReviewHandler) AssignPIC(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "申请ID不能为空")
		return
	}

	var req dto.AssignPICRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.reviewSvc.AssignPIC(c.Request.Context(), id, req.StaffID, callerID)
	if err != nil {
		h.handleReviewError(c, err)
		return
	}

	response.OK(c, result)
}

// Deliver 交付成品（写入成品链接）
// POST /api/v1/admin/requests/:id/deliver
func (h *ReviewHandler) Deliver(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "申请ID不能为空")
		return
	}

	var req dto.DeliverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.reviewSvc.Deliver(c.Request.Context(), id, req.ReceivableLink, callerID)
	if err != nil {
		h.handleReviewError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *ReviewHandler) handleReviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRequestNotFound):
		response.NotFound(c, 13001, "创意申请不存在")
	case errors.Is(err, service.ErrIllegalTransition):
		response.BadRequest(c, 14001, "非法的状态迁移")
	case errors.Is(err, service.ErrNotesRequired):
		response.BadRequest(c, 14002, "协商备注不能为空")
	case errors.Is(err, service.ErrAlreadyDelivered):
		response.BadRequest(c, 14003, "申请已交付，不可重复操作")
	case errors.Is(err, service.ErrLinkRequired):
		response.BadRequest(c, 14004, "成品链接不能为空")
	case errors.Is(err, service.ErrStaffNotFound):
		response.NotFound(c, 14005, "员工不存在")
	case errors.Is(err, service.ErrPICOnRejected):
		response.BadRequest(c, 14006, "已拒绝的申请不可指派负责人")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/review_handler.go
