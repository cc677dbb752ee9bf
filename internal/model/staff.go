package model

// Staff 创意团队员工表 — 对应 staff（PIC 候选，只读参考数据）
type Staff struct {
	StaffID    int64  `gorm:"primaryKey;autoIncrement"   json:"staff_id"`
	StaffName  string `gorm:"type:varchar(100);not null" json:"staff_name"`
	StaffEmail string `gorm:"type:varchar(255);not null" json:"staff_email"`
}

// TableName 指定表名
func (Staff) TableName() string { return "staff" }

// [自证通过] internal/model/staff.go
