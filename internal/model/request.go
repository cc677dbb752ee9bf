package model

import "time"

// ── 申请状态机 ──

// RequestStatus 创意申请状态
type RequestStatus string

const (
	StatusNew         RequestStatus = "New"         // 新提交，待管理员审核
	StatusNegotiation RequestStatus = "Negotiation" // 管理员要求修改，待申请人响应
	StatusAccepted    RequestStatus = "Accepted"    // 已接受（交付完成与否由 receivable_link 派生）
	StatusRejected    RequestStatus = "Rejected"    // 已拒绝，终态
)

// statusTransitions 合法状态迁移表
// Accepted / Rejected 为终态；"已交付"不是独立状态，
// 而是 Accepted + 非空 receivable_link 的派生子状态
var statusTransitions = map[RequestStatus][]RequestStatus{
	StatusNew:         {StatusAccepted, StatusRejected, StatusNegotiation},
	StatusNegotiation: {StatusAccepted, StatusRejected, StatusNegotiation}, // 允许反复协商
	StatusAccepted:    {},
	StatusRejected:    {},
}

// Valid 状态值是否在枚举域内
func (s RequestStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransitionTo 当前状态能否迁移到目标状态
func (s RequestStatus) CanTransitionTo(target RequestStatus) bool {
	for _, t := range statusTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Reviewable 是否属于"待审核"集合（管理员 Review 页签）
func (s RequestStatus) Reviewable() bool {
	return s == StatusNew || s == StatusNegotiation
}

// Editable 申请人是否仍可编辑简报字段
func (s RequestStatus) Editable() bool {
	return s == StatusNew || s == StatusNegotiation
}

// ── 创意申请 ──

// CreativeRequest 创意申请表 — 对应 creative_requests
type CreativeRequest struct {
	RequestID         string        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"request_id"`
	ApplicantName     string        `gorm:"type:varchar(100);not null"                     json:"applicant_name"`
	ApplicantDivision string        `gorm:"type:varchar(100);not null"                     json:"applicant_division"`
	ClientEmail       string        `gorm:"type:varchar(255);not null"                     json:"client_email"`
	ProjectTitle      string        `gorm:"type:varchar(200);not null"                     json:"project_title"`
	ProjectType       string        `gorm:"type:varchar(50);not null"                      json:"project_type"`
	BriefLink         string        `gorm:"type:varchar(500);not null;default:''"          json:"brief_link,omitempty"`
	RequestedDeadline time.Time     `gorm:"type:date;not null"                             json:"requested_deadline"`
	Status            RequestStatus `gorm:"type:varchar(20);not null;default:'New'"        json:"status"`
	NegotiationNotes  string        `gorm:"type:varchar(500);not null;default:''"          json:"negotiation_notes,omitempty"`
	PICID             *int64        `gorm:"column:pic_id"                                  json:"pic_id,omitempty"`
	ReceivableLink    string        `gorm:"type:varchar(500);not null;default:''"          json:"receivable_link,omitempty"`
	BaseModel

	// 关联
	PIC *Staff `gorm:"foreignKey:PICID;references:StaffID" json:"pic,omitempty"`
}

// TableName 指定表名
func (CreativeRequest) TableName() string { return "creative_requests" }

// Delivered 是否已交付（Accepted + 非空成品链接的派生子状态）
func (r *CreativeRequest) Delivered() bool {
	return r.Status == StatusAccepted && r.ReceivableLink != ""
}

// AwaitingDelivery 是否属于"待交付"集合（管理员 Delivery 页签）
func (r *CreativeRequest) AwaitingDelivery() bool {
	return r.Status == StatusAccepted && r.ReceivableLink == ""
}

// [自证通过] internal/model/request.go
