package dto

// ── 创意申请模块 DTO ──

// SubmitRequestRequest 提交创意申请请求
// Consent 为规章同意勾选框：bool 的 required 校验要求非零值，即必须为 true
type SubmitRequestRequest struct {
	ApplicantName     string `json:"applicant_name"     binding:"required,max=100"`
	ApplicantDivision string `json:"applicant_division" binding:"required,max=100"`
	ClientEmail       string `json:"client_email"       binding:"required,email"`
	ProjectTitle      string `json:"project_title"      binding:"required,max=200"`
	ProjectType       string `json:"project_type"       binding:"required,max=50"`
	BriefLink         string `json:"brief_link"         binding:"omitempty,url,max=500"`
	RequestedDeadline string `json:"requested_deadline" binding:"required,datetime=2006-01-02"`
	Consent           bool   `json:"consent"            binding:"required"`
}

// UpdateRequestRequest 编辑创意申请请求（仅简报字段，状态为 New/Negotiation 时可用）
type UpdateRequestRequest struct {
	ApplicantName     string `json:"applicant_name"     binding:"required,max=100"`
	ApplicantDivision string `json:"applicant_division" binding:"required,max=100"`
	ClientEmail       string `json:"client_email"       binding:"required,email"`
	ProjectTitle      string `json:"project_title"      binding:"required,max=200"`
	ProjectType       string `json:"project_type"       binding:"required,max=50"`
	BriefLink         string `json:"brief_link"         binding:"omitempty,url,max=500"`
	RequestedDeadline string `json:"requested_deadline" binding:"required,datetime=2006-01-02"`
	Consent           bool   `json:"consent"            binding:"required"`
}

// RequestListRequest 申请列表查询参数
// all=true 时返回全部申请（仅管理员），否则仅返回调用者本人的申请
type RequestListRequest struct {
	All bool `form:"all"`
}

// ── 申请列表可执行操作 ──
// 由状态与成品链接派生，对应跟踪页的操作列

const (
	ActionEdit       = "edit"       // New / Negotiation：可编辑
	ActionCollect    = "collect"    // Accepted + 成品链接：可领取成品
	ActionProcessing = "processing" // 其余：等待处理
)

// RequestResponse 创意申请响应
type RequestResponse struct {
	ID                string         `json:"id"`
	ApplicantName     string         `json:"applicant_name"`
	ApplicantDivision string         `json:"applicant_division"`
	ClientEmail       string         `json:"client_email"`
	ProjectTitle      string         `json:"project_title"`
	ProjectType       string         `json:"project_type"`
	BriefLink         string         `json:"brief_link,omitempty"`
	RequestedDeadline string         `json:"requested_deadline"`
	Status            string         `json:"status"`
	NegotiationNotes  string         `json:"negotiation_notes,omitempty"`
	ReceivableLink    string         `json:"receivable_link,omitempty"`
	PIC               *StaffResponse `json:"pic,omitempty"`
	Delivered         bool           `json:"delivered"`
	Action            string         `json:"action"`
	CreatedAt         string         `json:"created_at"`
	UpdatedAt         string         `json:"updated_at"`
}

// [自证通过] internal/dto/request.go
