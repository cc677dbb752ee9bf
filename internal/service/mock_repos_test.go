package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/pascal-arya/creative-request-hub/internal/model"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = fmt.Sprintf("user-%d", len(m.users)+1)
	}
	user.CreatedAt = time.Now()
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock AdminRepository ──

type mockAdminRepo struct {
	admins map[string]bool
}

func newMockAdminRepo() *mockAdminRepo {
	return &mockAdminRepo{admins: make(map[string]bool)}
}

func (m *mockAdminRepo) Exists(_ context.Context, userID string) (bool, error) {
	return m.admins[userID], nil
}

// ── Mock RequestRepository ──

type mockRequestRepo struct {
	requests  map[string]*model.CreativeRequest
	idCounter int
}

func newMockRequestRepo() *mockRequestRepo {
	return &mockRequestRepo{requests: make(map[string]*model.CreativeRequest)}
}

func (m *mockRequestRepo) Create(_ context.Context, req *model.CreativeRequest) error {
	if req.RequestID == "" {
		m.idCounter++
		req.RequestID = fmt.Sprintf("req-%d", m.idCounter)
	}
	req.CreatedAt = time.Now()
	req.UpdatedAt = time.Now()
	m.requests[req.RequestID] = req
	return nil
}

func (m *mockRequestRepo) GetByID(_ context.Context, id string) (*model.CreativeRequest, error) {
	if r, ok := m.requests[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRequestRepo) ListAll(_ context.Context) ([]model.CreativeRequest, error) {
	var result []model.CreativeRequest
	for _, r := range m.requests {
		result = append(result, *r)
	}
	sortByCreatedDesc(result)
	return result, nil
}

func (m *mockRequestRepo) ListByOwner(_ context.Context, ownerID string) ([]model.CreativeRequest, error) {
	var result []model.CreativeRequest
	for _, r := range m.requests {
		if r.CreatedBy != nil && *r.CreatedBy == ownerID {
			result = append(result, *r)
		}
	}
	sortByCreatedDesc(result)
	return result, nil
}

func (m *mockRequestRepo) ListByStatuses(_ context.Context, statuses []model.RequestStatus) ([]model.CreativeRequest, error) {
	var result []model.CreativeRequest
	for _, r := range m.requests {
		for _, s := range statuses {
			if r.Status == s {
				result = append(result, *r)
				break
			}
		}
	}
	sortByCreatedDesc(result)
	return result, nil
}

func (m *mockRequestRepo) ListAwaitingDelivery(_ context.Context) ([]model.CreativeRequest, error) {
	var result []model.CreativeRequest
	for _, r := range m.requests {
		if r.Status == model.StatusAccepted && r.ReceivableLink == "" {
			result = append(result, *r)
		}
	}
	sortByCreatedDesc(result)
	return result, nil
}

func (m *mockRequestRepo) UpdateFields(_ context.Context, id string, fields map[string]interface{}) error {
	r, ok := m.requests[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for k, v := range fields {
		switch k {
		case "status":
			r.Status = v.(model.RequestStatus)
		case "negotiation_notes":
			r.NegotiationNotes = v.(string)
		case "receivable_link":
			r.ReceivableLink = v.(string)
		case "pic_id":
			picID := v.(int64)
			r.PICID = &picID
		case "applicant_name":
			r.ApplicantName = v.(string)
		case "applicant_division":
			r.ApplicantDivision = v.(string)
		case "client_email":
			r.ClientEmail = v.(string)
		case "project_title":
			r.ProjectTitle = v.(string)
		case "project_type":
			r.ProjectType = v.(string)
		case "brief_link":
			r.BriefLink = v.(string)
		case "requested_deadline":
			r.RequestedDeadline = v.(time.Time)
		case "updated_by":
			by := v.(string)
			r.UpdatedBy = &by
		}
	}
	r.UpdatedAt = time.Now()
	return nil
}

func sortByCreatedDesc(reqs []model.CreativeRequest) {
	sort.Slice(reqs, func(i, j int) bool {
		return reqs[i].CreatedAt.After(reqs[j].CreatedAt)
	})
}

// ── Mock ProjectTypeRepository ──

type mockProjectTypeRepo struct {
	types map[string]*model.ProjectType
}

func newMockProjectTypeRepo() *mockProjectTypeRepo {
	return &mockProjectTypeRepo{types: map[string]*model.ProjectType{
		"Social Post":  {TypeName: "Social Post", Description: "社交媒体帖子", WorkDuration: 2},
		"Event Banner": {TypeName: "Event Banner", Description: "活动横幅", WorkDuration: 4},
		"Video Edit":   {TypeName: "Video Edit", Description: "视频剪辑", WorkDuration: 5},
	}}
}

func (m *mockProjectTypeRepo) List(_ context.Context) ([]model.ProjectType, error) {
	var result []model.ProjectType
	for _, t := range m.types {
		result = append(result, *t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].TypeName < result[j].TypeName })
	return result, nil
}

func (m *mockProjectTypeRepo) GetByName(_ context.Context, name string) (*model.ProjectType, error) {
	if t, ok := m.types[name]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock StaffRepository ──

type mockStaffRepo struct {
	staff map[int64]*model.Staff
}

func newMockStaffRepo() *mockStaffRepo {
	return &mockStaffRepo{staff: map[int64]*model.Staff{
		1: {StaffID: 1, StaffName: "Dian", StaffEmail: "dian@example.com"},
		2: {StaffID: 2, StaffName: "Rizky", StaffEmail: "rizky@example.com"},
	}}
}

func (m *mockStaffRepo) List(_ context.Context) ([]model.Staff, error) {
	var result []model.Staff
	for _, s := range m.staff {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StaffName < result[j].StaffName })
	return result, nil
}

func (m *mockStaffRepo) GetByID(_ context.Context, id int64) (*model.Staff, error) {
	if s, ok := m.staff[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}
