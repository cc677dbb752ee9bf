package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/pascal-arya/creative-request-hub/config"
	"github.com/pascal-arya/creative-request-hub/internal/dto"
	"github.com/pascal-arya/creative-request-hub/internal/model"
	"github.com/pascal-arya/creative-request-hub/internal/repository"
	"github.com/pascal-arya/creative-request-hub/pkg/jwt"
)

// ── 测试辅助 ──

func setupTestAuthService() (AuthService, *mockUserRepo, *mockAdminRepo) {
	userRepo := newMockUserRepo()
	adminRepo := newMockAdminRepo()
	repo := &repository.Repository{
		User:        userRepo,
		Admin:       adminRepo,
		Request:     newMockRequestRepo(),
		ProjectType: newMockProjectTypeRepo(),
		Staff:       newMockStaffRepo(),
	}

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:               "test-secret-key-at-least-16",
			AccessTokenTTL:          15 * time.Minute,
			RefreshTokenTTLDefault:  24 * time.Hour,
			RefreshTokenTTLRemember: 7 * 24 * time.Hour,
		},
	}
	jwtMgr := jwt.NewManager(&cfg.Auth)
	logger := zap.NewNop()

	// rdb 为 nil：黑名单与限流降级为无操作
	svc := NewAuthService(cfg, repo, jwtMgr, nil, logger)
	return svc, userRepo, adminRepo
}

func seedUser(userRepo *mockUserRepo, id, email, password string) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	u := &model.User{
		UserID:       id,
		Name:         "Andi",
		Division:     "Marketing",
		Email:        email,
		PasswordHash: string(hash),
	}
	userRepo.users[id] = u
	return u
}

// ── Register 测试 ──

func TestAuthService_Register_Success(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	result, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Andi",
		Division: "Marketing",
		Email:    "andi@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register 应成功: %v", err)
	}
	if result.Email != "andi@example.com" {
		t.Errorf("期望Email=andi@example.com，实际=%s", result.Email)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, userRepo, _ := setupTestAuthService()
	seedUser(userRepo, "user-001", "andi@example.com", "password123")

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Andi2",
		Division: "Finance",
		Email:    "andi@example.com",
		Password: "password456",
	})
	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("期望 ErrEmailExists，实际: %v", err)
	}
}

// ── Login 测试 ──

func TestAuthService_Login_Success(t *testing.T) {
	svc, userRepo, _ := setupTestAuthService()
	seedUser(userRepo, "user-001", "andi@example.com", "password123")

	result, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "andi@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Error("应返回 Token 对")
	}
	if result.User.IsAdmin {
		t.Error("非管理员用户 is_admin 应为 false")
	}
}

func TestAuthService_Login_AdminRole(t *testing.T) {
	svc, userRepo, adminRepo := setupTestAuthService()
	seedUser(userRepo, "user-001", "admin@example.com", "password123")
	adminRepo.admins["user-001"] = true

	result, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}
	if !result.User.IsAdmin {
		t.Error("admins 表成员 is_admin 应为 true")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, userRepo, _ := setupTestAuthService()
	seedUser(userRepo, "user-001", "andi@example.com", "password123")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "andi@example.com",
		Password: "wrong-password",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

// ── RefreshToken 测试 ──

func TestAuthService_RefreshToken_Success(t *testing.T) {
	svc, userRepo, _ := setupTestAuthService()
	seedUser(userRepo, "user-001", "andi@example.com", "password123")

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "andi@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}

	result, err := svc.RefreshToken(context.Background(), login.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken 应成功: %v", err)
	}
	if result.AccessToken == "" {
		t.Error("刷新应返回新的 Access Token")
	}
}

func TestAuthService_RefreshToken_RoleRecomputed(t *testing.T) {
	svc, userRepo, adminRepo := setupTestAuthService()
	seedUser(userRepo, "user-001", "andi@example.com", "password123")

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "andi@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}
	if login.User.IsAdmin {
		t.Fatal("登录时不应为管理员")
	}

	// 登录后被加入 admins 表，刷新时角色重新计算
	adminRepo.admins["user-001"] = true

	result, err := svc.RefreshToken(context.Background(), login.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken 应成功: %v", err)
	}
	if !result.User.IsAdmin {
		t.Error("刷新后角色应重新计算为管理员")
	}
}

func TestAuthService_RefreshToken_AccessTokenRejected(t *testing.T) {
	svc, userRepo, _ := setupTestAuthService()
	seedUser(userRepo, "user-001", "andi@example.com", "password123")

	login, _ := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "andi@example.com",
		Password: "password123",
	})

	// 拿 access token 换新应被拒绝
	_, err := svc.RefreshToken(context.Background(), login.AccessToken)
	if !errors.Is(err, ErrRefreshTokenInvalid) {
		t.Errorf("期望 ErrRefreshTokenInvalid，实际: %v", err)
	}
}

func TestAuthService_RefreshToken_Garbage(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	_, err := svc.RefreshToken(context.Background(), "not-a-token")
	if !errors.Is(err, ErrRefreshTokenInvalid) {
		t.Errorf("期望 ErrRefreshTokenInvalid，实际: %v", err)
	}
}

// ── GetCurrentUser 测试 ──

func TestAuthService_GetCurrentUser_Success(t *testing.T) {
	svc, userRepo, _ := setupTestAuthService()
	seedUser(userRepo, "user-001", "andi@example.com", "password123")

	result, err := svc.GetCurrentUser(context.Background(), "user-001")
	if err != nil {
		t.Fatalf("GetCurrentUser 应成功: %v", err)
	}
	if result.Email != "andi@example.com" {
		t.Errorf("期望Email=andi@example.com，实际=%s", result.Email)
	}
}

func TestAuthService_GetCurrentUser_NotFound(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	_, err := svc.GetCurrentUser(context.Background(), "nonexistent")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际: %v", err)
	}
}

// ── Logout 测试 ──

func TestAuthService_Logout_NoRedis(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	// Redis 未配置时登出降级为无操作
	if err := svc.Logout(context.Background(), "jti-001", time.Now().Add(time.Minute), ""); err != nil {
		t.Errorf("无 Redis 时 Logout 应降级成功: %v", err)
	}
}
