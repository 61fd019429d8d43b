package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SmartDriveSchool/SmartDriveSchool/internal/common/auth"
	"github.com/SmartDriveSchool/SmartDriveSchool/internal/common/config"
	"github.com/SmartDriveSchool/SmartDriveSchool/internal/common/latency"
	"github.com/SmartDriveSchool/SmartDriveSchool/internal/common/logger"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
)

var (
	// ErrInvalidCredentials 登录时 email+password 无匹配。
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken 注册时 email 已被占用。
	ErrEmailTaken = errors.New("email already registered")
)

// 各操作的模拟网络时延（固定）。
const (
	loginDelay  = 300 * time.Millisecond
	signupDelay = 300 * time.Millisecond
	forgotDelay = 400 * time.Millisecond
)

// Service 认证服务：在单个会话槽位之上实现
// anonymous --login/signup--> authenticated --logout--> anonymous。
type Service struct {
	repo    *Repo
	authCfg config.AuthConfig
	log     logger.Logger
}

func NewService(repo *Repo, authCfg config.AuthConfig, log logger.Logger) *Service {
	return &Service{repo: repo, authCfg: authCfg, log: log}
}

// LoginResult 登录/注册的返回值。AccessToken 仅在令牌签发开启时非空，
// 会话快照始终以 session 槽位为准。
type LoginResult struct {
	User        *User
	AccessToken string
	ExpiresAt   time.Time
}

// SignupInput 注册入参；Role 为空时默认 student。
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

// ForgotAck 找回口令请求的确认回执（纯桩，不做任何投递）。
type ForgotAck struct {
	Sent bool `json:"sent"`
}

// Login 校验口令并写入会话快照；无匹配时返回 ErrInvalidCredentials，
// 此时已有会话保持不变。
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	span, ctx := startSpan(ctx, "auth.Login")
	defer span.Finish()

	if err := latency.Wait(ctx, loginDelay); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil || !VerifyPassword(password, u.PasswordSalt, u.PasswordHash) {
		if s.log != nil {
			s.log.WithField("email", email).Debug("login rejected")
		}
		return nil, ErrInvalidCredentials
	}

	if err := s.repo.SaveSession(ctx, u); err != nil {
		return nil, err
	}
	if s.log != nil {
		s.log.WithFields(map[string]interface{}{"user": u.ID, "role": u.Role}).Info("login ok")
	}
	return s.result(u)
}

// Signup 注册新账号并直接建立会话；email 已占用时返回 ErrEmailTaken，
// 且不改动 users 集合。
func (s *Service) Signup(ctx context.Context, in SignupInput) (*LoginResult, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	span, ctx := startSpan(ctx, "auth.Signup")
	defer span.Finish()

	if err := latency.Wait(ctx, signupDelay); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, fmt.Errorf("email/password required")
	}
	role := in.Role
	if role == "" {
		role = RoleStudent
	}
	if !role.valid() {
		return nil, fmt.Errorf("unknown role: %s", role)
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	salt, err := GenerateSaltHex()
	if err != nil {
		return nil, err
	}
	hash, err := HashPassword(in.Password, salt)
	if err != nil {
		return nil, err
	}

	u := &User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		Role:         role,
		PasswordHash: hash,
		PasswordSalt: salt,
	}
	if err := s.repo.Append(ctx, u); err != nil {
		return nil, err
	}
	if err := s.repo.SaveSession(ctx, u); err != nil {
		return nil, err
	}
	if s.log != nil {
		s.log.WithFields(map[string]interface{}{"user": u.ID, "role": u.Role}).Info("signup ok")
	}
	return s.result(u)
}

// Current 同步读取当前会话；无会话时返回 nil。
func (s *Service) Current(ctx context.Context) (*User, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	return s.repo.CurrentSession(ctx)
}

// Logout 同步清除会话槽位。
func (s *Service) Logout(ctx context.Context) error {
	if s == nil || s.repo == nil {
		return fmt.Errorf("service not initialized")
	}
	return s.repo.ClearSession(ctx)
}

// Forgot 模拟找回口令：不校验 email 是否存在，只确认请求被受理。
func (s *Service) Forgot(ctx context.Context, email string) (*ForgotAck, error) {
	if s == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	span, ctx := startSpan(ctx, "auth.Forgot")
	defer span.Finish()

	if err := latency.Wait(ctx, forgotDelay); err != nil {
		return nil, err
	}
	if s.log != nil {
		s.log.WithField("email", email).Debug("password reset requested")
	}
	return &ForgotAck{Sent: true}, nil
}

func (s *Service) result(u *User) (*LoginResult, error) {
	res := &LoginResult{User: u}
	if s.authCfg.Enabled {
		token, exp, err := auth.GenerateAccessToken(s.authCfg, u.ID, string(u.Role))
		if err != nil {
			return nil, err
		}
		res.AccessToken = token
		res.ExpiresAt = exp
	}
	return res, nil
}

func startSpan(ctx context.Context, operation string) (opentracing.Span, context.Context) {
	span, ctx := opentracing.StartSpanFromContext(ctx, operation)
	ext.Component.Set(span, "localstore")
	return span, ctx
}
