package account

import (
	"Blackout/config"
	"Blackout/dao/cache"
	"Blackout/pkg/encrypt"
	"Blackout/pkg/jwt"
	"Blackout/pkg/response"
	"context"
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound    = response.NewError(http.StatusNotFound, "User not found")
	ErrFieldsRequired  = response.NewError(http.StatusBadRequest, "All fields are required")
	ErrEmailRegistered = response.NewError(http.StatusBadRequest, "Email already registered")
	ErrLoginFailed     = response.NewError(http.StatusUnauthorized, "Login failed. Check email and password")
)

// Service 接口
type Service interface {
	GetUser(ctx context.Context, id uint64) (*UserModel, error)
	Signup(ctx context.Context, req *SignupRequest) (*UserModel, error)
	Login(ctx context.Context, req *LoginRequest) (*UserModel, error)
	IssueToken(u *UserModel) (string, error)
	Logout(ctx context.Context, claims *jwt.Claims) error
}

// service 实现
type service struct {
	conf   *config.Config
	repo   Repository
	tokens *cache.TokenStorage
}

// NewService 构造函数
func NewService(conf *config.Config, repo Repository, tokens *cache.TokenStorage) Service {
	return &service{conf: conf, repo: repo, tokens: tokens}
}

func (s *service) GetUser(ctx context.Context, id uint64) (*UserModel, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *service) Signup(ctx context.Context, req *SignupRequest) (*UserModel, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" || req.Password == "" {
		return nil, ErrFieldsRequired
	}

	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailRegistered
	}

	hashed, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	u := &UserModel{Name: name, Email: email, Password: hashed, Phone: strings.TrimSpace(req.Phone)}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailRegistered
		}
		return nil, err
	}
	return u, nil
}

func (s *service) Login(ctx context.Context, req *LoginRequest) (*UserModel, error) {
	u, err := s.repo.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLoginFailed
		}
		return nil, err
	}
	if !encrypt.VerifyPassword(u.Password, req.Password) {
		return nil, ErrLoginFailed
	}
	return u, nil
}

func (s *service) IssueToken(u *UserModel) (string, error) {
	return jwt.GenerateToken([]byte(s.conf.Jwt.Secret), u.ID, u.Name, jwt.TypeAccess, s.conf.Jwt.TTL())
}

func (s *service) Logout(ctx context.Context, claims *jwt.Claims) error {
	if claims == nil {
		return nil
	}
	return s.tokens.Revoke(ctx, claims.ID, claims.Remaining())
}
