package service

import (
	"Blackout/config"
	"Blackout/dao"
	"Blackout/dao/cache"
	"Blackout/models"
	"Blackout/pkg/encrypt"
	"Blackout/pkg/jwt"
	"Blackout/types"
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Signup(ctx context.Context, req *types.SignupRequest) (*models.Users, error)
	Login(ctx context.Context, req *types.LoginRequest) (*models.Users, error)
	// IssueToken 签发登录 token
	IssueToken(user *models.Users) (string, error)
	// Logout 吊销当前 token
	Logout(ctx context.Context, claims *jwt.Claims) error
}

type AuthService struct {
	Config  *config.Config
	UserDAO *dao.Users
	Tokens  *cache.TokenStorage
}

func (s *AuthService) Signup(ctx context.Context, req *types.SignupRequest) (*models.Users, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, ErrFieldsRequired
	}
	if utf8.RuneCountInString(req.Username) > 20 {
		return nil, ErrUsernameTooLong
	}

	if s.UserDAO.IsUsernameTaken(ctx, req.Username, 0) {
		return nil, ErrUsernameTaken
	}
	if s.UserDAO.IsEmailExist(ctx, req.Email) {
		return nil, ErrEmailRegistered
	}

	hashed, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.Users{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		Phone:    strings.TrimSpace(req.Phone),
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		// 并发注册撞唯一键
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*models.Users, error) {
	user, err := s.UserDAO.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLoginFailed
		}
		return nil, err
	}
	if !encrypt.VerifyPassword(user.Password, req.Password) {
		return nil, ErrLoginFailed
	}
	return user, nil
}

func (s *AuthService) IssueToken(user *models.Users) (string, error) {
	return jwt.GenerateToken([]byte(s.Config.Jwt.Secret), user.ID, user.Username, jwt.TypeAccess, s.Config.Jwt.TTL())
}

func (s *AuthService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if claims == nil {
		return nil
	}
	return s.Tokens.Revoke(ctx, claims.ID, claims.Remaining())
}
