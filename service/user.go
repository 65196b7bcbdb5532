package service

import (
	"Blackout/config"
	"Blackout/dao"
	"Blackout/models"
	"Blackout/pkg/log"
	"Blackout/pkg/upload"
	"Blackout/types"
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	GetUser(ctx context.Context, userID uint64) (*models.Users, error)
	// Profile 个人主页，viewerID 为当前登录用户
	Profile(ctx context.Context, viewerID uint64, username string) (*types.ProfileView, error)
	// UpdateProfile 修改用户名、简介、手机号和头像
	UpdateProfile(ctx context.Context, userID uint64, req *types.EditProfileRequest, pic *multipart.FileHeader) (*models.Users, error)
}

type UserService struct {
	Config    *config.Config
	UserDAO   *dao.Users
	FollowDAO *dao.UserFollowDAO
	PostDAO   *dao.PostDAO
	Posts     *PostService
	Uploader  *upload.Uploader
}

func (s *UserService) GetUser(ctx context.Context, userID uint64) (*models.Users, error) {
	user, err := s.UserDAO.FindById(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Profile(ctx context.Context, viewerID uint64, username string) (*types.ProfileView, error) {
	user, err := s.UserDAO.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	posts, err := s.PostDAO.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	views, err := s.Posts.buildViews(ctx, viewerID, posts)
	if err != nil {
		return nil, err
	}

	followers, err := s.FollowDAO.FollowerCount(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.FollowDAO.FollowingCount(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	isFollowing, err := s.FollowDAO.IsFollowing(ctx, viewerID, user.ID)
	if err != nil {
		return nil, err
	}

	return &types.ProfileView{
		User:           user,
		Posts:          views,
		FollowersCount: followers,
		FollowingCount: following,
		IsFollowing:    isFollowing,
		IsOwnProfile:   viewerID == user.ID,
	}, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint64, req *types.EditProfileRequest, pic *multipart.FileHeader) (*models.Users, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		username = user.Username
	}
	if utf8.RuneCountInString(username) > 20 {
		return nil, ErrUsernameTooLong
	}
	if username != user.Username && s.UserDAO.IsUsernameTaken(ctx, username, userID) {
		return nil, ErrUsernameTaken
	}

	updates := map[string]any{
		"username": username,
		"bio":      strings.TrimSpace(req.Bio),
		"phone":    strings.TrimSpace(req.Phone),
	}

	oldPic := user.ProfilePic
	if pic != nil && pic.Filename != "" {
		filename, err := s.Uploader.SaveImage(ctx, s.Config.Upload.ProfileDir, pic)
		if err != nil {
			return nil, imageError(err)
		}
		updates["profile_pic"] = filename
	}

	if err := s.UserDAO.Update(ctx, userID, updates); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	if newPic, ok := updates["profile_pic"].(string); ok && oldPic != "" && oldPic != models.DefaultProfilePic {
		if err := s.Uploader.Remove(ctx, s.Config.Upload.ProfileDir, oldPic); err != nil {
			log.L.Warn("remove old profile pic", zap.String("pic", oldPic), zap.String("new", newPic), zap.Error(err))
		}
	}

	return s.GetUser(ctx, userID)
}
