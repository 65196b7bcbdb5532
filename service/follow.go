package service

import (
	"Blackout/dao"
	"Blackout/types"
	"context"
	"errors"

	"gorm.io/gorm"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	// Toggle 关注 / 取消关注
	Toggle(ctx context.Context, followerID uint64, username string) (*types.FollowResponse, error)
}

type FollowService struct {
	FollowDAO *dao.UserFollowDAO
	UserDAO   *dao.Users
}

func (s *FollowService) Toggle(ctx context.Context, followerID uint64, username string) (*types.FollowResponse, error) {
	// 校验被关注用户是否存在
	target, err := s.UserDAO.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// 不能关注自己
	if target.ID == followerID {
		return nil, ErrSelfFollow
	}

	following, err := s.FollowDAO.Toggle(ctx, followerID, target.ID)
	if err != nil {
		return nil, err
	}
	count, err := s.FollowDAO.FollowerCount(ctx, target.ID)
	if err != nil {
		return nil, err
	}

	return &types.FollowResponse{Following: following, FollowersCount: count}, nil
}
