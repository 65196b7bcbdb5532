package service

import (
	"Blackout/dao"
	"Blackout/types"
	"context"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	// Toggle 点赞 / 取消点赞
	Toggle(ctx context.Context, userID, postID uint64) (*types.LikeResponse, error)
}

type LikeService struct {
	PostDAO *dao.PostDAO
	LikeDAO *dao.PostLikeDAO
}

func (s *LikeService) Toggle(ctx context.Context, userID, postID uint64) (*types.LikeResponse, error) {
	exist, err := s.PostDAO.IsExist(ctx, "id = ?", postID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, ErrPostNotFound
	}

	liked, err := s.LikeDAO.Toggle(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	count, err := s.LikeDAO.CountByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	return &types.LikeResponse{Liked: liked, LikesCount: count}, nil
}
