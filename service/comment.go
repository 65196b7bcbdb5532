package service

import (
	"Blackout/dao"
	"Blackout/models"
	"Blackout/types"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

const TimeLayout = "2006-01-02 15:04"

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	Add(ctx context.Context, userID, postID uint64, text string) (*types.CommentItem, error)
}

type CommentService struct {
	PostDAO    *dao.PostDAO
	CommentDAO *dao.CommentDAO
	UserDAO    *dao.Users
}

func (s *CommentService) Add(ctx context.Context, userID, postID uint64, text string) (*types.CommentItem, error) {
	exist, err := s.PostDAO.IsExist(ctx, "id = ?", postID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, ErrPostNotFound
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyComment
	}

	user, err := s.UserDAO.FindById(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	comment := &models.Comment{Text: text, UserID: userID, PostID: postID}
	if err := s.CommentDAO.Create(ctx, comment); err != nil {
		return nil, err
	}

	return &types.CommentItem{
		ID:        comment.ID,
		Text:      comment.Text,
		Username:  user.Username,
		CreatedAt: comment.CreatedAt.Format(TimeLayout),
	}, nil
}
