package service

import (
	"Blackout/config"
	"Blackout/dao"
	"Blackout/models"
	"Blackout/pkg/log"
	"Blackout/pkg/upload"
	"Blackout/pkg/utils"
	"Blackout/types"
	"context"
	"errors"
	"mime/multipart"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	// Feed 自己和关注的人的帖子
	Feed(ctx context.Context, userID uint64) ([]*types.PostView, error)
	// Explore 全部帖子
	Explore(ctx context.Context, userID uint64) ([]*types.PostView, error)
	Create(ctx context.Context, userID uint64, req *types.CreatePostRequest, image *multipart.FileHeader) (*models.Post, error)
	Detail(ctx context.Context, userID, postID uint64) (*types.PostDetail, error)
	// Delete 仅作者可删，连带点赞与评论
	Delete(ctx context.Context, userID, postID uint64) error
	// DecodeShortCode 短链还原帖子ID
	DecodeShortCode(code string) (uint64, error)
}

type PostService struct {
	Config     *config.Config
	PostDAO    *dao.PostDAO
	LikeDAO    *dao.PostLikeDAO
	CommentDAO *dao.CommentDAO
	Uploader   *upload.Uploader
}

func (s *PostService) Feed(ctx context.Context, userID uint64) ([]*types.PostView, error) {
	posts, err := s.PostDAO.Feed(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.buildViews(ctx, userID, posts)
}

func (s *PostService) Explore(ctx context.Context, userID uint64) ([]*types.PostView, error) {
	posts, err := s.PostDAO.Explore(ctx)
	if err != nil {
		return nil, err
	}
	return s.buildViews(ctx, userID, posts)
}

func (s *PostService) Create(ctx context.Context, userID uint64, req *types.CreatePostRequest, image *multipart.FileHeader) (*models.Post, error) {
	description := strings.TrimSpace(req.Description)
	priceRaw := strings.TrimSpace(req.Price)
	if image == nil || image.Filename == "" || description == "" || priceRaw == "" {
		return nil, ErrFieldsRequired
	}
	price, err := strconv.ParseInt(priceRaw, 10, 64)
	if err != nil || price < 0 {
		return nil, ErrInvalidPrice
	}

	filename, err := s.Uploader.SaveImage(ctx, s.Config.Upload.PostDir, image)
	if err != nil {
		return nil, imageError(err)
	}

	post := &models.Post{
		Image:       filename,
		Description: description,
		Price:       price,
		UserID:      userID,
	}
	if err := s.PostDAO.Create(ctx, post); err != nil {
		s.removeImage(ctx, filename)
		return nil, err
	}
	return post, nil
}

func (s *PostService) Detail(ctx context.Context, userID, postID uint64) (*types.PostDetail, error) {
	post, err := s.PostDAO.FindWithAuthor(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	views, err := s.buildViews(ctx, userID, []*models.Post{post})
	if err != nil {
		return nil, err
	}
	comments, err := s.CommentDAO.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	return &types.PostDetail{
		Post:     views[0],
		Comments: comments,
		IsOwner:  post.UserID == userID,
	}, nil
}

func (s *PostService) Delete(ctx context.Context, userID, postID uint64) error {
	post, err := s.PostDAO.FindById(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	if post.UserID != userID {
		return ErrNotPostOwner
	}

	if err := s.PostDAO.DeleteWithChildren(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	s.removeImage(ctx, post.Image)
	return nil
}

func (s *PostService) ShortCode(postID uint64) string {
	return utils.GenHashID(s.Config.Hashids.Salt, s.Config.Hashids.MinLength, postID)
}

func (s *PostService) DecodeShortCode(code string) (uint64, error) {
	id, err := utils.DecodeHashID(s.Config.Hashids.Salt, s.Config.Hashids.MinLength, code)
	if err != nil {
		return 0, ErrPostNotFound
	}
	return id, nil
}

// removeImage 删除失败只记日志
func (s *PostService) removeImage(ctx context.Context, filename string) {
	if err := s.Uploader.Remove(ctx, s.Config.Upload.PostDir, filename); err != nil {
		log.L.Warn("remove post image", zap.String("image", filename), zap.Error(err))
	}
}

// buildViews 批量补齐点赞数、评论数、当前用户是否已赞
func (s *PostService) buildViews(ctx context.Context, userID uint64, posts []*models.Post) ([]*types.PostView, error) {
	ids := make([]uint64, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}

	likes, err := s.LikeDAO.CountByPosts(ctx, ids)
	if err != nil {
		return nil, err
	}
	comments, err := s.CommentDAO.CountByPosts(ctx, ids)
	if err != nil {
		return nil, err
	}
	liked, err := s.LikeDAO.LikedPosts(ctx, userID, ids)
	if err != nil {
		return nil, err
	}

	views := make([]*types.PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, &types.PostView{
			Post:          p,
			LikesCount:    likes[p.ID],
			CommentsCount: comments[p.ID],
			Liked:         liked[p.ID],
			ShortCode:     s.ShortCode(p.ID),
		})
	}
	return views, nil
}
