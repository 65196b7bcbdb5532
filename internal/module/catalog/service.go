package catalog

import (
	"Blackout/config"
	"Blackout/internal/module/account"
	"Blackout/pkg/log"
	"Blackout/pkg/response"
	"Blackout/pkg/upload"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrItemNotFound   = response.NewError(http.StatusNotFound, "Item not found")
	ErrFieldsRequired = response.NewError(http.StatusBadRequest, "All fields are required")
	ErrInvalidPrice   = response.NewError(http.StatusBadRequest, "Price must be a number")
	ErrInvalidImage   = response.NewError(http.StatusBadRequest, "Invalid image file")
	ErrImageTooLarge  = response.NewError(http.StatusRequestEntityTooLarge, "File too large")
)

// Service 接口
type Service interface {
	List(ctx context.Context, search string) ([]*ItemModel, error)
	Get(ctx context.Context, id uint64) (*ItemModel, error)
	// Add 发布商品，图片可选
	Add(ctx context.Context, userID uint64, req *AddItemRequest, image *multipart.FileHeader) (*ItemModel, error)
	Dashboard(ctx context.Context, userID uint64) ([]*ItemModel, error)
	// Seed 商品表为空时写入示例商品
	Seed(ctx context.Context) error
}

// service 实现
type service struct {
	conf     *config.Config
	repo     Repository
	accounts account.Repository
	uploader *upload.Uploader
}

// NewService 构造函数
func NewService(conf *config.Config, repo Repository, accounts account.Repository, uploader *upload.Uploader) Service {
	return &service{conf: conf, repo: repo, accounts: accounts, uploader: uploader}
}

func (s *service) List(ctx context.Context, search string) ([]*ItemModel, error) {
	return s.repo.List(ctx, strings.TrimSpace(search))
}

func (s *service) Get(ctx context.Context, id uint64) (*ItemModel, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *service) Add(ctx context.Context, userID uint64, req *AddItemRequest, image *multipart.FileHeader) (*ItemModel, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	category := strings.TrimSpace(req.Category)
	priceRaw := strings.TrimSpace(req.Price)
	if title == "" || description == "" || category == "" || priceRaw == "" {
		return nil, ErrFieldsRequired
	}
	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil || price < 0 {
		return nil, ErrInvalidPrice
	}

	item := &ItemModel{
		Title:       title,
		Description: description,
		Price:       price,
		Category:    category,
		UserID:      userID,
	}

	if image != nil && image.Filename != "" {
		filename, err := s.uploader.SaveImage(ctx, s.conf.Upload.PostDir, image)
		switch {
		case errors.Is(err, upload.ErrInvalidImage):
			return nil, ErrInvalidImage
		case errors.Is(err, upload.ErrImageTooLarge):
			return nil, ErrImageTooLarge
		case err != nil:
			return nil, err
		}
		item.Image = filename
	}

	if err := s.repo.Create(ctx, item); err != nil {
		if item.Image != "" {
			_ = s.uploader.Remove(ctx, s.conf.Upload.PostDir, item.Image)
		}
		return nil, err
	}
	return item, nil
}

func (s *service) Dashboard(ctx context.Context, userID uint64) ([]*ItemModel, error) {
	return s.repo.ListBySeller(ctx, userID)
}

func (s *service) Seed(ctx context.Context) error {
	n, err := s.repo.Count(ctx)
	if err != nil || n > 0 {
		return err
	}

	seller, err := s.accounts.SystemSeller(ctx)
	if err != nil {
		return err
	}

	items := make([]*ItemModel, 0, len(sampleItems))
	for _, sample := range sampleItems {
		item := sample
		item.UserID = seller.ID
		items = append(items, &item)
	}
	if err := s.repo.Create(ctx, items...); err != nil {
		return err
	}
	log.L.Info("seed sample items", zap.Int("count", len(items)), zap.Uint64("seller_id", seller.ID))
	return nil
}
