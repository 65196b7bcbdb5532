package cart

import (
	"Blackout/internal/module/catalog"
	"context"
)

// Service 接口
type Service interface {
	Add(ctx context.Context, userID, itemID uint64) error
	Remove(ctx context.Context, userID, itemID uint64) error
	// View 购物车明细，total = Σ price × quantity
	View(ctx context.Context, userID uint64) (*View, error)
}

// service 实现
type service struct {
	repo  Repository
	items catalog.Service
}

// NewService 构造函数
func NewService(repo Repository, items catalog.Service) Service {
	return &service{repo: repo, items: items}
}

func (s *service) Add(ctx context.Context, userID, itemID uint64) error {
	if _, err := s.items.Get(ctx, itemID); err != nil {
		return err
	}
	return s.repo.Add(ctx, userID, itemID)
}

func (s *service) Remove(ctx context.Context, userID, itemID uint64) error {
	return s.repo.Remove(ctx, userID, itemID)
}

func (s *service) View(ctx context.Context, userID uint64) (*View, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &View{Lines: make([]*Line, 0, len(rows))}
	for _, row := range rows {
		if row.Item == nil {
			continue
		}
		subtotal := row.Item.Price * float64(row.Quantity)
		view.Lines = append(view.Lines, &Line{Item: row.Item, Quantity: row.Quantity, Subtotal: subtotal})
		view.Total += subtotal
	}
	return view, nil
}
