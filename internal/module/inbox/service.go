package inbox

import (
	"Blackout/dao/cache"
	"Blackout/internal/module/account"
	"Blackout/internal/module/catalog"
	"Blackout/pkg/response"
	"Blackout/pkg/utils"
	"context"
	"net/http"
	"strings"
)

const (
	TimeLayout    = "2006-01-02 15:04"
	previewMaxLen = 50
	subjectPrefix = "Inquiry about: "
)

var (
	ErrEmptyMessage   = response.NewError(http.StatusBadRequest, "Message cannot be empty")
	ErrSelfMessage    = response.NewError(http.StatusBadRequest, "You cannot message yourself")
	ErrContactOwnItem = response.NewError(http.StatusBadRequest, "You cannot contact yourself about your own item")
)

// Service 接口
type Service interface {
	Conversations(ctx context.Context, userID uint64) ([]*Conversation, error)
	Thread(ctx context.Context, userID, otherID uint64) ([]*ThreadMessage, error)
	MarkConversationRead(ctx context.Context, userID, otherID uint64) error
	MarkRead(ctx context.Context, id, userID uint64) error
	Send(ctx context.Context, senderID, receiverID uint64, text string) (*MessageModel, error)
	// ContactSeller 给商品卖家发咨询并通知卖家
	ContactSeller(ctx context.Context, buyerID, itemID uint64, req *ContactSellerRequest) (*MessageModel, error)
	// UnreadTotal 未读总数，优先读缓存
	UnreadTotal(ctx context.Context, userID uint64) (int, error)
}

// service 实现
type service struct {
	repo     Repository
	accounts account.Service
	items    catalog.Service
	unread   *cache.UnreadStorage
	notifier Notifier
}

// NewService 构造函数
func NewService(repo Repository, accounts account.Service, items catalog.Service, unread *cache.UnreadStorage, notifier Notifier) Service {
	return &service{repo: repo, accounts: accounts, items: items, unread: unread, notifier: notifier}
}

func (s *service) Conversations(ctx context.Context, userID uint64) ([]*Conversation, error) {
	rows, err := s.repo.Conversations(ctx, userID)
	if err != nil {
		return nil, err
	}

	list := make([]*Conversation, 0, len(rows))
	for _, row := range rows {
		list = append(list, &Conversation{
			ID:              row.OtherUserID,
			OtherUserName:   row.OtherUserName,
			LastMessage:     utils.Truncate(row.LastMessage, previewMaxLen),
			LastMessageTime: row.LastMessageTime.Format(TimeLayout),
			UnreadCount:     row.UnreadCount,
		})
	}
	return list, nil
}

func (s *service) Thread(ctx context.Context, userID, otherID uint64) ([]*ThreadMessage, error) {
	msgs, err := s.repo.Thread(ctx, userID, otherID)
	if err != nil {
		return nil, err
	}

	list := make([]*ThreadMessage, 0, len(msgs))
	for _, m := range msgs {
		item := &ThreadMessage{
			ID:       m.ID,
			SenderID: m.SenderID,
			Message:  m.Message,
			SentAt:   m.SentAt.Format(TimeLayout),
			IsRead:   m.IsRead,
		}
		if m.Sender != nil {
			item.SenderName = m.Sender.Name
		}
		list = append(list, item)
	}
	return list, nil
}

func (s *service) MarkConversationRead(ctx context.Context, userID, otherID uint64) error {
	if _, err := s.repo.MarkConversationRead(ctx, userID, otherID); err != nil {
		return err
	}
	s.unread.Invalidate(ctx, userID)
	return nil
}

func (s *service) MarkRead(ctx context.Context, id, userID uint64) error {
	n, err := s.repo.MarkRead(ctx, id, userID)
	if err != nil {
		return err
	}
	if n > 0 {
		s.unread.Invalidate(ctx, userID)
	}
	return nil
}

func (s *service) Send(ctx context.Context, senderID, receiverID uint64, text string) (*MessageModel, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}
	if senderID == receiverID {
		return nil, ErrSelfMessage
	}
	if _, err := s.accounts.GetUser(ctx, receiverID); err != nil {
		return nil, err
	}

	m := &MessageModel{SenderID: senderID, ReceiverID: receiverID, Message: text}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	s.unread.Invalidate(ctx, receiverID)
	return m, nil
}

func (s *service) ContactSeller(ctx context.Context, buyerID, itemID uint64, req *ContactSellerRequest) (*MessageModel, error) {
	item, err := s.items.Get(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrEmptyMessage
	}
	if item.UserID == buyerID {
		return nil, ErrContactOwnItem
	}

	buyer, err := s.accounts.GetUser(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	seller := item.Seller
	if seller == nil {
		if seller, err = s.accounts.GetUser(ctx, item.UserID); err != nil {
			return nil, err
		}
	}

	phone := strings.TrimSpace(req.Phone)
	m := &MessageModel{
		SenderID:   buyerID,
		ReceiverID: item.UserID,
		ItemID:     &item.ID,
		Subject:    subjectPrefix + item.Title,
		Message:    req.Message,
		Phone:      phone,
		Email:      buyer.Email,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	s.unread.Invalidate(ctx, item.UserID)

	s.notifier.Notify(ctx, &Inquiry{
		SellerName:  seller.Name,
		SellerEmail: seller.Email,
		BuyerName:   buyer.Name,
		BuyerEmail:  buyer.Email,
		Phone:       phone,
		ItemTitle:   item.Title,
		Message:     req.Message,
	})
	return m, nil
}

func (s *service) UnreadTotal(ctx context.Context, userID uint64) (int, error) {
	if counts, ok := s.unread.Get(ctx, userID); ok {
		return s.unread.Total(counts), nil
	}

	// 版本号必须在读库之前取
	ver, verErr := s.unread.Version(ctx, userID)
	counts, err := s.repo.UnreadBySender(ctx, userID)
	if err != nil {
		return 0, err
	}
	if verErr == nil {
		s.unread.Set(ctx, userID, ver, counts)
	}
	return s.unread.Total(counts), nil
}
