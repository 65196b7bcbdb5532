package inbox

import (
	"context"

	"gorm.io/gorm"
)

// 每个对方用户一行：对方ID、最后一条消息、对方发给我的未读数
const conversationsSQL = `
SELECT c.other_user_id, u.name AS other_user_name,
	m.message AS last_message, m.sent_at AS last_message_time,
	(SELECT COUNT(*) FROM messages r
		WHERE r.sender_id = c.other_user_id AND r.receiver_id = ? AND r.is_read = ?) AS unread_count
FROM (
	SELECT CASE WHEN sender_id = ? THEN receiver_id ELSE sender_id END AS other_user_id,
		MAX(id) AS last_id
	FROM messages
	WHERE sender_id = ? OR receiver_id = ?
	GROUP BY CASE WHEN sender_id = ? THEN receiver_id ELSE sender_id END
) c
JOIN messages m ON m.id = c.last_id
JOIN users u ON u.id = c.other_user_id
ORDER BY m.sent_at DESC, m.id DESC`

// Repository 接口定义
type Repository interface {
	Create(ctx context.Context, m *MessageModel) error
	FindByID(ctx context.Context, id uint64) (*MessageModel, error)
	Conversations(ctx context.Context, userID uint64) ([]*conversationRow, error)
	// Thread 双方往来消息，按发送时间正序
	Thread(ctx context.Context, userID, otherID uint64) ([]*MessageModel, error)
	// MarkConversationRead 对方发给我的未读消息全部置为已读
	MarkConversationRead(ctx context.Context, userID, otherID uint64) (int64, error)
	// MarkRead 仅收件人可标记
	MarkRead(ctx context.Context, id, receiverID uint64) (int64, error)
	// UnreadBySender 我的未读数，按发送人分组
	UnreadBySender(ctx context.Context, userID uint64) (map[uint64]int, error)
}

// repository 具体实现
type repository struct {
	db *gorm.DB
}

// NewRepository 构造函数
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *MessageModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) FindByID(ctx context.Context, id uint64) (*MessageModel, error) {
	var m MessageModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) Conversations(ctx context.Context, userID uint64) ([]*conversationRow, error) {
	var rows []*conversationRow
	err := r.db.WithContext(ctx).
		Raw(conversationsSQL, userID, false, userID, userID, userID, userID).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) Thread(ctx context.Context, userID, otherID uint64) ([]*MessageModel, error) {
	var msgs []*MessageModel
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", userID, otherID, otherID, userID).
		Order("sent_at ASC, id ASC").
		Find(&msgs).Error
	return msgs, err
}

func (r *repository) MarkConversationRead(ctx context.Context, userID, otherID uint64) (int64, error) {
	res := r.db.WithContext(ctx).Model(&MessageModel{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = ?", otherID, userID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (r *repository) MarkRead(ctx context.Context, id, receiverID uint64) (int64, error) {
	res := r.db.WithContext(ctx).Model(&MessageModel{}).
		Where("id = ? AND receiver_id = ? AND is_read = ?", id, receiverID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (r *repository) UnreadBySender(ctx context.Context, userID uint64) (map[uint64]int, error) {
	var rows []struct {
		SenderID uint64
		Total    int
	}
	err := r.db.WithContext(ctx).Model(&MessageModel{}).
		Select("sender_id, COUNT(*) AS total").
		Where("receiver_id = ? AND is_read = ?", userID, false).
		Group("sender_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make(map[uint64]int, len(rows))
	for _, row := range rows {
		res[row.SenderID] = row.Total
	}
	return res, nil
}
