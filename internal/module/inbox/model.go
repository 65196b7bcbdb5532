package inbox

import (
	"Blackout/internal/module/account"
	"time"
)

// MessageModel 买卖双方私信
type MessageModel struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SenderID   uint64    `gorm:"column:sender_id;not null;index" json:"sender_id"`
	ReceiverID uint64    `gorm:"column:receiver_id;not null;index:idx_messages_receiver_read,priority:1" json:"receiver_id"`
	ItemID     *uint64   `gorm:"column:item_id" json:"item_id"`
	Subject    string    `gorm:"column:subject;size:200" json:"subject"`
	Message    string    `gorm:"column:message;type:text;not null" json:"message"`
	Phone      string    `gorm:"column:phone;size:20" json:"phone"`
	Email      string    `gorm:"column:email;size:120" json:"email"`
	SentAt     time.Time `gorm:"column:sent_at;autoCreateTime;index" json:"sent_at"`
	IsRead     bool      `gorm:"column:is_read;not null;default:false;index:idx_messages_receiver_read,priority:2" json:"is_read"`

	Sender *account.UserModel `gorm:"foreignKey:SenderID" json:"-"`
}

func (MessageModel) TableName() string {
	return "messages"
}

// conversationRow 会话聚合查询结果
type conversationRow struct {
	OtherUserID     uint64    `gorm:"column:other_user_id"`
	OtherUserName   string    `gorm:"column:other_user_name"`
	LastMessage     string    `gorm:"column:last_message"`
	LastMessageTime time.Time `gorm:"column:last_message_time"`
	UnreadCount     int64     `gorm:"column:unread_count"`
}
