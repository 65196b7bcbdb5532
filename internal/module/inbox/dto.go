package inbox

type Conversation struct {
	ID              uint64 `json:"id"`
	OtherUserName   string `json:"other_user_name"`
	LastMessage     string `json:"last_message"`
	LastMessageTime string `json:"last_message_time"`
	UnreadCount     int64  `json:"unread_count"`
}

type ConversationsResponse struct {
	Conversations []*Conversation `json:"conversations"`
}

type ThreadMessage struct {
	ID         uint64 `json:"id"`
	SenderID   uint64 `json:"sender_id"`
	SenderName string `json:"sender_name"`
	Message    string `json:"message"`
	SentAt     string `json:"sent_at"`
	IsRead     bool   `json:"is_read"`
}

type ThreadResponse struct {
	Messages []*ThreadMessage `json:"messages"`
}

type SendMessageRequest struct {
	Message string `json:"message"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type UnreadResponse struct {
	Unread int `json:"unread"`
}

type ContactSellerRequest struct {
	Message string `form:"message"`
	Phone   string `form:"phone"`
}

// Inquiry 卖家咨询通知，经 MQ 投递时序列化为 JSON
type Inquiry struct {
	SellerName  string `json:"seller_name"`
	SellerEmail string `json:"seller_email"`
	BuyerName   string `json:"buyer_name"`
	BuyerEmail  string `json:"buyer_email"`
	Phone       string `json:"phone,omitempty"`
	ItemTitle   string `json:"item_title"`
	Message     string `json:"message"`
}
