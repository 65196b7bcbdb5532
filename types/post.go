package types

import "Blackout/models"

type CreatePostRequest struct {
	Description string `form:"description"`
	// Price 整数 KES，表单原样接收后再解析
	Price string `form:"price"`
}

// PostView 帖子及其派生计数
type PostView struct {
	*models.Post
	LikesCount    int64
	CommentsCount int64
	Liked         bool
	ShortCode     string
}

type PostDetail struct {
	Post     *PostView
	Comments []*models.Comment
	IsOwner  bool
}

type LikeResponse struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}

type CommentItem struct {
	ID        uint64 `json:"id"`
	Text      string `json:"text"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

type CommentResponse struct {
	Success bool         `json:"success"`
	Comment *CommentItem `json:"comment"`
}
