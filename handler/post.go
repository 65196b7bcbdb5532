package handler

import (
	"Blackout/config"
	"Blackout/dao/cache"
	"Blackout/middleware"
	"Blackout/pkg/context"
	"Blackout/pkg/response"
	"Blackout/service"
	"Blackout/types"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Post struct {
	Config         *config.Config
	Tokens         *cache.TokenStorage
	PostService    service.IPostService
	LikeService    service.ILikeService
	CommentService service.ICommentService
}

func (p *Post) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(p.Config.Jwt, p.Tokens)
	r.GET("/create_post", authorize, context.WrapPage(p.CreatePage))
	r.POST("/create_post", authorize, context.WrapPage(p.Create))
	r.GET("/post/:id", authorize, context.WrapPage(p.Detail))
	r.POST("/delete_post/:id", authorize, context.WrapPage(p.Delete))
	r.GET("/p/:code", authorize, context.WrapPage(p.ShortLink))

	r.POST("/like/:id", authorize, context.Wrap(p.Like))
	r.POST("/comment/:id", authorize, context.Wrap(p.Comment))
}

func (p *Post) CreatePage(c *gin.Context) error {
	context.Render(c, http.StatusOK, "create_post.html", gin.H{"Title": "New post"})
	return nil
}

// Create 发布帖子
func (p *Post) Create(c *gin.Context) error {
	var req types.CreatePostRequest
	_ = c.ShouldBind(&req)
	image, _ := c.FormFile("image")

	_, err := p.PostService.Create(c.Request.Context(), context.MustUserID(c), &req, image)
	if err != nil {
		return context.FormError(c, "create_post.html", gin.H{"Title": "New post"}, err)
	}

	context.RedirectWithFlash(c, "/", response.FlashSuccess, "Post created successfully!")
	return nil
}

func (p *Post) Detail(c *gin.Context) error {
	postID, err := context.ParseID(c, "id")
	if err != nil {
		return err
	}

	detail, err := p.PostService.Detail(c.Request.Context(), context.MustUserID(c), postID)
	if err != nil {
		return err
	}
	context.Render(c, http.StatusOK, "post_detail.html", gin.H{"Title": "Post", "Detail": detail})
	return nil
}

// Delete 删除自己的帖子
func (p *Post) Delete(c *gin.Context) error {
	postID, err := context.ParseID(c, "id")
	if err != nil {
		return err
	}

	if err := p.PostService.Delete(c.Request.Context(), context.MustUserID(c), postID); err != nil {
		return err
	}
	context.RedirectWithFlash(c, fmt.Sprintf("/profile/%s", context.GetUserName(c)), response.FlashSuccess, "Post deleted.")
	return nil
}

// ShortLink 短链跳转到帖子详情
func (p *Post) ShortLink(c *gin.Context) error {
	postID, err := p.PostService.DecodeShortCode(c.Param("code"))
	if err != nil {
		return err
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", postID))
	return nil
}

// Like 点赞 / 取消点赞
func (p *Post) Like(c *gin.Context) error {
	postID, err := context.ParseID(c, "id")
	if err != nil {
		return err
	}

	res, err := p.LikeService.Toggle(c.Request.Context(), context.MustUserID(c), postID)
	if err != nil {
		return err
	}
	response.Success(c, res)
	return nil
}

// Comment 发表评论，表单字段 comment
func (p *Post) Comment(c *gin.Context) error {
	postID, err := context.ParseID(c, "id")
	if err != nil {
		return err
	}

	item, err := p.CommentService.Add(c.Request.Context(), context.MustUserID(c), postID, c.PostForm("comment"))
	if err != nil {
		return err
	}
	response.Success(c, &types.CommentResponse{Success: true, Comment: item})
	return nil
}
