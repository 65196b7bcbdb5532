package handler

import (
	"Blackout/config"
	"Blackout/dao/cache"
	"Blackout/middleware"
	"Blackout/pkg/context"
	"Blackout/pkg/log"
	"Blackout/pkg/response"
	"Blackout/service"
	"Blackout/types"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type User struct {
	Config        *config.Config
	Tokens        *cache.TokenStorage
	UserService   service.IUserService
	FollowService service.IFollowService
	AuthService   service.IAuthService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(u.Config.Jwt, u.Tokens)
	r.GET("/profile/:username", authorize, context.WrapPage(u.Profile))
	r.GET("/edit_profile", authorize, context.WrapPage(u.EditPage))
	r.POST("/edit_profile", authorize, context.WrapPage(u.Edit))

	r.POST("/follow/:username", authorize, context.Wrap(u.Follow))
}

// Profile 个人主页
func (u *User) Profile(c *gin.Context) error {
	view, err := u.UserService.Profile(c.Request.Context(), context.MustUserID(c), c.Param("username"))
	if err != nil {
		return err
	}
	context.Render(c, http.StatusOK, "profile.html", gin.H{"Title": view.User.Username, "Profile": view})
	return nil
}

// Follow 关注 / 取消关注
func (u *User) Follow(c *gin.Context) error {
	res, err := u.FollowService.Toggle(c.Request.Context(), context.MustUserID(c), c.Param("username"))
	if err != nil {
		return err
	}
	response.Success(c, res)
	return nil
}

func (u *User) EditPage(c *gin.Context) error {
	user, err := u.UserService.GetUser(c.Request.Context(), context.MustUserID(c))
	if err != nil {
		return err
	}
	context.Render(c, http.StatusOK, "edit_profile.html", gin.H{"Title": "Edit profile", "User": user})
	return nil
}

// Edit 修改资料，用户名变化时重新签发 token
func (u *User) Edit(c *gin.Context) error {
	ctx := c.Request.Context()
	uid := context.MustUserID(c)

	var req types.EditProfileRequest
	_ = c.ShouldBind(&req)
	pic, _ := c.FormFile("profile_pic")

	user, err := u.UserService.UpdateProfile(ctx, uid, &req, pic)
	if err != nil {
		current, gerr := u.UserService.GetUser(ctx, uid)
		if gerr != nil {
			return gerr
		}
		return context.FormError(c, "edit_profile.html", gin.H{"Title": "Edit profile", "User": current}, err)
	}

	if user.Username != context.GetUserName(c) {
		token, err := u.AuthService.IssueToken(user)
		if err != nil {
			return err
		}
		claims, _ := middleware.GetClaims(c)
		if err := u.AuthService.Logout(ctx, claims); err != nil {
			log.L.Warn("revoke token", zap.Error(err))
		}
		context.SetAuthCookie(c, u.Config.Jwt, token)
	}

	context.RedirectWithFlash(c, fmt.Sprintf("/profile/%s", url.PathEscape(user.Username)), response.FlashSuccess, "Profile updated successfully!")
	return nil
}
