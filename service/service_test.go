package service

import (
	"Blackout/config"
	"Blackout/dao"
	"Blackout/dao/cache"
	"Blackout/models"
	"Blackout/pkg/database"
	"Blackout/pkg/encrypt"
	"Blackout/pkg/jwt"
	"Blackout/pkg/upload"
	"Blackout/types"
	"bytes"
	"context"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type suite struct {
	db      *gorm.DB
	conf    *config.Config
	root    string
	auth    *AuthService
	users   *UserService
	posts   *PostService
	likes   *LikeService
	follows *FollowService
	comment *CommentService
}

func newSuite(t *testing.T) *suite {
	t.Helper()
	encrypt.Cost = bcrypt.MinCost

	db, err := database.OpenMemory(models.All()...)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	root := t.TempDir()
	conf := &config.Config{
		Jwt:     &config.Jwt{Secret: "test", ExpiresIn: 3600, CookieName: "token"},
		Upload:  &config.Upload{Root: root, PostDir: "uploads", ProfileDir: "profile_pics", MaxSize: 1 << 20},
		Hashids: &config.Hashids{Salt: "test", MinLength: 8},
	}
	uploader := &upload.Uploader{Storage: upload.NewLocalStorage(root, "/static"), MaxSize: conf.Upload.MaxSize}

	userDAO := dao.NewUsers(db)
	postDAO := dao.NewPostDAO(db)
	likeDAO := dao.NewPostLikeDAO(db)
	commentDAO := dao.NewCommentDAO(db)
	followDAO := dao.NewUserFollowDAO(db)

	posts := &PostService{Config: conf, PostDAO: postDAO, LikeDAO: likeDAO, CommentDAO: commentDAO, Uploader: uploader}
	return &suite{
		db:      db,
		conf:    conf,
		root:    root,
		auth:    &AuthService{Config: conf, UserDAO: userDAO, Tokens: cache.NewTokenStorage(rds)},
		users:   &UserService{Config: conf, UserDAO: userDAO, FollowDAO: followDAO, PostDAO: postDAO, Posts: posts, Uploader: uploader},
		posts:   posts,
		likes:   &LikeService{PostDAO: postDAO, LikeDAO: likeDAO},
		follows: &FollowService{FollowDAO: followDAO, UserDAO: userDAO},
		comment: &CommentService{PostDAO: postDAO, CommentDAO: commentDAO, UserDAO: userDAO},
	}
}

func (s *suite) signup(t *testing.T, name string) *models.Users {
	t.Helper()
	u, err := s.auth.Signup(context.Background(), &types.SignupRequest{Username: name, Email: name + "@example.com", Password: "secret"})
	require.NoError(t, err)
	return u
}

func imageHeader(t *testing.T, filename string) *multipart.FileHeader {
	t.Helper()
	var img bytes.Buffer
	require.NoError(t, png.Encode(&img, image.NewRGBA(image.Rect(0, 0, 2, 2))))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write(img.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["image"][0]
}

func (s *suite) post(t *testing.T, owner *models.Users) *models.Post {
	t.Helper()
	p, err := s.posts.Create(context.Background(), owner.ID, &types.CreatePostRequest{Description: "bike", Price: "2500"}, imageHeader(t, "bike.png"))
	require.NoError(t, err)
	return p
}

func TestSignup_Duplicates(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	s.signup(t, "alice")

	_, err := s.auth.Signup(ctx, &types.SignupRequest{Username: "alice", Email: "other@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = s.auth.Signup(ctx, &types.SignupRequest{Username: "alice2", Email: "alice@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrEmailRegistered)

	_, err = s.auth.Signup(ctx, &types.SignupRequest{Username: "", Email: "a@b.c", Password: "x"})
	assert.ErrorIs(t, err, ErrFieldsRequired)

	var n int64
	s.db.Model(&models.Users{}).Count(&n)
	assert.Equal(t, int64(1), n)
}

func TestLogin(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	alice := s.signup(t, "alice")

	u, err := s.auth.Login(ctx, &types.LoginRequest{Email: "alice@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, u.ID)

	_, err = s.auth.Login(ctx, &types.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrLoginFailed)

	_, err = s.auth.Login(ctx, &types.LoginRequest{Email: "nobody@example.com", Password: "secret"})
	assert.ErrorIs(t, err, ErrLoginFailed)
}

func TestIssueTokenAndLogout(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	alice := s.signup(t, "alice")

	raw, err := s.auth.IssueToken(alice)
	require.NoError(t, err)
	claims, err := jwt.ParseToken([]byte("test"), jwt.TypeAccess, raw)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Name)

	assert.False(t, s.auth.Tokens.IsRevoked(ctx, claims.ID))
	require.NoError(t, s.auth.Logout(ctx, claims))
	assert.True(t, s.auth.Tokens.IsRevoked(ctx, claims.ID))
}

func TestFollow_Self(t *testing.T) {
	s := newSuite(t)
	alice := s.signup(t, "alice")

	_, err := s.follows.Toggle(context.Background(), alice.ID, "alice")
	assert.ErrorIs(t, err, ErrSelfFollow)
}

func TestFollow_Toggle(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	alice := s.signup(t, "alice")
	s.signup(t, "bob")

	res, err := s.follows.Toggle(ctx, alice.ID, "bob")
	require.NoError(t, err)
	assert.True(t, res.Following)
	assert.Equal(t, int64(1), res.FollowersCount)

	res, err = s.follows.Toggle(ctx, alice.ID, "bob")
	require.NoError(t, err)
	assert.False(t, res.Following)
	assert.Equal(t, int64(0), res.FollowersCount)

	_, err = s.follows.Toggle(ctx, alice.ID, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLike_Toggle(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	alice := s.signup(t, "alice")
	p := s.post(t, alice)

	res, err := s.likes.Toggle(ctx, alice.ID, p.ID)
	require.NoError(t, err)
	assert.True(t, res.Liked)
	assert.Equal(t, int64(1), res.LikesCount)

	res, err = s.likes.Toggle(ctx, alice.ID, p.ID)
	require.NoError(t, err)
	assert.False(t, res.Liked)
	assert.Equal(t, int64(0), res.LikesCount)

	_, err = s.likes.Toggle(ctx, alice.ID, 999)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestCreatePost_Validation(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	alice := s.signup(t, "alice")

	_, err := s.posts.Create(ctx, alice.ID, &types.CreatePostRequest{Description: "x", Price: "10"}, nil)
	assert.ErrorIs(t, err, ErrFieldsRequired)

	_, err = s.posts.Create(ctx, alice.ID, &types.CreatePostRequest{Description: "", Price: "10"}, imageHeader(t, "a.png"))
	assert.ErrorIs(t, err, ErrFieldsRequired)

	_, err = s.posts.Create(ctx, alice.ID, &types.CreatePostRequest{Description: "x", Price: "ten"}, imageHeader(t, "a.png"))
	assert.ErrorIs(t, err, ErrInvalidPrice)

	p := s.post(t, alice)
	assert.Equal(t, int64(2500), p.Price)
	_, err = os.Stat(filepath.Join(s.root, "uploads", p.Image))
	assert.NoError(t, err)
}

func TestFeedAndExplore(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	alice := s.signup(t, "alice")
	bob := s.signup(t, "bob")
	carol := s.signup(t, "carol")

	mine := s.post(t, alice)
	bobs := s.post(t, bob)
	s.post(t, carol)

	_, err := s.follows.Toggle(ctx, alice.ID, "bob")
	require.NoError(t, err)
	_, err = s.likes.Toggle(ctx, alice.ID, bobs.ID)
	require.NoError(t, err)

	feed, err := s.posts.Feed(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, bobs.ID, feed[0].ID)
	assert.True(t, feed[0].Liked)
	assert.Equal(t, int64(1), feed[0].LikesCount)
	assert.Equal(t, mine.ID, feed[1].ID)
	assert.False(t, feed[1].Liked)

	all, err := s.posts.Explore(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestDeletePost(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	alice := s.signup(t, "alice")
	bob := s.signup(t, "bob")
	p := s.post(t, alice)

	_, err := s.likes.Toggle(ctx, bob.ID, p.ID)
	require.NoError(t, err)
	_, err = s.comment.Add(ctx, bob.ID, p.ID, "nice")
	require.NoError(t, err)

	assert.ErrorIs(t, s.posts.Delete(ctx, bob.ID, p.ID), ErrNotPostOwner)
	require.NoError(t, s.posts.Delete(ctx, alice.ID, p.ID))

	var n int64
	s.db.Model(&models.PostLike{}).Count(&n)
	assert.Zero(t, n)
	s.db.Model(&models.Comment{}).Count(&n)
	assert.Zero(t, n)

	_, err = os.Stat(filepath.Join(s.root, "uploads", p.Image))
	assert.True(t, os.IsNotExist(err))

	assert.ErrorIs(t, s.posts.Delete(ctx, alice.ID, p.ID), ErrPostNotFound)
}

func TestComment(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	alice := s.signup(t, "alice")
	p := s.post(t, alice)

	_, err := s.comment.Add(ctx, alice.ID, p.ID, "   ")
	assert.ErrorIs(t, err, ErrEmptyComment)

	item, err := s.comment.Add(ctx, alice.ID, p.ID, "Looks great")
	require.NoError(t, err)
	assert.Equal(t, "alice", item.Username)
	assert.Len(t, item.CreatedAt, len(TimeLayout))

	detail, err := s.posts.Detail(ctx, alice.ID, p.ID)
	require.NoError(t, err)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, int64(1), detail.Post.CommentsCount)
	assert.True(t, detail.IsOwner)

	_, err = s.comment.Add(ctx, alice.ID, 404, "hi")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestProfile(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	alice := s.signup(t, "alice")
	bob := s.signup(t, "bob")
	s.post(t, bob)

	_, err := s.follows.Toggle(ctx, alice.ID, "bob")
	require.NoError(t, err)

	view, err := s.users.Profile(ctx, alice.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, bob.ID, view.User.ID)
	assert.Len(t, view.Posts, 1)
	assert.Equal(t, int64(1), view.FollowersCount)
	assert.True(t, view.IsFollowing)
	assert.False(t, view.IsOwnProfile)

	own, err := s.users.Profile(ctx, alice.ID, "alice")
	require.NoError(t, err)
	assert.True(t, own.IsOwnProfile)
	assert.Equal(t, int64(1), own.FollowingCount)

	_, err = s.users.Profile(ctx, alice.ID, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	alice := s.signup(t, "alice")
	s.signup(t, "bob")

	_, err := s.users.UpdateProfile(ctx, alice.ID, &types.EditProfileRequest{Username: "bob"}, nil)
	assert.ErrorIs(t, err, ErrUsernameTaken)

	u, err := s.users.UpdateProfile(ctx, alice.ID, &types.EditProfileRequest{Username: "alicia", Bio: "hello", Phone: "0700"}, imageHeader(t, "me.png"))
	require.NoError(t, err)
	assert.Equal(t, "alicia", u.Username)
	assert.Equal(t, "hello", u.Bio)
	assert.Equal(t, "0700", u.Phone)
	assert.NotEqual(t, models.DefaultProfilePic, u.ProfilePic)

	_, err = os.Stat(filepath.Join(s.root, "profile_pics", u.ProfilePic))
	assert.NoError(t, err)
}

func TestShortCode(t *testing.T) {
	s := newSuite(t)
	code := s.posts.ShortCode(42)
	id, err := s.posts.DecodeShortCode(code)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)

	_, err = s.posts.DecodeShortCode("!!")
	assert.ErrorIs(t, err, ErrPostNotFound)
}
