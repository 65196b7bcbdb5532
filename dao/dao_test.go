package dao

import (
	"Blackout/models"
	"Blackout/pkg/database"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenMemory(models.All()...)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) *models.Users {
	t.Helper()
	u := &models.Users{Username: name, Email: name + "@example.com", Password: "x"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedPost(t *testing.T, db *gorm.DB, owner *models.Users, at time.Time) *models.Post {
	t.Helper()
	p := &models.Post{Image: "a.png", Description: fmt.Sprintf("by %s", owner.Username), Price: 100, UserID: owner.ID, CreatedAt: at}
	require.NoError(t, db.Create(p).Error)
	return p
}

func TestPostDAO_Feed(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	p1 := seedPost(t, db, alice, base)
	p2 := seedPost(t, db, bob, base.Add(time.Minute))
	seedPost(t, db, carol, base.Add(2*time.Minute))
	p4 := seedPost(t, db, bob, base.Add(3*time.Minute))

	follows := NewUserFollowDAO(db)
	following, err := follows.Toggle(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.True(t, following)

	posts, err := NewPostDAO(db).Feed(ctx, alice.ID)
	require.NoError(t, err)

	var ids []uint64
	for _, p := range posts {
		ids = append(ids, p.ID)
		require.NotNil(t, p.Author)
	}
	assert.Equal(t, []uint64{p4.ID, p2.ID, p1.ID}, ids)
}

func TestPostDAO_FeedWithoutFollows(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	mine := seedPost(t, db, alice, time.Now())
	seedPost(t, db, bob, time.Now())

	posts, err := NewPostDAO(db).Feed(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, mine.ID, posts[0].ID)
}

func TestPostLikeDAO_Toggle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")
	post := seedPost(t, db, alice, time.Now())
	likes := NewPostLikeDAO(db)

	liked, err := likes.Toggle(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	n, err := likes.CountByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	liked, err = likes.Toggle(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	n, err = likes.CountByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestPostLikeDAO_UniqueIndex(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
	post := seedPost(t, db, alice, time.Now())

	require.NoError(t, db.Create(&models.PostLike{UserID: alice.ID, PostID: post.ID}).Error)
	err := db.Create(&models.PostLike{UserID: alice.ID, PostID: post.ID}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestPostDAO_DeleteWithChildren(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	post := seedPost(t, db, alice, time.Now())
	other := seedPost(t, db, bob, time.Now())

	_, err := NewPostLikeDAO(db).Toggle(ctx, bob.ID, post.ID)
	require.NoError(t, err)
	_, err = NewPostLikeDAO(db).Toggle(ctx, alice.ID, other.ID)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Comment{Text: "nice", UserID: bob.ID, PostID: post.ID}).Error)
	require.NoError(t, db.Create(&models.Comment{Text: "ok", UserID: alice.ID, PostID: other.ID}).Error)

	posts := NewPostDAO(db)
	require.NoError(t, posts.DeleteWithChildren(ctx, post.ID))

	var n int64
	db.Model(&models.PostLike{}).Where("post_id = ?", post.ID).Count(&n)
	assert.Zero(t, n)
	db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&n)
	assert.Zero(t, n)
	db.Model(&models.PostLike{}).Where("post_id = ?", other.ID).Count(&n)
	assert.Equal(t, int64(1), n)

	_, err = posts.FindById(ctx, post.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, posts.DeleteWithChildren(ctx, post.ID), gorm.ErrRecordNotFound)
}

func TestCountIn(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	p1 := seedPost(t, db, alice, time.Now())
	p2 := seedPost(t, db, alice, time.Now())

	comments := NewCommentDAO(db)
	for _, u := range []*models.Users{alice, bob, alice} {
		require.NoError(t, comments.Create(ctx, &models.Comment{Text: "hi", UserID: u.ID, PostID: p1.ID}))
	}

	counts, err := comments.CountByPosts(ctx, []uint64{p1.ID, p2.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts[p1.ID])
	assert.Equal(t, int64(0), counts[p2.ID])

	list, err := comments.ListByPost(ctx, p1.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "alice", list[0].Author.Username)
	assert.Equal(t, "bob", list[1].Author.Username)
}

func TestUsers_IsUsernameTaken(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")
	users := NewUsers(db)

	assert.True(t, users.IsUsernameTaken(ctx, "alice", 0))
	assert.False(t, users.IsUsernameTaken(ctx, "alice", alice.ID))
	assert.False(t, users.IsUsernameTaken(ctx, "nobody", 0))
	assert.True(t, users.IsEmailExist(ctx, "alice@example.com"))

	found, err := users.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.ID)
	assert.Equal(t, models.DefaultProfilePic, found.ProfilePic)
}
