package account

import (
	"Blackout/config"
	"Blackout/dao/cache"
	"Blackout/pkg/database"
	"Blackout/pkg/encrypt"
	"Blackout/pkg/jwt"
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newService(t *testing.T) (Service, *cache.TokenStorage) {
	t.Helper()
	encrypt.Cost = bcrypt.MinCost

	db, err := database.OpenMemory(&UserModel{})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	mr := miniredis.RunT(t)
	tokens := cache.NewTokenStorage(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	conf := &config.Config{Jwt: &config.Jwt{Secret: "test", ExpiresIn: 3600}}
	return NewService(conf, NewRepository(db), tokens), tokens
}

func TestSignupAndLogin(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	u, err := svc.Signup(ctx, &SignupRequest{Name: " Ann ", Email: "ann@example.com", Password: "pw", Phone: "0700"})
	require.NoError(t, err)
	assert.Equal(t, "Ann", u.Name)
	assert.NotEqual(t, "pw", u.Password)
	assert.False(t, u.IsAdmin)

	_, err = svc.Signup(ctx, &SignupRequest{Name: "Other", Email: "ann@example.com", Password: "pw"})
	assert.ErrorIs(t, err, ErrEmailRegistered)

	_, err = svc.Signup(ctx, &SignupRequest{Email: "x@example.com", Password: "pw"})
	assert.ErrorIs(t, err, ErrFieldsRequired)

	got, err := svc.Login(ctx, &LoginRequest{Email: "ann@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = svc.Login(ctx, &LoginRequest{Email: "ann@example.com", Password: "nope"})
	assert.ErrorIs(t, err, ErrLoginFailed)
	_, err = svc.Login(ctx, &LoginRequest{Email: "nobody@example.com", Password: "pw"})
	assert.ErrorIs(t, err, ErrLoginFailed)

	_, err = svc.GetUser(ctx, 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogout_Revokes(t *testing.T) {
	svc, tokens := newService(t)
	ctx := context.Background()

	u, err := svc.Signup(ctx, &SignupRequest{Name: "Ann", Email: "ann@example.com", Password: "pw"})
	require.NoError(t, err)
	token, err := svc.IssueToken(u)
	require.NoError(t, err)

	claims, err := jwt.ParseToken([]byte("test"), jwt.TypeAccess, token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)

	require.NoError(t, svc.Logout(ctx, claims))
	assert.True(t, tokens.IsRevoked(ctx, claims.ID))
	assert.NoError(t, svc.Logout(ctx, nil))
}
