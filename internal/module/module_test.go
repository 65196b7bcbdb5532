package module

import (
	"Blackout/config"
	"Blackout/dao/cache"
	"Blackout/internal/module/account"
	"Blackout/internal/module/cart"
	"Blackout/internal/module/catalog"
	"Blackout/internal/module/inbox"
	"Blackout/pkg/database"
	"Blackout/pkg/encrypt"
	"Blackout/pkg/mail"
	"Blackout/pkg/upload"
	"Blackout/web"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type app struct {
	engine  *gin.Engine
	db      *gorm.DB
	catalog catalog.Service
}

func newApp(t *testing.T) *app {
	t.Helper()
	encrypt.Cost = bcrypt.MinCost

	db, err := database.OpenMemory(Models()...)
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
		App:    &config.App{Name: "marketplace", Debug: true},
		Server: &config.Server{Http: 5000},
		Jwt:    &config.Jwt{Secret: "test", ExpiresIn: 3600, CookieName: "token"},
		Upload: &config.Upload{Root: root, PostDir: "uploads", ProfileDir: "profile_pics", MaxSize: 1 << 20},
		Mail:   &config.Mail{},
	}
	uploader := &upload.Uploader{Storage: upload.NewLocalStorage(root, "/static"), MaxSize: conf.Upload.MaxSize}
	tokens := cache.NewTokenStorage(rds)

	users := account.NewRepository(db)
	accounts := account.NewService(conf, users, tokens)
	items := catalog.NewService(conf, catalog.NewRepository(db), users, uploader)
	notifier, cleanup, err := inbox.NewNotifier(conf, mail.NewSender(conf))
	require.NoError(t, err)
	t.Cleanup(cleanup)
	messages := inbox.NewService(inbox.NewRepository(db), accounts, items, cache.NewUnreadStorage(rds), notifier)

	tmpl, err := web.NewMarketTemplates(conf, uploader)
	require.NoError(t, err)

	engine := NewEngine(conf, tmpl, &Handlers{
		Account: account.NewHandler(conf, tokens, accounts),
		Catalog: catalog.NewHandler(conf, tokens, items),
		Cart:    cart.NewHandler(conf, tokens, cart.NewService(cart.NewRepository(db), items)),
		Inbox:   inbox.NewHandler(conf, tokens, messages, items),
	})
	return &app{engine: engine, db: db, catalog: items}
}

func (a *app) do(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func get(path string) *http.Request {
	return httptest.NewRequest(http.MethodGet, path, nil)
}

func form(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func api(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	return req
}

type session struct {
	id     uint64
	cookie *http.Cookie
}

func (a *app) signup(t *testing.T, name string) *session {
	t.Helper()
	email := strings.ToLower(name) + "@example.com"
	w := a.do(form("/signup", url.Values{"name": {name}, "email": {email}, "password": {"secret"}}))
	require.Equal(t, http.StatusFound, w.Code, w.Body.String())

	var u account.UserModel
	require.NoError(t, a.db.Where("email = ?", email).First(&u).Error)
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "token" && ck.Value != "" {
			return &session{id: u.ID, cookie: ck}
		}
	}
	t.Fatal("no token cookie")
	return nil
}

func (a *app) item(t *testing.T, seller *session, title string, price float64) *catalog.ItemModel {
	t.Helper()
	item := &catalog.ItemModel{Title: title, Description: title + " description", Price: price, Category: "other", UserID: seller.id}
	require.NoError(t, a.db.Create(item).Error)
	return item
}

func id(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func TestHome_SeedAndSearch(t *testing.T) {
	a := newApp(t)
	require.NoError(t, a.catalog.Seed(context.Background()))

	w := a.do(get("/"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Graphic Design Services")
	assert.Contains(t, w.Body.String(), "Fashion Design")

	w = a.do(get("/?search=photo"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Photography Services")
	assert.NotContains(t, w.Body.String(), "Fashion Design")
}

func TestSignup_DuplicateEmail(t *testing.T) {
	a := newApp(t)
	a.signup(t, "Alice")

	w := a.do(form("/signup", url.Values{"name": {"Other"}, "email": {"alice@example.com"}, "password": {"x"}}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email already registered")

	var n int64
	a.db.Model(&account.UserModel{}).Count(&n)
	assert.EqualValues(t, 1, n)
}

func TestLogin_Failure(t *testing.T) {
	a := newApp(t)
	a.signup(t, "Alice")

	w := a.do(form("/login", url.Values{"email": {"alice@example.com"}, "password": {"wrong"}}))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = a.do(form("/login", url.Values{"email": {"alice@example.com"}, "password": {"secret"}}))
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestLogout_RevokesToken(t *testing.T) {
	a := newApp(t)
	alice := a.signup(t, "Alice")

	w := a.do(get("/logout"), alice.cookie)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	w = a.do(get("/cart"), alice.cookie)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestAddItem_AndDashboard(t *testing.T) {
	a := newApp(t)
	alice := a.signup(t, "Alice")

	w := a.do(form("/add_item", url.Values{"title": {"Tailoring"}, "description": {"Suits"}, "price": {"abc"}, "category": {"fashion-design"}}), alice.cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(form("/add_item", url.Values{"title": {"Tailoring"}, "description": {"Suits"}, "price": {"49.5"}, "category": {"fashion-design"}}), alice.cookie)
	require.Equal(t, http.StatusFound, w.Code)

	w = a.do(get("/dashboard"), alice.cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Tailoring")
	assert.Contains(t, w.Body.String(), "49.50")
}

func TestCart_AddTwiceAndTotal(t *testing.T) {
	a := newApp(t)
	seller, buyer := a.signup(t, "Seller"), a.signup(t, "Buyer")
	logo := a.item(t, seller, "Logo", 150)
	photo := a.item(t, seller, "Photo", 20.25)

	for _, itemID := range []uint64{logo.ID, logo.ID, photo.ID} {
		w := a.do(get("/add_to_cart/"+id(itemID)), buyer.cookie)
		require.Equal(t, http.StatusFound, w.Code)
	}

	var row cart.CartItemModel
	require.NoError(t, a.db.Where("user_id = ? AND item_id = ?", buyer.id, logo.ID).First(&row).Error)
	assert.Equal(t, 2, row.Quantity)

	w := a.do(get("/cart"), buyer.cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "320.25")

	w = a.do(get("/remove_from_cart/"+id(logo.ID)), buyer.cookie)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/cart", w.Header().Get("Location"))

	w = a.do(get("/add_to_cart/9999"), buyer.cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMessagesAPI(t *testing.T) {
	a := newApp(t)
	alice, bob := a.signup(t, "Alice"), a.signup(t, "Bob")

	w := a.do(api(http.MethodGet, "/api/conversations", ""))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = a.do(api(http.MethodPost, "/api/send_message/"+id(alice.id), `{"message":""}`), bob.cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Message cannot be empty"}`, w.Body.String())

	w = a.do(api(http.MethodPost, "/api/send_message/9999", `{"message":"hi"}`), bob.cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(api(http.MethodPost, "/api/send_message/"+id(alice.id), `{"message":"hello alice"}`), bob.cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = a.do(api(http.MethodGet, "/api/unread_count", ""), alice.cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"unread":1}`, w.Body.String())

	w = a.do(api(http.MethodGet, "/api/conversations", ""), alice.cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var convs inbox.ConversationsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &convs))
	require.Len(t, convs.Conversations, 1)
	assert.Equal(t, bob.id, convs.Conversations[0].ID)
	assert.Equal(t, "Bob", convs.Conversations[0].OtherUserName)
	assert.EqualValues(t, 1, convs.Conversations[0].UnreadCount)

	w = a.do(api(http.MethodGet, "/api/conversation/"+id(bob.id), ""), alice.cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var thread inbox.ThreadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &thread))
	require.Len(t, thread.Messages, 1)
	assert.Equal(t, "hello alice", thread.Messages[0].Message)
	assert.Equal(t, "Bob", thread.Messages[0].SenderName)
	assert.False(t, thread.Messages[0].IsRead)

	w = a.do(api(http.MethodPost, "/api/mark_conversation_read/"+id(bob.id), ""), alice.cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = a.do(api(http.MethodGet, "/api/unread_count", ""), alice.cookie)
	assert.JSONEq(t, `{"unread":0}`, w.Body.String())

	w = a.do(api(http.MethodPost, "/mark_message_read/"+id(thread.Messages[0].ID), ""), alice.cookie)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestContactSeller(t *testing.T) {
	a := newApp(t)
	seller, buyer := a.signup(t, "Seller"), a.signup(t, "Buyer")
	item := a.item(t, seller, "Portrait session", 80)

	w := a.do(get("/contact_seller/"+id(item.ID)), buyer.cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Portrait session")

	w = a.do(form("/contact_seller/"+id(item.ID), url.Values{"message": {"Available Friday?"}, "phone": {"0700"}}), buyer.cookie)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/messages", w.Header().Get("Location"))

	var msg inbox.MessageModel
	require.NoError(t, a.db.Where("receiver_id = ?", seller.id).First(&msg).Error)
	assert.Equal(t, "Inquiry about: Portrait session", msg.Subject)
	assert.Equal(t, "buyer@example.com", msg.Email)
	assert.Equal(t, "0700", msg.Phone)

	w = a.do(get("/contact_seller/9999"), buyer.cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProtectedPages_RedirectToLogin(t *testing.T) {
	a := newApp(t)
	for _, path := range []string{"/cart", "/dashboard", "/add_item", "/messages", "/contact_seller/1"} {
		w := a.do(get(path))
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/login", w.Header().Get("Location"), path)
	}
}
