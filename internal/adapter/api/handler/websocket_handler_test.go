package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toromarket/internal/domain/entity"
	"toromarket/internal/infrastructure/channel"
	"toromarket/internal/usecase"
	"toromarket/pkg/errors"
)

// tokenAuthenticator maps raw tokens straight to users so sessions can be
// exercised over httptest without a live identity provider.
type tokenAuthenticator struct {
	users map[string]*entity.User
}

func (a *tokenAuthenticator) AuthenticateSocket(ctx context.Context, idToken string) (*entity.User, error) {
	if user, ok := a.users[idToken]; ok {
		return user, nil
	}
	return nil, errors.Unauthorized("Invalid token", nil)
}

type memUserRepo struct {
	users map[string]*entity.User
}

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, errors.NotFound("User", nil)
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *memUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *memUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	return nil, 0, nil
}

type memMessageRepo struct {
	mu       sync.Mutex
	messages []*entity.Message
}

func (r *memMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	message.ID = fmt.Sprintf("msg-%d", len(r.messages)+1)
	message.CreatedAt = time.Now()
	r.messages = append(r.messages, message)
	return nil
}

func (r *memMessageRepo) GetByID(ctx context.Context, id string) (*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.messages {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, errors.NotFound("Message", nil)
}

func (r *memMessageRepo) Update(ctx context.Context, message *entity.Message) error { return nil }

func (r *memMessageRepo) ListConversation(ctx context.Context, userID, otherUserID, listingID string) ([]*entity.Message, error) {
	return nil, nil
}

func (r *memMessageRepo) ListByParticipant(ctx context.Context, userID string) ([]*entity.Message, error) {
	return nil, nil
}

func (r *memMessageRepo) MarkRead(ctx context.Context, recipientID string, ids []string) (int, error) {
	return 0, nil
}

func (r *memMessageRepo) DeleteConversation(ctx context.Context, listingID, userID string) (int, error) {
	return 0, nil
}

func (r *memMessageRepo) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	return 0, nil
}

func (r *memMessageRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.messages)
}

type memListingRepo struct{}

func (r *memListingRepo) Create(ctx context.Context, listing *entity.Listing) error { return nil }
func (r *memListingRepo) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	return nil, errors.NotFound("Listing", nil)
}
func (r *memListingRepo) Update(ctx context.Context, listing *entity.Listing) error { return nil }
func (r *memListingRepo) Delete(ctx context.Context, id string) error               { return nil }
func (r *memListingRepo) List(ctx context.Context, limit, offset int) ([]*entity.Listing, int64, error) {
	return nil, 0, nil
}
func (r *memListingRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Listing, error) {
	return nil, nil
}

type memNotificationRepo struct {
	mu            sync.Mutex
	notifications []*entity.Notification
}

func (r *memNotificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	notification.ID = fmt.Sprintf("notif-%d", len(r.notifications)+1)
	r.notifications = append(r.notifications, notification)
	return nil
}

func (r *memNotificationRepo) ListByRecipient(ctx context.Context, recipientID string, limit, offset int) ([]*entity.Notification, int64, error) {
	return nil, 0, nil
}

func (r *memNotificationRepo) MarkRead(ctx context.Context, recipientID string, ids []string) (int, error) {
	return 0, nil
}

func (r *memNotificationRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.notifications)
}

type wsFixture struct {
	server           *httptest.Server
	hub              *channel.Hub
	messageRepo      *memMessageRepo
	notificationRepo *memNotificationRepo
	alice            *entity.User
	bob              *entity.User
}

func newWSFixture(t *testing.T) *wsFixture {
	t.Helper()

	alice := &entity.User{ID: "u-alice", Email: "alice@csudh.edu", Username: "alice"}
	bob := &entity.User{ID: "u-bob", Email: "bob@csudh.edu", Username: "bob"}

	hub := channel.NewHub()
	messageRepo := &memMessageRepo{}
	notificationRepo := &memNotificationRepo{}

	chatUC := usecase.NewChatUseCase(
		messageRepo,
		&memUserRepo{users: map[string]*entity.User{alice.ID: alice, bob.ID: bob}},
		&memListingRepo{},
		usecase.NewNotificationUseCase(notificationRepo),
		hub,
	)
	auth := &tokenAuthenticator{users: map[string]*entity.User{
		"alice-token": alice,
		"bob-token":   bob,
	}}

	e := echo.New()
	wsHandler := NewWebSocketHandler(auth, chatUC, hub)
	e.GET("/ws", wsHandler.HandleConnection)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	return &wsFixture{
		server:           server,
		hub:              hub,
		messageRepo:      messageRepo,
		notificationRepo: notificationRepo,
		alice:            alice,
		bob:              bob,
	}
}

func (f *wsFixture) dial(t *testing.T, token string) *gorillaws.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/ws?token=" + token
	conn, _, err := gorillaws.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

// waitForMember blocks until the user's group has a member, i.e. the server
// side of the handshake finished joining.
func (f *wsFixture) waitForMember(t *testing.T, userID string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if f.hub.Members(channel.UserGroup(userID)) > 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("no member joined group for %s", userID)
}

func readFrame(t *testing.T, conn *gorillaws.Conn) []byte {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	return payload
}

func TestWebSocketMessageDeliveredToBothParticipants(t *testing.T) {
	f := newWSFixture(t)

	aliceConn := f.dial(t, "alice-token")
	bobConn := f.dial(t, "bob-token")
	f.waitForMember(t, f.alice.ID)
	f.waitForMember(t, f.bob.ID)

	require.NoError(t, aliceConn.WriteMessage(gorillaws.TextMessage, []byte(`{"message":"hey bob","recipient":"bob"}`)))

	var got usecase.WireMessage
	require.NoError(t, json.Unmarshal(readFrame(t, bobConn), &got))
	assert.Equal(t, "alice", got.Sender)
	assert.Equal(t, "bob", got.Recipient)
	assert.Equal(t, "hey bob", got.Content)
	assert.False(t, got.Read)

	var echoed usecase.WireMessage
	require.NoError(t, json.Unmarshal(readFrame(t, aliceConn), &echoed))
	assert.Equal(t, got, echoed)

	assert.Equal(t, 1, f.messageRepo.count())
	assert.Equal(t, 1, f.notificationRepo.count())
}

func TestWebSocketUnknownRecipientKeepsSessionOpen(t *testing.T) {
	f := newWSFixture(t)

	aliceConn := f.dial(t, "alice-token")
	bobConn := f.dial(t, "bob-token")
	f.waitForMember(t, f.alice.ID)
	f.waitForMember(t, f.bob.ID)

	require.NoError(t, aliceConn.WriteMessage(gorillaws.TextMessage, []byte(`{"message":"hi","recipient":"ghost"}`)))

	var frame struct {
		Type string `json:"type"`
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(readFrame(t, aliceConn), &frame))
	assert.Equal(t, "error", frame.Type)
	assert.Equal(t, "NOT_FOUND", frame.Code)
	assert.Equal(t, 0, f.messageRepo.count())

	// The same connection still works afterwards.
	require.NoError(t, aliceConn.WriteMessage(gorillaws.TextMessage, []byte(`{"message":"hi again","recipient":"bob"}`)))

	var got usecase.WireMessage
	require.NoError(t, json.Unmarshal(readFrame(t, bobConn), &got))
	assert.Equal(t, "hi again", got.Content)
}

func TestWebSocketRejectsBadToken(t *testing.T) {
	f := newWSFixture(t)

	url := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/ws?token=wrong"
	_, resp, err := gorillaws.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 401, resp.StatusCode)

	url = "ws" + strings.TrimPrefix(f.server.URL, "http") + "/ws"
	_, resp, err = gorillaws.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestWebSocketLeaveOnDisconnect(t *testing.T) {
	f := newWSFixture(t)

	conn := f.dial(t, "alice-token")
	f.waitForMember(t, f.alice.ID)

	conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if f.hub.Members(channel.UserGroup(f.alice.ID)) == 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("client never left its group after disconnect")
}
