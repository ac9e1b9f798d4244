package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mazraa/mazra-BE/internal/notification"
	"github.com/mazraa/mazra-BE/internal/user"
	"github.com/mazraa/mazra-BE/internal/util"
	"github.com/stretchr/testify/require"
)

type stubUserStore struct {
	tokens map[string]string
}

func (s *stubUserStore) GetUser(_ context.Context, userID string) (user.Account, error) {
	token, ok := s.tokens[userID]
	if !ok {
		return user.Account{}, user.ErrUserNotFound
	}
	return user.Account{ID: userID, DeliveryToken: token}, nil
}

func (s *stubUserStore) FindUserByEmail(_ context.Context, _ string) (user.Account, error) {
	return user.Account{}, user.ErrUserNotFound
}

func (s *stubUserStore) ListUserIDs(_ context.Context) ([]string, error) {
	return nil, nil
}

func (s *stubUserStore) UpdateDeliveryToken(_ context.Context, userID, token string) error {
	if _, ok := s.tokens[userID]; !ok {
		return user.ErrUserNotFound
	}
	s.tokens[userID] = token
	return nil
}

func (s *stubUserStore) ClearDeliveryToken(_ context.Context, userID string) error {
	if _, ok := s.tokens[userID]; !ok {
		return user.ErrUserNotFound
	}
	s.tokens[userID] = ""
	return nil
}

type stubInboxStore struct {
	records map[string]map[string]notification.Record
}

func (s *stubInboxStore) SaveBroadcast(_ context.Context, _ notification.Record) error { return nil }

func (s *stubInboxStore) SaveForUser(_ context.Context, userID string, record notification.Record) error {
	if s.records[userID] == nil {
		s.records[userID] = make(map[string]notification.Record)
	}
	s.records[userID][record.ReferenceID] = record
	return nil
}

func (s *stubInboxStore) FanOut(_ context.Context, _ []string, _ notification.Record) error {
	return nil
}

func (s *stubInboxStore) ListForUser(_ context.Context, userID string, limit int) ([]notification.Record, error) {
	records := make([]notification.Record, 0)
	for _, record := range s.records[userID] {
		records = append(records, record)
		if limit > 0 && len(records) == limit {
			break
		}
	}
	return records, nil
}

func (s *stubInboxStore) CountUnread(_ context.Context, userID string) (int, error) {
	count := 0
	for _, record := range s.records[userID] {
		if !record.IsRead {
			count++
		}
	}
	return count, nil
}

func (s *stubInboxStore) MarkRead(_ context.Context, userID, referenceID string) error {
	record, ok := s.records[userID][referenceID]
	if !ok {
		return notification.ErrRecordNotFound
	}
	record.IsRead = true
	s.records[userID][referenceID] = record
	return nil
}

func (s *stubInboxStore) PurgeRead(_ context.Context, _ time.Time) (int, error) {
	return 0, nil
}

func newTestServer(t *testing.T) (*Server, *stubUserStore, *stubInboxStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := &stubUserStore{tokens: map[string]string{"farmer-1": "token-1"}}
	inboxes := &stubInboxStore{records: map[string]map[string]notification.Record{
		"farmer-1": {
			"order-1": {ReferenceID: "order-1", Title: "New order received", Kind: notification.KindFarmerOrder},
			"order-2": {ReferenceID: "order-2", Title: "New order received", Kind: notification.KindFarmerOrder, IsRead: true},
		},
	}}

	config := &util.Config{AllowedOrigins: []string{"http://localhost:3000"}}
	return NewServer(users, inboxes, config), users, inboxes
}

func TestListUserNotifications(t *testing.T) {
	server, _, _ := newTestServer(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/users/farmer-1/notifications", nil)
	server.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), "order-1")
	require.Contains(t, recorder.Body.String(), "order-2")
}

func TestListUserNotificationsBadLimit(t *testing.T) {
	server, _, _ := newTestServer(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/users/farmer-1/notifications?limit=abc", nil)
	server.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCountUnreadNotifications(t *testing.T) {
	server, _, _ := newTestServer(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/users/farmer-1/notifications/unread-count", nil)
	server.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"unread_count": 1}`, recorder.Body.String())
}

func TestMarkNotificationRead(t *testing.T) {
	server, _, inboxes := newTestServer(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPatch, "/v1/users/farmer-1/notifications/order-1/read", nil)
	server.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.True(t, inboxes.records["farmer-1"]["order-1"].IsRead)
}

func TestMarkNotificationReadNotFound(t *testing.T) {
	server, _, _ := newTestServer(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPatch, "/v1/users/farmer-1/notifications/nope/read", nil)
	server.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestRegisterDeviceToken(t *testing.T) {
	server, users, _ := newTestServer(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPut, "/v1/users/farmer-1/device-token",
		strings.NewReader(`{"device_token": "new-token"}`))
	request.Header.Set("Content-Type", "application/json")
	server.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "new-token", users.tokens["farmer-1"])
}

func TestRegisterDeviceTokenUnknownUser(t *testing.T) {
	server, _, _ := newTestServer(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPut, "/v1/users/ghost/device-token",
		strings.NewReader(`{"device_token": "new-token"}`))
	request.Header.Set("Content-Type", "application/json")
	server.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusNotFound, recorder.Code)
}
