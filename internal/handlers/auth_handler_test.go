package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hustlepro/internal/models"
)

type mockUserService struct{ mock.Mock }

func (m *mockUserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}
func (m *mockUserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}
func (m *mockUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}
func (m *mockUserService) UpdateProfile(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *mockUserService) StoreRefreshToken(ctx context.Context, token, userID string, expiresAt time.Time) error {
	return m.Called(ctx, token, userID, expiresAt).Error(0)
}
func (m *mockUserService) LookupRefreshToken(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}
func (m *mockUserService) RevokeRefreshToken(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) HashPassword(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}
func (m *mockAuthService) CheckPassword(hash, plain string) error {
	return m.Called(hash, plain).Error(0)
}
func (m *mockAuthService) IssueAccessToken(userID string) (string, time.Time, error) {
	args := m.Called(userID)
	exp, _ := args.Get(1).(time.Time)
	return args.String(0), exp, args.Error(2)
}

func newAuthRouter(users *mockUserService, auth *mockAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(users, auth)
	r := gin.New()
	r.POST("/login", h.Login)
	r.POST("/refresh", h.RefreshToken)
	return r
}

func TestLoginSuccess(t *testing.T) {
	users := new(mockUserService)
	auth := new(mockAuthService)

	user := &models.User{ID: "user1", Email: "owner@example.com", PasswordHash: "$2a$hash"}
	users.On("GetByEmail", mock.Anything, "owner@example.com").Return(user, nil)
	auth.On("CheckPassword", "$2a$hash", "secret").Return(nil)
	auth.On("IssueAccessToken", "user1").Return("access-token", time.Now().Add(15*time.Minute), nil)
	users.On("StoreRefreshToken", mock.Anything, mock.Anything, "user1", mock.Anything).Return(nil)

	r := newAuthRouter(users, auth)
	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"owner@example.com","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Message string `json:"message"`
		Tokens  struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
		} `json:"tokens"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Login successful", body.Message)
	require.Equal(t, "access-token", body.Tokens.AccessToken)
	require.NotEmpty(t, body.Tokens.RefreshToken)
	require.NotContains(t, w.Body.String(), "$2a$hash")
}

func TestLoginWrongPassword(t *testing.T) {
	users := new(mockUserService)
	auth := new(mockAuthService)

	user := &models.User{ID: "user1", Email: "owner@example.com", PasswordHash: "$2a$hash"}
	users.On("GetByEmail", mock.Anything, "owner@example.com").Return(user, nil)
	auth.On("CheckPassword", "$2a$hash", "wrong").Return(errors.New("mismatch"))

	r := newAuthRouter(users, auth)
	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"owner@example.com","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Invalid email or password")
}

func TestLoginUnknownEmail(t *testing.T) {
	users := new(mockUserService)
	auth := new(mockAuthService)
	users.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	r := newAuthRouter(users, auth)
	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"nobody@example.com","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshRotatesToken(t *testing.T) {
	users := new(mockUserService)
	auth := new(mockAuthService)

	users.On("LookupRefreshToken", mock.Anything, "old-token").Return("user1", nil)
	users.On("RevokeRefreshToken", mock.Anything, "old-token").Return(nil)
	auth.On("IssueAccessToken", "user1").Return("new-access", time.Now().Add(15*time.Minute), nil)
	users.On("StoreRefreshToken", mock.Anything, mock.Anything, "user1", mock.Anything).Return(nil)

	r := newAuthRouter(users, auth)
	req := httptest.NewRequest(http.MethodPost, "/refresh",
		strings.NewReader(`{"refresh_token":"old-token"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "new-access", body["access_token"])
	require.NotEqual(t, "old-token", body["refresh_token"])
	users.AssertCalled(t, "RevokeRefreshToken", mock.Anything, "old-token")
}

func TestRefreshUnknownTokenRejected(t *testing.T) {
	users := new(mockUserService)
	auth := new(mockAuthService)
	users.On("LookupRefreshToken", mock.Anything, "bogus").Return("", nil)

	r := newAuthRouter(users, auth)
	req := httptest.NewRequest(http.MethodPost, "/refresh",
		strings.NewReader(`{"refresh_token":"bogus"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
