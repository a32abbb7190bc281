package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	accountModel "github.com/aidnetlk/aidnet/internal/account/model"
	"github.com/aidnetlk/aidnet/internal/account/service"
	"github.com/aidnetlk/aidnet/internal/middleware"
	"github.com/aidnetlk/aidnet/internal/validate"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) SignUp(ctx context.Context, req *accountModel.SignUpRequest) (*accountModel.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accountModel.AuthResponse), args.Error(1)
}

func (m *mockService) SignIn(ctx context.Context, req *accountModel.SignInRequest) (*accountModel.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accountModel.AuthResponse), args.Error(1)
}

func (m *mockService) ForgotPassword(ctx context.Context, req *accountModel.ForgotPasswordRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *mockService) ResetPassword(ctx context.Context, req *accountModel.ResetPasswordRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *mockService) Me(ctx context.Context, accountID uint) (*accountModel.MeResponse, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accountModel.MeResponse), args.Error(1)
}

var _ service.Service = (*mockService)(nil)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func postJSON(router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest("POST", path, bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, httpReq)
	return w
}

func TestHandler_SignUp(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/auth/signup", handler.SignUp)

		req := &accountModel.SignUpRequest{
			OrganizationName: "Helping Hands",
			FirstName:        "Nimal",
			LastName:         "Perera",
			Email:            "nimal@example.org",
			Password:         "secret1",
			ConfirmPassword:  "secret1",
		}
		resp := &accountModel.AuthResponse{
			Token:   "jwt-token",
			Account: accountModel.AccountSummary{ID: 1, Email: "nimal@example.org"},
		}
		mockSvc.On("SignUp", mock.Anything, req).Return(resp, nil)

		w := postJSON(router, "/auth/signup", req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var auth accountModel.AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &auth))
		assert.Equal(t, "jwt-token", auth.Token)
		assert.Equal(t, uint(1), auth.Account.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("email taken", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/auth/signup", handler.SignUp)

		mockSvc.On("SignUp", mock.Anything, mock.Anything).
			Return(nil, accountModel.ErrEmailTaken)

		w := postJSON(router, "/auth/signup", accountModel.SignUpRequest{Email: "taken@example.org"})

		assert.Equal(t, http.StatusConflict, w.Code)
		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "EMAIL_TAKEN", response.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("validation fields are localized", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/auth/signup", handler.SignUp)

		mockSvc.On("SignUp", mock.Anything, mock.Anything).
			Return(nil, validate.NewError(validate.FieldErrors{"email": "FieldEmailInvalid"}))

		w := postJSON(router, "/auth/signup", accountModel.SignUpRequest{Email: "not-an-email"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "VALIDATION", response.Error.Code)
		assert.NotEmpty(t, response.Error.Fields["email"])
		mockSvc.AssertExpectations(t)
	})
}

func TestHandler_SignIn(t *testing.T) {
	t.Run("invalid credentials", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/auth/signin", handler.SignIn)

		mockSvc.On("SignIn", mock.Anything, mock.Anything).
			Return(nil, accountModel.ErrInvalidCredentials)

		w := postJSON(router, "/auth/signin", accountModel.SignInRequest{
			Email: "nimal@example.org", Password: "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "INVALID_CREDENTIALS", response.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("inactive account", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/auth/signin", handler.SignIn)

		mockSvc.On("SignIn", mock.Anything, mock.Anything).
			Return(nil, accountModel.ErrAccountInactive)

		w := postJSON(router, "/auth/signin", accountModel.SignInRequest{
			Email: "gone@example.org", Password: "secret1",
		})

		assert.Equal(t, http.StatusForbidden, w.Code)
		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "ACCOUNT_INACTIVE", response.Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestHandler_ResetPassword(t *testing.T) {
	t.Run("invalid token", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/auth/reset-password", handler.ResetPassword)

		mockSvc.On("ResetPassword", mock.Anything, mock.Anything).
			Return(accountModel.ErrResetTokenInvalid)

		w := postJSON(router, "/auth/reset-password", accountModel.ResetPasswordRequest{
			AccountID: 1, Token: "stale", Password: "secret1", ConfirmPassword: "secret1",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "RESET_TOKEN_INVALID", response.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/auth/reset-password", handler.ResetPassword)

		mockSvc.On("ResetPassword", mock.Anything, mock.Anything).Return(nil)

		w := postJSON(router, "/auth/reset-password", accountModel.ResetPasswordRequest{
			AccountID: 1, Token: "fresh", Password: "secret1", ConfirmPassword: "secret1",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		var response accountModel.SuccessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Success)
		mockSvc.AssertExpectations(t)
	})
}

func TestHandler_Me(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.GET("/me", func(c *gin.Context) {
			c.Set(middleware.ContextKeyAccountID, uint(7))
		}, handler.Me)

		resp := &accountModel.MeResponse{
			ID:           7,
			FirstName:    "Nimal",
			Organization: &accountModel.OrganizationRef{ID: 3, Approved: true},
		}
		mockSvc.On("Me", mock.Anything, uint(7)).Return(resp, nil)

		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("GET", "/me", nil)
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusOK, w.Code)
		var me accountModel.MeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
		require.NotNil(t, me.Organization)
		assert.True(t, me.Organization.Approved)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unauthorized without account", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.GET("/me", handler.Me)

		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("GET", "/me", nil)
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "UNAUTHORIZED", response.Error.Code)
	})
}

func TestHandler_SignOut(t *testing.T) {
	mockSvc := new(mockService)
	handler := New(mockSvc, zap.NewNop().Sugar())
	router := setupRouter()
	router.POST("/auth/signout", handler.SignOut)

	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest("POST", "/auth/signout", nil)
	router.ServeHTTP(w, httpReq)

	assert.Equal(t, http.StatusOK, w.Code)
	var response accountModel.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
}
