package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"stockoracle_backend/internal/feature/auth/domain/entity"
	"stockoracle_backend/internal/feature/auth/usecase"
	jwtmw "stockoracle_backend/internal/platform/jwt"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	RegisterFunc    func(ctx context.Context, name, email, password string, client usecase.ClientInfo) (*usecase.LoginResult, error)
	LoginFunc       func(ctx context.Context, email, password string, client usecase.ClientInfo) (*usecase.LoginResult, error)
	LogoutFunc      func(ctx context.Context, sessionID string, userID uint) error
	UpgradeFunc     func(ctx context.Context, userID uint) (*entity.User, error)
	CurrentUserFunc func(ctx context.Context, userID uint) (*entity.User, error)
}

func (m *mockAuthUsecase) Register(ctx context.Context, name, email, password string, client usecase.ClientInfo) (*usecase.LoginResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, password, client)
	}
	return nil, errors.New("register failed")
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string, client usecase.ClientInfo) (*usecase.LoginResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password, client)
	}
	return nil, errors.New("login failed")
}

func (m *mockAuthUsecase) Logout(ctx context.Context, sessionID string, userID uint) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, sessionID, userID)
	}
	return nil
}

func (m *mockAuthUsecase) Upgrade(ctx context.Context, userID uint) (*entity.User, error) {
	if m.UpgradeFunc != nil {
		return m.UpgradeFunc(ctx, userID)
	}
	return nil, errors.New("upgrade failed")
}

func (m *mockAuthUsecase) CurrentUser(ctx context.Context, userID uint) (*entity.User, error) {
	if m.CurrentUserFunc != nil {
		return m.CurrentUserFunc(ctx, userID)
	}
	return nil, usecase.ErrUserNotFound
}

func loginResult(email string, premium bool) *usecase.LoginResult {
	return &usecase.LoginResult{
		Token:     "mock-jwt-token",
		SessionID: "mock-session-id",
		User:      &entity.User{ID: 1, PublicID: "pub-1", Email: email, Name: "tester", IsPremium: premium},
	}
}

// asUser injects the authenticated user ID the way the JWT middleware does.
func asUser(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, id)
		c.Next()
	}
}

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockFunc       func(ctx context.Context, name, email, password string, client usecase.ClientInfo) (*usecase.LoginResult, error)
		expectedStatus int
	}{
		{
			name:        "success: user registration",
			requestBody: gin.H{"name": "Alice", "email": "alice@example.com", "password": "secret1"},
			mockFunc: func(ctx context.Context, name, email, password string, client usecase.ClientInfo) (*usecase.LoginResult, error) {
				return loginResult(email, false), nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"name": "Alice", "email": "invalid-email", "password": "secret1"},
			mockFunc:       nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: short password",
			requestBody:    gin.H{"name": "Alice", "email": "alice@example.com", "password": "short"},
			mockFunc:       nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: missing name",
			requestBody:    gin.H{"email": "alice@example.com", "password": "secret1"},
			mockFunc:       nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: duplicate email",
			requestBody: gin.H{"name": "Alice", "email": "taken@example.com", "password": "secret1"},
			mockFunc: func(ctx context.Context, name, email, password string, client usecase.ClientInfo) (*usecase.LoginResult, error) {
				return nil, usecase.ErrEmailAlreadyExists
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&mockAuthUsecase{RegisterFunc: tt.mockFunc})

			router := gin.New()
			router.POST("/register", h.Register)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockFunc       func(ctx context.Context, email, password string, client usecase.ClientInfo) (*usecase.LoginResult, error)
		expectedStatus int
		expectedError  string
	}{
		{
			name:        "success: user login",
			requestBody: gin.H{"email": "alice@example.com", "password": "secret1"},
			mockFunc: func(ctx context.Context, email, password string, client usecase.ClientInfo) (*usecase.LoginResult, error) {
				return loginResult(email, true), nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			// 空メールはパスワード長が十分でもバリデーションで弾く
			name:           "failure: empty email with sufficient password",
			requestBody:    gin.H{"email": "", "password": "secret1"},
			mockFunc:       nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: wrong credentials get a generic message",
			requestBody: gin.H{"email": "alice@example.com", "password": "wrongpass"},
			mockFunc: func(ctx context.Context, email, password string, client usecase.ClientInfo) (*usecase.LoginResult, error) {
				return nil, usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "invalid email or password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&mockAuthUsecase{LoginFunc: tt.mockFunc})

			router := gin.New()
			router.POST("/login", h.Login)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var res gin.H
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
				assert.Equal(t, "mock-jwt-token", res["token"])
				assert.Equal(t, "mock-session-id", res["session_id"])
			}
			if tt.expectedError != "" {
				var res gin.H
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
				assert.Equal(t, tt.expectedError, res["error"])
			}
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotSession string
	var gotUser uint
	h := NewAuthHandler(&mockAuthUsecase{
		LogoutFunc: func(ctx context.Context, sessionID string, userID uint) error {
			gotSession = sessionID
			gotUser = userID
			return nil
		},
	})

	router := gin.New()
	router.POST("/logout", asUser(7), h.Logout)

	body, _ := json.Marshal(gin.H{"session_id": "session-abc"})
	req, _ := http.NewRequest(http.MethodPost, "/logout", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "session-abc", gotSession)
	assert.Equal(t, uint(7), gotUser)
}

func TestAuthHandler_Upgrade(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewAuthHandler(&mockAuthUsecase{
		UpgradeFunc: func(ctx context.Context, userID uint) (*entity.User, error) {
			return &entity.User{ID: userID, PublicID: "pub-7", Email: "a@example.com", Name: "a", IsPremium: true}, nil
		},
	})

	router := gin.New()
	router.POST("/upgrade", asUser(7), h.Upgrade)

	req, _ := http.NewRequest(http.MethodPost, "/upgrade", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res gin.H
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, true, res["is_premium"])
	assert.Equal(t, "pub-7", res["id"])
}

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns profile", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{
			CurrentUserFunc: func(ctx context.Context, userID uint) (*entity.User, error) {
				return &entity.User{ID: userID, PublicID: "pub-7", Email: "a@example.com", Name: "a"}, nil
			},
		})

		router := gin.New()
		router.GET("/me", asUser(7), h.Me)

		req, _ := http.NewRequest(http.MethodGet, "/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing user returns 404", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{})

		router := gin.New()
		router.GET("/me", asUser(7), h.Me)

		req, _ := http.NewRequest(http.MethodGet, "/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
