package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	v1 "go-jobpilot-backend/internal/delivery/http/v1"
	"go-jobpilot-backend/internal/delivery/http/middleware"
	"go-jobpilot-backend/internal/delivery/http/response"
	"go-jobpilot-backend/internal/domain"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Register(ctx context.Context, email, password string, firstName, lastName *string) (*domain.UserProfile, error) {
	args := m.Called(ctx, email, password, firstName, lastName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthUsecase) Refresh(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockAuthUsecase) GetCurrentUser(ctx context.Context, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

type MockApplicationUsecase struct {
	mock.Mock
}

func (m *MockApplicationUsecase) CreateApplication(ctx context.Context, interaction *domain.JobUserInteraction) (*domain.JobUserInteraction, error) {
	args := m.Called(ctx, interaction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobUserInteraction), args.Error(1)
}

func (m *MockApplicationUsecase) GetApplication(ctx context.Context, id uuid.UUID) (*domain.JobUserInteraction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobUserInteraction), args.Error(1)
}

func (m *MockApplicationUsecase) ListApplications(ctx context.Context, filter domain.InteractionFilter, page domain.ListParams) ([]domain.JobUserInteraction, int64, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JobUserInteraction), args.Get(1).(int64), args.Error(2)
}

func (m *MockApplicationUsecase) UpdateApplication(ctx context.Context, id uuid.UUID, update *domain.InteractionUpdate) (*domain.JobUserInteraction, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobUserInteraction), args.Error(1)
}

func (m *MockApplicationUsecase) DeleteApplication(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func noLimit(c *gin.Context) {
	c.Next()
}

func TestRegisterEndpoint(t *testing.T) {
	newRouter := func(uc *MockAuthUsecase) *gin.Engine {
		r := gin.New()
		r.Use(middleware.ErrorHandler())
		public := r.Group("")
		protected := r.Group("")
		v1.NewAuthHandler(public, protected, uc, noLimit)
		return r
	}

	t.Run("Should answer a successful registration with 200", func(t *testing.T) {
		mockUC := new(MockAuthUsecase)
		mockUC.On("Register", mock.Anything, "new@example.com", "password123", mock.Anything, mock.Anything).
			Return(&domain.UserProfile{ID: uuid.New(), Email: "new@example.com", IsActive: true}, nil)

		rec := postJSON(newRouter(mockUC), "/auth/register", `{"email":"new@example.com","password":"password123"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeResponse(t, rec)
		assert.True(t, body.Success)
		assert.Equal(t, "User registered", body.Message)
	})

	t.Run("Should reject an invalid body with 422", func(t *testing.T) {
		mockUC := new(MockAuthUsecase)

		rec := postJSON(newRouter(mockUC), "/auth/register", `{"email":"not-an-email","password":"short"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		mockUC.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestApplicationCreateEndpoint(t *testing.T) {
	newRouter := func(uc *MockApplicationUsecase) *gin.Engine {
		r := gin.New()
		r.Use(middleware.ErrorHandler())
		protected := r.Group("")
		v1.NewApplicationHandler(protected, uc)
		return r
	}

	t.Run("Should answer a recorded interaction with 200", func(t *testing.T) {
		jobID := uuid.New()
		mockUC := new(MockApplicationUsecase)
		mockUC.On("CreateApplication", mock.Anything, mock.AnythingOfType("*domain.JobUserInteraction")).
			Return(&domain.JobUserInteraction{
				ID:              uuid.New(),
				JobID:           jobID,
				InteractionType: domain.InteractionSaved,
			}, nil)

		rec := postJSON(newRouter(mockUC), "/applications", `{"job_id":"`+jobID.String()+`","interaction_type":"saved"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeResponse(t, rec)
		assert.True(t, body.Success)
		assert.Equal(t, "Application recorded", body.Message)
	})
}
