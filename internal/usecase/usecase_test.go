package usecase_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-jobpilot-backend/internal/domain"
	"go-jobpilot-backend/internal/usecase"
	"go-jobpilot-backend/pkg/apperror"
	"go-jobpilot-backend/pkg/auth"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.UserProfile) (*domain.UserProfile, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.UserProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockUserRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

type MockInteractionRepo struct {
	mock.Mock
}

func (m *MockInteractionRepo) Create(ctx context.Context, interaction *domain.JobUserInteraction) (*domain.JobUserInteraction, error) {
	args := m.Called(ctx, interaction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobUserInteraction), args.Error(1)
}

func (m *MockInteractionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.JobUserInteraction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobUserInteraction), args.Error(1)
}

func (m *MockInteractionRepo) List(ctx context.Context, filter domain.InteractionFilter, page domain.ListParams) ([]domain.JobUserInteraction, int64, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JobUserInteraction), args.Get(1).(int64), args.Error(2)
}

func (m *MockInteractionRepo) Update(ctx context.Context, id uuid.UUID, update *domain.InteractionUpdate) (*domain.JobUserInteraction, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobUserInteraction), args.Error(1)
}

func (m *MockInteractionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.JobListing) (*domain.JobListing, error) {
	args := m.Called(ctx, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobListing), args.Error(1)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.JobListing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobListing), args.Error(1)
}

func (m *MockJobRepo) List(ctx context.Context, filter domain.JobFilter, page domain.ListParams) ([]domain.JobListing, int64, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JobListing), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobRepo) Update(ctx context.Context, id uuid.UUID, update *domain.JobListingUpdate) (*domain.JobListing, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobListing), args.Error(1)
}

func (m *MockJobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockSkillBankRepo struct {
	mock.Mock
}

func (m *MockSkillBankRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.SkillBank, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SkillBank), args.Error(1)
}

func (m *MockSkillBankRepo) Upsert(ctx context.Context, bank *domain.SkillBank) (*domain.SkillBank, error) {
	args := m.Called(ctx, bank)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SkillBank), args.Error(1)
}

// Helpers

func authedCtx(userID uuid.UUID) context.Context {
	return context.WithValue(context.Background(), domain.KeyUserID, userID.String())
}

func newAuthUsecase(repo domain.UserRepository) (domain.AuthUsecase, *auth.TokenService) {
	hasher := auth.NewHasher(4)
	tokens := auth.NewTokenService("test-secret", 30)
	return usecase.NewAuthUsecase(repo, hasher, tokens), tokens
}

func appErrCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

// Auth

func TestRegister(t *testing.T) {
	t.Run("Should reject a duplicate email", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc, _ := newAuthUsecase(mockRepo)

		existing := &domain.UserProfile{ID: uuid.New(), Email: "taken@example.com"}
		mockRepo.On("GetByEmail", mock.Anything, "taken@example.com").Return(existing, nil)

		_, err := uc.Register(context.Background(), "taken@example.com", "password123", nil, nil)

		assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
		assert.Contains(t, err.Error(), "already exists")
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should store a bcrypt digest, never the plaintext", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc, _ := newAuthUsecase(mockRepo)

		mockRepo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, apperror.NotFound("user not found"))
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.UserProfile")).Return(&domain.UserProfile{
			ID:    uuid.New(),
			Email: "new@example.com",
		}, nil).Run(func(args mock.Arguments) {
			user := args.Get(1).(*domain.UserProfile)
			assert.NotEqual(t, "password123", user.HashedPassword)
			assert.NotEmpty(t, user.HashedPassword)
			assert.True(t, user.IsActive)
			assert.False(t, user.IsVerified)
		})

		_, err := uc.Register(context.Background(), "new@example.com", "password123", nil, nil)
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestLogin(t *testing.T) {
	hasher := auth.NewHasher(4)
	digest, err := hasher.Hash(context.Background(), "right-password")
	require.NoError(t, err)

	activeUser := func() *domain.UserProfile {
		return &domain.UserProfile{
			ID:             uuid.New(),
			Email:          "user@example.com",
			HashedPassword: digest,
			IsActive:       true,
		}
	}

	t.Run("Should not reveal whether the email exists", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc, _ := newAuthUsecase(mockRepo)

		mockRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, apperror.NotFound("user not found"))

		_, err := uc.Login(context.Background(), "ghost@example.com", "whatever")

		assert.Equal(t, http.StatusUnauthorized, appErrCode(t, err))
		assert.Equal(t, "Incorrect email or password", err.Error())
	})

	t.Run("Should reject a wrong password with the same message", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc, _ := newAuthUsecase(mockRepo)

		mockRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(activeUser(), nil)

		_, err := uc.Login(context.Background(), "user@example.com", "wrong-password")

		assert.Equal(t, http.StatusUnauthorized, appErrCode(t, err))
		assert.Equal(t, "Incorrect email or password", err.Error())
	})

	t.Run("Should reject an inactive account before touching the password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc, _ := newAuthUsecase(mockRepo)

		user := activeUser()
		user.IsActive = false
		mockRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(user, nil)

		_, err := uc.Login(context.Background(), "user@example.com", "right-password")

		assert.Equal(t, http.StatusUnauthorized, appErrCode(t, err))
		assert.Equal(t, "User account is inactive", err.Error())
	})

	t.Run("Should mint a token carrying the user id", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc, tokens := newAuthUsecase(mockRepo)

		user := activeUser()
		mockRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(user, nil)
		mockRepo.On("UpdateLastLogin", mock.Anything, user.ID, mock.AnythingOfType("time.Time")).Return(nil)

		token, err := uc.Login(context.Background(), "user@example.com", "right-password")
		require.NoError(t, err)

		sub, err := tokens.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), sub)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should succeed even when the last_login update fails", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc, _ := newAuthUsecase(mockRepo)

		user := activeUser()
		mockRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(user, nil)
		mockRepo.On("UpdateLastLogin", mock.Anything, user.ID, mock.AnythingOfType("time.Time")).Return(assert.AnError)

		token, err := uc.Login(context.Background(), "user@example.com", "right-password")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})
}

// Jobs

func TestCreateJobValidation(t *testing.T) {
	companyID := uuid.New()

	t.Run("Should reject a too-short title", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		_, err := uc.CreateJob(context.Background(), &domain.JobListing{CompanyID: companyID, Title: "Go"})

		assert.Equal(t, http.StatusUnprocessableEntity, appErrCode(t, err))
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should accept titles at both length boundaries", func(t *testing.T) {
		for _, title := range []string{"C++", strings.Repeat("a", 200)} {
			mockRepo := new(MockJobRepo)
			uc := usecase.NewJobUsecase(mockRepo)

			job := &domain.JobListing{CompanyID: companyID, Title: title}
			mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.JobListing")).Return(job, nil)

			_, err := uc.CreateJob(context.Background(), job)
			require.NoError(t, err)
		}
	})

	t.Run("Should reject a 201 character title", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		_, err := uc.CreateJob(context.Background(), &domain.JobListing{
			CompanyID: companyID,
			Title:     strings.Repeat("a", 201),
		})

		assert.Equal(t, http.StatusUnprocessableEntity, appErrCode(t, err))
	})

	t.Run("Should accept a zero salary_min and an equal salary pair", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		zero, both := 0.0, 70000.0
		job := &domain.JobListing{
			CompanyID: companyID,
			Title:     "Backend Engineer",
			SalaryMin: &zero,
		}
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.JobListing")).Return(job, nil).Twice()

		_, err := uc.CreateJob(context.Background(), job)
		require.NoError(t, err)

		job.SalaryMin, job.SalaryMax = &both, &both
		_, err = uc.CreateJob(context.Background(), job)
		require.NoError(t, err)
	})

	t.Run("Should reject salary_max below salary_min", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		low, high := 50000.0, 90000.0
		_, err := uc.CreateJob(context.Background(), &domain.JobListing{
			CompanyID: companyID,
			Title:     "Backend Engineer",
			SalaryMin: &high,
			SalaryMax: &low,
		})

		assert.Equal(t, http.StatusUnprocessableEntity, appErrCode(t, err))
	})

	t.Run("Should reject an out-of-range quality score", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		score := 1.5
		_, err := uc.CreateJob(context.Background(), &domain.JobListing{
			CompanyID:        companyID,
			Title:            "Backend Engineer",
			DataQualityScore: &score,
		})

		assert.Equal(t, http.StatusUnprocessableEntity, appErrCode(t, err))
	})

	t.Run("Should canonicalize the experience level before checking it", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		level := domain.ExperienceLevel("Senior Level")
		job := &domain.JobListing{
			CompanyID:       companyID,
			Title:           "Backend Engineer",
			ExperienceLevel: &level,
		}

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.JobListing")).Return(job, nil).Run(func(args mock.Arguments) {
			created := args.Get(1).(*domain.JobListing)
			assert.Equal(t, domain.ExperienceSeniorLevel, *created.ExperienceLevel)
		})

		_, err := uc.CreateJob(context.Background(), job)
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should reject an unknown enum value", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		jobType := domain.JobType("fulltime")
		_, err := uc.CreateJob(context.Background(), &domain.JobListing{
			CompanyID: companyID,
			Title:     "Backend Engineer",
			JobType:   &jobType,
		})

		assert.Equal(t, http.StatusUnprocessableEntity, appErrCode(t, err))
	})
}

// Applications

func TestApplicationOwnership(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	interactionID := uuid.New()

	ownedInteraction := func() *domain.JobUserInteraction {
		return &domain.JobUserInteraction{
			ID:            interactionID,
			UserProfileID: owner,
			JobID:         uuid.New(),
		}
	}

	t.Run("Should deny another user's record before reporting existence", func(t *testing.T) {
		mockRepo := new(MockInteractionRepo)
		uc := usecase.NewApplicationUsecase(mockRepo)

		mockRepo.On("GetByID", mock.Anything, interactionID).Return(ownedInteraction(), nil)

		_, err := uc.GetApplication(authedCtx(stranger), interactionID)

		assert.Equal(t, http.StatusForbidden, appErrCode(t, err))
	})

	t.Run("Should fail safely when the context has no subject", func(t *testing.T) {
		mockRepo := new(MockInteractionRepo)
		uc := usecase.NewApplicationUsecase(mockRepo)

		_, err := uc.GetApplication(context.Background(), interactionID)

		assert.Equal(t, http.StatusUnauthorized, appErrCode(t, err))
		mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Should not delete what the ownership check rejects", func(t *testing.T) {
		mockRepo := new(MockInteractionRepo)
		uc := usecase.NewApplicationUsecase(mockRepo)

		mockRepo.On("GetByID", mock.Anything, interactionID).Return(ownedInteraction(), nil)

		err := uc.DeleteApplication(authedCtx(stranger), interactionID)

		assert.Equal(t, http.StatusForbidden, appErrCode(t, err))
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Should force the list filter to the current user", func(t *testing.T) {
		mockRepo := new(MockInteractionRepo)
		uc := usecase.NewApplicationUsecase(mockRepo)

		mockRepo.On("List", mock.Anything, mock.AnythingOfType("domain.InteractionFilter"), mock.AnythingOfType("domain.ListParams")).
			Return([]domain.JobUserInteraction{}, int64(0), nil).
			Run(func(args mock.Arguments) {
				filter := args.Get(1).(domain.InteractionFilter)
				require.NotNil(t, filter.UserProfileID)
				assert.Equal(t, owner, *filter.UserProfileID)
			})

		// The caller tries to scope the list to someone else.
		_, _, err := uc.ListApplications(authedCtx(owner), domain.InteractionFilter{UserProfileID: &stranger}, domain.ListParams{})
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestCreateApplication(t *testing.T) {
	owner := uuid.New()
	jobID := uuid.New()

	t.Run("Should force the owner from the context and default applied fields", func(t *testing.T) {
		mockRepo := new(MockInteractionRepo)
		uc := usecase.NewApplicationUsecase(mockRepo)

		interaction := &domain.JobUserInteraction{
			UserProfileID:   uuid.New(), // hostile value, must be overwritten
			JobID:           jobID,
			InteractionType: domain.InteractionApplied,
		}

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.JobUserInteraction")).Return(interaction, nil).Run(func(args mock.Arguments) {
			created := args.Get(1).(*domain.JobUserInteraction)
			assert.Equal(t, owner, created.UserProfileID)
			assert.Equal(t, domain.ApplicationApplied, created.ApplicationStatus)
			assert.NotNil(t, created.AppliedDate)
			assert.Equal(t, 1, created.InteractionCount)
		})

		_, err := uc.CreateApplication(authedCtx(owner), interaction)
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should reject an unknown interaction type", func(t *testing.T) {
		mockRepo := new(MockInteractionRepo)
		uc := usecase.NewApplicationUsecase(mockRepo)

		_, err := uc.CreateApplication(authedCtx(owner), &domain.JobUserInteraction{
			JobID:           jobID,
			InteractionType: domain.InteractionType("bookmarked"),
		})

		assert.Equal(t, http.StatusUnprocessableEntity, appErrCode(t, err))
	})

	t.Run("Should surface a duplicate (user, job, type) as a conflict", func(t *testing.T) {
		mockRepo := new(MockInteractionRepo)
		uc := usecase.NewApplicationUsecase(mockRepo)

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.JobUserInteraction")).
			Return(nil, apperror.Conflict("interaction already recorded for this job"))

		_, err := uc.CreateApplication(authedCtx(owner), &domain.JobUserInteraction{
			JobID:           jobID,
			InteractionType: domain.InteractionSaved,
		})

		assert.Equal(t, http.StatusConflict, appErrCode(t, err))
	})
}

// Skill banks

func TestSkillBankOwnership(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	t.Run("Should only serve the owner's bank", func(t *testing.T) {
		mockRepo := new(MockSkillBankRepo)
		uc := usecase.NewSkillBankUsecase(mockRepo)

		_, err := uc.GetSkillBank(authedCtx(stranger), owner)

		assert.Equal(t, http.StatusForbidden, appErrCode(t, err))
		mockRepo.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
	})

	t.Run("Should upsert a nil content as an empty document", func(t *testing.T) {
		mockRepo := new(MockSkillBankRepo)
		uc := usecase.NewSkillBankUsecase(mockRepo)

		mockRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.SkillBank")).Return(&domain.SkillBank{
			UserProfileID: owner,
			Content:       domain.JSONMap{},
		}, nil).Run(func(args mock.Arguments) {
			bank := args.Get(1).(*domain.SkillBank)
			assert.NotNil(t, bank.Content)
		})

		_, err := uc.UpdateSkillBank(authedCtx(owner), owner, nil)
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}
