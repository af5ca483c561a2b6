package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/landsetu/landsetu/internal/domain/entity"
	"github.com/landsetu/landsetu/internal/repository"
)

type MockLandRepository struct {
	mock.Mock
}

func (m *MockLandRepository) Create(ctx context.Context, land *entity.Land) (string, error) {
	args := m.Called(ctx, land)
	return args.String(0), args.Error(1)
}

func (m *MockLandRepository) Update(ctx context.Context, land *entity.Land) error {
	args := m.Called(ctx, land)
	return args.Error(0)
}

func (m *MockLandRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLandRepository) GetByID(ctx context.Context, id string) (*entity.Land, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Land), args.Error(1)
}

func (m *MockLandRepository) GetByIDWithOwner(ctx context.Context, id string) (*entity.LandWithOwner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LandWithOwner), args.Error(1)
}

func (m *MockLandRepository) Search(ctx context.Context, filter repository.LandFilter) ([]*entity.Land, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Land), args.Error(1)
}

func (m *MockLandRepository) FindFeatured(ctx context.Context, limit int64) ([]*entity.Land, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Land), args.Error(1)
}

func (m *MockLandRepository) FindActiveExcluding(ctx context.Context, excludeIDs []string, limit int64) ([]*entity.Land, error) {
	args := m.Called(ctx, excludeIDs, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Land), args.Error(1)
}

func (m *MockLandRepository) FindByOwner(ctx context.Context, ownerID string) ([]*entity.Land, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Land), args.Error(1)
}

func (m *MockLandRepository) AppendImage(ctx context.Context, id, imageURL string) error {
	args := m.Called(ctx, id, imageURL)
	return args.Error(0)
}

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, request *entity.ContactRequest) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

func (m *MockContactRepository) GetByID(ctx context.Context, id string) (*entity.ContactRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ContactRequest), args.Error(1)
}

func (m *MockContactRepository) FindBySeller(ctx context.Context, sellerID string) ([]*entity.ContactRequestWithLand, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ContactRequestWithLand), args.Error(1)
}

func (m *MockContactRepository) UpdateStatus(ctx context.Context, id string, status entity.ContactStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Set(ctx context.Context, userID, token string, ttl time.Duration) error {
	args := m.Called(ctx, userID, token, ttl)
	return args.Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockFeaturedCache struct {
	mock.Mock
}

func (m *MockFeaturedCache) Get(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockFeaturedCache) Set(ctx context.Context, data []byte, ttl time.Duration) error {
	args := m.Called(ctx, data, ttl)
	return args.Error(0)
}

func (m *MockFeaturedCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockLandEventPublisher struct {
	mock.Mock
}

func (m *MockLandEventPublisher) PublishLandCreated(ctx context.Context, land *entity.Land) error {
	args := m.Called(ctx, land)
	return args.Error(0)
}

func (m *MockLandEventPublisher) PublishLandUpdated(ctx context.Context, land *entity.Land) error {
	args := m.Called(ctx, land)
	return args.Error(0)
}

func (m *MockLandEventPublisher) PublishLandDeleted(ctx context.Context, landID string) error {
	args := m.Called(ctx, landID)
	return args.Error(0)
}

type MockContactEventPublisher struct {
	mock.Mock
}

func (m *MockContactEventPublisher) PublishContactCreated(ctx context.Context, request *entity.ContactRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

type MockInquiryMailer struct {
	mock.Mock
}

func (m *MockInquiryMailer) SendInquiryNotification(to, landTitle, inquirerName, message string) error {
	args := m.Called(to, landTitle, inquirerName, message)
	return args.Error(0)
}

type MockPhotoStorage struct {
	mock.Mock
}

func (m *MockPhotoStorage) Upload(ctx context.Context, fileName string, data []byte) (string, error) {
	args := m.Called(ctx, fileName, data)
	return args.String(0), args.Error(1)
}
