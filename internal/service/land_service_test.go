package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/landsetu/landsetu/internal/domain/entity"
	"github.com/landsetu/landsetu/internal/platform/logger"
	"github.com/landsetu/landsetu/internal/repository"
)

func validLandInput() LandInput {
	return LandInput{
		Title:       "Corner plot near highway",
		Description: "Level corner plot with road access on two sides and clear title.",
		Price:       2500000,
		Area:        2400,
		Address:     "Survey No. 42, Ring Road",
		City:        "Pune",
		State:       "Maharashtra",
		Pincode:     "411001",
		LandType:    "residential",
	}
}

func newLandServiceForTest(landRepo *MockLandRepository, cache *MockFeaturedCache, publisher *MockLandEventPublisher, photos *MockPhotoStorage) LandService {
	var c FeaturedCache
	if cache != nil {
		c = cache
	}
	var p LandEventPublisher
	if publisher != nil {
		p = publisher
	}
	var ph PhotoStorage
	if photos != nil {
		ph = photos
	}
	return NewLandService(landRepo, c, p, ph, logger.NewNop(), 0)
}

func TestLandService_Create_DefaultsAndPersists(t *testing.T) {
	landRepo := new(MockLandRepository)
	cache := new(MockFeaturedCache)
	publisher := new(MockLandEventPublisher)

	landRepo.On("Create", mock.Anything, mock.MatchedBy(func(land *entity.Land) bool {
		return land.IsActive && !land.IsFeatured && land.OwnerID == "owner-1"
	})).Return("land-1", nil)
	cache.On("Invalidate", mock.Anything).Return(nil)
	publisher.On("PublishLandCreated", mock.Anything, mock.Anything).Return(nil)

	svc := newLandServiceForTest(landRepo, cache, publisher, nil)
	land, err := svc.Create(context.Background(), "owner-1", validLandInput())

	assert.NoError(t, err)
	assert.Equal(t, "land-1", land.ID)
	assert.True(t, land.IsActive)
	assert.False(t, land.IsFeatured)
	assert.NotNil(t, land.Images)
	assert.NotNil(t, land.Features)
	landRepo.AssertExpectations(t)
	cache.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestLandService_Create_ValidationShortCircuitsRepo(t *testing.T) {
	landRepo := new(MockLandRepository)
	svc := newLandServiceForTest(landRepo, nil, nil, nil)

	in := validLandInput()
	in.Title = "Plot"
	in.Pincode = "12"

	_, err := svc.Create(context.Background(), "owner-1", in)

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Title must be at least 5 characters", vErr.Fields["title"])
	assert.Equal(t, "Please enter a valid 6-digit pincode", vErr.Fields["location.pincode"])
	landRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLandService_Update_MergesLocationFieldWise(t *testing.T) {
	landRepo := new(MockLandRepository)
	existing := &entity.Land{
		ID:          "land-1",
		Title:       "Corner plot near highway",
		Description: "Level corner plot with road access on two sides and clear title.",
		Price:       2500000,
		Area:        2400,
		Location: entity.Location{
			Address: "Survey No. 42, Ring Road",
			City:    "Pune",
			State:   "Maharashtra",
			Pincode: "411001",
		},
		LandType: entity.LandTypeResidential,
		OwnerID:  "owner-1",
		IsActive: true,
	}
	landRepo.On("GetByID", mock.Anything, "land-1").Return(existing, nil)

	var persisted *entity.Land
	landRepo.On("Update", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		persisted = args.Get(1).(*entity.Land)
	}).Return(nil)

	svc := newLandServiceForTest(landRepo, nil, nil, nil)

	city := "Mumbai"
	_, err := svc.Update(context.Background(), "land-1", "owner-1", UpdateLandInput{City: &city})

	assert.NoError(t, err)
	assert.Equal(t, "Mumbai", persisted.Location.City)
	assert.Equal(t, "Maharashtra", persisted.Location.State, "untouched location fields survive")
	assert.Equal(t, "411001", persisted.Location.Pincode)
	assert.Equal(t, "Survey No. 42, Ring Road", persisted.Location.Address)
}

func TestLandService_Update_RevalidatesMergedValue(t *testing.T) {
	landRepo := new(MockLandRepository)
	existing := &entity.Land{
		ID:          "land-1",
		Title:       "Corner plot near highway",
		Description: "Level corner plot with road access on two sides and clear title.",
		Price:       2500000,
		Area:        2400,
		Location:    entity.Location{Address: "a", City: "Pune", State: "MH", Pincode: "411001"},
		LandType:    entity.LandTypeResidential,
		OwnerID:     "owner-1",
	}
	landRepo.On("GetByID", mock.Anything, "land-1").Return(existing, nil)

	svc := newLandServiceForTest(landRepo, nil, nil, nil)

	badTitle := "Ha"
	_, err := svc.Update(context.Background(), "land-1", "owner-1", UpdateLandInput{Title: &badTitle})

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	landRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestLandService_Update_NotFoundBeforeOwnership(t *testing.T) {
	landRepo := new(MockLandRepository)
	landRepo.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

	svc := newLandServiceForTest(landRepo, nil, nil, nil)
	_, err := svc.Update(context.Background(), "missing", "anyone", UpdateLandInput{})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLandService_Update_UnauthorizedNeverMutates(t *testing.T) {
	landRepo := new(MockLandRepository)
	landRepo.On("GetByID", mock.Anything, "land-1").Return(&entity.Land{ID: "land-1", OwnerID: "owner-1"}, nil)

	svc := newLandServiceForTest(landRepo, nil, nil, nil)
	_, err := svc.Update(context.Background(), "land-1", "intruder", UpdateLandInput{})

	assert.ErrorIs(t, err, ErrUnauthorized)
	landRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestLandService_Delete_UnauthorizedNeverDeletes(t *testing.T) {
	landRepo := new(MockLandRepository)
	landRepo.On("GetByID", mock.Anything, "land-1").Return(&entity.Land{ID: "land-1", OwnerID: "owner-1"}, nil)

	svc := newLandServiceForTest(landRepo, nil, nil, nil)
	err := svc.Delete(context.Background(), "land-1", "intruder")

	assert.ErrorIs(t, err, ErrUnauthorized)
	landRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestLandService_Delete_PublishesAndInvalidates(t *testing.T) {
	landRepo := new(MockLandRepository)
	cache := new(MockFeaturedCache)
	publisher := new(MockLandEventPublisher)

	landRepo.On("GetByID", mock.Anything, "land-1").Return(&entity.Land{ID: "land-1", OwnerID: "owner-1"}, nil)
	landRepo.On("Delete", mock.Anything, "land-1").Return(nil)
	cache.On("Invalidate", mock.Anything).Return(nil)
	publisher.On("PublishLandDeleted", mock.Anything, "land-1").Return(nil)

	svc := newLandServiceForTest(landRepo, cache, publisher, nil)
	err := svc.Delete(context.Background(), "land-1", "owner-1")

	assert.NoError(t, err)
	cache.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestLandService_GetFeatured_BackfillsToSix(t *testing.T) {
	landRepo := new(MockLandRepository)
	cache := new(MockFeaturedCache)

	curated := []*entity.Land{
		{ID: "f1", IsFeatured: true},
		{ID: "f2", IsFeatured: true},
	}
	backfill := []*entity.Land{{ID: "b1"}, {ID: "b2"}, {ID: "b3"}, {ID: "b4"}}

	cache.On("Get", mock.Anything).Return(nil, repository.ErrNotFound)
	landRepo.On("FindFeatured", mock.Anything, int64(6)).Return(curated, nil)
	landRepo.On("FindActiveExcluding", mock.Anything, []string{"f1", "f2"}, int64(4)).Return(backfill, nil)
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := newLandServiceForTest(landRepo, cache, nil, nil)
	lands, err := svc.GetFeatured(context.Background())

	assert.NoError(t, err)
	assert.Len(t, lands, 6)
	assert.Equal(t, "f1", lands[0].ID, "curated listings come first")
	assert.Equal(t, "b1", lands[2].ID)
	landRepo.AssertExpectations(t)
}

func TestLandService_GetFeatured_FewerThanSixTotal(t *testing.T) {
	landRepo := new(MockLandRepository)

	landRepo.On("FindFeatured", mock.Anything, int64(6)).Return([]*entity.Land{{ID: "f1"}}, nil)
	landRepo.On("FindActiveExcluding", mock.Anything, []string{"f1"}, int64(5)).Return([]*entity.Land{{ID: "b1"}}, nil)

	svc := newLandServiceForTest(landRepo, nil, nil, nil)
	lands, err := svc.GetFeatured(context.Background())

	assert.NoError(t, err)
	assert.Len(t, lands, 2)
}

func TestLandService_GetFeatured_ServedFromCache(t *testing.T) {
	landRepo := new(MockLandRepository)
	cache := new(MockFeaturedCache)

	cache.On("Get", mock.Anything).Return([]byte(`[{"id":"c1"},{"id":"c2"}]`), nil)

	svc := newLandServiceForTest(landRepo, cache, nil, nil)
	lands, err := svc.GetFeatured(context.Background())

	assert.NoError(t, err)
	assert.Len(t, lands, 2)
	assert.Equal(t, "c1", lands[0].ID)
	landRepo.AssertNotCalled(t, "FindFeatured", mock.Anything, mock.Anything)
}

func TestLandService_GetByID_MapsNotFound(t *testing.T) {
	landRepo := new(MockLandRepository)
	landRepo.On("GetByIDWithOwner", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

	svc := newLandServiceForTest(landRepo, nil, nil, nil)
	_, err := svc.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLandService_Search_WrapsTransientFailure(t *testing.T) {
	landRepo := new(MockLandRepository)
	cause := errors.New("connection reset")
	landRepo.On("Search", mock.Anything, mock.Anything).Return(nil, cause)

	svc := newLandServiceForTest(landRepo, nil, nil, nil)
	_, err := svc.Search(context.Background(), repository.LandFilter{})

	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestLandService_AddPhoto_UploadsAndAppends(t *testing.T) {
	landRepo := new(MockLandRepository)
	photos := new(MockPhotoStorage)
	cache := new(MockFeaturedCache)

	landRepo.On("GetByID", mock.Anything, "land-1").Return(&entity.Land{ID: "land-1", OwnerID: "owner-1", Images: []string{}}, nil)
	photos.On("Upload", mock.Anything, "plot.jpg", []byte("bytes")).Return("http://minio/land-photos/photos/abc.jpg", nil)
	landRepo.On("AppendImage", mock.Anything, "land-1", "http://minio/land-photos/photos/abc.jpg").Return(nil)
	cache.On("Invalidate", mock.Anything).Return(nil)

	svc := newLandServiceForTest(landRepo, cache, nil, photos)
	url, err := svc.AddPhoto(context.Background(), "land-1", "owner-1", "plot.jpg", []byte("bytes"))

	assert.NoError(t, err)
	assert.Equal(t, "http://minio/land-photos/photos/abc.jpg", url)
	landRepo.AssertExpectations(t)
}

func TestLandService_AddPhoto_UnauthorizedNeverUploads(t *testing.T) {
	landRepo := new(MockLandRepository)
	photos := new(MockPhotoStorage)

	landRepo.On("GetByID", mock.Anything, "land-1").Return(&entity.Land{ID: "land-1", OwnerID: "owner-1"}, nil)

	svc := newLandServiceForTest(landRepo, nil, nil, photos)
	_, err := svc.AddPhoto(context.Background(), "land-1", "intruder", "plot.jpg", []byte("bytes"))

	assert.ErrorIs(t, err, ErrUnauthorized)
	photos.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}
