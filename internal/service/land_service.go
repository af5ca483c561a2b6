package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/landsetu/landsetu/internal/domain/entity"
	"github.com/landsetu/landsetu/internal/platform/logger"
	"github.com/landsetu/landsetu/internal/repository"
)

// featuredRailSize is the homepage rail target: curated listings first,
// backfilled with the newest active ones when fewer than 6 are curated.
const featuredRailSize = 6

const defaultFeaturedCacheTTL = 5 * time.Minute

type LandInput struct {
	Title       string
	Description string
	Price       float64
	Area        float64
	Address     string
	City        string
	State       string
	Pincode     string
	LandType    string
	Features    []string
	Images      []string
}

// UpdateLandInput is a partial update: nil fields keep their prior values.
// Location fields merge individually, never wholesale.
type UpdateLandInput struct {
	Title       *string
	Description *string
	Price       *float64
	Area        *float64
	Address     *string
	City        *string
	State       *string
	Pincode     *string
	LandType    *string
	Features    []string
	Images      []string
}

type LandService interface {
	Create(ctx context.Context, ownerID string, in LandInput) (*entity.Land, error)
	Update(ctx context.Context, landID, ownerID string, in UpdateLandInput) (*entity.Land, error)
	Delete(ctx context.Context, landID, ownerID string) error
	Search(ctx context.Context, filter repository.LandFilter) ([]*entity.Land, error)
	GetFeatured(ctx context.Context) ([]*entity.Land, error)
	GetByID(ctx context.Context, id string) (*entity.LandWithOwner, error)
	GetByOwner(ctx context.Context, ownerID string) ([]*entity.Land, error)
	AddPhoto(ctx context.Context, landID, ownerID, fileName string, data []byte) (string, error)
}

type landService struct {
	landRepo    repository.LandRepository
	cache       FeaturedCache
	publisher   LandEventPublisher
	photos      PhotoStorage
	log         logger.Logger
	featuredTTL time.Duration
}

func NewLandService(
	landRepo repository.LandRepository,
	cache FeaturedCache,
	publisher LandEventPublisher,
	photos PhotoStorage,
	log logger.Logger,
	featuredTTL time.Duration,
) LandService {
	if featuredTTL <= 0 {
		featuredTTL = defaultFeaturedCacheTTL
	}
	return &landService{
		landRepo:    landRepo,
		cache:       cache,
		publisher:   publisher,
		photos:      photos,
		log:         log,
		featuredTTL: featuredTTL,
	}
}

func (s *landService) Create(ctx context.Context, ownerID string, in LandInput) (*entity.Land, error) {
	now := time.Now().UTC()
	land := &entity.Land{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Price:       in.Price,
		Area:        in.Area,
		Location: entity.Location{
			Address: in.Address,
			City:    in.City,
			State:   in.State,
			Pincode: in.Pincode,
		},
		Images:     in.Images,
		LandType:   entity.LandType(in.LandType),
		Features:   in.Features,
		OwnerID:    ownerID,
		IsFeatured: false,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if land.Images == nil {
		land.Images = []string{}
	}
	if land.Features == nil {
		land.Features = []string{}
	}

	if errs := validateLand(land); errs != nil {
		return nil, NewValidationError(errs)
	}

	id, err := s.landRepo.Create(ctx, land)
	if err != nil {
		s.log.Errorf("Failed to create land for owner %s: %v", ownerID, err)
		return nil, fmt.Errorf("LandService.Create: %w", err)
	}
	land.ID = id

	s.invalidateFeatured(ctx)

	if s.publisher != nil {
		if err := s.publisher.PublishLandCreated(ctx, land); err != nil {
			s.log.Warnf("Failed to publish land.created event for %s: %v", land.ID, err)
		}
	}

	return land, nil
}

func (s *landService) Update(ctx context.Context, landID, ownerID string, in UpdateLandInput) (*entity.Land, error) {
	land, err := s.getOwned(ctx, landID, ownerID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		land.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		land.Description = *in.Description
	}
	if in.Price != nil {
		land.Price = *in.Price
	}
	if in.Area != nil {
		land.Area = *in.Area
	}
	if in.Address != nil {
		land.Location.Address = *in.Address
	}
	if in.City != nil {
		land.Location.City = *in.City
	}
	if in.State != nil {
		land.Location.State = *in.State
	}
	if in.Pincode != nil {
		land.Location.Pincode = *in.Pincode
	}
	if in.LandType != nil {
		land.LandType = entity.LandType(*in.LandType)
	}
	if in.Features != nil {
		land.Features = in.Features
	}
	if in.Images != nil {
		land.Images = in.Images
	}

	if errs := validateLand(land); errs != nil {
		return nil, NewValidationError(errs)
	}

	land.UpdatedAt = time.Now().UTC()
	if err := s.landRepo.Update(ctx, land); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Errorf("Failed to update land %s: %v", landID, err)
		return nil, fmt.Errorf("LandService.Update: %w", err)
	}

	s.invalidateFeatured(ctx)

	if s.publisher != nil {
		if err := s.publisher.PublishLandUpdated(ctx, land); err != nil {
			s.log.Warnf("Failed to publish land.updated event for %s: %v", land.ID, err)
		}
	}

	return land, nil
}

// Delete hard-removes the listing; there is no soft-delete on this path.
func (s *landService) Delete(ctx context.Context, landID, ownerID string) error {
	if _, err := s.getOwned(ctx, landID, ownerID); err != nil {
		return err
	}

	if err := s.landRepo.Delete(ctx, landID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		s.log.Errorf("Failed to delete land %s: %v", landID, err)
		return fmt.Errorf("LandService.Delete: %w", err)
	}

	s.invalidateFeatured(ctx)

	if s.publisher != nil {
		if err := s.publisher.PublishLandDeleted(ctx, landID); err != nil {
			s.log.Warnf("Failed to publish land.deleted event for %s: %v", landID, err)
		}
	}

	return nil
}

func (s *landService) Search(ctx context.Context, filter repository.LandFilter) ([]*entity.Land, error) {
	lands, err := s.landRepo.Search(ctx, filter)
	if err != nil {
		s.log.Errorf("Failed to search lands: %v", err)
		return nil, fmt.Errorf("LandService.Search: %w", err)
	}
	return lands, nil
}

// GetFeatured returns up to 6 active listings, curated ones first
// (newest-first among them), backfilled with the newest active non-featured
// listings. With fewer than 6 active listings in total, fewer are returned.
func (s *landService) GetFeatured(ctx context.Context) ([]*entity.Land, error) {
	if cached := s.featuredFromCache(ctx); cached != nil {
		return cached, nil
	}

	featured, err := s.landRepo.FindFeatured(ctx, featuredRailSize)
	if err != nil {
		s.log.Errorf("Failed to fetch featured lands: %v", err)
		return nil, fmt.Errorf("LandService.GetFeatured: %w", err)
	}

	if len(featured) < featuredRailSize {
		exclude := make([]string, len(featured))
		for i, land := range featured {
			exclude[i] = land.ID
		}
		backfill, err := s.landRepo.FindActiveExcluding(ctx, exclude, int64(featuredRailSize-len(featured)))
		if err != nil {
			s.log.Errorf("Failed to backfill featured lands: %v", err)
			return nil, fmt.Errorf("LandService.GetFeatured: %w", err)
		}
		featured = append(featured, backfill...)
	}

	s.cacheFeatured(ctx, featured)
	return featured, nil
}

func (s *landService) GetByID(ctx context.Context, id string) (*entity.LandWithOwner, error) {
	land, err := s.landRepo.GetByIDWithOwner(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Errorf("Failed to get land %s: %v", id, err)
		return nil, fmt.Errorf("LandService.GetByID: %w", err)
	}
	return land, nil
}

// GetByOwner lists the owner's own listings newest-first, inactive ones
// included: the dashboard shows everything the user owns.
func (s *landService) GetByOwner(ctx context.Context, ownerID string) ([]*entity.Land, error) {
	lands, err := s.landRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		s.log.Errorf("Failed to list lands of owner %s: %v", ownerID, err)
		return nil, fmt.Errorf("LandService.GetByOwner: %w", err)
	}
	return lands, nil
}

func (s *landService) AddPhoto(ctx context.Context, landID, ownerID, fileName string, data []byte) (string, error) {
	land, err := s.getOwned(ctx, landID, ownerID)
	if err != nil {
		return "", err
	}

	if s.photos == nil {
		return "", fmt.Errorf("LandService.AddPhoto: photo storage is not configured")
	}

	url, err := s.photos.Upload(ctx, fileName, data)
	if err != nil {
		s.log.Errorf("Failed to upload photo for land %s: %v", landID, err)
		return "", fmt.Errorf("LandService.AddPhoto: %w", err)
	}

	if err := s.landRepo.AppendImage(ctx, landID, url); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrNotFound
		}
		s.log.Errorf("Failed to append photo URL to land %s: %v", landID, err)
		return "", fmt.Errorf("LandService.AddPhoto: %w", err)
	}

	s.invalidateFeatured(ctx)

	if s.publisher != nil {
		land.Images = append(land.Images, url)
		if err := s.publisher.PublishLandUpdated(ctx, land); err != nil {
			s.log.Warnf("Failed to publish land.updated event for %s: %v", landID, err)
		}
	}

	return url, nil
}

// getOwned loads a land and verifies the caller owns it. Not-found is
// reported before any ownership or validation detail can leak.
func (s *landService) getOwned(ctx context.Context, landID, ownerID string) (*entity.Land, error) {
	land, err := s.landRepo.GetByID(ctx, landID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Errorf("Failed to load land %s: %v", landID, err)
		return nil, fmt.Errorf("LandService: failed to load land: %w", err)
	}
	if land.OwnerID != ownerID {
		return nil, ErrUnauthorized
	}
	return land, nil
}

func (s *landService) featuredFromCache(ctx context.Context) []*entity.Land {
	if s.cache == nil {
		return nil
	}
	data, err := s.cache.Get(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Warnf("Failed to read featured lands cache: %v", err)
		}
		return nil
	}
	var lands []*entity.Land
	if err := json.Unmarshal(data, &lands); err != nil {
		s.log.Warnf("Failed to unmarshal cached featured lands: %v", err)
		if delErr := s.cache.Invalidate(ctx); delErr != nil {
			s.log.Warnf("Failed to drop corrupted featured lands cache: %v", delErr)
		}
		return nil
	}
	return lands
}

func (s *landService) cacheFeatured(ctx context.Context, lands []*entity.Land) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(lands)
	if err != nil {
		s.log.Warnf("Failed to marshal featured lands for caching: %v", err)
		return
	}
	if err := s.cache.Set(ctx, data, s.featuredTTL); err != nil {
		s.log.Warnf("Failed to set featured lands cache: %v", err)
	}
}

func (s *landService) invalidateFeatured(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warnf("Failed to invalidate featured lands cache: %v", err)
	}
}
