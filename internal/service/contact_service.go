package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/landsetu/landsetu/internal/domain/entity"
	"github.com/landsetu/landsetu/internal/platform/logger"
	"github.com/landsetu/landsetu/internal/repository"
)

type ContactInput struct {
	LandID  string
	Name    string
	Email   string
	Phone   string
	Message string
}

type ContactService interface {
	Create(ctx context.Context, in ContactInput) (*entity.ContactRequest, error)
	ListForSeller(ctx context.Context, sellerID string) ([]*entity.ContactRequestWithLand, error)
	UpdateStatus(ctx context.Context, requestID, callerID string, status entity.ContactStatus) error
}

type contactService struct {
	contactRepo repository.ContactRepository
	landRepo    repository.LandRepository
	userRepo    repository.UserRepository
	publisher   ContactEventPublisher
	mailer      InquiryMailer
	log         logger.Logger
}

func NewContactService(
	contactRepo repository.ContactRepository,
	landRepo repository.LandRepository,
	userRepo repository.UserRepository,
	publisher ContactEventPublisher,
	mailer InquiryMailer,
	log logger.Logger,
) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		landRepo:    landRepo,
		userRepo:    userRepo,
		publisher:   publisher,
		mailer:      mailer,
		log:         log,
	}
}

// Create records a buyer inquiry. The seller reference is captured from the
// land's owner at this moment and never recomputed afterwards.
func (s *contactService) Create(ctx context.Context, in ContactInput) (*entity.ContactRequest, error) {
	land, err := s.landRepo.GetByID(ctx, in.LandID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Errorf("Failed to load land %s for contact request: %v", in.LandID, err)
		return nil, fmt.Errorf("ContactService.Create: failed to load land: %w", err)
	}

	if errs := validateContactInput(in); errs != nil {
		return nil, NewValidationError(errs)
	}

	now := time.Now().UTC()
	request := &entity.ContactRequest{
		LandID:    land.ID,
		SellerID:  land.OwnerID,
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:     strings.TrimSpace(in.Phone),
		Message:   in.Message,
		Status:    entity.ContactStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.contactRepo.Create(ctx, request)
	if err != nil {
		s.log.Errorf("Failed to create contact request for land %s: %v", in.LandID, err)
		return nil, fmt.Errorf("ContactService.Create: %w", err)
	}
	request.ID = id

	s.notifySeller(ctx, request, land.Title)

	if s.publisher != nil {
		if err := s.publisher.PublishContactCreated(ctx, request); err != nil {
			s.log.Warnf("Failed to publish contact.created event for %s: %v", request.ID, err)
		}
	}

	return request, nil
}

func (s *contactService) ListForSeller(ctx context.Context, sellerID string) ([]*entity.ContactRequestWithLand, error) {
	requests, err := s.contactRepo.FindBySeller(ctx, sellerID)
	if err != nil {
		s.log.Errorf("Failed to list contact requests for seller %s: %v", sellerID, err)
		return nil, fmt.Errorf("ContactService.ListForSeller: %w", err)
	}
	return requests, nil
}

// UpdateStatus sets the request's status unconditionally; there is no
// transition graph, any status is reachable from any other. Only the seller
// captured at creation time may change it.
func (s *contactService) UpdateStatus(ctx context.Context, requestID, callerID string, status entity.ContactStatus) error {
	request, err := s.contactRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		s.log.Errorf("Failed to load contact request %s: %v", requestID, err)
		return fmt.Errorf("ContactService.UpdateStatus: failed to load request: %w", err)
	}

	if request.SellerID != callerID {
		return ErrUnauthorized
	}

	if !status.Valid() {
		return NewValidationError(fieldErrors{"status": "Status must be one of pending, read, responded"})
	}

	if err := s.contactRepo.UpdateStatus(ctx, requestID, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		s.log.Errorf("Failed to update status of contact request %s: %v", requestID, err)
		return fmt.Errorf("ContactService.UpdateStatus: %w", err)
	}
	return nil
}

// notifySeller emails the seller about the new inquiry. Any failure here is
// logged and swallowed: the inquiry is already persisted.
func (s *contactService) notifySeller(ctx context.Context, request *entity.ContactRequest, landTitle string) {
	if s.mailer == nil || s.userRepo == nil {
		return
	}

	seller, err := s.userRepo.GetByID(ctx, request.SellerID)
	if err != nil {
		s.log.Warnf("Failed to resolve seller %s for inquiry notification: %v", request.SellerID, err)
		return
	}
	if seller.Email == "" {
		return
	}

	if err := s.mailer.SendInquiryNotification(seller.Email, landTitle, request.Name, request.Message); err != nil {
		s.log.Warnf("Failed to send inquiry notification to seller %s: %v", request.SellerID, err)
	}
}
