package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"food-order/internal/model"
	"food-order/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// offerService implements OfferService.
type offerService struct {
	offerRepo repository.OfferRepository
	now       func() time.Time
	logger    zerolog.Logger
}

// NewOfferService creates a new offer service.
func NewOfferService(offerRepo repository.OfferRepository, logger zerolog.Logger) OfferService {
	return &offerService{
		offerRepo: offerRepo,
		now:       time.Now,
		logger:    logger.With().Str("service", "offer").Logger(),
	}
}

func (s *offerService) GetVendorOffers(ctx context.Context, vendorID uuid.UUID) ([]model.Offer, error) {
	offers, err := s.offerRepo.ListForVendor(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	return offers, nil
}

// AddOffer creates an offer owned by the vendor.
func (s *offerService) AddOffer(ctx context.Context, vendorID uuid.UUID, req *model.OfferRequest) (*model.Offer, error) {
	if err := validateWindow(req); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	offer := &model.Offer{
		ID:        uuid.New(),
		Vendors:   []uuid.UUID{vendorID},
		CreatedAt: now,
	}
	applyOfferRequest(offer, req, now)

	if err := s.offerRepo.Create(ctx, offer); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("vendor_id", vendorID.String()).
		Str("offer_id", offer.ID.String()).
		Str("promo_code", offer.PromoCode).
		Msg("offer created")
	return offer, nil
}

// EditOffer updates an offer the vendor is allowed to manage.
func (s *offerService) EditOffer(ctx context.Context, vendorID, offerID uuid.UUID, req *model.OfferRequest) (*model.Offer, error) {
	if err := validateWindow(req); err != nil {
		return nil, err
	}

	offer, err := s.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}
	if offer == nil {
		return nil, model.ErrOfferNotFound
	}
	if !offer.AppliesToVendor(vendorID) {
		s.logger.Warn().Str("vendor_id", vendorID.String()).Str("offer_id", offerID.String()).Msg("offer edit refused")
		return nil, model.ErrOfferNotOwned
	}

	applyOfferRequest(offer, req, s.now().UTC())
	if err := s.offerRepo.Update(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

// VerifyOffer resolves a UUID as an offer ID and anything else as a promo code.
func (s *offerService) VerifyOffer(ctx context.Context, codeOrID string) (*model.Offer, error) {
	var (
		offer *model.Offer
		err   error
	)
	if id, parseErr := uuid.Parse(codeOrID); parseErr == nil {
		offer, err = s.offerRepo.GetByID(ctx, id)
	} else {
		offer, err = s.offerRepo.GetByPromoCode(ctx, strings.TrimSpace(codeOrID))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}
	if offer == nil {
		return nil, model.ErrOfferNotFound
	}
	if !offer.ValidAt(s.now()) {
		return nil, model.ErrInvalidOffer
	}
	return offer, nil
}

func validateWindow(req *model.OfferRequest) error {
	if req.StartValidity != nil && req.EndValidity != nil && req.EndValidity.Before(*req.StartValidity) {
		return model.NewDomainError(model.ErrCodeValidation, "endValidity must not be before startValidity")
	}
	return nil
}

func applyOfferRequest(o *model.Offer, req *model.OfferRequest, now time.Time) {
	o.OfferType = req.OfferType
	o.Title = req.Title
	o.Description = req.Description
	o.MinValue = req.MinValue
	o.OfferAmount = req.OfferAmount
	o.StartValidity = req.StartValidity
	o.EndValidity = req.EndValidity
	o.PromoCode = req.PromoCode
	o.PromoType = req.PromoType
	o.Banks = req.Banks
	o.Bins = req.Bins
	o.Pincode = req.Pincode
	o.IsActive = req.IsActive
	o.UpdatedAt = now
	if o.Banks == nil {
		o.Banks = []string{}
	}
	if o.Bins == nil {
		o.Bins = []int64{}
	}
}
