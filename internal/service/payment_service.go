package service

import (
	"context"
	"fmt"
	"time"

	"food-order/internal/model"
	"food-order/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// paymentService implements PaymentService.
type paymentService struct {
	txnRepo   repository.TransactionRepository
	offerRepo repository.OfferRepository
	now       func() time.Time
	logger    zerolog.Logger
}

// NewPaymentService creates a new payment service.
func NewPaymentService(txnRepo repository.TransactionRepository, offerRepo repository.OfferRepository, logger zerolog.Logger) PaymentService {
	return &paymentService{
		txnRepo:   txnRepo,
		offerRepo: offerRepo,
		now:       time.Now,
		logger:    logger.With().Str("service", "payment").Logger(),
	}
}

// CreatePayment opens a cash-on-delivery transaction for the amount less any
// offer discount.
func (s *paymentService) CreatePayment(ctx context.Context, customerID uuid.UUID, req *model.PaymentRequest) (*model.Transaction, error) {
	now := s.now().UTC()
	payable := req.Amount

	if req.OfferID != nil {
		offer, err := s.offerRepo.GetByID(ctx, *req.OfferID)
		if err != nil {
			return nil, fmt.Errorf("failed to get offer: %w", err)
		}
		if offer == nil || !offer.ValidAt(now) {
			return nil, model.ErrInvalidOffer
		}
		payable -= offer.Discount(req.Amount)
	}

	txn := &model.Transaction{
		ID:              uuid.New(),
		CustomerID:      customerID,
		OrderValue:      payable,
		OfferUsed:       req.OfferID,
		Status:          model.TransactionOpen,
		PaymentMode:     req.PaymentMode,
		PaymentResponse: model.CashOnDelivery,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.txnRepo.Create(ctx, txn); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("transaction_id", txn.ID.String()).
		Str("customer_id", customerID.String()).
		Float64("amount", req.Amount).
		Float64("payable", payable).
		Msg("payment transaction opened")
	return txn, nil
}
