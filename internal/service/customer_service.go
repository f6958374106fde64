package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"food-order/internal/auth"
	"food-order/internal/model"
	"food-order/internal/notifier"
	"food-order/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// customerService implements CustomerService.
type customerService struct {
	customerRepo repository.CustomerRepository
	tokens       *auth.TokenManager
	email        notifier.EmailSender
	sms          notifier.SMSSender
	now          func() time.Time
	logger       zerolog.Logger
}

// NewCustomerService creates a new customer service.
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	tokens *auth.TokenManager,
	email notifier.EmailSender,
	sms notifier.SMSSender,
	logger zerolog.Logger,
) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		tokens:       tokens,
		email:        email,
		sms:          sms,
		now:          time.Now,
		logger:       logger.With().Str("service", "customer").Logger(),
	}
}

// Signup creates an unverified account and emails its first OTP.
func (s *customerService) Signup(ctx context.Context, req *model.SignupRequest) (*model.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.customerRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}
	if existing != nil {
		return nil, model.ErrCustomerExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	otp, expiry, err := auth.GenerateOTP(now)
	if err != nil {
		return nil, err
	}

	customer := &model.Customer{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Phone:        req.Phone,
		OTP:          otp,
		OTPExpiry:    expiry,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	if err := s.email.SendVerification(ctx, customer.Email, otp); err != nil {
		s.logger.Warn().Err(err).Str("customer_id", customer.ID.String()).Msg("verification email not sent")
	}

	s.logger.Info().Str("customer_id", customer.ID.String()).Msg("customer signed up")
	return s.authResponse(customer)
}

func (s *customerService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	customer, err := s.customerRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}
	if customer == nil {
		return nil, model.ErrInvalidCredentials
	}

	ok, err := auth.ComparePassword(customer.PasswordHash, req.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.ErrInvalidCredentials
	}
	return s.authResponse(customer)
}

// Verify marks the account verified when the OTP matches and has not expired.
func (s *customerService) Verify(ctx context.Context, customerID uuid.UUID, req *model.VerifyRequest) (*model.AuthResponse, error) {
	customer, err := s.load(ctx, customerID)
	if err != nil {
		return nil, err
	}

	entered, err := strconv.Atoi(req.OTP)
	if err != nil {
		return nil, model.ErrInvalidOTP
	}

	now := s.now().UTC()
	if !auth.CheckOTP(customer.OTP, customer.OTPExpiry, entered, now) {
		s.logger.Warn().Str("customer_id", customerID.String()).Msg("otp rejected")
		return nil, model.ErrInvalidOTP
	}

	customer.Verified = true
	customer.UpdatedAt = now
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return s.authResponse(customer)
}

// RequestOTP issues a fresh OTP and texts it to the customer.
func (s *customerService) RequestOTP(ctx context.Context, customerID uuid.UUID) error {
	customer, err := s.load(ctx, customerID)
	if err != nil {
		return err
	}

	now := s.now().UTC()
	otp, expiry, err := auth.GenerateOTP(now)
	if err != nil {
		return err
	}
	customer.OTP = otp
	customer.OTPExpiry = expiry
	customer.UpdatedAt = now

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return err
	}

	if err := s.sms.SendOTP(ctx, customer.Phone, otp); err != nil {
		return fmt.Errorf("failed to send OTP: %w", err)
	}
	return nil
}

func (s *customerService) GetProfile(ctx context.Context, customerID uuid.UUID) (*model.Customer, error) {
	return s.load(ctx, customerID)
}

func (s *customerService) EditProfile(ctx context.Context, customerID uuid.UUID, req *model.EditProfileRequest) (*model.Customer, error) {
	customer, err := s.load(ctx, customerID)
	if err != nil {
		return nil, err
	}

	customer.FirstName = req.FirstName
	customer.LastName = req.LastName
	customer.Address = req.Address
	customer.UpdatedAt = s.now().UTC()

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) load(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if customer == nil {
		return nil, model.ErrCustomerNotFound
	}
	return customer, nil
}

func (s *customerService) authResponse(c *model.Customer) (*model.AuthResponse, error) {
	signature, err := s.tokens.Generate(model.AuthPayload{
		ID:       c.ID,
		Email:    c.Email,
		Role:     model.RoleCustomer,
		Verified: c.Verified,
	})
	if err != nil {
		return nil, err
	}
	return &model.AuthResponse{Signature: signature, Verified: c.Verified, Email: c.Email}, nil
}
