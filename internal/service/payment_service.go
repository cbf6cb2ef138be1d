package service

import (
	"context"
	"math"
	"strings"
	"time"

	"talkora/internal/models"
	"talkora/internal/repository"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/paymentintent"
)

// IntentCreator creates a payment intent and returns its client secret.
// It exists so tests can run without talking to Stripe.
type IntentCreator func(amountCents int64) (string, error)

type PaymentService struct {
	paymentRepo  repository.PaymentRepository
	createIntent IntentCreator
}

type RecordPaymentInput struct {
	Email         string
	Amount        int64
	TransactionID string
	PaymentMethod string
}

func NewPaymentService(paymentRepo repository.PaymentRepository, createIntent IntentCreator) *PaymentService {
	if createIntent == nil {
		createIntent = stripeIntentCreator
	}
	return &PaymentService{
		paymentRepo:  paymentRepo,
		createIntent: createIntent,
	}
}

func stripeIntentCreator(amountCents int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
	}
	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}

// CreateIntent converts a dollar price into cents and opens a payment intent.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 {
		return "", models.NewValidationError("Price must be positive")
	}
	amount := int64(math.Round(price * 100))
	secret, err := s.createIntent(amount)
	if err != nil {
		return "", models.NewInternalError("Payment intent creation failed", err)
	}
	return secret, nil
}

func (s *PaymentService) RecordPayment(ctx context.Context, in RecordPaymentInput) (*models.Payment, error) {
	if in.Email == "" || in.Amount <= 0 || in.TransactionID == "" || in.PaymentMethod == "" {
		return nil, models.NewValidationError("Missing required fields")
	}
	payment := &models.Payment{
		Email:         strings.ToLower(in.Email),
		Amount:        in.Amount,
		TransactionID: in.TransactionID,
		PaymentMethod: in.PaymentMethod,
		PaidAt:        time.Now(),
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}
