package repository

import (
	"context"

	"talkora/internal/models"

	"gorm.io/gorm"
)

// PaymentRepository defines the interface for payment record operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	ListByEmail(ctx context.Context, email string) ([]*models.Payment, error)
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	if err := r.db.WithContext(ctx).Create(payment).Error; err != nil {
		if isUniqueViolation(err) {
			return models.NewConflictError("Payment already recorded")
		}
		return err
	}
	return nil
}

func (r *paymentRepository) ListByEmail(ctx context.Context, email string) ([]*models.Payment, error) {
	var payments []*models.Payment
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("paid_at DESC").
		Find(&payments).Error
	return payments, err
}
