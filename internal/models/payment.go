package models

import (
	"time"
)

// Payment is a completed membership payment record. TransactionID comes from
// the payment processor and must be unique.
type Payment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Email         string    `gorm:"not null;index" json:"email"`
	Amount        int64     `gorm:"not null" json:"amount"`
	TransactionID string    `gorm:"not null;uniqueIndex" json:"transaction_id"`
	PaymentMethod string    `gorm:"not null" json:"payment_method"`
	PaidAt        time.Time `json:"paid_at"`
}
