package models

import "time"

// Payment methods accepted on an expense.
const (
	PaymentCash = "cash"
	PaymentCard = "card"
	PaymentUPI  = "upi"
)

// Expense represents a single expense record.
// Amounts are stored in cents to avoid float error, e.g. 12.34 = 1234.
type Expense struct {
	ID            uint      `gorm:"primaryKey"`
	UserID        uint      `gorm:"index;not null"`
	AmountCent    int64     `gorm:"not null"`
	Category      string    `gorm:"size:50;not null"`
	Date          time.Time `gorm:"index;not null"` // calendar date, stored at UTC midnight
	Description   string    `gorm:"size:255"`
	PaymentMethod string    `gorm:"size:16;not null;default:cash"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
