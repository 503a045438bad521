// Package store wraps the gorm queries behind small handles so handlers
// receive their persistence dependency explicitly.
package store

import (
	"fmt"
	"time"

	"github.com/h1mzy0ti/Expense-Tracker-API/internal/models"

	"gorm.io/gorm"
)

// ExpenseStore persists expense records. All reads are owner-scoped.
type ExpenseStore struct {
	db *gorm.DB
}

func NewExpenseStore(db *gorm.DB) *ExpenseStore {
	return &ExpenseStore{db: db}
}

// Create inserts a new expense and fills its server-assigned ID.
func (s *ExpenseStore) Create(e *models.Expense) error {
	if err := s.db.Create(e).Error; err != nil {
		return fmt.Errorf("create expense: %w", err)
	}
	return nil
}

// List returns the owner's expenses, optionally restricted to an
// inclusive [from, to] date range. Nil bounds leave that side open.
func (s *ExpenseStore) List(ownerID uint, from, to *time.Time) ([]models.Expense, error) {
	q := s.db.Where("user_id = ?", ownerID)
	if from != nil {
		q = q.Where("date >= ?", *from)
	}
	if to != nil {
		q = q.Where("date <= ?", *to)
	}

	var expenses []models.Expense
	if err := q.Order("id ASC").Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}
