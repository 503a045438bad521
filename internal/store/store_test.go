package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/h1mzy0ti/Expense-Tracker-API/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Expense{}, &models.AuditLog{}))
	return db
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestExpenseStoreCreateAssignsID(t *testing.T) {
	s := NewExpenseStore(testDB(t))

	e := models.Expense{
		UserID:        1,
		AmountCent:    1050,
		Category:      "food",
		Date:          day("2024-01-01"),
		PaymentMethod: models.PaymentCash,
	}
	require.NoError(t, s.Create(&e))
	assert.NotZero(t, e.ID)
}

func TestExpenseStoreListOwnerScoped(t *testing.T) {
	s := NewExpenseStore(testDB(t))

	require.NoError(t, s.Create(&models.Expense{UserID: 1, AmountCent: 100, Category: "a", Date: day("2024-01-01"), PaymentMethod: "cash"}))
	require.NoError(t, s.Create(&models.Expense{UserID: 2, AmountCent: 200, Category: "b", Date: day("2024-01-01"), PaymentMethod: "cash"}))

	got, err := s.List(1, nil, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].UserID)
}

func TestExpenseStoreListInclusiveBounds(t *testing.T) {
	s := NewExpenseStore(testDB(t))

	for _, d := range []string{"2024-01-01", "2024-01-15", "2024-01-31", "2024-02-01"} {
		require.NoError(t, s.Create(&models.Expense{UserID: 1, AmountCent: 100, Category: "a", Date: day(d), PaymentMethod: "cash"}))
	}

	from := day("2024-01-01")
	to := day("2024-01-31")
	got, err := s.List(1, &from, &to)
	require.NoError(t, err)
	require.Len(t, got, 3, "records dated exactly start_date and end_date are included")

	// open-ended lower bound
	got, err = s.List(1, nil, &to)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	// open-ended upper bound
	got, err = s.List(1, &from, nil)
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestUserStoreLookups(t *testing.T) {
	s := NewUserStore(testDB(t))

	u := models.User{Username: "Alice", PasswordHash: "x"}
	require.NoError(t, s.Create(&u))

	got, err := s.ByUsername("alice") // case-insensitive
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	got, err = s.ByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Username)

	taken, err := s.UsernameTaken("ALICE")
	require.NoError(t, err)
	assert.True(t, taken)

	_, err = s.ByUsername("nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
