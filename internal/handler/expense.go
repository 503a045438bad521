package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/h1mzy0ti/Expense-Tracker-API/internal/analytics"
	"github.com/h1mzy0ti/Expense-Tracker-API/internal/middleware"
	"github.com/h1mzy0ti/Expense-Tracker-API/internal/models"
	"github.com/h1mzy0ti/Expense-Tracker-API/internal/store"
	"github.com/h1mzy0ti/Expense-Tracker-API/internal/util"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler serves expense creation, listing and analytics.
type ExpenseHandler struct {
	Expenses *store.ExpenseStore
}

func NewExpenseHandler(expenses *store.ExpenseStore) *ExpenseHandler {
	return &ExpenseHandler{Expenses: expenses}
}

// ---------- request/response shapes ----------

type createExpenseReq struct {
	Amount        json.Number `json:"amount" binding:"required"`
	Category      string      `json:"category" binding:"required,max=50"`
	Date          string      `json:"date" binding:"required"`
	Description   string      `json:"description" binding:"max=255"`
	PaymentMethod string      `json:"payment_method" binding:"omitempty,oneof=cash card upi"`
}

type expenseResp struct {
	ID            uint   `json:"id"`
	User          uint   `json:"user"`
	Amount        string `json:"amount"`
	Category      string `json:"category"`
	Date          string `json:"date"`
	Description   string `json:"description"`
	PaymentMethod string `json:"payment_method"`
}

func toExpenseResp(e *models.Expense) expenseResp {
	return expenseResp{
		ID:            e.ID,
		User:          e.UserID,
		Amount:        util.FormatCent(e.AmountCent),
		Category:      e.Category,
		Date:          e.Date.Format("2006-01-02"),
		Description:   e.Description,
		PaymentMethod: e.PaymentMethod,
	}
}

// ---------- create ----------

// Create stores a new expense for the authenticated user. The owner is
// always taken from the token, never from the payload.
func (h *ExpenseHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
		return
	}

	var req createExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.FieldErrors(c, util.BindingErrors(err))
		return
	}

	errs := make(map[string]string)

	amountCent, err := util.ParseAmountCent(req.Amount.String())
	if err != nil {
		errs["amount"] = "A valid number with at most 10 digits and 2 decimal places is required."
	}

	req.Category = strings.TrimSpace(req.Category)
	if err := util.ValidateCategory(req.Category); err != nil {
		errs["category"] = "This field may not be blank."
	}

	date, err := util.ParseDate(req.Date)
	if err != nil {
		errs["date"] = "Date has wrong format. Use YYYY-MM-DD."
	}

	if len(errs) > 0 {
		util.FieldErrors(c, errs)
		return
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.PaymentCash
	}

	expense := models.Expense{
		UserID:        user.ID,
		AmountCent:    amountCent,
		Category:      req.Category,
		Date:          date,
		Description:   req.Description,
		PaymentMethod: paymentMethod,
	}

	if err := h.Expenses.Create(&expense); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save expense")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Expense saved",
		"expense": toExpenseResp(&expense),
	})
}

// ---------- list ----------

// List returns the caller's expenses, optionally filtered by an
// inclusive start_date/end_date range.
func (h *ExpenseHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
		return
	}

	from, to, errs := parseDateRange(c)
	if len(errs) > 0 {
		util.FieldErrors(c, errs)
		return
	}

	expenses, err := h.Expenses.List(user.ID, from, to)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list expenses")
		return
	}

	items := make([]expenseResp, 0, len(expenses))
	for i := range expenses {
		items = append(items, toExpenseResp(&expenses[i]))
	}

	c.JSON(http.StatusOK, items)
}

// ---------- analytics ----------

// Analytics aggregates the caller's expenses over the requested date
// range. Unlike the plain list there is no raw record output, only the
// rollup report.
func (h *ExpenseHandler) Analytics(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
		return
	}

	from, to, errs := parseDateRange(c)
	if len(errs) > 0 {
		util.FieldErrors(c, errs)
		return
	}

	expenses, err := h.Expenses.List(user.ID, from, to)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load expenses")
		return
	}

	c.JSON(http.StatusOK, analytics.Summarize(expenses))
}

// parseDateRange reads the optional start_date/end_date query
// parameters. Both bounds are inclusive.
func parseDateRange(c *gin.Context) (from, to *time.Time, errs map[string]string) {
	errs = make(map[string]string)

	if s := c.Query("start_date"); s != "" {
		t, err := util.ParseDate(s)
		if err != nil {
			errs["start_date"] = "Date has wrong format. Use YYYY-MM-DD."
		} else {
			from = &t
		}
	}
	if s := c.Query("end_date"); s != "" {
		t, err := util.ParseDate(s)
		if err != nil {
			errs["end_date"] = "Date has wrong format. Use YYYY-MM-DD."
		} else {
			to = &t
		}
	}
	return from, to, errs
}
