package cashbook

import (
	"context"

	"github.com/norteboa/barberpos/internal/httperr"
	"github.com/norteboa/barberpos/internal/models"
	"github.com/norteboa/barberpos/internal/timezone"
)

type Repository interface {
	CreateEntry(ctx context.Context, entry *models.CashEntry) error
	ListEntries(ctx context.Context, from, to string) ([]models.CashEntry, error)
}

type AddEntryInput struct {
	Date          string // YYYY-MM-DD, defaults to today
	Direction     string
	Description   string
	Amount        float64
	PaymentMethod string
}

type Cashbook struct {
	repo Repository
	tz   string
}

func New(repo Repository, tz string) *Cashbook {
	return &Cashbook{repo: repo, tz: tz}
}

func (uc *Cashbook) AddEntry(
	ctx context.Context,
	in AddEntryInput,
) (*models.CashEntry, error) {

	if in.Direction != models.CashIn && in.Direction != models.CashOut {
		return nil, httperr.ErrBusinessDetail("invalid_input", "direction must be in or out")
	}
	if in.Amount <= 0 {
		return nil, httperr.ErrBusinessDetail("invalid_input", "amount must be positive")
	}
	if in.PaymentMethod != "" && !models.IsPaymentMethod(in.PaymentMethod) {
		return nil, httperr.ErrBusinessDetail("invalid_input", "unknown payment method")
	}

	if in.Date == "" {
		in.Date = timezone.Today(uc.tz)
	}

	entry := &models.CashEntry{
		Date:          in.Date,
		Direction:     in.Direction,
		Description:   in.Description,
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
	}

	if err := uc.repo.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// ListByPeriod devolve os lançamentos com data em [from, to].
// Empty bounds leave that side open.
func (uc *Cashbook) ListByPeriod(
	ctx context.Context,
	from string,
	to string,
) ([]models.CashEntry, error) {
	return uc.repo.ListEntries(ctx, from, to)
}
