package report

import (
	"context"
	"time"

	"github.com/norteboa/barberpos/internal/httperr"
	"github.com/norteboa/barberpos/internal/models"
	"github.com/norteboa/barberpos/internal/timezone"
)

type Repository interface {
	CountClientsCreatedBetween(ctx context.Context, from, to string) (int64, error)
	ListAppointmentsBetween(ctx context.Context, from, to string) ([]models.Appointment, error)
	ListSalesBetween(ctx context.Context, from, to string) ([]models.Sale, error)
	ListCashEntriesBetween(ctx context.Context, from, to string) ([]models.CashEntry, error)
}

const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
)

type Summary struct {
	Period string `json:"period"`
	From   string `json:"from"`
	To     string `json:"to"`

	NewClients           int64          `json:"new_clients"`
	Appointments         int            `json:"appointments"`
	AppointmentsByStatus map[string]int `json:"appointments_by_status"`

	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`

	CashIn      float64 `json:"cash_in"`
	CashOut     float64 `json:"cash_out"`
	CashBalance float64 `json:"cash_balance"`
}

type BuildSummary struct {
	repo Repository
	tz   string
}

func NewBuildSummary(repo Repository, tz string) *BuildSummary {
	return &BuildSummary{repo: repo, tz: tz}
}

func (uc *BuildSummary) Execute(ctx context.Context, period string) (*Summary, error) {
	from, to, err := periodBounds(period, timezone.NowIn(uc.tz))
	if err != nil {
		return nil, err
	}

	out := &Summary{
		Period:               period,
		From:                 from,
		To:                   to,
		AppointmentsByStatus: map[string]int{},
	}

	out.NewClients, err = uc.repo.CountClientsCreatedBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	appts, err := uc.repo.ListAppointmentsBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out.Appointments = len(appts)
	for _, ap := range appts {
		out.AppointmentsByStatus[ap.Status]++
	}

	sales, err := uc.repo.ListSalesBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out.Sales = len(sales)
	for _, s := range sales {
		out.Revenue += s.Total
	}

	entries, err := uc.repo.ListCashEntriesBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		switch e.Direction {
		case models.CashIn:
			out.CashIn += e.Amount
		case models.CashOut:
			out.CashOut += e.Amount
		}
	}
	out.CashBalance = out.CashIn - out.CashOut

	return out, nil
}

// periodBounds resolve today/week/month em limites YYYY-MM-DD inclusivos.
// Week starts on Sunday, matching the counter habit the shop already has.
func periodBounds(period string, now time.Time) (string, string, error) {
	today := now.Format("2006-01-02")

	switch period {
	case PeriodToday, "":
		return today, today, nil
	case PeriodWeek:
		start := now.AddDate(0, 0, -int(now.Weekday()))
		return start.Format("2006-01-02"), today, nil
	case PeriodMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start.Format("2006-01-02"), today, nil
	}

	return "", "", httperr.ErrBusinessDetail("invalid_input", "period must be today, week or month")
}
