package recorder

import (
	"context"

	"lemonade-stand/internal/model"

	"github.com/shopspring/decimal"
)

// DayRecord is everything worth keeping about a resolved day.
type DayRecord struct {
	RunID    string
	Day      model.DayContext
	Outcomes []model.DailyOutcome
}

// OutcomeRow is one stand's day as read back from history.
type OutcomeRow struct {
	RunID        string          `db:"run_id"`
	Day          int             `db:"day"`
	Weather      string          `db:"weather"`
	Event        string          `db:"event"`
	Stand        int             `db:"stand"`
	Skipped      bool            `db:"skipped"`
	GlassesMade  int             `db:"glasses_made"`
	SignsMade    int             `db:"signs_made"`
	PriceCents   int             `db:"price_cents"`
	GlassesSold  int             `db:"glasses_sold"`
	Income       decimal.Decimal `db:"income"`
	Expenses     decimal.Decimal `db:"expenses"`
	Profit       decimal.Decimal `db:"profit"`
	Assets       decimal.Decimal `db:"assets"`
	WentBankrupt bool            `db:"went_bankrupt"`
}

// Recorder persists game history for later analysis.
type Recorder interface {
	RecordDay(ctx context.Context, rec *DayRecord) error
	History(ctx context.Context, runID string) ([]OutcomeRow, error)
	Close() error
}
