package recorder

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// SQLRecorder writes history to SQLite or PostgreSQL.
type SQLRecorder struct {
	db     *sqlx.DB
	driver string
	mu     sync.Mutex
}

// NewSQLRecorder opens (or creates) the database and runs migrations.
func NewSQLRecorder(driver, dsn string) (*SQLRecorder, error) {
	var sqlDriver string
	switch driver {
	case DriverSQLite:
		sqlDriver = "sqlite"
	case DriverPostgres:
		sqlDriver = "pgx"
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.Open(sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	if driver == DriverSQLite {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("set WAL mode: %w", err)
		}
	}

	r := &SQLRecorder{db: db, driver: driver}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info("recorder opened", "driver", driver)
	return r, nil
}

func (r *SQLRecorder) migrate() error {
	idCol := "id INTEGER PRIMARY KEY AUTOINCREMENT"
	moneyCol := "TEXT"
	boolCol := "INTEGER"
	if r.driver == DriverPostgres {
		idCol = "id BIGSERIAL PRIMARY KEY"
		moneyCol = "NUMERIC(14,4)"
		boolCol = "BOOLEAN"
	}

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS days (
			` + idCol + `,
			run_id       TEXT NOT NULL,
			day          INTEGER NOT NULL,
			recorded_at  BIGINT NOT NULL,
			weather      TEXT NOT NULL,
			event        TEXT NOT NULL,
			multiplier   REAL NOT NULL,
			rain_pct     INTEGER NOT NULL,
			cost_cents   INTEGER NOT NULL,
			street_crew  ` + boolCol + ` NOT NULL,
			thunderstorm ` + boolCol + ` NOT NULL
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_days_run_day ON days(run_id, day)`,

		`CREATE TABLE IF NOT EXISTS outcomes (
			` + idCol + `,
			run_id        TEXT NOT NULL,
			day           INTEGER NOT NULL,
			stand         INTEGER NOT NULL,
			skipped       ` + boolCol + ` NOT NULL,
			glasses_made  INTEGER NOT NULL,
			signs_made    INTEGER NOT NULL,
			price_cents   INTEGER NOT NULL,
			glasses_sold  INTEGER NOT NULL,
			income        ` + moneyCol + ` NOT NULL,
			expenses      ` + moneyCol + ` NOT NULL,
			profit        ` + moneyCol + ` NOT NULL,
			assets        ` + moneyCol + ` NOT NULL,
			went_bankrupt ` + boolCol + ` NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_outcomes_run ON outcomes(run_id, day, stand)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", firstLine(s), err)
		}
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

type dayRow struct {
	RunID        string  `db:"run_id"`
	Day          int     `db:"day"`
	RecordedAt   int64   `db:"recorded_at"`
	Weather      string  `db:"weather"`
	Event        string  `db:"event"`
	Multiplier   float64 `db:"multiplier"`
	RainPct      int     `db:"rain_pct"`
	CostCents    int     `db:"cost_cents"`
	StreetCrew   bool    `db:"street_crew"`
	Thunderstorm bool    `db:"thunderstorm"`
}

// RecordDay writes the day and every stand's outcome in one transaction.
func (r *SQLRecorder) RecordDay(ctx context.Context, rec *DayRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	d := rec.Day
	_, err = tx.NamedExecContext(ctx, `INSERT INTO days
		(run_id, day, recorded_at, weather, event, multiplier, rain_pct, cost_cents, street_crew, thunderstorm)
		VALUES (:run_id, :day, :recorded_at, :weather, :event, :multiplier, :rain_pct, :cost_cents, :street_crew, :thunderstorm)`,
		dayRow{
			RunID: rec.RunID, Day: d.DayNumber, RecordedAt: time.Now().Unix(),
			Weather: string(d.Weather), Event: string(d.Event), Multiplier: d.SalesMultiplier,
			RainPct: d.RainChancePct, CostCents: d.LemonadeCostCents,
			StreetCrew: d.StreetCrewBuysAll, Thunderstorm: d.Thunderstorm,
		})
	if err != nil {
		return fmt.Errorf("insert day %d: %w", d.DayNumber, err)
	}

	for _, o := range rec.Outcomes {
		_, err = tx.NamedExecContext(ctx, `INSERT INTO outcomes
			(run_id, day, stand, skipped, glasses_made, signs_made, price_cents, glasses_sold,
			 income, expenses, profit, assets, went_bankrupt)
			VALUES (:run_id, :day, :stand, :skipped, :glasses_made, :signs_made, :price_cents, :glasses_sold,
			 :income, :expenses, :profit, :assets, :went_bankrupt)`,
			OutcomeRow{
				RunID: rec.RunID, Day: d.DayNumber, Stand: o.Stand, Skipped: o.Skipped,
				GlassesMade: o.GlassesMade, SignsMade: o.SignsMade, PriceCents: o.PriceCents,
				GlassesSold: o.GlassesSold, Income: o.Income, Expenses: o.Expenses,
				Profit: o.Profit, Assets: o.NewAssets, WentBankrupt: o.NewlyBankrupt,
			})
		if err != nil {
			return fmt.Errorf("insert outcome day %d stand %d: %w", d.DayNumber, o.Stand, err)
		}
	}

	return tx.Commit()
}

// History returns every recorded stand-day of a run, ordered by day and stand.
func (r *SQLRecorder) History(ctx context.Context, runID string) ([]OutcomeRow, error) {
	var rows []OutcomeRow
	err := r.db.SelectContext(ctx, &rows, r.db.Rebind(`SELECT
			o.run_id, o.day, d.weather, d.event, o.stand, o.skipped,
			o.glasses_made, o.signs_made, o.price_cents, o.glasses_sold,
			o.income, o.expenses, o.profit, o.assets, o.went_bankrupt
		FROM outcomes o
		JOIN days d ON d.run_id = o.run_id AND d.day = o.day
		WHERE o.run_id = ?
		ORDER BY o.day, o.stand`), runID)
	if err != nil {
		return nil, fmt.Errorf("select history: %w", err)
	}
	return rows, nil
}

func (r *SQLRecorder) Close() error {
	log.Info("closing recorder")
	return r.db.Close()
}
