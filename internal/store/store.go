package store

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"projarapi/internal/config"
	"projarapi/internal/logger"
	"projarapi/internal/metrics"
	"projarapi/internal/projar"
)

// rows is the cursor shape shared by pgx and database/sql.
type rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

type statement struct {
	sql  string
	args []any
}

// backend is a database connection the Store reads through.
type backend interface {
	query(ctx context.Context, sql string, args ...any) (rows, error)
	// execTx runs every statement in one transaction.
	execTx(ctx context.Context, stmts []statement) error
	ping(ctx context.Context) error
	close()
}

// Store implements projar.Repository on Postgres or SQLite.
type Store struct {
	db      backend
	dialect dialect
	regex   bool
	timeout time.Duration
	log     *zap.Logger
}

var _ projar.Repository = (*Store)(nil)

// Open connects to the database named by cfg and verifies it answers.
func Open(ctx context.Context, cfg config.DatabaseConfig, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	var (
		db  backend
		d   dialect
		err error
	)
	switch cfg.Driver {
	case "postgres":
		db, err = openPostgres(ctx, cfg.DSN)
		d = postgresDialect{}
	case "sqlite":
		db, err = openSQLite(ctx, cfg.DSN)
		d = sqliteDialect{}
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	s := build(db, d, []Option{
		WithLogger(log),
		WithQueryTimeout(time.Duration(cfg.QueryTimeoutSec) * time.Second),
		WithRegex(!cfg.DisableRegex),
	})

	pingTimeout := time.Duration(cfg.PingTimeoutSec) * time.Second
	if pingTimeout <= 0 {
		pingTimeout = 2 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := s.Ping(pingCtx); err != nil {
		s.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.Driver, err)
	}
	if cfg.DisableRegex {
		log.Info("regex matching disabled, word filters use substring tests", zap.String("driver", cfg.Driver))
	}
	return s, nil
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithQueryTimeout bounds every store call.
func WithQueryTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithRegex turns regular expression matching on or off. When off, word
// filters fall back to case-insensitive substring tests.
func WithRegex(enabled bool) Option {
	return func(s *Store) { s.regex = enabled }
}

func build(db backend, d dialect, opts []Option) *Store {
	s := &Store{
		db:      db,
		dialect: d,
		regex:   true,
		timeout: 5 * time.Second,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Driver names the database behind s.
func (s *Store) Driver() string { return s.dialect.name() }

func (s *Store) Ping(ctx context.Context) error { return s.db.ping(ctx) }

func (s *Store) Close() { s.db.close() }

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// eachRow runs sql and calls scan for every row. The cursor is closed
// before eachRow returns.
func (s *Store) eachRow(ctx context.Context, sql string, args []any, scan func(r rows) error) error {
	r, err := s.db.query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer r.Close()
	for r.Next() {
		if err := scan(r); err != nil {
			return err
		}
	}
	return r.Err()
}

// Find returns the records matching q, newest id first, with their
// relations loaded.
func (s *Store) Find(ctx context.Context, q projar.Query) ([]projar.Record, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	b := newSQLBuilder(s.dialect, s.regex)
	sql, err := b.findSQL(q)
	if err != nil {
		return nil, fmt.Errorf("render query: %w", err)
	}
	if b.fallbacks > 0 {
		metrics.PatternFallbacks.WithLabelValues(s.dialect.name()).Add(float64(b.fallbacks))
	}
	logger.FromContext(ctx, s.log).Debug("find records",
		zap.String("dialect", s.dialect.name()),
		zap.Int("args", len(b.args)),
		zap.Int("pattern_fallbacks", b.fallbacks),
	)

	var records []projar.Record
	err = s.eachRow(ctx, sql, b.args, func(r rows) error {
		rec, err := scanRecord(r)
		if err != nil {
			return err
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("find records: %w", err)
	}
	if err := s.loadRelations(ctx, records); err != nil {
		return nil, err
	}
	return records, nil
}

// Get returns one record with its relations, or projar.ErrNotFound.
func (s *Store) Get(ctx context.Context, id int) (projar.Record, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	b := newSQLBuilder(s.dialect, s.regex)
	var (
		rec   projar.Record
		found bool
	)
	err := s.eachRow(ctx, b.getSQL(id), b.args, func(r rows) error {
		var err error
		rec, err = scanRecord(r)
		found = true
		return err
	})
	if err != nil {
		return projar.Record{}, fmt.Errorf("get record %d: %w", id, err)
	}
	if !found {
		return projar.Record{}, projar.ErrNotFound
	}

	records := []projar.Record{rec}
	if err := s.loadRelations(ctx, records); err != nil {
		return projar.Record{}, err
	}
	return records[0], nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var n int
	err := s.eachRow(ctx, `SELECT COUNT(*) FROM projar`, nil, func(r rows) error {
		return r.Scan(&n)
	})
	if err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

func scanRecord(r rows) (projar.Record, error) {
	var (
		rec                                   projar.Record
		callNumber, title, date, collation    *string
		content, notes, source, scale, others *string
		sectorName, locationName              *string
	)
	err := r.Scan(
		&rec.ID,
		&callNumber,
		&title,
		&date,
		&collation,
		&content,
		&notes,
		&source,
		&scale,
		&others,
		&rec.SectorID,
		&sectorName,
		&rec.LocationID,
		&locationName,
	)
	if err != nil {
		return projar.Record{}, err
	}

	rec.CallNumber = deref(callNumber)
	rec.Title = deref(title)
	rec.Collation = deref(collation)
	rec.Content = deref(content)
	rec.GeneralNotes = deref(notes)
	rec.Source = deref(source)
	rec.Scale = deref(scale)
	rec.OtherVersions = deref(others)
	if rec.Date, err = parseDate(date); err != nil {
		return projar.Record{}, fmt.Errorf("record %d: %w", rec.ID, err)
	}
	if rec.SectorID != nil {
		rec.Sector = &projar.Sector{ID: *rec.SectorID, Name: deref(sectorName)}
	}
	if rec.LocationID != nil {
		rec.Location = &projar.Location{ID: *rec.LocationID, Name: deref(locationName)}
	}
	return rec, nil
}

const dateLayout = "2006-01-02"

// parseDate reads the leading YYYY-MM-DD of a stored date.
func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	v := *s
	if len(v) > len(dateLayout) {
		v = v[:len(dateLayout)]
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, fmt.Errorf("parse date %q: %w", *s, err)
	}
	return &t, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
