package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	_ "embed"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"modernc.org/sqlite"
)

//go:embed schema_sqlite.sql
var sqliteSchema string

func init() {
	// X REGEXP Y calls regexp(Y, X).
	sqlite.MustRegisterDeterministicScalarFunction("regexp", 2, sqliteRegexp)
	// lower() only folds ASCII.
	sqlite.MustRegisterDeterministicScalarFunction("casefold", 1, sqliteCasefold)
}

func sqliteCasefold(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

var regexCache sync.Map

func sqliteRegexp(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	pattern, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("regexp: pattern must be text, got %T", args[0])
	}
	var value string
	switch v := args[1].(type) {
	case nil:
		return int64(0), nil
	case string:
		value = v
	case []byte:
		value = string(v)
	default:
		value = fmt.Sprint(v)
	}

	var re *regexp.Regexp
	if cached, ok := regexCache.Load(pattern); ok {
		re = cached.(*regexp.Regexp)
	} else {
		compiled, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			return nil, fmt.Errorf("regexp: %w", err)
		}
		regexCache.Store(pattern, compiled)
		re = compiled
	}
	if re.MatchString(value) {
		return int64(1), nil
	}
	return int64(0), nil
}

type sqliteBackend struct {
	db *sql.DB
}

func openSQLite(ctx context.Context, dsn string) (*sqliteBackend, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if strings.Contains(dsn, ":memory:") {
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	}
	b := &sqliteBackend{db: db}
	if err := b.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	return b, nil
}

// NewSQLite wraps an open database, creating the catalog tables if needed.
func NewSQLite(ctx context.Context, db *sql.DB, opts ...Option) (*Store, error) {
	b := &sqliteBackend{db: db}
	if err := b.migrate(ctx); err != nil {
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	return build(b, sqliteDialect{}, opts), nil
}

func (b *sqliteBackend) migrate(ctx context.Context) error {
	_, err := b.db.ExecContext(ctx, sqliteSchema)
	return err
}

// sqlRows adapts *sql.Rows to rows.
type sqlRows struct {
	*sql.Rows
}

func (r sqlRows) Close() { _ = r.Rows.Close() }

func (b *sqliteBackend) query(ctx context.Context, query string, args ...any) (rows, error) {
	r, err := b.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{r}, nil
}

func (b *sqliteBackend) execTx(ctx context.Context, stmts []statement) error {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, st := range stmts {
		if _, err := tx.ExecContext(ctx, st.sql, st.args...); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (b *sqliteBackend) ping(ctx context.Context) error { return b.db.PingContext(ctx) }

func (b *sqliteBackend) close() { _ = b.db.Close() }
