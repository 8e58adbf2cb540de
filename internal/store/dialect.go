package store

import (
	"fmt"
	"strings"
	"time"

	"projarapi/internal/projar"
)

type postgresDialect struct{}

func (postgresDialect) name() string             { return "postgres" }
func (postgresDialect) placeholder(n int) string { return fmt.Sprintf("$%d", n) }
func (postgresDialect) supportsRegex() bool      { return true }

func (postgresDialect) regex(col, ph string) string {
	return fmt.Sprintf("%s ~* %s", col, ph)
}

func (postgresDialect) foldContains(col, ph string) string {
	return fmt.Sprintf(`%s ILIKE %s ESCAPE '\'`, col, ph)
}

func (postgresDialect) contains(col, ph string) string {
	return fmt.Sprintf(`%s LIKE %s ESCAPE '\'`, col, ph)
}

func (postgresDialect) containsArg(text string) string { return likeArg(text) }

func (postgresDialect) datePart(part projar.DatePart, col string) string {
	return fmt.Sprintf("EXTRACT(%s FROM %s)", strings.ToUpper(string(part)), col)
}

func (postgresDialect) dateText(col string) string {
	return fmt.Sprintf("to_char(%s, 'YYYY-MM-DD')", col)
}

func (postgresDialect) dateValue(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func (postgresDialect) inList(col string, b *sqlBuilder, ids []int) string {
	return fmt.Sprintf("%s = ANY(%s)", col, b.arg(ids))
}

type sqliteDialect struct{}

func (sqliteDialect) name() string           { return "sqlite" }
func (sqliteDialect) placeholder(int) string { return "?" }
func (sqliteDialect) supportsRegex() bool    { return true }

// regex relies on the regexp() function registered by this package.
func (sqliteDialect) regex(col, ph string) string {
	return fmt.Sprintf("%s REGEXP %s", col, ph)
}

func (sqliteDialect) foldContains(col, ph string) string {
	return fmt.Sprintf(`casefold(%s) LIKE casefold(%s) ESCAPE '\'`, col, ph)
}

func (sqliteDialect) contains(col, ph string) string {
	return fmt.Sprintf("instr(%s, %s) > 0", col, ph)
}

func (sqliteDialect) containsArg(text string) string { return text }

func (sqliteDialect) datePart(part projar.DatePart, col string) string {
	format := "%Y"
	if part == projar.Month {
		format = "%m"
	}
	return fmt.Sprintf("CAST(strftime('%s', %s) AS INTEGER)", format, col)
}

func (sqliteDialect) dateText(col string) string { return col }

// dateValue stores dates as ISO text so strftime can read them.
func (sqliteDialect) dateValue(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(dateLayout)
}

func (sqliteDialect) inList(col string, b *sqlBuilder, ids []int) string {
	phs := make([]string, len(ids))
	for i, id := range ids {
		phs[i] = b.arg(id)
	}
	return fmt.Sprintf("%s IN (%s)", col, strings.Join(phs, ", "))
}
