package projar

import (
	"net/url"
	"strconv"
	"strings"
)

// Filter parameter keys accepted by Compile.
const (
	KeyID         = "id"
	KeyCallNumber = "call_number"
	KeyAuthorID   = "author_id"
	KeyAuthorRole = "author_role"
	KeyLocationID = "location_id"
	KeyMonth      = "month"
	KeyYear       = "year"
	KeyContent    = "content"
	KeyExecutorID = "executor_id"
	KeySubject    = "subject"
	KeySubjectID  = "subject_id"
	KeySectorID   = "sector_id"
	KeyTitle      = "title"
)

// Keys lists every parameter Compile understands.
var Keys = []string{
	KeyID, KeyCallNumber, KeyAuthorID, KeyAuthorRole, KeyLocationID, KeyMonth, KeyYear,
	KeyContent, KeyExecutorID, KeySubject, KeySubjectID, KeySectorID, KeyTitle,
}

// Params are the raw, optional filter parameters of one request. A missing
// key and an empty value both mean "no filter".
type Params map[string]string

// ParamsFromValues keeps the first value of every known key.
func ParamsFromValues(v url.Values) Params {
	p := make(Params, len(Keys))
	for _, k := range Keys {
		if val := v.Get(k); val != "" {
			p[k] = val
		}
	}
	return p
}

// Applied records the filters that were actually applied, with their
// normalized values, so a UI can redisplay them.
type Applied map[string]string

// Filter is the compiled form of Params.
type Filter struct {
	Where   And
	Order   Order
	Applied Applied
}

// Query returns the store query for f.
func (f Filter) Query() Query {
	return Query{Where: f.Where, Order: f.Order}
}

// builder turns the parameters it owns into a predicate, recording what it
// applied. It returns nil when its filter is inactive.
type builder func(p Params, applied Applied) Predicate

var builders = []builder{
	idFilter,
	callNumberFilter,
	authorFilter,
	locationFilter,
	dateFilter,
	contentFilter,
	executorFilter,
	subjectFilter,
	subjectIDFilter,
	sectorFilter,
	titleFilter,
}

// Compile translates p into one predicate: the conjunction of every active
// filter, ordered by descending record id. It never fails; malformed
// numbers drop their filter.
func Compile(p Params) Filter {
	f := Filter{Where: And{}, Order: OrderIDDesc, Applied: Applied{}}
	for _, build := range builders {
		if pred := build(p, f.Applied); pred != nil {
			f.Where = append(f.Where, pred)
		}
	}
	return f
}

func idFilter(p Params, applied Applied) Predicate {
	return intEquals(p, applied, KeyID, FieldID)
}

func locationFilter(p Params, applied Applied) Predicate {
	return intEquals(p, applied, KeyLocationID, FieldLocationID)
}

func sectorFilter(p Params, applied Applied) Predicate {
	return intEquals(p, applied, KeySectorID, FieldSectorID)
}

func intEquals(p Params, applied Applied, key string, field Field) Predicate {
	raw, n, ok := intParam(p, key)
	if !ok {
		return nil
	}
	applied[key] = raw
	return Equals{Field: field, Value: n}
}

func callNumberFilter(p Params, applied Applied) Predicate {
	return substring(p, applied, KeyCallNumber, FieldCallNumber)
}

func contentFilter(p Params, applied Applied) Predicate {
	return substring(p, applied, KeyContent, FieldContent)
}

func substring(p Params, applied Applied, key string, field Field) Predicate {
	v := p[key]
	if v == "" {
		return nil
	}
	applied[key] = v
	return Contains{Field: field, Text: v}
}

func authorFilter(p Params, applied Applied) Predicate {
	raw, id, ok := intParam(p, KeyAuthorID)
	if !ok {
		return nil
	}
	applied[KeyAuthorID] = raw

	var where Predicate = Equals{Field: FieldAuthorID, Value: id}
	role := AuthorRole(strings.TrimSpace(p[KeyAuthorRole]))
	if role != "" && role != RoleAll {
		where = And{where, Equals{Field: FieldAuthorRole, Value: string(role)}}
		applied[KeyAuthorRole] = string(role)
	}
	return Linked{Relation: RelAuthors, Where: where}
}

func dateFilter(p Params, applied Applied) Predicate {
	month := strings.TrimSpace(p[KeyMonth])
	if !isDigits(month) {
		return nil
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return nil
	}
	applied[KeyMonth] = month
	byMonth := DateEquals{Field: FieldDate, Part: Month, Value: m}

	year := strings.TrimSpace(p[KeyYear])
	if !isDigits(year) {
		return byMonth
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return byMonth
	}
	applied[KeyYear] = year
	return And{byMonth, DateEquals{Field: FieldDate, Part: Year, Value: y}}
}

func executorFilter(p Params, applied Applied) Predicate {
	raw, id, ok := intParam(p, KeyExecutorID)
	if !ok {
		return nil
	}
	applied[KeyExecutorID] = raw
	return Linked{Relation: RelExecutors, Where: Equals{Field: FieldExecutorID, Value: id}}
}

func subjectIDFilter(p Params, applied Applied) Predicate {
	raw, id, ok := intParam(p, KeySubjectID)
	if !ok {
		return nil
	}
	applied[KeySubjectID] = raw
	return Linked{Relation: RelSubjects, Where: Equals{Field: FieldSubjectID, Value: id}}
}

// subjectFilter requires every word to match some linked subject. Each
// word gets its own subquery, so different subjects may satisfy different
// words.
func subjectFilter(p Params, applied Applied) Predicate {
	text := strings.TrimSpace(p[KeySubject])
	if text == "" {
		return nil
	}
	applied[KeySubject] = text

	words := strings.Fields(text)
	conds := make(And, 0, len(words))
	for _, w := range words {
		conds = append(conds, Linked{Relation: RelSubjects, Where: wordPredicate(FieldSubjectName, w)})
	}
	return conds
}

func titleFilter(p Params, applied Applied) Predicate {
	text := strings.TrimSpace(p[KeyTitle])
	if text == "" {
		return nil
	}
	applied[KeyTitle] = text

	words := strings.Fields(text)
	conds := make(And, 0, len(words))
	for _, w := range words {
		conds = append(conds, wordPredicate(FieldTitle, w))
	}
	return conds
}

// intParam parses p[key] as an identifier. ok is false when the key is
// absent, empty, not a number or outside the 32-bit range of the id columns.
func intParam(p Params, key string) (raw string, n int, ok bool) {
	raw = strings.TrimSpace(p[key])
	if raw == "" {
		return "", 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return "", 0, false
	}
	return raw, int(v), true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
