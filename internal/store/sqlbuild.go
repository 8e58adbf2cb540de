package store

import (
	"fmt"
	"strings"
	"time"

	"projarapi/internal/projar"
)

// dialect renders the parts of a query that differ between databases.
type dialect interface {
	name() string
	placeholder(n int) string
	// regex tests col against a case-insensitive regular expression.
	regex(col, ph string) string
	// foldContains is a case-insensitive substring test; contains is a
	// case-sensitive one. Both receive an escaped LIKE argument where the
	// dialect needs one.
	foldContains(col, ph string) string
	contains(col, ph string) string
	containsArg(text string) string
	datePart(part projar.DatePart, col string) string
	dateText(col string) string
	dateValue(t *time.Time) any
	// inList tests col against a list of ids bound at ph.
	inList(col string, b *sqlBuilder, ids []int) string
	supportsRegex() bool
}

var recordColumns = map[projar.Field]string{
	projar.FieldID:         "p.id_projar",
	projar.FieldCallNumber: "p.n_chamada_projar",
	projar.FieldTitle:      "p.titulo_projar",
	projar.FieldContent:    "p.conteudo_projar",
	projar.FieldDate:       "p.data_projar",
	projar.FieldLocationID: "p.local_id",
	projar.FieldSectorID:   "p.setor_id",
}

// relationTable describes a many-to-many link: join table j and entity
// table e.
type relationTable struct {
	join    string
	fk      string
	entity  string
	key     string
	columns map[projar.Field]string
}

var relationTables = map[projar.Relation]relationTable{
	projar.RelAuthors: {
		join: "projar_autor", fk: "autor_id", entity: "autor", key: "id_autor",
		columns: map[projar.Field]string{
			projar.FieldAuthorID:   "j.autor_id",
			projar.FieldAuthorRole: "e.tipo_autor",
		},
	},
	projar.RelSubjects: {
		join: "projar_assunto", fk: "assunto_id", entity: "assunto", key: "id_assunto",
		columns: map[projar.Field]string{
			projar.FieldSubjectID:   "j.assunto_id",
			projar.FieldSubjectName: "e.nome_assunto",
		},
	},
	projar.RelExecutors: {
		join: "projar_executor", fk: "executor_id", entity: "executor", key: "id_executor",
		columns: map[projar.Field]string{
			projar.FieldExecutorID: "j.executor_id",
		},
	},
	projar.RelAreas: {
		join: "projar_area_geografica", fk: "area_geografica_id", entity: "area_geografica", key: "id_area_geografica",
		columns: map[projar.Field]string{
			projar.FieldAreaID: "j.area_geografica_id",
		},
	},
}

// sqlBuilder renders a predicate tree into a parameterized WHERE clause.
type sqlBuilder struct {
	d     dialect
	regex bool
	args  []any
	// fallbacks counts Matches nodes rendered as substring tests.
	fallbacks int
}

func newSQLBuilder(d dialect, regex bool) *sqlBuilder {
	return &sqlBuilder{d: d, regex: regex && d.supportsRegex()}
}

func (b *sqlBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return b.d.placeholder(len(b.args))
}

// where renders p against the record row.
func (b *sqlBuilder) where(p projar.Predicate) (string, error) {
	if p == nil {
		return "1=1", nil
	}
	return b.render(p, recordColumns, false)
}

func (b *sqlBuilder) render(p projar.Predicate, cols map[projar.Field]string, nested bool) (string, error) {
	switch v := p.(type) {
	case projar.And:
		if len(v) == 0 {
			return "1=1", nil
		}
		clauses := make([]string, 0, len(v))
		for _, c := range v {
			s, err := b.render(c, cols, nested)
			if err != nil {
				return "", err
			}
			clauses = append(clauses, s)
		}
		if len(clauses) == 1 {
			return clauses[0], nil
		}
		return "(" + strings.Join(clauses, " AND ") + ")", nil

	case projar.Equals:
		col, err := column(cols, v.Field)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s = %s", col, b.arg(v.Value)), nil

	case projar.Contains:
		col, err := column(cols, v.Field)
		if err != nil {
			return "", err
		}
		if v.Fold {
			return b.d.foldContains(col, b.arg(likeArg(v.Text))), nil
		}
		return b.d.contains(col, b.arg(b.d.containsArg(v.Text))), nil

	case projar.Matches:
		col, err := column(cols, v.Field)
		if err != nil {
			return "", err
		}
		if b.regex {
			return b.d.regex(col, b.arg(v.Pattern)), nil
		}
		b.fallbacks++
		return b.d.foldContains(col, b.arg(likeArg(v.Word))), nil

	case projar.DateEquals:
		col, err := column(cols, v.Field)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s = %s", b.d.datePart(v.Part, col), b.arg(v.Value)), nil

	case projar.Linked:
		if nested {
			return "", fmt.Errorf("nested relation %q", v.Relation)
		}
		rel, ok := relationTables[v.Relation]
		if !ok {
			return "", fmt.Errorf("unknown relation %q", v.Relation)
		}
		inner := "1=1"
		if v.Where != nil {
			s, err := b.render(v.Where, rel.columns, true)
			if err != nil {
				return "", err
			}
			inner = s
		}
		return fmt.Sprintf(
			"p.id_projar IN (SELECT j.projar_id FROM %s j JOIN %s e ON e.%s = j.%s WHERE %s)",
			rel.join, rel.entity, rel.key, rel.fk, inner,
		), nil
	}
	return "", fmt.Errorf("unsupported predicate %T", p)
}

func column(cols map[projar.Field]string, f projar.Field) (string, error) {
	col, ok := cols[f]
	if !ok {
		return "", fmt.Errorf("unknown field %q", f)
	}
	return col, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likeArg wraps text for a LIKE substring test with wildcards escaped.
func likeArg(text string) string {
	return "%" + likeEscaper.Replace(text) + "%"
}

const recordSelect = `
	SELECT p.id_projar, p.n_chamada_projar, p.titulo_projar, %s, p.colacao_projar,
		p.conteudo_projar, p.notas_gerais_projar, p.fonte_projar, p.escala_projar,
		p.outras_versoes_projar, p.setor_id, s.nome_setor, p.local_id, l.nome_local
	FROM projar p
	LEFT JOIN setor s ON s.id_setor = p.setor_id
	LEFT JOIN "local" l ON l.id_local = p.local_id`

// findSQL renders the record query for q.
func (b *sqlBuilder) findSQL(q projar.Query) (string, error) {
	where, err := b.where(q.Where)
	if err != nil {
		return "", err
	}
	order := "p.id_projar DESC"
	switch q.Order {
	case "", projar.OrderIDDesc:
	default:
		return "", fmt.Errorf("unsupported order %q", q.Order)
	}
	return fmt.Sprintf(recordSelect, b.d.dateText("p.data_projar")) +
		"\n\tWHERE " + where + "\n\tORDER BY " + order, nil
}

// getSQL renders the single-record query.
func (b *sqlBuilder) getSQL(id int) string {
	return fmt.Sprintf(recordSelect, b.d.dateText("p.data_projar")) +
		"\n\tWHERE p.id_projar = " + b.arg(id)
}
