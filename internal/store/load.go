package store

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"projarapi/internal/projar"
)

var catalogTables = []string{
	"projar_autor", "projar_area_geografica", "projar_executor", "projar_assunto",
	"projar", "autor", "area_geografica", "executor", "assunto", `"local"`, "setor",
}

// Load replaces the catalog contents with ds in one transaction. It
// exists for the seeding tools; the catalog service never writes.
func (s *Store) Load(ctx context.Context, ds projar.Dataset) error {
	stmts := make([]statement, 0, len(catalogTables)+len(ds.Records)*4)
	for _, t := range catalogTables {
		stmts = append(stmts, statement{sql: "DELETE FROM " + t})
	}

	for _, v := range ds.Sectors {
		stmts = append(stmts, s.insert("setor", []string{"id_setor", "nome_setor"}, v.ID, nullable(v.Name)))
	}
	for _, v := range ds.Locations {
		stmts = append(stmts, s.insert(`"local"`, []string{"id_local", "nome_local"}, v.ID, nullable(v.Name)))
	}
	for _, v := range ds.Subjects {
		stmts = append(stmts, s.insert("assunto", []string{"id_assunto", "nome_assunto"}, v.ID, nullable(v.Name)))
	}
	for _, v := range ds.Executors {
		stmts = append(stmts, s.insert("executor", []string{"id_executor", "nome_executor", "tipo_executor"},
			v.ID, nullable(v.Name), nullable(v.Type)))
	}
	for _, v := range ds.Areas {
		stmts = append(stmts, s.insert("area_geografica", []string{"id_area_geografica", "nome_area_geografica"},
			v.ID, nullable(v.Name)))
	}
	for _, v := range ds.Authors {
		stmts = append(stmts, s.insert("autor", []string{"id_autor", "nome_autor", "tipo_autor"},
			v.ID, nullable(v.Name), nullable(string(v.Role))))
	}

	for _, r := range ds.Records {
		stmts = append(stmts, s.insert("projar", []string{
			"id_projar", "n_chamada_projar", "titulo_projar", "local_id", "data_projar", "colacao_projar",
			"conteudo_projar", "notas_gerais_projar", "setor_id", "fonte_projar", "escala_projar",
			"outras_versoes_projar",
		},
			r.ID, nullable(r.CallNumber), nullable(r.Title), intOrNil(r.LocationID), s.dialect.dateValue(r.Date),
			nullable(r.Collation), nullable(r.Content), nullable(r.GeneralNotes), intOrNil(r.SectorID),
			nullable(r.Source), nullable(r.Scale), nullable(r.OtherVersions),
		))
		stmts = append(stmts, s.links(projar.RelSubjects, r.ID, r.Subjects)...)
		stmts = append(stmts, s.links(projar.RelExecutors, r.ID, r.Executors)...)
		stmts = append(stmts, s.links(projar.RelAreas, r.ID, r.Areas)...)
		stmts = append(stmts, s.links(projar.RelAuthors, r.ID, r.Authors)...)
	}

	if err := s.db.execTx(ctx, stmts); err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	s.log.Info("dataset loaded",
		zap.String("dialect", s.dialect.name()),
		zap.Int("records", len(ds.Records)),
		zap.Int("statements", len(stmts)),
	)
	return nil
}

func (s *Store) insert(table string, cols []string, args ...any) statement {
	phs := make([]string, len(cols))
	for i := range cols {
		phs[i] = s.dialect.placeholder(i + 1)
	}
	return statement{
		sql:  fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(cols, ", "), strings.Join(phs, ", ")),
		args: args,
	}
}

func (s *Store) links(rel projar.Relation, recordID int, ids []int) []statement {
	t := relationTables[rel]
	out := make([]statement, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.insert(t.join, []string{"projar_id", t.fk}, recordID, id))
	}
	return out
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func intOrNil(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
