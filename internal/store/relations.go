package store

import (
	"context"
	"fmt"

	"projarapi/internal/projar"
)

// relationChunk bounds the ids bound into one relation query.
const relationChunk = 500

// loadRelations fills the subjects, executors, geographic areas and
// authors of records.
func (s *Store) loadRelations(ctx context.Context, records []projar.Record) error {
	if len(records) == 0 {
		return nil
	}
	byID := make(map[int]*projar.Record, len(records))
	ids := make([]int, 0, len(records))
	for i := range records {
		byID[records[i].ID] = &records[i]
		ids = append(ids, records[i].ID)
	}

	for start := 0; start < len(ids); start += relationChunk {
		chunk := ids[start:min(start+relationChunk, len(ids))]
		if err := s.loadSubjects(ctx, chunk, byID); err != nil {
			return fmt.Errorf("load subjects: %w", err)
		}
		if err := s.loadExecutors(ctx, chunk, byID); err != nil {
			return fmt.Errorf("load executors: %w", err)
		}
		if err := s.loadAreas(ctx, chunk, byID); err != nil {
			return fmt.Errorf("load geographic areas: %w", err)
		}
		if err := s.loadAuthors(ctx, chunk, byID); err != nil {
			return fmt.Errorf("load authors: %w", err)
		}
	}
	return nil
}

// linkSQL selects cols of the entities linked to ids through rel.
func (s *Store) linkSQL(rel projar.Relation, cols, orderBy string, ids []int) (string, []any) {
	t := relationTables[rel]
	b := newSQLBuilder(s.dialect, false)
	sql := fmt.Sprintf(
		"SELECT j.projar_id, %s FROM %s j JOIN %s e ON e.%s = j.%s WHERE %s ORDER BY %s",
		cols, t.join, t.entity, t.key, t.fk, s.dialect.inList("j.projar_id", b, ids), orderBy,
	)
	return sql, b.args
}

func (s *Store) loadSubjects(ctx context.Context, ids []int, byID map[int]*projar.Record) error {
	sql, args := s.linkSQL(projar.RelSubjects, "e.id_assunto, e.nome_assunto", "e.nome_assunto, e.id_assunto", ids)
	return s.eachRow(ctx, sql, args, func(r rows) error {
		var (
			recordID int
			v        projar.Subject
			name     *string
		)
		if err := r.Scan(&recordID, &v.ID, &name); err != nil {
			return err
		}
		v.Name = deref(name)
		if rec := byID[recordID]; rec != nil {
			rec.Subjects = append(rec.Subjects, v)
		}
		return nil
	})
}

func (s *Store) loadExecutors(ctx context.Context, ids []int, byID map[int]*projar.Record) error {
	sql, args := s.linkSQL(projar.RelExecutors, "e.id_executor, e.nome_executor, e.tipo_executor", "e.nome_executor, e.id_executor", ids)
	return s.eachRow(ctx, sql, args, func(r rows) error {
		var (
			recordID   int
			v          projar.Executor
			name, kind *string
		)
		if err := r.Scan(&recordID, &v.ID, &name, &kind); err != nil {
			return err
		}
		v.Name, v.Type = deref(name), deref(kind)
		if rec := byID[recordID]; rec != nil {
			rec.Executors = append(rec.Executors, v)
		}
		return nil
	})
}

func (s *Store) loadAreas(ctx context.Context, ids []int, byID map[int]*projar.Record) error {
	sql, args := s.linkSQL(projar.RelAreas, "e.id_area_geografica, e.nome_area_geografica", "e.nome_area_geografica, e.id_area_geografica", ids)
	return s.eachRow(ctx, sql, args, func(r rows) error {
		var (
			recordID int
			v        projar.GeographicArea
			name     *string
		)
		if err := r.Scan(&recordID, &v.ID, &name); err != nil {
			return err
		}
		v.Name = deref(name)
		if rec := byID[recordID]; rec != nil {
			rec.Areas = append(rec.Areas, v)
		}
		return nil
	})
}

func (s *Store) loadAuthors(ctx context.Context, ids []int, byID map[int]*projar.Record) error {
	sql, args := s.linkSQL(projar.RelAuthors, "e.id_autor, e.nome_autor, e.tipo_autor", "e.nome_autor, e.id_autor", ids)
	return s.eachRow(ctx, sql, args, func(r rows) error {
		var (
			recordID   int
			v          projar.Author
			name, role *string
		)
		if err := r.Scan(&recordID, &v.ID, &name, &role); err != nil {
			return err
		}
		v.Name, v.Role = deref(name), projar.AuthorRole(deref(role))
		if rec := byID[recordID]; rec != nil {
			rec.Authors = append(rec.Authors, v)
		}
		return nil
	})
}
