package store

import (
	"context"
	"fmt"

	"projarapi/internal/projar"
)

func (s *Store) Locations(ctx context.Context) ([]projar.Location, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	out := []projar.Location{}
	err := s.eachRow(ctx, `SELECT id_local, nome_local FROM "local" ORDER BY nome_local, id_local`, nil, func(r rows) error {
		var (
			v    projar.Location
			name *string
		)
		if err := r.Scan(&v.ID, &name); err != nil {
			return err
		}
		v.Name = deref(name)
		out = append(out, v)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return out, nil
}

func (s *Store) Sectors(ctx context.Context) ([]projar.Sector, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	out := []projar.Sector{}
	err := s.eachRow(ctx, `SELECT id_setor, nome_setor FROM setor ORDER BY nome_setor, id_setor`, nil, func(r rows) error {
		var (
			v    projar.Sector
			name *string
		)
		if err := r.Scan(&v.ID, &name); err != nil {
			return err
		}
		v.Name = deref(name)
		out = append(out, v)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list sectors: %w", err)
	}
	return out, nil
}

func (s *Store) Subjects(ctx context.Context) ([]projar.Subject, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	out := []projar.Subject{}
	err := s.eachRow(ctx, `SELECT id_assunto, nome_assunto FROM assunto ORDER BY nome_assunto, id_assunto`, nil, func(r rows) error {
		var (
			v    projar.Subject
			name *string
		)
		if err := r.Scan(&v.ID, &name); err != nil {
			return err
		}
		v.Name = deref(name)
		out = append(out, v)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return out, nil
}

func (s *Store) Executors(ctx context.Context) ([]projar.Executor, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	out := []projar.Executor{}
	const query = `SELECT id_executor, nome_executor, tipo_executor FROM executor ORDER BY nome_executor, id_executor`
	err := s.eachRow(ctx, query, nil, func(r rows) error {
		var (
			v          projar.Executor
			name, kind *string
		)
		if err := r.Scan(&v.ID, &name, &kind); err != nil {
			return err
		}
		v.Name, v.Type = deref(name), deref(kind)
		out = append(out, v)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list executors: %w", err)
	}
	return out, nil
}

// Authors returns every author ordered by name.
func (s *Store) Authors(ctx context.Context) ([]projar.Author, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	out := []projar.Author{}
	const query = `SELECT id_autor, nome_autor, tipo_autor FROM autor ORDER BY nome_autor, id_autor`
	err := s.eachRow(ctx, query, nil, func(r rows) error {
		var (
			v          projar.Author
			name, role *string
		)
		if err := r.Scan(&v.ID, &name, &role); err != nil {
			return err
		}
		v.Name, v.Role = deref(name), projar.AuthorRole(deref(role))
		out = append(out, v)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return out, nil
}

// Contents returns the distinct non-empty content values, ascending.
func (s *Store) Contents(ctx context.Context) ([]string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	out := []string{}
	const query = `
	SELECT DISTINCT conteudo_projar
	FROM projar
	WHERE conteudo_projar IS NOT NULL AND conteudo_projar <> ''
	ORDER BY conteudo_projar`
	err := s.eachRow(ctx, query, nil, func(r rows) error {
		var v string
		if err := r.Scan(&v); err != nil {
			return err
		}
		out = append(out, v)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list contents: %w", err)
	}
	return out, nil
}
