package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projarapi/internal/projar"
	"projarapi/internal/testutil"
)

func find(t *testing.T, s *Store, p projar.Params) []int {
	t.Helper()
	records, err := s.Find(context.Background(), projar.Compile(p).Query())
	require.NoError(t, err)
	return testutil.IDs(records)
}

// runCatalogProperties checks search semantics against a store loaded
// with testutil.Catalog.
func runCatalogProperties(t *testing.T, s *Store) {
	tests := []struct {
		name   string
		params projar.Params
		want   []int
	}{
		{"no filters, newest first", nil, []int{7, 6, 5, 4, 3, 2, 1}},
		{"malformed id ignored", projar.Params{projar.KeyID: "abc"}, []int{7, 6, 5, 4, 3, 2, 1}},
		{"id", projar.Params{projar.KeyID: "4"}, []int{4}},
		{"out-of-range id ignored", projar.Params{projar.KeyID: "3000000000"}, []int{7, 6, 5, 4, 3, 2, 1}},
		{"out-of-range author id ignored", projar.Params{projar.KeyAuthorID: "3000000000"}, []int{7, 6, 5, 4, 3, 2, 1}},
		{"accent-insensitive title", projar.Params{projar.KeyTitle: "São"}, []int{7, 3, 2, 1}},
		{"unaccented title", projar.Params{projar.KeyTitle: "SAO"}, []int{7, 3, 2, 1}},
		{"title words order-free", projar.Params{projar.KeyTitle: "Rio Grande"}, []int{5, 4}},
		{"title words reversed", projar.Params{projar.KeyTitle: "grande rio"}, []int{5, 4}},
		{"title all words required", projar.Params{projar.KeyTitle: "Carta Grande"}, []int{4}},
		{"single character word is a substring", projar.Params{projar.KeyTitle: "í"}, []int{5}},
		{"single ascii character", projar.Params{projar.KeyTitle: "z"}, []int{6}},
		{"subject single word", projar.Params{projar.KeySubject: "HIDROGRAFIA"}, []int{3, 1}},
		{"subject accents", projar.Params{projar.KeySubject: "litoranea"}, []int{3, 2}},
		{"subject words across subjects", projar.Params{projar.KeySubject: "hidrografia costa"}, []int{3}},
		{"subject id", projar.Params{projar.KeySubjectID: "3"}, []int{5, 4}},
		{"subject and subject id", projar.Params{projar.KeySubject: "navegacao", projar.KeySubjectID: "3"}, []int{5, 4}},
		{"subject and other subject id", projar.Params{projar.KeySubject: "hidrografia", projar.KeySubjectID: "3"}, nil},
		{"author any role", projar.Params{projar.KeyAuthorID: "5", projar.KeyAuthorRole: "all"}, []int{3, 2}},
		{"author without role", projar.Params{projar.KeyAuthorID: "5"}, []int{3, 2}},
		{"author with other role", projar.Params{projar.KeyAuthorID: "5", projar.KeyAuthorRole: "primary"}, nil},
		{"author with own role", projar.Params{projar.KeyAuthorID: "5", projar.KeyAuthorRole: "secondary-event"}, []int{3, 2}},
		{"primary author", projar.Params{projar.KeyAuthorID: "6", projar.KeyAuthorRole: "primary"}, []int{3, 1}},
		{"unknown role matches nothing", projar.Params{projar.KeyAuthorID: "6", projar.KeyAuthorRole: "editor"}, nil},
		{"role without author ignored", projar.Params{projar.KeyAuthorRole: "primary"}, []int{7, 6, 5, 4, 3, 2, 1}},
		{"month and year", projar.Params{projar.KeyMonth: "3", projar.KeyYear: "2020"}, []int{1}},
		{"month any year", projar.Params{projar.KeyMonth: "3"}, []int{5, 2, 1}},
		{"padded month", projar.Params{projar.KeyMonth: "03"}, []int{5, 2, 1}},
		{"year alone ignored", projar.Params{projar.KeyYear: "2020"}, []int{7, 6, 5, 4, 3, 2, 1}},
		{"executor without duplicates", projar.Params{projar.KeyExecutorID: "2"}, []int{6, 3, 2}},
		{"location", projar.Params{projar.KeyLocationID: "2"}, []int{3, 2}},
		{"sector", projar.Params{projar.KeySectorID: "1"}, []int{4, 3, 1}},
		{"content substring", projar.Params{projar.KeyContent: "Mapa"}, []int{6, 3, 1}},
		{"content is case-sensitive", projar.Params{projar.KeyContent: "mapa"}, nil},
		{"call number wildcard is literal", projar.Params{projar.KeyCallNumber: "L_0"}, []int{2}},
		{"call number prefix", projar.Params{projar.KeyCallNumber: "CT-"}, []int{7, 4}},
		{"combined filters", projar.Params{
			projar.KeyTitle: "sao", projar.KeySectorID: "1", projar.KeyAuthorID: "6", projar.KeyMonth: "4",
		}, []int{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := find(t, s, tt.params)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func runRecordDetail(t *testing.T, s *Store) {
	ctx := context.Background()

	t.Run("relations", func(t *testing.T) {
		rec, err := s.Get(ctx, 1)
		require.NoError(t, err)

		assert.Equal(t, "Mapa de São Paulo", rec.Title)
		assert.Equal(t, "MP-001", rec.CallNumber)
		assert.Equal(t, "1:5.000", rec.Scale)
		require.NotNil(t, rec.Date)
		assert.Equal(t, "2020-03-15", rec.Date.Format("2006-01-02"))
		require.NotNil(t, rec.Sector)
		assert.Equal(t, "Cartografia", rec.Sector.Name)
		require.NotNil(t, rec.Location)
		assert.Equal(t, "Arquivo Central", rec.Location.Name)
		assert.Equal(t, []projar.Subject{{ID: 1, Name: "Hidrografia"}}, rec.Subjects)
		assert.Equal(t, []projar.Executor{{ID: 1, Name: "DNOS", Type: "federal"}}, rec.Executors)
		assert.Equal(t, []projar.GeographicArea{{ID: 1, Name: "Sudeste"}}, rec.Areas)
		assert.Equal(t, []projar.Author{{ID: 6, Name: "Andrade", Role: projar.RolePrimary}}, rec.Authors)
	})

	t.Run("relations ordered by name", func(t *testing.T) {
		rec, err := s.Get(ctx, 3)
		require.NoError(t, err)

		assert.Equal(t, []projar.Subject{{ID: 2, Name: "Costa litorânea"}, {ID: 1, Name: "Hidrografia"}}, rec.Subjects)
		assert.Equal(t, "Andrade", rec.Authors[0].Name)
		assert.Equal(t, "Silva", rec.Authors[1].Name)
	})

	t.Run("missing optional columns", func(t *testing.T) {
		rec, err := s.Get(ctx, 7)
		require.NoError(t, err)

		assert.Empty(t, rec.Content)
		assert.Nil(t, rec.Sector)
		assert.Nil(t, rec.Location)
		assert.Nil(t, rec.SectorID)
		assert.Empty(t, rec.Subjects)
	})

	t.Run("undated", func(t *testing.T) {
		rec, err := s.Get(ctx, 4)
		require.NoError(t, err)
		assert.Nil(t, rec.Date)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := s.Get(ctx, 99)
		assert.ErrorIs(t, err, projar.ErrNotFound)
	})

	t.Run("search results carry relations", func(t *testing.T) {
		records, err := s.Find(ctx, projar.Compile(projar.Params{projar.KeyExecutorID: "1"}).Query())
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Len(t, records[0].Executors, 2)
		assert.Len(t, records[1].Executors, 1)
	})
}

func runOptionLists(t *testing.T, s *Store) {
	ctx := context.Background()

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	authors, err := s.Authors(ctx)
	require.NoError(t, err)
	assert.Equal(t, []projar.Author{
		{ID: 6, Name: "Andrade", Role: projar.RolePrimary},
		{ID: 7, Name: "Instituto Geográfico", Role: projar.RoleSecondaryCorporate},
		{ID: 5, Name: "Silva", Role: projar.RoleSecondaryEvent},
	}, authors)

	contents, err := s.Contents(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Carta náutica", "Mapa", "Planta"}, contents)

	locations, err := s.Locations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []projar.Location{{ID: 1, Name: "Arquivo Central"}, {ID: 2, Name: "Mapoteca"}}, locations)

	sectors, err := s.Sectors(ctx)
	require.NoError(t, err)
	assert.Len(t, sectors, 2)

	subjects, err := s.Subjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Costa litorânea", subjects[0].Name)

	executors, err := s.Executors(ctx)
	require.NoError(t, err)
	assert.Equal(t, projar.Executor{ID: 1, Name: "DNOS", Type: "federal"}, executors[0])
}
