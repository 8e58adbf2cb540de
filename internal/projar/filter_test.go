package projar

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_NoParams(t *testing.T) {
	for name, p := range map[string]Params{
		"nil":          nil,
		"empty":        {},
		"empty values": {KeyID: "", KeyTitle: "", KeySubject: "", KeyMonth: "", KeyAuthorID: ""},
		"blank text":   {KeyTitle: "   ", KeySubject: "\t"},
		"role alone":   {KeyAuthorRole: "primary"},
		"year alone":   {KeyYear: "2020"},
	} {
		t.Run(name, func(t *testing.T) {
			f := Compile(p)
			assert.Empty(t, f.Where)
			assert.Empty(t, f.Applied)
			assert.Equal(t, OrderIDDesc, f.Order)
		})
	}
}

func TestCompile_MalformedNumbersAreDropped(t *testing.T) {
	f := Compile(Params{
		KeyID:         "abc",
		KeyAuthorID:   "5x",
		KeyAuthorRole: "primary",
		KeyLocationID: "1.5",
		KeyExecutorID: "-",
		KeySubjectID:  "one",
		KeySectorID:   "0x10",
		KeyMonth:      "-3",
	})

	assert.Empty(t, f.Where)
	assert.Empty(t, f.Applied)
}

func TestCompile_OutOfRangeIDsAreDropped(t *testing.T) {
	f := Compile(Params{
		KeyID:         "3000000000",
		KeyAuthorID:   "-2147483649",
		KeyLocationID: "9223372036854775808",
		KeyExecutorID: "2147483648",
		KeySubjectID:  "99999999999",
		KeySectorID:   "4294967296",
	})

	assert.Empty(t, f.Where)
	assert.Empty(t, f.Applied)
}

func TestCompile_IDAtInt32Limit(t *testing.T) {
	f := Compile(Params{KeyID: "2147483647"})

	assert.Equal(t, And{Equals{Field: FieldID, Value: 2147483647}}, f.Where)
}

func TestCompile_ID(t *testing.T) {
	f := Compile(Params{KeyID: " 42 "})

	require.Len(t, f.Where, 1)
	assert.Equal(t, Equals{Field: FieldID, Value: 42}, f.Where[0])
	assert.Equal(t, Applied{KeyID: "42"}, f.Applied)
}

func TestCompile_SubstringFilters(t *testing.T) {
	f := Compile(Params{KeyCallNumber: "MP-12", KeyContent: "Mapa"})

	assert.Equal(t, And{
		Contains{Field: FieldCallNumber, Text: "MP-12"},
		Contains{Field: FieldContent, Text: "Mapa"},
	}, f.Where)
	assert.Equal(t, Applied{KeyCallNumber: "MP-12", KeyContent: "Mapa"}, f.Applied)
}

func TestCompile_Author(t *testing.T) {
	t.Run("any role", func(t *testing.T) {
		for _, role := range []string{"", "all"} {
			f := Compile(Params{KeyAuthorID: "5", KeyAuthorRole: role})

			assert.Equal(t, And{
				Linked{Relation: RelAuthors, Where: Equals{Field: FieldAuthorID, Value: 5}},
			}, f.Where)
			assert.Equal(t, Applied{KeyAuthorID: "5"}, f.Applied)
		}
	})

	t.Run("specific role", func(t *testing.T) {
		f := Compile(Params{KeyAuthorID: "5", KeyAuthorRole: "primary"})

		assert.Equal(t, And{
			Linked{Relation: RelAuthors, Where: And{
				Equals{Field: FieldAuthorID, Value: 5},
				Equals{Field: FieldAuthorRole, Value: "primary"},
			}},
		}, f.Where)
		assert.Equal(t, Applied{KeyAuthorID: "5", KeyAuthorRole: "primary"}, f.Applied)
	})
}

func TestCompile_Date(t *testing.T) {
	t.Run("month and year", func(t *testing.T) {
		f := Compile(Params{KeyMonth: "3", KeyYear: "2020"})

		assert.Equal(t, And{And{
			DateEquals{Field: FieldDate, Part: Month, Value: 3},
			DateEquals{Field: FieldDate, Part: Year, Value: 2020},
		}}, f.Where)
		assert.Equal(t, Applied{KeyMonth: "3", KeyYear: "2020"}, f.Applied)
	})

	t.Run("month only", func(t *testing.T) {
		f := Compile(Params{KeyMonth: "03"})

		assert.Equal(t, And{DateEquals{Field: FieldDate, Part: Month, Value: 3}}, f.Where)
		assert.Equal(t, Applied{KeyMonth: "03"}, f.Applied)
	})

	t.Run("bad year keeps month", func(t *testing.T) {
		f := Compile(Params{KeyMonth: "3", KeyYear: "twenty"})

		assert.Equal(t, And{DateEquals{Field: FieldDate, Part: Month, Value: 3}}, f.Where)
		assert.Equal(t, Applied{KeyMonth: "3"}, f.Applied)
	})
}

func TestCompile_ExactRelations(t *testing.T) {
	f := Compile(Params{KeyExecutorID: "7", KeySubjectID: "9"})

	assert.Equal(t, And{
		Linked{Relation: RelExecutors, Where: Equals{Field: FieldExecutorID, Value: 7}},
		Linked{Relation: RelSubjects, Where: Equals{Field: FieldSubjectID, Value: 9}},
	}, f.Where)
}

func TestCompile_EqualityColumns(t *testing.T) {
	f := Compile(Params{KeyLocationID: "2", KeySectorID: "3"})

	assert.Equal(t, And{
		Equals{Field: FieldLocationID, Value: 2},
		Equals{Field: FieldSectorID, Value: 3},
	}, f.Where)
}

func TestCompile_Title(t *testing.T) {
	f := Compile(Params{KeyTitle: "  Rio  Grande do Sul "})

	assert.Equal(t, And{And{
		Matches{Field: FieldTitle, Pattern: `R[iíìîï][oóòõôö]`, Word: "Rio"},
		Matches{Field: FieldTitle, Pattern: `Gr[aáàãâä]nd[eéèêë]`, Word: "Grande"},
		Matches{Field: FieldTitle, Pattern: `d[oóòõôö]`, Word: "do"},
		Matches{Field: FieldTitle, Pattern: `S[uúùûü]l`, Word: "Sul"},
	}}, f.Where)
	assert.Equal(t, Applied{KeyTitle: "Rio  Grande do Sul"}, f.Applied)
}

func TestCompile_TitleSingleCharacterWord(t *testing.T) {
	f := Compile(Params{KeyTitle: "Carta e Mapa"})

	words := f.Where[0].(And)
	require.Len(t, words, 3)
	assert.Equal(t, Contains{Field: FieldTitle, Text: "e", Fold: true}, words[1])
	assert.IsType(t, Matches{}, words[0])
	assert.IsType(t, Matches{}, words[2])
}

func TestCompile_SubjectWordsAreIndependentSubqueries(t *testing.T) {
	f := Compile(Params{KeySubject: "hidrografia costa"})

	assert.Equal(t, And{And{
		Linked{Relation: RelSubjects, Where: Matches{
			Field: FieldSubjectName, Pattern: `h[iíìîï]dr[oóòõôö]gr[aáàãâä]f[iíìîï][aáàãâä]`, Word: "hidrografia",
		}},
		Linked{Relation: RelSubjects, Where: Matches{
			Field: FieldSubjectName, Pattern: `[cç][oóòõôö]st[aáàãâä]`, Word: "costa",
		}},
	}}, f.Where)
	assert.Equal(t, Applied{KeySubject: "hidrografia costa"}, f.Applied)
}

func TestCompile_SubjectAndSubjectIDCoexist(t *testing.T) {
	f := Compile(Params{KeySubject: "mapa", KeySubjectID: "4"})

	assert.Len(t, f.Where, 2)
	assert.Equal(t, Applied{KeySubject: "mapa", KeySubjectID: "4"}, f.Applied)
}

func TestCompile_AllFilters(t *testing.T) {
	f := Compile(Params{
		KeyID: "1", KeyCallNumber: "A", KeyAuthorID: "2", KeyAuthorRole: "secondary-event",
		KeyLocationID: "3", KeyMonth: "4", KeyYear: "1999", KeyContent: "Mapa",
		KeyExecutorID: "5", KeySubject: "rio", KeySubjectID: "6", KeySectorID: "7", KeyTitle: "carta",
	})

	assert.Len(t, f.Where, 11)
	assert.Len(t, f.Applied, 13)
}

func TestParamsFromValues(t *testing.T) {
	v := url.Values{
		"title":   {"São Paulo", "ignored"},
		"id":      {""},
		"unknown": {"x"},
	}

	assert.Equal(t, Params{KeyTitle: "São Paulo"}, ParamsFromValues(v))
}
