package projar

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccentPattern(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"rio", `r[iíìîï][oóòõôö]`},
		{"São", `S[aáàãâä][oóòõôö]`},
		{"Sao", `S[aáàãâä][oóòõôö]`},
		{"AÇÃO", `[aáàãâä][cç][aáàãâä][oóòõôö]`},
		{"1:5.000", `1:5\.000`},
		{"b(x)", `b\(x\)`},
		{"niño", `n[iíìîï]ñ[oóòõôö]`},
	}

	for _, tc := range tests {
		t.Run(tc.word, func(t *testing.T) {
			assert.Equal(t, tc.want, AccentPattern(tc.word))
		})
	}
}

func TestAccentPattern_MatchesAccentAndCaseVariants(t *testing.T) {
	re := regexp.MustCompile("(?i)" + AccentPattern("São"))

	for _, title := range []string{"Planta de Sao Paulo", "SÃO PAULO", "são vicente", "Rio São Francisco"} {
		assert.True(t, re.MatchString(title), "expected %q to match", title)
	}
	for _, title := range []string{"Santos", "Sé", "S. Paulo"} {
		assert.False(t, re.MatchString(title), "expected %q not to match", title)
	}
}

func TestAccentPattern_Cedilla(t *testing.T) {
	re := regexp.MustCompile("(?i)" + AccentPattern("acao"))

	assert.True(t, re.MatchString("Ação Integrada"))
	assert.True(t, re.MatchString("ACAO"))
	assert.False(t, re.MatchString("asao"))
}

func TestWordPredicate(t *testing.T) {
	t.Run("short word uses substring", func(t *testing.T) {
		assert.Equal(t, Contains{Field: FieldTitle, Text: "é", Fold: true}, wordPredicate(FieldTitle, "é"))
	})

	t.Run("two characters use pattern", func(t *testing.T) {
		assert.Equal(t,
			Matches{Field: FieldTitle, Pattern: `d[eéèêë]`, Word: "de"},
			wordPredicate(FieldTitle, "de"),
		)
	})
}
