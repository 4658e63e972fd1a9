package embedding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizer_Tokens(t *testing.T) {
	tok := NewTokenizer()
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"drops stopwords and short tokens", "The Dark Knight's menace, a Joker!", []string{"dark", "knight", "menace", "joker"}},
		{"splits hyphenated words", "Sci-Fi Action", []string{"sci", "fi", "action"}},
		{"keeps digits", "a 10-year-old girl", []string{"10", "year", "old", "girl"}},
		{"single letters vanish", "C.E.O.", nil},
		{"accented letters stay in the word", "Amélie", []string{"amélie"}},
		{"accented word survives stopword removal", "Léon: The Professional", []string{"léon", "professional"}},
		{"non-latin scripts", "Crouching Tiger, Hidden Dragon 臥虎藏龍", []string{"crouching", "tiger", "hidden", "dragon", "臥虎藏龍"}},
		{"upper-case accents fold", "ÉCOLE été", []string{"école", "été"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Tokens(tt.in)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenizer_IsStopword(t *testing.T) {
	tok := NewTokenizer()
	assert.True(t, tok.IsStopword("the"))
	assert.True(t, tok.IsStopword("whereupon"))
	assert.False(t, tok.IsStopword("redemption"))
}
