package export

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "curto", truncate("curto", 10))
	assert.Equal(t, "abc", truncate("abcdef", 3))
	assert.Equal(t, "", truncate("abc", 0))
}

func TestTruncate_MultiByte(t *testing.T) {
	// Portuguese explanations carry multi-byte runes; cutting must
	// never leave a partial sequence behind.
	s := "anomalia: variação súbita no padrão histórico de execuções"
	out := truncate(s, 20)
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, 20, utf8.RuneCountInString(out))
	assert.Equal(t, "anomalia: variação s", out)
}
