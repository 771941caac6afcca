package textutil

import (
	"math/rand/v2"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		s    string
		n    int
		want string
	}{
		{"empty", "", 10, ""},
		{"empty zero", "", 0, ""},
		{"shorter", "Farmers market", 20, "Farmers market"},
		{"exact length", "abcde", 5, "abcde"},
		{"longer", "abcdefgh", 5, "abcde…"},
		{"zero limit", "abc", 0, "…"},
		{"negative limit", "abc", -3, "…"},
		{"multibyte kept whole", "café au lait", 4, "café…"},
		{"emoji", "🎶🎶🎶", 2, "🎶🎶…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Truncate(tt.s, tt.n))
		})
	}
}

func TestTruncate_LengthBound(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 1))
	alphabet := []rune("abcdé Ωß🎶\n")
	for i := 0; i < 500; i++ {
		var b strings.Builder
		for j := r.IntN(40); j > 0; j-- {
			b.WriteRune(alphabet[r.IntN(len(alphabet))])
		}
		s := b.String()
		n := r.IntN(30)

		got := Truncate(s, n)
		require.True(t, utf8.ValidString(got))
		require.LessOrEqual(t, utf8.RuneCountInString(got), n+1)
		if utf8.RuneCountInString(s) <= n {
			require.Equal(t, s, got)
		} else {
			require.True(t, strings.HasSuffix(got, Ellipsis))
		}
	}
}

func TestTruncateCard(t *testing.T) {
	long := strings.Repeat("x", CardLength+5)
	got := TruncateCard(long)
	require.Equal(t, CardLength+1, utf8.RuneCountInString(got))
	require.Equal(t, "short", TruncateCard("short"))
}
