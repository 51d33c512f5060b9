package inventory

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{name: "short body kept", in: "scope", n: 10, want: "scope"},
		{name: "exact length kept", in: "abcde", n: 5, want: "abcde"},
		{name: "ascii cut", in: "abcdef", n: 3, want: "abc..."},
		// "€" is three bytes; a cut at 4 would land inside the second one.
		{name: "backs up to rune start", in: "€€€", n: 4, want: "€..."},
		{name: "cut on boundary", in: "€€€", n: 6, want: "€€..."},
		{name: "inside first rune", in: "€€", n: 2, want: "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := truncate(tt.in, tt.n)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestTruncate_LongMultibyteBody(t *testing.T) {
	t.Parallel()

	body := "x" + strings.Repeat("金", 400)
	got := truncate(body, maxErrorBody)

	assert.True(t, utf8.ValidString(got))
	assert.NotContains(t, got, "�")
	assert.LessOrEqual(t, len(got), maxErrorBody+len("..."))
}
