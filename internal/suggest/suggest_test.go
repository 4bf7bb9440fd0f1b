package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNearest(t *testing.T) {
	t.Parallel()

	candidates := []string{"add", "remove", "list"}

	cases := []struct {
		input string
		want  string
	}{
		{"ad", "add"},
		{"lst", "list"},
		{"remvoe", "remove"},
		{"add", "add"},
		{"bogus", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Nearest(tc.input, candidates), "input %q", tc.input)
	}
}

func TestNearest_NoCandidates(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", Nearest("anything", nil))
}
