package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect_ExplicitWins(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "1.2.3", Detect("1.2.3"))
}

func TestDetect_FallsBackToDev(t *testing.T) {
	t.Parallel()

	// Test binaries carry no release version in their build info.
	assert.Equal(t, "dev", Detect(""))
}
