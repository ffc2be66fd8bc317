package asset

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicContainsLogo(t *testing.T) {
	content, err := fs.ReadFile(Public(), "next.svg")
	require.NoError(t, err)
	assert.Contains(t, string(content), "<svg")
}

func TestExists(t *testing.T) {
	cases := map[string]bool{
		"/next.svg":           true,
		"next.svg":            true,
		"/":                   false,
		"":                    false,
		"/missing.png":        false,
		"/../public/next.svg": false,
	}

	for p, want := range cases {
		assert.Equal(t, want, Exists(p), p)
	}
}
