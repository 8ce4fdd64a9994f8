package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinCatalogue(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	services := c.Services()
	require.Len(t, services, 4)
	ids := make([]string, len(services))
	for i, s := range services {
		ids[i] = s.ID
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.Audience)
		assert.Len(t, s.Highlights, 4)
	}
	assert.Equal(t, []string{"architecture", "delivery", "advisory", "ai"}, ids)

	highlights := c.Highlights()
	require.Len(t, highlights, 4)
	assert.Equal(t, "Average ROI", highlights[0].Label)
	assert.Equal(t, "3-10x", highlights[0].Value)
	assert.Equal(t, "< 6 weeks", highlights[1].Value)
	assert.Equal(t, "72", highlights[2].Value)

	assert.True(t, c.HasService("ai"))
	assert.False(t, c.HasService("catering"))
}

func TestServicesReturnsCopy(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	s := c.Services()
	s[0].ID = "mutated"

	assert.Equal(t, "architecture", c.Services()[0].ID)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	data := []byte(`
services:
  - id: audit
    title: Audit
    audience: [CTOs]
    description: One-off audit.
    highlights: [Report]
highlights:
  - label: Clients
    value: "10"
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.True(t, c.HasService("audit"))
	assert.Len(t, c.Highlights(), 1)
}

func TestParseRejectsBadCatalogues(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing id", "services:\n  - title: No id\n"},
		{"duplicate id", "services:\n  - id: a\n  - id: a\n"},
		{"not yaml", "services: [unclosed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
