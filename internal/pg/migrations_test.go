package pg

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingMigrations(t *testing.T) {
	all, err := PendingMigrations(0)
	require.NoError(t, err)
	require.Len(t, all, 5)

	for i, m := range all {
		assert.Equal(t, ".sql", filepath.Ext(m.Source))
		if i > 0 {
			assert.Greater(t, m.Version, all[i-1].Version)
		}
	}

	rest, err := PendingMigrations(all[2].Version)
	require.NoError(t, err)
	require.Len(t, rest, 2)
	assert.Equal(t, all[3].Version, rest[0].Version)

	none, err := PendingMigrations(all[len(all)-1].Version)
	require.NoError(t, err)
	assert.Empty(t, none)
}
