package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations_UpDownPairs(t *testing.T) {
	entries, err := fs.ReadDir(files, sourceDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Errorf("unexpected file in migrations: %s", name)
		}
	}
	assert.Equal(t, ups, downs)
}

func TestEmbeddedMigrations_CreateAllTables(t *testing.T) {
	data, err := fs.ReadFile(files, sourceDir+"/000001_init_schema.up.sql")
	require.NoError(t, err)

	schema := string(data)
	for _, table := range []string{"users", "hazards", "speed_records", "rewards"} {
		assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
	assert.Contains(t, schema, "username        VARCHAR(50)  NOT NULL UNIQUE")
	assert.Contains(t, schema, "email           VARCHAR(100) NOT NULL UNIQUE")
	assert.Equal(t, 3, strings.Count(schema, "ON DELETE CASCADE"))
}
