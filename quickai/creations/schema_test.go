package creations

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columnLine = regexp.MustCompile(`^\s+([a-z_]+)\s+[A-Z]`)

// column names declared for a table in the init migration
func migrationColumns(t *testing.T, table string) []string {
	t.Helper()

	ddl, err := os.ReadFile(filepath.Join("..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)

	_, body, found := strings.Cut(string(ddl), "CREATE TABLE IF NOT EXISTS "+table+" (")
	require.True(t, found, "table %s not declared", table)
	body, _, _ = strings.Cut(body, ");")

	var columns []string
	for _, line := range strings.Split(body, "\n") {
		if m := columnLine.FindStringSubmatch(line); m != nil {
			columns = append(columns, m[1])
		}
	}

	return columns
}

func TestMigration_EveryCreationsColumnIsUsed(t *testing.T) {
	columns := migrationColumns(t, "creations")
	require.NotEmpty(t, columns)

	queries := queryCreate + queryListByUser + queryListPublished
	for _, column := range columns {
		assert.Contains(t, queries, column, "column %s is declared but never read or written", column)
	}

	assert.ElementsMatch(t,
		[]string{"id", "user_id", "prompt", "content", "type", "publish", "created_at"}, columns)
}
