package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDistanceCmd(t *testing.T) {
	out, err := run(t, "distance", "kjfk", "klax")
	require.NoError(t, err)
	assert.Equal(t, "KJFK -> KLAX: 2146 nm, 4.8 h at 450 kts\n", out)

	out, err = run(t, "distance", "KJFK", "XXXX")
	require.NoError(t, err)
	assert.Equal(t, "insufficient data\n", out)

	out, err = run(t, "distance", "KJFK", "KLAX", "--speed", "NaN")
	require.NoError(t, err)
	assert.Equal(t, "KJFK -> KLAX: 2146 nm, 4.8 h at 450 kts\n", out)

	_, err = run(t, "distance", "KJFK")
	assert.Error(t, err)
}

func TestRankCmd(t *testing.T) {
	out, err := run(t, "rank", "120")
	require.NoError(t, err)
	assert.Equal(t, "First Officer, 13.3% to Senior First Officer (130.0 h remaining)\n", out)

	out, err = run(t, "rank", "2500")
	require.NoError(t, err)
	assert.Equal(t, "Commander (top rank)\n", out)

	for _, bad := range []string{"-3", "NaN", "Inf", "abc"} {
		out, err = run(t, "rank", bad)
		assert.Error(t, err, bad)
		assert.NotContains(t, out, "NaN%", bad)
	}
}

func TestRoutesImportAndKeys_Sqlite(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "ops.db"))
	t.Setenv("APP_ENV", "test")

	csvPath := filepath.Join(dir, "routes.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("flight_number,origin,destination\nSKY1,KJFK,KLAX\nSKY2,KJFK,JFK\n"), 0o600))

	out, err := run(t, "routes", "import", csvPath)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 1, skipped 1")
	assert.Contains(t, out, "line 3:")

	out, err = run(t, "keys", "create", "--role", "admin")
	require.NoError(t, err)
	assert.Regexp(t, `New API Key: [0-9a-f]{32}`, out)

	_, err = run(t, "keys", "create", "--role", "owner")
	assert.Error(t, err)

	_, err = run(t, "keys", "revoke", "does-not-exist")
	assert.Error(t, err)
}
