package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/abdul-hamid-achik/green/packages/assertions"
	"github.com/abdul-hamid-achik/green/packages/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openUsers(t *testing.T, dsn string) *Client {
	t.Helper()
	client, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	ctx := context.Background()
	_, err = client.Exec(ctx, `CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT, score REAL, note TEXT)`)
	require.NoError(t, err)
	n, err := client.Exec(ctx, `INSERT INTO users (name, score, note) VALUES ('Alice', 1.5, NULL), ('Bob', 2, 'x')`)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)
	return client
}

func TestOpen_SQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	for _, dsn := range []string{"sqlite://" + dbPath, "sqlite:" + dbPath + ".2", ":memory:"} {
		client, err := Open(dsn)
		require.NoError(t, err, dsn)
		assert.NoError(t, client.Close())
	}
}

func TestOpen_Unsupported(t *testing.T) {
	_, err := Open("postgres://localhost/db")
	assert.ErrorContains(t, err, "unsupported database scheme: postgres")

	_, err = Open("  ")
	assert.Error(t, err)
}

func TestQuery_Rows(t *testing.T) {
	client := openUsers(t, ":memory:")

	rows, err := client.Query(context.Background(), `SELECT name, id, score, note FROM users ORDER BY id`)
	require.NoError(t, err)
	require.Equal(t, value.KindList, rows.Kind())
	require.Equal(t, 2, rows.Len())

	alice := rows.Items()[0]
	var cols []string
	for _, k := range alice.Keys() {
		cols = append(cols, k.AsString())
	}
	assert.Equal(t, []string{"name", "id", "score", "note"}, cols)

	expected := value.NewMap(
		value.Pair("name", "Alice"),
		value.Pair("id", 1),
		value.Pair("score", 1.5),
		value.Pair("note", nil),
	)
	assert.True(t, assertions.SmartEquals(expected, alice), alice.Export())
}

func TestQuery_Assertable(t *testing.T) {
	client := openUsers(t, ":memory:")
	ctx := context.Background()

	names, err := client.Query(ctx, `SELECT name FROM users WHERE id = ?`, 2)
	require.NoError(t, err)
	ok, err := assertions.Evaluate(value.List(value.NewMap(value.Pair("name", "Bob"))), assertions.OpEquals, names)
	require.NoError(t, err)
	assert.True(t, ok)

	count, err := client.QueryValue(ctx, `SELECT COUNT(*) FROM users`)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count.AsInt())

	none, err := client.QueryValue(ctx, `SELECT name FROM users WHERE id = 99`)
	require.NoError(t, err)
	assert.True(t, none.IsNull())

	_, err = client.Query(ctx, `SELECT * FROM missing`)
	assert.Error(t, err)
}

func TestParseConnectionString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"sqlite://./a.db", "./a.db"},
		{"sqlite:b.db", "b.db"},
		{" c.db ", "c.db"},
		{":memory:", ":memory:"},
	}
	for _, tt := range tests {
		got, err := parseConnectionString(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
