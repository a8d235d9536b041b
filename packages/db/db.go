// Package db runs SQL queries and returns their rows as green values so
// they can be asserted like any other operand.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	// SQLite driver
	_ "github.com/mattn/go-sqlite3"

	"github.com/abdul-hamid-achik/green/packages/value"
)

const defaultQueryTimeout = 30 * time.Second

// Client represents a database client
type Client struct {
	db           *sql.DB
	dataSource   string
	queryTimeout time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithQueryTimeout bounds every query issued by the client.
func WithQueryTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.queryTimeout = d
	}
}

// Open connects to the database named by dsn.
// Supported formats:
// - sqlite://path/to/db.sqlite
// - sqlite:./test.db
// - ./test.db or :memory:
func Open(dsn string, opts ...ClientOption) (*Client, error) {
	source, err := parseConnectionString(dsn)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", source)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Every pooled connection to :memory: would see its own database.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	c := &Client{
		db:           db,
		dataSource:   source,
		queryTimeout: defaultQueryTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Close closes the database connection
func (c *Client) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Exec runs a statement and returns the number of affected rows.
func (c *Client) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.queryTimeout)
	defer cancel()

	res, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("exec failed: %w", err)
	}
	return res.RowsAffected()
}

// Query runs query and returns its rows as a List of Maps keyed by column
// name, in column order.
func (c *Client) Query(ctx context.Context, query string, args ...any) (value.Value, error) {
	ctx, cancel := context.WithTimeout(ctx, c.queryTimeout)
	defer cancel()

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return value.Null(), fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return value.Null(), fmt.Errorf("failed to get columns: %w", err)
	}

	var out []value.Value
	for rows.Next() {
		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return value.Null(), fmt.Errorf("failed to scan row: %w", err)
		}

		entries := make([]value.Entry, len(columns))
		for i, col := range columns {
			entries[i] = value.Pair(col, columnValue(values[i]))
		}
		out = append(out, value.NewMap(entries...))
	}

	if err := rows.Err(); err != nil {
		return value.Null(), fmt.Errorf("row iteration error: %w", err)
	}

	return value.List(out...), nil
}

// QueryValue returns the first column of the first row, or Null when the
// query yields no rows.
func (c *Client) QueryValue(ctx context.Context, query string, args ...any) (value.Value, error) {
	rows, err := c.Query(ctx, query, args...)
	if err != nil {
		return value.Null(), err
	}
	if rows.Len() == 0 {
		return value.Null(), nil
	}
	first := rows.Items()[0].Items()
	if len(first) == 0 {
		return value.Null(), nil
	}
	return first[0], nil
}

func columnValue(v any) value.Value {
	switch t := v.(type) {
	case []byte:
		return value.String(string(t))
	case time.Time:
		return value.String(t.Format(time.RFC3339Nano))
	}
	return value.Of(v)
}

func parseConnectionString(connStr string) (string, error) {
	connStr = strings.TrimSpace(connStr)

	switch {
	case connStr == "":
		return "", fmt.Errorf("empty connection string")
	case strings.HasPrefix(connStr, "sqlite://"):
		return strings.TrimPrefix(connStr, "sqlite://"), nil
	case strings.HasPrefix(connStr, "sqlite:"):
		return strings.TrimPrefix(connStr, "sqlite:"), nil
	case strings.Contains(connStr, "://"):
		scheme, _, _ := strings.Cut(connStr, "://")
		return "", fmt.Errorf("unsupported database scheme: %s", scheme)
	}
	return connStr, nil
}
