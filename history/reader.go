// Package history reads browser history databases that may be open and
// locked by a running browser. Every read goes through a private temporary
// copy so the browser never has to be closed.
package history

import (
	"database/sql"
	"fmt"
	"io"
	"os"

	"aiscout/logger"

	_ "modernc.org/sqlite"
)

// Reader executes read-only queries against history databases. The
// orchestration layers depend on this interface so tests can substitute
// their own row sources.
type Reader interface {
	Query(path, query string) []map[string]string
}

// SQLiteReader reads history databases with the embedded SQLite engine.
type SQLiteReader struct{}

func NewReader() *SQLiteReader {
	return &SQLiteReader{}
}

// Query copies the database at path to a temporary file, runs the query
// against the copy, and removes the copy on every exit path. A missing
// source, a failed copy, or a failed query all yield an empty result:
// callers treat "no rows" and "could not read" identically, the
// distinction only matters for diagnostics.
func (r *SQLiteReader) Query(path, query string) []map[string]string {
	if _, err := os.Stat(path); err != nil {
		logger.Debugf("history database not accessible: %s (%v)", path, err)
		return nil
	}

	tmpPath, err := copyToTemp(path)
	if err != nil {
		logger.Debugf("failed to copy history database %s: %v", path, err)
		return nil
	}
	defer os.Remove(tmpPath)

	rows, err := queryCopy(tmpPath, query)
	if err != nil {
		logger.Debugf("query against %s failed: %v", path, err)
		return nil
	}
	return rows
}

func copyToTemp(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening source: %w", err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "aiscout-*.db")
	if err != nil {
		return "", fmt.Errorf("creating temp copy: %w", err)
	}

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("copying database: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("closing temp copy: %w", err)
	}
	return tmp.Name(), nil
}

func queryCopy(path, query string) ([]map[string]string, error) {
	// immutable=1 tells the engine the copy will never change, which also
	// spares it from looking for WAL sidecars the copy does not have.
	conn, err := sql.Open("sqlite", "file:"+path+"?mode=ro&immutable=1")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer conn.Close()

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	rows, err := conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading columns: %w", err)
	}

	var out []map[string]string
	for rows.Next() {
		values := make([]sql.NullString, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		record := make(map[string]string, len(cols))
		for i, col := range cols {
			if values[i].Valid {
				record[col] = values[i].String
			} else {
				record[col] = ""
			}
		}
		out = append(out, record)
	}
	return out, rows.Err()
}
