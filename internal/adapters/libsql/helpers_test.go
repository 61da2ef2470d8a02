package libsql_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/rtreharne/fishdata/internal/adapters/libsql"
)

// testDB opens a named in-memory database so each test starts empty while
// cache=shared keeps the data alive across connections from the pool.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := libsql.Open(context.Background(), dsn)
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}
