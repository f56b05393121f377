// AngelaMos | 2026
// schema_test.go

package core

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestApplySchema(t *testing.T) {
	t.Run("executes every statement in order", func(t *testing.T) {
		db, mock := newMockDB(t)

		for range schemaStatements {
			mock.ExpectExec(".*").WillReturnResult(sqlmock.NewResult(0, 0))
		}

		if err := ApplySchema(context.Background(), db); err != nil {
			t.Fatalf("ApplySchema: %v", err)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})

	t.Run("stops on first failing statement", func(t *testing.T) {
		db, mock := newMockDB(t)

		execErr := errors.New("relation mangled")
		mock.ExpectExec(".*").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(".*").WillReturnError(execErr)

		err := ApplySchema(context.Background(), db)
		if err == nil {
			t.Fatal("expected error from failing statement")
		}
		if !errors.Is(err, execErr) {
			t.Errorf("expected wrapped exec error, got %v", err)
		}
		if !strings.Contains(err.Error(), "apply schema") {
			t.Errorf("expected apply schema context, got %v", err)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})
}

func TestSchemaStatementsAreIdempotent(t *testing.T) {
	for _, stmt := range schemaStatements {
		upper := strings.ToUpper(stmt)
		if !strings.Contains(upper, "IF NOT EXISTS") &&
			!strings.Contains(upper, "ON CONFLICT") {
			t.Errorf("statement is not idempotent: %.60s", stmt)
		}
	}
}
