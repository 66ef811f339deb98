package db_test

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/atinyakov/PlotKeeper/internal/db"
)

func TestOpen_ErrorPaths(t *testing.T) {
	cases := []struct {
		name       string
		driver     string
		dsn        string
		wantSubstr string
	}{
		{"invalid DSN", db.DriverPostgres, "some=random", "ping postgres"},
		{"unreachable pgx", db.DriverPgx, "postgres://nobody@127.0.0.1:1/none?connect_timeout=1", "ping pgx"},
		{"unknown driver", "mysql", "root@/garden", "unsupported driver"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := db.Open(context.Background(), tc.driver, tc.dsn)
			if err == nil {
				t.Fatalf("Open(%q, %q) did not return error", tc.driver, tc.dsn)
			}
			if !strings.Contains(err.Error(), tc.wantSubstr) {
				t.Errorf("Open(%q, %q) error = %q; want substring %q", tc.driver, tc.dsn, err.Error(), tc.wantSubstr)
			}
		})
	}
}

func TestEnsureSchema(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	defer conn.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS plots")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := db.EnsureSchema(context.Background(), conn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestEnsureSchema_Error(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	defer conn.Close()

	mock.ExpectExec("CREATE TABLE").WillReturnError(errors.New("permission denied"))

	err = db.EnsureSchema(context.Background(), conn)
	if err == nil || !strings.Contains(err.Error(), "create schema") {
		t.Errorf("expected create schema error, got %v", err)
	}
}
