package session

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"

	"github.com/guardiantix/authkit/internal/common"
)

func newStoreWithMock(t *testing.T) (*PostgresStore, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresStore(db), mock, db
}

func TestPostgresStore_Save(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	s := New("tok-1", testUser(), time.Hour)

	q := `(?s)^INSERT\s+INTO\s+sessions\s*\(id,\s*token,\s*user_id,\s*username,\s*email,\s*role,\s*created_at,\s*expires_at\).*ON\s+CONFLICT\s*\(token\)\s*DO\s+UPDATE`

	mock.ExpectExec(q).
		WithArgs(s.ID, s.Token, s.UserID, s.Username, s.Email, s.Role, s.CreatedAt, s.ExpiresAt()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := store.Save(context.Background(), s); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestPostgresStore_Get_Hit(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	created := time.Now().Add(-time.Minute)
	expires := created.Add(time.Hour)

	q := `(?s)^SELECT\s+id,\s*token,\s*user_id,\s*username,\s*email,\s*role,\s*created_at,\s*expires_at\s+FROM\s+sessions\s+WHERE\s+token\s*=\s*\$1\s+AND\s+expires_at\s*>\s*now\(\)`

	rows := sqlmock.NewRows([]string{"id", "token", "user_id", "username", "email", "role", "created_at", "expires_at"}).
		AddRow("sid-1", "tok-1", "7", "alice", "a@x.com", "user", created, expires)
	mock.ExpectQuery(q).WithArgs("tok-1").WillReturnRows(rows)

	got, err := store.Get(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.UserID != "7" || got.Username != "alice" {
		t.Fatalf("unexpected session: %+v", got)
	}
	if got.TTL != expires.Sub(created) {
		t.Fatalf("TTL mismatch: got %v", got.TTL)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestPostgresStore_Get_Miss(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT`).WithArgs("tok-x").WillReturnError(sql.ErrNoRows)

	_, err := store.Get(context.Background(), "tok-x")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestPostgresStore_Get_DBError(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT`).WithArgs("tok-x").WillReturnError(errors.New("db down"))

	_, err := store.Get(context.Background(), "tok-x")
	if err == nil || errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestPostgresStore_Delete(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+sessions\s+WHERE\s+token\s*=\s*\$1`).
		WithArgs("tok-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := store.Delete(context.Background(), "tok-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestPostgresStore_PurgeExpired(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+sessions\s+WHERE\s+expires_at\s*<=\s*now\(\)`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := store.PurgeExpired(context.Background())
	if err != nil {
		t.Fatalf("PurgeExpired error: %v", err)
	}
	if n != 3 {
		t.Fatalf("want 3 purged rows, got %d", n)
	}
}

func TestPostgresStore_RunMigrations_UsesSeam(t *testing.T) {
	store, _, db := newStoreWithMock(t)
	defer db.Close()

	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	called := false
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		called = true
		return nil
	}

	if err := store.RunMigrations(context.Background()); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}
	if !called {
		t.Fatal("expected migrations to be applied")
	}
}
