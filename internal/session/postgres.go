package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/guardiantix/authkit/internal/common"
	"github.com/guardiantix/authkit/internal/session/migrations"
)

// PostgresStore persists sessions in PostgreSQL so that they survive process
// restarts and are shared across web-layer replicas.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// OpenPostgresStore opens a pgx-backed connection for the given DSN and
// returns a store over it. The caller owns closing the returned DB.
func OpenPostgresStore(dsn string) (*PostgresStore, *sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("db open error: %w", err)
	}
	return NewPostgresStore(db), db, nil
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and applies them.
func (s *PostgresStore) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, s.db, "."); err != nil {
		return err
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, sess Session) error {
	query :=
		`INSERT INTO sessions (id, token, user_id, username, email, role, created_at, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (token) DO UPDATE SET
		   id = EXCLUDED.id,
		   user_id = EXCLUDED.user_id,
		   username = EXCLUDED.username,
		   email = EXCLUDED.email,
		   role = EXCLUDED.role,
		   created_at = EXCLUDED.created_at,
		   expires_at = EXCLUDED.expires_at
		 `

	_, err := s.db.ExecContext(ctx, query,
		sess.ID, sess.Token, sess.UserID, sess.Username, sess.Email, sess.Role,
		sess.CreatedAt, sess.ExpiresAt())
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, token string) (*Session, error) {
	query :=
		`SELECT id, token, user_id, username, email, role, created_at, expires_at FROM sessions
		 WHERE token = $1 AND expires_at > now()
		 `

	sess := &Session{}
	var expiresAt time.Time
	err := s.db.QueryRowContext(ctx, query, token).Scan(
		&sess.ID, &sess.Token, &sess.UserID, &sess.Username, &sess.Email, &sess.Role,
		&sess.CreatedAt, &expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	sess.TTL = expiresAt.Sub(sess.CreatedAt)
	return sess, nil
}

func (s *PostgresStore) Delete(ctx context.Context, token string) error {
	query := `DELETE FROM sessions WHERE token = $1`
	if _, err := s.db.ExecContext(ctx, query, token); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

// PurgeExpired removes sessions whose TTL has elapsed and returns how many
// rows were deleted. Intended to run periodically from the web layer.
func (s *PostgresStore) PurgeExpired(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= now()`)
	if err != nil {
		return 0, fmt.Errorf("error performing sql request: %w", err)
	}
	return res.RowsAffected()
}
