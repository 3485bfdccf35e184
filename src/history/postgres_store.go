package history

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements TurnStore on top of a Postgres table.
type PostgresStore struct {
	DB *pgxpool.Pool
}

// NewPostgresStore connects to Postgres and returns a Postgres-backed TurnStore.
func NewPostgresStore(ctx context.Context, connStr string) (*PostgresStore, error) {
	db, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}
	return &PostgresStore{DB: db}, nil
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS conversation_turns (
        id BIGSERIAL PRIMARY KEY,
        session_id TEXT NOT NULL,
        role TEXT NOT NULL,
        content TEXT NOT NULL,
        created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS conversation_turns_session_idx ON conversation_turns (session_id, id);
`

// CreateSchema ensures the transcript table exists.
func (ps *PostgresStore) CreateSchema(ctx context.Context) error {
	if ps == nil || ps.DB == nil {
		return nil
	}
	if _, err := ps.DB.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// AppendTurns inserts turns in order within one transaction.
func (ps *PostgresStore) AppendTurns(ctx context.Context, sessionID string, turns []Turn) error {
	if ps == nil || ps.DB == nil || len(turns) == 0 {
		return nil
	}
	tx, err := ps.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, turn := range turns {
		if _, err := tx.Exec(ctx,
			`INSERT INTO conversation_turns (session_id, role, content) VALUES ($1, $2, $3)`,
			sessionID, turn.Role, turn.Content,
		); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// Turns returns the most recent turns for a session in append order.
func (ps *PostgresStore) Turns(ctx context.Context, sessionID string, limit int) ([]Turn, error) {
	if ps == nil || ps.DB == nil {
		return nil, nil
	}
	query := `
        SELECT role, content FROM conversation_turns
        WHERE session_id = $1
        ORDER BY id ASC;
        `
	args := []any{sessionID}
	if limit > 0 {
		query = `
        SELECT role, content FROM (
                SELECT id, role, content FROM conversation_turns
                WHERE session_id = $1
                ORDER BY id DESC
                LIMIT $2
        ) recent ORDER BY id ASC;
        `
		args = append(args, limit)
	}
	rows, err := ps.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var turns []Turn
	for rows.Next() {
		var turn Turn
		if err := rows.Scan(&turn.Role, &turn.Content); err != nil {
			return nil, err
		}
		turns = append(turns, turn)
	}
	return turns, rows.Err()
}

// Count reports how many turns a session has persisted.
func (ps *PostgresStore) Count(ctx context.Context, sessionID string) (int, error) {
	if ps == nil || ps.DB == nil {
		return 0, nil
	}
	var n int
	err := ps.DB.QueryRow(ctx,
		`SELECT count(*) FROM conversation_turns WHERE session_id = $1`, sessionID,
	).Scan(&n)
	return n, err
}

// Close releases the underlying pool.
func (ps *PostgresStore) Close() {
	if ps != nil && ps.DB != nil {
		ps.DB.Close()
	}
}

var _ TurnStore = (*PostgresStore)(nil)
var _ SchemaInitializer = (*PostgresStore)(nil)
