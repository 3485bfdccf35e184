package history

import (
	"context"
	"errors"
	"fmt"
)

// Neo4jAccessMode controls whether a session is opened for read or write operations.
type Neo4jAccessMode string

const (
	// AccessModeWrite opens a session with write access.
	AccessModeWrite Neo4jAccessMode = "write"
	// AccessModeRead opens a session with read access.
	AccessModeRead Neo4jAccessMode = "read"
)

// Neo4jSessionConfig mirrors the minimal subset of Neo4j session configuration we require.
type Neo4jSessionConfig struct {
	AccessMode   Neo4jAccessMode
	DatabaseName string
}

// neo4jDriver abstracts the Neo4j driver capabilities used by the store. This
// allows tests to provide lightweight fakes without depending on the real
// driver package (which is guarded behind an optional build tag).
type neo4jDriver interface {
	NewSession(ctx context.Context, config Neo4jSessionConfig) (neo4jSession, error)
	Close(ctx context.Context) error
}

type neo4jSession interface {
	Run(ctx context.Context, query string, params map[string]any) (neo4jResult, error)
	Close(ctx context.Context) error
}

type neo4jResult interface {
	Next(ctx context.Context) bool
	Record() neo4jRecord
	Err() error
	Close(ctx context.Context) error
}

type neo4jRecord interface {
	Get(key string) (any, bool)
}

// ErrNeo4jUnavailable is returned when operations are attempted without a configured driver.
var ErrNeo4jUnavailable = errors.New("neo4j driver not configured")

// Neo4jStore persists conversation transcripts as a graph: one Session node
// per conversation with ordered Turn nodes attached to it.
type Neo4jStore struct {
	driver   neo4jDriver
	database string
}

// NewNeo4jStore constructs a store backed by the provided driver.
func NewNeo4jStore(driver neo4jDriver, database string) (*Neo4jStore, error) {
	if driver == nil {
		return nil, errors.New("neo4j driver is nil")
	}
	return &Neo4jStore{driver: driver, database: database}, nil
}

func (ns *Neo4jStore) AppendTurns(ctx context.Context, sessionID string, turns []Turn) error {
	if ns == nil || ns.driver == nil {
		return ErrNeo4jUnavailable
	}
	if len(turns) == 0 {
		return nil
	}
	session, err := ns.driver.NewSession(ctx, Neo4jSessionConfig{AccessMode: AccessModeWrite, DatabaseName: ns.database})
	if err != nil {
		return err
	}
	defer session.Close(ctx)

	for _, turn := range turns {
		res, err := session.Run(ctx, `
                MERGE (s:Session {id: $session})
                WITH s
                OPTIONAL MATCH (s)-[:HAS_TURN]->(existing:Turn)
                WITH s, coalesce(max(existing.seq), -1) AS maxSeq
                CREATE (t:Turn {seq: maxSeq + 1, role: $role, content: $content, created_at: datetime()})
                CREATE (s)-[:HAS_TURN]->(t)
                `, map[string]any{
			"session": sessionID,
			"role":    turn.Role,
			"content": turn.Content,
		})
		if err != nil {
			return err
		}
		if err := drainResult(ctx, res); err != nil {
			return err
		}
	}
	return nil
}

func (ns *Neo4jStore) Turns(ctx context.Context, sessionID string, limit int) ([]Turn, error) {
	if ns == nil || ns.driver == nil {
		return nil, ErrNeo4jUnavailable
	}
	session, err := ns.driver.NewSession(ctx, Neo4jSessionConfig{AccessMode: AccessModeRead, DatabaseName: ns.database})
	if err != nil {
		return nil, err
	}
	defer session.Close(ctx)

	query := `
        MATCH (:Session {id: $session})-[:HAS_TURN]->(t:Turn)
        RETURN t.role AS role, t.content AS content
        ORDER BY t.seq ASC
        `
	params := map[string]any{"session": sessionID}
	if limit > 0 {
		query = `
        MATCH (:Session {id: $session})-[:HAS_TURN]->(t:Turn)
        WITH t ORDER BY t.seq DESC LIMIT $limit
        RETURN t.role AS role, t.content AS content
        ORDER BY t.seq ASC
        `
		params["limit"] = limit
	}
	res, err := session.Run(ctx, query, params)
	if err != nil {
		return nil, err
	}
	defer res.Close(ctx)

	var turns []Turn
	for res.Next(ctx) {
		record := res.Record()
		role, _ := record.Get("role")
		content, _ := record.Get("content")
		turns = append(turns, Turn{
			Role:    stringFromAny(role),
			Content: stringFromAny(content),
		})
	}
	return turns, res.Err()
}

func (ns *Neo4jStore) Count(ctx context.Context, sessionID string) (int, error) {
	if ns == nil || ns.driver == nil {
		return 0, ErrNeo4jUnavailable
	}
	session, err := ns.driver.NewSession(ctx, Neo4jSessionConfig{AccessMode: AccessModeRead, DatabaseName: ns.database})
	if err != nil {
		return 0, err
	}
	defer session.Close(ctx)

	res, err := session.Run(ctx, `
        MATCH (:Session {id: $session})-[:HAS_TURN]->(t:Turn)
        RETURN count(t) AS n
        `, map[string]any{"session": sessionID})
	if err != nil {
		return 0, err
	}
	defer res.Close(ctx)

	if res.Next(ctx) {
		if v, ok := res.Record().Get("n"); ok {
			switch n := v.(type) {
			case int64:
				return int(n), nil
			case int:
				return n, nil
			}
		}
	}
	return 0, res.Err()
}

// Close releases the underlying driver.
func (ns *Neo4jStore) Close(ctx context.Context) error {
	if ns == nil || ns.driver == nil {
		return nil
	}
	return ns.driver.Close(ctx)
}

func drainResult(ctx context.Context, res neo4jResult) error {
	if res == nil {
		return nil
	}
	defer res.Close(ctx)
	for res.Next(ctx) {
	}
	return res.Err()
}

func stringFromAny(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

var _ TurnStore = (*Neo4jStore)(nil)
