package history

import "context"

// TurnStore is the contract for long-term transcript backends. Stores keep
// turns in append order per session.
type TurnStore interface {
	AppendTurns(ctx context.Context, sessionID string, turns []Turn) error
	Turns(ctx context.Context, sessionID string, limit int) ([]Turn, error)
	Count(ctx context.Context, sessionID string) (int, error)
}

// SchemaInitializer allows stores to expose optional schema/bootstrap routines.
type SchemaInitializer interface {
	CreateSchema(ctx context.Context) error
}
