package concierge

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/voyant-ai/concierge/src/history"
	"github.com/voyant-ai/concierge/src/models"
	"github.com/voyant-ai/concierge/src/parse"
)

// Session drives one conversation: it builds the augmented instruction
// block, calls the generation provider, and interprets the response. A
// session owns its transcript for the life of the process. Calls on one
// session must be serialized by the host; independent sessions are
// independent.
type Session struct {
	model        models.Model
	systemPrompt string
	catalog      *StaticToolCatalog
	log          *history.Log
}

// Options configure a new Session.
type Options struct {
	// Model is the generation provider. A session without one returns
	// ErrNotConfigured from Send until SetModel is called.
	Model models.Model

	// SystemPrompt overrides the default persona.
	SystemPrompt string

	// Catalog supplies tool specs for requests that don't carry their own.
	Catalog *StaticToolCatalog
}

// NewSession creates a Session with an empty transcript.
func NewSession(opts Options) *Session {
	return &Session{
		model:        opts.Model,
		systemPrompt: opts.SystemPrompt,
		catalog:      opts.Catalog,
		log:          history.NewLog(),
	}
}

// SetModel installs or replaces the generation provider, e.g. after the
// host obtained credentials.
func (s *Session) SetModel(model models.Model) {
	s.model = model
}

// Request is one Send invocation.
type Request struct {
	// Prompt is the user's message. Required.
	Prompt string

	// SystemPrompt overrides the session persona for this call only.
	SystemPrompt string

	// History is prior-conversation text included verbatim ahead of the
	// current exchange. When empty, the session's own transcript is used.
	History string

	// Tools the model may invoke for this call. When nil, the session
	// catalog (if any) is consulted. With no tools at all, responses pass
	// through unparsed.
	Tools []ToolSpec

	// Generation settings forwarded to the provider.
	Temperature float64
	MaxTokens   int
}

// Send performs one blocking round-trip: prompt in, interpreted result out.
// The exchange is appended to the session transcript on success.
func (s *Session) Send(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, errors.New("prompt is empty")
	}
	if s.model == nil {
		return nil, fmt.Errorf("%w: provide a model and retry", ErrNotConfigured)
	}

	tools := req.Tools
	if tools == nil && s.catalog != nil {
		tools = s.catalog.Specs()
	}

	systemPrompt := req.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = s.systemPrompt
	}

	historyText := req.History
	if historyText == "" {
		historyText = s.log.Render()
	}

	instruction := buildInstructionBlock(buildSystemPrompt(systemPrompt, tools), historyText, req.Prompt)

	raw, err := s.model.Generate(ctx, instruction, models.Params{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		TopP:        1,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	result := parse.Segment(raw, tools)

	s.log.Append(history.RoleUser, req.Prompt)
	s.log.Append(history.RoleAssistant, result.Content)

	return &result, nil
}

// History returns a snapshot of the session transcript.
func (s *Session) History() []history.Turn {
	return s.log.Turns()
}

// Reset drops the transcript, starting a fresh conversation.
func (s *Session) Reset() {
	s.log.Reset()
}

// Flush persists the session transcript into a long-term store under the
// given session id. The in-process log is kept.
func (s *Session) Flush(ctx context.Context, store history.TurnStore, sessionID string) error {
	if store == nil {
		return errors.New("turn store is nil")
	}
	return store.AppendTurns(ctx, sessionID, s.log.Turns())
}
