package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hostlens-dev/hostlens/dispatch"
)

// ErrConfiguration indicates an invalid or incomplete configuration.
var ErrConfiguration = errors.New("configuration error")

// Config configures a protocol server.
type Config struct {
	// Dispatcher executes tool invocations. Required.
	Dispatcher *dispatch.Dispatcher

	// Router is the completer the dispatcher delivers async results to.
	// Optional; without it, async outcomes are acknowledged with their
	// correlation id instead of awaited.
	Router *Router

	// Name identifies the server implementation to clients.
	Name string

	// Version is the advertised implementation version.
	Version string

	// Logger receives server events. Optional.
	Logger Logger
}

// Validate checks that required fields are present.
func (c *Config) Validate() error {
	if c.Dispatcher == nil {
		return fmt.Errorf("%w: Dispatcher is required", ErrConfiguration)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Name == "" {
		c.Name = "hostlens"
	}
	if c.Version == "" {
		c.Version = "0.0.0"
	}
	if c.Logger == nil {
		c.Logger = nopLogger{}
	}
}

// Logger is an optional interface for observability.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: logging must be best-effort; Logf should not panic.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Logf(string, ...any) {}

// Server bridges one dispatcher onto the Model Context Protocol.
type Server struct {
	cfg    Config
	server *mcp.Server
}

// New creates a server advertising every tool registered on the
// dispatcher. Returns ErrConfiguration if required fields are missing.
func New(cfg Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	s := &Server{
		cfg: cfg,
		server: mcp.NewServer(&mcp.Implementation{
			Name:    cfg.Name,
			Version: cfg.Version,
		}, nil),
	}
	for _, spec := range cfg.Dispatcher.Specs() {
		s.server.AddTool(&mcp.Tool{
			Name:        spec.Name,
			Description: spec.Description,
			InputSchema: spec.Params.JSONSchema(),
		}, s.handler(spec))
		cfg.Logger.Logf("advertising tool %q", spec.Name)
	}
	return s, nil
}

// Run serves the protocol over stdio until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.cfg.Logger.Logf("serving %q over stdio", s.cfg.Name)
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// handler adapts one tool spec to a protocol tool handler.
func (s *Server) handler(spec dispatch.ToolSpec) func(context.Context, *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return s.call(ctx, spec, req.Params.Arguments)
	}
}

// call executes one tool request. Dispatch failures become error
// results, not protocol faults: the calling agent reasons over text
// either way.
func (s *Server) call(ctx context.Context, spec dispatch.ToolSpec, raw json.RawMessage) (*mcp.CallToolResult, error) {
	args, err := decodeArgs(raw)
	if err != nil {
		return errorResult(dispatch.KindValidation, err.Error()), nil
	}

	inv := dispatch.Invocation{Tool: spec.Name, Args: args}

	if spec.Async && s.cfg.Router != nil {
		return s.dispatchAwaited(ctx, inv)
	}

	out, err := s.cfg.Dispatcher.Dispatch(ctx, inv)
	if err != nil {
		return dispatchErrorResult(err), nil
	}
	if out.Async {
		// No router to await on; hand the correlation id back.
		return textResult("accepted: " + out.CorrelationID), nil
	}
	return textResult(out.Text), nil
}

// dispatchAwaited runs an async tool and holds the protocol request open
// until its completion arrives. The correlation id is assigned here so
// the router registration exists before the background work can finish.
func (s *Server) dispatchAwaited(ctx context.Context, inv dispatch.Invocation) (*mcp.CallToolResult, error) {
	inv.CorrelationID = uuid.NewString()
	ch, cancel := s.cfg.Router.Expect(inv.CorrelationID)
	defer cancel()

	if _, err := s.cfg.Dispatcher.Dispatch(ctx, inv); err != nil {
		return dispatchErrorResult(err), nil
	}

	select {
	case c := <-ch:
		if c.Err != nil {
			return dispatchErrorResult(c.Err), nil
		}
		return textResult(c.Text), nil
	case <-ctx.Done():
		s.cfg.Logger.Logf("abandoned async invocation %s", inv.CorrelationID)
		return nil, ctx.Err()
	}
}

func decodeArgs(raw json.RawMessage) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}
	var args map[string]any
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("malformed arguments: %w", err)
	}
	return args, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(kind dispatch.ErrorKind, message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("%s: %s", kind, message)}},
		IsError: true,
	}
}

func dispatchErrorResult(err error) *mcp.CallToolResult {
	var de *dispatch.Error
	if errors.As(err, &de) {
		return errorResult(de.Kind, de.Message)
	}
	return errorResult(dispatch.KindRuntime, err.Error())
}
