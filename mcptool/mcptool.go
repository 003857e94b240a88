// Package mcptool exposes the tools of a remote MCP server as bridge
// tools, so a host can hand them to gembridge.Client alongside its own.
package mcptool

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/siscanu/gembridge"
)

// Source is a connected MCP server whose tools can be listed and invoked.
type Source struct {
	endpoint string
	session  *mcp.ClientSession
}

// Connect dials an MCP server over Streamable HTTP.
func Connect(ctx context.Context, endpoint string) (*Source, error) {
	client := mcp.NewClient(&mcp.Implementation{
		Name:    "gembridge-mcp-client",
		Version: "1.0.0",
	}, nil)

	transport := &mcp.StreamableClientTransport{
		Endpoint: endpoint,
		HTTPClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}

	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", endpoint, err)
	}

	slog.Info("mcp tool source connected", slog.String("endpoint", endpoint))

	return &Source{endpoint: endpoint, session: session}, nil
}

// Tools lists the server's tools wrapped as bridge tools. Each wrapper's
// Execute invokes the remote tool through the shared session.
func (s *Source) Tools(ctx context.Context) ([]gembridge.Tool, error) {
	result, err := s.session.ListTools(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list tools from %s: %w", s.endpoint, err)
	}

	tools := make([]gembridge.Tool, 0, len(result.Tools))
	for _, t := range result.Tools {
		tools = append(tools, &remoteTool{
			source:      s,
			name:        t.Name,
			description: t.Description,
			parameters:  schemaToMap(t.InputSchema),
		})
	}
	return tools, nil
}

// Close tears down the server session.
func (s *Source) Close() error {
	return s.session.Close()
}

// call invokes a tool on the remote server and joins its text content.
func (s *Source) call(ctx context.Context, name string, args map[string]any) (string, error) {
	result, err := s.session.CallTool(ctx, &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		return "", fmt.Errorf("call %s on %s: %w", name, s.endpoint, err)
	}

	var textParts []string
	for _, content := range result.Content {
		if text, ok := content.(*mcp.TextContent); ok {
			textParts = append(textParts, text.Text)
		}
	}
	if len(textParts) == 0 {
		// No text content: return the raw result for the model to read.
		data, _ := json.MarshalIndent(result, "", "  ")
		return string(data), nil
	}
	return strings.Join(textParts, "\n"), nil
}

// remoteTool adapts one remote MCP tool to the bridge Tool interface.
type remoteTool struct {
	source      *Source
	name        string
	description string
	parameters  map[string]any
}

func (t *remoteTool) Name() string               { return t.name }
func (t *remoteTool) Description() string        { return t.description }
func (t *remoteTool) Parameters() map[string]any { return t.parameters }

func (t *remoteTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	return t.source.call(ctx, t.name, args)
}

// schemaToMap round-trips an MCP input schema through JSON into the
// map form the bridge's schema translator consumes. A schema that fails
// to round-trip degrades to an empty object rather than dropping the tool.
func schemaToMap(schema any) map[string]any {
	if schema == nil {
		return map[string]any{"type": "object"}
	}
	data, err := json.Marshal(schema)
	if err != nil {
		return map[string]any{"type": "object"}
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil || len(out) == 0 {
		return map[string]any{"type": "object"}
	}
	return out
}
