package gembridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/siscanu/gembridge/gemini"
)

// Tool is a host-side callable the model may invoke. Names must be unique
// within the tool set passed to one completion call.
type Tool interface {
	Name() string
	Description() string
	Parameters() map[string]any // JSON Schema object
	Execute(ctx context.Context, args map[string]any) (any, error)
}

// FuncTool adapts a plain function into a Tool.
type FuncTool struct {
	name        string
	description string
	parameters  map[string]any
	fn          func(ctx context.Context, args map[string]any) (any, error)
}

// NewFuncTool builds a Tool from a name, description, parameter schema and
// executor function.
func NewFuncTool(name, description string, parameters map[string]any, fn func(ctx context.Context, args map[string]any) (any, error)) *FuncTool {
	return &FuncTool{name: name, description: description, parameters: parameters, fn: fn}
}

func (t *FuncTool) Name() string               { return t.name }
func (t *FuncTool) Description() string        { return t.description }
func (t *FuncTool) Parameters() map[string]any { return t.parameters }

func (t *FuncTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	return t.fn(ctx, args)
}

// findTool resolves a model-reported function name against the per-call
// tool set: first exact, case-sensitive match wins. No fuzzy matching, no
// default tool, no process-wide registry.
func findTool(tools []Tool, name string) Tool {
	for _, t := range tools {
		if t.Name() == name {
			return t
		}
	}
	return nil
}

// declarationsFor derives Gemini function declarations from the tool set,
// one per tool, name and description verbatim. Recomputed on every call:
// tool sets may differ between calls, so nothing is cached.
func declarationsFor(tools []Tool) []gemini.Tool {
	if len(tools) == 0 {
		return nil
	}
	decls := make([]gemini.FunctionDeclaration, 0, len(tools))
	for _, t := range tools {
		decls = append(decls, gemini.FunctionDeclaration{
			Name:        t.Name(),
			Description: t.Description(),
			Parameters:  gemini.TranslateSchema(t.Parameters()),
		})
	}
	return []gemini.Tool{{FunctionDeclarations: decls}}
}

// stringifyResult renders an arbitrary executor result for re-insertion
// into the conversation. Strings pass through; everything else is JSON
// encoded, falling back to fmt formatting for unencodable values.
func stringifyResult(v any) string {
	switch r := v.(type) {
	case nil:
		return ""
	case string:
		return r
	case fmt.Stringer:
		return r.String()
	default:
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Sprintf("%v", r)
		}
		return string(data)
	}
}
