package mcpserver

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// jsonResult renders v as an indented JSON tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// int64Arg reads an optional integer argument. JSON numbers arrive as
// float64; anything non-integral is rejected.
func int64Arg(args map[string]any, key string) (value int64, ok bool, err error) {
	raw, present := args[key]
	if !present || raw == nil {
		return 0, false, nil
	}
	switch n := raw.(type) {
	case float64:
		if n != float64(int64(n)) {
			return 0, false, fmt.Errorf("%s must be an integer, got %v", key, n)
		}
		return int64(n), true, nil
	case int:
		return int64(n), true, nil
	case int64:
		return n, true, nil
	case json.Number:
		v, convErr := n.Int64()
		if convErr != nil {
			return 0, false, fmt.Errorf("%s must be an integer, got %v", key, n)
		}
		return v, true, nil
	default:
		return 0, false, fmt.Errorf("%s must be an integer, got %T", key, raw)
	}
}

// requireInt64Arg reads a required integer argument.
func requireInt64Arg(args map[string]any, key string) (int64, error) {
	v, ok, err := int64Arg(args, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("required argument %q not found", key)
	}
	return v, nil
}

// objectArg reads an optional object argument and returns it re-encoded
// as JSON.
func objectArg(args map[string]any, key string) (json.RawMessage, error) {
	raw, present := args[key]
	if !present || raw == nil {
		return nil, nil
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s must be an object, got %T", key, raw)
	}
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", key, err)
	}
	return data, nil
}
