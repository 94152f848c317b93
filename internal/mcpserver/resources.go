package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/danny-zent/mock-itr-scenario-mcp/internal/scenario"
)

// handleTemplatesResource serves the template listing as JSON.
func (h *handlers) handleTemplatesResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	summaries, err := h.templates.List()
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	data, err := json.MarshalIndent(map[string]any{"templates": summaries}, "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uriTemplates,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// handleErrorTypesResource serves the error type registry as JSON.
func (h *handlers) handleErrorTypesResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(map[string]any{"error_types": errorTypeEntries()}, "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uriErrorTypes,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// handleSchemaResource serves the scenario JSON Schema document.
func (h *handlers) handleSchemaResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uriSchema,
			MIMEType: "application/json",
			Text:     scenario.SchemaJSON(),
		},
	}, nil
}
