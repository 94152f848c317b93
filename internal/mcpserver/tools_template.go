package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/danny-zent/mock-itr-scenario-mcp/internal/template"
)

// handleTemplateList lists templates, filtered by category.
func (h *handlers) handleTemplateList(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category := request.GetString("category", "all")

	all, err := h.templates.List()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list templates: %v", err)), nil
	}

	filtered := make([]template.Summary, 0, len(all))
	for _, sum := range all {
		if template.MatchesCategory(sum.TemplateID, category) {
			filtered = append(filtered, sum)
		}
	}

	return jsonResult(map[string]any{
		"templates": filtered,
		"count":     len(filtered),
	})
}

// handleTemplateLoad returns one template's full document.
func (h *handlers) handleTemplateLoad(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	templateID, err := request.RequireString("template_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	tpl, err := h.templates.Load(templateID)
	if errors.Is(err, template.ErrNotFound) {
		return mcp.NewToolResultError(h.templateNotFound(templateID)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load template: %v", err)), nil
	}

	return mcp.NewToolResultText(string(tpl.Raw)), nil
}

// templateNotFound builds a not-found message that names the available
// templates, so the caller can self-correct.
func (h *handlers) templateNotFound(templateID string) string {
	summaries, err := h.templates.List()
	if err != nil || len(summaries) == 0 {
		return fmt.Sprintf("template not found: %s", templateID)
	}
	ids := make([]string, len(summaries))
	for i, sum := range summaries {
		ids[i] = sum.TemplateID
	}
	return fmt.Sprintf("template not found: %s — available: %s", templateID, strings.Join(ids, ", "))
}
