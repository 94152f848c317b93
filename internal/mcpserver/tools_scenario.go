package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/danny-zent/mock-itr-scenario-mcp/internal/registry"
	"github.com/danny-zent/mock-itr-scenario-mcp/internal/scenario"
	"github.com/danny-zent/mock-itr-scenario-mcp/internal/template"
)

// handleValidate checks a scenario document and reports every violation.
func (h *handlers) handleValidate(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := objectArg(request.GetArguments(), "scenario")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if doc == nil {
		return mcp.NewToolResultError("required argument \"scenario\" not found"), nil
	}

	violations, err := scenario.ValidateDocument(doc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := scenario.Result{Errors: violations}
	return jsonResult(map[string]any{
		"valid":  result.Valid(),
		"errors": result.Messages(),
	})
}

// handleAssign stores a scenario for a user ERN, either inline or from a
// template.
func (h *handlers) handleAssign(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userERN, err := request.RequireString("user_ern")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc, err := objectArg(request.GetArguments(), "scenario")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if doc == nil {
		templateID := request.GetString("template_id", "")
		if templateID == "" {
			return mcp.NewToolResultError("either scenario or template_id is required"), nil
		}
		tpl, err := h.templates.Load(templateID)
		if errors.Is(err, template.ErrNotFound) {
			return mcp.NewToolResultError(h.templateNotFound(templateID)), nil
		}
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("load template: %v", err)), nil
		}
		doc = tpl.Raw
	}

	a, err := h.registry.Assign(ctx, userERN, doc)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("assign scenario: %v", err)), nil
	}
	h.log.Info("scenario assigned", "user_ern", userERN, "assignment_id", a.AssignmentID)

	return jsonResult(map[string]any{
		"success":       true,
		"user_ern":      a.UserERN,
		"assignment_id": a.AssignmentID,
		"assigned_at":   a.AssignedAt,
		"message":       fmt.Sprintf("시나리오가 %s에 할당되었습니다.", a.UserERN),
	})
}

// handleUnassign removes a user's assignment; absent assignments are not
// an error.
func (h *handlers) handleUnassign(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userERN, err := request.RequireString("user_ern")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := h.registry.Unassign(ctx, userERN); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("unassign scenario: %v", err)), nil
	}
	h.log.Info("scenario unassigned", "user_ern", userERN)

	return jsonResult(map[string]any{
		"success":  true,
		"user_ern": userERN,
		"message":  fmt.Sprintf("%s의 시나리오 할당이 해제되었습니다.", userERN),
	})
}

// handleGet returns the scenario currently assigned to a user.
func (h *handlers) handleGet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userERN, err := request.RequireString("user_ern")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	a, err := h.registry.Get(ctx, userERN)
	if errors.Is(err, registry.ErrNotAssigned) {
		return mcp.NewToolResultError(fmt.Sprintf("no scenario assigned to %s", userERN)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("get assignment: %v", err)), nil
	}

	return jsonResult(a)
}

// handleErrorTypesList lists the supported error types.
func (h *handlers) handleErrorTypesList(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]any{"error_types": errorTypeEntries()})
}

// errorTypeEntry is the listing view of one supported error type.
type errorTypeEntry struct {
	Type          scenario.ErrorType  `json:"type"`
	Message       string              `json:"message"`
	DefaultAction scenario.ActionType `json:"default_action"`
}

func errorTypeEntries() []errorTypeEntry {
	out := make([]errorTypeEntry, len(scenario.ErrorTypes))
	for i, e := range scenario.ErrorTypes {
		out[i] = errorTypeEntry{
			Type:          e,
			Message:       e.Message(),
			DefaultAction: e.DefaultAction(),
		}
	}
	return out
}
