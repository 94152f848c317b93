package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/danny-zent/mock-itr-scenario-mcp/internal/scenario"
	"github.com/danny-zent/mock-itr-scenario-mcp/internal/template"
)

// handleBuildNormal builds a normal refund scenario, optionally merged
// over a template base.
func (h *handlers) handleBuildNormal(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	refundAmount, err := requireInt64Arg(args, "refund_amount")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	bizType, err := request.RequireString("biz_type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	params := scenario.NormalParams{
		UserName:     request.GetString("user_name", ""),
		RefundAmount: refundAmount,
		BizType:      scenario.BizType(bizType),
	}
	for key, dst := range map[string]**int64{
		"창중감_환급액":   &params.StartupSMBRefund,
		"고용증대_환급액":  &params.EmploymentRefund,
		"사회보험료_환급액": &params.SocialInsuranceRefund,
	} {
		v, ok, err := int64Arg(args, key)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if ok {
			*dst = &v
		}
	}

	var base *scenario.ScenarioConfig
	if templateID := request.GetString("template_id", ""); templateID != "" {
		tpl, err := h.templates.Load(templateID)
		if errors.Is(err, template.ErrNotFound) {
			return mcp.NewToolResultError(h.templateNotFound(templateID)), nil
		}
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("load template: %v", err)), nil
		}
		base = &tpl.Config
	}

	cfg, err := scenario.BuildNormal(params, base)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(cfg)
}

// handleBuildError builds an error scenario for a registered error type.
func (h *handlers) handleBuildError(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	errorType, err := request.RequireString("error_type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cfg, err := scenario.BuildError(scenario.ErrorParams{
		UserName: request.GetString("user_name", ""),
		Type:     scenario.ErrorType(errorType),
		Message:  request.GetString("error_message", ""),
		Action:   scenario.ActionType(request.GetString("action", "")),
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(cfg)
}

// handleBuildProgress builds a progress scenario.
func (h *handlers) handleBuildProgress(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	refundAmount, _, err := int64Arg(args, "refund_amount")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	steps, err := stepsArg(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cfg, err := scenario.BuildProgress(scenario.ProgressParams{
		UserName:     request.GetString("user_name", ""),
		RefundAmount: refundAmount,
		QueueName:    request.GetString("queue_name", ""),
		Steps:        steps,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(cfg)
}

// stepsArg decodes the optional steps array.
func stepsArg(args map[string]any) ([]scenario.ProgressStep, error) {
	raw, present := args["steps"]
	if !present || raw == nil {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("steps must be an array, got %T", raw)
	}

	steps := make([]scenario.ProgressStep, 0, len(list))
	for i, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("steps[%d] must be an object, got %T", i, item)
		}
		var step scenario.ProgressStep
		if label, ok := obj["label"].(string); ok {
			step.Label = label
		}
		pct, ok, err := int64Arg(obj, "pct")
		if err != nil {
			return nil, fmt.Errorf("steps[%d]: %w", i, err)
		}
		if !ok {
			return nil, fmt.Errorf("steps[%d]: pct is required", i)
		}
		step.Pct = int(pct)
		if delay, ok := obj["delay_seconds"].(float64); ok {
			step.DelaySeconds = delay
		}
		steps = append(steps, step)
	}
	return steps, nil
}
