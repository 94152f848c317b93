// Package mcpserver wires the scenario tools and resources into an MCP
// server. No domain logic lives here: handlers translate tool calls into
// template, scenario, and registry operations and render the results.
package mcpserver

import (
	_ "embed"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/danny-zent/mock-itr-scenario-mcp/internal/registry"
	"github.com/danny-zent/mock-itr-scenario-mcp/internal/scenario"
	"github.com/danny-zent/mock-itr-scenario-mcp/internal/template"
)

//go:embed instructions.md
var instructions string

// Resource URIs.
const (
	uriTemplates  = "scenario://templates"
	uriErrorTypes = "scenario://error-types"
	uriSchema     = "scenario://schema"
)

// handlers carries the dependencies every tool handler needs.
type handlers struct {
	templates *template.Store
	registry  *registry.Registry
	log       *slog.Logger
}

// New builds the MCP server with all scenario tools and resources
// registered.
func New(name, version string, templates *template.Store, reg *registry.Registry, log *slog.Logger) *server.MCPServer {
	h := &handlers{templates: templates, registry: reg, log: log}

	s := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	// --- Tools ---

	s.AddTool(
		mcp.NewTool("template_list",
			mcp.WithDescription("List available scenario templates, optionally filtered by category."),
			mcp.WithString("category",
				mcp.Description("Template category filter"),
				mcp.Enum("normal", "error", "corp", "all"),
				mcp.DefaultString("all"),
			),
		),
		h.handleTemplateList,
	)

	s.AddTool(
		mcp.NewTool("template_load",
			mcp.WithDescription("Load one template and return its full document."),
			mcp.WithString("template_id",
				mcp.Required(),
				mcp.Description("Template ID, e.g. TPL_NORMAL_BIZ_HIGH"),
			),
		),
		h.handleTemplateLoad,
	)

	s.AddTool(
		mcp.NewTool("scenario_build_normal",
			mcp.WithDescription("Build a normal refund scenario. Parameters always take precedence over the optional template base."),
			mcp.WithNumber("refund_amount",
				mcp.Required(),
				mcp.Description("Total refund amount in KRW, must be >= 0"),
			),
			mcp.WithString("biz_type",
				mcp.Required(),
				mcp.Description("Business type of the mocked taxpayer"),
				mcp.Enum("individual_biz", "non_biz", "corp"),
			),
			mcp.WithString("template_id",
				mcp.Description("Optional template to merge as the base document"),
			),
			mcp.WithString("user_name",
				mcp.Description("Mocked user name"),
			),
			mcp.WithNumber("창중감_환급액",
				mcp.Description("Startup SMB tax reduction refund amount"),
			),
			mcp.WithNumber("고용증대_환급액",
				mcp.Description("Employment increase refund amount"),
			),
			mcp.WithNumber("사회보험료_환급액",
				mcp.Description("Social insurance refund amount"),
			),
		),
		h.handleBuildNormal,
	)

	s.AddTool(
		mcp.NewTool("scenario_build_error",
			mcp.WithDescription("Build an error scenario for one of the supported error types."),
			mcp.WithString("error_type",
				mcp.Required(),
				mcp.Description("Error type to mock"),
				mcp.Enum(errorTypeStrings()...),
			),
			mcp.WithString("error_message",
				mcp.Description("Override for the canonical error message"),
			),
			mcp.WithString("action",
				mcp.Description("Loader action the error fires on; defaults per error type"),
				mcp.Enum("cert_request", "cert_response", "check", "load"),
			),
			mcp.WithString("user_name",
				mcp.Description("Mocked user name"),
			),
		),
		h.handleBuildError,
	)

	s.AddTool(
		mcp.NewTool("scenario_build_progress",
			mcp.WithDescription("Build a scenario that emits progress events. Step percentages must be non-decreasing and end at 100."),
			mcp.WithNumber("refund_amount",
				mcp.Description("Total refund amount in KRW, must be >= 0"),
			),
			mcp.WithArray("steps",
				mcp.Description("Progress steps; defaults to the canonical four-step sequence"),
				mcp.Items(map[string]any{
					"type":     "object",
					"required": []string{"label", "pct"},
					"properties": map[string]any{
						"label":         map[string]any{"type": "string"},
						"pct":           map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
						"delay_seconds": map[string]any{"type": "number", "minimum": 0},
					},
				}),
			),
			mcp.WithString("queue_name",
				mcp.Description("Progress queue name"),
				mcp.DefaultString(scenario.DefaultQueueName),
			),
			mcp.WithString("user_name",
				mcp.Description("Mocked user name"),
			),
		),
		h.handleBuildProgress,
	)

	s.AddTool(
		mcp.NewTool("scenario_validate",
			mcp.WithDescription("Validate a scenario document against the scenario schema. Returns every violation found, not just the first."),
			mcp.WithObject("scenario",
				mcp.Required(),
				mcp.Description("Scenario document to validate"),
			),
		),
		h.handleValidate,
	)

	s.AddTool(
		mcp.NewTool("scenario_assign",
			mcp.WithDescription("Assign a scenario to a user ERN. Pass either an inline scenario or a template_id. Reassigning overwrites the previous scenario."),
			mcp.WithString("user_ern",
				mcp.Required(),
				mcp.Description("User ERN the scenario is assigned to"),
			),
			mcp.WithObject("scenario",
				mcp.Description("Scenario document to assign"),
			),
			mcp.WithString("template_id",
				mcp.Description("Template to assign verbatim when no scenario is given"),
			),
		),
		h.handleAssign,
	)

	s.AddTool(
		mcp.NewTool("scenario_unassign",
			mcp.WithDescription("Remove the scenario assignment for a user ERN. Succeeds even when nothing was assigned."),
			mcp.WithString("user_ern",
				mcp.Required(),
				mcp.Description("User ERN to clear"),
			),
		),
		h.handleUnassign,
	)

	s.AddTool(
		mcp.NewTool("scenario_get",
			mcp.WithDescription("Return the scenario currently assigned to a user ERN."),
			mcp.WithString("user_ern",
				mcp.Required(),
				mcp.Description("User ERN to look up"),
			),
		),
		h.handleGet,
	)

	s.AddTool(
		mcp.NewTool("error_types_list",
			mcp.WithDescription("List the supported error types with their canonical messages and default actions."),
		),
		h.handleErrorTypesList,
	)

	// --- Resources ---

	s.AddResource(
		mcp.NewResource(
			uriTemplates,
			"Templates",
			mcp.WithResourceDescription("Available scenario templates"),
			mcp.WithMIMEType("application/json"),
		),
		h.handleTemplatesResource,
	)

	s.AddResource(
		mcp.NewResource(
			uriErrorTypes,
			"Error Types",
			mcp.WithResourceDescription("Supported error types with canonical messages"),
			mcp.WithMIMEType("application/json"),
		),
		h.handleErrorTypesResource,
	)

	s.AddResource(
		mcp.NewResource(
			uriSchema,
			"Scenario Schema",
			mcp.WithResourceDescription("JSON Schema applied by scenario_validate"),
			mcp.WithMIMEType("application/json"),
		),
		h.handleSchemaResource,
	)

	return s
}

func errorTypeStrings() []string {
	out := make([]string, len(scenario.ErrorTypes))
	for i, e := range scenario.ErrorTypes {
		out[i] = string(e)
	}
	return out
}
