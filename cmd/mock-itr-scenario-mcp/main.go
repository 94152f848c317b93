// mock-itr-scenario-mcp is an MCP stdio server for managing mock ITR
// loader scenarios: template browsing, scenario construction and
// validation, and per-user scenario assignment.
package main

import (
	"context"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/danny-zent/mock-itr-scenario-mcp/internal/logging"
	"github.com/danny-zent/mock-itr-scenario-mcp/internal/mcpserver"
	"github.com/danny-zent/mock-itr-scenario-mcp/internal/registry"
	"github.com/danny-zent/mock-itr-scenario-mcp/internal/template"
)

const (
	serverName    = "mock-itr-scenario"
	serverVersion = "0.1.0"
)

// Configuration is environment-only:
//
//	MOCK_ITR_TEMPLATES_DIR  template directory (default ./templates)
//	DATABASE_URL            Postgres URL for the scenario store; empty
//	                        selects the in-memory store
//	SCENARIO_TABLE_NAME     assignment table (default scenario_assignments)
//	LOG_LEVEL, LOG_FORMAT   debug|info|warn|error, text|json
func main() {
	log := logging.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), os.Stderr)
	ctx := context.Background()

	templatesDir := os.Getenv("MOCK_ITR_TEMPLATES_DIR")
	if templatesDir == "" {
		templatesDir = "./templates"
	}
	templates := template.NewStore(templatesDir)

	var store registry.Store
	if url := os.Getenv("DATABASE_URL"); url != "" {
		pg, err := registry.NewPostgresStore(ctx, url, os.Getenv("SCENARIO_TABLE_NAME"))
		if err != nil {
			log.Error("scenario store unavailable", "error", err)
			os.Exit(1)
		}
		defer pg.Close()
		store = pg
		log.Info("using postgres scenario store")
	} else {
		store = registry.NewMemoryStore()
		log.Warn("DATABASE_URL not set — assignments are held in memory and lost on exit")
	}

	s := mcpserver.New(serverName, serverVersion, templates, registry.New(store), log)

	log.Info("serving MCP over stdio", "templates_dir", templatesDir)
	if err := server.ServeStdio(s); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
