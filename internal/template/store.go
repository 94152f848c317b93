// Package template loads scenario templates from a directory of
// TPL_*.json documents. The directory is the source of truth: listing
// re-reads it on every call, so dropping a file in or out is picked up
// without a restart.
package template

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/danny-zent/mock-itr-scenario-mcp/internal/scenario"
)

// ErrNotFound is returned by Load when no template file matches the
// requested identifier.
var ErrNotFound = errors.New("template not found")

// ParseError reports a template file whose content is not well-formed
// JSON. Load-time parse failures are deliberately distinct from
// build-time validation failures.
type ParseError struct {
	ID   string
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse template %s (%s): %v", e.ID, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Template is one loaded template document. Raw preserves the file bytes
// so fields outside the typed config survive a verbatim assignment.
type Template struct {
	ID     string
	Config scenario.ScenarioConfig
	Raw    json.RawMessage
}

// Summary is the listing view of a template.
type Summary struct {
	TemplateID  string           `json:"template_id"`
	Description string           `json:"description"`
	TotalRefund int64            `json:"total_refund"`
	BizType     scenario.BizType `json:"biz_type"`
}

// Store reads templates from a single directory.
type Store struct {
	dir string
}

// NewStore creates a Store over dir. The directory is not touched until
// the first List or Load.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory the store reads from.
func (s *Store) Dir() string { return s.dir }

// List returns a summary for every TPL_*.json file in the directory,
// sorted by template ID. Files that fail to parse are skipped here;
// Load reports them as a ParseError.
func (s *Store) List() ([]Summary, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read templates dir %s: %w", s.dir, err)
	}

	var out []Summary
	for _, entry := range entries {
		if entry.IsDir() || !isTemplateFile(entry.Name()) {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".json")
		tpl, err := s.Load(id)
		if err != nil {
			continue
		}
		sum := Summary{
			TemplateID:  id,
			Description: tpl.Config.Description,
			BizType:     tpl.Config.BizType,
		}
		if tpl.Config.RefundResult != nil {
			sum.TotalRefund = tpl.Config.RefundResult.TotalRefund
		}
		out = append(out, sum)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TemplateID < out[j].TemplateID })
	return out, nil
}

// Load reads and parses the template with the given ID. Returns
// ErrNotFound when no file matches and a *ParseError when the file is
// not valid JSON.
func (s *Store) Load(id string) (*Template, error) {
	if !strings.HasPrefix(id, "TPL_") || strings.ContainsAny(id, `/\`) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	path := filepath.Join(s.dir, id+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("read template %s: %w", id, err)
	}

	var cfg scenario.ScenarioConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{ID: id, Path: path, Err: err}
	}

	return &Template{ID: id, Config: cfg, Raw: json.RawMessage(data)}, nil
}

// isTemplateFile reports whether name follows the TPL_*.json convention.
func isTemplateFile(name string) bool {
	return strings.HasPrefix(name, "TPL_") && strings.HasSuffix(name, ".json")
}

// MatchesCategory reports whether a template ID belongs to a listing
// category. Known categories: "all", "normal", "error", "corp".
func MatchesCategory(id, category string) bool {
	switch category {
	case "", "all":
		return true
	case "normal":
		return !strings.Contains(id, "ERR")
	case "error":
		return strings.Contains(id, "ERR")
	case "corp":
		return strings.Contains(id, "CORP")
	}
	return false
}
