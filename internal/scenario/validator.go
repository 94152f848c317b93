package scenario

import (
	"fmt"
	"strings"
)

// ValidationError describes one schema violation in a scenario document.
type ValidationError struct {
	Field   string // JSON path of the offending field, e.g. "refund_result.total_refund"
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Result collects the validation errors of one document. A nil or empty
// list means the document is valid.
type Result struct {
	Errors []ValidationError
}

// Valid reports whether no errors were collected.
func (r *Result) Valid() bool { return len(r.Errors) == 0 }

// Add appends one error.
func (r *Result) Add(field, message string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message})
}

// Messages returns the collected errors as strings, in order.
func (r *Result) Messages() []string {
	out := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		out[i] = e.Error()
	}
	return out
}

func (r *Result) String() string {
	if r.Valid() {
		return "valid"
	}
	return strings.Join(r.Messages(), "; ")
}

// Validate checks cfg against the scenario rules and returns every
// violation found, in check order. It never fails: callers get the full
// list of problems at once instead of the first one. The input is not
// mutated and no I/O happens here.
func Validate(cfg *ScenarioConfig) []ValidationError {
	var r Result
	if cfg == nil {
		r.Add("", "scenario must not be null")
		return r.Errors
	}

	if cfg.ScenarioName == "" {
		r.Add("scenario_name", "required")
	}
	if cfg.BizType == "" {
		r.Add("biz_type", "required")
	} else if !cfg.BizType.Valid() {
		r.Add("biz_type", fmt.Sprintf("unknown value %q, valid types: %v", cfg.BizType, BizTypes))
	}

	if rr := cfg.RefundResult; rr != nil {
		if rr.TotalRefund < 0 {
			r.Add("refund_result.total_refund", fmt.Sprintf("must be non-negative, got %d", rr.TotalRefund))
		}
		items := []struct {
			field string
			value int64
		}{
			{"refund_result.창중감_환급액", rr.StartupSMBRefund},
			{"refund_result.고용증대_환급액", rr.EmploymentRefund},
			{"refund_result.사회보험료_환급액", rr.SocialInsuranceRefund},
		}
		for _, it := range items {
			if it.value < 0 {
				r.Add(it.field, fmt.Sprintf("must be non-negative, got %d", it.value))
			}
		}
	}

	if e := cfg.Error; e != nil {
		if !e.ErrorType.Valid() {
			r.Add("error.error_type", fmt.Sprintf("unknown value %q, supported types: %v", e.ErrorType, ErrorTypes))
		}
		if e.ErrorMessage == "" {
			r.Add("error.error_message", "must not be empty")
		}
		if e.Action != "" && !e.Action.Valid() {
			r.Add("error.action", fmt.Sprintf("unknown value %q", e.Action))
		}
	}

	if p := cfg.Progress; p != nil {
		if len(p.Steps) == 0 {
			r.Add("progress.steps", "must not be empty")
		} else if err := checkSteps(p.Steps); err != nil {
			seqErr, ok := err.(*InvalidSequenceError)
			if ok && seqErr.Index >= 0 {
				r.Add(fmt.Sprintf("progress.steps[%d]", seqErr.Index), seqErr.Reason)
			} else {
				r.Add("progress.steps", err.Error())
			}
		}
	}

	// A scenario resolves to exactly one outcome.
	if cfg.Error != nil && cfg.Progress != nil {
		r.Add("", "scenario cannot carry both an error block and a progress sequence")
	}

	return r.Errors
}
