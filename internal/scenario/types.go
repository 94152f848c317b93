// Package scenario models mock ITR loader scenarios: construction from
// templates and parameters, and schema validation of the resulting
// documents. Everything here is pure; persistence and template I/O live
// in their own packages.
package scenario

// UserInfo carries the mocked user's identity fields.
type UserInfo struct {
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Birthday string `json:"birthday,omitempty"`
}

// RefundResult holds the refund amounts a normal scenario resolves to.
// Item keys match the itrLoader template format, hence the Korean tags.
type RefundResult struct {
	TotalRefund           int64 `json:"total_refund"`
	StartupSMBRefund      int64 `json:"창중감_환급액,omitempty"`
	EmploymentRefund      int64 `json:"고용증대_환급액,omitempty"`
	SocialInsuranceRefund int64 `json:"사회보험료_환급액,omitempty"`
}

// ErrorInfo is the failure payload of an error scenario.
type ErrorInfo struct {
	ErrorType    ErrorType  `json:"error_type"`
	ErrorMessage string     `json:"error_message"`
	Action       ActionType `json:"action,omitempty"`
}

// ProgressStep is one entry of a progress sequence. Pct is a percentage
// in [0,100]; steps must be non-decreasing and the last one must be 100.
type ProgressStep struct {
	Label        string  `json:"label"`
	Pct          int     `json:"pct"`
	DelaySeconds float64 `json:"delay_seconds,omitempty"`
}

// ProgressConfig drives progress-event emission for a progress scenario.
type ProgressConfig struct {
	Enabled   bool           `json:"enabled"`
	QueueName string         `json:"queue_name,omitempty"`
	Steps     []ProgressStep `json:"steps"`
}

// ScenarioConfig is the complete document describing one mocked refund
// outcome. At most one of Error and Progress may be set; a scenario with
// neither is a plain normal-refund scenario.
type ScenarioConfig struct {
	ScenarioName string          `json:"scenario_name"`
	Description  string          `json:"description,omitempty"`
	BizType      BizType         `json:"biz_type"`
	UserInfo     *UserInfo       `json:"user_info,omitempty"`
	RefundResult *RefundResult   `json:"refund_result,omitempty"`
	Error        *ErrorInfo      `json:"error,omitempty"`
	Progress     *ProgressConfig `json:"progress,omitempty"`
}

// Clone returns a deep copy of c. Builders copy their template base so
// the loaded template stays immutable.
func (c *ScenarioConfig) Clone() *ScenarioConfig {
	if c == nil {
		return nil
	}
	out := *c
	if c.UserInfo != nil {
		ui := *c.UserInfo
		out.UserInfo = &ui
	}
	if c.RefundResult != nil {
		rr := *c.RefundResult
		out.RefundResult = &rr
	}
	if c.Error != nil {
		e := *c.Error
		out.Error = &e
	}
	if c.Progress != nil {
		p := *c.Progress
		p.Steps = make([]ProgressStep, len(c.Progress.Steps))
		copy(p.Steps, c.Progress.Steps)
		out.Progress = &p
	}
	return &out
}
