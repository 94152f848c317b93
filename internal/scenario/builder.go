package scenario

import (
	"fmt"
)

// DefaultUserName is used when neither the parameters nor the template
// name the mocked user.
const DefaultUserName = "테스트사용자"

// DefaultQueueName is the progress queue written when the caller does
// not override it.
const DefaultQueueName = "refund-search.fifo"

// NormalParams are the inputs of BuildNormal. RefundAmount and BizType
// are required; the item amounts overlay the template base only when set.
type NormalParams struct {
	UserName     string
	RefundAmount int64
	BizType      BizType

	StartupSMBRefund      *int64
	EmploymentRefund      *int64
	SocialInsuranceRefund *int64
}

// BuildNormal produces a normal-refund scenario. When base is non-nil it
// is used as the starting document, typically a loaded template;
// parameters always win over base values. The base itself is not mutated.
func BuildNormal(p NormalParams, base *ScenarioConfig) (*ScenarioConfig, error) {
	if p.RefundAmount < 0 {
		return nil, fmt.Errorf("refund_amount must be non-negative, got %d", p.RefundAmount)
	}
	if !p.BizType.Valid() {
		return nil, fmt.Errorf("unknown biz_type %q, valid types: %v", p.BizType, BizTypes)
	}

	cfg := &ScenarioConfig{}
	if base != nil {
		cfg = base.Clone()
	}

	user := p.UserName
	if user == "" {
		if cfg.UserInfo != nil && cfg.UserInfo.Name != "" {
			user = cfg.UserInfo.Name
		} else {
			user = DefaultUserName
		}
	}
	if cfg.UserInfo == nil {
		cfg.UserInfo = &UserInfo{}
	}
	cfg.UserInfo.Name = user

	cfg.BizType = p.BizType
	if cfg.RefundResult == nil {
		cfg.RefundResult = &RefundResult{}
	}
	cfg.RefundResult.TotalRefund = p.RefundAmount
	if p.StartupSMBRefund != nil {
		cfg.RefundResult.StartupSMBRefund = *p.StartupSMBRefund
	}
	if p.EmploymentRefund != nil {
		cfg.RefundResult.EmploymentRefund = *p.EmploymentRefund
	}
	if p.SocialInsuranceRefund != nil {
		cfg.RefundResult.SocialInsuranceRefund = *p.SocialInsuranceRefund
	}
	// Item amounts must be non-negative after the merge, whether they
	// came from the parameters or the template base.
	items := []struct {
		name  string
		value int64
	}{
		{"창중감_환급액", cfg.RefundResult.StartupSMBRefund},
		{"고용증대_환급액", cfg.RefundResult.EmploymentRefund},
		{"사회보험료_환급액", cfg.RefundResult.SocialInsuranceRefund},
	}
	for _, it := range items {
		if it.value < 0 {
			return nil, fmt.Errorf("%s must be non-negative, got %d", it.name, it.value)
		}
	}

	// Normal scenarios carry the refund result as their only payload.
	cfg.Error = nil
	cfg.Progress = nil

	cfg.ScenarioName = fmt.Sprintf("정상환급_%s_%d원", user, p.RefundAmount)
	cfg.Description = fmt.Sprintf("%s의 정상 환급 시나리오 (총 %d원)", user, p.RefundAmount)

	return cfg, nil
}

// ErrorParams are the inputs of BuildError. Type is required and must be
// a registered error type; Message and Action default to the canonical
// message and default action of that type.
type ErrorParams struct {
	UserName string
	Type     ErrorType
	Message  string
	Action   ActionType
}

// BuildError produces an error scenario for a registered error type.
func BuildError(p ErrorParams) (*ScenarioConfig, error) {
	if !p.Type.Valid() {
		return nil, fmt.Errorf("%w: %q, supported types: %v", ErrUnsupportedErrorType, p.Type, ErrorTypes)
	}

	msg := p.Message
	if msg == "" {
		msg = p.Type.Message()
	}
	action := p.Action
	if action == "" {
		action = p.Type.DefaultAction()
	}
	if !action.Valid() {
		return nil, fmt.Errorf("unknown action %q", action)
	}

	user := p.UserName
	if user == "" {
		user = DefaultUserName
	}

	return &ScenarioConfig{
		ScenarioName: fmt.Sprintf("에러_%s_%s", p.Type, user),
		Description:  fmt.Sprintf("%s의 %s 에러 시나리오", user, p.Type),
		BizType:      BizIndividual,
		UserInfo:     &UserInfo{Name: user},
		Error: &ErrorInfo{
			ErrorType:    p.Type,
			ErrorMessage: msg,
			Action:       action,
		},
	}, nil
}

// ProgressParams are the inputs of BuildProgress. An empty Steps slice
// selects DefaultProgressSteps.
type ProgressParams struct {
	UserName     string
	RefundAmount int64
	QueueName    string
	Steps        []ProgressStep
}

// DefaultProgressSteps returns the canonical four-step loader progression.
func DefaultProgressSteps() []ProgressStep {
	return []ProgressStep{
		{Label: "홈택스 로그인", Pct: 10, DelaySeconds: 0.5},
		{Label: "신고내역 조회", Pct: 30, DelaySeconds: 1.0},
		{Label: "환급액 계산", Pct: 60, DelaySeconds: 1.5},
		{Label: "결과 생성", Pct: 100, DelaySeconds: 0.5},
	}
}

// BuildProgress produces a progress scenario. Step percentages must be
// within [0,100], non-decreasing, and end at exactly 100.
func BuildProgress(p ProgressParams) (*ScenarioConfig, error) {
	if p.RefundAmount < 0 {
		return nil, fmt.Errorf("refund_amount must be non-negative, got %d", p.RefundAmount)
	}

	steps := p.Steps
	if len(steps) == 0 {
		steps = DefaultProgressSteps()
	}
	if err := checkSteps(steps); err != nil {
		return nil, err
	}

	queue := p.QueueName
	if queue == "" {
		queue = DefaultQueueName
	}
	user := p.UserName
	if user == "" {
		user = DefaultUserName
	}

	return &ScenarioConfig{
		ScenarioName: fmt.Sprintf("진행률테스트_%s", user),
		Description:  fmt.Sprintf("%s의 진행률 전송 테스트 시나리오", user),
		BizType:      BizIndividual,
		UserInfo:     &UserInfo{Name: user},
		RefundResult: &RefundResult{TotalRefund: p.RefundAmount},
		Progress: &ProgressConfig{
			Enabled:   true,
			QueueName: queue,
			Steps:     steps,
		},
	}, nil
}

// checkSteps enforces the progress sequence invariants.
func checkSteps(steps []ProgressStep) error {
	prev := -1
	for i, s := range steps {
		if s.Label == "" {
			return &InvalidSequenceError{Index: i, Reason: "label must not be empty"}
		}
		if s.Pct < 0 || s.Pct > 100 {
			return &InvalidSequenceError{Index: i, Reason: fmt.Sprintf("pct %d out of range [0,100]", s.Pct)}
		}
		if s.Pct < prev {
			return &InvalidSequenceError{Index: i, Reason: fmt.Sprintf("pct %d decreases from %d", s.Pct, prev)}
		}
		if s.DelaySeconds < 0 {
			return &InvalidSequenceError{Index: i, Reason: "delay_seconds must not be negative"}
		}
		prev = s.Pct
	}
	if prev != 100 {
		return &InvalidSequenceError{Index: len(steps) - 1, Reason: fmt.Sprintf("final step must be 100, got %d", prev)}
	}
	return nil
}
