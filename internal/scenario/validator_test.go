package scenario

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validScenario() *ScenarioConfig {
	return &ScenarioConfig{
		ScenarioName: "정상환급_테스트_1000000원",
		BizType:      BizIndividual,
		UserInfo:     &UserInfo{Name: "테스트"},
		RefundResult: &RefundResult{TotalRefund: 1000000},
	}
}

func TestValidate_Valid(t *testing.T) {
	assert.Empty(t, Validate(validScenario()))
}

func TestValidate_MissingBizType(t *testing.T) {
	cfg := validScenario()
	cfg.BizType = ""

	errs := Validate(cfg)
	require.Len(t, errs, 1)
	assert.Equal(t, "biz_type", errs[0].Field)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := &ScenarioConfig{
		BizType:      "llc",
		RefundResult: &RefundResult{TotalRefund: -5},
		Error:        &ErrorInfo{ErrorType: "whatever"},
	}

	errs := Validate(cfg)

	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}
	assert.Contains(t, fields, "scenario_name")
	assert.Contains(t, fields, "biz_type")
	assert.Contains(t, fields, "refund_result.total_refund")
	assert.Contains(t, fields, "error.error_type")
	assert.Contains(t, fields, "error.error_message")
}

func TestValidate_ErrorAndProgressExclusive(t *testing.T) {
	cfg := validScenario()
	cfg.Error = &ErrorInfo{ErrorType: ErrorCalc, ErrorMessage: "계산 오류"}
	cfg.Progress = &ProgressConfig{Steps: []ProgressStep{{Label: "a", Pct: 100}}}

	errs := Validate(cfg)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[len(errs)-1].Message, "both")
}

func TestValidate_ProgressSequence(t *testing.T) {
	cfg := validScenario()
	cfg.Progress = &ProgressConfig{Steps: []ProgressStep{
		{Label: "a", Pct: 0},
		{Label: "b", Pct: 30},
		{Label: "c", Pct: 10},
	}}

	errs := Validate(cfg)
	require.Len(t, errs, 1)
	assert.Equal(t, "progress.steps[2]", errs[0].Field)

	cfg.Progress.Steps = nil
	errs = Validate(cfg)
	require.Len(t, errs, 1)
	assert.Equal(t, "progress.steps", errs[0].Field)
}

// Every document a builder produces must serialize, re-parse, and pass
// both the schema and the semantic checks.
func TestBuilderOutputsRoundTrip(t *testing.T) {
	normal, err := BuildNormal(NormalParams{RefundAmount: 3000000, BizType: BizIndividual}, nil)
	require.NoError(t, err)

	errScenario, err := BuildError(ErrorParams{Type: ErrorNoBiz})
	require.NoError(t, err)

	progress, err := BuildProgress(ProgressParams{RefundAmount: 500000})
	require.NoError(t, err)

	for _, cfg := range []*ScenarioConfig{normal, errScenario, progress} {
		data, err := json.Marshal(cfg)
		require.NoError(t, err)

		var reparsed ScenarioConfig
		require.NoError(t, json.Unmarshal(data, &reparsed))
		assert.Empty(t, Validate(&reparsed), "scenario %s", cfg.ScenarioName)

		violations, err := ValidateDocument(data)
		require.NoError(t, err)
		assert.Empty(t, violations, "scenario %s", cfg.ScenarioName)
	}
}

// Template documents may carry fields outside the typed model; those
// survive verbatim assignment and must not fail validation.
func TestValidateDocument_AllowsUnknownTopLevelFields(t *testing.T) {
	doc := []byte(`{
		"scenario_name": "정상환급_테스트",
		"biz_type": "individual_biz",
		"refund_result": {"total_refund": 1000000},
		"loader_hints": {"retry": 3}
	}`)

	violations, err := ValidateDocument(doc)
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestValidateDocument_StructuralErrors(t *testing.T) {
	violations, err := ValidateDocument([]byte(`{"scenario_name": 42}`))
	require.NoError(t, err)
	assert.NotEmpty(t, violations)
}

func TestValidateDocument_MalformedJSON(t *testing.T) {
	_, err := ValidateDocument([]byte(`{not json`))
	assert.Error(t, err)
}

func TestValidateDocument_SemanticErrors(t *testing.T) {
	doc := []byte(`{
		"scenario_name": "에러_테스트",
		"biz_type": "individual_biz",
		"error": {"error_type": "없는타입", "error_message": "메시지"}
	}`)

	violations, err := ValidateDocument(doc)
	require.NoError(t, err)
	require.NotEmpty(t, violations)
	assert.Equal(t, "error.error_type", violations[0].Field)
}
