package scenario

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestBuildNormal(t *testing.T) {
	cfg, err := BuildNormal(NormalParams{
		UserName:     "홍길동",
		RefundAmount: 1000000,
		BizType:      BizIndividual,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "정상환급_홍길동_1000000원", cfg.ScenarioName)
	assert.Equal(t, BizIndividual, cfg.BizType)
	require.NotNil(t, cfg.RefundResult)
	assert.Equal(t, int64(1000000), cfg.RefundResult.TotalRefund)
	assert.Nil(t, cfg.Error)
	assert.Nil(t, cfg.Progress)
}

func TestBuildNormal_ParamsWinOverTemplate(t *testing.T) {
	base := &ScenarioConfig{
		ScenarioName: "정상환급_개인사업자_고액",
		BizType:      BizCorp,
		UserInfo:     &UserInfo{Name: "템플릿사용자"},
		RefundResult: &RefundResult{
			TotalRefund:      12500000,
			StartupSMBRefund: 5000000,
		},
	}

	cfg, err := BuildNormal(NormalParams{
		RefundAmount: 3000000,
		BizType:      BizIndividual,
	}, base)
	require.NoError(t, err)

	// Supplied params override the template base.
	assert.Equal(t, int64(3000000), cfg.RefundResult.TotalRefund)
	assert.Equal(t, BizIndividual, cfg.BizType)

	// Template fields without an override survive.
	assert.Equal(t, "템플릿사용자", cfg.UserInfo.Name)
	assert.Equal(t, int64(5000000), cfg.RefundResult.StartupSMBRefund)

	// The base itself is untouched.
	assert.Equal(t, int64(12500000), base.RefundResult.TotalRefund)
	assert.Equal(t, BizCorp, base.BizType)
}

func TestBuildNormal_ItemOverrides(t *testing.T) {
	base := &ScenarioConfig{
		RefundResult: &RefundResult{
			TotalRefund:      500000,
			EmploymentRefund: 200000,
		},
	}

	cfg, err := BuildNormal(NormalParams{
		RefundAmount:     700000,
		BizType:          BizIndividual,
		EmploymentRefund: int64Ptr(0),
	}, base)
	require.NoError(t, err)

	// An explicit zero clears the template value.
	assert.Equal(t, int64(0), cfg.RefundResult.EmploymentRefund)
}

func TestBuildNormal_Rejections(t *testing.T) {
	_, err := BuildNormal(NormalParams{RefundAmount: -1, BizType: BizIndividual}, nil)
	assert.Error(t, err)

	_, err = BuildNormal(NormalParams{RefundAmount: 0, BizType: "llc"}, nil)
	assert.Error(t, err)
}

func TestBuildNormal_RejectsNegativeItemAmounts(t *testing.T) {
	_, err := BuildNormal(NormalParams{
		RefundAmount:     1000,
		BizType:          BizIndividual,
		StartupSMBRefund: int64Ptr(-5),
	}, nil)
	assert.Error(t, err)

	// The same values arriving through a template base are rejected too.
	base := &ScenarioConfig{
		RefundResult: &RefundResult{TotalRefund: 500000, EmploymentRefund: -200000},
	}
	_, err = BuildNormal(NormalParams{RefundAmount: 1000, BizType: BizIndividual}, base)
	assert.Error(t, err)
}

// Every document BuildNormal produces must pass the validator, item
// amounts included.
func TestBuildNormal_OutputValidatorAccepted(t *testing.T) {
	cfg, err := BuildNormal(NormalParams{
		RefundAmount:          3000000,
		BizType:               BizIndividual,
		StartupSMBRefund:      int64Ptr(1000000),
		EmploymentRefund:      int64Ptr(1500000),
		SocialInsuranceRefund: int64Ptr(500000),
	}, nil)
	require.NoError(t, err)
	assert.Empty(t, Validate(cfg))
}

func TestBuildError_CanonicalMessage(t *testing.T) {
	cfg, err := BuildError(ErrorParams{Type: ErrorNoTaxReturn})
	require.NoError(t, err)

	require.NotNil(t, cfg.Error)
	assert.Equal(t, ErrorNoTaxReturn, cfg.Error.ErrorType)
	assert.Equal(t, "종합소득세 신고 내역이 없습니다.", cfg.Error.ErrorMessage)
	assert.Equal(t, ActionLoad, cfg.Error.Action)
	assert.Nil(t, cfg.RefundResult)
}

func TestBuildError_MessageOverrideAndDefaultAction(t *testing.T) {
	cfg, err := BuildError(ErrorParams{
		Type:    ErrorAuthExpired,
		Message: "커스텀 메시지",
	})
	require.NoError(t, err)

	assert.Equal(t, "커스텀 메시지", cfg.Error.ErrorMessage)
	assert.Equal(t, ActionCertResponse, cfg.Error.Action)
}

func TestBuildError_UnsupportedType(t *testing.T) {
	_, err := BuildError(ErrorParams{Type: "UNKNOWN_TYPE"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedErrorType))
}

func TestBuildProgress(t *testing.T) {
	cfg, err := BuildProgress(ProgressParams{
		RefundAmount: 2000000,
		Steps: []ProgressStep{
			{Label: "a", Pct: 0},
			{Label: "b", Pct: 50},
			{Label: "c", Pct: 100},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, cfg.Progress)
	assert.True(t, cfg.Progress.Enabled)
	assert.Equal(t, DefaultQueueName, cfg.Progress.QueueName)
	assert.Len(t, cfg.Progress.Steps, 3)
	assert.Equal(t, int64(2000000), cfg.RefundResult.TotalRefund)
}

func TestBuildProgress_DefaultSteps(t *testing.T) {
	cfg, err := BuildProgress(ProgressParams{RefundAmount: 100000})
	require.NoError(t, err)

	steps := cfg.Progress.Steps
	require.NotEmpty(t, steps)
	assert.Equal(t, 100, steps[len(steps)-1].Pct)
}

func TestBuildProgress_InvalidSequences(t *testing.T) {
	tests := []struct {
		name  string
		steps []ProgressStep
	}{
		{
			name: "decreasing",
			steps: []ProgressStep{
				{Label: "a", Pct: 0},
				{Label: "b", Pct: 30},
				{Label: "c", Pct: 10},
			},
		},
		{
			name: "final not 100",
			steps: []ProgressStep{
				{Label: "a", Pct: 10},
				{Label: "b", Pct: 90},
			},
		},
		{
			name: "pct out of range",
			steps: []ProgressStep{
				{Label: "a", Pct: 120},
			},
		},
		{
			name: "empty label",
			steps: []ProgressStep{
				{Label: "", Pct: 100},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildProgress(ProgressParams{Steps: tt.steps})
			require.Error(t, err)
			var seqErr *InvalidSequenceError
			assert.True(t, errors.As(err, &seqErr))
		})
	}
}
