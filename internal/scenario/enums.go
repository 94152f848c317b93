package scenario

// BizType classifies the taxpayer behind a scenario.
type BizType string

// Supported business types.
const (
	BizIndividual BizType = "individual_biz"
	BizNone       BizType = "non_biz"
	BizCorp       BizType = "corp"
)

// BizTypes lists every supported business type in declaration order.
var BizTypes = []BizType{BizIndividual, BizNone, BizCorp}

// Valid reports whether b is a supported business type.
func (b BizType) Valid() bool {
	switch b {
	case BizIndividual, BizNone, BizCorp:
		return true
	}
	return false
}

// ActionType names the loader action an error scenario fires on.
type ActionType string

// Loader actions.
const (
	ActionCertRequest  ActionType = "cert_request"
	ActionCertResponse ActionType = "cert_response"
	ActionCheck        ActionType = "check"
	ActionLoad         ActionType = "load"
	ActionCalc         ActionType = "calc"
)

// Valid reports whether a is a known action type.
func (a ActionType) Valid() bool {
	switch a {
	case ActionCertRequest, ActionCertResponse, ActionCheck, ActionLoad, ActionCalc:
		return true
	}
	return false
}

// ErrorType identifies a mockable loader failure. Values are the Korean
// labels the itrLoader pipeline itself reports, so templates and assigned
// scenarios round-trip without translation.
type ErrorType string

// Supported error types.
const (
	ErrorNoTaxReturn     ErrorType = "종소세신고내역없음"
	ErrorNoBiz           ErrorType = "사업자없음오류"
	ErrorCalc            ErrorType = "계산오류"
	ErrorAlreadyRefunded ErrorType = "기환급자"
	ErrorNotComplete     ErrorType = "미완료"
	ErrorNoContBiz       ErrorType = "계속사업자없음"
	ErrorAuthExpired     ErrorType = "간편인증토큰만료"
	ErrorAuthNotComplete ErrorType = "간편인증미완료"
	ErrorLoginFailed     ErrorType = "홈택스로그인실패"
	ErrorSessionExpired  ErrorType = "세션만료"
	ErrorInvalidSSN      ErrorType = "주민번호오류"
)

// ErrorTypes lists every supported error type in declaration order.
var ErrorTypes = []ErrorType{
	ErrorNoTaxReturn,
	ErrorNoBiz,
	ErrorCalc,
	ErrorAlreadyRefunded,
	ErrorNotComplete,
	ErrorNoContBiz,
	ErrorAuthExpired,
	ErrorAuthNotComplete,
	ErrorLoginFailed,
	ErrorSessionExpired,
	ErrorInvalidSSN,
}

// errorMessages holds the canonical user-facing message per error type.
var errorMessages = map[ErrorType]string{
	ErrorNoTaxReturn:     "종합소득세 신고 내역이 없습니다.",
	ErrorNoBiz:           "사업자 등록 정보가 없습니다.",
	ErrorCalc:            "환급액 계산 중 오류가 발생했습니다.",
	ErrorAlreadyRefunded: "이미 환급 처리가 완료된 건입니다.",
	ErrorNotComplete:     "처리가 완료되지 않았습니다.",
	ErrorNoContBiz:       "계속사업자 정보가 없습니다.",
	ErrorAuthExpired:     "간편인증 토큰이 만료되었습니다.",
	ErrorAuthNotComplete: "간편인증이 완료되지 않았습니다.",
	ErrorLoginFailed:     "홈택스 로그인에 실패했습니다.",
	ErrorSessionExpired:  "세션이 만료되었습니다.",
	ErrorInvalidSSN:      "주민등록번호가 올바르지 않습니다.",
}

// errorDefaultActions maps each error type to the loader action it fires
// on by default. Auth errors surface during the cert round-trip, login and
// session errors during the pre-load check, everything else during load.
var errorDefaultActions = map[ErrorType]ActionType{
	ErrorNoTaxReturn:     ActionLoad,
	ErrorNoBiz:           ActionLoad,
	ErrorCalc:            ActionLoad,
	ErrorAlreadyRefunded: ActionLoad,
	ErrorNotComplete:     ActionLoad,
	ErrorNoContBiz:       ActionLoad,
	ErrorAuthExpired:     ActionCertResponse,
	ErrorAuthNotComplete: ActionCertResponse,
	ErrorLoginFailed:     ActionCheck,
	ErrorSessionExpired:  ActionCheck,
	ErrorInvalidSSN:      ActionCheck,
}

// Valid reports whether e is a supported error type.
func (e ErrorType) Valid() bool {
	_, ok := errorMessages[e]
	return ok
}

// Message returns the canonical message for e, or the empty string when e
// is not a supported error type.
func (e ErrorType) Message() string {
	return errorMessages[e]
}

// DefaultAction returns the loader action e fires on by default.
func (e ErrorType) DefaultAction() ActionType {
	if a, ok := errorDefaultActions[e]; ok {
		return a
	}
	return ActionLoad
}
