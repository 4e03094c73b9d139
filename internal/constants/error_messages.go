package constants

const (
	ErrCodeUnknown            = "UNKNOWN_ERROR"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeInvalidRequestBody = "INVALID_REQUEST_BODY"
)

const (
	ErrMsgEmergencyFields    = "Phone number and message are required"
	ErrMsgTestFields         = "Phone number is required"
	ErrMsgInternalError      = "Internal server error"
	ErrMsgInvalidRequestBody = "failed to parse request body"
)

const TestMessageBody = "This is a test message from your emergency SMS service."

var errorMessages = map[string]string{
	ErrCodeInternalError:      ErrMsgInternalError,
	ErrCodeInvalidRequestBody: ErrMsgInvalidRequestBody,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequestBody:
		return 400
	case ErrCodeInternalError, ErrCodeUnknown:
		return 500
	default:
		return 500
	}
}
