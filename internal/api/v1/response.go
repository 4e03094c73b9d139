package v1

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type SendEmergencyResponse struct {
	Success    bool   `json:"success"`
	MessageSID string `json:"messageSid"`
	Status     string `json:"status"`
	To         string `json:"to"`
	Timestamp  string `json:"timestamp"`
}

type SendTestResponse struct {
	Success    bool   `json:"success"`
	MessageSID string `json:"messageSid"`
	Message    string `json:"message"`
}

// ErrorResponse is the failure envelope. Code carries the provider's
// numeric error code when one exists, otherwise a string constant.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Code      any    `json:"code,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}
