package twilio

import "fmt"

// Error is the provider's error payload, surfaced verbatim to callers.
// Code is the provider's numeric error code (e.g. 21211 for an invalid
// destination number).
type Error struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	MoreInfo string `json:"more_info,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("twilio: %s (code %d, status %d)", e.Message, e.Code, e.Status)
}
