package v1

type SendEmergencyRequest struct {
	To          string `json:"to" validate:"required"`
	Message     string `json:"message" validate:"required"`
	ContactName string `json:"contactName"`
	HasLocation bool   `json:"hasLocation"`
}

type SendTestRequest struct {
	To string `json:"to" validate:"required"`
}
