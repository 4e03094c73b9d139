package service

type SendEmergencyResult struct {
	MessageSID string
	Status     string
	To         string
}

type SendTestResult struct {
	MessageSID string
}
