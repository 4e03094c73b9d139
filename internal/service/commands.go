package service

type SendEmergencyCommand struct {
	To          string
	Message     string
	ContactName string
	HasLocation bool
}

type SendTestCommand struct {
	To string
}
