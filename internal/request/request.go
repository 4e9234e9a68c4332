package request

// SendMessageRequest is the JSON body for relaying a standard or priority SMS.
type SendMessageRequest struct {
	Number     string `json:"number"`
	Message    string `json:"message"`
	SenderName string `json:"sendername,omitempty"`
}

// SendOTPRequest is the JSON body for relaying a one-time-password SMS.
// Code is optional; the provider generates one when it is absent.
type SendOTPRequest struct {
	Number     string `json:"number"`
	Message    string `json:"message"`
	SenderName string `json:"sendername,omitempty"`
	Code       string `json:"code,omitempty"`
}
