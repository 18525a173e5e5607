package api

// ErrorResponse is the generic error envelope for API failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse is the envelope for simple success messages.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// RoleResponse is the body of GET /users/role/:email.
type RoleResponse struct {
	Role string `json:"role"`
}

// PaymentIntentResponse is the body of POST /create-payment-intent.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// LoginResponse is the body of POST /login. The token is also set as the
// session cookie; it is echoed for non-browser clients.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}
