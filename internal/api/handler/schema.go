package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// successResponse wraps every 2xx body.
type successResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// --- Request types ---

type registerRequest struct {
	FirstName  string `json:"firstName"  validate:"required"`
	LastName   string `json:"lastName"   validate:"required"`
	Email      string `json:"email"      validate:"required,email"`
	Password   string `json:"password"   validate:"required,min=6"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,min=6,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type verifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp"   validate:"required"`
}

type resendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// --- Response payloads ---

type tokenData struct {
	Token string `json:"token"`
}

type identityData struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
