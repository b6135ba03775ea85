package authsdk

// ============================================================================
// Shared Types
// ============================================================================

// Role is the account tag, either RoleStudent or RoleTutor.
type Role = string

const (
	RoleStudent Role = "student"
	RoleTutor   Role = "tutor"
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	// Error is a human-readable, localized message
	Error string `json:"error" example:"邮箱或密码错误"`
}

// User is the public view of an account. It never includes the password hash.
type User struct {
	ID          string `json:"id"          example:"01JB8Q1K9X1VZ4ZK6F0N7QW2GS"`
	Email       string `json:"email"       example:"alice@example.com"`
	Name        string `json:"name"        example:"Alice"`
	Role        Role   `json:"role"        example:"student"`
	Institution string `json:"institution" example:"UNSW"`
}

// ============================================================================
// Request Types
// ============================================================================

// SignupRequest is the body of POST /api/auth/signup. Role defaults to
// student and Institution is optional.
type SignupRequest struct {
	Email       string `json:"email"                 example:"alice@example.com"`
	Password    string `json:"password"              example:"secret-password"`
	Name        string `json:"name"                  example:"Alice"`
	Role        Role   `json:"role,omitempty"        example:"student"`
	Institution string `json:"institution,omitempty" example:"UNSW"`
}

// SendCodeRequest is the body of POST /api/auth/send-code.
type SendCodeRequest struct {
	Email string `json:"email" example:"alice@example.com"`
}

// VerifyCodeRequest is the body of POST /api/auth/verify-code.
type VerifyCodeRequest struct {
	Email string `json:"email" example:"alice@example.com"`
	Code  string `json:"code"  example:"042817"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"    example:"alice@example.com"`
	Password string `json:"password" example:"secret-password"`
}

// ============================================================================
// Response Types
// ============================================================================

// AuthResponse is returned by signup and login together with the session cookie.
type AuthResponse struct {
	Success bool `json:"success" example:"true"`
	User    User `json:"user"`
}

// SuccessResponse is returned by send-code, verify-code and logout.
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// MeResponse is returned by GET /api/auth/me.
type MeResponse struct {
	User User `json:"user"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`
}
