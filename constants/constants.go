package constants

// User roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Error messages
const (
	ErrNotLoggedIn       = "Not logged in"
	ErrInvalidToken      = "Invalid token"
	ErrNoAdminPermission = "No admin permission"
	ErrMissingFields     = "Missing required fields"
	ErrEmailExists       = "Email already exists"
	ErrBadCredentials    = "Invalid email or password"
	ErrTourNotFound      = "Tour not found"
	ErrInvalidID         = "Invalid id"
	ErrInvalidInput      = "Invalid input"
	ErrMissingImage      = "Image file is required"
	ErrUnexpected        = "Unexpected error"
)

// Success messages
const (
	MsgOK         = "OK"
	MsgRegistered = "Registration successful"
)
