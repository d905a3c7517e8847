package domain

var (
	MessageSuccessRegister = "user registered successfully"
	MessageSuccessLogin    = "login successful"

	MessageFailedRegister = "failed to register user"
	MessageFailedLogin    = "failed to login"

	ErrMissingCredentials = NewError(ErrValidation, "username and password are required")
	ErrPasswordTooLong    = NewError(ErrValidation, "password must be at most 72 bytes")
	ErrDuplicateUsername  = NewError(ErrConflict, "username already exists")
	ErrInvalidCredentials = NewError(ErrAuthentication, "invalid username or password")
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	RegisterResponse struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Username string `json:"username"`
	}
)
