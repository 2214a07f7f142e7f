package api

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// LoginRequest is the credential exchange payload sent to the auth endpoint.
type LoginRequest struct {
	APIKey string `json:"api_key" validate:"required,min=1"`
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// LoginResponse carries the session token issued for a valid API key.
type LoginResponse struct {
	Token     string     `json:"token"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Message   string     `json:"message,omitempty"`
}

// Document is one uploaded document as reported by the server.
// Entries are read-only; the client never mutates them.
type Document struct {
	ID        uuid.UUID  `json:"id"`
	Filename  string     `json:"filename"`
	Status    string     `json:"status"`
	Provider  string     `json:"provider_name,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// ListResponse is the paginated document listing envelope.
type ListResponse struct {
	Documents []Document `json:"documents"`
	Count     int        `json:"count"`
}

// UploadResponse is the server's acknowledgement of a single upload.
type UploadResponse struct {
	ID       uuid.UUID `json:"id"`
	Filename string    `json:"filename"`
	Status   string    `json:"status,omitempty"`
	Message  string    `json:"message,omitempty"`
}

// Portfolio is the server-side metadata record associated with an
// uploaded filename.
type Portfolio struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Filename string    `json:"filename,omitempty"`
	Status   string    `json:"status,omitempty"`
}

// PortfoliosResponse is the portfolio lookup envelope.
type PortfoliosResponse struct {
	Portfolios []Portfolio `json:"portfolios"`
	Count      int         `json:"count"`
}

// errorEnvelope is the error body shape used by the server. Some endpoints
// report under "detail", others under "message".
type errorEnvelope struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}
