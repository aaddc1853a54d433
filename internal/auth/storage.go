package auth

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("no such token")

// Storage is the storage for authentication token.
type Storage interface {
	// Get the token info for the given token and extend its expiration time.
	//
	// Error is implementation-defined except for ErrNotFound.
	// ErrNotFound is returned when the token is not found.
	Get(ctx context.Context, token string) (TokenInfo, error)

	// Peek the token info for the given token. It does not extend the expiration time.
	//
	// Error is implementation-defined except for ErrNotFound.
	Peek(ctx context.Context, token string) (TokenInfo, error)

	// Create a new token for the given info and return it.
	Create(ctx context.Context, info TokenInfo) (string, error)

	// Delete the specified token.
	//
	// Error is implementation-defined except for ErrNotFound.
	// ErrNotFound is returned when the token is not found.
	Delete(ctx context.Context, token string) error

	// DeleteByAccount revokes every token issued to the account.
	DeleteByAccount(ctx context.Context, accountID int) error
}

// TokenInfo is the information of the token.
type TokenInfo struct {
	AccountID int    `json:"account_id"` // the account the token was issued to
	Username  string `json:"username"`
	Role      string `json:"role"`    // the role the account signed in as
	Machine   string `json:"machine"` // the user agent that requested the token

	Scopes []string          `json:"scopes"` // the scopes of the role at sign-in
	Meta   map[string]string `json:"meta"`
}

var (
	ErrValidationPositiveAccountID = errors.New("account ID must be positive")
	ErrValidationRequireUsername   = errors.New("username is required")
	ErrValidationRequireRole       = errors.New("role is required")
	ErrValidationRequireMachine    = errors.New("machine is required")
	ErrValidationAtLeastOneScope   = errors.New("at least one scope is required")
)

func (t TokenInfo) Validate() error {
	if t.AccountID <= 0 {
		return ErrValidationPositiveAccountID
	}

	if t.Username == "" {
		return ErrValidationRequireUsername
	}

	if t.Role == "" {
		return ErrValidationRequireRole
	}

	if t.Machine == "" {
		return ErrValidationRequireMachine
	}

	if len(t.Scopes) == 0 {
		return ErrValidationAtLeastOneScope
	}

	return nil
}

// DefaultTokenExpire is the default expiration time of the token.
const DefaultTokenExpire = 8 * time.Hour

type storageOptions struct {
	tokenExpire time.Duration
}

// StorageOption configures a Storage implementation.
type StorageOption func(*storageOptions)

// WithTokenExpire sets how long a token lives without being used.
func WithTokenExpire(d time.Duration) StorageOption {
	return func(o *storageOptions) {
		o.tokenExpire = d
	}
}

func newStorageOptions(opts []StorageOption) storageOptions {
	o := storageOptions{tokenExpire: DefaultTokenExpire}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
