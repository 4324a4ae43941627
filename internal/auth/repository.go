package auth

import "context"

// Session entries. Exactly these two keys are ever written.
const (
	KeyUser     = "user"
	KeyPassword = "userPassword"
)

// Repository is an opaque key/value store for session state. Get reports
// found=false for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
