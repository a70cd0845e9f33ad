package ports

import (
	"context"

	"github.com/stockroom/inventory-api/internal/core/domain"
)

// AuthService handles registration and login. Login returns a signed bearer
// token; the single ErrInvalidCredentials covers both unknown usernames and
// wrong passwords so that callers cannot enumerate accounts.
type AuthService interface {
	Register(ctx context.Context, username, password, role string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}
