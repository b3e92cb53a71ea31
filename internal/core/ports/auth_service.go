package ports

import "context"

// AuthService authenticates credentials and issues access tokens.
type AuthService interface {
	// Login verifies the email/password pair and returns a signed bearer
	// token. Unknown email and wrong password both yield
	// domain.ErrInvalidCredentials so responses cannot distinguish them.
	Login(ctx context.Context, email, password string) (string, error)
}
