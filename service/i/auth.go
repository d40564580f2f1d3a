package i

import (
	dmn "github.com/beka-birhanu/vinom-mazegen/domain"
)

// Authenticator registers accounts and signs them in.
type Authenticator interface {
	Register(username, password string) error

	// SignIn returns the user and a fresh access token.
	SignIn(username, password string) (*dmn.User, string, error)
}
