// ABOUTME: Authentication header builders for outbound Miniflux API calls
// ABOUTME: Token and basic schemes are mutually exclusive and fixed per deployment

package driver

import (
	"encoding/base64"
	"net/http"

	"miniflux-connector/models"
)

// HeaderAuthenticator applies an authentication scheme to outbound request
// headers. Implementations are pure: no network, no state.
type HeaderAuthenticator interface {
	Apply(header http.Header)
}

// TokenAuthenticator authenticates with a static X-Auth-Token header
type TokenAuthenticator struct {
	token string
}

// NewTokenAuthenticator creates a token-based authenticator
func NewTokenAuthenticator(token string) *TokenAuthenticator {
	return &TokenAuthenticator{token: token}
}

// Apply sets the X-Auth-Token header
func (a *TokenAuthenticator) Apply(header http.Header) {
	header.Set("X-Auth-Token", a.token)
}

// BasicAuthenticator authenticates with HTTP Basic credentials
type BasicAuthenticator struct {
	username string
	password string
}

// NewBasicAuthenticator creates a basic-auth authenticator
func NewBasicAuthenticator(username, password string) *BasicAuthenticator {
	return &BasicAuthenticator{username: username, password: password}
}

// Apply sets the Authorization header to Basic base64(username:password)
func (a *BasicAuthenticator) Apply(header http.Header) {
	encoded := base64.StdEncoding.EncodeToString([]byte(a.username + ":" + a.password))
	header.Set("Authorization", "Basic "+encoded)
}

// NewAuthenticator selects the authenticator implied by a credential set
func NewAuthenticator(creds *models.Credentials) HeaderAuthenticator {
	if creds.Scheme() == models.AuthSchemeToken {
		return NewTokenAuthenticator(creds.APIToken)
	}
	return NewBasicAuthenticator(creds.Username, creds.Password)
}
