package httpclient

import (
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthType identifies the authentication method.
type AuthType int

const (
	// AuthNone disables authentication.
	AuthNone AuthType = iota
	// AuthBearer uses Bearer token authentication.
	AuthBearer
	// AuthBasic uses HTTP Basic authentication.
	AuthBasic
	// AuthAPIKey uses API key authentication (header or query parameter).
	AuthAPIKey
	// AuthCustom uses a custom authentication function.
	AuthCustom
)

// AuthConfig configures request authentication.
type AuthConfig struct {
	// Type is the authentication method.
	Type AuthType
	// Token is the bearer token (AuthBearer).
	Token string
	// Username is the basic auth username (AuthBasic).
	Username string
	// Password is the basic auth password (AuthBasic).
	Password string
	// Key is the API key value (AuthAPIKey).
	Key string
	// In specifies where to place the API key: "header" (default) or "query" (AuthAPIKey).
	In string
	// Name is the header or query parameter name (AuthAPIKey). Defaults to "X-API-Key".
	Name string
	// Apply is a custom function to modify the request (AuthCustom).
	Apply func(*http.Request)
}

// BearerAuth creates a bearer token auth config.
func BearerAuth(token string) *AuthConfig {
	return &AuthConfig{Type: AuthBearer, Token: token}
}

// BasicAuth creates a basic auth config.
func BasicAuth(username, password string) *AuthConfig {
	return &AuthConfig{Type: AuthBasic, Username: username, Password: password}
}

// APIKeyAuth creates an API key auth config sent via the X-API-Key header.
func APIKeyAuth(key string) *AuthConfig {
	return &AuthConfig{Type: AuthAPIKey, Key: key, In: "header", Name: "X-API-Key"}
}

// APIKeyAuthQuery creates an API key auth config sent via query parameter.
func APIKeyAuthQuery(key, paramName string) *AuthConfig {
	return &AuthConfig{Type: AuthAPIKey, Key: key, In: "query", Name: paramName}
}

// CustomAuth creates a custom auth config with a request modifier function.
func CustomAuth(fn func(*http.Request)) *AuthConfig {
	return &AuthConfig{Type: AuthCustom, Apply: fn}
}

// apply applies authentication to an HTTP request.
func (a *AuthConfig) apply(req *http.Request) {
	if a == nil {
		return
	}
	switch a.Type {
	case AuthBearer:
		req.Header.Set("Authorization", "Bearer "+a.Token)
	case AuthBasic:
		req.SetBasicAuth(a.Username, a.Password)
	case AuthAPIKey:
		name := a.Name
		if name == "" {
			name = "X-API-Key"
		}
		if a.In == "query" {
			q := req.URL.Query()
			q.Set(name, a.Key)
			req.URL.RawQuery = q.Encode()
		} else {
			req.Header.Set(name, a.Key)
		}
	case AuthCustom:
		if a.Apply != nil {
			a.Apply(req)
		}
	}
}

// tokenRefreshLeeway is how long before JWT expiry a refresh is attempted.
const tokenRefreshLeeway = 30 * time.Second

// TokenSource manages a bearer token that expires. When the current token is
// a JWT whose exp claim is within the refresh leeway, the refresh callback
// is invoked to obtain a new one. If refresh fails the stale token is kept
// and the server's own rejection surfaces the problem.
type TokenSource struct {
	mu      sync.Mutex
	token   string
	expiry  time.Time
	refresh func() (string, error)
}

// NewTokenSource creates a TokenSource from an initial token and a refresh
// callback. refresh may be nil for tokens that never rotate.
func NewTokenSource(initial string, refresh func() (string, error)) *TokenSource {
	ts := &TokenSource{refresh: refresh}
	ts.set(initial)
	return ts
}

// TokenAuth creates an auth config backed by a TokenSource.
func TokenAuth(ts *TokenSource) *AuthConfig {
	return CustomAuth(func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+ts.Token())
	})
}

// Token returns the current token, refreshing it first when it is about to
// expire.
func (ts *TokenSource) Token() string {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.refresh != nil && !ts.expiry.IsZero() && time.Until(ts.expiry) < tokenRefreshLeeway {
		if fresh, err := ts.refresh(); err == nil {
			ts.setLocked(fresh)
		}
	}
	return ts.token
}

func (ts *TokenSource) set(token string) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.setLocked(token)
}

func (ts *TokenSource) setLocked(token string) {
	ts.token = token
	ts.expiry = jwtExpiry(token)
}

// jwtExpiry extracts the exp claim from a JWT without verifying the
// signature (the token is opaque client-side; only its lifetime matters
// here). Returns the zero time for non-JWT tokens or tokens without exp.
func jwtExpiry(token string) time.Time {
	var claims jwt.RegisteredClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
