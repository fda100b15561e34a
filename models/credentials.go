package models

// SessionCredentials identifies one bridge server session. The struct is owned
// by the surrounding configuration layer; the core reads and returns it as an
// opaque value and never touches the underlying persistence format.
type SessionCredentials struct {
	// BaseURL is the bridge server root, scheme included.
	BaseURL string `json:"base_url"`

	// Password is the shared server password sent as a header or query
	// parameter depending on the endpoint.
	Password string `json:"password"`

	// Token is an optional bearer token obtained from a login-style
	// endpoint. Empty when the deployment is password-only.
	Token string `json:"token,omitempty"`
}
