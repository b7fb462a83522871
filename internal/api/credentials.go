package api

import (
	"errors"
	"net/http"
)

// redacted replaces the key pair wherever credentials would otherwise
// appear in formatted or serialized output.
const redacted = "REDACTED"

// Credentials holds the Mailjet API key pair used for HTTP Basic Auth.
// The secret key is never readable once stored: the only operation is
// applying the Authorization header to an outgoing request. All formatted
// and serialized forms replace both tokens with a placeholder.
type Credentials struct {
	apiKey    string
	secretKey string
}

// NewCredentials creates credentials from the API key pair issued by Mailjet.
// Both tokens are required.
func NewCredentials(apiKey, secretKey string) (Credentials, error) {
	if apiKey == "" {
		return Credentials{}, errors.New("API key is required")
	}
	if secretKey == "" {
		return Credentials{}, errors.New("secret key is required")
	}
	return Credentials{apiKey: apiKey, secretKey: secretKey}, nil
}

// apply sets the Basic Auth header on req, API key as username and
// secret key as password.
func (c Credentials) apply(req *http.Request) {
	req.SetBasicAuth(c.apiKey, c.secretKey)
}

// String implements fmt.Stringer with the key pair redacted.
func (c Credentials) String() string {
	return "Credentials(" + redacted + ")"
}

// GoString implements fmt.GoStringer with the key pair redacted, so %#v
// does not fall back to reflection over the raw fields.
func (c Credentials) GoString() string {
	return "api.Credentials{" + redacted + "}"
}

// MarshalJSON implements json.Marshaler with the key pair redacted.
func (c Credentials) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}
