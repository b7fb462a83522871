package mailjet

import (
	"fmt"
	"strings"

	"github.com/mailjet-community/client-go/internal/api"
)

// SDKVersion identifies this client in the default User-Agent header.
const SDKVersion = "1.0.0"

// APIVersion selects the generation of the /send endpoint.
type APIVersion string

// Supported API versions.
const (
	// APIVersionV3 is the legacy send API, used by SendEmailV3.
	APIVersionV3 APIVersion = "v3"
	// APIVersionV31 is the current send API, used by SendEmail.
	APIVersionV31 APIVersion = "v3.1"
)

// ParseAPIVersion converts a version string such as "v3.1" into an
// APIVersion. Useful when the version comes from configuration.
func ParseAPIVersion(s string) (APIVersion, error) {
	switch strings.ToLower(s) {
	case "v3":
		return APIVersionV3, nil
	case "v3.1":
		return APIVersionV31, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAPIVersion, s)
}

func (v APIVersion) String() string {
	return string(v)
}

// internal converts the public version to the API layer's version type.
func (v APIVersion) internal() api.Version {
	if v == APIVersionV31 {
		return api.VersionV31
	}
	return api.VersionV3
}
