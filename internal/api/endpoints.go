package api

// Version selects the generation of the Mailjet REST API used for a request.
type Version string

// Supported API versions.
const (
	VersionV3  Version = "v3"
	VersionV31 Version = "v3.1"
)

// SendPath returns the request path of the /send endpoint for the given
// version. Unknown versions fall back to v3, the API default.
func SendPath(v Version) string {
	if v == VersionV31 {
		return "/v3.1/send"
	}
	return "/v3/send"
}

// ContactPath returns the request path of the contact REST resource.
// As of today only the v3 API exposes the REST resources.
func ContactPath() string {
	return "/v3/REST/contact"
}

// SenderPath returns the request path of the sender REST resource.
func SenderPath() string {
	return "/v3/REST/sender"
}
