// Package api implements the HTTP layer of the Mailjet client: request
// construction with Basic Auth credentials, JSON encoding/decoding, the
// endpoint path table, and the mapping of HTTP failures to typed errors.
//
// The package is internal; the public surface lives in the root mailjet
// package, which converts these errors to its exported taxonomy.
//
// Error handling contract for Client.Do:
//   - transport failures (connection, timeout, cancellation): *NetworkError
//   - 4xx/5xx responses: *APIError, with the structured Mailjet error
//     payload when present, the raw body text otherwise
//   - malformed 2xx bodies: *DecodeError
package api
