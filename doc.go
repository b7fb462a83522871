// Package mailjet provides a Go client for the Mailjet email REST API.
//
// The client covers the transactional send endpoints (API v3 and v3.1) and
// the contact and sender REST resources. Authentication uses the API key
// pair issued by Mailjet, sent as HTTP Basic Auth; the secret key is never
// included in logs, traces or error messages.
//
// Basic usage:
//
//	client, err := mailjet.New(apiKey, secretKey)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	msg := mailjet.NewMessage().
//	    From("pilot@example.com", "Pilot").
//	    To("passenger@example.com", "").
//	    Subject("Your flight").
//	    TextBody("Boarding at gate 4.").
//	    Build()
//
//	result, err := client.SendEmail(ctx, &mailjet.SendEmailRequest{
//	    Messages: []mailjet.Message{msg},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Status:", result.Messages[0].Status)
//
// Each call performs exactly one network round trip: no caching, no
// retries. Callers implement their own retry policy using the error
// taxonomy (retry *NetworkError and 5xx *APIError, never *ValidationError
// or ErrUnauthorized).
package mailjet
