package mailjet

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/mailjet-community/client-go/internal/api"
)

// SendEmailRequest is the payload for POST /v3.1/send.
type SendEmailRequest struct {
	// SandboxMode validates the request without delivering anything.
	SandboxMode bool `json:"SandboxMode,omitempty"`
	// AdvanceErrorHandling enables per-message error reporting instead of
	// failing the whole batch.
	AdvanceErrorHandling bool `json:"AdvanceErrorHandling,omitempty"`
	// Globals apply to every message unless overridden per message.
	Globals *Globals `json:"Globals,omitempty"`
	// Messages is the batch to send. At least one is required.
	Messages []Message `json:"Messages"`
}

// Validate checks the request for client-detectable problems. Validation
// failures never reach the network.
func (r *SendEmailRequest) Validate() error {
	var problems []string

	if len(r.Messages) == 0 {
		problems = append(problems, "at least one message is required")
	}

	globalFrom := r.Globals != nil && r.Globals.From != nil && r.Globals.From.Email != ""

	for i, m := range r.Messages {
		if m.From.Email == "" && !globalFrom {
			problems = append(problems, fmt.Sprintf("message %d: From is required", i))
		}
		if len(m.To)+len(m.Cc)+len(m.Bcc) == 0 {
			problems = append(problems, fmt.Sprintf("message %d: at least one recipient is required", i))
		}
		for j, to := range m.To {
			if to.Email == "" {
				problems = append(problems, fmt.Sprintf("message %d: %s", i, recipientError("recipient", j)))
			}
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Errors: problems}
	}
	return nil
}

func recipientError(kind string, i int) string {
	return fmt.Sprintf("%s %d: Email is required", kind, i)
}

// MessageStatus reports per-message acceptance by the API.
type MessageStatus string

// Message statuses.
const (
	MessageStatusSuccess MessageStatus = "success"
	MessageStatusError   MessageStatus = "error"
)

// SendResult is the decoded /v3.1/send response.
type SendResult struct {
	Messages []MessageResult `json:"Messages"`
}

// MessageResult is the per-message outcome of a v3.1 send.
type MessageResult struct {
	Status   MessageStatus        `json:"Status"`
	CustomID string               `json:"CustomID,omitempty"`
	To       []MessageDestination `json:"To,omitempty"`
	Cc       []MessageDestination `json:"Cc,omitempty"`
	Bcc      []MessageDestination `json:"Bcc,omitempty"`
	Errors   []SendError          `json:"Errors,omitempty"`
}

// MessageDestination carries the identifiers Mailjet assigned to a message
// for one recipient.
type MessageDestination struct {
	Email       string    `json:"Email"`
	MessageUUID uuid.UUID `json:"MessageUUID"`
	MessageID   int64     `json:"MessageID"`
	MessageHref string    `json:"MessageHref"`
}

// SendError is a structured per-message error from the v3.1 API, returned
// when AdvanceErrorHandling is enabled.
type SendError struct {
	ErrorIdentifier uuid.UUID `json:"ErrorIdentifier"`
	ErrorCode       string    `json:"ErrorCode"`
	StatusCode      int       `json:"StatusCode"`
	ErrorMessage    string    `json:"ErrorMessage"`
	ErrorRelatedTo  []string  `json:"ErrorRelatedTo"`
}

// SendV3Result is the decoded legacy /v3/send response.
type SendV3Result struct {
	Sent []SentMessage `json:"Sent"`
}

// SentMessage identifies one accepted message of a legacy v3 send.
type SentMessage struct {
	Email       string    `json:"Email"`
	MessageID   int64     `json:"MessageID"`
	MessageUUID uuid.UUID `json:"MessageUUID"`
}

// SendEmail submits one or more messages through POST /v3.1/send.
// The call performs exactly one network round trip; validation failures
// are returned before any request is made.
func (c *Client) SendEmail(ctx context.Context, req *SendEmailRequest) (*SendResult, error) {
	if req == nil {
		return nil, &ValidationError{Errors: []string{"request is required"}}
	}

	prepared := c.withDefaultSender(req)
	if err := prepared.Validate(); err != nil {
		return nil, err
	}

	var result SendResult
	path := api.SendPath(APIVersionV31.internal())
	if err := c.apiClient.Do(ctx, http.MethodPost, path, nil, prepared, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}

// SendEmailV3 submits a message through the legacy POST /v3/send endpoint.
func (c *Client) SendEmailV3(ctx context.Context, msg *SimpleMessage) (*SendV3Result, error) {
	if msg == nil {
		return nil, &ValidationError{Errors: []string{"message is required"}}
	}

	prepared := msg
	if c.senderEmail != "" && msg.FromEmail == "" {
		clone := *msg
		clone.FromEmail = c.senderEmail
		clone.FromName = c.senderName
		prepared = &clone
	}
	if err := prepared.Validate(); err != nil {
		return nil, err
	}

	var result SendV3Result
	path := api.SendPath(APIVersionV3.internal())
	if err := c.apiClient.Do(ctx, http.MethodPost, path, nil, prepared, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}

// withDefaultSender fills the configured default sender into messages that
// have no From of their own. The caller's request is never mutated.
func (c *Client) withDefaultSender(req *SendEmailRequest) *SendEmailRequest {
	if c.senderEmail == "" {
		return req
	}

	needsDefault := false
	for _, m := range req.Messages {
		if m.From.Email == "" {
			needsDefault = true
			break
		}
	}
	if !needsDefault {
		return req
	}

	out := *req
	out.Messages = make([]Message, len(req.Messages))
	copy(out.Messages, req.Messages)
	for i := range out.Messages {
		if out.Messages[i].From.Email == "" {
			out.Messages[i].From = Recipient{Email: c.senderEmail, Name: c.senderName}
		}
	}
	return &out
}
