package mailjet

import "encoding/base64"

// Recipient is an email address with an optional display name.
type Recipient struct {
	Email string `json:"Email"`
	Name  string `json:"Name,omitempty"`
}

// Attachment is a file attached to a message. Content travels base64
// encoded on the wire; use NewAttachment to encode raw bytes.
type Attachment struct {
	Filename      string `json:"Filename"`
	ContentType   string `json:"ContentType"`
	ContentID     string `json:"ContentID,omitempty"`
	Base64Content string `json:"Base64Content"`
}

// NewAttachment builds an attachment from raw content.
func NewAttachment(filename, contentType string, content []byte) Attachment {
	return Attachment{
		Filename:      filename,
		ContentType:   contentType,
		Base64Content: base64.StdEncoding.EncodeToString(content),
	}
}

// Track controls open or click tracking for a message.
type Track string

// Tracking settings.
const (
	TrackAccountDefault Track = "account_default"
	TrackDisabled       Track = "disabled"
	TrackEnabled        Track = "enabled"
)

// Message is the per-message parameter set of the v3.1 /send endpoint.
// Field names follow Mailjet's wire format, which is PascalCase with a few
// legacy spellings (CustomID, URLTags, HTMLPart).
type Message struct {
	From                   Recipient         `json:"From,omitzero"`
	Sender                 *Recipient        `json:"Sender,omitempty"`
	To                     []Recipient       `json:"To,omitempty"`
	Cc                     []Recipient       `json:"Cc,omitempty"`
	Bcc                    []Recipient       `json:"Bcc,omitempty"`
	ReplyTo                *Recipient        `json:"ReplyTo,omitempty"`
	Subject                string            `json:"Subject,omitempty"`
	TextPart               string            `json:"TextPart,omitempty"`
	HTMLPart               string            `json:"HTMLPart,omitempty"`
	TemplateID             int64             `json:"TemplateID,omitempty"`
	TemplateLanguage       bool              `json:"TemplateLanguage,omitempty"`
	TemplateErrorReporting *Recipient        `json:"TemplateErrorReporting,omitempty"`
	TemplateErrorDeliver   bool              `json:"TemplateErrorDeliver,omitempty"`
	Attachments            []Attachment      `json:"Attachments,omitempty"`
	InlinedAttachments     []Attachment      `json:"InlinedAttachments,omitempty"`
	Priority               int               `json:"Priority,omitempty"`
	CustomCampaign         string            `json:"CustomCampaign,omitempty"`
	DeduplicateCampaign    bool              `json:"DeduplicateCampaign,omitempty"`
	TrackOpens             Track             `json:"TrackOpens,omitempty"`
	TrackClicks            Track             `json:"TrackClicks,omitempty"`
	CustomID               string            `json:"CustomID,omitempty"`
	EventPayload           string            `json:"EventPayload,omitempty"`
	URLTags                string            `json:"URLTags,omitempty"`
	Headers                map[string]string `json:"Headers,omitempty"`
	Variables              map[string]any    `json:"Variables,omitempty"`
}

// Globals holds message properties shared by every message of a v3.1 send
// request. Same shape as Message minus the per-recipient fields.
type Globals struct {
	From                   *Recipient        `json:"From,omitempty"`
	Sender                 *Recipient        `json:"Sender,omitempty"`
	Cc                     []Recipient       `json:"Cc,omitempty"`
	Bcc                    []Recipient       `json:"Bcc,omitempty"`
	ReplyTo                *Recipient        `json:"ReplyTo,omitempty"`
	Subject                string            `json:"Subject,omitempty"`
	TextPart               string            `json:"TextPart,omitempty"`
	HTMLPart               string            `json:"HTMLPart,omitempty"`
	TemplateID             int64             `json:"TemplateID,omitempty"`
	TemplateLanguage       bool              `json:"TemplateLanguage,omitempty"`
	TemplateErrorReporting *Recipient        `json:"TemplateErrorReporting,omitempty"`
	TemplateErrorDeliver   bool              `json:"TemplateErrorDeliver,omitempty"`
	Attachments            []Attachment      `json:"Attachments,omitempty"`
	InlinedAttachments     []Attachment      `json:"InlinedAttachments,omitempty"`
	Priority               int               `json:"Priority,omitempty"`
	CustomCampaign         string            `json:"CustomCampaign,omitempty"`
	DeduplicateCampaign    bool              `json:"DeduplicateCampaign,omitempty"`
	TrackOpens             Track             `json:"TrackOpens,omitempty"`
	TrackClicks            Track             `json:"TrackClicks,omitempty"`
	CustomID               string            `json:"CustomID,omitempty"`
	EventPayload           string            `json:"EventPayload,omitempty"`
	URLTags                string            `json:"URLTags,omitempty"`
	Headers                map[string]string `json:"Headers,omitempty"`
	Variables              map[string]any    `json:"Variables,omitempty"`
}

// SimpleMessage is the legacy /v3/send payload. Wire field names keep the
// v3 spelling, including the hyphenated body parts.
type SimpleMessage struct {
	FromEmail         string         `json:"FromEmail"`
	FromName          string         `json:"FromName,omitempty"`
	Recipients        []Recipient    `json:"Recipients"`
	Subject           string         `json:"Subject,omitempty"`
	TextPart          string         `json:"Text-part,omitempty"`
	HTMLPart          string         `json:"Html-part,omitempty"`
	Attachments       []Attachment   `json:"Attachments,omitempty"`
	InlineAttachments []Attachment   `json:"Inline_attachments,omitempty"`
	EventPayload      string         `json:"EventPayload,omitempty"`
	Vars              map[string]any `json:"Vars,omitempty"`
}

// Validate checks the message for client-detectable problems.
func (m *SimpleMessage) Validate() error {
	var problems []string
	if m.FromEmail == "" {
		problems = append(problems, "FromEmail is required")
	}
	if len(m.Recipients) == 0 {
		problems = append(problems, "at least one recipient is required")
	}
	for i, r := range m.Recipients {
		if r.Email == "" {
			problems = append(problems, recipientError("recipient", i))
		}
	}
	if len(problems) > 0 {
		return &ValidationError{Errors: problems}
	}
	return nil
}

// MessageBuilder assembles a Message incrementally. The zero value is
// ready to use; NewMessage exists for call chaining.
type MessageBuilder struct {
	msg Message
}

// NewMessage returns an empty message builder.
func NewMessage() *MessageBuilder {
	return &MessageBuilder{}
}

// From sets the sender address. Name may be empty.
func (b *MessageBuilder) From(email, name string) *MessageBuilder {
	b.msg.From = Recipient{Email: email, Name: name}
	return b
}

// To appends a recipient. Name may be empty.
func (b *MessageBuilder) To(email, name string) *MessageBuilder {
	b.msg.To = append(b.msg.To, Recipient{Email: email, Name: name})
	return b
}

// Cc appends a carbon-copy recipient.
func (b *MessageBuilder) Cc(email, name string) *MessageBuilder {
	b.msg.Cc = append(b.msg.Cc, Recipient{Email: email, Name: name})
	return b
}

// Bcc appends a blind carbon-copy recipient.
func (b *MessageBuilder) Bcc(email, name string) *MessageBuilder {
	b.msg.Bcc = append(b.msg.Bcc, Recipient{Email: email, Name: name})
	return b
}

// ReplyTo sets the reply-to address.
func (b *MessageBuilder) ReplyTo(email, name string) *MessageBuilder {
	b.msg.ReplyTo = &Recipient{Email: email, Name: name}
	return b
}

// Subject sets the subject line.
func (b *MessageBuilder) Subject(subject string) *MessageBuilder {
	b.msg.Subject = subject
	return b
}

// TextBody sets the plain-text body.
func (b *MessageBuilder) TextBody(text string) *MessageBuilder {
	b.msg.TextPart = text
	return b
}

// HTMLBody sets the HTML body.
func (b *MessageBuilder) HTMLBody(html string) *MessageBuilder {
	b.msg.HTMLPart = html
	return b
}

// Template selects a stored transactional template and enables the
// template language, which is required for variable substitution.
func (b *MessageBuilder) Template(id int64) *MessageBuilder {
	b.msg.TemplateID = id
	b.msg.TemplateLanguage = true
	return b
}

// Variable sets a template substitution variable.
func (b *MessageBuilder) Variable(name string, value any) *MessageBuilder {
	if b.msg.Variables == nil {
		b.msg.Variables = make(map[string]any)
	}
	b.msg.Variables[name] = value
	return b
}

// Header sets a custom SMTP header.
func (b *MessageBuilder) Header(name, value string) *MessageBuilder {
	if b.msg.Headers == nil {
		b.msg.Headers = make(map[string]string)
	}
	b.msg.Headers[name] = value
	return b
}

// Attach adds a file attachment, base64-encoding the content.
func (b *MessageBuilder) Attach(filename, contentType string, content []byte) *MessageBuilder {
	b.msg.Attachments = append(b.msg.Attachments, NewAttachment(filename, contentType, content))
	return b
}

// CustomID tags the message with a caller-chosen identifier, echoed back
// in the send response and in event callbacks.
func (b *MessageBuilder) CustomID(id string) *MessageBuilder {
	b.msg.CustomID = id
	return b
}

// TrackOpens overrides the account default for open tracking.
func (b *MessageBuilder) TrackOpens(track Track) *MessageBuilder {
	b.msg.TrackOpens = track
	return b
}

// TrackClicks overrides the account default for click tracking.
func (b *MessageBuilder) TrackClicks(track Track) *MessageBuilder {
	b.msg.TrackClicks = track
	return b
}

// Build returns the assembled message.
func (b *MessageBuilder) Build() Message {
	return b.msg
}
