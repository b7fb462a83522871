package mailjet

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mailjet-community/client-go/internal/api"
)

// EmailType classifies what a sender address is used for.
type EmailType string

// Sender email types.
const (
	EmailTypeTransactional EmailType = "transactional"
	EmailTypeBulk          EmailType = "bulk"
	EmailTypeUnknown       EmailType = "unknown"
)

// SenderStatus is the validation state of a sender address.
type SenderStatus string

// Sender statuses.
const (
	SenderStatusInactive SenderStatus = "Inactive"
	SenderStatusActive   SenderStatus = "Active"
	SenderStatusDeleted  SenderStatus = "Deleted"
)

// Sender is a validated sender address or domain from GET /v3/REST/sender.
type Sender struct {
	ID              int64        `json:"ID"`
	Email           string       `json:"Email"`
	Name            string       `json:"Name"`
	EmailType       EmailType    `json:"EmailType"`
	Status          SenderStatus `json:"Status"`
	IsDefaultSender bool         `json:"IsDefaultSender"`
	DNSID           int64        `json:"DNSID"`
	Filename        string       `json:"Filename"`
	CreatedAt       time.Time    `json:"CreatedAt,omitzero"`
}

// SenderQuery filters GET /v3/REST/sender. The zero value lists everything.
type SenderQuery struct {
	DNSID          int64
	Domain         string
	Email          string
	IsDomainSender bool
	LocalPart      string
	ShowDeleted    bool
	Status         SenderStatus
	Limit          int
	Offset         int
	CountOnly      bool
	Sort           string
}

// values converts the query to URL parameters, using the API's parameter
// spelling (DnsID, not DNSID).
func (q *SenderQuery) values() url.Values {
	v := url.Values{}
	if q == nil {
		return v
	}
	if q.DNSID != 0 {
		v.Set("DnsID", strconv.FormatInt(q.DNSID, 10))
	}
	if q.Domain != "" {
		v.Set("Domain", q.Domain)
	}
	if q.Email != "" {
		v.Set("Email", q.Email)
	}
	if q.IsDomainSender {
		v.Set("IsDomainSender", "true")
	}
	if q.LocalPart != "" {
		v.Set("LocalPart", q.LocalPart)
	}
	if q.ShowDeleted {
		v.Set("ShowDeleted", "true")
	}
	if q.Status != "" {
		v.Set("Status", string(q.Status))
	}
	if q.Limit > 0 {
		v.Set("Limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		v.Set("Offset", strconv.Itoa(q.Offset))
	}
	if q.CountOnly {
		v.Set("CountOnly", "true")
	}
	if q.Sort != "" {
		v.Set("Sort", q.Sort)
	}
	return v
}

// ListSenders lists the sender addresses registered for the account.
// query may be nil to list everything.
func (c *Client) ListSenders(ctx context.Context, query *SenderQuery) ([]Sender, error) {
	var result restResponse[Sender]
	if err := c.apiClient.Do(ctx, http.MethodGet, api.SenderPath(), query.values(), nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result.Data, nil
}
