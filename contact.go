package mailjet

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/mailjet-community/client-go/internal/api"
)

// restResponse is the Count/Data/Total envelope shared by the /REST
// resources of the v3 API.
type restResponse[T any] struct {
	Count int `json:"Count"`
	Data  []T `json:"Data"`
	Total int `json:"Total"`
}

// ContactRequest is the payload for POST /v3/REST/contact.
type ContactRequest struct {
	Email                   string `json:"Email"`
	Name                    string `json:"Name,omitempty"`
	IsExcludedFromCampaigns bool   `json:"IsExcludedFromCampaigns,omitempty"`
}

// Validate checks the request for client-detectable problems.
func (r *ContactRequest) Validate() error {
	if r.Email == "" {
		return &ValidationError{Errors: []string{"Email is required"}}
	}
	return nil
}

// Contact is a contact record from the REST API.
type Contact struct {
	ID                      int64     `json:"ID"`
	Email                   string    `json:"Email"`
	Name                    string    `json:"Name"`
	IsExcludedFromCampaigns bool      `json:"IsExcludedFromCampaigns"`
	IsOptInPending          bool      `json:"IsOptInPending"`
	IsSpamComplaining       bool      `json:"IsSpamComplaining"`
	DeliveredCount          int64     `json:"DeliveredCount"`
	CreatedAt               time.Time `json:"CreatedAt,omitzero"`
	LastActivityAt          time.Time `json:"LastActivityAt,omitzero"`
}

// CreateContact registers a new contact through POST /v3/REST/contact.
// The API answers with the Count/Data/Total envelope; the created record
// is the first Data element.
func (c *Client) CreateContact(ctx context.Context, req *ContactRequest) (*Contact, error) {
	if req == nil {
		return nil, &ValidationError{Errors: []string{"request is required"}}
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var result restResponse[Contact]
	if err := c.apiClient.Do(ctx, http.MethodPost, api.ContactPath(), nil, req, &result); err != nil {
		return nil, wrapError(err)
	}
	if len(result.Data) == 0 {
		return nil, &DecodeError{Err: errors.New("response Data array is empty")}
	}
	return &result.Data[0], nil
}

// GetContact fetches a contact by email address or numeric ID through
// GET /v3/REST/contact/{id}.
func (c *Client) GetContact(ctx context.Context, idOrEmail string) (*Contact, error) {
	if idOrEmail == "" {
		return nil, &ValidationError{Errors: []string{"contact identifier is required"}}
	}

	var result restResponse[Contact]
	path := api.ContactPath() + "/" + url.PathEscape(idOrEmail)
	if err := c.apiClient.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	if len(result.Data) == 0 {
		return nil, &DecodeError{Err: errors.New("response Data array is empty")}
	}
	return &result.Data[0], nil
}
