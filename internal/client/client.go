// Package client is a typed HTTP client for the parcel API.
//
// Failures to reach the API, and unexpected statuses, come back as *errs.TransportError.
// A 400 with field names becomes an *errs.ValidationError and a 404 an
// errs.ErrObjectNotFound, so callers handle remote errors the way they handle local ones.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"parcelhub/internal/generated/servers"
	"parcelhub/internal/pkg/errs"

	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const DefaultTimeout = 10 * time.Second

// Client is safe for concurrent use. WithToken returns a copy bound to a session.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.http = c }
}

func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errs.NewValueIsInvalidErrorWithCause("baseURL", fmt.Errorf("%q is not an absolute URL", baseURL))
	}

	c := &Client{
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// WithToken returns a client that sends token as its bearer credential.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// ParcelFilter narrows ListParcels. Zero fields do not filter.
type ParcelFilter struct {
	Search     string
	Statuses   []string
	DriverID   string
	CustomerID string
	VendorID   string
}

func (c *Client) Login(ctx context.Context, email, password string) (servers.Session, error) {
	var session servers.Session
	err := c.do(ctx, "login", http.MethodPost, "/api/v1/sessions", nil,
		servers.LoginRequest{Email: email, Password: password}, &session)
	return session, err
}

// ListParcels returns the matching parcels. If the call fails the result is an empty
// list together with the error, so a caller can still render something.
func (c *Client) ListParcels(ctx context.Context, filter ParcelFilter) ([]servers.Parcel, error) {
	query := url.Values{}
	setIfNotEmpty(query, "search", filter.Search)
	setIfNotEmpty(query, "driverId", filter.DriverID)
	setIfNotEmpty(query, "customerId", filter.CustomerID)
	setIfNotEmpty(query, "vendorId", filter.VendorID)
	for _, s := range filter.Statuses {
		query.Add("status", s)
	}

	var parcels []servers.Parcel
	if err := c.do(ctx, "list parcels", http.MethodGet, "/api/v1/parcels", query, nil, &parcels); err != nil {
		return []servers.Parcel{}, err
	}
	if parcels == nil {
		parcels = []servers.Parcel{}
	}
	return parcels, nil
}

func (c *Client) CreateParcel(ctx context.Context, body servers.NewParcel) (servers.Parcel, error) {
	var p servers.Parcel
	err := c.do(ctx, "create parcel", http.MethodPost, "/api/v1/parcels", nil, body, &p)
	return p, err
}

// TrackParcel looks a parcel up by tracking ID. An unknown ID is reported through
// found, not as an error.
func (c *Client) TrackParcel(ctx context.Context, trackingID string) (p servers.Parcel, found bool, err error) {
	segment, err := runtime.StyleParamWithLocation("simple", false, "trackingId", runtime.ParamLocationPath, trackingID)
	if err != nil {
		return servers.Parcel{}, false, err
	}

	err = c.do(ctx, "track parcel", http.MethodGet, "/api/v1/parcels/tracking/"+segment, nil, nil, &p)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return servers.Parcel{}, false, nil
	}
	if err != nil {
		return servers.Parcel{}, false, err
	}
	return p, true, nil
}

func (c *Client) Stats(ctx context.Context, vendorID string) (servers.ParcelStats, error) {
	query := url.Values{}
	setIfNotEmpty(query, "vendorId", vendorID)

	var stats servers.ParcelStats
	err := c.do(ctx, "parcel stats", http.MethodGet, "/api/v1/parcels/stats", query, nil, &stats)
	return stats, err
}

func (c *Client) AdvanceParcel(ctx context.Context, id openapi_types.UUID) (servers.Parcel, error) {
	segment, err := runtime.StyleParamWithLocation("simple", false, "parcelId", runtime.ParamLocationPath, id)
	if err != nil {
		return servers.Parcel{}, err
	}

	var p servers.Parcel
	err = c.do(ctx, "advance parcel", http.MethodPost, "/api/v1/parcels/"+segment+"/advance", nil, nil, &p)
	return p, err
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return errs.NewTransportError(op, 0, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.NewTransportError(op, 0, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.NewTransportError(op, resp.StatusCode, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return responseError(op, resp.StatusCode, raw)
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errs.NewTransportError(op, resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func responseError(op string, status int, raw []byte) error {
	var apiErr servers.Error
	_ = json.Unmarshal(raw, &apiErr)

	switch {
	case status == http.StatusBadRequest && apiErr.Fields != nil && len(*apiErr.Fields) > 0:
		problems := make([]error, 0, len(*apiErr.Fields))
		for _, field := range *apiErr.Fields {
			problems = append(problems, errs.NewValueIsInvalidError(field))
		}
		return errs.NewValidationError(op, errors.Join(problems...))
	case status == http.StatusNotFound:
		return errs.NewObjectNotFoundErrorWithCause(op, "", errors.New(apiErr.Message))
	default:
		var cause error
		if apiErr.Message != "" {
			cause = errors.New(apiErr.Message)
		}
		return errs.NewTransportError(op, status, cause)
	}
}

func setIfNotEmpty(v url.Values, key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		v.Set(key, value)
	}
}
