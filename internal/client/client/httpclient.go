package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/levantva/crewcenter/internal/client/models"
	"github.com/levantva/crewcenter/internal/common"
)

const (
	DefaultBaseURL = "https://api.ivao.aero/v2"
	DefaultTimeout = 10 * time.Second
)

// HTTPClient talks to the flight-network REST API.
type HTTPClient struct {
	baseURL string
	creds   Credentials
	http    *http.Client
}

// NewHTTPClient returns a client for baseURL. A nil hc gets a client with
// DefaultTimeout.
func NewHTTPClient(baseURL string, creds Credentials, hc *http.Client) *HTTPClient {
	if hc == nil {
		hc = &http.Client{Timeout: DefaultTimeout}
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		http:    hc,
	}
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) Flights(ctx context.Context) ([]models.FlightRecord, error) {
	var out []models.FlightRecord
	if err := c.do(ctx, http.MethodGet, "/flights", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) FlightByID(ctx context.Context, id string) (*models.FlightRecord, error) {
	var out models.FlightRecord
	if err := c.do(ctx, http.MethodGet, "/flights/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) PilotByID(ctx context.Context, id string) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/pilots/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) OnlinePilots(ctx context.Context) ([]models.PilotRecord, error) {
	var out []models.PilotRecord
	if err := c.do(ctx, http.MethodGet, "/pilots/online", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) FlightsByAirport(ctx context.Context, icao string) ([]models.FlightRecord, error) {
	var out []models.FlightRecord
	if err := c.do(ctx, http.MethodGet, "/flights/airport/"+url.PathEscape(icao), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type loginRequest struct {
	Callsign string `json:"callsign"`
	Password string `json:"password"`
}

func (c *HTTPClient) Authenticate(ctx context.Context, callsign, password string) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Callsign: callsign, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	if !c.creds.Complete() {
		return ErrMissingAPICredentials
	}

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", path, err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set(common.AuthorizationHeaderName, "Bearer "+c.creds.BearerToken)
	req.Header.Set(common.APIKeyHeaderName, c.creds.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return mapError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return mapStatus(resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
