// client.go - HTTP-Client fuer den grag Service
//
// Dieses Modul enthaelt die Client-Struktur, den Request-Helper und eine
// Methode pro API-Endpunkt. Das CLI benutzt diesen Client fuer alle
// Server-Interaktionen.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"runtime"

	"github.com/archai3d/grag/envconfig"
	"github.com/archai3d/grag/version"
)

// Client encapsulates client state for interacting with the grag service.
// Use [ClientFromEnvironment] to create new Clients.
type Client struct {
	base *url.URL
	http *http.Client
}

func checkError(resp *http.Response, body []byte) error {
	if resp.StatusCode < http.StatusBadRequest {
		return nil
	}

	apiError := StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	if err := json.Unmarshal(body, &apiError); err != nil {
		// Use the full body as the message if we fail to decode a response.
		apiError.ErrorMessage = string(body)
	}

	return apiError
}

// ClientFromEnvironment creates a new [Client] using configuration from the
// environment variable GRAG_HOST, which points to the network host and port
// on which the grag service is listening:
//
//	<scheme>://<host>:<port>
//
// If the variable is not specified, the default host and port are used.
func ClientFromEnvironment() (*Client, error) {
	return &Client{
		base: envconfig.Host(),
		http: http.DefaultClient,
	}, nil
}

// NewClient creates a client against an explicit base URL.
func NewClient(base *url.URL, http *http.Client) *Client {
	return &Client{
		base: base,
		http: http,
	}
}

func (c *Client) do(ctx context.Context, method, path string, reqData, respData any) error {
	var reqBody io.Reader
	if reqData != nil {
		data, err := json.Marshal(reqData)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	requestURL := c.base.JoinPath(path)
	request, err := http.NewRequestWithContext(ctx, method, requestURL.String(), reqBody)
	if err != nil {
		return err
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", fmt.Sprintf("grag/%s (%s %s) Go/%s", version.Version, runtime.GOARCH, runtime.GOOS, runtime.Version()))

	respObj, err := c.http.Do(request)
	if err != nil {
		return err
	}
	defer respObj.Body.Close()

	respBody, err := io.ReadAll(respObj.Body)
	if err != nil {
		return err
	}

	if err := checkError(respObj, respBody); err != nil {
		return err
	}

	if len(respBody) > 0 && respData != nil {
		if err := json.Unmarshal(respBody, respData); err != nil {
			return err
		}
	}
	return nil
}

// Version returns the server version string.
func (c *Client) Version(ctx context.Context) (string, error) {
	var resp struct {
		Version string `json:"version"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/version", nil, &resp); err != nil {
		return "", err
	}
	return resp.Version, nil
}

// Heartbeat checks that the server is reachable.
func (c *Client) Heartbeat(ctx context.Context) error {
	return c.do(ctx, http.MethodHead, "/", nil, nil)
}

// LayerSchedule requests per-layer λ/δ sequences.
func (c *Client) LayerSchedule(ctx context.Context, req *LayerScheduleRequest) (*LayerScheduleResponse, error) {
	var resp LayerScheduleResponse
	if err := c.do(ctx, http.MethodPost, "/api/schedule/layers", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TimestepSchedule requests a per-timestep coefficient schedule.
func (c *Client) TimestepSchedule(ctx context.Context, req *TimestepScheduleRequest) (*TimestepScheduleResponse, error) {
	var resp TimestepScheduleResponse
	if err := c.do(ctx, http.MethodPost, "/api/schedule/timesteps", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ResolveTier resolves a resolution against a tier table.
func (c *Client) ResolveTier(ctx context.Context, req *TierResolveRequest) (*TierResolveResponse, error) {
	var resp TierResolveResponse
	if err := c.do(ctx, http.MethodPost, "/api/tiers/resolve", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Validate checks a (λ, δ) pair.
func (c *Client) Validate(ctx context.Context, req *ValidateRequest) (*ValidateResponse, error) {
	var resp ValidateResponse
	if err := c.do(ctx, http.MethodPost, "/api/validate", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Presets lists the preset catalog.
func (c *Client) Presets(ctx context.Context) (*PresetsResponse, error) {
	var resp PresetsResponse
	if err := c.do(ctx, http.MethodGet, "/api/presets", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Preset fetches a single preset by key.
func (c *Client) Preset(ctx context.Context, key string) (*PresetEntry, error) {
	var resp PresetEntry
	if err := c.do(ctx, http.MethodGet, "/api/presets/"+key, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Plan requests the combined layer/timestep/tier plan.
func (c *Client) Plan(ctx context.Context, req *PlanRequest) (*PlanResponse, error) {
	var resp PlanResponse
	if err := c.do(ctx, http.MethodPost, "/api/plan", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
