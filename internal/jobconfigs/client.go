package jobconfigs

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

	"golang.org/x/oauth2"
)

const maxResponseBytes = 1 << 20

// SyncResponse is what the remote sync function reports.
type SyncResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	JobsFetched int    `json:"jobsFetched"`
	JobsCreated int    `json:"jobsCreated"`
}

// SyncInvoker starts a remote sync for one config.
type SyncInvoker interface {
	InvokeSync(ctx context.Context, configID string) (SyncResponse, error)
}

// PlatformClient talks to the scraping platform API.
type PlatformClient interface {
	TestConnection(ctx context.Context, token string) ConnectionResult
	ActorInfo(ctx context.Context, actorID string) (ActorInfo, error)
}

// bearerClient returns an HTTP client that attaches token as a bearer header.
// An empty token yields a plain client.
func bearerClient(ctx context.Context, token string, timeout time.Duration) *http.Client {
	var client *http.Client
	if strings.TrimSpace(token) == "" {
		client = &http.Client{}
	} else {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
		client = oauth2.NewClient(ctx, src)
	}
	client.Timeout = timeout
	return client
}

// HTTPInvoker posts {"configId"} to the sync function URL.
type HTTPInvoker struct {
	URL    string
	client *http.Client
}

// NewHTTPInvoker builds an invoker authenticated with key.
func NewHTTPInvoker(functionURL, key string, timeout time.Duration) *HTTPInvoker {
	return &HTTPInvoker{
		URL:    functionURL,
		client: bearerClient(context.Background(), key, timeout),
	}
}

func (i *HTTPInvoker) InvokeSync(ctx context.Context, configID string) (SyncResponse, error) {
	if strings.TrimSpace(i.URL) == "" {
		return SyncResponse{}, fmt.Errorf("sync function: %w", ErrNotConfigured)
	}
	body, err := json.Marshal(map[string]string{"configId": configID})
	if err != nil {
		return SyncResponse{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.URL, bytes.NewReader(body))
	if err != nil {
		return SyncResponse{}, fmt.Errorf("build sync request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := i.client.Do(req)
	if err != nil {
		return SyncResponse{}, fmt.Errorf("invoke sync function: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return SyncResponse{}, fmt.Errorf("read sync response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return SyncResponse{}, fmt.Errorf("sync function returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out SyncResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return SyncResponse{}, fmt.Errorf("decode sync response: %w", err)
	}
	if !out.Success {
		msg := out.Message
		if msg == "" {
			msg = "sync function reported failure"
		}
		return out, fmt.Errorf("sync function: %s", msg)
	}
	return out, nil
}

// HTTPPlatformClient calls the scraping platform's REST API.
type HTTPPlatformClient struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// NewHTTPPlatformClient builds a platform client with a default token.
func NewHTTPPlatformClient(baseURL, token string) *HTTPPlatformClient {
	return &HTTPPlatformClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		Timeout: 15 * time.Second,
	}
}

type platformUser struct {
	Data struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	} `json:"data"`
}

type platformActor struct {
	Data ActorInfo `json:"data"`
}

// TestConnection checks that token is accepted. An empty token falls back to
// the client's default token. Failures are reported in the result.
func (p *HTTPPlatformClient) TestConnection(ctx context.Context, token string) ConnectionResult {
	if strings.TrimSpace(token) == "" {
		token = p.Token
	}
	if strings.TrimSpace(token) == "" {
		return ConnectionResult{Success: false, Message: "No API token configured"}
	}

	var user platformUser
	if err := p.getJSON(ctx, token, "/v2/users/me", &user); err != nil {
		return ConnectionResult{Success: false, Message: "Connection failed: " + err.Error()}
	}
	msg := "Connection successful"
	if user.Data.Username != "" {
		msg = "Connected as " + user.Data.Username
	}
	return ConnectionResult{Success: true, Message: msg}
}

// ActorInfo looks up actor metadata.
func (p *HTTPPlatformClient) ActorInfo(ctx context.Context, actorID string) (ActorInfo, error) {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return ActorInfo{}, fmt.Errorf("%w: actor id is required", ErrInvalidInput)
	}
	var actor platformActor
	if err := p.getJSON(ctx, p.Token, "/v2/acts/"+url.PathEscape(actorID), &actor); err != nil {
		return ActorInfo{}, err
	}
	return actor.Data, nil
}

type statusError struct {
	Status int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("platform returned %d", e.Status)
}

func (p *HTTPPlatformClient) getJSON(ctx context.Context, token, path string, out any) error {
	if strings.TrimSpace(p.BaseURL) == "" {
		return fmt.Errorf("platform api: %w", ErrNotConfigured)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := bearerClient(ctx, token, p.Timeout).Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &statusError{Status: resp.StatusCode}
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode platform response: %w", err)
	}
	return nil
}

var (
	_ SyncInvoker    = (*HTTPInvoker)(nil)
	_ PlatformClient = (*HTTPPlatformClient)(nil)
)
