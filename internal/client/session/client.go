// Package session issues authenticated API requests. An access token rejected
// with 401 is refreshed once and the request retried with the new token.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"satoru/internal/client/observer"
	"satoru/internal/errors"

	"golang.org/x/sync/singleflight"
)

const (
	// DefaultRefreshPath exchanges {refresh} for {access}.
	DefaultRefreshPath = "/api/auth/token/refresh/"

	defaultTimeout = 30 * time.Second
	refreshKey     = "refresh"
)

var errNoRefreshToken = errors.New("no refresh token held")

// Config configures a Client.
type Config struct {
	BaseURL     string
	RefreshPath string
	Timeout     time.Duration
	HTTPClient  *http.Client
	Logger      *slog.Logger
}

// Request describes one API call. Body is kept as bytes so it can be re-sent.
type Request struct {
	Method      string
	Path        string
	Query       url.Values
	Body        []byte
	ContentType string
	// SkipRefresh returns a 401 as *APIError without the refresh flow,
	// for endpoints such as sign-in where 401 means bad credentials.
	SkipRefresh bool
}

// NewJSONRequest encodes body as the JSON payload of a request.
func NewJSONRequest(method, path string, body any) (*Request, error) {
	req := &Request{Method: method, Path: path}
	if body == nil {
		return req, nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode request body")
	}
	req.Body = data
	req.ContentType = "application/json"

	return req, nil
}

// Response is a successful (2xx) API response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the "data" member of the response envelope into out,
// or the whole body when the response is not enveloped.
func (r *Response) Decode(out any) error {
	if out == nil || len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(r.Body, &env); err == nil && len(env.Data) > 0 {
		return errors.Wrap(json.Unmarshal(env.Data, out), "failed to decode response data")
	}

	return errors.Wrap(json.Unmarshal(r.Body, out), "failed to decode response")
}

// Client sends requests with the store's access token attached.
type Client struct {
	baseURL     string
	refreshPath string
	httpClient  *http.Client
	timeout     time.Duration
	store       *Store
	reauth      *observer.Registry[error]
	refreshes   singleflight.Group
	logger      *slog.Logger
}

// NewClient creates a Client reading and writing credentials through store.
func NewClient(cfg Config, store *Store) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("invalid API base URL %q", cfg.BaseURL)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	refreshPath := cfg.RefreshPath
	if refreshPath == "" {
		refreshPath = DefaultRefreshPath
	}

	if store == nil {
		store = NewStore()
	}

	return &Client{
		baseURL:     strings.TrimRight(base.String(), "/"),
		refreshPath: refreshPath,
		httpClient:  httpClient,
		timeout:     timeout,
		store:       store,
		reauth:      observer.NewRegistry[error](logger),
		logger:      logger.With(slog.String("component", "session_client")),
	}, nil
}

// Store returns the credential store used by the client.
func (c *Client) Store() *Store {
	return c.store
}

// OnReauth registers fn to run whenever the session is lost and the user must
// sign in again. The returned function removes the registration.
func (c *Client) OnReauth(fn func(cause error)) func() {
	return c.reauth.Add(fn)
}

// Do sends req. Non-2xx responses are returned as *APIError. A 401 triggers one
// token refresh and one retry; if the refresh is impossible or fails, the
// credentials are cleared and ErrReauthRequired is returned.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	access := c.store.CurrentAccessToken()

	resp, err := c.send(ctx, req, access)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized || req.SkipRefresh {
		return checkStatus(resp)
	}

	access, err = c.refreshAccessToken(ctx, access)
	if err != nil {
		return nil, c.requireReauth(ctx, err)
	}

	resp, err = c.send(ctx, req, access)
	if err != nil {
		return nil, err
	}

	return checkStatus(resp)
}

// DoJSON sends req and decodes the response data into out.
func (c *Client) DoJSON(ctx context.Context, req *Request, out any) error {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}

	return resp.Decode(out)
}

// refreshAccessToken exchanges the refresh token for a new access token.
// Concurrent callers share one exchange, and a caller whose stale token was
// already replaced gets the replacement without another exchange. The exchange
// outlives any single caller; a cancelled caller stops waiting for it.
func (c *Client) refreshAccessToken(ctx context.Context, stale string) (string, error) {
	results := c.refreshes.DoChan(refreshKey, func() (any, error) {
		tokens := c.store.Tokens()
		if tokens.Access != "" && tokens.Access != stale {
			return tokens.Access, nil
		}
		if tokens.Refresh == "" {
			return "", errNoRefreshToken
		}

		exchangeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()

		access, err := c.exchange(exchangeCtx, tokens.Refresh)
		if err != nil {
			return "", err
		}
		c.store.setAccessToken(access)
		c.logger.Debug("Access token refreshed")

		return access, nil
	})

	select {
	case <-ctx.Done():
		return "", errors.WithStack(ctx.Err())
	case res := <-results:
		if res.Err != nil {
			return "", res.Err
		}

		return res.Val.(string), nil
	}
}

func (c *Client) exchange(ctx context.Context, refresh string) (string, error) {
	req, err := NewJSONRequest(http.MethodPost, c.refreshPath, map[string]string{"refresh": refresh})
	if err != nil {
		return "", err
	}
	req.SkipRefresh = true

	resp, err := c.send(ctx, req, "")
	if err != nil {
		return "", err
	}
	resp, err = checkStatus(resp)
	if err != nil {
		return "", errors.Wrap(err, "refresh rejected")
	}

	var out struct {
		Access string `json:"access"`
	}
	if err := resp.Decode(&out); err != nil {
		return "", err
	}
	if out.Access == "" {
		return "", errors.New("refresh response has no access token")
	}

	return out.Access, nil
}

// requireReauth ends the session. A cancelled caller or a timed-out exchange
// keeps the session, since the refresh never got an answer.
func (c *Client) requireReauth(ctx context.Context, cause error) error {
	if ctx.Err() != nil {
		return errors.WithStack(ctx.Err())
	}
	if errors.Is(cause, context.Canceled) || errors.Is(cause, context.DeadlineExceeded) {
		return errors.Wrap(cause, "token refresh interrupted")
	}

	c.logger.Info("Session expired, sign-in required", slog.Any("cause", cause))
	c.store.Clear()
	c.reauth.Notify(cause)

	return errors.WithMessage(ErrReauthRequired, cause.Error())
}

func (c *Client) send(ctx context.Context, req *Request, access string) (*Response, error) {
	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.ContentType != "" {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}
	if access != "" {
		httpReq.Header.Set("Authorization", "Bearer "+access)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", req.Method, req.Path)
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read response of %s %s", req.Method, req.Path)
	}

	return &Response{StatusCode: httpResp.StatusCode, Header: httpResp.Header, Body: data}, nil
}

func checkStatus(resp *Response) (*Response, error) {
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return resp, nil
	}

	return nil, newAPIError(resp.StatusCode, resp.Body)
}
