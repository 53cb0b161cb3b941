// Package backend talks to the platform's REST API on behalf of one order
// context. Each context has its own path prefix; everything else is shared.
package backend

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

	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/infrastructure/logging"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

var (
	ErrUnknownContext   = errors.New("unknown order context")
	ErrMissingBaseURL   = errors.New("backend base url is required")
	ErrEmptyCredentials = errors.New("backend returned no credentials")
)

// APIError is a non-2xx answer from the backend.
type APIError struct {
	StatusCode int
	Path       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend %s returned status %d: %s", e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend %s returned status %d", e.Path, e.StatusCode)
}

// PathPrefix returns the API prefix of an order context.
func PathPrefix(octx entities.OrderContext) (string, error) {
	switch octx {
	case entities.ContextAdmin:
		return "/admin/v1", nil
	case entities.ContextTenant:
		return "/tenant/v1", nil
	case entities.ContextClient:
		return "/api/v1", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownContext, octx)
}

type Client struct {
	baseURL    string
	prefix     string
	token      string
	httpClient *http.Client
}

var (
	_ interfaces.IRegionsProvider     = (*Client)(nil)
	_ interfaces.ICountriesProvider   = (*Client)(nil)
	_ interfaces.IPricingProvider     = (*Client)(nil)
	_ interfaces.IOrderSubmitter      = (*Client)(nil)
	_ interfaces.IProvisioningFetcher = (*Client)(nil)
	_ interfaces.ICredentialsProvider = (*Client)(nil)
)

type Option func(*Client)

// WithHTTPClient replaces the default client (30s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func NewClient(baseURL, token string, octx entities.OrderContext, opts ...Option) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return nil, ErrMissingBaseURL
	}
	prefix, err := PathPrefix(octx)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:    base,
		prefix:     prefix,
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) ListRegions(ctx context.Context) ([]entities.Region, error) {
	var out []entities.Region
	if err := c.getList(ctx, "/regions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListCountries(ctx context.Context) ([]entities.Country, error) {
	var out []entities.Country
	if err := c.getList(ctx, "/countries", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListPricing(ctx context.Context, region, productType string) ([]entities.PricingRow, error) {
	q := url.Values{}
	q.Set("productable_type", productType)
	if strings.TrimSpace(region) != "" {
		q.Set("region", region)
	}
	var out []entities.PricingRow
	if err := c.getList(ctx, "/product-pricing", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SubmitOrder posts the order and hands back the raw body for normalization.
func (c *Client) SubmitOrder(ctx context.Context, payload entities.OrderPayload) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order: %w", err)
	}
	raw, err := c.do(ctx, http.MethodPost, "/object-storage/orders", nil, body)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(raw), nil
}

func (c *Client) FetchSteps(ctx context.Context, ref entities.EntityRef) ([]entities.ProvisioningStep, error) {
	path := "/" + string(ref.Kind) + "/" + url.PathEscape(ref.ID) + "/provisioning"
	if ref.Kind == entities.EntityObjectStorage {
		path = "/object-storage/accounts/" + url.PathEscape(ref.ID) + "/provisioning"
	}

	raw, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	var body struct {
		Steps []entities.ProvisioningStep `json:"steps"`
	}
	data, err := unwrapData(raw)
	if err != nil {
		return nil, err
	}
	// Both {"steps": [...]} and a bare list are in use.
	if len(data) > 0 && data[0] == '[' {
		if err := json.Unmarshal(data, &body.Steps); err != nil {
			return nil, fmt.Errorf("failed to parse steps: %w", err)
		}
		return body.Steps, nil
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("failed to parse steps: %w", err)
	}
	return body.Steps, nil
}

func (c *Client) FetchCredential(ctx context.Context, accountID string) (entities.Credential, error) {
	raw, err := c.do(ctx, http.MethodGet, "/object-storage/accounts/"+url.PathEscape(accountID)+"/credentials", nil, nil)
	if err != nil {
		return entities.Credential{}, err
	}
	data, err := unwrapData(raw)
	if err != nil {
		return entities.Credential{}, err
	}
	var body struct {
		Endpoint  string `json:"endpoint"`
		KeyID     string `json:"key_id"`
		AccessKey string `json:"access_key"`
		Secret    string `json:"secret"`
		SecretKey string `json:"secret_key"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return entities.Credential{}, fmt.Errorf("failed to parse credentials: %w", err)
	}
	cred := entities.Credential{
		Endpoint: body.Endpoint,
		KeyID:    firstNonEmpty(body.KeyID, body.AccessKey),
		Secret:   firstNonEmpty(body.Secret, body.SecretKey),
	}
	if cred.KeyID == "" || cred.Secret == "" {
		return entities.Credential{}, ErrEmptyCredentials
	}
	return cred, nil
}

func (c *Client) getList(ctx context.Context, path string, q url.Values, out any) error {
	raw, err := c.do(ctx, http.MethodGet, path, q, nil)
	if err != nil {
		return err
	}
	data, err := unwrapData(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s response: %w", path, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, q url.Values, body []byte) ([]byte, error) {
	target := c.baseURL + c.prefix + path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.L().Warn("[backend][client] request failed", zap.String("method", method), zap.String("path", c.prefix+path), zap.Error(err))
		return nil, fmt.Errorf("failed to call backend: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Path: c.prefix + path, Message: errorMessage(raw)}
		logging.L().Warn("[backend][client] non-2xx response", zap.String("path", apiErr.Path), zap.Int("status", resp.StatusCode))
		return nil, apiErr
	}
	return raw, nil
}

// unwrapData strips a {"data": ...} envelope when one is present.
func unwrapData(raw []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return json.RawMessage("null"), nil
	}
	if trimmed[0] != '{' {
		return trimmed, nil
	}
	var env map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if data, ok := env["data"]; ok && len(bytes.TrimSpace(data)) > 0 && !bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return data, nil
	}
	return trimmed, nil
}

func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return firstNonEmpty(body.Message, body.Error)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
