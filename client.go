package eventbridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws/credentials"
	v4 "github.com/aws/aws-sdk-go/aws/signer/v4"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// Config configures a Client.
type Config struct {
	Region          string `validate:"required"`
	AccessKeyID     string `validate:"required"`
	SecretAccessKey string `validate:"required"`
	// SessionToken is required only for temporary credentials.
	SessionToken string

	// Endpoint overrides the derived https://<service>.<region>.amazonaws.com
	// base URL. Mainly for tests and local stacks.
	Endpoint string `validate:"omitempty,url"`

	// HTTPClient defaults to a client with a 30s timeout.
	HTTPClient *http.Client

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Client executes Request descriptors against the remote API: it resolves the
// endpoint, serializes the body, signs with SigV4 and decodes the response.
// It adds no behavior to the descriptor itself - no retries, no pagination.
//
// A Client is safe for concurrent use.
type Client struct {
	cfg    Config
	creds  *credentials.Credentials
	signer *v4.Signer
	http   *http.Client
	logger *slog.Logger
}

// NewClient validates cfg and returns a ready Client.
func NewClient(cfg Config) (*Client, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}
	creds := credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SessionToken)
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		creds:  creds,
		signer: v4.NewSigner(creds),
		http:   httpClient,
		logger: logger,
	}, nil
}

// Response is a decoded 2xx reply.
type Response struct {
	StatusCode int
	Body       json.RawMessage
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v any) error {
	if len(r.Body) == 0 {
		return nil
	}
	return json.Unmarshal(r.Body, v)
}

// Do sends one request. Non-2xx replies are returned as a *APIError; every
// other failure (serialization, signing, transport) is returned as-is.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	payload, err := json.Marshal(req.Body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	method := req.Method
	if method == "" {
		method = http.MethodPost
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL(req.Service)+req.Path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build http request: %w", err)
	}
	for _, h := range req.Headers {
		httpReq.Header.Set(h.Name, h.Value)
	}
	httpReq.Header.Set("amz-sdk-invocation-id", uuid.NewString())

	if _, err := c.signer.Sign(httpReq, bytes.NewReader(payload), string(req.Service), c.cfg.Region, time.Now()); err != nil {
		return nil, fmt.Errorf("sign request: %w", err)
	}

	c.logger.Debug("sending request",
		slog.String("service", string(req.Service)),
		slog.String("method", method),
		slog.String("path", req.Path))

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeAPIError(resp.StatusCode, body)
		c.logger.Debug("request failed",
			slog.String("type", apiErr.Type),
			slog.Int("status", apiErr.StatusCode))
		return nil, apiErr
	}

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}

// baseURL resolves the service endpoint. The Service value doubles as the
// endpoint host prefix and the SigV4 signing name.
func (c *Client) baseURL(service Service) string {
	if c.cfg.Endpoint != "" {
		return strings.TrimSuffix(c.cfg.Endpoint, "/")
	}
	return fmt.Sprintf("https://%s.%s.amazonaws.com", service, c.cfg.Region)
}
