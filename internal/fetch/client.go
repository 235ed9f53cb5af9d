package fetch

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/jonathan/gator-life/internal/schemas"
	"github.com/jonathan/gator-life/internal/types"
)

// Endpoint paths consumed by the front page.
const (
	UserPathPrefix = "/api/user/"
	DocumentsPath  = "/api/documents"
)

// DefaultUserID is the fixed user the email action asks for.
const DefaultUserID = "HELLO"

// Client fetches the two API responses the front page depends on.
type Client struct {
	baseURL string
	opts    *Options
}

// NewClient creates a client rooted at baseURL (scheme and host, optional path prefix).
func NewClient(baseURL string, opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		opts:    opts,
	}
}

// BaseURL returns the root the client resolves endpoint paths against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchEmail retrieves the user record for userID and returns it once it passes schema checks.
func (c *Client) FetchEmail(ctx context.Context, userID string) (*types.UserResponse, error) {
	if userID == "" {
		userID = DefaultUserID
	}
	endpoint := c.baseURL + UserPathPrefix + url.PathEscape(userID)

	result, err := URL(ctx, endpoint, c.opts)
	if err != nil {
		return nil, err
	}

	var resp types.UserResponse
	if err := decode(endpoint, schemas.UserResponse, result.Body, &resp); err != nil {
		return nil, err
	}
	if err := resp.Validate(); err != nil {
		return nil, malformed(endpoint, "user response failed validation", err)
	}
	return &resp, nil
}

// FetchDocuments retrieves the document list and returns it once it passes schema checks.
func (c *Client) FetchDocuments(ctx context.Context) (*types.DocumentsResponse, error) {
	endpoint := c.baseURL + DocumentsPath

	result, err := URL(ctx, endpoint, c.opts)
	if err != nil {
		return nil, err
	}

	var resp types.DocumentsResponse
	if err := decode(endpoint, schemas.DocumentsResponse, result.Body, &resp.Documents); err != nil {
		return nil, err
	}
	if err := resp.Validate(); err != nil {
		return nil, malformed(endpoint, "documents response failed validation", err)
	}
	return &resp, nil
}

// decode gates body on the named schema before unmarshalling it into out.
func decode(endpoint, schemaName string, body []byte, out any) error {
	if err := schemas.Validate(schemaName, body); err != nil {
		return malformed(endpoint, "response does not match schema", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return malformed(endpoint, "failed to decode response", err)
	}
	return nil
}

func malformed(endpoint, message string, cause error) *Error {
	return &Error{
		URL:     endpoint,
		Kind:    KindMalformed,
		Message: message,
		Cause:   cause,
	}
}
