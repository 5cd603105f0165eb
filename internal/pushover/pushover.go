// Package pushover is a minimal client for the Pushover message API:
// one POST of form-encoded token, user, and message. Responses outside
// the 2xx range come back as an *APIError carrying the raw body, so
// Pushover's own explanation reaches the user unedited.
package pushover

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DefaultEndpoint is the production message API.
const DefaultEndpoint = "https://api.pushover.net/1/messages.json"

// APIError is a non-success answer from the API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("pushover: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("pushover: unexpected status %d: %s", e.StatusCode, e.Body)
}

// Client posts messages to a single Pushover endpoint. Requests run
// without a timeout: the end-of-countdown send should not give up just
// because the network is slow, and the user watches the attempt in the
// status line anyway.
type Client struct {
	endpoint string
	httpc    *http.Client
}

// New returns a client for the production API.
func New() *Client {
	return NewWithEndpoint(DefaultEndpoint)
}

// NewWithEndpoint returns a client posting to endpoint. Tests point
// this at a local server.
func NewWithEndpoint(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		httpc:    &http.Client{},
	}
}

// Send delivers message to the user identified by user, on behalf of
// the application identified by token. A nil return means Pushover
// accepted the message; anything else is a transport error or an
// *APIError.
func (c *Client) Send(token, user, message string) error {
	form := url.Values{}
	form.Set("token", token)
	form.Set("user", user)
	form.Set("message", message)

	resp, err := c.httpc.PostForm(c.endpoint, form)
	if err != nil {
		return fmt.Errorf("post to %s: %w", c.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}
	return nil
}
