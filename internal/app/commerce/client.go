/*
Package commerce implements the client for the upstream commerce platform's GraphQL API.

All catalog, cart, and account operations the storefront depends on go through this
package. Requests are plain JSON-over-HTTP POSTs carrying a query document and variables;
responses are decoded from the standard GraphQL envelope. Transport failures and
application-level error lists are both consolidated into a single returned error, so
callers never observe a partially applied result.
*/
package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"storefront/internal/pkg/logx"
)

const (
	// requestTimeout bounds a single upstream round-trip. Cart mutations suspend the
	// storefront request for their full duration, so this stays short.
	requestTimeout = 10 * time.Second
)

// Client is the upstream GraphQL API client. It is safe for concurrent use.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a Client for the given GraphQL endpoint URL.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// gqlRequest is the JSON body of every upstream call.
type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// gqlError is a single entry of the GraphQL error list.
type gqlError struct {
	Message string `json:"message"`
}

// gqlEnvelope is the standard GraphQL response envelope.
type gqlEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

// execute posts the query with its variables to the upstream endpoint and unmarshals the
// data payload into out. When token is non-empty it is attached as a bearer credential so
// the upstream can authorize operations against credential-scoped carts and accounts.
//
// Any non-success outcome (transport error, non-2xx status, error list, missing data) is
// returned as a single error; out is left untouched in that case.
func (c *Client) execute(ctx context.Context, query string, variables map[string]any, token string, out any) error {
	body, err := json.Marshal(gqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("commerce: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("commerce: build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("commerce: request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		logx.Warn("Upstream commerce API returned non-success status",
			"status", res.StatusCode,
		)
		return fmt.Errorf("commerce: unexpected status %d %s", res.StatusCode, http.StatusText(res.StatusCode))
	}

	var envelope gqlEnvelope
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("commerce: decode response: %w", err)
	}

	if len(envelope.Errors) > 0 {
		messages := make([]string, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			messages = append(messages, e.Message)
		}
		return errors.New(strings.Join(messages, "; "))
	}

	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return errors.New("commerce: no data returned")
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("commerce: decode data: %w", err)
		}
	}

	return nil
}
