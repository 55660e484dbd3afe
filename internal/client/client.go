package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/BruksfildServices01/table-reservations/internal/auth"
)

// Anonymous sends requests without credentials.
const Anonymous auth.Role = ""

// Client talks to the reservation API. Every call names the role whose
// stored token is attached; there is no implicit "current" role.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  *TokenStore
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithTokenStore(s *TokenStore) Option {
	return func(c *Client) { c.tokens = s }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		tokens:  NewTokenStore(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) Tokens() *TokenStore {
	return c.tokens
}

// APIError is a non-2xx answer from a REST endpoint.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// GraphQLError carries the messages of a GraphQL response errors array.
type GraphQLError struct {
	Messages []string
}

func (e *GraphQLError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// Login exchanges credentials for a token and stores it under the role the
// server granted.
func (c *Client) Login(ctx context.Context, username, password string) (auth.Role, error) {
	body, err := json.Marshal(map[string]string{"username": username, "password": password})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "login request")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "read login response")
	}

	if resp.StatusCode != http.StatusOK {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(raw, &e)
		return "", &APIError{Status: resp.StatusCode, Message: e.Error}
	}

	var out struct {
		Token string    `json:"token"`
		Role  auth.Role `json:"role"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", errors.Wrap(err, "decode login response")
	}

	c.tokens.Set(out.Role, out.Token)
	return out.Role, nil
}

func (c *Client) Logout(role auth.Role) {
	c.tokens.Clear(role)
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Do runs a GraphQL operation as role and decodes data into out.
func (c *Client) Do(ctx context.Context, role auth.Role, query string, vars map[string]any, out any) error {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: vars})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/graphql", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	if role != Anonymous {
		token, ok := c.tokens.Get(role)
		if !ok {
			return fmt.Errorf("no token stored for role %q", role)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "graphql request")
	}
	defer resp.Body.Close()

	var gr graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return &APIError{Status: resp.StatusCode, Message: "undecodable graphql response"}
	}

	if len(gr.Errors) > 0 {
		msgs := make([]string, 0, len(gr.Errors))
		for _, e := range gr.Errors {
			msgs = append(msgs, e.Message)
		}
		return &GraphQLError{Messages: msgs}
	}

	if out == nil {
		return nil
	}
	return errors.Wrap(json.Unmarshal(gr.Data, out), "decode graphql data")
}
