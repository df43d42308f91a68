// Package client talks to an apero server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/GustavoCaso/apero/internal/config"
	"github.com/GustavoCaso/apero/internal/crypto"
	"github.com/GustavoCaso/apero/internal/protocol"
)

const defaultTimeout = 30 * time.Second

var (
	ErrNotFound = errors.New("entry not found")
	// ErrUnableToOpen is returned when a response is not sealed with our key.
	ErrUnableToOpen = errors.New("unable to open response box")
)

// StatusError is returned for unexpected HTTP responses.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

// Client performs the copy, paste, move and list operations.
type Client struct {
	conf       config.ClientConfig
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpClient = c }
}

// New creates a client. conf is expected to be validated.
func New(conf config.ClientConfig, opts ...Option) *Client {
	c := &Client{
		conf:       conf,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Copy stores content on the server and returns the id of the new entry.
func (c *Client) Copy(ctx context.Context, content []byte) (uuid.UUID, error) {
	payload := protocol.CopyRequest{
		Content:   content,
		Signature: crypto.Sign(c.conf.SignPrivateKey, content),
	}

	data, err := c.do(ctx, http.MethodPost, "copy", payload, http.StatusAccepted)
	if err != nil {
		return uuid.Nil, fmt.Errorf("copy: %w", err)
	}

	id, err := uuid.FromBytes(data)
	if err != nil {
		return uuid.Nil, fmt.Errorf("copy: invalid id in response: %w", err)
	}
	return id, nil
}

// Paste returns the content of entry id without removing it.
// uuid.Nil selects the most recent entry.
func (c *Client) Paste(ctx context.Context, id uuid.UUID) ([]byte, error) {
	data, err := c.do(ctx, http.MethodPost, "paste", c.entryRequest(id), http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("paste: %w", err)
	}
	return data, nil
}

// Move returns the content of entry id and removes it from the server.
// uuid.Nil selects the most recent entry.
func (c *Client) Move(ctx context.Context, id uuid.UUID) ([]byte, error) {
	data, err := c.do(ctx, http.MethodDelete, "move", c.entryRequest(id), http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("move: %w", err)
	}
	return data, nil
}

// List returns the ids of all entries, oldest first.
func (c *Client) List(ctx context.Context) ([]uuid.UUID, error) {
	payload := protocol.ListRequest{
		Signature: crypto.Sign(c.conf.SignPrivateKey, protocol.ListSignedContent),
	}

	data, err := c.do(ctx, http.MethodPost, "list", payload, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}

	var resp protocol.ListResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("list: unable to unmarshal response: %w", err)
	}
	return resp.Entries, nil
}

func (c *Client) entryRequest(id uuid.UUID) protocol.EntryRequest {
	req := protocol.EntryRequest{ID: id}
	req.Signature = crypto.Sign(c.conf.SignPrivateKey, req.SignedContent())
	return req
}

// do seals payload, sends it and opens the response.
func (c *Client) do(ctx context.Context, method, endpoint string, payload any, expected int) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	box, err := crypto.SecretBoxSeal(data, c.conf.PSKey)
	if err != nil {
		return nil, err
	}

	url := strings.TrimSuffix(c.conf.Endpoint, "/") + "/api/v1/" + endpoint
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(box))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch resp.StatusCode {
	case expected:
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	content, ok := crypto.SecretBoxOpen(body, c.conf.PSKey)
	if !ok {
		return nil, ErrUnableToOpen
	}
	return content, nil
}
