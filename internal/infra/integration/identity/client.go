package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var ErrInvalidToken = errors.New("identity: invalid or expired token")

// Client talks to the managed identity provider (GoTrue-style API). We never
// mint or verify tokens ourselves; the provider owns the user table.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// GetUser resolves a caller's bearer token into the provider's user record.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*User, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("identity provider not configured")
	}

	url := fmt.Sprintf("%s/auth/v1/user", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrInvalidToken
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("identity provider returned %d: %s", resp.StatusCode, string(body))
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("parsing identity response: %w", err)
	}
	if user.ID == "" {
		return nil, ErrInvalidToken
	}

	// Role may live in app_metadata depending on provider config.
	if user.Role == "" || user.Role == "authenticated" {
		if user.AppMetadata.Role != "" {
			user.Role = user.AppMetadata.Role
		}
	}

	return &user, nil
}
