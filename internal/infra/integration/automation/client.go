package automation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"
)

// Client posts automation events to the third-party webhook endpoints.
// One shot, no retries: callers treat failure as non-fatal because the
// database write already happened.
type Client struct {
	startURL  string
	engineURL string
	token     string
	http      *http.Client
}

func NewClient(startURL, engineURL, token string) *Client {
	return &Client{
		startURL:  startURL,
		engineURL: engineURL,
		token:     token,
		http:      &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) StartCampaign(ctx context.Context, input StartCampaignInput) error {
	if c.startURL == "" {
		log.Println("[AUTOMATION] start webhook not configured, skipping")
		return fmt.Errorf("automation start webhook not configured")
	}

	body, err := json.Marshal(input)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.startURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.addAuthHeader(req)

	return c.do(req, "start campaign")
}

// TriggerEngine posts multipart: a JSON "payload" part plus an optional
// training file part, which is how the automation service expects it.
func (c *Client) TriggerEngine(ctx context.Context, input TriggerEngineInput) error {
	if c.engineURL == "" {
		log.Println("[AUTOMATION] engine webhook not configured, skipping")
		return fmt.Errorf("automation engine webhook not configured")
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	meta, err := json.Marshal(input)
	if err != nil {
		return err
	}
	if err := writer.WriteField("payload", string(meta)); err != nil {
		return err
	}

	if input.TrainingFile != nil {
		part, err := writer.CreateFormFile("training_file", input.TrainingFile.Name)
		if err != nil {
			return err
		}
		if _, err := part.Write(input.TrainingFile.Content); err != nil {
			return err
		}
	}

	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.engineURL, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.addAuthHeader(req)

	return c.do(req, "trigger engine")
}

func (c *Client) addAuthHeader(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func (c *Client) do(req *http.Request, event string) error {
	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[AUTOMATION] %s webhook failed: %v", event, err)
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[AUTOMATION] %s webhook returned %d: %s", event, resp.StatusCode, string(respBody))
		return fmt.Errorf("automation webhook error: %d", resp.StatusCode)
	}

	var result webhookResponse
	if err := json.Unmarshal(respBody, &result); err == nil && !result.Success && result.Message != "" {
		log.Printf("[AUTOMATION] %s rejected: %s", event, result.Message)
		return fmt.Errorf("automation: %s", result.Message)
	}

	log.Printf("[AUTOMATION] %s webhook delivered", event)
	return nil
}
