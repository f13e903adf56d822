package chatbot

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/shopforge/shopforge/pkg/clients"
)

var ErrNotConfigured = errors.New("chatbot: api token is not configured")

// Client registers shop tenants with the chat assistant backend. The backend
// validates SSO tokens minted with the shop's signing secret, so the secret
// is shared with it at registration time.
type Client struct {
	apiURL string
	token  string
	client clients.HTTPClientI
}

func New(apiURL, token string, client clients.HTTPClientI) *Client {
	return &Client{apiURL: apiURL, token: token, client: client}
}

func (c *Client) headers() http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+c.token)
	return h
}

// RegisterTenant creates (or re-activates) the shop's tenant on the chatbot
// backend and returns the assigned bot id.
func (c *Client) RegisterTenant(slug, shopName, ssoSecret string) (string, error) {
	if c.token == "" {
		return "", ErrNotConfigured
	}

	body, _ := json.Marshal(map[string]string{
		"slug":        slug,
		"name":        shopName,
		"signing_key": ssoSecret,
	})
	status, respBody, err := c.client.Post(c.apiURL+"/v1/tenants", c.headers(), body)
	if err != nil {
		return "", fmt.Errorf("chatbot: register tenant %s: %w", slug, err)
	}
	if status >= 400 {
		return "", fmt.Errorf("chatbot: register tenant %s: unexpected status %d", slug, status)
	}

	var resp struct {
		BotID string `json:"bot_id"`
	}
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("chatbot: parse register response: %w", err)
	}
	if resp.BotID == "" {
		return "", errors.New("chatbot: register response missing bot id")
	}
	return resp.BotID, nil
}
