package twilio

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Ramo-11/lunalock-texting/pkg/httpclient"
)

const messagesPath = "/2010-04-01/Accounts/%s/Messages.json"

// API is the single outbound operation this service depends on.
type API interface {
	SendMessage(ctx context.Context, from string, to string, body string) (Message, error)
}

type Config struct {
	BaseURL    string        `mapstructure:"base_url"`
	AccountSID string        `mapstructure:"account_sid"`
	AuthToken  string        `mapstructure:"auth_token"`
	FromNumber string        `mapstructure:"from_number"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// Message is the subset of the provider's message resource we care about.
type Message struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
	To     string `json:"to"`
	From   string `json:"from"`
}

type Client struct {
	cfg    Config
	client httpclient.HTTPClient
}

var _ API = (*Client)(nil)

func NewClient(cfg Config, client httpclient.HTTPClient) *Client {
	return &Client{cfg: cfg, client: client}
}

func (c *Client) SendMessage(ctx context.Context, from string, to string, body string) (Message, error) {
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", from)
	form.Set("Body", body)

	headers := map[string]string{
		"Content-Type":  "application/x-www-form-urlencoded",
		"Authorization": c.basicAuth(),
	}

	endpoint := c.cfg.BaseURL + fmt.Sprintf(messagesPath, c.cfg.AccountSID)

	resp, err := c.client.Post(ctx, endpoint, strings.NewReader(form.Encode()), headers)
	if err != nil {
		return Message{}, fmt.Errorf("twilio request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var msg Message
		if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
			return Message{}, fmt.Errorf("decoding error: %w", err)
		}

		return msg, nil
	}

	apiErr := &Error{Status: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
		apiErr.Message = fmt.Sprintf("provider returned status %d", resp.StatusCode)
	}

	return Message{}, apiErr
}

func (c *Client) basicAuth() string {
	credentials := c.cfg.AccountSID + ":" + c.cfg.AuthToken
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(credentials))
}
