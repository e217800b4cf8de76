package line

import (
	"fmt"

	"github.com/line/line-bot-sdk-go/v7/linebot"

	"interview-scheduler/internal/pkg/logger"
)

// Client pushes operator alerts to a single LINE user.
type Client struct {
	*linebot.Client
	to  string
	log logger.Logger
}

// NewClient creates a LINE client that alerts the given user.
func NewClient(channelSecret, channelToken, alertUserID string, log logger.Logger) (*Client, error) {
	if channelSecret == "" || channelToken == "" || alertUserID == "" {
		return nil, fmt.Errorf("🔴 ERROR: CHANNEL_SECRET, CHANNEL_ACCESS_TOKEN and ALERT_LINE_USER_ID must be set")
	}
	bot, err := linebot.New(channelSecret, channelToken)
	if err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to create LINE Bot client: %w", err)
	}
	log.Info("Successfully created LINE Bot client for alerts.")
	return &Client{Client: bot, to: alertUserID, log: log}, nil
}

// PushMessages sends one or more messages to the alert recipient.
func (c *Client) PushMessages(messages ...linebot.SendingMessage) error {
	_, err := c.PushMessage(c.to, messages...).Do()
	if err != nil {
		return err
	}
	c.log.Debug("Successfully sent push message.")
	return nil
}

// Alert pushes a plain text alert.
func (c *Client) Alert(text string) error {
	if err := c.PushMessages(linebot.NewTextMessage(text)); err != nil {
		return fmt.Errorf("push alert: %w", err)
	}
	return nil
}
