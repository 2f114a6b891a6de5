package onesignal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/spf13/viper"
)

const defaultEndpoint = "https://onesignal.com/api/v1"

const errAllPlayersNotSubscribed = "All included players are not subscribed"

// OneSignalClient submits push notifications through the OneSignal
// REST API.
type OneSignalClient struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

func NewClient(client *http.Client) *OneSignalClient {
	endpoint := viper.GetString("onesignal.endpoint")
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	return &OneSignalClient{
		httpClient: client,
		endpoint:   endpoint,
		apiKey:     viper.GetString("onesignal.key"),
	}
}

type NotificationRequest struct {
	AppID          string                 `json:"app_id"`
	TemplateID     string                 `json:"template_id,omitempty"`
	Headings       map[string]string      `json:"headings,omitempty"`
	Contents       map[string]string      `json:"contents,omitempty"`
	Filters        []map[string]string    `json:"filters,omitempty"`
	Data           map[string]interface{} `json:"data,omitempty"`
	LocalChannelID string                 `json:"existing_android_channel_id,omitempty"`
}

type notificationResponse struct {
	ID     string   `json:"id"`
	Errors []string `json:"errors"`
}

type ErrNotificationRejected struct {
	errors []string
}

func (e *ErrNotificationRejected) Error() string {
	return fmt.Sprintf("notification rejected: %v", e.errors)
}

// IsErrAllPlayersNotSubscribed reports whether an error only means the
// targeted devices are not subscribed. Callers usually treat this as a
// non-failure.
func IsErrAllPlayersNotSubscribed(err error) bool {
	e, ok := err.(*ErrNotificationRejected)
	if !ok {
		return false
	}

	for _, msg := range e.errors {
		if msg == errAllPlayersNotSubscribed {
			return true
		}
	}
	return false
}

func (c *OneSignalClient) SendNotification(ctx context.Context, notification *NotificationRequest) error {
	reqBody, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/notifications", c.endpoint), bytes.NewReader(reqBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Basic %s", c.apiKey))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var result notificationResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return err
	}

	if len(result.Errors) > 0 {
		return &ErrNotificationRejected{errors: result.Errors}
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("onesignal responds with status: %d", resp.StatusCode)
	}

	return nil
}
