package utils

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

// SendSMS dispatches a text message through the configured gateway. Callers
// treat delivery as best-effort: an error is logged, never surfaced to the
// client.
func SendSMS(phone, message string) error {
	apiKey := os.Getenv("SMS_API_KEY")
	apiURL := os.Getenv("SMS_API_URL")

	if apiKey == "" || apiURL == "" {
		return fmt.Errorf("sms gateway credentials are not set")
	}

	client := resty.New().SetTimeout(15 * time.Second)
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", apiKey).
		SetBody(map[string]string{
			"sender_id": os.Getenv("SMS_SENDER_ID"),
			"numbers":   phone,
			"message":   message,
		}).
		Post(apiURL)

	if err != nil {
		return err
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("sms gateway request failed with status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	return nil
}
