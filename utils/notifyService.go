package utils

import (
	"dimensions/config"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// SendEventWebhook posts an event payload to the configured webhook endpoint.
// Delivery is fire-and-forget: failures are logged, never surfaced to the
// request that triggered the event.
func SendEventWebhook(event string, payload map[string]interface{}) {
	webhookURL := config.AppConfig.EventWebhookURL
	if webhookURL == "" {
		return
	}

	go func() {
		client := resty.New()
		client.SetTimeout(10 * time.Second)

		resp, err := client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(map[string]interface{}{
				"event":   event,
				"data":    payload,
				"sent_at": time.Now().Unix(),
			}).
			Post(webhookURL)

		if err != nil {
			log.Printf("Failed to deliver %s webhook: %v", event, err)
			return
		}
		if resp.StatusCode() >= 300 {
			log.Printf("Webhook %s rejected with status %d", event, resp.StatusCode())
		}
	}()
}
