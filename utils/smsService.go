package utils

import (
	"booksly/config"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// SendVerificationSMS delivers a verification code through the external SMS
// gateway. Delivery failures are the gateway's problem to report; the caller
// still owns the persisted verification row.
func SendVerificationSMS(mobile, code string) error {
	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetHeader("Authorization", config.AppConfig.SMSApiKey).
		SetFormData(map[string]string{
			"sender":  config.AppConfig.SMSSender,
			"to":      mobile,
			"message": fmt.Sprintf("[%s] Verification code: %s", config.AppConfig.SMSSender, code),
		}).
		Post(config.AppConfig.SMSApiURL)
	if err != nil {
		log.Printf("Error while sending verification SMS: %v", err)
		return err
	}

	if resp.StatusCode() != 200 {
		log.Printf("Failed to send verification SMS, response code: %d", resp.StatusCode())
		return fmt.Errorf("failed to send verification SMS, code: %d", resp.StatusCode())
	}

	log.Println("Verification SMS sent successfully to", mobile)
	return nil
}
