package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var (
	sesClient *ses.Client
	sesOnce   sync.Once
)

func mailClient() (*ses.Client, error) {
	var initErr error
	sesOnce.Do(func() {
		cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
		if err != nil {
			initErr = err
			return
		}
		sesClient = ses.NewFromConfig(cfg)
	})
	if sesClient == nil {
		return nil, fmt.Errorf("SES client unavailable: %v", initErr)
	}
	return sesClient, nil
}

// generic SES sender
func sendEmail(to string, subject string, body string) error {
	client, err := mailClient()
	if err != nil {
		return err
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	_, err = client.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

func SendWelcomeEmail(to string, participantID string) error {
	subject := "Willkommen bei Eintüten"
	body := fmt.Sprintf(
		"Hallo %s\n\nDanke für deine Teilnahme an der Studie. "+
			"Starte mit deinem ersten Küchen-Check am Tag 1.\n\nDein Eintüten-Team",
		participantID,
	)
	return sendEmail(to, subject, body)
}

func SendMilestoneReminderEmail(to string, milestone int) error {
	subject := fmt.Sprintf("Erinnerung: Küchen-Check %d", milestone)
	body := fmt.Sprintf(
		"Hallo\n\nDein Küchen-Check %d steht an. Dokumentiere deine Küche in der App.\n\nDein Eintüten-Team",
		milestone,
	)
	return sendEmail(to, subject, body)
}
