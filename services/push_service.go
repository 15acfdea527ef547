package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"backend/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	"gorm.io/gorm"
)

// PushService delivers study reminders through SNS platform endpoints.
type PushService struct {
	db             *gorm.DB
	sns            *awssns.Client
	fcmPlatformArn string
}

func NewPushService(db *gorm.DB) (*PushService, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "eu-central-1"
	}
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &PushService{
		db:             db,
		sns:            awssns.NewFromConfig(cfg),
		fcmPlatformArn: os.Getenv("SNS_FCM_ARN"),
	}, nil
}

type RegisterDeviceReq struct {
	Platform string `json:"platform"` // "android" | "ios"
	Token    string `json:"token"`
}

func (p *PushService) tokenHash(tok string) string {
	h := sha256.Sum256([]byte(tok))
	return hex.EncodeToString(h[:])
}

func (p *PushService) platformArn(platform string) (string, error) {
	switch strings.ToLower(platform) {
	case "android", "ios":
		if p.fcmPlatformArn == "" {
			return "", errors.New("SNS_FCM_ARN not set")
		}
		return p.fcmPlatformArn, nil
	default:
		return "", errors.New("unknown platform")
	}
}

func (p *PushService) RegisterDevice(userID uint, platform, token string) (*models.UserDevice, error) {
	appArn, err := p.platformArn(platform)
	if err != nil {
		return nil, err
	}

	out, err := p.sns.CreatePlatformEndpoint(context.TODO(), &awssns.CreatePlatformEndpointInput{
		PlatformApplicationArn: aws.String(appArn),
		Token:                  aws.String(token),
	})
	if err != nil {
		return nil, err
	}

	hash := p.tokenHash(token)
	dev := models.UserDevice{
		UserID:      userID,
		Platform:    strings.ToLower(platform),
		TokenHash:   hash,
		EndpointARN: aws.ToString(out.EndpointArn),
		Enabled:     true,
	}
	err = p.db.
		Where("user_id = ? AND token_hash = ?", userID, hash).
		Assign(dev).
		FirstOrCreate(&dev).Error
	if err != nil {
		return nil, err
	}
	return &dev, nil
}

func (p *PushService) pushToEndpoint(endpointArn, title, body string, data map[string]string) error {
	notification := map[string]any{
		"notification": map[string]string{"title": title, "body": body},
		"data":         data,
	}
	gcm, _ := json.Marshal(notification)
	payload, _ := json.Marshal(map[string]string{
		"default": body,
		"GCM":     string(gcm),
	})

	_, err := p.sns.Publish(context.TODO(), &awssns.PublishInput{
		TargetArn:        aws.String(endpointArn),
		Message:          aws.String(string(payload)),
		MessageStructure: aws.String("json"),
	})
	return err
}

func (p *PushService) PushToUser(userID uint, title, body string, data map[string]string) {
	var devices []models.UserDevice
	if err := p.db.Where("user_id = ? AND enabled = ?", userID, true).Find(&devices).Error; err != nil {
		return
	}
	for _, dev := range devices {
		if err := p.pushToEndpoint(dev.EndpointARN, title, body, data); err != nil {
			log.Printf("push to user %d failed: %v", userID, err)
		}
	}
}

// SendMilestoneReminder notifies every participant with a registered device
// that a Küchen-Check round is due. Returns the number of users reached.
func (p *PushService) SendMilestoneReminder(milestone int) (int, error) {
	if !validMilestone(milestone) {
		return 0, &ValidationError{Field: "milestone", Reason: fmt.Sprintf("unknown milestone %d", milestone)}
	}

	title := fmt.Sprintf("Küchen-Check %d", milestone)
	body := fmt.Sprintf("Dein Küchen-Check %d steht an. Dokumentiere deine Küche in der App.", milestone)
	data := map[string]string{"milestone": fmt.Sprintf("%d", milestone)}

	var users []models.User
	if err := p.db.Find(&users).Error; err != nil {
		return 0, &PersistenceError{Op: "list users", Err: err}
	}

	pushed := 0
	for _, u := range users {
		var count int64
		p.db.Model(&models.UserDevice{}).
			Where("user_id = ? AND enabled = ?", u.ID, true).
			Count(&count)
		if count > 0 {
			p.PushToUser(u.ID, title, body, data)
			pushed++
		}
	}
	return pushed, nil
}
