package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/vouchly-dev/vouchly/internal/models"
	"github.com/vouchly-dev/vouchly/internal/types"
)

// Owner notifications are delivered through an operator-configured webhook
// (Slack or Discord incoming webhook URL). Which events reach a given owner
// is decided by that owner's notification settings.

type DiscordWebhookField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type DiscordEmbed struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Color       int                   `json:"color"`
	Fields      []DiscordWebhookField `json:"fields"`
	Footer      *DiscordFooter        `json:"footer,omitempty"`
	Timestamp   string                `json:"timestamp"`
}

type DiscordFooter struct {
	Text string `json:"text"`
}

type DiscordWebhookRequest struct {
	Username string         `json:"username"`
	Embeds   []DiscordEmbed `json:"embeds"`
}

type SlackField struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

type SlackAttachment struct {
	Color     string       `json:"color"`
	Title     string       `json:"title"`
	Text      string       `json:"text"`
	Fields    []SlackField `json:"fields"`
	Footer    string       `json:"footer"`
	Timestamp int64        `json:"ts"`
}

type SlackWebhookRequest struct {
	Username    string            `json:"username"`
	Text        string            `json:"text"`
	Attachments []SlackAttachment `json:"attachments"`
}

const (
	ColorBlue  = 962025 // #0ea5e9 - New submission
	ColorGreen = 65280  // #00FF00 - Approved

	Username = "Vouchly"
)

func webhookTarget() (url, kind string) {
	return os.Getenv("NOTIFY_WEBHOOK_URL"), os.Getenv("NOTIFY_WEBHOOK_TYPE")
}

// SendNewTestimonialNotification tells the project owner a testimonial just
// arrived, if the owner opted in.
func SendNewTestimonialNotification(owner models.User, project models.Project, testimonial models.Testimonial) error {
	if !owner.NotificationSettings().EmailOnNewTestimonial {
		return nil
	}

	webhookURL, kind := webhookTarget()
	if webhookURL == "" {
		return nil
	}

	title := "New testimonial received"
	summary := fmt.Sprintf("%s left a %d-star testimonial on %q.", testimonial.Name, testimonial.Rating, project.Name)

	if kind == "discord" {
		payload := DiscordWebhookRequest{
			Username: Username,
			Embeds: []DiscordEmbed{
				{
					Title:       title,
					Description: summary,
					Color:       ColorBlue,
					Fields: []DiscordWebhookField{
						{Name: "Project", Value: project.Name, Inline: true},
						{Name: "Rating", Value: fmt.Sprintf("%d/5", testimonial.Rating), Inline: true},
						{Name: "Status", Value: testimonial.Status, Inline: true},
						{Name: "From", Value: fmt.Sprintf("%s <%s>", testimonial.Name, testimonial.Email), Inline: false},
					},
					Footer:    &DiscordFooter{Text: fmt.Sprintf("Owner: %s", owner.Email)},
					Timestamp: time.Now().Format(time.RFC3339),
				},
			},
		}
		return sendDiscordWebhook(webhookURL, payload)
	}

	payload := SlackWebhookRequest{
		Username: Username,
		Text:     title,
		Attachments: []SlackAttachment{
			{
				Color: "#0ea5e9",
				Title: summary,
				Text:  testimonial.Testimonial,
				Fields: []SlackField{
					{Title: "Project", Value: project.Name, Short: true},
					{Title: "Rating", Value: fmt.Sprintf("%d/5", testimonial.Rating), Short: true},
					{Title: "Status", Value: testimonial.Status, Short: true},
				},
				Footer:    fmt.Sprintf("Owner: %s", owner.Email),
				Timestamp: time.Now().Unix(),
			},
		},
	}
	return sendSlackWebhook(webhookURL, payload)
}

// SendApprovalNotification fires when a testimonial is approved, if the owner
// opted in.
func SendApprovalNotification(owner models.User, project models.Project, testimonial models.Testimonial) error {
	if !owner.NotificationSettings().EmailOnApproval {
		return nil
	}

	webhookURL, kind := webhookTarget()
	if webhookURL == "" {
		return nil
	}

	title := "Testimonial approved"
	summary := fmt.Sprintf("A testimonial from %s on %q is now live.", testimonial.Name, project.Name)

	if kind == "discord" {
		payload := DiscordWebhookRequest{
			Username: Username,
			Embeds: []DiscordEmbed{
				{
					Title:       title,
					Description: summary,
					Color:       ColorGreen,
					Fields: []DiscordWebhookField{
						{Name: "Project", Value: project.Name, Inline: true},
						{Name: "Rating", Value: fmt.Sprintf("%d/5", testimonial.Rating), Inline: true},
					},
					Footer:    &DiscordFooter{Text: fmt.Sprintf("Owner: %s", owner.Email)},
					Timestamp: time.Now().Format(time.RFC3339),
				},
			},
		}
		return sendDiscordWebhook(webhookURL, payload)
	}

	payload := SlackWebhookRequest{
		Username: Username,
		Text:     title,
		Attachments: []SlackAttachment{
			{
				Color: "good",
				Title: summary,
				Fields: []SlackField{
					{Title: "Project", Value: project.Name, Short: true},
					{Title: "Rating", Value: fmt.Sprintf("%d/5", testimonial.Rating), Short: true},
				},
				Footer:    fmt.Sprintf("Owner: %s", owner.Email),
				Timestamp: time.Now().Unix(),
			},
		},
	}
	return sendSlackWebhook(webhookURL, payload)
}

// SendReportDigest delivers a periodic stats summary for one user.
func SendReportDigest(owner models.User, period string, projectCount int64, stats types.ProjectStats) error {
	webhookURL, kind := webhookTarget()
	if webhookURL == "" {
		return nil
	}

	title := fmt.Sprintf("Your %s testimonial report", period)
	summary := fmt.Sprintf("%d projects, %d submissions, %d approved, %d rejected, %d pending.",
		projectCount, stats.TotalSubmissions, stats.ApprovedCount, stats.RejectedCount, PendingCount(stats))

	if kind == "discord" {
		payload := DiscordWebhookRequest{
			Username: Username,
			Embeds: []DiscordEmbed{
				{
					Title:       title,
					Description: summary,
					Color:       ColorBlue,
					Footer:      &DiscordFooter{Text: fmt.Sprintf("Owner: %s", owner.Email)},
					Timestamp:   time.Now().Format(time.RFC3339),
				},
			},
		}
		return sendDiscordWebhook(webhookURL, payload)
	}

	payload := SlackWebhookRequest{
		Username: Username,
		Text:     title,
		Attachments: []SlackAttachment{
			{
				Color:     "#0ea5e9",
				Title:     summary,
				Footer:    fmt.Sprintf("Owner: %s", owner.Email),
				Timestamp: time.Now().Unix(),
			},
		},
	}
	return sendSlackWebhook(webhookURL, payload)
}

func sendDiscordWebhook(webhookURL string, payload DiscordWebhookRequest) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal Discord payload: %w", err)
	}

	resp, err := http.Post(webhookURL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to send Discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("Discord webhook returned status %d", resp.StatusCode)
	}

	return nil
}

func sendSlackWebhook(webhookURL string, payload SlackWebhookRequest) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal Slack payload: %w", err)
	}

	resp, err := http.Post(webhookURL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to send Slack webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("Slack webhook returned status %d", resp.StatusCode)
	}

	return nil
}
