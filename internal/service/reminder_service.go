package service

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"wordletracker/internal/models"
	"wordletracker/internal/repository"
)

// ReminderService emails users who have an active streak but have not
// played today's puzzle yet. Runs after the daily puzzle is stored.
type ReminderService struct {
	client     *sesv2.Client
	users      repository.UserStore
	guesses    repository.GuessStore
	stats      *StatsService
	fromEmail  string
	fromName   string
	appBaseURL string
	enabled    bool
}

// NewReminderService creates a new reminder service. If fromEmail is
// empty the service is disabled and sends nothing.
func NewReminderService(awsRegion, fromEmail, fromName, appBaseURL string, users repository.UserStore, guesses repository.GuessStore, stats *StatsService) (*ReminderService, error) {
	s := &ReminderService{
		users:      users,
		guesses:    guesses,
		stats:      stats,
		fromEmail:  fromEmail,
		fromName:   fromName,
		appBaseURL: appBaseURL,
	}

	if fromEmail == "" {
		log.Println("Reminder service disabled: SES_FROM_EMAIL not configured")
		return s, nil
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(awsRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s.client = sesv2.NewFromConfig(cfg)
	s.enabled = true
	log.Printf("Reminder service enabled: from=%s, region=%s", fromEmail, awsRegion)
	return s, nil
}

// IsEnabled returns whether the reminder service is enabled
func (s *ReminderService) IsEnabled() bool {
	return s.enabled
}

// reminderCandidate pairs a user with their streak at risk.
type reminderCandidate struct {
	user   models.User
	streak int
}

// candidates returns users with an email, an active streak, and no
// attempt recorded for date.
func (s *ReminderService) candidates(date models.Date) ([]reminderCandidate, error) {
	users, err := s.users.ListWithEmail()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	var out []reminderCandidate
	for _, user := range users {
		attempts, err := s.guesses.ListByUserAndDate(user.ID, date)
		if err != nil {
			return nil, fmt.Errorf("failed to check attempts for %s: %w", user.Username, err)
		}
		if len(attempts) > 0 {
			continue
		}

		summary, err := s.stats.computeStatsAt(user.ID, date)
		if err != nil {
			return nil, fmt.Errorf("failed to compute stats for %s: %w", user.Username, err)
		}
		if summary.CurrentStreak == 0 {
			continue
		}

		out = append(out, reminderCandidate{user: user, streak: summary.CurrentStreak})
	}

	return out, nil
}

// SendStreakReminders sends one email to each candidate and returns
// the number sent. With the service disabled it still logs who would
// have been mailed.
func (s *ReminderService) SendStreakReminders(ctx context.Context, date models.Date) (int, error) {
	candidates, err := s.candidates(date)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, c := range candidates {
		if !s.enabled {
			log.Printf("Skipping reminder (service disabled): %s streak=%d", c.user.Username, c.streak)
			continue
		}
		if err := s.sendReminder(ctx, c.user, c.streak); err != nil {
			log.Printf("Failed to send reminder to %s: %v", c.user.Username, err)
			continue
		}
		sent++
	}

	return sent, nil
}

func (s *ReminderService) sendReminder(ctx context.Context, user models.User, streak int) error {
	subject := fmt.Sprintf("Your %d-day Wordle streak is waiting", streak)
	body := fmt.Sprintf(
		"Hi %s,\n\nYou're on a %d-day streak and today's puzzle is live. Play now to keep it going:\n\n%s\n",
		user.Username, streak, s.appBaseURL,
	)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)),
		Destination: &types.Destination{
			ToAddresses: []string{user.Email},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
