// internal/domain/subscriber/service.go
package subscriber

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Service handles newsletter subscriptions
type Service struct {
	db *gorm.DB
}

// NewService creates a new subscriber service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Subscribe registers an email address. Subscribing twice with the
// same address is idempotent.
func (s *Service) Subscribe(ctx context.Context, email string) (*Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("invalid email address")
	}

	sub := &Subscriber{
		Email:        email,
		SubscribedAt: time.Now().UTC(),
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
		Create(sub).Error
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe %s: %w", email, err)
	}

	// On conflict the insert is skipped; load the existing row.
	if sub.ID == 0 {
		if err := s.db.WithContext(ctx).Where("email = ?", email).First(sub).Error; err != nil {
			return nil, fmt.Errorf("failed to load subscriber %s: %w", email, err)
		}
	}
	return sub, nil
}

// List returns all subscribers, oldest first
func (s *Service) List(ctx context.Context) ([]Subscriber, error) {
	var subs []Subscriber
	if err := s.db.WithContext(ctx).Order("subscribed_at").Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	return subs, nil
}
