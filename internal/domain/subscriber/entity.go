// internal/domain/subscriber/entity.go
package subscriber

import (
	"time"
)

// Subscriber represents a newsletter subscription.
type Subscriber struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

// TableName overrides the table name
func (Subscriber) TableName() string {
	return "subscribers"
}
