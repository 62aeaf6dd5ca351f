package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	InteractionView   = "view"
	InteractionLike   = "like"
	InteractionUnlike = "unlike"
	InteractionSearch = "search"
)

func ValidInteractionType(t string) bool {
	switch t {
	case InteractionView, InteractionLike, InteractionUnlike, InteractionSearch:
		return true
	}
	return false
}

// InteractionEvent is append-only. UserID is nil for anonymous traffic,
// ProductID is nil for search events. Rows are never mutated after insert.
type InteractionEvent struct {
	ID               uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID           *uuid.UUID `gorm:"type:uuid;index;column:user_id" json:"user_id,omitempty"`
	User             *User      `gorm:"constraint:OnDelete:SET NULL;foreignKey:UserID;references:ID" json:"user,omitempty"`
	ProductID        *uuid.UUID `gorm:"type:uuid;index;column:product_id" json:"product_id,omitempty"`
	Product          *Product   `gorm:"constraint:OnDelete:SET NULL;foreignKey:ProductID;references:ID" json:"product,omitempty"`
	Type             string     `gorm:"not null;index;column:type" json:"type"`
	SearchQuery      string     `gorm:"column:search_query" json:"search_query,omitempty"`
	DwellTimeSeconds *int       `gorm:"column:dwell_time_seconds" json:"dwell_time_seconds,omitempty"`
	CreatedAt        time.Time  `gorm:"not null;default:now();index" json:"created_at"`
}

func (InteractionEvent) TableName() string {
	return "interaction_event"
}
