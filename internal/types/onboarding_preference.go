package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OnboardingPreference holds preferences a user declared at signup. It is the
// only personalization signal that exists before any interaction history.
type OnboardingPreference struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex;column:user_id" json:"user_id"`
	User       *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Categories datatypes.JSON `gorm:"type:jsonb;column:categories" json:"categories"`
	Brands     datatypes.JSON `gorm:"type:jsonb;column:brands" json:"brands"`
	PriceMin   float64        `gorm:"column:price_min" json:"price_min"`
	PriceMax   float64        `gorm:"column:price_max" json:"price_max"`
	CreatedAt  time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (OnboardingPreference) TableName() string {
	return "onboarding_preference"
}

func (o *OnboardingPreference) CategoryAffinities() []Affinity {
	return DecodeAffinities(o.Categories)
}

func (o *OnboardingPreference) BrandAffinities() []Affinity {
	return DecodeAffinities(o.Brands)
}
