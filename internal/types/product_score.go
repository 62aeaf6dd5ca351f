package types

import (
	"time"

	"github.com/google/uuid"
)

// ProductScore rows are recomputed by an external batch job. The
// recommendation engine only ever reads them.
type ProductScore struct {
	ProductID       uuid.UUID `gorm:"type:uuid;primaryKey;column:product_id" json:"product_id"`
	Product         *Product  `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProductID;references:ID" json:"product,omitempty"`
	TrendingScore   float64   `gorm:"not null;default:0;index;column:trending_score" json:"trending_score"`
	PopularityScore float64   `gorm:"not null;default:0;index;column:popularity_score" json:"popularity_score"`
	UpdatedAt       time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (ProductScore) TableName() string {
	return "product_score"
}
