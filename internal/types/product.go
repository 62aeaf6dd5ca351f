package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	ListingTypeSale    = "sale"
	ListingTypeAuction = "auction"
	ListingTypeWanted  = "wanted"
)

func ValidListingType(t string) bool {
	switch t {
	case ListingTypeSale, ListingTypeAuction, ListingTypeWanted:
		return true
	}
	return false
}

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"not null;column:name" json:"name"`
	Category    string    `gorm:"not null;index;column:category" json:"category"`
	Subcategory string    `gorm:"column:subcategory" json:"subcategory"`
	Brand       string    `gorm:"index;column:brand" json:"brand"`
	StoreID     uuid.UUID `gorm:"type:uuid;index;column:store_id" json:"store_id"`
	Price       float64   `gorm:"not null;column:price" json:"price"`
	ListingType string    `gorm:"not null;index;column:listing_type" json:"listing_type"`
	Active      bool      `gorm:"not null;default:true;index;column:active" json:"active"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Product) TableName() string {
	return "product"
}
