package types

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Affinity is one (key, score) pair inside a preference set. Scores are
// non-negative; ordering inside the stored JSON is not trusted.
type Affinity struct {
	Key   string  `json:"key"`
	Score float64 `json:"score"`
}

// DecodeAffinities parses a stored affinity set and re-sorts it descending
// by score. Upstream ordering is never trusted (ties keep the stored order).
// Malformed JSON yields an empty slice rather than an error.
func DecodeAffinities(raw datatypes.JSON) []Affinity {
	if len(raw) == 0 {
		return nil
	}
	var out []Affinity
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// TopAffinityKeys returns up to n keys from a decoded affinity set.
func TopAffinityKeys(affinities []Affinity, n int) []string {
	if n > len(affinities) {
		n = len(affinities)
	}
	keys := make([]string, 0, n)
	for _, a := range affinities[:n] {
		keys = append(keys, a.Key)
	}
	return keys
}

// UserPreferenceProfile is derived out-of-band from interaction history.
// The engine consumes it read-only; InteractionCount decides cold-start
// versus warm-start planning.
type UserPreferenceProfile struct {
	ID                 uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID             uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex;column:user_id" json:"user_id"`
	User               *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	FavoriteCategories datatypes.JSON `gorm:"type:jsonb;column:favorite_categories" json:"favorite_categories"`
	FavoriteBrands     datatypes.JSON `gorm:"type:jsonb;column:favorite_brands" json:"favorite_brands"`
	FavoriteStores     datatypes.JSON `gorm:"type:jsonb;column:favorite_stores" json:"favorite_stores"`
	FavoriteKeywords   datatypes.JSON `gorm:"type:jsonb;column:favorite_keywords" json:"favorite_keywords"`
	FavoritePriceMin   float64        `gorm:"column:favorite_price_min" json:"favorite_price_min"`
	FavoritePriceMax   float64        `gorm:"column:favorite_price_max" json:"favorite_price_max"`
	InteractionCount   int            `gorm:"not null;default:0;column:interaction_count" json:"interaction_count"`
	CreatedAt          time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (UserPreferenceProfile) TableName() string {
	return "user_preference_profile"
}

func (p *UserPreferenceProfile) Categories() []Affinity {
	return DecodeAffinities(p.FavoriteCategories)
}

func (p *UserPreferenceProfile) Brands() []Affinity {
	return DecodeAffinities(p.FavoriteBrands)
}

func (p *UserPreferenceProfile) Stores() []Affinity {
	return DecodeAffinities(p.FavoriteStores)
}

func (p *UserPreferenceProfile) Keywords() []Affinity {
	return DecodeAffinities(p.FavoriteKeywords)
}
