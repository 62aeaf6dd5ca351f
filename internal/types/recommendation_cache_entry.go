package types

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RecommendationCacheEntry is an expiring snapshot of a computed
// recommendation list for one (user, type) key. Entries are never updated in
// place: a recompute inserts a new row and readers pick the newest
// non-expired one. Stale rows are only removed by an explicit refresh.
type RecommendationCacheEntry struct {
	ID                 uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID             uuid.UUID      `gorm:"type:uuid;not null;index:idx_rec_cache_key;column:user_id" json:"user_id"`
	RecommendationType string         `gorm:"not null;index:idx_rec_cache_key;column:recommendation_type" json:"recommendation_type"`
	ProductIDs         datatypes.JSON `gorm:"type:jsonb;column:product_ids" json:"product_ids"`
	AlgorithmVersion   string         `gorm:"not null;column:algorithm_version" json:"algorithm_version"`
	CreatedAt          time.Time      `gorm:"not null;default:now()" json:"created_at"`
	ExpiresAt          time.Time      `gorm:"not null;index;column:expires_at" json:"expires_at"`
}

func (RecommendationCacheEntry) TableName() string {
	return "recommendation_cache_entry"
}

// DecodeProductIDs returns the cached list in rank order. Rows with
// malformed payloads decode as empty, which callers treat as a miss.
func (e *RecommendationCacheEntry) DecodeProductIDs() []uuid.UUID {
	if len(e.ProductIDs) == 0 {
		return nil
	}
	var raw []string
	if err := json.Unmarshal(e.ProductIDs, &raw); err != nil {
		return nil
	}
	out := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil
		}
		out = append(out, id)
	}
	return out
}

// EncodeProductIDs serializes a ranked ID list for storage.
func EncodeProductIDs(ids []uuid.UUID) datatypes.JSON {
	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.String())
	}
	b, _ := json.Marshal(raw)
	return datatypes.JSON(b)
}
