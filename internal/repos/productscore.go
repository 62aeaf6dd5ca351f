package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/pedalmarket-backend/internal/logger"
	"github.com/yungbote/pedalmarket-backend/internal/types"
)

// ProductScoreRepo reads the batch-maintained score table. The engine never
// writes these rows.
type ProductScoreRepo interface {
	GetTopTrending(ctx context.Context, tx *gorm.DB, categories []string, listingType string, exclude []uuid.UUID, limit int) ([]uuid.UUID, error)
	GetTopPopular(ctx context.Context, tx *gorm.DB, categories []string, listingType string, exclude []uuid.UUID, limit int) ([]uuid.UUID, error)
}

type productScoreRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductScoreRepo(db *gorm.DB, baseLog *logger.Logger) ProductScoreRepo {
	return &productScoreRepo{db: db, log: baseLog.With("repo", "ProductScoreRepo")}
}

func (r *productScoreRepo) GetTopTrending(ctx context.Context, tx *gorm.DB, categories []string, listingType string, exclude []uuid.UUID, limit int) ([]uuid.UUID, error) {
	return r.top(ctx, tx, "trending_score", categories, listingType, exclude, limit)
}

func (r *productScoreRepo) GetTopPopular(ctx context.Context, tx *gorm.DB, categories []string, listingType string, exclude []uuid.UUID, limit int) ([]uuid.UUID, error) {
	return r.top(ctx, tx, "popularity_score", categories, listingType, exclude, limit)
}

func (r *productScoreRepo) top(ctx context.Context, tx *gorm.DB, scoreColumn string, categories []string, listingType string, exclude []uuid.UUID, limit int) ([]uuid.UUID, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	query := transaction.WithContext(ctx).
		Model(&types.ProductScore{}).
		Joins("JOIN product ON product.id = product_score.product_id").
		Where("product.active = ?", true).
		Where("product_score."+scoreColumn+" > 0")

	if len(categories) > 0 {
		query = query.Where("product.category IN ?", categories)
	}
	if listingType != "" {
		query = query.Where("product.listing_type = ?", listingType)
	}
	if len(exclude) > 0 {
		query = query.Where("product_score.product_id NOT IN ?", exclude)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var ids []uuid.UUID
	if err := query.
		Order("product_score." + scoreColumn + " DESC, product_score.product_id ASC").
		Pluck("product_score.product_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
