package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/pedalmarket-backend/internal/logger"
	"github.com/yungbote/pedalmarket-backend/internal/types"
)

type ProductRepo interface {
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Product, error)
	// GetActive returns active products matching the filters, ordered by
	// popularity score descending. Categories and brands combine as OR when
	// both are given. Zero-valued filters are ignored.
	GetActive(ctx context.Context, tx *gorm.DB, categories, brands []string, priceMin, priceMax float64, listingType string, exclude []uuid.UUID, limit int) ([]*types.Product, error)
	// GetByKeywords returns IDs of active products whose name matches any
	// keyword, ordered by popularity score descending.
	GetByKeywords(ctx context.Context, tx *gorm.DB, keywords []string, listingType string, limit int) ([]uuid.UUID, error)
}

type productRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	return &productRepo{db: db, log: baseLog.With("repo", "ProductRepo")}
}

func (r *productRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Product
	if len(ids) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *productRepo) GetActive(ctx context.Context, tx *gorm.DB, categories, brands []string, priceMin, priceMax float64, listingType string, exclude []uuid.UUID, limit int) ([]*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	query := transaction.WithContext(ctx).
		Model(&types.Product{}).
		Joins("LEFT JOIN product_score ON product_score.product_id = product.id").
		Where("product.active = ?", true)

	switch {
	case len(categories) > 0 && len(brands) > 0:
		query = query.Where("product.category IN ? OR product.brand IN ?", categories, brands)
	case len(categories) > 0:
		query = query.Where("product.category IN ?", categories)
	case len(brands) > 0:
		query = query.Where("product.brand IN ?", brands)
	}
	if priceMax > 0 {
		query = query.Where("product.price >= ? AND product.price <= ?", priceMin, priceMax)
	}
	if listingType != "" {
		query = query.Where("product.listing_type = ?", listingType)
	}
	if len(exclude) > 0 {
		query = query.Where("product.id NOT IN ?", exclude)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var results []*types.Product
	if err := query.
		Order("COALESCE(product_score.popularity_score, 0) DESC, product.id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *productRepo) GetByKeywords(ctx context.Context, tx *gorm.DB, keywords []string, listingType string, limit int) ([]uuid.UUID, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var ids []uuid.UUID
	if len(keywords) == 0 {
		return ids, nil
	}

	query := transaction.WithContext(ctx).
		Model(&types.Product{}).
		Joins("LEFT JOIN product_score ON product_score.product_id = product.id").
		Where("product.active = ?", true)

	match := transaction.Session(&gorm.Session{NewDB: true})
	for _, kw := range keywords {
		match = match.Or("product.name ILIKE ?", "%"+kw+"%")
	}
	query = query.Where(match)

	if listingType != "" {
		query = query.Where("product.listing_type = ?", listingType)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.
		Order("COALESCE(product_score.popularity_score, 0) DESC, product.id ASC").
		Pluck("product.id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
