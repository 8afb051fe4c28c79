package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ErrDuplicateKey is returned when an insert collides with a unique
// constraint outside the expected upsert path.
var ErrDuplicateKey = errors.New("duplicate key")

// MenuRepository is the data layer for menu seeding. Every Upsert method
// looks the record up by its natural key, creates it when missing, and
// otherwise updates only the fields that differ, so re-applying an
// unchanged definition touches nothing.
type MenuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{
		db: db,
	}
}

// Counts holds store row counts for the summary block.
type Counts struct {
	Categories int64
	Sizes      int64
	Products   int64
	Modifiers  int64
}

// UpsertCategory creates the category keyed by name, or updates its slug,
// description, and display order when they differ. The record's ID is set
// on return.
func (r *MenuRepository) UpsertCategory(ctx context.Context, cat *Category) (bool, error) {
	var existing Category
	err := r.db.WithContext(ctx).Where("name = ?", cat.Name).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := r.db.WithContext(ctx).Create(cat).Error; err != nil {
			return false, fmt.Errorf("create category %q: %w", cat.Name, translateErr(err))
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("find category %q: %w", cat.Name, err)
	}

	updates := map[string]any{}
	if existing.Slug != cat.Slug {
		updates["slug"] = cat.Slug
	}
	if existing.Description != cat.Description {
		updates["description"] = cat.Description
	}
	if existing.DisplayOrder != cat.DisplayOrder {
		updates["display_order"] = cat.DisplayOrder
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
			return false, fmt.Errorf("update category %q: %w", cat.Name, translateErr(err))
		}
	}
	cat.ID = existing.ID
	return false, nil
}

// UpsertSize creates the size keyed by (category, name), or updates its
// display order when it differs.
func (r *MenuRepository) UpsertSize(ctx context.Context, size *Size) (bool, error) {
	var existing Size
	err := r.db.WithContext(ctx).
		Where("category_id = ? AND name = ?", size.CategoryID, size.Name).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := r.db.WithContext(ctx).Create(size).Error; err != nil {
			return false, fmt.Errorf("create size %q: %w", size.Name, translateErr(err))
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("find size %q: %w", size.Name, err)
	}

	if existing.DisplayOrder != size.DisplayOrder {
		err := r.db.WithContext(ctx).
			Model(&existing).
			Update("display_order", size.DisplayOrder).Error
		if err != nil {
			return false, fmt.Errorf("update size %q: %w", size.Name, translateErr(err))
		}
	}
	size.ID = existing.ID
	return false, nil
}

// UpsertProduct creates the product keyed by name, or updates the fields
// that differ. It reports (created, updated).
func (r *MenuRepository) UpsertProduct(ctx context.Context, p *Product) (bool, bool, error) {
	var existing Product
	err := r.db.WithContext(ctx).Where("name = ?", p.Name).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
			return false, false, fmt.Errorf("create product %q: %w", p.Name, translateErr(err))
		}
		return true, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("find product %q: %w", p.Name, err)
	}

	updates := map[string]any{}
	if existing.Slug != p.Slug {
		updates["slug"] = p.Slug
	}
	if existing.Description != p.Description {
		updates["description"] = p.Description
	}
	if !existing.BasePrice.Equal(p.BasePrice) {
		updates["base_price"] = p.BasePrice
	}
	if existing.HasSizes != p.HasSizes {
		updates["has_sizes"] = p.HasSizes
	}
	if existing.IsAvailable != p.IsAvailable {
		updates["is_available"] = p.IsAvailable
	}
	if existing.CategoryID != p.CategoryID {
		updates["category_id"] = p.CategoryID
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
			return false, false, fmt.Errorf("update product %q: %w", p.Name, translateErr(err))
		}
	}
	p.ID = existing.ID
	return false, len(updates) > 0, nil
}

// UpsertPriceModifier creates the modifier keyed by (product, size), or
// updates its delta when it differs.
func (r *MenuRepository) UpsertPriceModifier(ctx context.Context, m *PriceModifier) (bool, error) {
	var existing PriceModifier
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND size_id = ?", m.ProductID, m.SizeID).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
			return false, fmt.Errorf("create price modifier: %w", translateErr(err))
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("find price modifier: %w", err)
	}

	if !existing.Delta.Equal(m.Delta) {
		err := r.db.WithContext(ctx).Model(&existing).Update("delta", m.Delta).Error
		if err != nil {
			return false, fmt.Errorf("update price modifier: %w", translateErr(err))
		}
	}
	m.ID = existing.ID
	return false, nil
}

// DeleteStaleModifiers removes a product's modifier rows for sizes no
// longer in its definition. An empty keep list clears every modifier, for
// products that dropped size-based pricing. It reports rows deleted.
func (r *MenuRepository) DeleteStaleModifiers(ctx context.Context, productID uint, keepSizeIDs []uint) (int64, error) {
	q := r.db.WithContext(ctx).Where("product_id = ?", productID)
	if len(keepSizeIDs) > 0 {
		q = q.Where("size_id NOT IN ?", keepSizeIDs)
	}
	res := q.Delete(&PriceModifier{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete stale price modifiers: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// GetProductByName loads a product with its category and modifiers.
func (r *MenuRepository) GetProductByName(ctx context.Context, name string) (*Product, error) {
	var product Product
	if err := r.db.WithContext(ctx).
		Preload("Modifiers").
		Preload("Modifiers.Size").
		Preload("Category").
		Where("name = ?", name).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err // Other DB error
	}
	return &product, nil
}

// Counts returns store row counts for the post-run summary.
func (r *MenuRepository) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	for _, q := range []struct {
		model any
		dst   *int64
	}{
		{&Category{}, &c.Categories},
		{&Size{}, &c.Sizes},
		{&Product{}, &c.Products},
		{&PriceModifier{}, &c.Modifiers},
	} {
		if err := r.db.WithContext(ctx).Model(q.model).Count(q.dst).Error; err != nil {
			return Counts{}, err
		}
	}
	return c, nil
}

// translateErr maps driver-level unique violations (Postgres class 23505,
// or gorm's translated sentinel) onto ErrDuplicateKey so callers can report
// them as data errors.
func translateErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, pgErr.Detail)
	}
	// lib/pq connections handed to gorm via postgres.Config{Conn: ...}.
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, pqErr.Detail)
	}
	return err
}
