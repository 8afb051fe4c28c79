package seeder

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/marinapizzas/menu-seeder/config"
	"github.com/marinapizzas/menu-seeder/database"
	"github.com/marinapizzas/menu-seeder/models"
)

func newTestStore(t *testing.T) (*gorm.DB, *models.MenuRepository) {
	t.Helper()

	db, err := database.Open(config.Config{
		DBDriver: "sqlite",
		DBSource: filepath.Join(t.TempDir(), "menu.db"),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return db, models.NewMenuRepository(db)
}

func fixtureMenu() Menu {
	return Menu{Categories: []CategoryDef{
		{
			Name:         "Meat Pizzas",
			Description:  "Premium meat pizzas",
			DisplayOrder: 1,
			Sizes: []SizeDef{
				{Name: "Small", DisplayOrder: 1},
				{Name: "Large", DisplayOrder: 2},
				{Name: "Family", DisplayOrder: 3},
			},
			Products: []ProductDef{
				{
					Name:        "Meat Pizza X",
					Description: "Hot salami and meatballs",
					SizePrices: map[string]decimal.Decimal{
						"Small":  d(14),
						"Large":  d(20),
						"Family": d(23),
					},
				},
			},
		},
		{
			Name:         "Pasta",
			Description:  "Pasta dishes",
			DisplayOrder: 2,
			Products: []ProductDef{
				{Name: "Bolognese", Description: "Napoli meat sauce", Price: d(15)},
			},
		},
	}}
}

func TestRunSeedsEmptyStore(t *testing.T) {
	_, repo := newTestStore(t)
	var out bytes.Buffer
	s := NewSeeder(repo, &out)

	rep, err := s.Run(context.Background(), fixtureMenu())
	require.NoError(t, err)

	assert.Equal(t, 2, rep.CategoriesCreated)
	assert.Equal(t, 3, rep.SizesCreated)
	assert.Equal(t, 2, rep.ProductsCreated)
	assert.Equal(t, 2, rep.ModifiersCreated)
	assert.Equal(t, int64(2), rep.Counts.Categories)
	assert.Equal(t, int64(3), rep.Counts.Sizes)
	assert.Equal(t, int64(2), rep.Counts.Products)
	assert.Equal(t, int64(2), rep.Counts.Modifiers)

	assert.Contains(t, out.String(), "✓ Created category: Meat Pizzas")
	assert.Contains(t, out.String(), "✓ Created product: Meat Pizza X ($14)")
	assert.Contains(t, out.String(), "Menu import complete!")
}

func TestRunIsIdempotent(t *testing.T) {
	_, repo := newTestStore(t)
	s := NewSeeder(repo, &bytes.Buffer{})

	first, err := s.Run(context.Background(), fixtureMenu())
	require.NoError(t, err)

	second, err := s.Run(context.Background(), fixtureMenu())
	require.NoError(t, err)

	assert.Zero(t, second.CategoriesCreated)
	assert.Zero(t, second.SizesCreated)
	assert.Zero(t, second.ProductsCreated)
	assert.Zero(t, second.ProductsUpdated)
	assert.Zero(t, second.ModifiersCreated)
	assert.Zero(t, second.ModifiersDeleted)
	assert.Equal(t, first.Counts, second.Counts)
}

func TestRunRemovesStaleModifiers(t *testing.T) {
	_, repo := newTestStore(t)
	s := NewSeeder(repo, &bytes.Buffer{})

	_, err := s.Run(context.Background(), fixtureMenu())
	require.NoError(t, err)

	t.Run("dropped size loses its modifier row", func(t *testing.T) {
		menu := fixtureMenu()
		delete(menu.Categories[0].Products[0].SizePrices, "Family")

		rep, err := s.Run(context.Background(), menu)
		require.NoError(t, err)
		assert.Equal(t, 1, rep.ModifiersDeleted)

		pizza, err := repo.GetProductByName(context.Background(), "Meat Pizza X")
		require.NoError(t, err)
		require.Len(t, pizza.Modifiers, 1)
		assert.Equal(t, "Large", pizza.Modifiers[0].Size.Name)
	})

	t.Run("product dropping size-based pricing loses all modifiers", func(t *testing.T) {
		menu := fixtureMenu()
		menu.Categories[0].Products[0].SizePrices = nil
		menu.Categories[0].Products[0].Price = d(14)

		rep, err := s.Run(context.Background(), menu)
		require.NoError(t, err)
		assert.Equal(t, 1, rep.ModifiersDeleted)

		pizza, err := repo.GetProductByName(context.Background(), "Meat Pizza X")
		require.NoError(t, err)
		assert.False(t, pizza.HasSizes)
		assert.Empty(t, pizza.Modifiers)
	})
}

func TestRunPriceChangeUpdatesOnlyThatProduct(t *testing.T) {
	_, repo := newTestStore(t)
	s := NewSeeder(repo, &bytes.Buffer{})

	first, err := s.Run(context.Background(), fixtureMenu())
	require.NoError(t, err)

	menu := fixtureMenu()
	menu.Categories[1].Products[0].Price = d(17)

	second, err := s.Run(context.Background(), menu)
	require.NoError(t, err)

	assert.Zero(t, second.ProductsCreated)
	assert.Equal(t, 1, second.ProductsUpdated)
	assert.Equal(t, first.Counts, second.Counts)

	pasta, err := repo.GetProductByName(context.Background(), "Bolognese")
	require.NoError(t, err)
	assert.True(t, pasta.BasePrice.Equal(d(17)), "expected 17, got %s", pasta.BasePrice)

	pizza, err := repo.GetProductByName(context.Background(), "Meat Pizza X")
	require.NoError(t, err)
	assert.True(t, pizza.BasePrice.Equal(d(14)), "expected 14, got %s", pizza.BasePrice)
}

func TestRunSizedProduct(t *testing.T) {
	_, repo := newTestStore(t)
	s := NewSeeder(repo, &bytes.Buffer{})

	_, err := s.Run(context.Background(), fixtureMenu())
	require.NoError(t, err)

	pizza, err := repo.GetProductByName(context.Background(), "Meat Pizza X")
	require.NoError(t, err)

	assert.True(t, pizza.HasSizes)
	assert.True(t, pizza.BasePrice.Equal(d(14)), "base price should be the smallest size's price")
	require.Len(t, pizza.Modifiers, 2)

	deltas := map[string]decimal.Decimal{}
	for _, m := range pizza.Modifiers {
		deltas[m.Size.Name] = m.Delta
	}
	assert.True(t, deltas["Large"].Equal(d(6)), "Large delta: got %s", deltas["Large"])
	assert.True(t, deltas["Family"].Equal(d(9)), "Family delta: got %s", deltas["Family"])
}

func TestRunSinglePriceProduct(t *testing.T) {
	_, repo := newTestStore(t)
	s := NewSeeder(repo, &bytes.Buffer{})

	_, err := s.Run(context.Background(), fixtureMenu())
	require.NoError(t, err)

	pasta, err := repo.GetProductByName(context.Background(), "Bolognese")
	require.NoError(t, err)

	assert.False(t, pasta.HasSizes)
	assert.True(t, pasta.BasePrice.Equal(d(15)))
	assert.Empty(t, pasta.Modifiers)
}

func TestRunRecreatesDeletedProduct(t *testing.T) {
	db, repo := newTestStore(t)
	s := NewSeeder(repo, &bytes.Buffer{})

	_, err := s.Run(context.Background(), fixtureMenu())
	require.NoError(t, err)

	pizza, err := repo.GetProductByName(context.Background(), "Meat Pizza X")
	require.NoError(t, err)
	require.NoError(t, db.Where("product_id = ?", pizza.ID).Delete(&models.PriceModifier{}).Error)
	require.NoError(t, db.Delete(&models.Product{}, pizza.ID).Error)

	_, err = repo.GetProductByName(context.Background(), "Meat Pizza X")
	require.ErrorIs(t, err, models.ErrProductNotFound)

	rep, err := s.Run(context.Background(), fixtureMenu())
	require.NoError(t, err)
	assert.Equal(t, 1, rep.ProductsCreated)

	recreated, err := repo.GetProductByName(context.Background(), "Meat Pizza X")
	require.NoError(t, err)
	assert.Equal(t, pizza.Name, recreated.Name)
	assert.Equal(t, pizza.Description, recreated.Description)
	assert.Equal(t, pizza.CategoryID, recreated.CategoryID)
	assert.True(t, pizza.BasePrice.Equal(recreated.BasePrice))
	assert.Len(t, recreated.Modifiers, 2)
}

func TestRunFullMarinaMenu(t *testing.T) {
	_, repo := newTestStore(t)
	s := NewSeeder(repo, &bytes.Buffer{})

	rep, err := s.Run(context.Background(), MarinaMenu())
	require.NoError(t, err)

	assert.Equal(t, int64(11), rep.Counts.Categories)
	assert.Equal(t, int64(17), rep.Counts.Sizes)
	assert.Equal(t, int64(62), rep.Counts.Products)
	// 37 three-size pizzas with two non-base sizes each, plus the two-size
	// Nutella Pizza.
	assert.Equal(t, int64(75), rep.Counts.Modifiers)

	second, err := s.Run(context.Background(), MarinaMenu())
	require.NoError(t, err)
	assert.Zero(t, second.ProductsCreated)
	assert.Zero(t, second.ProductsUpdated)
	assert.Equal(t, rep.Counts, second.Counts)
}

func TestRunRejectsInvalidMenu(t *testing.T) {
	_, repo := newTestStore(t)
	s := NewSeeder(repo, &bytes.Buffer{})

	menu := fixtureMenu()
	menu.Categories[0].Products[0].SizePrices = map[string]decimal.Decimal{"Mega": d(30)}

	_, err := s.Run(context.Background(), menu)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid menu definition")

	counts, err := repo.Counts(context.Background())
	require.NoError(t, err)
	assert.Zero(t, counts.Categories, "nothing should be written for an invalid menu")
}

// --- Mock store: first error aborts the run ---

type failingStore struct {
	*models.MenuRepository
	productErr error
}

func (f *failingStore) UpsertProduct(ctx context.Context, p *models.Product) (bool, bool, error) {
	return false, false, f.productErr
}

func TestRunAbortsOnFirstError(t *testing.T) {
	_, repo := newTestStore(t)
	store := &failingStore{MenuRepository: repo, productErr: errors.New("constraint violation")}
	s := NewSeeder(store, &bytes.Buffer{})

	_, err := s.Run(context.Background(), fixtureMenu())
	require.Error(t, err)
	assert.ErrorIs(t, err, store.productErr)
}
