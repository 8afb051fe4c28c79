package seeder

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gosimple/slug"

	"github.com/marinapizzas/menu-seeder/models"
)

// MenuWriter is the store surface the seeder needs.
type MenuWriter interface {
	UpsertCategory(ctx context.Context, cat *models.Category) (bool, error)
	UpsertSize(ctx context.Context, size *models.Size) (bool, error)
	UpsertProduct(ctx context.Context, p *models.Product) (bool, bool, error)
	UpsertPriceModifier(ctx context.Context, m *models.PriceModifier) (bool, error)
	DeleteStaleModifiers(ctx context.Context, productID uint, keepSizeIDs []uint) (int64, error)
	Counts(ctx context.Context) (models.Counts, error)
}

// Report tallies what a run changed, plus the store row counts afterwards.
type Report struct {
	CategoriesCreated int
	SizesCreated      int
	ProductsCreated   int
	ProductsUpdated   int
	ModifiersCreated  int
	ModifiersDeleted  int
	Counts            models.Counts
}

// Seeder applies a menu definition to the store. Runs are idempotent:
// records are keyed by their natural identifiers and only changed fields
// are written, so re-applying an unchanged menu is a no-op.
type Seeder struct {
	store MenuWriter
	out   io.Writer
}

func NewSeeder(store MenuWriter, out io.Writer) *Seeder {
	return &Seeder{
		store: store,
		out:   out,
	}
}

// Run validates the menu, upserts every category, size, product, and price
// modifier in definition order, and prints per-item progress followed by a
// summary block. The first store error aborts the run.
func (s *Seeder) Run(ctx context.Context, menu Menu) (*Report, error) {
	if err := menu.Validate(); err != nil {
		return nil, fmt.Errorf("invalid menu definition: %w", err)
	}

	rule := strings.Repeat("=", 60)
	fmt.Fprintln(s.out, rule)
	fmt.Fprintln(s.out, "Marina Pizza & Pasta - Menu Import")
	fmt.Fprintln(s.out, rule)
	fmt.Fprintln(s.out)

	rep := &Report{}
	for _, catDef := range menu.Categories {
		if err := s.seedCategory(ctx, rep, catDef); err != nil {
			return nil, err
		}
		fmt.Fprintln(s.out)
	}

	counts, err := s.store.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count rows: %w", err)
	}
	rep.Counts = counts

	fmt.Fprintln(s.out, rule)
	fmt.Fprintln(s.out, "Menu import complete!")
	fmt.Fprintln(s.out, rule)
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Summary:")
	fmt.Fprintf(s.out, "  Categories: %d\n", counts.Categories)
	fmt.Fprintf(s.out, "  Products: %d\n", counts.Products)
	fmt.Fprintf(s.out, "  Sizes: %d\n", counts.Sizes)

	return rep, nil
}

func (s *Seeder) seedCategory(ctx context.Context, rep *Report, catDef CategoryDef) error {
	fmt.Fprintf(s.out, "Seeding %s...\n", catDef.Name)

	cat := &models.Category{
		Name:         catDef.Name,
		Slug:         slug.Make(catDef.Name),
		Description:  catDef.Description,
		DisplayOrder: catDef.DisplayOrder,
	}
	created, err := s.store.UpsertCategory(ctx, cat)
	if err != nil {
		return err
	}
	if created {
		rep.CategoriesCreated++
		fmt.Fprintf(s.out, "✓ Created category: %s\n", cat.Name)
	}

	sizes := make(map[string]*models.Size, len(catDef.Sizes))
	for _, sizeDef := range catDef.Sizes {
		size := &models.Size{
			Name:         sizeDef.Name,
			CategoryID:   cat.ID,
			DisplayOrder: sizeDef.DisplayOrder,
		}
		created, err := s.store.UpsertSize(ctx, size)
		if err != nil {
			return err
		}
		if created {
			rep.SizesCreated++
			fmt.Fprintf(s.out, "  ✓ Created size: %s\n", size.Name)
		}
		sizes[size.Name] = size
	}

	for _, prodDef := range catDef.Products {
		if err := s.seedProduct(ctx, rep, cat, catDef.Sizes, sizes, prodDef); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedProduct(
	ctx context.Context,
	rep *Report,
	cat *models.Category,
	sizeDefs []SizeDef,
	sizes map[string]*models.Size,
	prodDef ProductDef,
) error {
	base := prodDef.BasePrice()
	product := &models.Product{
		Name:        prodDef.Name,
		Slug:        slug.Make(prodDef.Name),
		Description: prodDef.Description,
		BasePrice:   base,
		HasSizes:    prodDef.Sized(),
		IsAvailable: true,
		CategoryID:  cat.ID,
	}
	created, updated, err := s.store.UpsertProduct(ctx, product)
	if err != nil {
		return err
	}
	switch {
	case created:
		rep.ProductsCreated++
		fmt.Fprintf(s.out, "  ✓ Created product: %s ($%s)\n", product.Name, base)
	case updated:
		rep.ProductsUpdated++
		fmt.Fprintf(s.out, "  ~ Updated product: %s\n", product.Name)
	default:
		fmt.Fprintf(s.out, "  - Product already exists: %s\n", product.Name)
	}

	// The smallest size is the base; larger sizes get a delta row. Walk
	// sizes in declared order so the base assignment is deterministic.
	var keepSizeIDs []uint
	baseTaken := false
	for _, sizeDef := range sizeDefs {
		price, ok := prodDef.SizePrices[sizeDef.Name]
		if !ok {
			continue
		}
		if !baseTaken && price.Equal(base) {
			baseTaken = true
			continue
		}
		modifier := &models.PriceModifier{
			ProductID: product.ID,
			SizeID:    sizes[sizeDef.Name].ID,
			Delta:     price.Sub(base),
		}
		created, err := s.store.UpsertPriceModifier(ctx, modifier)
		if err != nil {
			return err
		}
		if created {
			rep.ModifiersCreated++
		}
		keepSizeIDs = append(keepSizeIDs, modifier.SizeID)
	}

	// Sizes dropped from the definition must not linger as modifier rows.
	deleted, err := s.store.DeleteStaleModifiers(ctx, product.ID, keepSizeIDs)
	if err != nil {
		return err
	}
	rep.ModifiersDeleted += int(deleted)
	return nil
}
