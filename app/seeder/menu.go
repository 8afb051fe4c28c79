package seeder

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Menu is a static menu definition: categories in display order, each with
// its sizes and products.
type Menu struct {
	Categories []CategoryDef
}

// CategoryDef declares a category, the sizes it offers, and its products.
type CategoryDef struct {
	Name         string
	Description  string
	DisplayOrder int
	Sizes        []SizeDef
	Products     []ProductDef
}

// SizeDef declares a portion size within a category. Display order ranks
// sizes from smallest to largest.
type SizeDef struct {
	Name         string
	DisplayOrder int
}

// ProductDef declares a menu item. Exactly one of Price (single-price
// items) or SizePrices (per-size pricing, keyed by size name) must be set.
type ProductDef struct {
	Name        string
	Description string
	Price       decimal.Decimal
	SizePrices  map[string]decimal.Decimal
}

// Sized reports whether the product uses size-based pricing.
func (p ProductDef) Sized() bool {
	return len(p.SizePrices) > 0
}

// BasePrice is the smallest size's price, or the sole price for unsized
// items.
func (p ProductDef) BasePrice() decimal.Decimal {
	if !p.Sized() {
		return p.Price
	}
	var base decimal.Decimal
	first := true
	for _, price := range p.SizePrices {
		if first || price.LessThan(base) {
			base = price
			first = false
		}
	}
	return base
}

// Validate rejects definitions the seeder cannot apply: duplicate names,
// prices referencing undeclared sizes, items with no price at all.
func (m Menu) Validate() error {
	catNames := map[string]bool{}
	prodNames := map[string]bool{}

	for _, cat := range m.Categories {
		if catNames[cat.Name] {
			return fmt.Errorf("duplicate category %q", cat.Name)
		}
		catNames[cat.Name] = true

		sizeNames := map[string]bool{}
		for _, size := range cat.Sizes {
			if sizeNames[size.Name] {
				return fmt.Errorf("duplicate size %q in category %q", size.Name, cat.Name)
			}
			sizeNames[size.Name] = true
		}

		for _, prod := range cat.Products {
			if prodNames[prod.Name] {
				return fmt.Errorf("duplicate product %q", prod.Name)
			}
			prodNames[prod.Name] = true

			if prod.Sized() {
				if !prod.Price.IsZero() {
					return fmt.Errorf("product %q has both a single price and size prices", prod.Name)
				}
				for sizeName := range prod.SizePrices {
					if !sizeNames[sizeName] {
						return fmt.Errorf("product %q prices unknown size %q in category %q",
							prod.Name, sizeName, cat.Name)
					}
				}
			} else if prod.Price.LessThanOrEqual(decimal.Zero) {
				return fmt.Errorf("product %q has no price", prod.Name)
			}
		}
	}
	return nil
}

func d(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

var (
	premiumPizzaPrices     = map[string]decimal.Decimal{"Small": d(14), "Large": d(20), "Family": d(23)}
	traditionalPizzaPrices = map[string]decimal.Decimal{"Small": d(10), "Large": d(16), "Family": d(21)}
	pizzaSizes             = []SizeDef{
		{Name: "Small", DisplayOrder: 1},
		{Name: "Large", DisplayOrder: 2},
		{Name: "Family", DisplayOrder: 3},
	}
)

// MarinaMenu is the Marina Pizza & Pasta menu.
func MarinaMenu() Menu {
	return Menu{Categories: []CategoryDef{
		{
			Name:         "Meat Pizzas",
			Description:  "Premium meat pizzas",
			DisplayOrder: 1,
			Sizes:        pizzaSizes,
			Products: []ProductDef{
				{Name: "Sundried Heat", Description: "Hot salami, capsicum, Spanish onion, olives, sundried tomato, eggplant and cherry tomato", SizePrices: premiumPizzaPrices},
				{Name: "Aurora", Description: "Hot salami, homemade meatballs, Spanish onion, cherry tomato and lemon wedge", SizePrices: premiumPizzaPrices},
				{Name: "Rock Star", Description: "Hot salami, roasted capsicum, mushroom, anchovies, olives, feta and sundried tomato", SizePrices: premiumPizzaPrices},
				{Name: "Salami Supreme", Description: "Hot Calabrese salami, pepperoni salami and olives", SizePrices: premiumPizzaPrices},
				{Name: "Prosciutto", Description: "Prosciutto, bocconcini, cherry tomato, rocket, parmesan and Demi-glace", SizePrices: premiumPizzaPrices},
				{Name: "Chef's Special", Description: "Shaved ham, hot salami, mushroom, Spanish onion, roasted capsicum, olives, feta and oregano", SizePrices: premiumPizzaPrices},
				{Name: "Lamb", Description: "Marinated lamb, spinach, Spanish onion, roasted capsicum topped with tzatziki", SizePrices: premiumPizzaPrices},
				{Name: "Pumpkin Delight", Description: "Pumpkin base, caramelized onion, pumpkin seeds, parmesan and pesto", SizePrices: premiumPizzaPrices},
				{Name: "Nacho's", Description: "Salsa base, corn chips, roasted capsicum, Spanish onion, jalapenos and taco beef", SizePrices: premiumPizzaPrices},
			},
		},
		{
			Name:         "Vegetarian Pizzas",
			Description:  "Vegetarian options",
			DisplayOrder: 2,
			Sizes:        pizzaSizes,
			Products: []ProductDef{
				{Name: "Queen Margherita", Description: "Double cheese, cherry tomato, bocconcini topped with oregano", SizePrices: premiumPizzaPrices},
				{Name: "Wild Mushroom", Description: "White sauce base, sautéed mushroom, Spanish onion, cherry tomato and topped with rocket", SizePrices: premiumPizzaPrices},
				{Name: "Mediterranean", Description: "Spinach, mushroom, Spanish onion, olives, sundried tomato, cherry tomato and feta", SizePrices: premiumPizzaPrices},
				{Name: "Veggie Supreme", Description: "Roasted capsicum, mushroom, artichokes, eggplant, Spanish onion, olives, cherry tomato and lemon wedge", SizePrices: premiumPizzaPrices},
				{Name: "Truffle", Description: "Truffle base, mushroom, rosemary, bocconcini topped with rocket and truffle oil", SizePrices: premiumPizzaPrices},
			},
		},
		{
			Name:         "Chicken Pizzas",
			Description:  "Chicken pizzas",
			DisplayOrder: 3,
			Sizes:        pizzaSizes,
			Products: []ProductDef{
				{Name: "Avocado Al Apollo", Description: "Chicken breast, avocado, Spanish Onion and cherry tomato (sweet chilli optional)", SizePrices: premiumPizzaPrices},
				{Name: "Tandoori Chicken", Description: "Tandoori marinated chicken, roasted capsicum, Spanish onion topped with seasoned yogurt", SizePrices: premiumPizzaPrices},
				{Name: "Peri Peri Chicken", Description: "Chicken breast, Spanish onion, roasted capsicum topped with peri- peri sauce", SizePrices: premiumPizzaPrices},
				{Name: "Chicken Supreme", Description: "Chicken breast, mushroom, roasted capsicum, Spanish onion and pineapple", SizePrices: premiumPizzaPrices},
			},
		},
		{
			Name:         "Seafood Pizzas",
			Description:  "Seafood pizzas",
			DisplayOrder: 4,
			Sizes:        pizzaSizes,
			Products: []ProductDef{
				{Name: "Seafood Deluxe", Description: "Mix of fresh seafood, anchovies, garlic and lemon wedge", SizePrices: premiumPizzaPrices},
				{Name: "Honey Glazed Prawn", Description: "Marinated king prawns, bocconcini, garlic, herbs, cherry tomato and lemon wedge", SizePrices: premiumPizzaPrices},
				{Name: "Chilli Prawn", Description: "Chilli prawns, spinach, roasted capsicum, Spanish onion and rocket on sweet chilli base", SizePrices: premiumPizzaPrices},
			},
		},
		{
			Name:         "Traditional Pizzas",
			Description:  "Classic pizzas",
			DisplayOrder: 5,
			Sizes:        pizzaSizes,
			Products: []ProductDef{
				{Name: "Garlic", Description: "Garlic, cheese and oregano", SizePrices: traditionalPizzaPrices},
				{Name: "Margherita", Description: "Tomato, mozzarella and oregano", SizePrices: traditionalPizzaPrices},
				{Name: "Vegetarian", Description: "Mushroom, capsicum, Spanish onion, oregano, olives and oregano", SizePrices: traditionalPizzaPrices},
				{Name: "Napoletana", Description: "Salami, olives, anchovies and garlic", SizePrices: traditionalPizzaPrices},
				{Name: "Hawaiian", Description: "Ham and pineapple with traditional pizza sauce", SizePrices: traditionalPizzaPrices},
				{Name: "American", Description: "Ham and hot salami with traditional pizza sauce and oregano", SizePrices: traditionalPizzaPrices},
				{Name: "Pepperoni", Description: "Mild salami with traditional pizza sauce and oregano", SizePrices: traditionalPizzaPrices},
				{Name: "Mexican", Description: "Hot salami, capsicum, Spanish onion, olives and oregano", SizePrices: traditionalPizzaPrices},
				{Name: "Aussie", Description: "Ham, bacon, Spanish onion and egg", SizePrices: traditionalPizzaPrices},
				{Name: "Capricciosa", Description: "Ham, mushroom and olives (anchovies optional)", SizePrices: traditionalPizzaPrices},
				{Name: "Italian", Description: "Hot salami, mushroom, olives and oregano", SizePrices: traditionalPizzaPrices},
				{Name: "BBQ Chicken", Description: "Chicken breast, pineapple and BBQ sauce", SizePrices: traditionalPizzaPrices},
				{Name: "Meat Lovers", Description: "Ham, hot salami, bacon and meatballs with BBQ sauce", SizePrices: traditionalPizzaPrices},
				{Name: "Supreme", Description: "Ham, salami, mushroom, Spanish onion, capsicum, pineapple, olives and oregano", SizePrices: traditionalPizzaPrices},
				{Name: "House Special", Description: "Hot salami, mushroom, Spanish onion, capsicum, feta and oregano", SizePrices: traditionalPizzaPrices},
				{Name: "Marina Special", Description: "Ham, mushroom, capsicum, anchovies and oregano", SizePrices: traditionalPizzaPrices},
			},
		},
		{
			Name:         "Pasta",
			Description:  "Pasta dishes",
			DisplayOrder: 6,
			Products: []ProductDef{
				{Name: "Bolognese", Description: "Traditional rich Napoli meat sauce and oregano", Price: d(15)},
				{Name: "Seafood Pasta", Description: "Mixed seafood pan fried with garlic in Napoli sauce and lemon", Price: d(15)},
				{Name: "Red Hot", Description: "Hot salami, capsicum, Spanish onion, olives and garlic in Napoli sauce", Price: d(15)},
				{Name: "Pesto Chicken", Description: "Chicken, cherry tomato, olives, feta and pesto", Price: d(15)},
				{Name: "Pollo", Description: "Chicken, mushroom, roasted capsicum and garlic in creamy white sauce", Price: d(15)},
				{Name: "Fungi", Description: "Mushroom, bacon, chicken and garlic in creamy white sauce", Price: d(15)},
				{Name: "Carbonara", Description: "Bacon, garlic, egg and parsley in creamy white sauce", Price: d(15)},
				{Name: "Chicken Avocado", Description: "Chicken, mushroom and avocado in creamy white sauce", Price: d(15)},
				{Name: "Vegetarian Pasta", Description: "Onion, roasted capsicum, mushroom and eggplant in Napoli sauce", Price: d(15)},
			},
		},
		{
			Name:         "Chicken Parmas",
			Description:  "Chicken parmigiana",
			DisplayOrder: 7,
			Products: []ProductDef{
				{Name: "Parma", Description: "Chicken breast schnitzel topped with Napoli sauce, shaved ham and mozzarella cheese (with chips and salad)", Price: d(25)},
				{Name: "Hawaiian Parma", Description: "Chicken breast schnitzel topped with Napoli sauce, shaved ham, pineapple and mozzarella cheese (with chips and salad)", Price: d(25)},
				{Name: "Mexican Parma", Description: "Chicken breast schnitzel topped with Napoli sauce, Spanish onion, roasted capsicum, jalapeno, and mozzarella cheese (with chips and salad)", Price: d(25)},
			},
		},
		{
			Name:         "Salads",
			Description:  "Fresh salads",
			DisplayOrder: 8,
			Products: []ProductDef{
				{Name: "Garden Salad", Description: "Mixed leaf salad with roasted capsicum, Spanish onion, cucumber and cherry tomato with French dressing", Price: d(11)},
				{Name: "Greek Salad", Description: "Mixed leaves, roasted capsicum, Spanish onion, cucumber, cherry tomato, olives, feta and oregano with Greek dressing", Price: d(11)},
				{Name: "Chicken Salad", Description: "Marinated chicken, mixed leaves, Spanish onion, cucumber, cherry tomato and avocado with Italian dressing", Price: d(15)},
			},
		},
		{
			Name:         "Sides",
			Description:  "Side dishes",
			DisplayOrder: 9,
			Products: []ProductDef{
				{Name: "Chips", Description: "Chips with tomato sauce", Price: d(7)},
				{Name: "Garlic Bread", Description: "Garlic bread", Price: d(5)},
				{Name: "Potato Wedges", Description: "Potato wedges with sour cream and sweet chilli sauce", Price: d(10)},
				{Name: "Mozzarella Sticks", Description: "Mozzarella sticks with tomato sauce", Price: d(10)},
				{Name: "Calamari", Description: "Calamari with tartare sauce, chips and lemon wedges", Price: d(15)},
				{Name: "Onion Rings", Description: "Onion rings with aioli sauce and chips", Price: d(11)},
			},
		},
		{
			Name:         "Dessert",
			Description:  "Desserts",
			DisplayOrder: 10,
			Sizes: []SizeDef{
				{Name: "Small", DisplayOrder: 1},
				{Name: "Large", DisplayOrder: 2},
			},
			Products: []ProductDef{
				{Name: "Nutella Pizza", Description: "Nutella, fresh strawberries and icing sugar", SizePrices: map[string]decimal.Decimal{"Small": d(10), "Large": d(15)}},
				{Name: "Donut", Description: "Jam donut with cinnamon", Price: d(12)},
			},
		},
		{
			Name:         "Beverages",
			Description:  "Drinks",
			DisplayOrder: 11,
			Products: []ProductDef{
				{Name: "Soft Drink Can", Description: "Soft drink can", Price: d(2.5)},
				{Name: "Soft Drink 1.25L", Description: "Soft drink 1.25L bottle", Price: d(6)},
			},
		},
	}}
}
