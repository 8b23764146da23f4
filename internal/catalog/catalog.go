package catalog

import "github.com/gosimple/slug"

// Product is a catalog entry. The catalog is static content; the cart
// stores its own snapshot of name and price at add time.
type Product struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Category groups products under a URL slug derived from its name.
type Category struct {
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
	Products []Product `json:"products"`
}

var categories = []Category{
	{
		Name: "Veg Pickles",
		Products: []Product{
			{Name: "Mango Pickle", Price: 250.0},
			{Name: "Lemon Pickle", Price: 199.0},
			{Name: "Tomato Pickle", Price: 220.0},
			{Name: "Gongura Pickle", Price: 240.0},
		},
	},
	{
		Name: "Non-Veg Pickles",
		Products: []Product{
			{Name: "Chicken Pickle", Price: 350.0},
			{Name: "Prawn Pickle", Price: 420.0},
			{Name: "Mutton Pickle", Price: 450.0},
		},
	},
	{
		Name: "Snacks",
		Products: []Product{
			{Name: "Murukku", Price: 150.0},
			{Name: "Banana Chips", Price: 120.0},
			{Name: "Ribbon Pakoda", Price: 140.0},
		},
	},
}

func init() {
	for i := range categories {
		categories[i].Slug = slug.Make(categories[i].Name)
	}
}

// Categories returns every category with its products.
func Categories() []Category {
	return categories
}

// BySlug finds one category page by its URL slug.
func BySlug(s string) (Category, bool) {
	for _, cat := range categories {
		if cat.Slug == s {
			return cat, true
		}
	}
	return Category{}, false
}
