package model

// Product is a single catalog record. Ids are assigned by the store and
// are unique for the lifetime of the process.
type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Stock    int     `json:"stock"`
}

// ProductPatch carries a partial update. Only non-nil fields are applied.
type ProductPatch struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Category *string  `json:"category"`
	Stock    *int     `json:"stock"`
}

// ProductStats summarizes the catalog contents.
type ProductStats struct {
	TotalProducts   int      `json:"total_products"`
	TotalStock      int      `json:"total_stock"`
	CategoriesCount int      `json:"categories_count"`
	Categories      []string `json:"categories"`
}
