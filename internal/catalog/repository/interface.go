package repository

// Material is one immutable catalog record.
type Material struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	SKU      string   `json:"sku" yaml:"sku"`
	BaseCost float64  `json:"base_cost" yaml:"base_cost"`
	Category string   `json:"category" yaml:"category"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// Repository is the read-only catalog. Implementations are safe for
// concurrent use and never mutate records after construction.
type Repository interface {
	// List returns every material in insertion order.
	List() []Material
	// GetByID returns the material and true, or false when absent.
	GetByID(id string) (Material, bool)
}
