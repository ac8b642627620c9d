package billing

// CheckoutMode selects one-time payment vs recurring subscription at the
// payment gateway.
type CheckoutMode string

const (
	ModePayment      CheckoutMode = "payment"
	ModeSubscription CheckoutMode = "subscription"
)

// Product is a sellable registration at the payment provider. Every
// purchasable catalog item must have a Product whose Name matches the
// item title exactly.
type Product struct {
	ID          string       `json:"id"`
	PriceID     string       `json:"price_id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Mode        CheckoutMode `json:"mode"`
}

// Registry is the static price/product table, consulted synchronously.
type Registry struct {
	products []Product
}

// NewRegistry builds a registry from the given products.
func NewRegistry(products []Product) *Registry {
	return &Registry{products: products}
}

// DefaultRegistry returns the built-in product registrations.
func DefaultRegistry() *Registry {
	return NewRegistry(defaultProducts)
}

// ByPriceID resolves a product from its price identifier.
func (r *Registry) ByPriceID(priceID string) (Product, bool) {
	for _, p := range r.products {
		if p.PriceID == priceID {
			return p, true
		}
	}
	return Product{}, false
}

// ByName resolves a product by exact name match.
func (r *Registry) ByName(name string) (Product, bool) {
	for _, p := range r.products {
		if p.Name == name {
			return p, true
		}
	}
	return Product{}, false
}

// ByID resolves a product from its product identifier.
func (r *Registry) ByID(id string) (Product, bool) {
	for _, p := range r.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

var defaultProducts = []Product{
	{
		ID:          "prod_SY46Rzf84sCXuh",
		PriceID:     "price_1RcxxpB4TclDueTYhs6HxZEs",
		Name:        "Full-Stack Web Developer",
		Description: "Master both frontend and backend development with modern technologies. Build complete web applications from scratch.",
		Mode:        ModePayment,
	},
	{
		ID:          "prod_SY5bQm2Lr9AKtw",
		PriceID:     "price_1Rcy2DB4TclDueTYm4v1Qk7N",
		Name:        "LearnHub Pro",
		Description: "Monthly membership with unlimited access to every course and learning path.",
		Mode:        ModeSubscription,
	},
}
