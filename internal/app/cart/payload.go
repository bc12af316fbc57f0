package cart

// AddPayload is the tagged union of add-to-cart variants. The two variants map to
// different upstream mutations with different stock and variant validation, so they are
// dispatched by type, never by sniffing optional fields.
type AddPayload interface {
	// Quantity returns the requested line quantity for gateway validation.
	Quantity() int

	isAddPayload()
}

// SimpleItem adds a simple product by its sku.
type SimpleItem struct {
	SKU string
	Qty int
}

// ConfigurableItem adds a configurable product variant. ParentSKU names the configurable
// product, SKU the selected child variant.
type ConfigurableItem struct {
	ParentSKU string
	SKU       string
	Qty       int
}

func (p SimpleItem) Quantity() int       { return p.Qty }
func (p ConfigurableItem) Quantity() int { return p.Qty }

func (SimpleItem) isAddPayload()       {}
func (ConfigurableItem) isAddPayload() {}
