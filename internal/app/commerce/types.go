package commerce

// Money is an amount with its currency code, as returned by the upstream price fields.
type Money struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

// ProductRef identifies the product behind a cart line.
type ProductRef struct {
	Name      string     `json:"name"`
	SKU       string     `json:"sku"`
	Thumbnail *ImageData `json:"thumbnail"`
}

// ImageData is a product image reference.
type ImageData struct {
	URL   string `json:"url"`
	Label string `json:"label,omitempty"`
}

// ItemPrices holds the per-line pricing block.
type ItemPrices struct {
	RowTotal Money `json:"row_total"`
}

// CartItem is a single line in a cart. UID is unique within the cart and is the handle
// for remove and quantity-update operations.
type CartItem struct {
	UID      string     `json:"uid"`
	Quantity int        `json:"quantity"`
	Product  ProductRef `json:"product"`
	Prices   ItemPrices `json:"prices"`
}

// CartItems is the paginated line-item container used by the upstream cart schema.
type CartItems struct {
	Items      []CartItem `json:"items"`
	TotalCount int        `json:"total_count"`
}

// CartPrices holds the cart-level pricing block.
type CartPrices struct {
	GrandTotal Money `json:"grand_total"`
}

// Cart is the authoritative cart state as returned by the upstream commerce API.
// Every cart query and mutation returns a full Cart, which replaces any local state.
type Cart struct {
	ID      string     `json:"id"`
	ItemsV2 CartItems  `json:"itemsV2"`
	Prices  CartPrices `json:"prices"`
}

// Customer is the account profile of an authenticated customer.
type Customer struct {
	Firstname       string  `json:"firstname"`
	Middlename      *string `json:"middlename"`
	Lastname        string  `json:"lastname"`
	Email           string  `json:"email"`
	DateOfBirth     *string `json:"date_of_birth"`
	Gender          *int    `json:"gender"`
	IsSubscribed    bool    `json:"is_subscribed"`
	DefaultBilling  *string `json:"default_billing"`
	DefaultShipping *string `json:"default_shipping"`
}

// CustomerInput is the payload for creating a new customer account.
type CustomerInput struct {
	Email     string `json:"email"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Password  string `json:"password"`
}

// Product is a catalog product as rendered in listing grids.
type Product struct {
	UID        string     `json:"uid"`
	Name       string     `json:"name"`
	SKU        string     `json:"sku"`
	URLKey     string     `json:"url_key"`
	SmallImage *ImageData `json:"small_image"`
	PriceRange PriceRange `json:"price_range"`
}

// PriceRange carries the minimum listed price of a product.
type PriceRange struct {
	MinimumPrice struct {
		FinalPrice Money `json:"final_price"`
	} `json:"minimum_price"`
}

// Category is a navigable catalog category.
type Category struct {
	UID    string `json:"uid"`
	Name   string `json:"name"`
	URLKey string `json:"url_key"`
}

// ProductFilter selects products by exact attribute matches. Zero-valued fields are
// omitted from the upstream filter.
type ProductFilter struct {
	SKU         string
	URLKey      string
	CategoryUID string
}
