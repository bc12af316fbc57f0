package commerce

// GraphQL documents for every upstream operation the storefront performs.
// cartFields is shared by all cart queries and mutations so every call returns the same
// authoritative cart shape.

const cartFields = `
    id
    itemsV2 {
        items {
            uid
            quantity
            product {
                name
                sku
                thumbnail {
                    url
                }
            }
            prices {
                row_total {
                    value
                    currency
                }
            }
        }
        total_count
    }
    prices {
        grand_total {
            value
            currency
        }
    }`

const createGuestCartMutation = `mutation CreateGuestCart {
    createEmptyCart
}`

const getCartQuery = `query GetCart($cartId: String!) {
    cart(cart_id: $cartId) {` + cartFields + `
    }
}`

const getCustomerCartQuery = `query GetCustomerCart {
    customerCart {` + cartFields + `
    }
}`

const addSimpleToCartMutation = `mutation AddSimpleToCart($cartId: String!, $sku: String!, $qty: Float!) {
    addSimpleProductsToCart(
        input: {cart_id: $cartId, cart_items: [{data: {sku: $sku, quantity: $qty}}]}
    ) {
        cart {` + cartFields + `
        }
    }
}`

const addConfigurableToCartMutation = `mutation AddConfigurableToCart($cartId: String!, $parentSku: String!, $childSku: String!, $qty: Float!) {
    addConfigurableProductsToCart(
        input: {cart_id: $cartId, cart_items: [{parent_sku: $parentSku, data: {sku: $childSku, quantity: $qty}}]}
    ) {
        cart {` + cartFields + `
        }
    }
}`

const removeCartItemMutation = `mutation RemoveCartItem($cartId: String!, $itemUid: ID!) {
    removeItemFromCart(input: {cart_id: $cartId, cart_item_uid: $itemUid}) {
        cart {` + cartFields + `
        }
    }
}`

const updateCartItemMutation = `mutation UpdateCartItem($cartId: String!, $itemUid: ID!, $qty: Float!) {
    updateCartItems(
        input: {cart_id: $cartId, cart_items: [{cart_item_uid: $itemUid, quantity: $qty}]}
    ) {
        cart {` + cartFields + `
        }
    }
}`

const mergeCartsMutation = `mutation MergeCarts($guestCartId: String!, $customerCartId: String!) {
    mergeCarts(source_cart_id: $guestCartId, destination_cart_id: $customerCartId) {` + cartFields + `
    }
}`

const generateCustomerTokenMutation = `mutation GenerateCustomerToken($email: String!, $password: String!) {
    generateCustomerToken(email: $email, password: $password) {
        token
    }
}`

const createCustomerMutation = `mutation CreateCustomer($input: CustomerCreateInput!) {
    createCustomer(input: $input) {
        customer {
            email
            firstname
            lastname
        }
    }
}`

const getCustomerQuery = `query GetCustomer {
    customer {
        firstname
        middlename
        lastname
        email
        date_of_birth
        gender
        is_subscribed
        default_billing
        default_shipping
    }
}`

const productFields = `
            uid
            name
            sku
            url_key
            small_image {
                url
                label
            }
            price_range {
                minimum_price {
                    final_price {
                        value
                        currency
                    }
                }
            }`

const productsByCategoryQuery = `query ProductsByCategory($cat: String!) {
    products(filter: {category_uid: {eq: $cat}}) {
        total_count
        items {` + productFields + `
        }
    }
}`

const filteredProductsQuery = `query FilteredProducts($filter: ProductAttributeFilterInput!) {
    products(filter: $filter) {
        total_count
        items {` + productFields + `
        }
    }
}`

const allCategoriesQuery = `query AllCategories {
    categories {
        items {
            children {
                uid
                name
                url_key
            }
        }
    }
}`
