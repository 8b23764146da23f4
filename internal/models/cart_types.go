package models

// CartItem is a single line in the session cart.
// Uniqueness key is the product name.
type CartItem struct {
	Product  string  `json:"product"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Cart is the per-session list of items, in first-add order.
// It lives in the session store, not the database.
type Cart []CartItem

// Add merges a line into the cart: if the product is already present its
// quantity is incremented, otherwise a new item is appended at the end.
func (c *Cart) Add(product string, price float64, quantity int) {
	for i := range *c {
		if (*c)[i].Product == product {
			(*c)[i].Quantity += quantity
			return
		}
	}
	*c = append(*c, CartItem{Product: product, Price: price, Quantity: quantity})
}

// GrandTotal sums price * quantity over all items. An empty cart totals 0.
func (c Cart) GrandTotal() float64 {
	var total float64
	for _, item := range c {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
