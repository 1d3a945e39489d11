package domain

// CartLine is one product entry in a customer's shopping cart. A customer
// has at most one line per product; adding the same product again replaces
// the quantity.
type CartLine struct {
	ID         int `json:"id" bson:"_id"`
	CustomerID int `json:"customer_id" bson:"customer_id"`
	ProductID  int `json:"product_id" bson:"product_id"`
	Quantity   int `json:"quantity" bson:"quantity"`
}
