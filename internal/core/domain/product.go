package domain

// Product is an item for sale. Every product belongs to one category.
type Product struct {
	ID          int     `json:"id" bson:"_id"`
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description" bson:"description"`
	IsActive    bool    `json:"is_active" bson:"is_active"`
	Price       float64 `json:"price" bson:"price"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	CategoryID  int     `json:"category_id" bson:"category_id"`
}
