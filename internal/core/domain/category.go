package domain

// Category groups related products.
type Category struct {
	ID          int    `json:"id" bson:"_id"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	IsActive    bool   `json:"is_active" bson:"is_active"`
}
