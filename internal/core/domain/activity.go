package domain

import "time"

// ActivityAction identifies the kind of customer activity being recorded.
type ActivityAction string

const (
	ActivityLogin      ActivityAction = "login"
	ActivityCartAdd    ActivityAction = "cart_add"
	ActivityCartRemove ActivityAction = "cart_remove"
)

// ActivityEvent is an audit record of something a customer did. Events are
// persisted asynchronously; per-customer ordering is preserved by the
// dispatcher's sharding.
type ActivityEvent struct {
	CustomerID int            `bson:"customer_id"`
	Action     ActivityAction `bson:"action"`
	ProductID  int            `bson:"product_id,omitempty"`
	Timestamp  time.Time      `bson:"timestamp"`
}
