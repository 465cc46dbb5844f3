package entity

import (
	"fmt"
	"strings"
	"time"
)

// Status is the lifecycle stage of an order.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
)

// AllStatuses lists every valid order status in lifecycle order.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}
}

// StatusNames returns the valid status values as strings, for error messages.
func StatusNames() []string {
	all := AllStatuses()
	out := make([]string, len(all))
	for i, s := range all {
		out[i] = string(s)
	}
	return out
}

// InvalidStatusError reports a status value outside the fixed enumeration.
type InvalidStatusError struct {
	Value string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid status value %q, must be one of: %s", e.Value, strings.Join(StatusNames(), ", "))
}

// ParseStatus validates s against the enumeration. The match is exact and
// case-sensitive.
func ParseStatus(s string) (Status, error) {
	for _, v := range AllStatuses() {
		if s == string(v) {
			return v, nil
		}
	}
	return "", &InvalidStatusError{Value: s}
}

// IsTerminal reports whether no further transition leaves st.
func (st Status) IsTerminal() bool {
	return st == StatusDelivered || st == StatusCancelled
}

// CanTransition reports whether moving from st to next is allowed under the
// strict forward-only flow. Cancellation is allowed from any non-terminal
// state. The default service mode does not consult this at all; any valid
// status may replace any other.
func (st Status) CanTransition(next Status) bool {
	if next == StatusCancelled {
		return !st.IsTerminal()
	}
	order := map[Status]int{
		StatusPending:    0,
		StatusProcessing: 1,
		StatusShipped:    2,
		StatusDelivered:  3,
	}
	from, ok := order[st]
	if !ok {
		return false
	}
	to, ok := order[next]
	if !ok {
		return false
	}
	return to == from+1
}

// OrderItem is an immutable snapshot of a product taken at placement time.
// Later product price or name changes never alter existing orders.
type OrderItem struct {
	ProductID string  `json:"product"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Order is immutable after placement except for its Status.
type Order struct {
	ID              string      `json:"id"`
	BuyerName       string      `json:"buyer_name"`
	BuyerContact    string      `json:"buyer_contact"`
	DeliveryAddress string      `json:"delivery_address"`
	Items           []OrderItem `json:"items"`
	Status          Status      `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}
