package models

import "time"

// Delivery status values a parcel moves through. The order is forward-only:
// pending -> rider_assigned -> in_transit -> delivered | service_center_delivered.
const (
	DeliveryPending                = "pending"
	DeliveryRiderAssigned          = "rider_assigned"
	DeliveryInTransit              = "in_transit"
	DeliveryDelivered              = "delivered"
	DeliveryServiceCenterDelivered = "service_center_delivered"
)

// Payment status values.
const (
	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"
)

// Cashout status values.
const (
	CashoutNone      = "none"
	CashoutCashedOut = "cashed_out"
)

// DeliveryStatuses is the closed set of delivery states, in lifecycle order.
var DeliveryStatuses = []string{
	DeliveryPending,
	DeliveryRiderAssigned,
	DeliveryInTransit,
	DeliveryDelivered,
	DeliveryServiceCenterDelivered,
}

// ValidDeliveryStatus reports whether status is in the closed delivery set.
func ValidDeliveryStatus(status string) bool {
	for _, s := range DeliveryStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// DeliveredState reports whether status counts as a completed delivery.
func DeliveredState(status string) bool {
	return status == DeliveryDelivered || status == DeliveryServiceCenterDelivered
}

// Parcel is a delivery order. Payload fields come from the sender form and are
// stored as-is; the lifecycle fields (statuses, rider assignment, stamps) are
// owned by the parcel service.
type Parcel struct {
	ID                  string  `json:"id" firestore:"-"`
	TrackingID          string  `json:"tracking_id" firestore:"tracking_id"`
	Type                string  `json:"type,omitempty" firestore:"type,omitempty"`
	Title               string  `json:"title,omitempty" firestore:"title,omitempty"`
	Weight              float64 `json:"weight,omitempty" firestore:"weight,omitempty"`
	Cost                float64 `json:"cost,omitempty" firestore:"cost,omitempty"`
	CreatedBy           string  `json:"created_by" firestore:"created_by"`
	SenderName          string  `json:"senderName,omitempty" firestore:"senderName,omitempty"`
	SenderContact       string  `json:"senderContact,omitempty" firestore:"senderContact,omitempty"`
	SenderRegion        string  `json:"senderRegion,omitempty" firestore:"senderRegion,omitempty"`
	SenderCenter        string  `json:"senderCenter,omitempty" firestore:"senderCenter,omitempty"`
	SenderAddress       string  `json:"senderAddress,omitempty" firestore:"senderAddress,omitempty"`
	PickupInstruction   string  `json:"pickupInstruction,omitempty" firestore:"pickupInstruction,omitempty"`
	ReceiverName        string  `json:"receiverName,omitempty" firestore:"receiverName,omitempty"`
	ReceiverContact     string  `json:"receiverContact,omitempty" firestore:"receiverContact,omitempty"`
	ReceiverRegion      string  `json:"receiverRegion,omitempty" firestore:"receiverRegion,omitempty"`
	ReceiverCenter      string  `json:"receiverCenter,omitempty" firestore:"receiverCenter,omitempty"`
	ReceiverAddress     string  `json:"receiverAddress,omitempty" firestore:"receiverAddress,omitempty"`
	DeliveryInstruction string  `json:"deliveryInstruction,omitempty" firestore:"deliveryInstruction,omitempty"`

	DeliveryStatus string `json:"delivery_status" firestore:"delivery_status"`
	PaymentStatus  string `json:"payment_status" firestore:"payment_status"`
	CashoutStatus  string `json:"cashout_status" firestore:"cashout_status"`

	AssignedRiderID    string `json:"assigned_rider_id,omitempty" firestore:"assigned_rider_id,omitempty"`
	AssignedRiderEmail string `json:"assigned_rider_email,omitempty" firestore:"assigned_rider_email,omitempty"`
	AssignedRiderName  string `json:"assigned_rider_name,omitempty" firestore:"assigned_rider_name,omitempty"`

	CreatedAt   time.Time  `json:"createdAt" firestore:"createdAt"`
	AssignedAt  *time.Time `json:"assigned_at,omitempty" firestore:"assigned_at,omitempty"`
	PickedAt    *time.Time `json:"picked_at,omitempty" firestore:"picked_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty" firestore:"delivered_at,omitempty"`
	CashedOutAt *time.Time `json:"cashed_out_at,omitempty" firestore:"cashed_out_at,omitempty"`
}

// ParcelFilter narrows parcel list queries. Empty fields match everything.
type ParcelFilter struct {
	Email          string // matches created_by
	PaymentStatus  string
	DeliveryStatus string
}

// StatusCount is one row of the per-delivery-status aggregation.
type StatusCount struct {
	DeliveryStatus string `json:"delivery_status"`
	Count          int64  `json:"count"`
}
