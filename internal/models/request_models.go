package models

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// UpsertUserRequest is the body of POST /users. Role is optional and only
// honored for brand-new documents; escalation goes through the admin routes.
type UpsertUserRequest struct {
	Email          string `json:"email" binding:"required,email"`
	DisplayName    string `json:"displayName"`
	PhotoURL       string `json:"photoURL"`
	LastSignInTime string `json:"lastSignInTime"`
	Role           string `json:"role"`
}

// SetRoleRequest is the body of PATCH /users/role/:email.
type SetRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// CreateParcelRequest is the sender's parcel form. The payload is stored
// mostly as-is; lifecycle fields are stamped server-side.
type CreateParcelRequest struct {
	TrackingID          string  `json:"tracking_id"`
	Type                string  `json:"type"`
	Title               string  `json:"title"`
	Weight              float64 `json:"weight"`
	Cost                float64 `json:"cost"`
	CreatedBy           string  `json:"created_by"`
	SenderName          string  `json:"senderName"`
	SenderContact       string  `json:"senderContact"`
	SenderRegion        string  `json:"senderRegion"`
	SenderCenter        string  `json:"senderCenter"`
	SenderAddress       string  `json:"senderAddress"`
	PickupInstruction   string  `json:"pickupInstruction"`
	ReceiverName        string  `json:"receiverName"`
	ReceiverContact     string  `json:"receiverContact"`
	ReceiverRegion      string  `json:"receiverRegion"`
	ReceiverCenter      string  `json:"receiverCenter"`
	ReceiverAddress     string  `json:"receiverAddress"`
	DeliveryInstruction string  `json:"deliveryInstruction"`
}

// AssignRiderRequest is the body of PATCH /parcels/:id/assign.
type AssignRiderRequest struct {
	RiderID    string `json:"riderId" binding:"required"`
	RiderName  string `json:"riderName" binding:"required"`
	RiderEmail string `json:"riderEmail" binding:"required,email"`
}

// UpdateParcelStatusRequest is the body of PATCH /parcels/:id/status.
type UpdateParcelStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// RegisterRiderRequest is the rider self-registration form.
type RegisterRiderRequest struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Age              int    `json:"age"`
	Region           string `json:"region"`
	District         string `json:"district" binding:"required"`
	Phone            string `json:"phone"`
	NID              string `json:"nid"`
	BikeBrand        string `json:"bike_brand"`
	BikeRegistration string `json:"bike_registration"`
}

// SetRiderStatusRequest is the body of PATCH /riders/status/:id. Email is the
// rider's user email; it drives the role side effect on activation.
type SetRiderStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Email  string `json:"email"`
}

// RecordPaymentRequest is the body of POST /payments.
type RecordPaymentRequest struct {
	ParcelID      string  `json:"parcelId" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Amount        float64 `json:"amount" binding:"required"`
	PaymentMethod string  `json:"paymentMethod"`
	TransactionID string  `json:"transactionId" binding:"required"`
}

// CreatePaymentIntentRequest is the body of POST /create-payment-intent.
type CreatePaymentIntentRequest struct {
	AmountInCents int64 `json:"amountInCents" binding:"required"`
}

// RecordTrackingRequest is the body of POST /trackings.
type RecordTrackingRequest struct {
	TrackingID string                 `json:"tracking_id"`
	Status     string                 `json:"status"`
	Message    string                 `json:"message"`
	UpdatedBy  string                 `json:"updated_by"`
	Details    map[string]interface{} `json:"details"`
}
