package models

import "time"

// Payment is an append-only record of a completed charge for a parcel.
type Payment struct {
	ID            string    `json:"id" firestore:"-"`
	ParcelID      string    `json:"parcelId" firestore:"parcelId"`
	Email         string    `json:"email" firestore:"email"`
	Amount        float64   `json:"amount" firestore:"amount"`
	PaymentMethod string    `json:"paymentMethod,omitempty" firestore:"paymentMethod,omitempty"`
	TransactionID string    `json:"transactionId" firestore:"transactionId"`
	PaidAt        time.Time `json:"paid_at" firestore:"paid_at"`
}
