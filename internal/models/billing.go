package models

import "time"

// SubscriptionStatus enumerates the gateway-reported subscription states.
type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionTrialing SubscriptionStatus = "trialing"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
)

// SubscriptionSnapshot is a point-in-time copy of a user's subscription
// as reported by the payment provider. At most one live snapshot exists
// per user; it is refreshed on demand, never incrementally updated.
type SubscriptionSnapshot struct {
	CustomerID         string             `db:"customer_id" json:"customer_id"`
	SubscriptionID     *string            `db:"subscription_id" json:"subscription_id,omitempty"`
	Status             SubscriptionStatus `db:"subscription_status" json:"subscription_status"`
	PriceID            *string            `db:"price_id" json:"price_id,omitempty"`
	CurrentPeriodStart *int64             `db:"current_period_start" json:"current_period_start,omitempty"`
	CurrentPeriodEnd   *int64             `db:"current_period_end" json:"current_period_end,omitempty"`
	CancelAtPeriodEnd  bool               `db:"cancel_at_period_end" json:"cancel_at_period_end"`
	PaymentMethodBrand *string            `db:"payment_method_brand" json:"payment_method_brand,omitempty"`
	PaymentMethodLast4 *string            `db:"payment_method_last4" json:"payment_method_last4,omitempty"`
}

// Order is a completed checkout recorded by the payment webhook.
// This service only reads orders; fulfillment writes them.
type Order struct {
	ID                string    `db:"id" json:"id"`
	UserID            string    `db:"user_id" json:"user_id"`
	CheckoutSessionID string    `db:"checkout_session_id" json:"checkout_session_id"`
	PaymentIntentID   string    `db:"payment_intent_id" json:"payment_intent_id"`
	AmountTotal       int64     `db:"amount_total" json:"amount_total"`
	Currency          string    `db:"currency" json:"currency"`
	PaymentStatus     string    `db:"payment_status" json:"payment_status"`
	OrderDate         time.Time `db:"order_date" json:"order_date"`
}

// PurchaseType tags what kind of catalog item a checkout is for.
type PurchaseType string

const (
	PurchaseCourse PurchaseType = "course"
	PurchasePath   PurchaseType = "path"
)
