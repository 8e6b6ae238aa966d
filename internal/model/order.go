package model

import "time"

// PaymentMethodPayPal and PaymentMethodCard are the two payment methods
// accepted at checkout. Card orders carry a masked card summary; PayPal
// orders carry none.
const (
	PaymentMethodPayPal = "paypal"
	PaymentMethodCard   = "card"
)

// PaymentStatusPending is the initial (and currently only) payment state.
// Settlement happens out-of-band, so no transition logic exists here.
const PaymentStatusPending = "pending"

// Order records a purchase attempt in the `orders` table. The final
// price is snapshotted at order time from the catalog, never taken from
// the client. For card payments only a masked tail-4 representation of
// the card number is ever written; the raw number, expiry and CVV leave
// the system through the operator alert email instead.
//
// Fields:
//  ID               – UUID primary key of the order.
//  ProductID        – catalog id of the purchased product.
//  PaymentMethod    – "paypal" or "card".
//  PaymentStatus    – always "pending" on creation.
//  CardNumberMasked – masked card number, e.g. "****-****-****-1234" (nullable).
//  CardholderName   – name on the card (nullable).
//  SaveCard         – whether the client asked to remember the card (nullable).
//  IPAddress        – client IP the order originated from.
//  AffiliateCode    – referral code attached to the order, if any (nullable).
//  FinalPrice       – catalog-derived price snapshot.
//  CreatedAt        – timestamp of creation.
type Order struct {
	ID               string    // orders.id
	ProductID        string    // orders.product_id
	PaymentMethod    string    // orders.payment_method
	PaymentStatus    string    // orders.payment_status
	CardNumberMasked *string   // orders.card_number_masked (nullable)
	CardholderName   *string   // orders.cardholder_name (nullable)
	SaveCard         *bool     // orders.save_card (nullable)
	IPAddress        string    // orders.ip_address
	AffiliateCode    *string   // orders.affiliate_code (nullable)
	FinalPrice       float64   // orders.final_price
	CreatedAt        time.Time // orders.created_at
}
