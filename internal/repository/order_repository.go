package repository

import (
	"context"
	"database/sql"

	"github.com/shopluxe/backend/internal/model"
)

// OrderRepo persists captured orders. Orders are written once with
// payment_status "pending"; there is no settlement state machine.
type OrderRepo struct{ DB *sql.DB }

func NewOrderRepo(db *sql.DB) *OrderRepo { return &OrderRepo{DB: db} }

// Create inserts an order row. Card fields are nullable and only set
// for card payments; by the time an order reaches this method the card
// number must already be masked to its tail-4 form.
func (r *OrderRepo) Create(ctx context.Context, o *model.Order) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO orders (id, product_id, payment_method, payment_status, card_number_masked, cardholder_name, save_card, ip_address, affiliate_code, final_price, created_at) VALUES (?,?,?,?,?,?,?,?,?,?,?)",
		o.ID, o.ProductID, o.PaymentMethod, o.PaymentStatus,
		o.CardNumberMasked, o.CardholderName, o.SaveCard,
		o.IPAddress, o.AffiliateCode, o.FinalPrice, o.CreatedAt)
	return err
}

// GetByID fetches a single order. Used by operator tooling and tests.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (model.Order, error) {
	var (
		o       model.Order
		masked  sql.NullString
		holder  sql.NullString
		save    sql.NullBool
		affCode sql.NullString
	)
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,product_id,payment_method,payment_status,card_number_masked,cardholder_name,save_card,ip_address,affiliate_code,final_price,created_at FROM orders WHERE id=? LIMIT 1",
		id).Scan(&o.ID, &o.ProductID, &o.PaymentMethod, &o.PaymentStatus,
		&masked, &holder, &save, &o.IPAddress, &affCode, &o.FinalPrice, &o.CreatedAt)
	if err != nil {
		return model.Order{}, err
	}
	if masked.Valid {
		o.CardNumberMasked = &masked.String
	}
	if holder.Valid {
		o.CardholderName = &holder.String
	}
	if save.Valid {
		b := save.Bool
		o.SaveCard = &b
	}
	if affCode.Valid {
		o.AffiliateCode = &affCode.String
	}
	return o, nil
}
