package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopluxe/backend/internal/model"
)

// AffiliateRepo encapsulates queries on the 'affiliates' table. The
// withdrawal history lives in a JSON column and is (de)serialized here
// so the rest of the code only ever sees []model.Withdrawal.
type AffiliateRepo struct{ DB *sql.DB }

func NewAffiliateRepo(db *sql.DB) *AffiliateRepo { return &AffiliateRepo{DB: db} }

// Create inserts a new affiliate. Both the email and the referral code
// carry unique indexes; the duplicate-key error is mapped to
// ErrEmailExists or ErrCodeExists depending on which index fired, so
// the caller can retry code collisions without re-reading the table.
func (r *AffiliateRepo) Create(ctx context.Context, a *model.Affiliate) error {
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	history, err := json.Marshal(a.WithdrawalHistory)
	if err != nil {
		return err
	}
	if a.WithdrawalHistory == nil {
		history = []byte("[]")
	}
	_, err = r.DB.ExecContext(ctx,
		"INSERT INTO affiliates (id, email, unique_code, paypal_email, commission_rate, total_clicks, total_sales, commission_balance, withdrawal_history, created_at) VALUES (?,?,?,?,?,?,?,?,?,?)",
		a.ID, a.Email, a.UniqueCode, a.PayPalEmail, a.CommissionRate,
		a.TotalClicks, a.TotalSales, a.CommissionBalance, history, a.CreatedAt)
	if err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "1062") {
			if strings.Contains(msg, "unique_code") {
				return ErrCodeExists
			}
			return ErrEmailExists
		}
		return err
	}
	return nil
}

// GetByCode fetches an affiliate by its public referral code.
func (r *AffiliateRepo) GetByCode(ctx context.Context, code string) (model.Affiliate, error) {
	var (
		a       model.Affiliate
		history []byte
	)
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,unique_code,paypal_email,commission_rate,total_clicks,total_sales,commission_balance,withdrawal_history,created_at FROM affiliates WHERE unique_code=? LIMIT 1",
		code).Scan(&a.ID, &a.Email, &a.UniqueCode, &a.PayPalEmail, &a.CommissionRate,
		&a.TotalClicks, &a.TotalSales, &a.CommissionBalance, &history, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Affiliate{}, ErrAffiliateNotFound
		}
		return model.Affiliate{}, err
	}
	a.WithdrawalHistory = []model.Withdrawal{}
	if len(history) > 0 {
		if err := json.Unmarshal(history, &a.WithdrawalHistory); err != nil {
			return model.Affiliate{}, err
		}
	}
	return a, nil
}
