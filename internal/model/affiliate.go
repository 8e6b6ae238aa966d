package model

import "time"

// BaseCommissionRate is the commission percentage granted to every
// affiliate at enrollment. One bonus point is added per ten confirmed
// sales; see EffectiveCommissionRate.
const BaseCommissionRate = 4.0

// Withdrawal is a single entry in an affiliate's append-only withdrawal
// history. The history is persisted as a JSON array in the
// `affiliates.withdrawal_history` column.
type Withdrawal struct {
	Amount      float64   `json:"amount"`
	PayPalEmail string    `json:"paypal_email"`
	RequestedAt time.Time `json:"requested_at"`
}

// Affiliate represents a referral partner in the `affiliates` table.
//
// Fields:
//  ID                – UUID primary key.
//  Email             – unique contact email.
//  UniqueCode        – public referral code, format LUX + 4 digits.
//  PayPalEmail       – payout destination.
//  CommissionRate    – base rate in percent (4.0 at enrollment).
//  TotalClicks       – cumulative referral link clicks.
//  TotalSales        – cumulative confirmed sales.
//  CommissionBalance – accrued, not yet withdrawn commission.
//  WithdrawalHistory – append-only payout log (JSON column).
//  CreatedAt         – timestamp of creation.
//
// Nothing in the order path increments clicks, sales or balance;
// reconciliation is an external process. The dashboard only projects
// whatever these columns hold.
type Affiliate struct {
	ID                string       // affiliates.id
	Email             string       // affiliates.email
	UniqueCode        string       // affiliates.unique_code
	PayPalEmail       string       // affiliates.paypal_email
	CommissionRate    float64      // affiliates.commission_rate
	TotalClicks       int64        // affiliates.total_clicks
	TotalSales        int64        // affiliates.total_sales
	CommissionBalance float64      // affiliates.commission_balance
	WithdrawalHistory []Withdrawal // affiliates.withdrawal_history (JSON)
	CreatedAt         time.Time    // affiliates.created_at
}

// EffectiveCommissionRate derives the current payout percentage: the
// stored base rate plus one point per ten confirmed sales. The result
// is a monotonically increasing step function of sales volume.
func (a *Affiliate) EffectiveCommissionRate() float64 {
	return a.CommissionRate + float64(a.TotalSales/10)*1.0
}
