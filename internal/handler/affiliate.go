package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/shopluxe/backend/internal/model"
	"github.com/shopluxe/backend/internal/repository"
	"github.com/shopluxe/backend/internal/utils"
)

// affiliateCodeAttempts bounds the retry loop on referral-code
// collisions. The LUX#### space holds 9000 codes, so a handful of
// attempts is plenty until the program grows far beyond that.
const affiliateCodeAttempts = 5

// AffiliateHandler covers enrollment and the read-only dashboard.
type AffiliateHandler struct {
	Affiliates *repository.AffiliateRepo
}

func NewAffiliateHandler(a *repository.AffiliateRepo) *AffiliateHandler {
	return &AffiliateHandler{Affiliates: a}
}

type affiliateSignupReq struct {
	Email       string `json:"email"`
	PayPalEmail string `json:"paypal_email"`
}

type affiliateSignupResp struct {
	Success       bool   `json:"success"`
	AffiliateCode string `json:"affiliate_code"`
	Message       string `json:"message"`
}

type affiliateStatsResp struct {
	AffiliateCode         string             `json:"affiliate_code"`
	TotalClicks           int64              `json:"total_clicks"`
	TotalSales            int64              `json:"total_sales"`
	CommissionBalance     float64            `json:"commission_balance"`
	CurrentCommissionRate float64            `json:"current_commission_rate"`
	WithdrawalHistory     []model.Withdrawal `json:"withdrawal_history"`
}

// Signup enrolls a new affiliate with a fresh LUX code and zeroed
// counters, then emails the code. Code collisions are retried a bounded
// number of times against the unique index.
func (h *AffiliateHandler) Signup(c echo.Context) error {
	var req affiliateSignupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.PayPalEmail == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/paypal_email required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	var code string
	for attempt := 0; ; attempt++ {
		var err error
		code, err = utils.NewAffiliateCode()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "generate code failed"})
		}
		a := &model.Affiliate{
			ID:                uuid.NewString(),
			Email:             req.Email,
			UniqueCode:        code,
			PayPalEmail:       req.PayPalEmail,
			CommissionRate:    model.BaseCommissionRate,
			WithdrawalHistory: []model.Withdrawal{},
			CreatedAt:         time.Now().UTC(),
		}
		err = h.Affiliates.Create(ctx, a)
		if err == nil {
			break
		}
		if err == repository.ErrEmailExists {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Affiliate already exists"})
		}
		if err == repository.ErrCodeExists && attempt < affiliateCodeAttempts-1 {
			continue
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create affiliate failed"})
	}

	dispatchEmail(affiliateWelcomeEmail(req.Email, code))

	return c.JSON(http.StatusOK, affiliateSignupResp{
		Success:       true,
		AffiliateCode: code,
		Message:       "Affiliate account created successfully",
	})
}

// Dashboard projects the stored affiliate state. The effective
// commission rate is derived on read from the sales counter; the rest
// is returned verbatim.
func (h *AffiliateHandler) Dashboard(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, err := h.Affiliates.GetByCode(ctx, c.Param("code"))
	if err != nil {
		if err == repository.ErrAffiliateNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Affiliate not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	return c.JSON(http.StatusOK, affiliateStatsResp{
		AffiliateCode:         a.UniqueCode,
		TotalClicks:           a.TotalClicks,
		TotalSales:            a.TotalSales,
		CommissionBalance:     a.CommissionBalance,
		CurrentCommissionRate: a.EffectiveCommissionRate(),
		WithdrawalHistory:     a.WithdrawalHistory,
	})
}
