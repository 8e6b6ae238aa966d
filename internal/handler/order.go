package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/shopluxe/backend/internal/catalog"
	"github.com/shopluxe/backend/internal/config"
	"github.com/shopluxe/backend/internal/model"
	"github.com/shopluxe/backend/internal/repository"
	"github.com/shopluxe/backend/internal/utils"
)

// OrderHandler captures orders against the static catalog. No payment
// gateway is involved: card payments are processed manually by an
// operator who is alerted by email, and every order stays "pending".
type OrderHandler struct {
	Cfg    config.Config
	Orders *repository.OrderRepo
}

func NewOrderHandler(cfg config.Config, o *repository.OrderRepo) *OrderHandler {
	return &OrderHandler{Cfg: cfg, Orders: o}
}

// cardInfo is the raw card payload submitted at checkout. It exists
// only in memory for the duration of the request: the persisted order
// keeps the masked number, cardholder name and save flag, while the
// full details go out through the operator alert email.
type cardInfo struct {
	CardNumber     string `json:"card_number"`
	ExpiryMonth    string `json:"expiry_month"`
	ExpiryYear     string `json:"expiry_year"`
	CVV            string `json:"cvv"`
	CardholderName string `json:"cardholder_name"`
	SaveCard       bool   `json:"save_card"`
}

type createOrderReq struct {
	ProductID     string    `json:"product_id"`
	PaymentMethod string    `json:"payment_method"` // "paypal" or "card"
	CardInfo      *cardInfo `json:"card_info"`
	AffiliateCode string    `json:"affiliate_code"`
}

type orderResp struct {
	Success bool   `json:"success"`
	OrderID string `json:"order_id"`
	Message string `json:"message"`
}

// CreateOrder validates the product, snapshots the catalog price and
// persists the order. The final price is always recomputed server-side;
// nothing price-related is trusted from the client.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req createOrderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.PaymentMethod != model.PaymentMethodPayPal && req.PaymentMethod != model.PaymentMethodCard {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "payment_method must be paypal or card"})
	}

	product, err := catalog.ProductByID(req.ProductID)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
	}

	o := &model.Order{
		ID:            uuid.NewString(),
		ProductID:     product.ID,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: model.PaymentStatusPending,
		IPAddress:     c.RealIP(),
		FinalPrice:    product.FinalPrice,
		CreatedAt:     time.Now().UTC(),
	}
	if req.AffiliateCode != "" {
		// Tag only; commission reconciliation happens outside this service.
		o.AffiliateCode = &req.AffiliateCode
	}

	var alert *cardInfo
	if req.PaymentMethod == model.PaymentMethodCard && req.CardInfo != nil {
		masked := utils.MaskCardNumber(req.CardInfo.CardNumber)
		holder := req.CardInfo.CardholderName
		save := req.CardInfo.SaveCard
		o.CardNumberMasked = &masked
		o.CardholderName = &holder
		o.SaveCard = &save
		alert = req.CardInfo
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Orders.Create(ctx, o); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create order failed"})
	}

	if alert != nil {
		dispatchEmail(cardAlertEmail(h.Cfg.OperatorEmail, o.ID, product, *alert))
	}

	return c.JSON(http.StatusOK, orderResp{
		Success: true,
		OrderID: o.ID,
		Message: "Order created successfully",
	})
}
