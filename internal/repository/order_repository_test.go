package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopluxe/backend/internal/model"
)

func TestOrderRepoCreatePayPal(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepo(db)

	o := &model.Order{
		ID:            "ord-1",
		ProductID:     "aes_002",
		PaymentMethod: model.PaymentMethodPayPal,
		PaymentStatus: model.PaymentStatusPending,
		IPAddress:     "203.0.113.9",
		FinalPrice:    127.50,
		CreatedAt:     time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO orders").
		WithArgs(o.ID, o.ProductID, o.PaymentMethod, o.PaymentStatus,
			nil, nil, nil, o.IPAddress, nil, o.FinalPrice, o.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), o))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepoCreateCardKeepsOnlyMaskedNumber(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepo(db)

	masked := "****-****-****-1111"
	holder := "J. Shopper"
	save := true
	aff := "LUX4821"
	o := &model.Order{
		ID:               "ord-2",
		ProductID:        "clo_005",
		PaymentMethod:    model.PaymentMethodCard,
		PaymentStatus:    model.PaymentStatusPending,
		CardNumberMasked: &masked,
		CardholderName:   &holder,
		SaveCard:         &save,
		IPAddress:        "203.0.113.9",
		AffiliateCode:    &aff,
		FinalPrice:       139.99,
		CreatedAt:        time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO orders").
		WithArgs(o.ID, o.ProductID, o.PaymentMethod, o.PaymentStatus,
			&masked, &holder, &save, o.IPAddress, &aff, o.FinalPrice, o.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), o))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepoGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepo(db)

	cols := []string{
		"id", "product_id", "payment_method", "payment_status", "card_number_masked",
		"cardholder_name", "save_card", "ip_address", "affiliate_code", "final_price", "created_at",
	}
	rows := sqlmock.NewRows(cols).
		AddRow("ord-2", "clo_005", "card", "pending", "****-****-****-1111",
			"J. Shopper", true, "203.0.113.9", "LUX4821", 139.99, time.Now().UTC())

	mock.ExpectQuery("SELECT (.+) FROM orders WHERE id=").
		WithArgs("ord-2").
		WillReturnRows(rows)

	o, err := repo.GetByID(context.Background(), "ord-2")
	require.NoError(t, err)
	require.NotNil(t, o.CardNumberMasked)
	assert.Equal(t, "****-****-****-1111", *o.CardNumberMasked)
	require.NotNil(t, o.SaveCard)
	assert.True(t, *o.SaveCard)
	assert.Equal(t, "pending", o.PaymentStatus)
}
