package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vijaya/autospares-api/internal/domain/entity"
)

func invoiceFixture() (*entity.Order, *entity.Customer, *entity.BusinessSettings) {
	phone := "+91 98765 43210"
	email := "ramesh@example.com"
	address := "12 MG Road, Vijayawada"
	gstin := "37ABCDE1234F1Z5"

	customer := &entity.Customer{
		ID:    uuid.New(),
		Code:  "CUST-003",
		Name:  "Ramesh Kumar",
		Phone: &phone,
		Email: &email,
	}

	settings := &entity.BusinessSettings{
		BusinessName: "Vijaya Auto Spares",
		Address:      &address,
		GSTIN:        &gstin,
		ContactPhone: &phone,
	}

	order := &entity.Order{
		ID:                uuid.New(),
		OrderNumber:       "ORD-042",
		TotalAmount:       decimal.NewFromInt(736),
		TotalSellingPrice: decimal.NewFromInt(700),
		CreatedAt:         time.Date(2025, 3, 14, 11, 30, 0, 0, time.UTC),
		Items: []entity.OrderItem{
			{
				PartName:   "Oil Filter (Bosch)",
				Quantity:   2,
				Price:      decimal.NewFromInt(118),
				SGSTAmount: decimal.NewFromInt(18),
				CGSTAmount: decimal.NewFromInt(18),
				TotalGST:   decimal.NewFromInt(36),
				Subtotal:   decimal.NewFromInt(236),
			},
			{
				PartName: "Brake Pad (TVS)",
				Quantity: 1,
				Price:    decimal.NewFromInt(500),
				Subtotal: decimal.NewFromInt(500),
			},
		},
	}

	return order, customer, settings
}

func TestRenderInvoiceProducesPDF(t *testing.T) {
	svc := NewInvoiceService(nil)
	order, customer, settings := invoiceFixture()

	pdf, err := svc.RenderInvoice(order, customer, settings)
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestRenderInvoiceRejectsMissingInputs(t *testing.T) {
	svc := NewInvoiceService(nil)
	order, customer, settings := invoiceFixture()

	_, err := svc.RenderInvoice(nil, customer, settings)
	assert.Error(t, err)
	_, err = svc.RenderInvoice(order, nil, settings)
	assert.Error(t, err)
	_, err = svc.RenderInvoice(order, customer, nil)
	assert.Error(t, err)
}

func TestTaxCellShowsDashForUntaxedLines(t *testing.T) {
	assert.Equal(t, "-", taxCell(decimal.Zero))
	assert.Equal(t, "₹18.00", taxCell(decimal.NewFromInt(18)))
}

func TestWhatsAppShare(t *testing.T) {
	svc := NewInvoiceService(nil)
	order, customer, settings := invoiceFixture()

	payload := svc.WhatsAppShare(order, customer, settings)

	assert.Contains(t, payload.Text, "Vijaya Auto Spares")
	assert.Contains(t, payload.Text, "ORD-042")
	assert.Contains(t, payload.Text, "Ramesh Kumar")
	assert.Contains(t, payload.Text, "₹736.00")
	assert.Contains(t, payload.Text, "14/03/2025")

	// the link targets the customer's number with non-digits stripped
	assert.Contains(t, payload.Link, "https://wa.me/919876543210?text=")
}

func TestWhatsAppShareWithoutPhoneStillBuildsLink(t *testing.T) {
	svc := NewInvoiceService(nil)
	order, customer, settings := invoiceFixture()
	customer.Phone = nil

	payload := svc.WhatsAppShare(order, customer, settings)
	assert.Contains(t, payload.Link, "https://wa.me/?text=")
}

func TestEmailShare(t *testing.T) {
	svc := NewInvoiceService(nil)
	order, customer, settings := invoiceFixture()

	payload := svc.EmailShare(order, customer, settings)

	assert.Equal(t, "Invoice ORD-042 from Vijaya Auto Spares", payload.Subject)
	assert.Contains(t, payload.Body, "Dear Ramesh Kumar")
	assert.Contains(t, payload.Body, "₹736.00")
	assert.Contains(t, payload.Link, "mailto:ramesh@example.com?subject=")
}

func TestSendInvoiceEmailRequiresCustomerEmail(t *testing.T) {
	svc := NewInvoiceService(nil)
	order, customer, settings := invoiceFixture()
	customer.Email = nil

	err := svc.SendInvoiceEmail(order, customer, settings)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no email address")
}
