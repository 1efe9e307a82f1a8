package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vijaya/autospares-api/internal/domain/entity"
	"github.com/vijaya/autospares-api/internal/domain/enum"
)

func udhaariFixture() (*UdhaariService, uuid.UUID, *entity.Customer) {
	userID := uuid.New()
	customer := &entity.Customer{ID: uuid.New(), UserID: userID, Code: "CUST-001", Name: "Suresh"}
	return NewUdhaariService(newFakeUdhaariRepo(), newFakeCustomerRepo(customer)), userID, customer
}

func TestCreateUdhaariStartsPending(t *testing.T) {
	svc, userID, customer := udhaariFixture()

	udhaari, err := svc.CreateUdhaari(context.Background(), &CreateUdhaariInput{
		UserID:     userID,
		CustomerID: customer.ID,
		Amount:     decimal.NewFromInt(1500),
	})
	require.NoError(t, err)

	assert.Equal(t, enum.UdhaariStatusPending, udhaari.Status)
	assert.True(t, udhaari.PaidAmount.IsZero())
	assert.True(t, udhaari.Pending().Equal(decimal.NewFromInt(1500)))
}

func TestCreateUdhaariRejectsNonPositiveAmount(t *testing.T) {
	svc, userID, customer := udhaariFixture()

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-100)} {
		_, err := svc.CreateUdhaari(context.Background(), &CreateUdhaariInput{
			UserID:     userID,
			CustomerID: customer.ID,
			Amount:     amount,
		})
		assert.Error(t, err, "amount %s must be rejected", amount)
	}
}

func TestCreateUdhaariRejectsForeignCustomer(t *testing.T) {
	svc, _, customer := udhaariFixture()

	_, err := svc.CreateUdhaari(context.Background(), &CreateUdhaariInput{
		UserID:     uuid.New(),
		CustomerID: customer.ID,
		Amount:     decimal.NewFromInt(100),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Customer not found")
}

func TestRecordPaymentTransitions(t *testing.T) {
	svc, userID, customer := udhaariFixture()

	udhaari, err := svc.CreateUdhaari(context.Background(), &CreateUdhaariInput{
		UserID:     userID,
		CustomerID: customer.ID,
		Amount:     decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	// partial payment
	udhaari, err = svc.RecordPayment(context.Background(), userID, udhaari.ID, decimal.NewFromInt(400))
	require.NoError(t, err)
	assert.Equal(t, enum.UdhaariStatusPartial, udhaari.Status)
	assert.True(t, udhaari.Pending().Equal(decimal.NewFromInt(600)))

	// overpaying the remainder still settles
	udhaari, err = svc.RecordPayment(context.Background(), userID, udhaari.ID, decimal.NewFromInt(700))
	require.NoError(t, err)
	assert.Equal(t, enum.UdhaariStatusPaid, udhaari.Status)

	// a settled entry takes no further payments
	_, err = svc.RecordPayment(context.Background(), userID, udhaari.ID, decimal.NewFromInt(10))
	assert.Error(t, err)
}

func TestRecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	svc, userID, customer := udhaariFixture()

	udhaari, err := svc.CreateUdhaari(context.Background(), &CreateUdhaariInput{
		UserID:     userID,
		CustomerID: customer.ID,
		Amount:     decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	_, err = svc.RecordPayment(context.Background(), userID, udhaari.ID, decimal.Zero)
	assert.Error(t, err)
	_, err = svc.RecordPayment(context.Background(), userID, udhaari.ID, decimal.NewFromInt(-5))
	assert.Error(t, err)
}

func TestGetSummary(t *testing.T) {
	svc, userID, customer := udhaariFixture()

	first, err := svc.CreateUdhaari(context.Background(), &CreateUdhaariInput{
		UserID:     userID,
		CustomerID: customer.ID,
		Amount:     decimal.NewFromInt(1000),
	})
	require.NoError(t, err)
	_, err = svc.CreateUdhaari(context.Background(), &CreateUdhaariInput{
		UserID:     userID,
		CustomerID: customer.ID,
		Amount:     decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	_, err = svc.RecordPayment(context.Background(), userID, first.ID, decimal.NewFromInt(1000))
	require.NoError(t, err)

	summary, err := svc.GetSummary(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, summary.TotalAmount.Equal(decimal.NewFromInt(1500)))
	assert.True(t, summary.PaidAmount.Equal(decimal.NewFromInt(1000)))
	assert.True(t, summary.PendingAmount.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, int64(1), summary.OpenCount)
}
