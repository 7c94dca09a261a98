package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hustlepro/internal/models"
)

type mockPaymentStore struct{ mock.Mock }

func (m *mockPaymentStore) Create(ctx context.Context, p *models.Payment) error {
	return m.Called(ctx, p).Error(0)
}
func (m *mockPaymentStore) Update(ctx context.Context, p *models.Payment) error {
	return m.Called(ctx, p).Error(0)
}
func (m *mockPaymentStore) GetByID(ctx context.Context, userID, id string) (*models.Payment, error) {
	args := m.Called(ctx, userID, id)
	p, _ := args.Get(0).(*models.Payment)
	return p, args.Error(1)
}
func (m *mockPaymentStore) List(ctx context.Context, userID string) ([]models.Payment, error) {
	args := m.Called(ctx, userID)
	ps, _ := args.Get(0).([]models.Payment)
	return ps, args.Error(1)
}
func (m *mockPaymentStore) Delete(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

type mockInvoiceStore struct{ mock.Mock }

func (m *mockInvoiceStore) GetByID(ctx context.Context, userID, id string) (*models.Invoice, error) {
	args := m.Called(ctx, userID, id)
	inv, _ := args.Get(0).(*models.Invoice)
	return inv, args.Error(1)
}
func (m *mockInvoiceStore) Update(ctx context.Context, inv *models.Invoice) error {
	return m.Called(ctx, inv).Error(0)
}

type mockNotificationStore struct{ mock.Mock }

func (m *mockNotificationStore) Create(ctx context.Context, n *models.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func TestRecordCompletedPaymentAppliesToInvoice(t *testing.T) {
	payments := new(mockPaymentStore)
	invoices := new(mockInvoiceStore)
	notifications := new(mockNotificationStore)
	svc := NewPaymentService(payments, invoices, notifications)

	inv := &models.Invoice{
		ID:            "inv1",
		UserID:        "user1",
		Total:         1000,
		Status:        models.InvoiceSent,
		PaymentStatus: models.PaymentPending,
	}
	payments.On("Create", mock.Anything, mock.Anything).Return(nil)
	invoices.On("GetByID", mock.Anything, "user1", "inv1").Return(inv, nil)
	invoices.On("Update", mock.Anything, mock.Anything).Return(nil)
	notifications.On("Create", mock.Anything, mock.Anything).Return(nil)

	p := &models.Payment{
		UserID:    "user1",
		ClientID:  "client1",
		InvoiceID: "inv1",
		Amount:    400,
		Method:    models.MethodUPI,
		Status:    models.PaymentStateCompleted,
	}
	require.NoError(t, svc.Record(context.Background(), p))

	require.NotEmpty(t, p.ID)
	require.InDelta(t, 400, inv.PaidAmount, 1e-9)
	require.Equal(t, models.PaymentPartiallyPaid, inv.PaymentStatus)
	require.Equal(t, models.InvoiceSent, inv.Status)

	notifications.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(n *models.Notification) bool {
		return n.Type == models.NotifPaymentReceived && n.InvoiceID == "inv1"
	}))
}

func TestRecordPaymentSettlesInvoice(t *testing.T) {
	payments := new(mockPaymentStore)
	invoices := new(mockInvoiceStore)
	notifications := new(mockNotificationStore)
	svc := NewPaymentService(payments, invoices, notifications)

	inv := &models.Invoice{
		ID:            "inv1",
		UserID:        "user1",
		Total:         1000,
		PaidAmount:    400,
		Status:        models.InvoiceSent,
		PaymentStatus: models.PaymentPartiallyPaid,
	}
	payments.On("Create", mock.Anything, mock.Anything).Return(nil)
	invoices.On("GetByID", mock.Anything, "user1", "inv1").Return(inv, nil)
	invoices.On("Update", mock.Anything, mock.Anything).Return(nil)
	notifications.On("Create", mock.Anything, mock.Anything).Return(nil)

	p := &models.Payment{
		UserID:    "user1",
		ClientID:  "client1",
		InvoiceID: "inv1",
		Amount:    600,
		Method:    models.MethodBank,
		Status:    models.PaymentStateCompleted,
	}
	require.NoError(t, svc.Record(context.Background(), p))

	require.Equal(t, models.PaymentPaid, inv.PaymentStatus)
	require.Equal(t, models.InvoicePaid, inv.Status)
}

func TestRecordPendingPaymentDoesNotTouchInvoice(t *testing.T) {
	payments := new(mockPaymentStore)
	invoices := new(mockInvoiceStore)
	notifications := new(mockNotificationStore)
	svc := NewPaymentService(payments, invoices, notifications)

	payments.On("Create", mock.Anything, mock.Anything).Return(nil)
	notifications.On("Create", mock.Anything, mock.Anything).Return(nil)

	p := &models.Payment{
		UserID:    "user1",
		ClientID:  "client1",
		InvoiceID: "inv1",
		Amount:    400,
		Method:    models.MethodCash,
		Status:    models.PaymentStatePending,
	}
	require.NoError(t, svc.Record(context.Background(), p))

	invoices.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
	invoices.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRecordRejectsBadInput(t *testing.T) {
	svc := NewPaymentService(new(mockPaymentStore), new(mockInvoiceStore), new(mockNotificationStore))

	err := svc.Record(context.Background(), &models.Payment{UserID: "u", ClientID: "c", Amount: 0})
	require.Error(t, err)

	err = svc.Record(context.Background(), &models.Payment{UserID: "u", ClientID: "c", Amount: 10, Method: "cheque"})
	require.Error(t, err)
}
