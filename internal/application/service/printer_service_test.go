package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motorline/dealerdesk-api/internal/domain/entity"
	"github.com/motorline/dealerdesk-api/pkg/apperror"
)

type capturePrinter struct {
	printed [][]byte
	fail    bool
}

func (p *capturePrinter) Print(data []byte) error {
	if p.fail {
		return errors.New("paper jam")
	}
	p.printed = append(p.printed, data)
	return nil
}

func (p *capturePrinter) Close() error      { return nil }
func (p *capturePrinter) IsConnected() bool { return true }

func newPrinterFixture(t *testing.T, device *capturePrinter) (*PrinterService, *fakeCollectionRepo, *fakeServiceCollectionRepo) {
	t.Helper()
	collRepo := newFakeCollectionRepo()
	svcRepo := newFakeServiceCollectionRepo()
	header := entity.ReceiptHeader{DealerName: "Motorline Motors", Address: "12 MG Road", Phone: "08012345678"}
	return NewPrinterService(device, header, collRepo, svcRepo), collRepo, svcRepo
}

func TestPrintSalesReceipt(t *testing.T) {
	device := &capturePrinter{}
	svc, collRepo, _ := newPrinterFixture(t, device)
	ctx := context.Background()

	entry := &entity.PaymentCollection{
		ReceiptNo:     "RV0042",
		Date:          time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		Amount:        1500,
		CustomerID:    1,
		PaymentModeID: 1,
		Customer:      entity.Customer{Name: "Anand", CustCode: "CUST001"},
		PaymentMode:   entity.PaymentMode{Name: "Cash"},
	}
	require.NoError(t, collRepo.Create(ctx, entry))

	receipt, err := svc.PrintSalesReceipt(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "RV0042", receipt.ReceiptNo)
	assert.Equal(t, "10-08-2026", receipt.Date)
	assert.Equal(t, 1500.0, receipt.Amount)

	require.Len(t, device.printed, 1)
	raw := string(device.printed[0])
	assert.Contains(t, raw, "Motorline Motors")
	assert.Contains(t, raw, "RV0042")
	assert.Contains(t, raw, "Thank you!")
}

func TestPrintDeletedCollectionConflicts(t *testing.T) {
	device := &capturePrinter{}
	svc, collRepo, _ := newPrinterFixture(t, device)
	ctx := context.Background()

	entry := &entity.PaymentCollection{ReceiptNo: "RV0001", Date: time.Now(), Amount: 100, CustomerID: 1, PaymentModeID: 1}
	require.NoError(t, collRepo.Create(ctx, entry))
	require.NoError(t, collRepo.SoftDelete(ctx, entry.ID, nil))

	_, err := svc.PrintSalesReceipt(ctx, entry.ID)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
	assert.Empty(t, device.printed)
}

func TestPrintServiceReceiptIncludesVehicle(t *testing.T) {
	device := &capturePrinter{}
	svc, _, svcRepo := newPrinterFixture(t, device)
	ctx := context.Background()

	vehicleNo := "KA01AB1234"
	entry := &entity.ServicePaymentCollection{
		ReceiptNo:      "SRV0007",
		Date:           time.Now(),
		ReceivedAmount: 750,
		VehicleNo:      &vehicleNo,
		CustomerID:     1,
		PaymentModeID:  1,
		Customer:       entity.Customer{Name: "Anand", CustCode: "CUST001"},
		PaymentMode:    entity.PaymentMode{Name: "UPI"},
	}
	require.NoError(t, svcRepo.Create(ctx, entry))

	receipt, err := svc.PrintServiceReceipt(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "KA01AB1234", receipt.VehicleNo)

	require.Len(t, device.printed, 1)
	assert.Contains(t, string(device.printed[0]), "KA01AB1234")
}

func TestPrintDeviceFailureMapsToBadGateway(t *testing.T) {
	device := &capturePrinter{fail: true}
	svc, collRepo, _ := newPrinterFixture(t, device)
	ctx := context.Background()

	entry := &entity.PaymentCollection{ReceiptNo: "RV0001", Date: time.Now(), Amount: 100, CustomerID: 1, PaymentModeID: 1}
	require.NoError(t, collRepo.Create(ctx, entry))

	_, err := svc.PrintSalesReceipt(ctx, entry.ID)
	require.Error(t, err)
	assert.Equal(t, 502, apperror.GetAppError(err).Code)
}
