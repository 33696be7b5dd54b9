package service

import (
	"context"
	"fmt"

	"github.com/motorline/dealerdesk-api/internal/domain/entity"
	"github.com/motorline/dealerdesk-api/internal/domain/repository"
	"github.com/motorline/dealerdesk-api/pkg/apperror"
	"github.com/motorline/dealerdesk-api/pkg/printer"
)

// PrinterService renders ledger entries as thermal receipts and sends them
// to the configured ESC/POS printer. With the null printer configured the
// render still runs, so the raw bytes can be returned for preview.
type PrinterService struct {
	device         printer.Printer
	header         entity.ReceiptHeader
	collectionRepo repository.CollectionRepository
	serviceRepo    repository.ServiceCollectionRepository
	charWidth      int
}

// NewPrinterService creates a new printer service
func NewPrinterService(
	device printer.Printer,
	header entity.ReceiptHeader,
	collectionRepo repository.CollectionRepository,
	serviceRepo repository.ServiceCollectionRepository,
) *PrinterService {
	return &PrinterService{
		device:         device,
		header:         header,
		collectionRepo: collectionRepo,
		serviceRepo:    serviceRepo,
		charWidth:      32,
	}
}

// PrintSalesReceipt prints the receipt for a sales ledger entry
func (s *PrinterService) PrintSalesReceipt(ctx context.Context, id uint) (*entity.Receipt, error) {
	c, err := s.collectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.NewNotFoundError("Collection")
	}
	if c.IsDeleted() {
		return nil, apperror.NewConflictError("Cannot print a deleted collection")
	}

	receipt := &entity.Receipt{
		Header:      s.header,
		ReceiptNo:   c.ReceiptNo,
		Date:        c.Date.Format("02-01-2006"),
		Customer:    c.Customer.Name,
		CustCode:    c.Customer.CustCode,
		PaymentMode: c.PaymentMode.Name,
		Amount:      c.Amount,
	}
	if c.Remarks != nil {
		receipt.Remarks = *c.Remarks
	}
	if c.EnteredBy != nil {
		receipt.ReceivedBy = c.EnteredBy.FullName
	}

	return receipt, s.print(receipt)
}

// PrintServiceReceipt prints the receipt for a service ledger entry
func (s *PrinterService) PrintServiceReceipt(ctx context.Context, id uint) (*entity.Receipt, error) {
	c, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.NewNotFoundError("Service collection")
	}
	if c.IsDeleted() {
		return nil, apperror.NewConflictError("Cannot print a deleted collection")
	}

	receipt := &entity.Receipt{
		Header:      s.header,
		ReceiptNo:   c.ReceiptNo,
		Date:        c.Date.Format("02-01-2006"),
		Customer:    c.Customer.Name,
		CustCode:    c.Customer.CustCode,
		PaymentMode: c.PaymentMode.Name,
		Amount:      c.ReceivedAmount,
	}
	if c.VehicleNo != nil {
		receipt.VehicleNo = *c.VehicleNo
	}
	if c.JobCardNo != nil {
		receipt.JobCardNo = *c.JobCardNo
	}
	if c.Remarks != nil {
		receipt.Remarks = *c.Remarks
	}
	if c.EnteredBy != nil {
		receipt.ReceivedBy = c.EnteredBy.FullName
	}

	return receipt, s.print(receipt)
}

// Render builds the ESC/POS byte stream for a receipt.
func (s *PrinterService) Render(receipt *entity.Receipt) []byte {
	doc := printer.NewDocument(s.charWidth)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(receipt.Header.DealerName).
		SetFontSize(printer.FontNormal).
		SetBold(false)
	if receipt.Header.Address != "" {
		doc.Text(receipt.Header.Address)
	}
	if receipt.Header.Phone != "" {
		doc.Text("Ph: " + receipt.Header.Phone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-').
		KeyValue("Receipt", receipt.ReceiptNo).
		KeyValue("Date", receipt.Date)
	if receipt.Customer != "" {
		doc.KeyValue("Customer", receipt.Customer)
	}
	if receipt.CustCode != "" {
		doc.KeyValue("Code", receipt.CustCode)
	}
	if receipt.VehicleNo != "" {
		doc.KeyValue("Vehicle", receipt.VehicleNo)
	}
	if receipt.JobCardNo != "" {
		doc.KeyValue("Job Card", receipt.JobCardNo)
	}
	if receipt.PaymentMode != "" {
		doc.KeyValue("Mode", receipt.PaymentMode)
	}

	doc.Separator('-').
		SetBold(true).
		KeyValue("Amount", fmt.Sprintf("%.2f", receipt.Amount)).
		SetBold(false).
		Separator('-')

	if receipt.Remarks != "" {
		doc.Text(receipt.Remarks)
	}
	if receipt.ReceivedBy != "" {
		doc.Text("Received by: " + receipt.ReceivedBy)
	}

	doc.SetAlign(printer.AlignCenter).
		Text("Thank you!").
		FeedLines(3).
		Cut()

	return doc.Bytes()
}

func (s *PrinterService) print(receipt *entity.Receipt) error {
	if err := s.device.Print(s.Render(receipt)); err != nil {
		return apperror.NewAppError(502, "Printer error: "+err.Error())
	}
	return nil
}
