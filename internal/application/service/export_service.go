package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/motorline/dealerdesk-api/internal/domain/entity"
	"github.com/motorline/dealerdesk-api/internal/domain/repository"
)

// ExportService renders ledger date ranges as CSV, XML or XLSX for the
// accountant-facing report downloads. Ranges are normalized to full-day
// bounds the same way the dashboard does.
type ExportService struct {
	collectionRepo repository.CollectionRepository
	serviceRepo    repository.ServiceCollectionRepository
}

// NewExportService creates a new export service
func NewExportService(collectionRepo repository.CollectionRepository, serviceRepo repository.ServiceCollectionRepository) *ExportService {
	return &ExportService{collectionRepo: collectionRepo, serviceRepo: serviceRepo}
}

var salesHeader = []string{"Receipt No", "Date", "Customer", "Cust Code", "Payment Mode", "Collection Type", "Vehicle Model", "Amount", "Remarks"}

func salesRow(c *entity.PaymentCollection) []string {
	row := []string{
		c.ReceiptNo,
		c.Date.Format("2006-01-02"),
		c.Customer.Name,
		c.Customer.CustCode,
		c.PaymentMode.Name,
		"",
		"",
		strconv.FormatFloat(c.Amount, 'f', 2, 64),
		"",
	}
	if c.CollectionType != nil {
		row[5] = c.CollectionType.Name
	}
	if c.VehicleModel != nil {
		row[6] = c.VehicleModel.Name
	}
	if c.Remarks != nil {
		row[8] = *c.Remarks
	}
	return row
}

var serviceHeader = []string{"Receipt No", "Date", "Customer", "Vehicle No", "Job Card No", "Payment Mode", "Status", "Received Amount", "Total Amount"}

func serviceRow(c *entity.ServicePaymentCollection) []string {
	row := []string{
		c.ReceiptNo,
		c.Date.Format("2006-01-02"),
		c.Customer.Name,
		"",
		"",
		c.PaymentMode.Name,
		string(c.PaymentStatus),
		strconv.FormatFloat(c.ReceivedAmount, 'f', 2, 64),
		"",
	}
	if c.VehicleNo != nil {
		row[3] = *c.VehicleNo
	}
	if c.JobCardNo != nil {
		row[4] = *c.JobCardNo
	}
	if c.TotalAmount != nil {
		row[8] = strconv.FormatFloat(*c.TotalAmount, 'f', 2, 64)
	}
	return row
}

// ExportSalesCSV renders the sales ledger range as CSV
func (s *ExportService) ExportSalesCSV(ctx context.Context, from, to time.Time) ([]byte, error) {
	rows, err := s.salesRows(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return writeCSV(salesHeader, rows)
}

// ExportServiceCSV renders the service ledger range as CSV
func (s *ExportService) ExportServiceCSV(ctx context.Context, from, to time.Time) ([]byte, error) {
	rows, err := s.serviceRows(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return writeCSV(serviceHeader, rows)
}

// ExportSalesXLSX renders the sales ledger range as an Excel workbook
func (s *ExportService) ExportSalesXLSX(ctx context.Context, from, to time.Time) ([]byte, error) {
	rows, err := s.salesRows(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return writeXLSX("Sales Collections", salesHeader, rows)
}

// ExportServiceXLSX renders the service ledger range as an Excel workbook
func (s *ExportService) ExportServiceXLSX(ctx context.Context, from, to time.Time) ([]byte, error) {
	rows, err := s.serviceRows(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return writeXLSX("Service Collections", serviceHeader, rows)
}

// xmlCollection is the XML export shape of one sales ledger entry
type xmlCollection struct {
	ReceiptNo   string  `xml:"receipt_no"`
	Date        string  `xml:"date"`
	Customer    string  `xml:"customer"`
	CustCode    string  `xml:"cust_code"`
	PaymentMode string  `xml:"payment_mode"`
	Amount      float64 `xml:"amount"`
}

type xmlCollections struct {
	XMLName xml.Name        `xml:"collections"`
	From    string          `xml:"from,attr"`
	To      string          `xml:"to,attr"`
	Entries []xmlCollection `xml:"collection"`
}

// xmlServiceCollection is the XML export shape of one service ledger entry
type xmlServiceCollection struct {
	ReceiptNo      string  `xml:"receipt_no"`
	Date           string  `xml:"date"`
	Customer       string  `xml:"customer"`
	VehicleNo      string  `xml:"vehicle_no,omitempty"`
	JobCardNo      string  `xml:"job_card_no,omitempty"`
	PaymentMode    string  `xml:"payment_mode"`
	Status         string  `xml:"status"`
	ReceivedAmount float64 `xml:"received_amount"`
}

type xmlServiceCollections struct {
	XMLName xml.Name               `xml:"service_collections"`
	From    string                 `xml:"from,attr"`
	To      string                 `xml:"to,attr"`
	Entries []xmlServiceCollection `xml:"collection"`
}

// ExportSalesXML renders the sales ledger range as XML
func (s *ExportService) ExportSalesXML(ctx context.Context, from, to time.Time) ([]byte, error) {
	start, end := NormalizeRange(from, to)
	collections, err := s.collectionRepo.ListRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	doc := xmlCollections{
		From:    start.Format("2006-01-02"),
		To:      end.Format("2006-01-02"),
		Entries: make([]xmlCollection, 0, len(collections)),
	}
	for i := range collections {
		c := &collections[i]
		doc.Entries = append(doc.Entries, xmlCollection{
			ReceiptNo:   c.ReceiptNo,
			Date:        c.Date.Format("2006-01-02"),
			Customer:    c.Customer.Name,
			CustCode:    c.Customer.CustCode,
			PaymentMode: c.PaymentMode.Name,
			Amount:      c.Amount,
		})
	}
	return marshalXML(doc)
}

// ExportServiceXML renders the service ledger range as XML
func (s *ExportService) ExportServiceXML(ctx context.Context, from, to time.Time) ([]byte, error) {
	start, end := NormalizeRange(from, to)
	collections, err := s.serviceRepo.ListRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	doc := xmlServiceCollections{
		From:    start.Format("2006-01-02"),
		To:      end.Format("2006-01-02"),
		Entries: make([]xmlServiceCollection, 0, len(collections)),
	}
	for i := range collections {
		c := &collections[i]
		entry := xmlServiceCollection{
			ReceiptNo:      c.ReceiptNo,
			Date:           c.Date.Format("2006-01-02"),
			Customer:       c.Customer.Name,
			PaymentMode:    c.PaymentMode.Name,
			Status:         string(c.PaymentStatus),
			ReceivedAmount: c.ReceivedAmount,
		}
		if c.VehicleNo != nil {
			entry.VehicleNo = *c.VehicleNo
		}
		if c.JobCardNo != nil {
			entry.JobCardNo = *c.JobCardNo
		}
		doc.Entries = append(doc.Entries, entry)
	}
	return marshalXML(doc)
}

func (s *ExportService) salesRows(ctx context.Context, from, to time.Time) ([][]string, error) {
	start, end := NormalizeRange(from, to)
	collections, err := s.collectionRepo.ListRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(collections))
	for i := range collections {
		rows = append(rows, salesRow(&collections[i]))
	}
	return rows, nil
}

func (s *ExportService) serviceRows(ctx context.Context, from, to time.Time) ([][]string, error) {
	start, end := NormalizeRange(from, to)
	collections, err := s.serviceRepo.ListRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(collections))
	for i := range collections {
		rows = append(rows, serviceRow(&collections[i]))
	}
	return rows, nil
}

func writeCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeXLSX(sheet string, header []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	for rowIdx, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshalXML(doc interface{}) ([]byte, error) {
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

// ExportFilename builds a download filename like sales_2024-01-01_2024-01-31.csv
func ExportFilename(prefix string, from, to time.Time, ext string) string {
	return fmt.Sprintf("%s_%s_%s.%s", prefix, from.Format("2006-01-02"), to.Format("2006-01-02"), ext)
}
