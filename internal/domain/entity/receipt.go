package entity

// ReceiptHeader holds the dealership header printed at the top of a receipt.
type ReceiptHeader struct {
	DealerName string `json:"dealer_name"`
	Address    string `json:"address,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// Receipt is a value object representing a printable payment receipt.
// It is composed from ledger data at print time, never stored.
type Receipt struct {
	Header      ReceiptHeader `json:"header"`
	ReceiptNo   string        `json:"receipt_no"`
	Date        string        `json:"date"`
	Customer    string        `json:"customer,omitempty"`
	CustCode    string        `json:"cust_code,omitempty"`
	PaymentMode string        `json:"payment_mode,omitempty"`
	VehicleNo   string        `json:"vehicle_no,omitempty"`
	JobCardNo   string        `json:"job_card_no,omitempty"`
	Remarks     string        `json:"remarks,omitempty"`
	Amount      float64       `json:"amount"`
	ReceivedBy  string        `json:"received_by,omitempty"`
}
