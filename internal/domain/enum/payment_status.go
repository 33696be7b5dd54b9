package enum

// PaymentStatus is the settlement state of a service ledger entry.
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusPending   PaymentStatus = "pending"
)

// IsValid checks if the payment status is a known value
func (s PaymentStatus) IsValid() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusPending
}
