package enum

// RecordStatus is the enable/disable flag carried by reference registry rows.
// Rows that are referenced by ledger entries are disabled rather than deleted.
type RecordStatus string

const (
	RecordStatusEnabled  RecordStatus = "enabled"
	RecordStatusDisabled RecordStatus = "disabled"
)

// IsValid checks if the record status is a known value
func (s RecordStatus) IsValid() bool {
	return s == RecordStatusEnabled || s == RecordStatusDisabled
}
