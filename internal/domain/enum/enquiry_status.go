package enum

// EnquiryStatus tracks a sales lead through its follow-up lifecycle.
type EnquiryStatus string

const (
	EnquiryStatusNew      EnquiryStatus = "new"
	EnquiryStatusFollowUp EnquiryStatus = "follow-up"
	EnquiryStatusClosed   EnquiryStatus = "closed"
)

// IsValid checks if the enquiry status is a known value
func (s EnquiryStatus) IsValid() bool {
	switch s {
	case EnquiryStatusNew, EnquiryStatusFollowUp, EnquiryStatusClosed:
		return true
	}
	return false
}
