package sequence

import (
	"fmt"
	"strconv"
	"strings"
)

// Allocator produces prefixed, zero-padded receipt codes (RV0001, SRV0023).
// The two ledgers derive the next number differently: the sales ledger
// parses the previous code's numeric suffix, the service ledger increments
// the highest row id. Both derivations share this formatting.
type Allocator struct {
	Prefix string
	Width  int
}

// NewAllocator creates an allocator for the given prefix and pad width.
func NewAllocator(prefix string, width int) Allocator {
	if width <= 0 {
		width = 4
	}
	return Allocator{Prefix: prefix, Width: width}
}

// Format renders a sequence number as a receipt code.
func (a Allocator) Format(n uint64) string {
	return fmt.Sprintf("%s%0*d", a.Prefix, a.Width, n)
}

// Parse extracts the numeric suffix from a receipt code. It fails on a
// missing prefix or a non-numeric suffix; a corrupt predecessor code must
// abort the allocation rather than silently restart the sequence.
func (a Allocator) Parse(code string) (uint64, error) {
	if !strings.HasPrefix(code, a.Prefix) {
		return 0, fmt.Errorf("sequence: code %q does not carry prefix %q", code, a.Prefix)
	}
	suffix := strings.TrimPrefix(code, a.Prefix)
	if suffix == "" {
		return 0, fmt.Errorf("sequence: code %q has no numeric suffix", code)
	}
	n, err := strconv.ParseUint(suffix, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("sequence: code %q has a corrupt suffix: %w", code, err)
	}
	return n, nil
}

// NextFromCode derives the successor of the most recent receipt code.
// An empty lastCode starts the sequence at 1.
func (a Allocator) NextFromCode(lastCode string) (string, error) {
	if lastCode == "" {
		return a.Format(1), nil
	}
	n, err := a.Parse(lastCode)
	if err != nil {
		return "", err
	}
	return a.Format(n + 1), nil
}

// NextFromID derives a receipt code from the highest existing row id.
// Ids freed by out-of-band hard deletes are never reused, so the produced
// numbering may skip values; callers tolerate the gaps.
func (a Allocator) NextFromID(maxID uint) string {
	return a.Format(uint64(maxID) + 1)
}
