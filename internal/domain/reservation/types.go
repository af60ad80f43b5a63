package reservation

// Status is the lifecycle axis of a reservation. It starts at pending;
// neither the storage layer nor the lifecycle commands guard against
// re-setting a terminal value, and re-approving intentionally regenerates
// the invoice.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func NewStatus(value string) (Status, error) {
	s := Status(value)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further lifecycle transition is defined
// out of this status.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// PaymentStatus is an independent axis from Status; it is mutated by its
// own operation and never by lifecycle transitions.
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

func NewPaymentStatus(value string) (PaymentStatus, error) {
	s := PaymentStatus(value)
	if !s.IsValid() {
		return "", ErrInvalidPaymentStatus
	}
	return s, nil
}

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentUnpaid, PaymentPaid, PaymentRefunded:
		return true
	default:
		return false
	}
}
