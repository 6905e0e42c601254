package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusDeclined  Status = "declined"
)

// BlockingStatuses are the statuses that occupy a vehicle's calendar and
// can cause conflicts with new requests.
var BlockingStatuses = []Status{StatusPending, StatusConfirmed}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusDeclined:
		return true
	default:
		return false
	}
}

func (s Status) Blocks() bool {
	switch s {
	case StatusPending, StatusConfirmed:
		return true
	case StatusCompleted, StatusCancelled, StatusDeclined:
		return false
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusDeclined:
		return true
	case StatusPending, StatusConfirmed:
		return false
	default:
		return false
	}
}

func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusDeclined || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	case StatusCompleted, StatusCancelled, StatusDeclined:
		return false
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
