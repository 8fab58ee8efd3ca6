package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCanceled  Status = "canceled"
	StatusCompleted Status = "completed"
)

func (s Status) Terminal() bool {
	return s == StatusCanceled || s == StatusCompleted
}

// ===============================
// Validations
// ===============================

// CanCancel only allows leaving Scheduled.
func CanCancel(current Status) error {
	if current != StatusScheduled {
		return ErrState()
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusScheduled {
		return ErrState()
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
