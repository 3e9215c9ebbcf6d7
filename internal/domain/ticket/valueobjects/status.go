package valueobjects

import "fmt"

type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// FilterAll is the list-filter sentinel meaning "no status restriction".
// It is never a valid stored status.
const FilterAll = "ALL"

var validStatuses = map[Status]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusDone:       true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsDone() bool {
	return s == StatusDone
}

// DisplayName returns the human-readable label for the status.
// The switch is exhaustive over the closed set of statuses.
func (s Status) DisplayName() string {
	switch s {
	case StatusOpen:
		return "Open"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	default:
		return string(s)
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid status: %s", s)
	}
	return st, nil
}

// ParseStatusFilter interprets a list-filter status parameter. Empty string
// and FilterAll mean no restriction and yield nil.
func ParseStatusFilter(s string) (*Status, error) {
	if s == "" || s == FilterAll {
		return nil, nil
	}
	st, err := NewStatus(s)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func Statuses() []Status {
	return []Status{StatusOpen, StatusInProgress, StatusDone}
}
