package appointment

import (
	"strings"

	"pet-scheduler/internal/pkg/errs"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusInService Status = "IN_SERVICE"
	StatusDone      Status = "DONE"
	StatusCanceled  Status = "CANCELED"
)

var AllStatuses = []Status{StatusPending, StatusConfirmed, StatusInService, StatusDone, StatusCanceled}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInService, StatusDone, StatusCanceled:
		return true
	default:
		return false
	}
}

// Occupies reports whether an appointment in this status holds its interval.
func (s Status) Occupies() bool {
	return s != StatusCanceled
}

func (s Status) IsTerminal() bool {
	return s == StatusDone || s == StatusCanceled
}

func ParseStatus(raw string) (Status, error) {
	s := Status(strings.TrimSpace(raw))
	if !s.IsValid() {
		return "", errs.Invalidf("unknown status %q", raw)
	}
	return s, nil
}

// TransitionPolicy decides which status changes are permitted.
type TransitionPolicy interface {
	Allow(from, to Status) bool
}

// FreeTransitions permits any change between valid statuses.
type FreeTransitions struct{}

func (FreeTransitions) Allow(from, to Status) bool {
	return from.IsValid() && to.IsValid()
}

// StrictTransitions follows the service lifecycle
// PENDING -> CONFIRMED -> IN_SERVICE -> DONE, with cancel from any open state.
type StrictTransitions struct{}

var strictNext = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCanceled},
	StatusConfirmed: {StatusInService, StatusCanceled},
	StatusInService: {StatusDone, StatusCanceled},
}

func (StrictTransitions) Allow(from, to Status) bool {
	if from == to {
		return from.IsValid()
	}
	for _, next := range strictNext[from] {
		if next == to {
			return true
		}
	}
	return false
}

func PolicyFromName(name string) (TransitionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "free":
		return FreeTransitions{}, nil
	case "strict":
		return StrictTransitions{}, nil
	default:
		return nil, errs.Invalidf("unknown transition policy %q", name)
	}
}
