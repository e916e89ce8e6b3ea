package enrollment

import (
	"errors"
	"time"
)

var ErrInvalidStatus = errors.New("invalid enrollment status")

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if s == "canceled" {
		st = StatusCancelled
	}
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type Enrollment struct {
	ID           string    `json:"id"`
	InternshipID string    `json:"internshipId"`
	Status       Status    `json:"status"`
	EnrolledAt   time.Time `json:"enrolledAt,omitzero"`
}

// ApplicationView is the marketplace's copy of an application as listed in "my applications".
type ApplicationView struct {
	ID             string   `json:"id"`
	InternshipID   string   `json:"internshipId"`
	Status         string   `json:"status"`
	CouponCode     string   `json:"couponCode,omitempty"`
	DiscountAmount *float64 `json:"discountAmount,omitempty"`
	PaymentOrderID string   `json:"paymentOrderId,omitempty"`
}

// Snapshot is replaced wholesale on every refresh.
type Snapshot struct {
	Applications []ApplicationView `json:"applications"`
	Enrollments  []Enrollment      `json:"enrollments"`
	RefreshedAt  time.Time         `json:"refreshedAt"`
}

// Includes reports whether an enrollment for internshipID that was not cancelled is present.
func (s *Snapshot) Includes(internshipID string) bool {
	for _, e := range s.Enrollments {
		if e.InternshipID == internshipID && e.Status != StatusCancelled {
			return true
		}
	}
	return false
}

func (s *Snapshot) EnrolledInternshipIDs() []string {
	ids := make([]string, 0, len(s.Enrollments))
	for _, e := range s.Enrollments {
		if e.Status == StatusCancelled {
			continue
		}
		ids = append(ids, e.InternshipID)
	}
	return ids
}
