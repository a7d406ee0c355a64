package booking

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/teamsched/scheduler-backend/internal/pkg/calendar"
	"github.com/teamsched/scheduler-backend/internal/resource"
)

// Clash is a working day on which the resource would be booked beyond capacity.
type Clash struct {
	Date       time.Time
	TotalHours decimal.Decimal
	Capacity   decimal.Decimal
}

func (c Clash) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date       string  `json:"date"`
		TotalHours float64 `json:"totalHours"`
		Capacity   float64 `json:"capacity"`
	}{
		Date:       calendar.FormatDate(c.Date),
		TotalHours: c.TotalHours.InexactFloat64(),
		Capacity:   c.Capacity.InexactFloat64(),
	})
}

// OverallocationError carries every clashing day of a rejected write.
// It matches ErrOverallocation with errors.Is.
type OverallocationError struct {
	Clashes []Clash
}

func (e *OverallocationError) Error() string {
	return ErrOverallocation.Message
}

func (e *OverallocationError) Unwrap() error {
	return ErrOverallocation
}

func (e *OverallocationError) ErrorDetails() any {
	return map[string]any{"clashes": e.Clashes}
}

// Candidate is a proposed (resource, range, hours) assignment. ExcludeID names
// a booking to leave out of the sum, the booking being updated.
type Candidate struct {
	ResourceID  string
	Start       time.Time
	End         time.Time
	HoursPerDay float64
	ExcludeID   string
}

// FindClashes checks every working day of the candidate's range. The candidate's
// hours plus the hours of existing bookings covering the day must not exceed
// capacity; equality is allowed. Weekends are never counted.
func FindClashes(capacity float64, existing []*Booking, c Candidate) []Clash {
	limit := decimal.NewFromFloat(capacity)
	hours := decimal.NewFromFloat(c.HoursPerDay)

	var clashes []Clash
	for _, day := range calendar.WorkingDays(c.Start, c.End) {
		total := hours.Add(DailyLoad(existing, day))
		if total.GreaterThan(limit) {
			clashes = append(clashes, Clash{Date: day, TotalHours: total, Capacity: limit})
		}
	}
	return clashes
}

// ResourceReader is the part of the resource store the detector depends on.
type ResourceReader interface {
	GetByID(ctx context.Context, id string) (*resource.Resource, error)
}

// ClashDetector loads the data FindClashes needs. It does not serialize
// concurrent writers; callers hold the resource lock around detect-then-write.
type ClashDetector struct {
	resources ResourceReader
	bookings  Repository
}

func NewClashDetector(resources ResourceReader, bookings Repository) *ClashDetector {
	return &ClashDetector{resources: resources, bookings: bookings}
}

// Detect returns the clashing working days of c in date order, or none.
func (d *ClashDetector) Detect(ctx context.Context, c Candidate) ([]Clash, error) {
	res, err := d.resources.GetByID(ctx, c.ResourceID)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}

	existing, err := d.bookings.ListOverlapping(ctx, c.ResourceID, c.Start, c.End, c.ExcludeID)
	if err != nil {
		return nil, err
	}
	return FindClashes(res.CapacityHours, existing, c), nil
}
