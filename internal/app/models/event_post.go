package models

import (
	"time"

	"eventboard/internal/pkg/apperrors"
)

// Validation messages returned to the caller on a rejected mutation.
const (
	MsgStartDayAfterEndDay = "Start day must be on or before end day"
	MsgStartTimeNotBefore  = "Start time must be before end time"
)

// EventPost defines the event post model based on the 'event_posts' table
type EventPost struct {
	ID             int64     `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	Content        string    `json:"content" db:"content"`
	Location       string    `json:"location" db:"location"`
	EnrollmentLink string    `json:"enrollmentLink,omitempty" db:"enrollment_link"`
	ImageLink      string    `json:"imageLink,omitempty" db:"image_link"`
	StartDay       Date      `json:"startDay" db:"start_day"`
	EndDay         Date      `json:"endDay" db:"end_day"`
	StartTime      TimeOfDay `json:"startTime" db:"start_time"`
	EndTime        TimeOfDay `json:"endTime" db:"end_time"`
	PostedBy       string    `json:"postedBy" db:"posted_by"`   // Username of the creator, assigned by the service layer
	PostedAt       time.Time `json:"postedAt" db:"posted_at"`   // Set once at construction
}

// EventPostUpdate carries a full replacement of an event post's mutable fields.
// The image link is excluded: it is set only through the upload flow.
type EventPostUpdate struct {
	Title          string
	Content        string
	Location       string
	EnrollmentLink string
	StartDay       Date
	EndDay         Date
	StartTime      TimeOfDay
	EndTime        TimeOfDay
}

// validateSchedule enforces the cross-field date/time rules: the start day
// must not be after the end day, and a same-day event must start strictly
// before it ends. Events spanning multiple days may cross midnight, so their
// time ordering is not checked.
func validateSchedule(startDay, endDay Date, startTime, endTime TimeOfDay) error {
	if startDay.After(endDay) {
		return apperrors.NewValidationError(MsgStartDayAfterEndDay)
	}
	if startDay.Equal(endDay) && !startTime.Before(endTime) {
		return apperrors.NewValidationError(MsgStartTimeNotBefore)
	}
	return nil
}

// NewEventPost creates an event post, rejecting schedules that violate the
// date/time ordering rules. PostedBy and ID are assigned later by the service
// and persistence layers respectively.
func NewEventPost(title, content, location, enrollmentLink string, startDay, endDay Date, startTime, endTime TimeOfDay) (*EventPost, error) {
	if err := validateSchedule(startDay, endDay, startTime, endTime); err != nil {
		return nil, err
	}
	return &EventPost{
		Title:          title,
		Content:        content,
		Location:       location,
		EnrollmentLink: enrollmentLink,
		StartDay:       startDay,
		EndDay:         endDay,
		StartTime:      startTime,
		EndTime:        endTime,
		PostedAt:       time.Now(),
	}, nil
}

// ApplyUpdate replaces every mutable field from the given update after
// validating the incoming cross-field state. A failed validation leaves the
// receiver completely untouched: the mutation is rejected as a whole, never
// partially applied.
func (e *EventPost) ApplyUpdate(u EventPostUpdate) error {
	if err := validateSchedule(u.StartDay, u.EndDay, u.StartTime, u.EndTime); err != nil {
		return err
	}

	e.Title = u.Title
	e.Content = u.Content
	e.EnrollmentLink = u.EnrollmentLink
	e.StartDay = u.StartDay
	e.EndDay = u.EndDay
	e.Location = u.Location
	e.StartTime = u.StartTime
	e.EndTime = u.EndTime
	return nil
}

// SetImageLink records the secure URL returned by the image host.
func (e *EventPost) SetImageLink(url string) {
	e.ImageLink = url
}
