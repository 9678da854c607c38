package dto

import (
	"time"

	"eventboard/internal/app/models"
)

// EventPostRequest is the client-supplied body for creating or fully
// replacing an event post. The id, owner and creation timestamp are
// server-assigned and never accepted from the client.
type EventPostRequest struct {
	Title          string            `json:"title" binding:"required"`
	Content        string            `json:"content" binding:"required"`
	Location       string            `json:"location" binding:"required"`
	EnrollmentLink string            `json:"enrollmentLink"`
	StartDay       *models.Date      `json:"startDay" binding:"required"`
	EndDay         *models.Date      `json:"endDay" binding:"required"`
	StartTime      *models.TimeOfDay `json:"startTime" binding:"required"`
	EndTime        *models.TimeOfDay `json:"endTime" binding:"required"`
}

// ToEventPost builds a validated entity from the request.
func (r *EventPostRequest) ToEventPost() (*models.EventPost, error) {
	return models.NewEventPost(r.Title, r.Content, r.Location, r.EnrollmentLink,
		*r.StartDay, *r.EndDay, *r.StartTime, *r.EndTime)
}

// ToUpdate converts the request into a full-replace update.
func (r *EventPostRequest) ToUpdate() models.EventPostUpdate {
	return models.EventPostUpdate{
		Title:          r.Title,
		Content:        r.Content,
		Location:       r.Location,
		EnrollmentLink: r.EnrollmentLink,
		StartDay:       *r.StartDay,
		EndDay:         *r.EndDay,
		StartTime:      *r.StartTime,
		EndTime:        *r.EndTime,
	}
}

// EventPostResponse is the read projection of an event post.
type EventPostResponse struct {
	ID             int64            `json:"id"`
	Title          string           `json:"title"`
	Content        string           `json:"content"`
	Location       string           `json:"location"`
	EnrollmentLink string           `json:"enrollmentLink,omitempty"`
	ImageLink      string           `json:"imageLink,omitempty"`
	StartDay       models.Date      `json:"startDay"`
	EndDay         models.Date      `json:"endDay"`
	StartTime      models.TimeOfDay `json:"startTime"`
	EndTime        models.TimeOfDay `json:"endTime"`
	PostedBy       string           `json:"postedBy"`
	PostedAt       time.Time        `json:"postedAt"`
}

// NewEventPostResponse projects an entity to its API representation.
func NewEventPostResponse(e *models.EventPost) EventPostResponse {
	return EventPostResponse{
		ID:             e.ID,
		Title:          e.Title,
		Content:        e.Content,
		Location:       e.Location,
		EnrollmentLink: e.EnrollmentLink,
		ImageLink:      e.ImageLink,
		StartDay:       e.StartDay,
		EndDay:         e.EndDay,
		StartTime:      e.StartTime,
		EndTime:        e.EndTime,
		PostedBy:       e.PostedBy,
		PostedAt:       e.PostedAt,
	}
}

// EventPostListResponse is a page of event posts.
type EventPostListResponse struct {
	Events         []EventPostResponse `json:"events"`
	PaginationInfo PaginationInfo      `json:"pagination"`
}

// CreatedResponse carries the generated id of a newly created resource.
type CreatedResponse struct {
	ID int64 `json:"id"`
}
