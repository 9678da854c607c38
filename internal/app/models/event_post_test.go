package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"eventboard/internal/app/models"
)

func TestNewEventPost_ScheduleValidation(t *testing.T) {
	tests := []struct {
		name      string
		startDay  models.Date
		endDay    models.Date
		startTime models.TimeOfDay
		endTime   models.TimeOfDay
		wantErr   string
	}{
		{
			name:      "same day with ordered times",
			startDay:  models.NewDate(2024, time.May, 1),
			endDay:    models.NewDate(2024, time.May, 1),
			startTime: models.NewTimeOfDay(10, 0, 0),
			endTime:   models.NewTimeOfDay(12, 0, 0),
		},
		{
			name:      "same day with reversed times",
			startDay:  models.NewDate(2024, time.May, 1),
			endDay:    models.NewDate(2024, time.May, 1),
			startTime: models.NewTimeOfDay(10, 0, 0),
			endTime:   models.NewTimeOfDay(9, 0, 0),
			wantErr:   models.MsgStartTimeNotBefore,
		},
		{
			name:      "same day with equal times",
			startDay:  models.NewDate(2024, time.May, 1),
			endDay:    models.NewDate(2024, time.May, 1),
			startTime: models.NewTimeOfDay(10, 0, 0),
			endTime:   models.NewTimeOfDay(10, 0, 0),
			wantErr:   models.MsgStartTimeNotBefore,
		},
		{
			name:      "multi day event may cross midnight",
			startDay:  models.NewDate(2024, time.May, 1),
			endDay:    models.NewDate(2024, time.May, 2),
			startTime: models.NewTimeOfDay(22, 0, 0),
			endTime:   models.NewTimeOfDay(2, 0, 0),
		},
		{
			name:      "start day after end day",
			startDay:  models.NewDate(2024, time.May, 3),
			endDay:    models.NewDate(2024, time.May, 1),
			startTime: models.NewTimeOfDay(10, 0, 0),
			endTime:   models.NewTimeOfDay(12, 0, 0),
			wantErr:   models.MsgStartDayAfterEndDay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post, err := models.NewEventPost("Talk", "A talk", "Hall A", "",
				tt.startDay, tt.endDay, tt.startTime, tt.endTime)

			if tt.wantErr != "" {
				assert.Nil(t, post)
				assert.EqualError(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, post)
			assert.False(t, post.PostedAt.IsZero())
		})
	}
}

func TestApplyUpdate_ReplacesAllFields(t *testing.T) {
	post, err := models.NewEventPost("Talk", "A talk", "Hall A", "",
		models.NewDate(2024, time.May, 1), models.NewDate(2024, time.May, 1),
		models.NewTimeOfDay(10, 0, 0), models.NewTimeOfDay(12, 0, 0))
	assert.NoError(t, err)
	post.SetImageLink("http://example.com/talk.png")

	update := models.EventPostUpdate{
		Title:          "Workshop",
		Content:        "A workshop",
		Location:       "Hall B",
		EnrollmentLink: "http://example.com/enroll",
		StartDay:       models.NewDate(2024, time.June, 1),
		EndDay:         models.NewDate(2024, time.June, 2),
		StartTime:      models.NewTimeOfDay(9, 0, 0),
		EndTime:        models.NewTimeOfDay(17, 0, 0),
	}

	err = post.ApplyUpdate(update)

	assert.NoError(t, err)
	assert.Equal(t, "Workshop", post.Title)
	assert.Equal(t, "A workshop", post.Content)
	assert.Equal(t, "Hall B", post.Location)
	assert.Equal(t, "http://example.com/enroll", post.EnrollmentLink)
	assert.Equal(t, models.NewDate(2024, time.June, 1), post.StartDay)
	assert.Equal(t, models.NewDate(2024, time.June, 2), post.EndDay)
	assert.Equal(t, models.NewTimeOfDay(9, 0, 0), post.StartTime)
	assert.Equal(t, models.NewTimeOfDay(17, 0, 0), post.EndTime)
	// The image link is only changed through the upload flow
	assert.Equal(t, "http://example.com/talk.png", post.ImageLink)
}

func TestApplyUpdate_RejectedMutationLeavesEntityUntouched(t *testing.T) {
	post, err := models.NewEventPost("Talk", "A talk", "Hall A", "",
		models.NewDate(2024, time.May, 1), models.NewDate(2024, time.May, 1),
		models.NewTimeOfDay(10, 0, 0), models.NewTimeOfDay(12, 0, 0))
	assert.NoError(t, err)

	update := models.EventPostUpdate{
		Title:     "Workshop",
		Content:   "A workshop",
		Location:  "Hall B",
		StartDay:  models.NewDate(2024, time.May, 1),
		EndDay:    models.NewDate(2024, time.May, 1),
		StartTime: models.NewTimeOfDay(10, 0, 0),
		EndTime:   models.NewTimeOfDay(9, 0, 0),
	}

	err = post.ApplyUpdate(update)

	assert.EqualError(t, err, models.MsgStartTimeNotBefore)
	// No field may change on a rejected update, including valid ones
	assert.Equal(t, "Talk", post.Title)
	assert.Equal(t, "A talk", post.Content)
	assert.Equal(t, "Hall A", post.Location)
	assert.Equal(t, models.NewTimeOfDay(12, 0, 0), post.EndTime)
}

func TestUserCanAuthenticate(t *testing.T) {
	user := &models.User{Username: "alice"}
	assert.True(t, user.CanAuthenticate())

	user.AccountLocked = true
	assert.False(t, user.CanAuthenticate())

	user.AccountLocked = false
	user.AccountExpired = true
	assert.False(t, user.CanAuthenticate())

	user.AccountExpired = false
	user.CredentialsExpired = true
	assert.False(t, user.CanAuthenticate())
}

func TestRolesHasAny(t *testing.T) {
	roles := models.Roles{models.RoleUser}
	assert.True(t, roles.HasAny(models.RoleUser, models.RoleAdmin))
	assert.False(t, roles.HasAny(models.RoleAdmin, models.RoleManagement))

	assert.False(t, models.Roles{}.HasAny(models.RoleUser))
}

func TestParseRole(t *testing.T) {
	role, err := models.ParseRole("ADMIN")
	assert.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)

	_, err = models.ParseRole("SUPERUSER")
	assert.Error(t, err)
}
