package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"eventboard/internal/app/models"
)

func TestParseDate(t *testing.T) {
	d, err := models.ParseDate("2024-05-01")
	assert.NoError(t, err)
	assert.Equal(t, models.NewDate(2024, time.May, 1), d)

	_, err = models.ParseDate("01/05/2024")
	assert.Error(t, err)
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := models.ParseTimeOfDay("09:30")
	assert.NoError(t, err)
	assert.Equal(t, models.NewTimeOfDay(9, 30, 0), tod)

	tod, err = models.ParseTimeOfDay("09:30:15")
	assert.NoError(t, err)
	assert.Equal(t, models.NewTimeOfDay(9, 30, 15), tod)

	_, err = models.ParseTimeOfDay("9.30")
	assert.Error(t, err)
}

func TestTimeOfDayMicrosecondsRoundTrip(t *testing.T) {
	tod := models.NewTimeOfDay(13, 45, 30)
	assert.Equal(t, tod, models.TimeOfDayFromMicroseconds(tod.Microseconds()))

	midnight := models.NewTimeOfDay(0, 0, 0)
	assert.Equal(t, int64(0), midnight.Microseconds())
}

func TestScheduleJSONRoundTrip(t *testing.T) {
	type schedule struct {
		Day  models.Date      `json:"day"`
		Time models.TimeOfDay `json:"time"`
	}

	in := schedule{
		Day:  models.NewDate(2024, time.May, 1),
		Time: models.NewTimeOfDay(10, 0, 0),
	}

	data, err := json.Marshal(in)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"day":"2024-05-01","time":"10:00:00"}`, string(data))

	var out schedule
	assert.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}
