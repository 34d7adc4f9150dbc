package leave

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInclusiveDays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start Date
		end   Date
		want  int
	}{
		{"single day", NewDate(2024, time.June, 1), NewDate(2024, time.June, 1), 1},
		{"three days", NewDate(2024, time.June, 1), NewDate(2024, time.June, 3), 3},
		{"month boundary", NewDate(2024, time.June, 29), NewDate(2024, time.July, 2), 4},
		{"leap february", NewDate(2024, time.February, 28), NewDate(2024, time.March, 1), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, InclusiveDays(tt.start, tt.end))
		})
	}
}

func TestDate_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-06-01"`), &d))
	assert.Equal(t, "2024-06-01", d.String())

	// Upstream sends empty strings and MySQL zero dates for unset values.
	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`"0000-00-00"`), &d))
	assert.True(t, d.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"June 1st"`), &d))
}

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2024-06-01T10:00:00Z"`), &ts))
	assert.Equal(t, time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC), ts.Time)

	// MySQL-backed endpoints send a space-separated clock.
	require.NoError(t, json.Unmarshal([]byte(`"2024-06-01 10:00:00"`), &ts))
	assert.Equal(t, time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC), ts.Time)

	require.NoError(t, json.Unmarshal([]byte(`"2024-06-01"`), &ts))
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), ts.Time)

	require.NoError(t, json.Unmarshal([]byte(`""`), &ts))
	assert.True(t, ts.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`"0000-00-00 00:00:00"`), &ts))
	assert.True(t, ts.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"ten past ten"`), &ts))
}

func TestLeaveRequest_DecodesMySQLTimestamps(t *testing.T) {
	t.Parallel()

	body := `{
		"id": 101,
		"employee_id": 7,
		"apply_start_date": "2024-06-01",
		"apply_end_date": "2024-06-03",
		"status": "pending",
		"created_at": "2024-06-01 10:00:00",
		"updated_at": ""
	}`

	var request LeaveRequest
	require.NoError(t, json.Unmarshal([]byte(body), &request))

	assert.Equal(t, 101, request.ID)
	assert.Equal(t, time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC), request.CreatedAt.Time)
	assert.True(t, request.UpdatedAt.IsZero())
}

func TestDate_MarshalJSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(NewDate(2024, time.June, 1))
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-01"`, string(b))

	b, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, `""`, string(b))
}
