package sentinel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQueryMatchesTimeInterval(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	q := Query{Start: start, End: end, MaxCloudCover: 20}

	assert.True(t, q.Matches(start, 10), "start is inclusive")
	assert.True(t, q.Matches(start.AddDate(0, 6, 0), 10))
	assert.False(t, q.Matches(end, 10), "end is exclusive")
	assert.False(t, q.Matches(start.Add(-time.Second), 10))
	assert.False(t, q.Matches(end.Add(time.Hour), 10))
}

func TestQueryMatchesCloudCover(t *testing.T) {
	q := Query{
		Start:         time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		End:           time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		MaxCloudCover: 20,
	}
	at := time.Date(2023, 6, 1, 10, 30, 0, 0, time.UTC)

	assert.True(t, q.Matches(at, 0))
	assert.True(t, q.Matches(at, 19.99))
	assert.False(t, q.Matches(at, 20), "threshold is strict")
	assert.False(t, q.Matches(at, 85))
}
