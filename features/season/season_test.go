package season

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultIsAlwaysWinter(t *testing.T) {
	assert.Equal(t, "winter", Default.Current())
	assert.Equal(t, "winter", New(false).Current())
}

func TestForMonth(t *testing.T) {
	cases := map[time.Month]string{
		time.January:   "winter",
		time.February:  "winter",
		time.March:     "spring",
		time.May:       "spring",
		time.June:      "summer",
		time.August:    "summer",
		time.September: "autumn",
		time.November:  "autumn",
		time.December:  "winter",
	}
	for month, want := range cases {
		assert.Equal(t, want, ForMonth(month), month.String())
	}
}

func TestByMonthUsesClock(t *testing.T) {
	r := ByMonth{Now: func() time.Time { return time.Date(2024, time.July, 4, 12, 0, 0, 0, time.UTC) }}
	assert.Equal(t, "summer", r.Current())

	_, ok := New(true).(ByMonth)
	assert.True(t, ok)
}
