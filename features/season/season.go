package season

import (
	"time"

	"github.com/ttombbab/vibeprompt/constants"
)

// Resolver tells the season name used to pick the season description file.
type Resolver interface {
	Current() string
}

// Constant always resolves to the same season, regardless of the date.
type Constant string

// Default is the resolver used unless month based seasons are enabled.
const Default Constant = constants.SEASON_WINTER

func (c Constant) Current() string {
	return string(c)
}

// ByMonth resolves the meteorological season (northern hemisphere) from the current month.
type ByMonth struct {
	// Defaults to time.Now.
	Now func() time.Time
}

func (b ByMonth) Current() string {
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	return ForMonth(now().Month())
}

// ForMonth returns the season of month.
func ForMonth(month time.Month) string {
	switch month {
	case time.December, time.January, time.February:
		return constants.SEASON_WINTER
	case time.March, time.April, time.May:
		return constants.SEASON_SPRING
	case time.June, time.July, time.August:
		return constants.SEASON_SUMMER
	default:
		return constants.SEASON_AUTUMN
	}
}

// New returns ByMonth if seasonal is true, otherwise Default.
func New(seasonal bool) Resolver {
	if seasonal {
		return ByMonth{}
	}
	return Default
}
