package idle

import (
	"fmt"
	"time"
)

// KeyPrefix prefixes every daily result key
const KeyPrefix = "idle_daily_"

// DateKeyLayout is the layout of the calendar date part of a key
const DateKeyLayout = "2006-01-02"

// DateKey formats t as the calendar date in loc
func DateKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DateKeyLayout)
}

// CacheKey builds the storage key for a hero's result on a date
func CacheKey(heroID, dateKey string) string {
	return fmt.Sprintf("%s%s_%s", KeyPrefix, heroID, dateKey)
}
