package cache

import (
	"time"
)

// TimeUntilNextMinute returns the duration from now until the next minute boundary.
// A minute bar series cannot change before the current minute closes.
func TimeUntilNextMinute(now time.Time) time.Duration {
	next := now.Truncate(time.Minute).Add(time.Minute)
	d := next.Sub(now)
	if d < time.Second {
		// 境界直前は次の分まで含める
		d += time.Minute
	}
	return d
}
