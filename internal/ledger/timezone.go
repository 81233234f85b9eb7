package ledger

import (
	"fmt"
	"strings"
	"time"
)

// TimeZoneOffset is an immutable named UTC offset. It is used only when
// rendering receipt timestamps for humans; the UTC instant stays the system
// of record.
type TimeZoneOffset struct {
	name    string
	hours   int
	minutes int
}

// NewTimeZone builds a validated offset. Hours must stay strictly between
// -24 and 24, minutes strictly between -60 and 60.
func NewTimeZone(name string, hours, minutes int) (*TimeZoneOffset, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: time zone name cannot be empty", ErrValidation)
	}
	if hours <= -24 || hours >= 24 {
		return nil, fmt.Errorf("%w: hours can only have integer values from -23 to 23", ErrValidation)
	}
	if minutes <= -60 || minutes >= 60 {
		return nil, fmt.Errorf("%w: minutes can only have integer values from -59 to 59", ErrValidation)
	}
	return &TimeZoneOffset{name: strings.TrimSpace(name), hours: hours, minutes: minutes}, nil
}

func (tz *TimeZoneOffset) Name() string { return tz.name }

func (tz *TimeZoneOffset) Hours() int { return tz.hours }

func (tz *TimeZoneOffset) Minutes() int { return tz.minutes }

// Offset returns the signed duration east of UTC. It can be negative.
func (tz *TimeZoneOffset) Offset() time.Duration {
	return time.Duration(tz.hours)*time.Hour + time.Duration(tz.minutes)*time.Minute
}

// Location converts the offset into a fixed-zone location for time shifting.
func (tz *TimeZoneOffset) Location() *time.Location {
	return time.FixedZone(tz.name, int(tz.Offset()/time.Second))
}

func (tz *TimeZoneOffset) String() string {
	return fmt.Sprintf("TimeZone(name=%s, hours=%d, minutes=%d)", tz.name, tz.hours, tz.minutes)
}
