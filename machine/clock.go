package machine

import "time"

// Clock exposes the wall clock, one field per port.
type Clock struct {
	// Now, if set, replaces time.Now for tests.
	Now func() time.Time
}

func (c *Clock) In(p byte) byte {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	t := now()
	switch p {
	case 0x0:
		return byte(t.Year() >> 8)
	case 0x1:
		return byte(t.Year())
	case 0x2:
		return byte(t.Month()) - 1 // January is 0
	case 0x3:
		return byte(t.Day())
	case 0x4:
		return byte(t.Hour())
	case 0x5:
		return byte(t.Minute())
	case 0x6:
		return byte(t.Second())
	case 0x7:
		return byte(t.Weekday()) // Sunday is 0
	case 0x8:
		return byte((t.YearDay() - 1) >> 8) // 1 January is 0
	case 0x9:
		return byte(t.YearDay() - 1)
	default:
		return 0
	}
}

func (c *Clock) Out(p, b byte) {}
