package machine

// System is the machine control device. Writing a nonzero byte to
// port 0xf stops the machine with exit code value & 0x7f; reading it
// back returns the written value.
type System struct {
	code    byte
	stopped bool
}

// Stopped reports whether the program asked the machine to stop.
func (s *System) Stopped() bool { return s.stopped }

// ExitCode returns the code from the stopping write, or 0.
func (s *System) ExitCode() int { return int(s.code & 0x7f) }

func (s *System) In(p byte) byte {
	if p == 0xf {
		return s.code
	}
	return 0
}

func (s *System) Out(p, b byte) {
	if p == 0xf && b != 0 {
		s.code = b
		s.stopped = true
	}
}
