package game

// ExitStatus records the process status requested by controller signals.
// The first quit fixes the status; later signals do not change it.
type ExitStatus struct {
	code int
	done bool
}

// Observe records sig and reports whether the run loop should stop
func (s *ExitStatus) Observe(sig Signal) bool {
	if sig == SignalQuit && !s.done {
		s.code = ExitCodeQuit
		s.done = true
	}
	return s.done
}

// Done reports whether a quit was requested
func (s *ExitStatus) Done() bool {
	return s.done
}

// Code is ExitCodeQuit after a quit and 0 otherwise
func (s *ExitStatus) Code() int {
	return s.code
}
