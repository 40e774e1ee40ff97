// Package gate implements the billing-screen access gate: a 4-digit code
// compared by exact string equality against a configured value.
//
// This is UI gating, not a security boundary. It keeps casual visitors out of
// the estimate form; anyone with the code is "authorized". Nothing here is
// cryptographic and nothing should be built on top of it as if it were.
package gate

// Status of a gate session.
type Status int

const (
	Locked Status = iota
	Unlocked
)

// Gate holds the configured access code, injected at startup.
type Gate struct {
	code string
}

// New builds a gate for the given code.
func New(code string) *Gate {
	return &Gate{code: code}
}

// Check reports whether the supplied code matches.
func (g *Gate) Check(code string) bool {
	return code != "" && code == g.code
}

// Session is the two-state machine behind the billing modal: it starts
// Locked, transitions to Unlocked on a single successful code match, and
// resets to Locked on close.
type Session struct {
	gate   *Gate
	status Status
}

// NewSession returns a locked session for the gate.
func NewSession(g *Gate) *Session {
	return &Session{gate: g, status: Locked}
}

// Unlock attempts the transition Locked → Unlocked. It reports whether the
// session is unlocked after the call; a wrong code leaves it locked.
func (s *Session) Unlock(code string) bool {
	if s.gate.Check(code) {
		s.status = Unlocked
	}
	return s.status == Unlocked
}

// Close resets the session to Locked.
func (s *Session) Close() {
	s.status = Locked
}

// Status returns the current state.
func (s *Session) Status() Status {
	return s.status
}
