package vtpush

// Interest is a construction-time bitmask selecting which event categories
// a Parser surfaces (§4.4). Clearing a flag never changes framing: the
// corresponding sequences are still fully parsed (their bodies still
// consumed, their state transitions still taken) so the parser always
// resynchronises correctly; only the matching events stop being emitted.
// Raw and C0 are always surfaced regardless of mask.
type Interest uint8

const (
	// InterestCSI surfaces Csi events. When clear, CSI sequences are
	// routed straight to CsiIgnore (fast-forwarded, no header collection).
	InterestCSI Interest = 1 << iota
	// InterestDCS surfaces DcsStart/DcsData/DcsEnd/DcsCancel events. When
	// clear, DCS sequences are routed straight to DcsIgnore.
	InterestDCS
	// InterestOSC surfaces OscStart/OscData/OscEnd/OscCancel events. OSC
	// has no dedicated ignore state in the automaton (§4.1), so gating
	// happens at emission time rather than by a different state route.
	InterestOSC
	// InterestEscapeRecovery surfaces EscInvalid events for abandoned or
	// malformed ESC-prefixed sequences. When clear, the parser still
	// recovers to Ground, it simply emits nothing for the abandoned bytes.
	InterestEscapeRecovery
	// InterestOther gates Ss2/Ss3/Esc events that are not more specifically
	// covered by the flags above.
	InterestOther

	// InterestNone enables nothing, so only Raw/C0 are surfaced — used by
	// the ANSI stripper, which keeps only the Raw text.
	InterestNone Interest = 0
	// InterestAll enables every category; this is NewParser's default.
	InterestAll = InterestCSI | InterestDCS | InterestOSC | InterestEscapeRecovery | InterestOther
)

// Has reports whether all bits in want are set in m.
func (m Interest) Has(want Interest) bool { return m&want == want }
