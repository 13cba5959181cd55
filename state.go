package vtpush

// State is a node of the VT500-style state machine that drives the parser.
// The automaton is flat: there is no nesting or recursion, only a single
// current State plus the header collectors the Parser carries alongside it.
type State uint8

const (
	// Ground is the initial and "nothing in flight" state. Printable bytes
	// accumulate into a pending Raw run; C0 controls are emitted singly.
	Ground State = iota
	// Escape has seen a bare ESC and is waiting to see what kind of
	// sequence follows it.
	Escape
	// EscIntermediate has collected at least one ESC intermediate byte.
	EscIntermediate
	// EscSs2 has seen "ESC N" and is waiting for the single shifted byte.
	EscSs2
	// EscSs3 has seen "ESC O" and is waiting for the single shifted byte.
	EscSs3
	// CsiEntry has seen "ESC [" and is at the start of a CSI header.
	CsiEntry
	// CsiParam is collecting CSI parameter bytes.
	CsiParam
	// CsiIntermediate is collecting CSI intermediate bytes.
	CsiIntermediate
	// CsiIgnore swallows a CSI sequence that failed to parse cleanly,
	// fast-forwarding to its final byte without emitting anything.
	CsiIgnore
	// DcsEntry has seen "ESC P" and is at the start of a DCS header.
	DcsEntry
	// DcsParam is collecting DCS parameter bytes.
	DcsParam
	// DcsIntermediate is collecting DCS intermediate bytes.
	DcsIntermediate
	// DcsIgnore swallows a DCS body whose header was invalid or poisoned,
	// discarding bytes until the string terminator.
	DcsIgnore
	// DcsIgnoreEsc has seen ESC while in DcsIgnore and is deciding whether
	// it completes the string terminator.
	DcsIgnoreEsc
	// DcsPassthrough streams an accepted DCS body to the callback.
	DcsPassthrough
	// DcsEsc holds one ESC byte seen during DcsPassthrough, deciding
	// whether it is the start of a string terminator or literal body data.
	DcsEsc
	// OscString streams an OSC body to the callback.
	OscString
	// OscEsc holds one ESC byte seen during OscString.
	OscEsc
	// SosPmApcString discards the body of a SOS/PM/APC sequence.
	SosPmApcString
	// SpaEsc holds one ESC byte seen during SosPmApcString.
	SpaEsc
)

var stateNames = [...]string{
	Ground:          "Ground",
	Escape:          "Escape",
	EscIntermediate: "EscIntermediate",
	EscSs2:          "EscSs2",
	EscSs3:          "EscSs3",
	CsiEntry:        "CsiEntry",
	CsiParam:        "CsiParam",
	CsiIntermediate: "CsiIntermediate",
	CsiIgnore:       "CsiIgnore",
	DcsEntry:        "DcsEntry",
	DcsParam:        "DcsParam",
	DcsIntermediate: "DcsIntermediate",
	DcsIgnore:       "DcsIgnore",
	DcsIgnoreEsc:    "DcsIgnoreEsc",
	DcsPassthrough:  "DcsPassthrough",
	DcsEsc:          "DcsEsc",
	OscString:       "OscString",
	OscEsc:          "OscEsc",
	SosPmApcString:  "SosPmApcString",
	SpaEsc:          "SpaEsc",
}

// String implements fmt.Stringer.
func (s State) String() string {
	if int(s) < len(stateNames) && stateNames[s] != "" {
		return stateNames[s]
	}
	return "Unknown"
}

// IsValid reports whether s is one of the twenty defined states.
func (s State) IsValid() bool {
	return int(s) < len(stateNames) && stateNames[s] != ""
}
