package vtpush

// Event is the tagged union emitted by the parser (§3). Exactly one of the
// concrete event types below satisfies it at a time; callers type-switch
// on the concrete type to act on it.
//
// Every borrowed byte slice reachable from an Event (Raw.Bytes,
// DcsData.Bytes, Csi.Params, ...) aliases the caller's input buffer and is
// only valid for the duration of the callback that received it (§3
// "Lifetime"). Call CloneEvent on an Event to obtain an OwnedEvent that copies
// everything it needs.
type Event interface {
	isEvent()
	// Kind returns the event's tag, mirroring the Rust source's enum
	// discriminant — convenient for logging/metrics without a type switch.
	Kind() EventKind
}

// EventKind names an Event's concrete type.
type EventKind uint8

const (
	KindRaw EventKind = iota
	KindC0
	KindEsc
	KindEscInvalid
	KindSs2
	KindSs3
	KindCsi
	KindDcsStart
	KindDcsData
	KindDcsEnd
	KindDcsCancel
	KindOscStart
	KindOscData
	KindOscEnd
	KindOscCancel
)

// Raw is a coalesced run of printable/ignored bytes emitted only from
// Ground (§3, §8 invariant 6).
type Raw struct{ Bytes []byte }

func (Raw) isEvent()          {}
func (Raw) Kind() EventKind   { return KindRaw }

// C0 is a single control byte 0x00-0x1F or 0x7F, excluding the whitespace
// controls folded into Raw (TAB/LF/CR).
type C0 struct{ Byte byte }

func (C0) isEvent()        {}
func (C0) Kind() EventKind { return KindC0 }

// Esc is a complete "ESC ... final" sequence, introducer excluded.
type Esc struct {
	Intermediates []byte
	Private       *byte // non-nil if a private-prefix byte preceded the final
	Final         byte
}

func (Esc) isEvent()        {}
func (Esc) Kind() EventKind { return KindEsc }

// EscInvalid reports an abandoned ESC-prefixed sequence (§3, §7). Bytes
// excludes the ESC itself (Encode writes it back): for a stray byte right
// after a bare ESC it is that byte; otherwise it is the private prefix and
// intermediates collected before the sequence was abandoned (0-3 bytes),
// and the byte that caused the abort is not included.
// Only emitted when InterestEscapeRecovery is set.
type EscInvalid struct{ Bytes []byte }

func (EscInvalid) isEvent()        {}
func (EscInvalid) Kind() EventKind { return KindEscInvalid }

// Ss2 is "ESC N" followed by one byte (Single Shift 2).
type Ss2 struct{ Byte byte }

func (Ss2) isEvent()        {}
func (Ss2) Kind() EventKind { return KindSs2 }

// Ss3 is "ESC O" followed by one byte (Single Shift 3).
type Ss3 struct{ Byte byte }

func (Ss3) isEvent()        {}
func (Ss3) Kind() EventKind { return KindSs3 }

// Csi is a complete Control Sequence: "ESC [" + optional private prefix +
// parameters + intermediates + final byte.
type Csi struct {
	Private       *byte
	Params        *Params
	Intermediates []byte
	Final         byte
}

func (Csi) isEvent()        {}
func (Csi) Kind() EventKind { return KindCsi }

// DcsStart opens a Device Control String; the header is complete and the
// body follows as zero or more DcsData events, closed by exactly one of
// DcsEnd or DcsCancel (§3 invariant).
type DcsStart struct {
	Private       *byte
	Params        *Params
	Intermediates []byte
	Final         byte
}

func (DcsStart) isEvent()        {}
func (DcsStart) Kind() EventKind { return KindDcsStart }

// DcsData is one chunk of a DCS body, streamed verbatim (§4.1: "the
// embedded CSI is not parsed").
type DcsData struct{ Bytes []byte }

func (DcsData) isEvent()        {}
func (DcsData) Kind() EventKind { return KindDcsData }

// DcsEnd closes a DCS normally at the string terminator. The parser streams
// every body byte as DcsData before the terminator, so a DcsEnd it emits has
// empty Bytes; Encode writes any Bytes set on a DcsEnd before "ESC \".
type DcsEnd struct{ Bytes []byte }

func (DcsEnd) isEvent()        {}
func (DcsEnd) Kind() EventKind { return KindDcsEnd }

// DcsCancel closes a DCS abnormally: the body was abandoned mid-stream by
// CAN or SUB.
type DcsCancel struct{}

func (DcsCancel) isEvent()        {}
func (DcsCancel) Kind() EventKind { return KindDcsCancel }

// OscStart opens an Operating System Command string. Per the OPEN QUESTION
// RESOLUTIONS in SPEC_FULL.md, this fires unconditionally at "ESC ]" —
// never withheld pending a possible cancel.
type OscStart struct{}

func (OscStart) isEvent()        {}
func (OscStart) Kind() EventKind { return KindOscStart }

// OscData is one chunk of an OSC body.
type OscData struct{ Bytes []byte }

func (OscData) isEvent()        {}
func (OscData) Kind() EventKind { return KindOscData }

// OscEnd closes an OSC normally. UsedBEL distinguishes a BEL terminator
// from the two-byte "ESC \" string terminator.
type OscEnd struct {
	Bytes   []byte
	UsedBEL bool
}

func (OscEnd) isEvent()        {}
func (OscEnd) Kind() EventKind { return KindOscEnd }

// OscCancel closes an OSC abnormally via CAN or SUB.
type OscCancel struct{}

func (OscCancel) isEvent()        {}
func (OscCancel) Kind() EventKind { return KindOscCancel }
