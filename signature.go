package vtpush

// Signature is a template an Event can be compared against: a prefix byte
// (the sequence's introducer — '[', 'O', 'P', or ']'), an optional private
// prefix, a required intermediate set, a required final byte, and an
// inclusive [MinParams, MaxParams] arity range. It is the Go counterpart of
// §4.2's "signature-matching utility" and is restored at full strength from
// original_source/crates/vt-push-parser/src/signature.rs's VTEscapeSignature
// (kept as a supplemented feature per SPEC_FULL.md).
type Signature struct {
	Prefix        byte
	Private       *byte
	Intermediates []byte
	Final         byte
	MinParams     int
	MaxParams     int
}

const (
	sigCSI = '['
	sigSS3 = 'O'
	sigDCS = 'P'
	sigOSC = ']'
)

// CSISignature builds a Signature matching Csi events with the given
// optional private prefix, intermediate set, final byte, and inclusive
// parameter-count range.
func CSISignature(private *byte, intermediates []byte, final byte, minParams, maxParams int) Signature {
	return Signature{
		Prefix:        sigCSI,
		Private:       private,
		Intermediates: intermediates,
		Final:         final,
		MinParams:     minParams,
		MaxParams:     maxParams,
	}
}

// SS3Signature builds a Signature matching Ss3 events whose shifted byte is
// final (the original's ss3() constructor has no arity concept, since
// SS3/Esc carry no parameters). Like every Signature, it also matches Esc
// events with the same final byte and intermediates.
func SS3Signature(intermediates []byte, final byte) Signature {
	return Signature{Prefix: sigSS3, Intermediates: intermediates, Final: final, MinParams: 0, MaxParams: 255}
}

// DCSSignature builds a Signature matching DcsStart events.
func DCSSignature(private *byte, intermediates []byte, final byte, minParams, maxParams int) Signature {
	return Signature{
		Prefix:        sigDCS,
		Private:       private,
		Intermediates: intermediates,
		Final:         final,
		MinParams:     minParams,
		MaxParams:     maxParams,
	}
}

// OSCSignature builds a Signature matching OscStart-adjacent events (the
// core's OSC events carry no parameter list, only raw bytes, so arity is
// unused here exactly as in the original's osc() constructor).
func OSCSignature(intermediates []byte, final byte) Signature {
	return Signature{Prefix: sigOSC, Intermediates: intermediates, Final: final, MinParams: 0, MaxParams: 255}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func privateEqual(want *byte, got *byte) bool {
	if want == nil && got == nil {
		return true
	}
	if want == nil || got == nil {
		return false
	}
	return *want == *got
}

func (s Signature) containsArity(n int) bool {
	return n >= s.MinParams && n <= s.MaxParams
}

// Matches reports whether ev matches the signature, per the event kinds the
// original implements against: Esc, Csi, Ss3, DcsStart. Every other event
// kind never matches any Signature.
func (s Signature) Matches(ev Event) bool {
	switch e := ev.(type) {
	case Esc:
		return s.Final == e.Final && bytesEqual(s.Intermediates, e.Intermediates)
	case Csi:
		count := 0
		if e.Params != nil {
			count = e.Params.Len()
		}
		return s.Prefix == sigCSI &&
			s.Final == e.Final &&
			bytesEqual(s.Intermediates, e.Intermediates) &&
			privateEqual(s.Private, e.Private) &&
			s.containsArity(count)
	case Ss3:
		return s.Prefix == sigSS3 && s.Final == e.Byte
	case DcsStart:
		count := 0
		if e.Params != nil {
			count = e.Params.Len()
		}
		return s.Prefix == sigDCS &&
			s.Final == e.Final &&
			bytesEqual(s.Intermediates, e.Intermediates) &&
			privateEqual(s.Private, e.Private) &&
			s.containsArity(count)
	default:
		return false
	}
}
