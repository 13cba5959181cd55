package vtpush

// MaxIntermediates is the number of intermediate bytes the collector holds
// before a sequence is considered malformed and aborted (§3: "overflow
// (third byte, or duplicate) aborts the current sequence").
const MaxIntermediates = 2

// Intermediates is the ordered, duplicate-free set of 0x20-0x2F bytes
// collected between a sequence's introducer and its final byte.
type Intermediates struct {
	data [MaxIntermediates]byte
	len  uint8
}

// Len returns the number of collected intermediate bytes.
func (in *Intermediates) Len() int { return int(in.len) }

// IsEmpty reports whether no intermediate bytes have been collected.
func (in *Intermediates) IsEmpty() bool { return in.len == 0 }

// Bytes returns the collected intermediates in insertion order. The
// returned slice aliases the Intermediates' own backing array and is only
// valid until the next Push or Clear.
func (in *Intermediates) Bytes() []byte { return in.data[:in.len] }

// Push records b as the next intermediate byte. It reports false if b is a
// duplicate of an already-collected byte or if the collector is already at
// MaxIntermediates; either condition means the in-flight sequence must be
// aborted per §3/§4.1.
func (in *Intermediates) Push(b byte) bool {
	for i := uint8(0); i < in.len; i++ {
		if in.data[i] == b {
			return false
		}
	}
	if in.len >= MaxIntermediates {
		return false
	}
	in.data[in.len] = b
	in.len++
	return true
}

// Clear resets the collector for the next sequence.
func (in *Intermediates) Clear() {
	in.len = 0
}
