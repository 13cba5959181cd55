package vtpush

import "strconv"

// MaxParams bounds the number of parameters the collector will hold before
// treating further parameters as overflow. §4.2: "There is no maximum
// parameter count enforced by the core; implementations may cap it but
// must then treat overflow as the Ignore sink, never as truncation that
// still emits" — CsiEntry/CsiParam/DcsEntry/DcsParam route to the
// corresponding Ignore state once this cap would be exceeded, rather than
// emitting a truncated parameter list.
const MaxParams = 32

// MaxParamBytes bounds the byte length of a single parameter (digits plus
// ':' sub-separators). Exceeding it aborts the sequence the same way
// exceeding MaxParams does.
const MaxParamBytes = 32

// Param is a single parameter's raw bytes: ASCII digits and literal ':'
// sub-parameter separators, exactly as they appeared on the wire (§3). The
// core never parses these eagerly; NumericSubparams offers a derived view.
type Param struct {
	data [MaxParamBytes]byte
	len  uint8
}

// Bytes returns the parameter's raw bytes, aliasing Param's own storage.
func (p *Param) Bytes() []byte { return p.data[:p.len] }

// IsEmpty reports whether the parameter has no bytes (the empty-parameter
// case from two consecutive ';' or a trailing ';' before the final byte).
func (p *Param) IsEmpty() bool { return p.len == 0 }

func (p *Param) push(b byte) bool {
	if p.len >= MaxParamBytes {
		return false
	}
	p.data[p.len] = b
	p.len++
	return true
}

func (p *Param) clear() { p.len = 0 }

// NumericSubparams splits the parameter on ':' and parses each fragment as
// an unsigned 16-bit integer, per §4.2. An empty fragment (including the
// whole parameter being empty) decodes to a nil entry rather than zero, so
// callers can distinguish "absent" from "explicit 0".
func (p *Param) NumericSubparams() []*uint16 {
	raw := p.Bytes()
	if len(raw) == 0 {
		return []*uint16{nil}
	}
	var out []*uint16
	start := 0
	for i := 0; i <= len(raw); i++ {
		if i == len(raw) || raw[i] == ':' {
			frag := raw[start:i]
			if len(frag) == 0 {
				out = append(out, nil)
			} else if v, err := strconv.ParseUint(string(frag), 10, 16); err == nil {
				u := uint16(v)
				out = append(out, &u)
			} else {
				out = append(out, nil)
			}
			start = i + 1
		}
	}
	return out
}

// Params is the ordered parameter list collected for a CSI or DCS header:
// a small-vector of Param, built up one byte at a time as the header is
// scanned (§3, §4.2).
type Params struct {
	list  [MaxParams]Param
	count int
	// started records whether at least one byte or separator has been seen
	// for the current header; once it is set, the in-progress parameter is
	// list[count-1].
	started bool
}

// Reset clears the collector for a new header.
func (ps *Params) Reset() {
	ps.count = 0
	ps.started = false
	for i := range ps.list {
		ps.list[i].clear()
	}
}

// Len returns the number of parameters collected so far, including any
// trailing empty parameter implied by a separator just seen.
func (ps *Params) Len() int { return ps.count }

// IsEmpty reports whether no parameter bytes or separators have been seen
// at all (distinct from Len()==1 with an empty first parameter).
func (ps *Params) IsEmpty() bool { return !ps.started }

// IsFull reports whether the collector has reached MaxParams and a further
// separator would overflow it.
func (ps *Params) IsFull() bool { return ps.count >= MaxParams }

// Get returns the i'th parameter. It panics if i is out of range; callers
// should check against Len first.
func (ps *Params) Get(i int) *Param { return &ps.list[i] }

// All returns the collected parameters in order. The returned slice aliases
// Params' own storage and is only valid until the next Reset.
func (ps *Params) All() []Param {
	if !ps.started {
		return nil
	}
	return ps.list[:ps.count]
}

// PushDigit appends a digit (or any literal byte that isn't a ':' or ';')
// to the current parameter, starting one if none is in progress. It
// reports false when the current parameter already holds MaxParamBytes
// bytes, signalling the caller to abort to the Ignore sink.
func (ps *Params) PushDigit(b byte) bool {
	if !ps.started {
		ps.started = true
		ps.count = 1
	}
	return ps.list[ps.count-1].push(b)
}

// PushColon appends a literal ':' sub-parameter separator to the current
// parameter (it is data, not a parameter boundary) — see §3.
func (ps *Params) PushColon() bool {
	return ps.PushDigit(':')
}

// Separator finalises the current parameter and starts a new (initially
// empty) one, implementing the top-level ';' separator. A leading ';'
// before any parameter byte has been seen finalises an implicit empty
// first parameter before opening the next one, so "ESC[;5H" collects
// ["", "5"] rather than dropping the default first parameter. It reports
// false if this would exceed MaxParams.
func (ps *Params) Separator() bool {
	if !ps.started {
		ps.started = true
		ps.count = 1
	}
	if ps.count >= MaxParams {
		return false
	}
	ps.count++
	return true
}
