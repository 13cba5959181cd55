package vtpush

// This file implements §4.6: lossless re-encoding of any Event back into
// wire bytes, plus an "owned mirror" that carries the same semantics with
// copied (not borrowed) buffers.
//
// Go slices don't carry a borrow-checker-style lifetime, so — unlike the
// Rust source this was distilled from — an owned mirror doesn't need a
// distinct struct hierarchy (VTOwnedEvent/ParamBufOwned) to express
// "doesn't alias the input buffer anymore". CloneEvent returns the same
// Event types with freshly allocated backing arrays; that satisfies §4.6's
// "owning copy with identical semantics" exactly, and OwnedEvent is kept
// as a type alias so call sites can still say what they mean.

// OwnedEvent is an Event whose byte slices are guaranteed not to alias any
// input buffer — the result of CloneEvent, safe to retain past the
// callback that produced it.
type OwnedEvent = Event

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

func clonePrivate(p *byte) *byte {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneParams(ps *Params) *Params {
	if ps == nil {
		return nil
	}
	cp := *ps
	return &cp
}

// CloneEvent returns an OwnedEvent with the same data as ev but with every
// byte slice and pointer copied into freshly allocated storage, so it
// remains valid after the Callback invocation that produced ev returns.
func CloneEvent(ev Event) OwnedEvent {
	switch e := ev.(type) {
	case Raw:
		return Raw{Bytes: cloneBytes(e.Bytes)}
	case C0:
		return e
	case Esc:
		return Esc{Intermediates: cloneBytes(e.Intermediates), Private: clonePrivate(e.Private), Final: e.Final}
	case EscInvalid:
		return EscInvalid{Bytes: cloneBytes(e.Bytes)}
	case Ss2:
		return e
	case Ss3:
		return e
	case Csi:
		return Csi{Private: clonePrivate(e.Private), Params: cloneParams(e.Params), Intermediates: cloneBytes(e.Intermediates), Final: e.Final}
	case DcsStart:
		return DcsStart{Private: clonePrivate(e.Private), Params: cloneParams(e.Params), Intermediates: cloneBytes(e.Intermediates), Final: e.Final}
	case DcsData:
		return DcsData{Bytes: cloneBytes(e.Bytes)}
	case DcsEnd:
		return DcsEnd{Bytes: cloneBytes(e.Bytes)}
	case DcsCancel:
		return e
	case OscStart:
		return e
	case OscData:
		return OscData{Bytes: cloneBytes(e.Bytes)}
	case OscEnd:
		return OscEnd{Bytes: cloneBytes(e.Bytes), UsedBEL: e.UsedBEL}
	case OscCancel:
		return e
	default:
		return ev
	}
}

func appendParams(dst []byte, ps *Params) []byte {
	if ps == nil {
		return dst
	}
	for i, param := range ps.All() {
		if i > 0 {
			dst = append(dst, ';')
		}
		dst = append(dst, param.Bytes()...)
	}
	return dst
}

// AppendEncoded appends the wire-bytes encoding of ev to dst and returns
// the extended slice, following §4.6's re-encoding rules. DcsCancel and
// OscCancel encode to nothing: the Round-trip law (§8) explicitly excludes
// cancelled traces, and the core doesn't retain which of CAN/SUB produced
// the cancellation.
func AppendEncoded(dst []byte, ev Event) []byte {
	switch e := ev.(type) {
	case Raw:
		return append(dst, e.Bytes...)
	case C0:
		return append(dst, e.Byte)
	case Esc:
		dst = append(dst, C0.ESC)
		if e.Private != nil {
			dst = append(dst, *e.Private)
		}
		dst = append(dst, e.Intermediates...)
		return append(dst, e.Final)
	case EscInvalid:
		dst = append(dst, C0.ESC)
		return append(dst, e.Bytes...)
	case Ss2:
		return append(dst, C0.ESC, 'N', e.Byte)
	case Ss3:
		return append(dst, C0.ESC, 'O', e.Byte)
	case Csi:
		dst = append(dst, C0.ESC, '[')
		if e.Private != nil {
			dst = append(dst, *e.Private)
		}
		dst = appendParams(dst, e.Params)
		dst = append(dst, e.Intermediates...)
		return append(dst, e.Final)
	case DcsStart:
		dst = append(dst, C0.ESC, 'P')
		if e.Private != nil {
			dst = append(dst, *e.Private)
		}
		dst = appendParams(dst, e.Params)
		dst = append(dst, e.Intermediates...)
		return append(dst, e.Final)
	case DcsData:
		return append(dst, e.Bytes...)
	case DcsEnd:
		dst = append(dst, e.Bytes...)
		return append(dst, C0.ESC, '\\')
	case DcsCancel:
		return dst
	case OscStart:
		return append(dst, C0.ESC, ']')
	case OscData:
		return append(dst, e.Bytes...)
	case OscEnd:
		dst = append(dst, e.Bytes...)
		if e.UsedBEL {
			return append(dst, C0.BEL)
		}
		return append(dst, C0.ESC, '\\')
	case OscCancel:
		return dst
	default:
		return dst
	}
}

// Encode returns ev's lossless wire-bytes encoding as a freshly allocated
// slice; see AppendEncoded for the per-variant rules.
func Encode(ev Event) []byte {
	return AppendEncoded(nil, ev)
}
