package vtpush

// Package-level fast-path tables (§4.1 "Fast paths"). These are pure
// optimisations: they let Ground/CsiIgnore/body-streaming states consume a
// whole run of bytes in one scan instead of one byte at a time, without
// changing any observable event trace. Adapted from the ENDS_GROUND /
// ENDS_CSI 256-entry lookup tables in
// _examples/original_source/crates/vt-push-parser/src/lib.rs.
var (
	endsGround   [256]bool
	endsCsiSkip  [256]bool
	endsDcsBody  [256]bool
	endsOscBody  [256]bool
)

func init() {
	for b := 0; b < 0x20; b++ {
		endsGround[b] = true
	}
	endsGround[C0.TAB] = false
	endsGround[C0.LF] = false
	endsGround[C0.CR] = false
	endsGround[C0.DEL] = true
	endsGround[C0.ESC] = true

	for b := 0x40; b <= 0x7E; b++ {
		endsCsiSkip[b] = true
	}
	endsCsiSkip[C0.ESC] = true
	endsCsiSkip[C0.CAN] = true
	endsCsiSkip[C0.SUB] = true

	endsDcsBody[C0.ESC] = true
	endsDcsBody[C0.CAN] = true
	endsDcsBody[C0.SUB] = true
	endsDcsBody[C0.DEL] = true

	for b := 0; b < 0x20; b++ {
		endsOscBody[b] = true
	}
	endsOscBody[C0.ESC] = true
	endsOscBody[C0.CAN] = true
	endsOscBody[C0.SUB] = true
	endsOscBody[C0.DEL] = true
	endsOscBody[C0.BEL] = true
}

// ParserOptions configures a Parser at construction time. The zero value is
// not a valid configuration; use DefaultOptions or NewParser.
type ParserOptions struct {
	// Interest selects which event categories are surfaced (§4.4).
	Interest Interest
	// DcsIgnorePoisoning, when true (the default), makes a ':' appearing in
	// a DCS header poison the whole sequence into DcsIgnore, per the
	// "Header poisoning" open question resolved in SPEC_FULL.md. When
	// false, ':' is treated as an ordinary sub-parameter byte in DCS
	// headers too, exactly as it already is in CSI headers.
	DcsIgnorePoisoning bool
}

// DefaultOptions returns the default construction options: every interest
// flag set, and DCS colon-poisoning enabled.
func DefaultOptions() ParserOptions {
	return ParserOptions{Interest: InterestAll, DcsIgnorePoisoning: true}
}

// Callback receives one borrowed Event per invocation. Returning false
// aborts the in-progress Feed; Feed then reports the number of bytes it
// has logically consumed so the caller can resume from the right offset
// (§4.3, §5).
type Callback func(Event) bool

// Parser is a single-threaded, allocation-free (on its hot path) streaming
// state machine implementing the automaton in SPEC_FULL.md §4.1. It is not
// safe for concurrent use; give each goroutine its own instance (§5).
type Parser struct {
	state         State
	opts          ParserOptions
	intermediates Intermediates
	params        Params
	hasPrivate    bool
	private       byte
}

// NewParser returns a Parser with every interest flag enabled and DCS
// colon-poisoning on, matching the distilled source's default behaviour.
func NewParser() *Parser {
	return NewParserWithOptions(DefaultOptions())
}

// NewParserWithOptions returns a Parser configured with opts.
func NewParserWithOptions(opts ParserOptions) *Parser {
	return &Parser{state: Ground, opts: opts}
}

// State returns the parser's current automaton state.
func (p *Parser) State() State { return p.state }

// IsGround reports whether the parser is in Ground — the predicate the
// capture adapter uses to decide whether it is safe to hand control back
// to the raw state machine (§6).
func (p *Parser) IsGround() bool { return p.state == Ground }

func (p *Parser) resetHeader() {
	p.intermediates.Clear()
	p.params.Reset()
	p.hasPrivate = false
}

// emit applies the interest mask (§4.4) before invoking cb. Raw and C0
// always pass through; every other category is gated by its flag.
func (p *Parser) emit(cb Callback, ev Event) bool {
	switch ev.Kind() {
	case KindCsi:
		if !p.opts.Interest.Has(InterestCSI) {
			return true
		}
	case KindDcsStart, KindDcsData, KindDcsEnd, KindDcsCancel:
		if !p.opts.Interest.Has(InterestDCS) {
			return true
		}
	case KindOscStart, KindOscData, KindOscEnd, KindOscCancel:
		if !p.opts.Interest.Has(InterestOSC) {
			return true
		}
	case KindEscInvalid:
		if !p.opts.Interest.Has(InterestEscapeRecovery) {
			return true
		}
	case KindEsc, KindSs2, KindSs3:
		if !p.opts.Interest.Has(InterestOther) {
			return true
		}
	}
	return cb(ev)
}

func (p *Parser) emitInvalid(cb Callback) bool {
	if !p.opts.Interest.Has(InterestEscapeRecovery) {
		return true
	}
	buf := make([]byte, 0, 2+p.intermediates.Len())
	if p.hasPrivate {
		buf = append(buf, p.private)
	}
	buf = append(buf, p.intermediates.Bytes()...)
	return p.emit(cb, EscInvalid{Bytes: buf})
}

func isPrivatePrefix(b byte) bool {
	return b == '<' || b == '=' || b == '>' || b == '?'
}

// Feed drives the state machine over input, invoking cb once per Event in
// strict input order (§5 "Ordering"). It returns the number of bytes
// logically consumed: equal to len(input) unless cb returned false, in
// which case the caller should re-feed input[consumed:] to resume (§4.3,
// §8 property 3).
func (p *Parser) Feed(input []byte, cb Callback) (consumed int) {
	i, n := 0, len(input)
feedLoop:
	for i < n {
		switch p.state {
		case Ground:
			start := i
			for i < n && !endsGround[input[i]] {
				i++
			}
			if i > start {
				if !p.emitRaw(cb, input[start:i]) {
					return i
				}
			}
			if i >= n {
				break feedLoop
			}
			b := input[i]
			i++
			if !p.groundByte(cb, b) {
				return i
			}
		case CsiIgnore:
			for i < n && !endsCsiSkip[input[i]] {
				i++
			}
			if i >= n {
				break feedLoop
			}
			b := input[i]
			i++
			if !p.csiIgnoreByte(cb, b) {
				return i
			}
		case DcsPassthrough:
			start := i
			for i < n && !endsDcsBody[input[i]] {
				i++
			}
			if i > start {
				if !p.emit(cb, DcsData{Bytes: input[start:i]}) {
					return i
				}
			}
			if i >= n {
				break feedLoop
			}
			b := input[i]
			i++
			if !p.dcsPassthroughByte(cb, b) {
				return i
			}
		case OscString:
			start := i
			for i < n && !endsOscBody[input[i]] {
				i++
			}
			if i > start {
				if !p.emit(cb, OscData{Bytes: input[start:i]}) {
					return i
				}
			}
			if i >= n {
				break feedLoop
			}
			b := input[i]
			i++
			if !p.oscStringByte(cb, b) {
				return i
			}
		default:
			b := input[i]
			i++
			if !p.step(cb, b) {
				return i
			}
		}
	}
	return i
}

// FeedAll is the non-abortable entry point (§6): it drives cb over every
// byte of input and never stops early.
func (p *Parser) FeedAll(input []byte, cb func(Event)) {
	p.Feed(input, func(ev Event) bool {
		cb(ev)
		return true
	})
}

func (p *Parser) emitRaw(cb Callback, b []byte) bool {
	return p.emit(cb, Raw{Bytes: b})
}

func (p *Parser) groundByte(cb Callback, b byte) bool {
	switch b {
	case C0.ESC:
		p.resetHeader()
		p.state = Escape
		return true
	default:
		return p.emit(cb, C0{Byte: b})
	}
}

// step dispatches every state except Ground/CsiIgnore/DcsPassthrough/
// OscString, which Feed fast-paths directly above.
func (p *Parser) step(cb Callback, b byte) bool {
	switch p.state {
	case Escape:
		return p.stepEscape(cb, b)
	case EscIntermediate:
		return p.stepEscIntermediate(cb, b)
	case EscSs2:
		return p.stepEscShift(cb, b, true)
	case EscSs3:
		return p.stepEscShift(cb, b, false)
	case CsiEntry:
		return p.stepCsi(cb, b, true, true)
	case CsiParam:
		return p.stepCsi(cb, b, false, true)
	case CsiIntermediate:
		return p.stepCsi(cb, b, false, false)
	case DcsEntry:
		return p.stepDcs(cb, b, true, true)
	case DcsParam:
		return p.stepDcs(cb, b, false, true)
	case DcsIntermediate:
		return p.stepDcs(cb, b, false, false)
	case DcsIgnore:
		return p.stepDcsIgnore(cb, b)
	case DcsIgnoreEsc:
		return p.stepDcsIgnoreEsc(cb, b)
	case DcsEsc:
		return p.stepDcsEsc(cb, b)
	case OscEsc:
		return p.stepOscEsc(cb, b)
	case SosPmApcString:
		return p.stepSosPmApc(cb, b)
	case SpaEsc:
		return p.stepSpaEsc(cb, b)
	}
	return true
}

// headerAbort reports whether b forces an immediate abort of a header (or
// escape-prefixed) state back to Ground: CAN/SUB universally (§4.1), and
// DEL within any Escape*-family state (§4.1 tie-breaks).
func headerAbort(b byte) bool {
	return b == C0.CAN || b == C0.SUB || b == C0.DEL
}

func (p *Parser) stepEscape(cb Callback, b byte) bool {
	switch {
	case b == C0.ESC:
		p.resetHeader()
		return true
	case headerAbort(b):
		ok := p.emitInvalid(cb)
		p.state = Ground
		return ok
	case b >= 0x20 && b <= 0x2F:
		if !p.intermediates.Push(b) {
			ok := p.emitInvalid(cb)
			p.state = Ground
			return ok
		}
		p.state = EscIntermediate
		return true
	case b == '[':
		p.resetHeader()
		if p.opts.Interest.Has(InterestCSI) {
			p.state = CsiEntry
		} else {
			p.state = CsiIgnore
		}
		return true
	case b == 'P':
		p.resetHeader()
		if p.opts.Interest.Has(InterestDCS) {
			p.state = DcsEntry
		} else {
			p.state = DcsIgnore
		}
		return true
	case b == ']':
		p.state = OscString
		return p.emit(cb, OscStart{})
	case b == 'N':
		p.state = EscSs2
		return true
	case b == 'O':
		p.state = EscSs3
		return true
	case b == 'X' || b == '^' || b == '_':
		p.state = SosPmApcString
		return true
	case isPrivatePrefix(b):
		p.hasPrivate = true
		p.private = b
		p.state = EscIntermediate
		return true
	case b >= 0x30 && b <= 0x7E:
		ev := Esc{Intermediates: p.intermediates.Bytes(), Final: b}
		if p.hasPrivate {
			priv := p.private
			ev.Private = &priv
		}
		p.state = Ground
		return p.emit(cb, ev)
	default:
		// Stray C0 control (not CAN/SUB/DEL) or non-ASCII byte right after a
		// bare ESC: resynchronise to Ground, surfacing the stray byte via
		// recovery so the ESC and the byte are reported verbatim.
		p.state = Ground
		return p.emit(cb, EscInvalid{Bytes: []byte{b}})
	}
}

func (p *Parser) stepEscIntermediate(cb Callback, b byte) bool {
	switch {
	case b == C0.ESC:
		p.resetHeader()
		p.state = Escape
		return true
	case headerAbort(b):
		ok := p.emitInvalid(cb)
		p.state = Ground
		return ok
	case b >= 0x20 && b <= 0x2F:
		if !p.intermediates.Push(b) {
			ok := p.emitInvalid(cb)
			p.state = Ground
			return ok
		}
		return true
	case b >= 0x30 && b <= 0x7E:
		ev := Esc{Intermediates: p.intermediates.Bytes(), Final: b}
		if p.hasPrivate {
			priv := p.private
			ev.Private = &priv
		}
		p.state = Ground
		return p.emit(cb, ev)
	default:
		ok := p.emitInvalid(cb)
		p.state = Ground
		return ok
	}
}

func (p *Parser) stepEscShift(cb Callback, b byte, ss2 bool) bool {
	switch {
	case b == C0.ESC:
		p.resetHeader()
		p.state = Escape
		return true
	case headerAbort(b):
		ok := p.emitInvalid(cb)
		p.state = Ground
		return ok
	default:
		p.state = Ground
		if ss2 {
			return p.emit(cb, Ss2{Byte: b})
		}
		return p.emit(cb, Ss3{Byte: b})
	}
}

// stepCsi handles CsiEntry/CsiParam/CsiIntermediate. allowDigits is true
// for CsiEntry/CsiParam (digits, ';', ':' all valid there, but not once an
// intermediate byte has been seen); allowPrivate is true only for
// CsiEntry.
func (p *Parser) stepCsi(cb Callback, b byte, allowPrivate, allowDigits bool) bool {
	switch {
	case b == C0.ESC:
		p.resetHeader()
		p.state = Escape
		return true
	case b == C0.DEL:
		return true // ignored inside a CSI header (§4.1)
	case headerAbort(b):
		p.state = Ground
		return true
	case allowDigits && b >= '0' && b <= '9':
		if !p.params.PushDigit(b) {
			p.state = CsiIgnore
			return true
		}
		p.state = CsiParam
		return true
	case allowDigits && b == ';':
		if !p.params.Separator() {
			p.state = CsiIgnore
			return true
		}
		p.state = CsiParam
		return true
	case allowDigits && b == ':':
		if !p.params.PushColon() {
			p.state = CsiIgnore
			return true
		}
		p.state = CsiParam
		return true
	case allowPrivate && isPrivatePrefix(b):
		p.hasPrivate = true
		p.private = b
		p.state = CsiParam
		return true
	case b >= 0x20 && b <= 0x2F:
		if !p.intermediates.Push(b) {
			p.state = CsiIgnore
			return true
		}
		p.state = CsiIntermediate
		return true
	case b >= 0x40 && b <= 0x7E:
		params := p.params
		ev := Csi{Params: &params, Intermediates: p.intermediates.Bytes(), Final: b}
		if p.hasPrivate {
			priv := p.private
			ev.Private = &priv
		}
		p.state = Ground
		return p.emit(cb, ev)
	default:
		p.state = CsiIgnore
		return true
	}
}

func (p *Parser) csiIgnoreByte(cb Callback, b byte) bool {
	switch {
	case b == C0.ESC:
		p.resetHeader()
		p.state = Escape
		return true
	case b == C0.CAN || b == C0.SUB:
		p.state = Ground
		return true
	case b >= 0x40 && b <= 0x7E:
		p.state = Ground
		return true
	default:
		return true
	}
}

// stepDcs handles DcsEntry/DcsParam/DcsIntermediate, mirroring stepCsi but
// with colon-poisoning (§4.1, §7) and DcsPassthrough as the final-byte
// destination instead of Ground.
func (p *Parser) stepDcs(cb Callback, b byte, allowPrivate, allowDigits bool) bool {
	switch {
	case b == C0.ESC:
		p.resetHeader()
		p.state = Escape
		return true
	case b == C0.DEL:
		return true // ignored inside a DCS header (§4.1)
	case headerAbort(b):
		p.state = Ground
		return true
	case allowDigits && b == ':' && p.opts.DcsIgnorePoisoning:
		p.state = DcsIgnore
		return true
	case allowDigits && b >= '0' && b <= '9':
		if !p.params.PushDigit(b) {
			p.state = DcsIgnore
			return true
		}
		p.state = DcsParam
		return true
	case allowDigits && b == ';':
		if !p.params.Separator() {
			p.state = DcsIgnore
			return true
		}
		p.state = DcsParam
		return true
	case allowDigits && b == ':':
		if !p.params.PushColon() {
			p.state = DcsIgnore
			return true
		}
		p.state = DcsParam
		return true
	case allowPrivate && isPrivatePrefix(b):
		p.hasPrivate = true
		p.private = b
		p.state = DcsParam
		return true
	case b >= 0x20 && b <= 0x2F:
		if !p.intermediates.Push(b) {
			p.state = DcsIgnore
			return true
		}
		p.state = DcsIntermediate
		return true
	case b >= 0x40 && b <= 0x7E:
		params := p.params
		ev := DcsStart{Params: &params, Intermediates: p.intermediates.Bytes(), Final: b}
		if p.hasPrivate {
			priv := p.private
			ev.Private = &priv
		}
		p.state = DcsPassthrough
		return p.emit(cb, ev)
	default:
		p.state = DcsIgnore
		return true
	}
}

func (p *Parser) stepDcsIgnore(cb Callback, b byte) bool {
	switch b {
	case C0.ESC:
		p.state = DcsIgnoreEsc
		return true
	case C0.CAN, C0.SUB:
		p.state = Ground
		return true
	default:
		return true
	}
}

func (p *Parser) stepDcsIgnoreEsc(cb Callback, b byte) bool {
	switch b {
	case '\\':
		p.state = Ground
		return true
	case C0.ESC:
		return true
	default:
		p.state = DcsIgnore
		return true
	}
}

func (p *Parser) dcsPassthroughByte(cb Callback, b byte) bool {
	switch b {
	case C0.ESC:
		p.state = DcsEsc
		return true
	case C0.CAN, C0.SUB:
		p.state = Ground
		return p.emit(cb, DcsCancel{})
	case C0.DEL:
		return true // dropped; not part of the body (§4.1)
	}
	return true
}

func (p *Parser) stepDcsEsc(cb Callback, b byte) bool {
	switch b {
	case '\\':
		p.state = Ground
		return p.emit(cb, DcsEnd{})
	case C0.ESC:
		return p.emit(cb, DcsData{Bytes: []byte{C0.ESC}})
	default:
		p.state = DcsPassthrough
		return p.emit(cb, DcsData{Bytes: []byte{C0.ESC, b}})
	}
}

func (p *Parser) oscStringByte(cb Callback, b byte) bool {
	switch b {
	case C0.BEL:
		p.state = Ground
		return p.emit(cb, OscEnd{UsedBEL: true})
	case C0.ESC:
		p.state = OscEsc
		return true
	case C0.CAN, C0.SUB:
		p.state = Ground
		return p.emit(cb, OscCancel{})
	case C0.DEL:
		return true // silently dropped (§4.1)
	}
	return true // any other C0 control is silently dropped (§4.1)
}

func (p *Parser) stepOscEsc(cb Callback, b byte) bool {
	switch b {
	case '\\':
		p.state = Ground
		return p.emit(cb, OscEnd{})
	case C0.ESC:
		return p.emit(cb, OscData{Bytes: []byte{C0.ESC}})
	default:
		p.state = OscString
		return p.emit(cb, OscData{Bytes: []byte{C0.ESC, b}})
	}
}

func (p *Parser) stepSosPmApc(cb Callback, b byte) bool {
	switch b {
	case C0.ESC:
		p.state = SpaEsc
		return true
	case C0.CAN, C0.SUB:
		// Body and the cancel itself are wholly discarded (§4.1): SOS/PM/APC
		// has no Cancel event of its own.
		p.state = Ground
		return true
	default:
		return true
	}
}

func (p *Parser) stepSpaEsc(cb Callback, b byte) bool {
	switch b {
	case '\\':
		p.state = Ground
		return true
	case C0.ESC:
		return true
	case C0.CAN, C0.SUB:
		p.state = Ground
		return true
	default:
		p.state = SosPmApcString
		return true
	}
}

// Idle tells the parser that no more bytes are imminent (§4.3, §6). If the
// parser is mid-sequence it resynchronises to Ground: a DCS/OSC body
// already opened with a Start event is closed with the matching Cancel
// event (preserving the §8 framing invariant); any other in-flight header
// is simply abandoned, optionally surfaced as EscInvalid when
// InterestEscapeRecovery is set. Ground is a no-op.
func (p *Parser) Idle(cb Callback) bool {
	switch p.state {
	case Ground:
		return true
	case DcsPassthrough, DcsEsc:
		p.state = Ground
		return p.emit(cb, DcsCancel{})
	case OscString, OscEsc:
		p.state = Ground
		return p.emit(cb, OscCancel{})
	case SosPmApcString, SpaEsc, DcsIgnore, DcsIgnoreEsc, CsiIgnore:
		p.state = Ground
		return true
	default:
		ok := p.emitInvalid(cb)
		p.state = Ground
		return ok
	}
}

// Finish ends the stream: a DCS/OSC body still open is closed through cb with
// its matching Cancel event (so every Start is balanced, §8 property 1), then
// the parser is reset to Ground and its header collectors cleared. An
// unfinished header or ignored sequence is dropped without any event.
func (p *Parser) Finish(cb Callback) {
	switch p.state {
	case DcsPassthrough, DcsEsc:
		p.emit(cb, DcsCancel{})
	case OscString, OscEsc:
		p.emit(cb, OscCancel{})
	}
	p.state = Ground
	p.resetHeader()
}
