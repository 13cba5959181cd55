package vtpush

import "unicode/utf8"

// This file implements §4.5: the capture adapter. It wraps a Parser and lets
// a caller divert a run of input bytes away from the state machine entirely,
// emitting them as Capture events instead, until a byte count, a UTF-8 scalar
// count, or a literal terminator is satisfied.
//
// Grounded on original_source/crates/vt-push-parser/src/capture.rs
// (VTCaptureInternal, VTCapturePushParser), extended here to remember a
// partial terminator match across Feed calls — the Rust source only ever
// sees one contiguous input slice per feed_with call, but this module's
// Feed is explicitly chunk-size independent (§8 property 2), so a
// terminator split across two Feed calls must still be recognised.

// CaptureRequest is the capture mode a CaptureCallback may request after
// observing an event, mirroring VTInputCapture.
type CaptureRequest struct {
	kind       captureKind
	count      int
	terminator []byte
}

type captureKind uint8

const (
	captureNone captureKind = iota
	captureCount
	captureCountUtf8
	captureTerminator
)

// NoCapture requests no capture: the parser continues normally.
func NoCapture() CaptureRequest { return CaptureRequest{kind: captureNone} }

// CaptureCount requests diversion of exactly n raw bytes.
func CaptureCount(n int) CaptureRequest { return CaptureRequest{kind: captureCount, count: n} }

// CaptureCountUtf8 requests diversion of exactly n UTF-8 scalars (counted by
// the "not a continuation byte" rule, §4.5).
func CaptureCountUtf8(n int) CaptureRequest {
	return CaptureRequest{kind: captureCountUtf8, count: n}
}

// CaptureUntil requests diversion of bytes up to (not including) the given
// terminator; the terminator itself is consumed and not part of the capture.
func CaptureUntil(terminator []byte) CaptureRequest {
	return CaptureRequest{kind: captureTerminator, terminator: terminator}
}

// CaptureEventKind names the kind of a CaptureEvent.
type CaptureEventKind uint8

const (
	CaptureEventParser CaptureEventKind = iota
	CaptureEventCapture
	CaptureEventCaptureEnd
)

// CaptureEvent is what a CaptureParser hands to its callback: either a
// passed-through Event from the underlying Parser, a Capture slice, or the
// CaptureEnd sentinel that follows the last Capture slice of a diversion.
type CaptureEvent struct {
	Kind  CaptureEventKind
	Event Event  // valid when Kind == CaptureEventParser
	Bytes []byte // valid when Kind == CaptureEventCapture; borrows the input buffer when no partial match carried over from a prior Feed, otherwise a copy spanning the call boundary
}

// CaptureCallback receives CaptureEvents. Its return value only matters for
// CaptureEventParser events: it names the capture mode to enter after that
// event. For any other event kind the return value is ignored.
type CaptureCallback func(CaptureEvent) CaptureRequest

// partialMatch tracks a terminator search across Feed-call boundaries: bytes
// already consumed from input that could be a prefix of the terminator, but
// haven't yet been confirmed as part of the body or the terminator itself.
type partialMatch struct {
	buf []byte
}

// CaptureParser wraps a Parser, adding the capture diversion described in
// §4.5. It is not itself a Parser (it speaks CaptureEvent, not Event), but
// exposes the same IsGround/Idle integration points a collaborator like
// internal/vtinput needs.
type CaptureParser struct {
	parser  *Parser
	active  CaptureRequest
	pending partialMatch
}

// NewCaptureParser returns a CaptureParser wrapping a default-constructed
// Parser.
func NewCaptureParser() *CaptureParser {
	return NewCaptureParserWithOptions(DefaultOptions())
}

// NewCaptureParserWithOptions returns a CaptureParser wrapping a Parser
// constructed with opts.
func NewCaptureParserWithOptions(opts ParserOptions) *CaptureParser {
	return &CaptureParser{parser: NewParserWithOptions(opts), active: NoCapture()}
}

// IsGround reports whether the underlying Parser is in Ground and no
// capture is in progress — the condition under which it is safe to treat
// the stream as framing-complete.
func (cp *CaptureParser) IsGround() bool {
	return cp.active.kind == captureNone && cp.parser.IsGround()
}

// isUtf8Start reports whether b begins a UTF-8 scalar (top two bits !=
// 0b10), the rule §4.5 specifies for counting captured characters.
// utf8.RuneStart implements exactly this predicate.
func isUtf8Start(b byte) bool {
	return utf8.RuneStart(b)
}

// haystack returns the bytes to search for a UTF-8 scalar or terminator
// boundary: cp.pending.buf followed by input. When there is no carried-over
// partial match it returns input directly rather than copying it, so a
// capture that completes within a single Feed call (the common case) hands
// the callback a slice that genuinely aliases the caller's input buffer.
func (cp *CaptureParser) haystack(input []byte) []byte {
	if len(cp.pending.buf) == 0 {
		return input
	}
	return append(append([]byte(nil), cp.pending.buf...), input...)
}

// feedCapture consumes as much of input as the active capture request can
// satisfy, reporting captured bytes (if any) and whether the capture
// completed. It returns the number of input bytes consumed.
func (cp *CaptureParser) feedCapture(input []byte, cb CaptureCallback) (consumed int, done bool) {
	switch cp.active.kind {
	case captureCount:
		// cp.active.count is the number of bytes still owed; it is
		// decremented in place as bytes are captured across Feed calls.
		if len(input) < cp.active.count {
			if len(input) > 0 {
				cb(CaptureEvent{Kind: CaptureEventCapture, Bytes: input})
			}
			cp.active.count -= len(input)
			return len(input), false
		}
		need := cp.active.count
		if need > 0 {
			cb(CaptureEvent{Kind: CaptureEventCapture, Bytes: input[:need]})
		}
		return need, true

	case captureCountUtf8:
		// Accumulate across Feed calls (a scalar's continuation bytes, or
		// even the (count+1)'th scalar's lead byte needed to know where the
		// count'th scalar ends, may arrive in a later call) and recompute
		// over the whole haystack each time, mirroring the terminator case.
		// When there is no carried-over partial match, haystack aliases
		// input directly rather than copying it, so the Bytes handed to cb
		// genuinely borrow the input buffer in the common single-feed case.
		pendingLen := len(cp.pending.buf)
		haystack := cp.haystack(input)
		seen, cut := 0, -1
		for i, b := range haystack {
			if isUtf8Start(b) {
				seen++
				if seen == cp.active.count+1 {
					cut = i
					break
				}
			}
		}
		if cut < 0 {
			// Fewer than count+1 scalar starts seen: either we haven't
			// reached count yet, or the count'th scalar's continuation
			// bytes haven't all arrived. Either way, wait for more input.
			// What's carried across the call boundary must be copied even
			// though haystack itself may alias input.
			cp.pending.buf = append([]byte(nil), haystack...)
			return len(input), false
		}
		if cut > 0 {
			cb(CaptureEvent{Kind: CaptureEventCapture, Bytes: haystack[:cut]})
		}
		consumedFromInput := cut - pendingLen
		cp.pending.buf = nil
		return consumedFromInput, true

	case captureTerminator:
		term := cp.active.terminator
		pendingLen := len(cp.pending.buf)
		haystack := cp.haystack(input)
		if idx := indexOf(haystack, term); idx >= 0 {
			captured := haystack[:idx]
			if len(captured) > 0 {
				cb(CaptureEvent{Kind: CaptureEventCapture, Bytes: captured})
			}
			consumedFromInput := idx + len(term) - pendingLen
			cp.pending.buf = nil
			return consumedFromInput, true
		}
		// No full match yet. Keep only a suffix of haystack that could still
		// be a prefix of term (so we don't re-buffer the whole stream
		// forever), flushing the rest as captured bytes.
		keep := maxTerminatorPrefix(haystack, term)
		flush := haystack[:len(haystack)-keep]
		if len(flush) > 0 {
			cb(CaptureEvent{Kind: CaptureEventCapture, Bytes: flush})
		}
		cp.pending.buf = append([]byte(nil), haystack[len(haystack)-keep:]...)
		return len(input), false

	default:
		return 0, true
	}
}

func indexOf(haystack, needle []byte) int {
	if len(needle) == 0 {
		return 0
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// maxTerminatorPrefix returns the length of the longest suffix of haystack
// that is a proper prefix of term (so it might still grow into a full
// match with more input).
func maxTerminatorPrefix(haystack, term []byte) int {
	longest := len(term) - 1
	if longest > len(haystack) {
		longest = len(haystack)
	}
	for l := longest; l > 0; l-- {
		if l > len(haystack) {
			continue
		}
		suffix := haystack[len(haystack)-l:]
		ok := true
		for j := 0; j < l; j++ {
			if suffix[j] != term[j] {
				ok = false
				break
			}
		}
		if ok {
			return l
		}
	}
	return 0
}

// Feed drives the capture-adapter protocol over input (§6 "Capture-adapter
// operation"). When no capture is active, bytes flow straight to the
// underlying Parser and cb sees CaptureEventParser events; cb's returned
// CaptureRequest decides whether to start a diversion. Once diverted, bytes
// flow as CaptureEventCapture events (possibly several per diversion across
// calls) followed by exactly one CaptureEventCaptureEnd when satisfied.
func (cp *CaptureParser) Feed(input []byte, cb CaptureCallback) {
	for len(input) > 0 {
		if cp.active.kind != captureNone {
			n, done := cp.feedCapture(input, cb)
			input = input[n:]
			if done {
				cp.active = NoCapture()
				cb(CaptureEvent{Kind: CaptureEventCaptureEnd})
			}
			if n == 0 && !done {
				// Need more input than this call provided.
				return
			}
			continue
		}

		consumed := cp.parser.Feed(input, func(ev Event) bool {
			req := cb(CaptureEvent{Kind: CaptureEventParser, Event: ev})
			if req.kind != captureNone {
				cp.active = req
				return false
			}
			return true
		})
		input = input[consumed:]
	}
}

// Idle forwards to the underlying Parser's Idle (§6), translating any
// emitted recovery event into a CaptureEventParser. It is a no-op while a
// capture is active, matching the Rust source's idle() semantics (capture
// diversion has no notion of "incomplete" to flush).
func (cp *CaptureParser) Idle(cb CaptureCallback) {
	if cp.active.kind != captureNone {
		return
	}
	cp.parser.Idle(func(ev Event) bool {
		cb(CaptureEvent{Kind: CaptureEventParser, Event: ev})
		return true
	})
}
