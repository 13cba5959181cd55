package vtpush

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedTrace struct {
	events  []CaptureEventKind
	capture []string
}

func runCapture(cp *CaptureParser, input []byte, onParser func(CaptureEvent) CaptureRequest) *capturedTrace {
	tr := &capturedTrace{}
	cp.Feed(input, func(ce CaptureEvent) CaptureRequest {
		tr.events = append(tr.events, ce.Kind)
		switch ce.Kind {
		case CaptureEventCapture:
			tr.capture = append(tr.capture, string(ce.Bytes))
			return NoCapture()
		case CaptureEventCaptureEnd:
			return NoCapture()
		default:
			return onParser(ce)
		}
	})
	return tr
}

func TestCaptureBracketedPaste(t *testing.T) {
	cp := NewCaptureParser()
	input := []byte("raw\x1b[200~paste\x1b[201~raw")

	var sawCsi200 bool
	tr := runCapture(cp, input, func(ce CaptureEvent) CaptureRequest {
		if csi, ok := ce.Event.(Csi); ok && csi.Final == '~' && csi.Params != nil && csi.Params.Len() == 1 && string(csi.Params.Get(0).Bytes()) == "200" {
			sawCsi200 = true
			return CaptureUntil([]byte("\x1b[201~"))
		}
		return NoCapture()
	})
	require.True(t, sawCsi200)
	require.Equal(t, []string{"paste"}, tr.capture)
	assert.True(t, cp.IsGround())
}

func isMarkerCsi(ev Event) bool {
	csi, ok := ev.(Csi)
	return ok && csi.Final == '~' && csi.Params != nil && csi.Params.Len() == 1 && string(csi.Params.Get(0).Bytes()) == "9"
}

func TestCaptureCountSingleCall(t *testing.T) {
	cp := NewCaptureParser()
	var got []string
	cp.Feed([]byte("\x1b[9~ABCDE"), func(ce CaptureEvent) CaptureRequest {
		switch ce.Kind {
		case CaptureEventParser:
			if isMarkerCsi(ce.Event) {
				return CaptureCount(3)
			}
		case CaptureEventCapture:
			got = append(got, string(ce.Bytes))
		}
		return NoCapture()
	})
	// "ABC" captured, "DE" falls through to the parser as Raw once the
	// capture completes and control returns to normal feeding.
	assert.Equal(t, []string{"ABC"}, got)
}

func TestCaptureCountAcrossFeedCalls(t *testing.T) {
	cp := NewCaptureParser()
	var got []string
	onParser := func(ce CaptureEvent) CaptureRequest {
		if isMarkerCsi(ce.Event) {
			return CaptureCount(5)
		}
		return NoCapture()
	}
	collectCb := func(ce CaptureEvent) CaptureRequest {
		if ce.Kind == CaptureEventCapture {
			got = append(got, string(ce.Bytes))
			return NoCapture()
		}
		if ce.Kind == CaptureEventParser {
			return onParser(ce)
		}
		return NoCapture()
	}
	cp.Feed([]byte("\x1b[9~"), collectCb)
	cp.Feed([]byte("ab"), collectCb)
	cp.Feed([]byte("cde"), collectCb)
	cp.Feed([]byte("f"), collectCb)
	assert.Equal(t, []string{"ab", "cde"}, got)
}

func TestCaptureCountUtf8(t *testing.T) {
	cp := NewCaptureParser()
	var got []string
	cb := func(ce CaptureEvent) CaptureRequest {
		switch ce.Kind {
		case CaptureEventParser:
			if raw, ok := ce.Event.(Raw); ok && len(raw.Bytes) > 0 && raw.Bytes[0] == 'T' {
				return CaptureCountUtf8(5)
			}
		case CaptureEventCapture:
			got = append(got, string(ce.Bytes))
		}
		return NoCapture()
	}
	// Feed the marker byte as its own call so it surfaces as a distinct Raw
	// event, boundary-separate from the text that follows.
	cp.Feed([]byte("T"), cb)
	cp.Feed([]byte("héllo"+"WORLD"), cb)
	assert.Equal(t, "héllo", joinStrings(got))
}

func joinStrings(parts []string) string {
	out := ""
	for _, p := range parts {
		out += p
	}
	return out
}

func TestCaptureCountUtf8SplitAcrossScalarBoundary(t *testing.T) {
	cp := NewCaptureParser()
	var got []string
	onParser := func(ce CaptureEvent) CaptureRequest {
		if raw, ok := ce.Event.(Raw); ok && len(raw.Bytes) > 0 && raw.Bytes[0] == 'T' {
			return CaptureCountUtf8(2)
		}
		return NoCapture()
	}
	cb := func(ce CaptureEvent) CaptureRequest {
		if ce.Kind == CaptureEventCapture {
			got = append(got, string(ce.Bytes))
			return NoCapture()
		}
		if ce.Kind == CaptureEventParser {
			return onParser(ce)
		}
		return NoCapture()
	}
	full := []byte("T" + "é" + "a" + "tail")
	// Feed byte-by-byte so the two-byte UTF-8 scalar for 'é' is split across
	// Feed calls.
	cp.Feed(full[:1], cb)
	for i := 1; i < len(full); i++ {
		cp.Feed(full[i:i+1], cb)
	}
	assert.Equal(t, "éa", joinStrings(got))
}

func TestCaptureTerminatorSplitAcrossFeedCalls(t *testing.T) {
	cp := NewCaptureParser()
	var got []string
	var ended bool
	onParser := func(ce CaptureEvent) CaptureRequest {
		if raw, ok := ce.Event.(Raw); ok && len(raw.Bytes) > 0 && raw.Bytes[0] == 'S' {
			return CaptureUntil([]byte("END"))
		}
		return NoCapture()
	}
	cb := func(ce CaptureEvent) CaptureRequest {
		switch ce.Kind {
		case CaptureEventCapture:
			got = append(got, string(ce.Bytes))
		case CaptureEventCaptureEnd:
			ended = true
		case CaptureEventParser:
			return onParser(ce)
		}
		return NoCapture()
	}
	full := []byte("Spayload1END")
	for i := 0; i < len(full); i++ {
		cp.Feed(full[i:i+1], cb)
	}
	assert.True(t, ended)
	assert.Equal(t, "payload1", joinStrings(got))
}

func TestCaptureTerminatorFalseStartIsFlushed(t *testing.T) {
	// "EN" looks like a terminator prefix but is followed by 'X', not 'D':
	// it must be flushed as captured content, not silently dropped.
	cp := NewCaptureParser()
	var got []string
	onParser := func(ce CaptureEvent) CaptureRequest {
		if raw, ok := ce.Event.(Raw); ok && len(raw.Bytes) > 0 && raw.Bytes[0] == 'S' {
			return CaptureUntil([]byte("END"))
		}
		return NoCapture()
	}
	cb := func(ce CaptureEvent) CaptureRequest {
		if ce.Kind == CaptureEventCapture {
			got = append(got, string(ce.Bytes))
			return NoCapture()
		}
		if ce.Kind == CaptureEventParser {
			return onParser(ce)
		}
		return NoCapture()
	}
	cp.Feed([]byte("S"), cb)
	cp.Feed([]byte("aENXbEND"), cb)
	assert.Equal(t, "aENXb", joinStrings(got))
}

func TestCaptureIsGroundFalseDuringCapture(t *testing.T) {
	cp := NewCaptureParser()
	onParser := func(ce CaptureEvent) CaptureRequest {
		if raw, ok := ce.Event.(Raw); ok && len(raw.Bytes) > 0 && raw.Bytes[0] == 'S' {
			return CaptureCount(10)
		}
		return NoCapture()
	}
	cp.Feed([]byte("S"), func(ce CaptureEvent) CaptureRequest {
		if ce.Kind == CaptureEventParser {
			return onParser(ce)
		}
		return NoCapture()
	})
	assert.False(t, cp.IsGround())
}

func TestCaptureIdleNoopDuringCapture(t *testing.T) {
	cp := NewCaptureParser()
	cp.Feed([]byte("S"), func(ce CaptureEvent) CaptureRequest {
		if ce.Kind == CaptureEventParser {
			return CaptureCount(100)
		}
		return NoCapture()
	})
	called := false
	cp.Idle(func(ce CaptureEvent) CaptureRequest {
		called = true
		return NoCapture()
	})
	assert.False(t, called)
}

func TestCaptureIdleForwardsParserRecovery(t *testing.T) {
	cp := NewCaptureParser()
	cp.Feed([]byte("\x1bPq"), func(ce CaptureEvent) CaptureRequest { return NoCapture() })
	var got []CaptureEvent
	cp.Idle(func(ce CaptureEvent) CaptureRequest {
		got = append(got, ce)
		return NoCapture()
	})
	require.Len(t, got, 1)
	_, ok := got[0].Event.(DcsCancel)
	assert.True(t, ok)
}
