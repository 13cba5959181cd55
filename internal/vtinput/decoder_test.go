package vtinput

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeAll(t *testing.T, input []byte) []InputEvent {
	t.Helper()
	d := NewDecoder()
	var got []InputEvent
	d.Feed(input, func(ev InputEvent) {
		got = append(got, ev)
	})
	return got
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "Up", KeyUp.String())
	assert.Equal(t, "F4", KeyF4.String())
	assert.Equal(t, "Unknown", Key(200).String())
}

func TestDecodeCursorKeysCSIForm(t *testing.T) {
	events := decodeAll(t, []byte("\x1b[A\x1b[B\x1b[C\x1b[D"))
	require.Len(t, events, 4)
	want := []Key{KeyUp, KeyDown, KeyRight, KeyLeft}
	for i, ev := range events {
		require.Equal(t, EventKey, ev.Kind)
		assert.Equal(t, want[i], ev.Key)
	}
}

func TestDecodeCursorKeysApplicationForm(t *testing.T) {
	events := decodeAll(t, []byte("\x1bOA\x1bOB\x1bOC\x1bOD"))
	require.Len(t, events, 4)
	want := []Key{KeyUp, KeyDown, KeyRight, KeyLeft}
	for i, ev := range events {
		require.Equal(t, EventKey, ev.Kind)
		assert.Equal(t, want[i], ev.Key)
	}
}

func TestDecodeFunctionKeys(t *testing.T) {
	events := decodeAll(t, []byte("\x1bOP\x1bOQ\x1bOR\x1bOS"))
	require.Len(t, events, 4)
	want := []Key{KeyF1, KeyF2, KeyF3, KeyF4}
	for i, ev := range events {
		assert.Equal(t, want[i], ev.Key)
	}
}

func TestDecodeHomeEnd(t *testing.T) {
	events := decodeAll(t, []byte("\x1b[H\x1b[F"))
	require.Len(t, events, 2)
	assert.Equal(t, KeyHome, events[0].Key)
	assert.Equal(t, KeyEnd, events[1].Key)
}

func TestDecodeTildeKeys(t *testing.T) {
	events := decodeAll(t, []byte("\x1b[2~\x1b[3~\x1b[5~\x1b[6~"))
	require.Len(t, events, 4)
	want := []Key{KeyInsert, KeyDelete, KeyPageUp, KeyPageDown}
	for i, ev := range events {
		require.Equal(t, EventKey, ev.Kind)
		assert.Equal(t, want[i], ev.Key)
	}
}

func TestDecodeBracketedPaste(t *testing.T) {
	events := decodeAll(t, []byte("before\x1b[200~pasted text\x1b[201~after"))
	require.Len(t, events, 5)
	assert.Equal(t, EventRaw, events[0].Kind)
	assert.Equal(t, EventPasteStart, events[1].Kind)
	assert.Equal(t, EventPasteData, events[2].Kind)
	assert.Equal(t, "pasted text", string(events[2].Bytes))
	assert.Equal(t, EventPasteEnd, events[3].Kind)
	assert.Equal(t, EventRaw, events[4].Kind)
}

func TestDecodeBracketedPasteFollowedByMoreInput(t *testing.T) {
	events := decodeAll(t, []byte("\x1b[200~data\x1b[201~\x1b[A"))
	require.Len(t, events, 4)
	assert.Equal(t, EventPasteStart, events[0].Kind)
	assert.Equal(t, EventPasteData, events[1].Kind)
	assert.Equal(t, "data", string(events[1].Bytes))
	assert.Equal(t, EventPasteEnd, events[2].Kind)
	assert.Equal(t, EventKey, events[3].Kind)
	assert.Equal(t, KeyUp, events[3].Key)
}

func TestDecodeFallsBackToRawForUnrecognisedSequence(t *testing.T) {
	events := decodeAll(t, []byte("\x1b[5;5H"))
	require.Len(t, events, 1)
	assert.Equal(t, EventRaw, events[0].Kind)
	require.NotNil(t, events[0].Raw)
}

func TestDecoderIsGroundTracksPasteState(t *testing.T) {
	d := NewDecoder()
	assert.True(t, d.IsGround())
	d.Feed([]byte("\x1b[200~partial"), func(InputEvent) {})
	assert.False(t, d.IsGround())
	d.Feed([]byte("\x1b[201~"), func(InputEvent) {})
	assert.True(t, d.IsGround())
}

func TestDecoderIdleRecoversIncompleteEscape(t *testing.T) {
	d := NewDecoder()
	d.Feed([]byte("\x1b"), func(InputEvent) {})
	var got []InputEvent
	d.Idle(func(ev InputEvent) {
		got = append(got, ev)
	})
	require.Len(t, got, 1)
	assert.Equal(t, EventRaw, got[0].Kind)
}
