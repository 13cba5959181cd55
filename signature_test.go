package vtpush

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCSISignatureMatchesExactFinalAndArity(t *testing.T) {
	sig := CSISignature(nil, nil, 'm', 1, 1)
	var ps Params
	ps.PushDigit('3')
	ps.PushDigit('1')
	assert.True(t, sig.Matches(Csi{Params: &ps, Final: 'm'}))
}

func TestCSISignatureRejectsWrongFinal(t *testing.T) {
	sig := CSISignature(nil, nil, 'm', 0, 255)
	assert.False(t, sig.Matches(Csi{Final: 'h'}))
}

func TestCSISignatureRejectsWrongArity(t *testing.T) {
	sig := CSISignature(nil, nil, 'm', 2, 2)
	var ps Params
	ps.PushDigit('1')
	assert.False(t, sig.Matches(Csi{Params: &ps, Final: 'm'}))
}

func TestCSISignatureZeroArityMatchesNilParams(t *testing.T) {
	sig := CSISignature(nil, nil, 'A', 0, 0)
	assert.True(t, sig.Matches(Csi{Final: 'A'}))
}

func TestCSISignaturePrivatePrefix(t *testing.T) {
	priv := byte('?')
	sig := CSISignature(&priv, nil, 'h', 0, 255)
	assert.True(t, sig.Matches(Csi{Private: &priv, Final: 'h'}))
	assert.False(t, sig.Matches(Csi{Final: 'h'}))

	other := byte('>')
	assert.False(t, sig.Matches(Csi{Private: &other, Final: 'h'}))
}

func TestCSISignatureIntermediates(t *testing.T) {
	sig := CSISignature(nil, []byte{'$'}, 'p', 0, 255)
	assert.True(t, sig.Matches(Csi{Intermediates: []byte{'$'}, Final: 'p'}))
	assert.False(t, sig.Matches(Csi{Final: 'p'}))
}

func TestCSISignatureNeverMatchesOtherKinds(t *testing.T) {
	sig := CSISignature(nil, nil, 'm', 0, 255)
	assert.False(t, sig.Matches(Raw{Bytes: []byte("m")}))
	assert.False(t, sig.Matches(Ss3{Byte: 'm'}))
	assert.False(t, sig.Matches(DcsStart{Final: 'm'}))
}

func TestSS3SignatureMatchesByte(t *testing.T) {
	sig := SS3Signature(nil, 'A')
	assert.True(t, sig.Matches(Ss3{Byte: 'A'}))
	assert.False(t, sig.Matches(Ss3{Byte: 'B'}))
}

func TestSS3SignatureNeverMatchesCsi(t *testing.T) {
	sig := SS3Signature(nil, 'A')
	assert.False(t, sig.Matches(Csi{Final: 'A'}))
}

func TestDCSSignatureMatches(t *testing.T) {
	sig := DCSSignature(nil, nil, 'q', 0, 255)
	var ps Params
	ps.PushDigit('1')
	assert.True(t, sig.Matches(DcsStart{Params: &ps, Final: 'q'}))
}

func TestDCSSignatureRejectsWrongPrefixFamily(t *testing.T) {
	sig := DCSSignature(nil, nil, 'q', 0, 255)
	assert.False(t, sig.Matches(Csi{Final: 'q'}))
}

func TestOSCSignatureDoesNotApplyToOscEvents(t *testing.T) {
	// The core's OSC events (OscStart/OscData/OscEnd) carry no final byte or
	// params, so OSCSignature — built for parity with the original's osc()
	// constructor — has nothing in the current event set it can match; it is
	// provided for forward-compatibility and symmetry with CSI/DCS/SS3.
	sig := OSCSignature(nil, 'q')
	assert.False(t, sig.Matches(OscStart{}))
	assert.False(t, sig.Matches(OscEnd{}))
}

func TestEscSignatureViaSS3ConstructorShapeOnEscEvents(t *testing.T) {
	// Esc events (plain ESC-intermediate-final, not SS2/SS3/CSI/DCS/OSC) are
	// matched structurally regardless of the constructor's nominal prefix,
	// mirroring the original's signature matching against VTEvent::Esc.
	sig := SS3Signature(nil, '=')
	assert.True(t, sig.Matches(Esc{Final: '='}))
	assert.False(t, sig.Matches(Esc{Final: '>'}))
}
