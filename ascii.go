package vtpush

// C0 names the ASCII control bytes, matching the teacher's ansi.go named-
// constant style (adapted here to cover every C0 byte plus DEL, grounded
// also on original_source/ascii.rs's AsciiControl enum for the exact name
// set and <NAME> debug convention).
var C0 = struct {
	NUL, SOH, STX, ETX, EOT, ENQ, ACK, BEL                     byte
	BS, TAB, LF, VT, FF, CR, SO, SI                            byte
	DLE, DC1, DC2, DC3, DC4, NAK, SYN, ETB                     byte
	CAN, EM, SUB, ESC, FS, GS, RS, US                          byte
	DEL                                                        byte
}{
	NUL: 0x00, SOH: 0x01, STX: 0x02, ETX: 0x03, EOT: 0x04, ENQ: 0x05, ACK: 0x06, BEL: 0x07,
	BS: 0x08, TAB: 0x09, LF: 0x0A, VT: 0x0B, FF: 0x0C, CR: 0x0D, SO: 0x0E, SI: 0x0F,
	DLE: 0x10, DC1: 0x11, DC2: 0x12, DC3: 0x13, DC4: 0x14, NAK: 0x15, SYN: 0x16, ETB: 0x17,
	CAN: 0x18, EM: 0x19, SUB: 0x1A, ESC: 0x1B, FS: 0x1C, GS: 0x1D, RS: 0x1E, US: 0x1F,
	DEL: 0x7F,
}

var c0Names = [...]string{
	0x00: "NUL", 0x01: "SOH", 0x02: "STX", 0x03: "ETX", 0x04: "EOT", 0x05: "ENQ", 0x06: "ACK", 0x07: "BEL",
	0x08: "BS", 0x09: "TAB", 0x0A: "LF", 0x0B: "VT", 0x0C: "FF", 0x0D: "CR", 0x0E: "SO", 0x0F: "SI",
	0x10: "DLE", 0x11: "DC1", 0x12: "DC2", 0x13: "DC3", 0x14: "DC4", 0x15: "NAK", 0x16: "SYN", 0x17: "ETB",
	0x18: "CAN", 0x19: "EM", 0x1A: "SUB", 0x1B: "ESC", 0x1C: "FS", 0x1D: "GS", 0x1E: "RS", 0x1F: "US",
}

// C0Name returns the human-readable "<NAME>" form of a C0 control byte or
// DEL, for use in debug output. Bytes outside those ranges return "".
func C0Name(b byte) string {
	if b == 0x7F {
		return "<DEL>"
	}
	if int(b) < len(c0Names) {
		return "<" + c0Names[b] + ">"
	}
	return ""
}
