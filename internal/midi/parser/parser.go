// Package parser reassembles complete MIDI messages from an undelimited
// byte stream: the ALSA rawmidi read path and the coalesced packet data
// CoreMIDI delivers. It handles running status, the fixed data lengths of
// channel and system common messages, variable-length system exclusive
// data, and system realtime bytes arriving in the middle of another
// message.
package parser

// Parser is a push-style state machine. Feed it raw bytes in arrival
// order; every completed message is passed to emit as a fresh slice. Not
// safe for concurrent use; each input port owns exactly one parser on its
// reader goroutine.
type Parser struct {
	emit func(message []byte)

	buf     []byte
	need    int
	running byte
	inSysex bool
}

// New creates a parser delivering completed messages to emit.
func New(emit func(message []byte)) *Parser {
	return &Parser{emit: emit}
}

// Feed consumes a chunk of the stream.
func (p *Parser) Feed(data []byte) {
	for _, b := range data {
		switch {
		case b >= 0xF8:
			// Realtime bytes are complete messages on their own and may
			// interleave anything, including sysex data.
			p.emit([]byte{b})
		case b >= 0x80:
			p.statusByte(b)
		default:
			p.dataByte(b)
		}
	}
}

func (p *Parser) statusByte(b byte) {
	if p.inSysex {
		// Any status byte terminates sysex; only 0xF7 makes it complete.
		if b == 0xF7 {
			p.buf = append(p.buf, b)
			p.flush()
		}
		p.inSysex = false
		p.buf = p.buf[:0]
		if b == 0xF7 {
			return
		}
	}

	switch {
	case b == 0xF0:
		p.inSysex = true
		p.running = 0
		p.buf = append(p.buf[:0], b)
	case b == 0xF7:
		// End-of-sysex with no sysex in progress; nothing to do.
		p.buf = p.buf[:0]
	case b >= 0xF0:
		// System common cancels running status.
		p.running = 0
		p.need = dataLength(b)
		p.buf = append(p.buf[:0], b)
		if p.need == 0 {
			p.flush()
		}
	default:
		p.running = b
		p.need = dataLength(b)
		p.buf = append(p.buf[:0], b)
	}
}

func (p *Parser) dataByte(b byte) {
	if p.inSysex {
		p.buf = append(p.buf, b)
		return
	}
	if len(p.buf) == 0 {
		if p.running == 0 {
			// Stray data with no status to attach to.
			return
		}
		// Running status: the omitted status byte is the last seen one.
		p.buf = append(p.buf, p.running)
	}
	p.buf = append(p.buf, b)
	if len(p.buf) == p.need+1 {
		p.flush()
	}
}

func (p *Parser) flush() {
	msg := make([]byte, len(p.buf))
	copy(msg, p.buf)
	p.buf = p.buf[:0]
	p.emit(msg)
}

// dataLength returns the number of data bytes that follow a status byte.
// Program change and channel pressure take one; other channel messages
// take two; system common lengths are fixed per the MIDI grammar.
func dataLength(status byte) int {
	switch status & 0xF0 {
	case 0xC0, 0xD0:
		return 1
	case 0xF0:
		switch status {
		case 0xF1, 0xF3:
			return 1
		case 0xF2:
			return 2
		default:
			return 0
		}
	default:
		return 2
	}
}
