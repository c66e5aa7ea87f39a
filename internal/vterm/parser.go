package vterm

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Parser states
type parseState int

const (
	stateGround parseState = iota
	stateEscape
	stateCSI
	stateOSC
	stateOSCEscape
	stateCharset
)

// Parser handles ANSI escape sequence parsing
type Parser struct {
	vt    *VTerm
	state parseState

	// CSI sequence building
	params   []int
	paramBuf strings.Builder
	private  byte

	oscBuf strings.Builder

	// pending holds an incomplete UTF-8 sequence split across writes.
	pending []byte
}

// NewParser creates a new parser for the given VTerm
func NewParser(vt *VTerm) *Parser {
	return &Parser{
		vt:     vt,
		params: make([]int, 0, 16),
	}
}

// Parse processes terminal output
func (p *Parser) Parse(data []byte) {
	if len(p.pending) > 0 {
		data = append(p.pending, data...)
		p.pending = nil
	}
	for i := 0; i < len(data); {
		b := data[i]
		if p.state != stateGround || b < 0x80 {
			p.parseByte(b)
			i++
			continue
		}
		if !utf8.FullRune(data[i:]) {
			p.pending = append([]byte(nil), data[i:]...)
			return
		}
		r, size := utf8.DecodeRune(data[i:])
		p.vt.putChar(r)
		i += size
	}
}

func (p *Parser) parseByte(b byte) {
	switch p.state {
	case stateGround:
		p.parseGround(b)
	case stateEscape:
		p.parseEscape(b)
	case stateCSI:
		p.parseCSI(b)
	case stateOSC:
		p.parseOSC(b)
	case stateOSCEscape:
		if b == '\\' {
			p.executeOSC()
			p.state = stateGround
			return
		}
		p.state = stateEscape
		p.parseEscape(b)
	case stateCharset:
		p.state = stateGround
	}
}

func (p *Parser) parseGround(b byte) {
	switch {
	case b == 0x1b:
		p.state = stateEscape
	case b == '\n':
		p.vt.lineFeed()
	case b == '\r':
		p.vt.CursorX = 0
	case b == '\b':
		if p.vt.CursorX > 0 {
			p.vt.CursorX--
		}
	case b >= 0x20 && b < 0x7f:
		p.vt.putChar(rune(b))
	}
}

func (p *Parser) parseEscape(b byte) {
	switch b {
	case '[':
		p.state = stateCSI
		p.params = p.params[:0]
		p.paramBuf.Reset()
		p.private = 0
	case ']':
		p.state = stateOSC
		p.oscBuf.Reset()
	case '(', ')':
		p.state = stateCharset
	case 'c': // RIS
		*p.vt = *New(p.vt.Width, p.vt.Height)
		p.vt.parser = p
		p.state = stateGround
	default:
		p.state = stateGround
	}
}

func (p *Parser) parseCSI(b byte) {
	switch {
	case b >= '0' && b <= '9':
		p.paramBuf.WriteByte(b)
	case b == ';':
		p.pushParam()
	case b == '?' || b == '>' || b == '<' || b == '=':
		p.private = b
	case b >= 0x40 && b <= 0x7e:
		p.pushParam()
		p.executeCSI(b)
		p.state = stateGround
	case b == 0x1b:
		p.state = stateEscape
	}
}

func (p *Parser) pushParam() {
	val := 0
	if p.paramBuf.Len() > 0 {
		val, _ = strconv.Atoi(p.paramBuf.String())
	}
	p.params = append(p.params, val)
	p.paramBuf.Reset()
}

func (p *Parser) getParam(idx, def int) int {
	if idx < len(p.params) && p.params[idx] != 0 {
		return p.params[idx]
	}
	return def
}

func (p *Parser) executeCSI(final byte) {
	switch final {
	case 'A': // CUU
		p.vt.moveCursor(-p.getParam(0, 1), 0)
	case 'B': // CUD
		p.vt.moveCursor(p.getParam(0, 1), 0)
	case 'C': // CUF
		p.vt.moveCursor(0, p.getParam(0, 1))
	case 'D': // CUB
		p.vt.moveCursor(0, -p.getParam(0, 1))
	case 'G': // CHA
		p.vt.setCursorPos(p.vt.CursorY+1, p.getParam(0, 1))
	case 'H', 'f': // CUP
		p.vt.setCursorPos(p.getParam(0, 1), p.getParam(1, 1))
	case 'J': // ED
		p.vt.eraseDisplay(p.getParam(0, 0))
	case 'K': // EL
		p.vt.eraseLine(p.getParam(0, 0))
	case 'm':
		if p.private == 0 {
			p.executeSGR()
		}
	case 'h', 'l':
		if p.private == '?' {
			for _, mode := range p.params {
				p.vt.setMode(mode, final == 'h')
			}
		}
	}
}

func (p *Parser) parseOSC(b byte) {
	switch b {
	case 0x07:
		p.executeOSC()
		p.state = stateGround
	case 0x1b:
		p.state = stateOSCEscape
	default:
		p.oscBuf.WriteByte(b)
	}
}

func (p *Parser) executeOSC() {
	cmd, arg, ok := strings.Cut(p.oscBuf.String(), ";")
	if !ok {
		return
	}
	switch cmd {
	case "0", "2":
		p.vt.Title = arg
	}
}
