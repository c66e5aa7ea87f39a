package vterm

import "github.com/andyrewlee/termsync/internal/cell"

func (p *Parser) executeSGR() {
	if len(p.params) == 0 {
		p.params = append(p.params, 0)
	}
	st := &p.vt.CurrentStyle
	for i := 0; i < len(p.params); i++ {
		param := p.params[i]
		switch {
		case param == 0:
			*st = Style{}
		case param == 1:
			st.Bold = true
		case param == 2:
			st.Dim = true
		case param == 3:
			st.Italic = true
		case param == 4:
			st.Underline = true
		case param == 5 || param == 6:
			st.Blink = true
		case param == 7:
			st.Reverse = true
		case param == 8:
			st.Hidden = true
		case param == 9:
			st.Strike = true
		case param == 22:
			st.Bold = false
			st.Dim = false
		case param == 23:
			st.Italic = false
		case param == 24:
			st.Underline = false
		case param == 25:
			st.Blink = false
		case param == 27:
			st.Reverse = false
		case param == 28:
			st.Hidden = false
		case param == 29:
			st.Strike = false
		case param >= 30 && param <= 37:
			st.Fg = cell.Indexed(uint8(param - 30))
		case param == 38:
			i = p.parseExtendedColor(i, &st.Fg)
		case param == 39:
			st.Fg = cell.Default()
		case param >= 40 && param <= 47:
			st.Bg = cell.Indexed(uint8(param - 40))
		case param == 48:
			i = p.parseExtendedColor(i, &st.Bg)
		case param == 49:
			st.Bg = cell.Default()
		case param >= 90 && param <= 97:
			st.Fg = cell.Indexed(uint8(param - 90 + 8))
		case param >= 100 && param <= 107:
			st.Bg = cell.Indexed(uint8(param - 100 + 8))
		}
	}
}

func (p *Parser) parseExtendedColor(i int, color *cell.Color) int {
	if i+1 >= len(p.params) {
		return i
	}
	switch p.params[i+1] {
	case 2: // RGB
		if i+4 < len(p.params) {
			*color = cell.RGB(uint8(p.params[i+2]), uint8(p.params[i+3]), uint8(p.params[i+4]))
			return i + 4
		}
	case 5: // 256 color
		if i+2 < len(p.params) {
			*color = cell.Indexed(uint8(p.params[i+2]))
			return i + 2
		}
	}
	return i + 1
}
