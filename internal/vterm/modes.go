package vterm

func (v *VTerm) setMode(mode int, set bool) {
	v.Modes[mode] = set
	switch mode {
	case 7: // DECAWM
		v.AutoWrap = set
	case 25: // DECTCEM
		v.CursorVisible = set
	case 47, 1047, 1049:
		if set {
			v.enterAltScreen()
		} else {
			v.exitAltScreen()
		}
	}
}

func (v *VTerm) enterAltScreen() {
	if v.AltScreen {
		return
	}
	v.AltScreen = true
	v.mainScreen = v.Screen
	v.Screen = v.makeScreen()
}

func (v *VTerm) exitAltScreen() {
	if !v.AltScreen {
		return
	}
	v.AltScreen = false
	v.Screen = v.mainScreen
	v.mainScreen = nil
}

// MouseEnabled reports whether any mouse reporting mode is on.
func (v *VTerm) MouseEnabled() bool {
	return v.Modes[1000] || v.Modes[1002] || v.Modes[1003]
}

// BracketedPaste reports whether bracketed paste is on.
func (v *VTerm) BracketedPaste() bool {
	return v.Modes[2004]
}
