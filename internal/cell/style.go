package cell

// Flag is a tri-state style attribute. An unset flag and an explicit Off
// render the same but are distinct values.
type Flag uint8

const (
	Unset Flag = iota
	Off
	On
)

// FlagOf converts a bool to an explicit flag.
func FlagOf(v bool) Flag {
	if v {
		return On
	}
	return Off
}

// Enabled reports whether the attribute is switched on.
func (f Flag) Enabled() bool {
	return f == On
}

func (f Flag) String() string {
	switch f {
	case On:
		return "on"
	case Off:
		return "off"
	default:
		return "unset"
	}
}

// Style holds text styling attributes
type Style struct {
	Fg            Color
	Bg            Color
	Bold          Flag
	Dim           Flag
	Italic        Flag
	Underline     Flag
	Blink         Flag
	Inverse       Flag
	Hidden        Flag
	Strikethrough Flag
}

// Attr identifies one of the boolean style attributes.
type Attr uint8

const (
	AttrBold Attr = iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrInverse
	AttrHidden
	AttrStrikethrough
)

// Attrs lists every attribute in emission order.
var Attrs = [...]Attr{
	AttrBold,
	AttrDim,
	AttrItalic,
	AttrUnderline,
	AttrBlink,
	AttrInverse,
	AttrHidden,
	AttrStrikethrough,
}

func (a Attr) String() string {
	switch a {
	case AttrBold:
		return "bold"
	case AttrDim:
		return "dim"
	case AttrItalic:
		return "italic"
	case AttrUnderline:
		return "underline"
	case AttrBlink:
		return "blink"
	case AttrInverse:
		return "inverse"
	case AttrHidden:
		return "hidden"
	case AttrStrikethrough:
		return "strikethrough"
	}
	return "unknown"
}

// Flag returns the value of attribute a.
func (s Style) Flag(a Attr) Flag {
	if p := s.flagPtr(a); p != nil {
		return *p
	}
	return Unset
}

// With returns a copy of s with attribute a set to f.
func (s Style) With(a Attr, f Flag) Style {
	if p := s.flagPtr(a); p != nil {
		*p = f
	}
	return s
}

func (s *Style) flagPtr(a Attr) *Flag {
	switch a {
	case AttrBold:
		return &s.Bold
	case AttrDim:
		return &s.Dim
	case AttrItalic:
		return &s.Italic
	case AttrUnderline:
		return &s.Underline
	case AttrBlink:
		return &s.Blink
	case AttrInverse:
		return &s.Inverse
	case AttrHidden:
		return &s.Hidden
	case AttrStrikethrough:
		return &s.Strikethrough
	}
	return nil
}
