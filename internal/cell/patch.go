package cell

// Patch is a partial cell. Nil fields leave the target untouched.
type Patch struct {
	Content       *string
	Fg            *Color
	Bg            *Color
	Bold          *Flag
	Dim           *Flag
	Italic        *Flag
	Underline     *Flag
	Blink         *Flag
	Inverse       *Flag
	Hidden        *Flag
	Strikethrough *Flag
}

// Apply merges p into c. Setting content turns a continuation back into
// a glyph. A continuation has no style of its own, so a patch without
// content leaves it unchanged.
func (p Patch) Apply(c Cell) Cell {
	if c.Kind == Continuation && p.Content == nil {
		return c
	}
	if p.Content != nil {
		c.Content = *p.Content
		c.Kind = Glyph
	}
	if p.Fg != nil {
		c.Style.Fg = *p.Fg
	}
	if p.Bg != nil {
		c.Style.Bg = *p.Bg
	}
	set := func(dst *Flag, src *Flag) {
		if src != nil {
			*dst = *src
		}
	}
	set(&c.Style.Bold, p.Bold)
	set(&c.Style.Dim, p.Dim)
	set(&c.Style.Italic, p.Italic)
	set(&c.Style.Underline, p.Underline)
	set(&c.Style.Blink, p.Blink)
	set(&c.Style.Inverse, p.Inverse)
	set(&c.Style.Hidden, p.Hidden)
	set(&c.Style.Strikethrough, p.Strikethrough)
	return c
}

// Empty reports whether p changes nothing.
func (p Patch) Empty() bool {
	return p == Patch{}
}

// Text returns a patch that sets the content.
func Text(s string) Patch {
	return Patch{Content: &s}
}

// WithFg returns a copy of p that also sets the foreground.
func (p Patch) WithFg(c Color) Patch {
	p.Fg = &c
	return p
}

// WithBg returns a copy of p that also sets the background.
func (p Patch) WithBg(c Color) Patch {
	p.Bg = &c
	return p
}

// WithAttr returns a copy of p that also sets attribute a.
func (p Patch) WithAttr(a Attr, f Flag) Patch {
	v := f
	switch a {
	case AttrBold:
		p.Bold = &v
	case AttrDim:
		p.Dim = &v
	case AttrItalic:
		p.Italic = &v
	case AttrUnderline:
		p.Underline = &v
	case AttrBlink:
		p.Blink = &v
	case AttrInverse:
		p.Inverse = &v
	case AttrHidden:
		p.Hidden = &v
	case AttrStrikethrough:
		p.Strikethrough = &v
	}
	return p
}
