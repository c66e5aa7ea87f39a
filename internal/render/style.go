package render

import (
	"github.com/andyrewlee/termsync/internal/cell"
	"github.com/andyrewlee/termsync/internal/termcode"
)

// styleParams returns the SGR parameters that move the terminal from prev
// to next. A nil prev means the terminal state is unknown and every field
// is sent. Fields are compared literally, so Unset and Off differ.
func styleParams(prev *cell.Style, next cell.Style) []string {
	var params []string
	if prev == nil || prev.Fg != next.Fg {
		params = append(params, termcode.ForegroundParam(next.Fg))
	}
	if prev == nil || prev.Bg != next.Bg {
		params = append(params, termcode.BackgroundParam(next.Bg))
	}

	// Bold and dim share one off code, so turning either off clears both
	// and whichever stays on has to be re-sent.
	boldChanged := prev == nil || prev.Bold != next.Bold
	dimChanged := prev == nil || prev.Dim != next.Dim
	switch {
	case (boldChanged && !next.Bold.Enabled()) || (dimChanged && !next.Dim.Enabled()):
		params = append(params, termcode.AttrParam(cell.AttrBold, false))
		if next.Bold.Enabled() {
			params = append(params, termcode.AttrParam(cell.AttrBold, true))
		}
		if next.Dim.Enabled() {
			params = append(params, termcode.AttrParam(cell.AttrDim, true))
		}
	default:
		if boldChanged {
			params = append(params, termcode.AttrParam(cell.AttrBold, true))
		}
		if dimChanged {
			params = append(params, termcode.AttrParam(cell.AttrDim, true))
		}
	}

	for _, a := range cell.Attrs[2:] {
		f := next.Flag(a)
		if prev == nil || prev.Flag(a) != f {
			params = append(params, termcode.AttrParam(a, f.Enabled()))
		}
	}
	return params
}
