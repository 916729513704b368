package colors

import (
	"github.com/charmbracelet/log"
)

// Resolver resolves color references against a document theme. The zero value
// resolves explicit and indexed colors; theme slots need Scheme set.
//
// ThemeOffset is added to a reference's slot number before indexing the
// scheme. Real documents use the direct mapping (offset 0); some legacy
// producers numbered slots two positions off, so the offset is configurable
// rather than hard-coded.
type Resolver struct {
	Scheme      *Scheme
	ThemeOffset int
	Log         *log.Logger // nil disables diagnostics
}

// Resolve turns ref into a concrete color. Resolution never fails: any
// unresolvable step substitutes def. A reference of KindNone consults
// bgFallback first (used for fill foreground/background pairing) before
// giving up. Tint is applied after resolution.
func (r *Resolver) Resolve(ref Ref, def RGBA, bgFallback *Ref) RGBA {
	c, err := r.resolveBase(ref, def, bgFallback)
	if err != nil {
		r.debug("color fallback", "err", err)
		c = def
	}
	return ApplyTint(c, ref.Tint)
}

func (r *Resolver) resolveBase(ref Ref, def RGBA, bgFallback *Ref) (RGBA, error) {
	switch ref.Kind {
	case KindRGB:
		return ParseHex(ref.Hex)
	case KindIndexed:
		return IndexedColor(ref.Index)
	case KindTheme:
		return r.Scheme.Color(ref.Slot + r.ThemeOffset)
	case KindNone:
		if bgFallback != nil {
			return r.resolveBase(*bgFallback, def, nil)
		}
	}
	return def, nil
}

func (r *Resolver) debug(msg string, kv ...any) {
	if r.Log != nil {
		r.Log.Debug(msg, kv...)
	}
}
