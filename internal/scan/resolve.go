package scan

import "unicode/utf8"

// Region is a half-open byte range [Begin, End).
type Region struct {
	Begin int
	End   int
}

// Whole returns the region covering all of text.
func Whole(text string) Region {
	return Region{Begin: 0, End: len(text)}
}

// Contains reports whether offset lies inside the region.
func (r Region) Contains(offset int) bool {
	return offset >= r.Begin && offset < r.End
}

func (r Region) intersect(o Region) Region {
	r.Begin = max(r.Begin, o.Begin)
	r.End = min(r.End, o.End)
	if r.End < r.Begin {
		r.End = r.Begin
	}
	return r
}

// ColorAt finds the color literal the byte offset falls inside. Only the
// window of WindowRadius bytes on either side of offset, clipped to visible,
// is scanned. Offsets in the returned hit are relative to text.
//
// The first match in scan order containing offset wins. Its Color may be the
// zero value when the literal does not resolve; callers render nothing then.
func (e *Engine) ColorAt(text string, offset int, visible Region) (Hit, bool) {
	window := Region{Begin: offset - e.opts.WindowRadius, End: offset + e.opts.WindowRadius}.
		intersect(visible).
		intersect(Whole(text))
	if !window.Contains(offset) {
		return Hit{}, false
	}

	// Keep the window on rune boundaries so multi-byte characters at its
	// edges are not split.
	for window.Begin < offset && !utf8.RuneStart(text[window.Begin]) {
		window.Begin++
	}
	for window.End < len(text) && window.End > offset+1 && !utf8.RuneStart(text[window.End]) {
		window.End--
	}

	ref := offset - window.Begin
	for m := range e.All(text[window.Begin:window.End]) {
		if m.Start > ref {
			break
		}
		if !m.Contains(ref) {
			continue
		}
		m.Start += window.Begin
		m.End += window.Begin
		return Hit{Match: m, Color: e.Translate(m)}, true
	}
	return Hit{}, false
}
