package pathutil

import (
	"fmt"
	"strconv"
	"strings"
)

// PathBuilder provides incremental path construction.
// Uses push/pop semantics to avoid allocations during traversal.
// Segments are only copied or rendered when Segments() or String() is called.
type PathBuilder struct {
	segments []any
}

// Push adds a segment to the path.
func (p *PathBuilder) Push(segment any) {
	p.segments = append(p.segments, segment)
}

// Pop removes the last segment.
func (p *PathBuilder) Pop() {
	if len(p.segments) == 0 {
		return
	}
	p.segments[len(p.segments)-1] = nil
	p.segments = p.segments[:len(p.segments)-1]
}

// Reset clears the builder for reuse.
func (p *PathBuilder) Reset() {
	clear(p.segments)
	p.segments = p.segments[:0]
}

// Len returns the number of segments.
func (p *PathBuilder) Len() int {
	return len(p.segments)
}

// Segments returns a copy of the current segments.
func (p *PathBuilder) Segments() []any {
	out := make([]any, len(p.segments))
	copy(out, p.segments)
	return out
}

// String materializes the full path. Only call when the path is needed.
func (p *PathBuilder) String() string {
	return Format(p.segments)
}

// Format renders segments as a dotted path: plain string keys are joined
// with ".", int segments are rendered as "[i]". A string key that is empty or
// contains '.', '[', ']' or '"' is rendered quoted, as ["a.b"], and any other
// segment as [v], so distinct paths never render alike. An empty path
// renders as "".
func Format(segments []any) string {
	if len(segments) == 0 {
		return ""
	}
	var b strings.Builder
	for i, seg := range segments {
		switch s := seg.(type) {
		case int:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s))
			b.WriteByte(']')
		case string:
			if needsQuote(s) {
				b.WriteByte('[')
				b.WriteString(strconv.Quote(s))
				b.WriteByte(']')
				continue
			}
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(s)
		default:
			b.WriteByte('[')
			_, _ = fmt.Fprint(&b, s)
			b.WriteByte(']')
		}
	}
	return b.String()
}

func needsQuote(key string) bool {
	return key == "" || strings.ContainsAny(key, `.[]"`)
}

// Key encodes segments into a string that uniquely identifies the path.
// Segments of different types never collide, e.g. index 0 and key "0".
func Key(segments []any) string {
	var b strings.Builder
	for _, seg := range segments {
		switch s := seg.(type) {
		case int:
			b.WriteByte('i')
			b.WriteString(strconv.Itoa(s))
			b.WriteByte(';')
		case string:
			b.WriteByte('s')
			b.WriteString(strconv.Itoa(len(s)))
			b.WriteByte(':')
			b.WriteString(s)
		default:
			v := fmt.Sprintf("%T=%v", s, s)
			b.WriteByte('o')
			b.WriteString(strconv.Itoa(len(v)))
			b.WriteByte(':')
			b.WriteString(v)
		}
	}
	return b.String()
}
