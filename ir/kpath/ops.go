package kpath

// Append returns a new path extending p by segs.  p is never modified.
func (p KPath) Append(segs ...Segment) KPath {
	res := make(KPath, len(p), len(p)+len(segs))
	copy(res, p)
	return append(res, segs...)
}

// Child returns the path of the member named field under p.
func (p KPath) Child(field string) KPath {
	return p.Append(Field(field))
}

// Elem returns the path of element i under p.
func (p KPath) Elem(i int) KPath {
	return p.Append(Index(i))
}

// IsRoot reports whether p addresses the document root.
func (p KPath) IsRoot() bool {
	return len(p) == 0
}

// Parent returns the path of the container of p.  The parent of the root
// is the root.
func (p KPath) Parent() KPath {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1:len(p)-1]
}

// Last returns the final segment of p, false for the root.
func (p KPath) Last() (Segment, bool) {
	if len(p) == 0 {
		return Segment{}, false
	}
	return p[len(p)-1], true
}

// RSplit splits p into its parent and last segment.
func (p KPath) RSplit() (KPath, Segment, bool) {
	last, ok := p.Last()
	return p.Parent(), last, ok
}

func (p KPath) Equal(o KPath) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// IsAncestor reports whether candidate is a prefix of of at a segment
// boundary.  A path is its own ancestor, and the root is everyone's.
func IsAncestor(candidate, of KPath) bool {
	if len(candidate) > len(of) {
		return false
	}
	return candidate.Equal(of[:len(candidate)])
}
