package topic

// Match reports whether the concrete topic t matches the given pattern.
// The pattern may contain "*" (exactly one segment) and "**" (zero or more
// segments). A "**" may appear in any position; matching is greedy-free and
// considers every split.
func (t Topic) Match(pattern Topic) bool {
	if pattern == t {
		return true
	}
	return matchSegments(pattern.Segments(), t.Segments())
}

func matchSegments(pattern, segs []string) bool {
	if len(pattern) == 0 {
		return len(segs) == 0
	}

	head, rest := pattern[0], pattern[1:]

	if head == WildcardMulti {
		// Try consuming zero or more segments.
		for skip := 0; skip <= len(segs); skip++ {
			if matchSegments(rest, segs[skip:]) {
				return true
			}
		}
		return false
	}

	if len(segs) == 0 {
		return false
	}
	if head != WildcardSingle && head != segs[0] {
		return false
	}
	return matchSegments(rest, segs[1:])
}
