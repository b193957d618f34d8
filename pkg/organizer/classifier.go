package organizer

// classify assigns every value to exactly one rule's value list, preserving
// input order within each rule. A value goes to the first non-catch-all rule
// whose pattern occurs anywhere in its comparison string (search semantics,
// not full-string match); values no pattern matches go to the first
// catch-all rule regardless of its position in the list.
func classify[T any](rules []*rule[T], values []T, key func(T) string) {
	for _, v := range values {
		k := key(v)

		assigned := false
		for _, r := range rules {
			if r.unknown {
				continue
			}
			if r.re.MatchString(k) {
				r.values = append(r.values, v)
				assigned = true
				break
			}
		}
		if assigned {
			continue
		}

		for _, r := range rules {
			if r.unknown {
				r.values = append(r.values, v)
				break
			}
		}
	}
}
