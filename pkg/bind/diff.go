package bind

// diffListeners reconciles the previously subscribed event list against the
// newly computed one. It returns the events to unregister (present in
// oldList but not newList, in oldList order) and the events to register
// (present in newList but not oldList, in newList first-occurrence order).
// Duplicates in either input are treated as a single occurrence.
func diffListeners(oldList, newList []string) (missing, added []string) {
	want := make(map[string]struct{}, len(newList))
	order := make([]string, 0, len(newList))
	for _, name := range newList {
		if _, dup := want[name]; !dup {
			want[name] = struct{}{}
			order = append(order, name)
		}
	}

	seen := make(map[string]struct{}, len(oldList))
	for _, name := range oldList {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		if _, wanted := want[name]; wanted {
			// Still wanted and already registered.
			delete(want, name)
		} else {
			missing = append(missing, name)
		}
	}

	for _, name := range order {
		if _, isNew := want[name]; isNew {
			added = append(added, name)
		}
	}
	return missing, added
}
