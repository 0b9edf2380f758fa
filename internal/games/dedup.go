package games

// DedupByID drops any record whose non-empty identifier was already seen,
// keeping first-seen order. Records without an identifier always survive this
// pass; only the reporter's content-key dedup can catch those.
func DedupByID(records []Record) []Record {
	seen := make(map[string]struct{}, len(records))
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.ID != "" {
			if _, dup := seen[r.ID]; dup {
				continue
			}
			seen[r.ID] = struct{}{}
		}
		out = append(out, r)
	}
	return out
}
