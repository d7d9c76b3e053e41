package match

// ExclusionSet is the union of the acting user's own id, matched ids and
// already-liked ids. Profiles in the set never show up as candidates.
type ExclusionSet map[int64]struct{}

// NewExclusionSet builds the exclusion set from the user's relations.
func NewExclusionSet(userID int64, rel *Relations) ExclusionSet {
	set := make(ExclusionSet, 1+len(rel.MatchIDs)+len(rel.CrushIDs))
	set[userID] = struct{}{}
	for _, id := range rel.MatchIDs {
		set[id] = struct{}{}
	}
	for _, id := range rel.CrushIDs {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports whether the id is excluded.
func (s ExclusionSet) Contains(id int64) bool {
	_, ok := s[id]
	return ok
}

// exclude removes excluded profiles from candidates, preserving order.
func exclude(candidates []*Profile, set ExclusionSet) []*Profile {
	result := make([]*Profile, 0, len(candidates))
	for _, c := range candidates {
		if !set.Contains(c.ID) {
			result = append(result, c)
		}
	}
	return result
}
