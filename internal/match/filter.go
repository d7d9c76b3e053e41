package match

// CandidateFilter is the preference predicate derived from the acting user's
// profile. A nil field means that attribute is unconstrained.
type CandidateFilter struct {
	Gender *Gender
	Type   *string
}

// BuildCandidateFilter derives the filter from the acting user's attributes:
// Men target Women and vice versa; any other declared gender (including an
// unset one) leaves gender unconstrained. A declared type must match exactly.
func BuildCandidateFilter(user *Profile) CandidateFilter {
	var f CandidateFilter

	switch user.Gender {
	case GenderMen:
		g := GenderWomen
		f.Gender = &g
	case GenderWomen:
		g := GenderMen
		f.Gender = &g
	}

	if user.Type != nil && *user.Type != "" {
		t := *user.Type
		f.Type = &t
	}

	return f
}

// Matches reports whether a candidate passes the filter.
func (f CandidateFilter) Matches(candidate *Profile) bool {
	if f.Gender != nil && candidate.Gender != *f.Gender {
		return false
	}
	if f.Type != nil && (candidate.Type == nil || *candidate.Type != *f.Type) {
		return false
	}
	return true
}
