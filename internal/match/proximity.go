package match

import "fmt"

// WithinRadius retains the candidates whose location is set and whose
// great-circle distance to the reference coordinate is at most radiusKm.
// Candidates without a location are silently skipped. Input order is
// preserved; no ranking is applied.
func WithinRadius(candidates []*Profile, lat, lon, radiusKm float64) ([]*Profile, error) {
	if radiusKm <= 0 {
		return nil, fmt.Errorf("%w: radius must be greater than zero", ErrInvalidArgument)
	}

	result := make([]*Profile, 0, len(candidates))
	for _, c := range candidates {
		if !c.HasLocation() {
			continue
		}
		if DistanceKm(lat, lon, *c.Latitude, *c.Longitude) <= radiusKm {
			result = append(result, c)
		}
	}
	return result, nil
}
