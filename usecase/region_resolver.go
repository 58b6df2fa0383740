package usecase

// RegionResolver derives the region code for region-sensitive queries.
// Total: it always returns a value.
type RegionResolver struct {
	defaultRegion string
}

func NewRegionResolver(defaultRegion string) *RegionResolver {
	if defaultRegion == "" {
		defaultRegion = "US"
	}
	return &RegionResolver{defaultRegion: defaultRegion}
}

// Resolve picks, in order: the caller's explicit region code; the detected
// geo hint, but only for chart-scoped ("most popular") queries; the
// configured default.
func (r *RegionResolver) Resolve(geoHint, explicit string, chart bool) string {
	if explicit != "" {
		return explicit
	}
	if chart && geoHint != "" {
		return geoHint
	}
	return r.defaultRegion
}
