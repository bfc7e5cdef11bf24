package locale

// Resolve determines the effective locale for a request.
//
// Sources are tried in priority order: the URL path segment, the stored
// client preference, then the Accept-Language header. Unsupported values
// fall through to the next source; when everything misses, the default
// locale is returned. Resolve is pure and total: the result is always a
// member of the supported set.
func (r *Registry) Resolve(pathSegment, stored, acceptLanguage string) string {
	if id, ok := r.Canonicalize(pathSegment); ok {
		return id
	}
	if id, ok := r.Canonicalize(stored); ok {
		return id
	}
	if id, ok := r.MatchAcceptLanguage(acceptLanguage); ok {
		return id
	}
	return r.def
}
