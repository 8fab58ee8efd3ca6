package appointment

import "time"

// IsDurationValid is true only when the interval lasts exactly the
// service duration.
func IsDurationValid(candidate Interval, svc Service) bool {
	return candidate.Duration() == time.Duration(svc.DurationMinutes)*time.Minute
}

// SameBusiness guards against requests whose ids are individually valid
// but belong to different tenants.
func SameBusiness(b Business, st Staff, svc Service) bool {
	return st.BusinessID == b.ID && svc.BusinessID == b.ID
}

func IsFuture(start, now time.Time) bool {
	return start.After(now)
}
