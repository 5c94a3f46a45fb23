package suggest

import "pwd-advisor/pkg/strength"

// QualityBar is the score a candidate must beat before it is offered to the
// user.
const QualityBar = 95

// attemptsPerCandidate bounds how hard Suggestions tries per requested
// candidate before giving up.
const attemptsPerCandidate = 5

// Suggestions generates up to count distinct strengthened candidates that
// score above the quality bar. The strengthener gives no score guarantee by
// construction, so each candidate is re-scored and weak or duplicate ones are
// discarded. The result may hold fewer entries than requested.
func (s *Strengthener) Suggestions(password string, count int) []string {
	if count <= 0 {
		return nil
	}

	seen := make(map[string]struct{}, count)
	out := make([]string, 0, count)
	for attempt := 0; attempt < count*attemptsPerCandidate && len(out) < count; attempt++ {
		candidate := s.Strengthen(password)
		if _, dup := seen[candidate]; dup {
			continue
		}
		seen[candidate] = struct{}{}
		if strength.Score(candidate) > QualityBar {
			out = append(out, candidate)
		}
	}
	return out
}
