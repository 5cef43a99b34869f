// Package discovery selects the candidate profiles a user is shown.
package discovery

import (
	"github.com/oggyb/lovespark/internal/model"
	"github.com/oggyb/lovespark/internal/normalize"
)

// NextCandidates filters pool down to the profiles selfID may swipe on.
//
// Behavior:
//   - Drops selfID, the placeholder and every id in excludeIDs.
//   - Keeps profiles whose gender is in prefs.DiscoveryGender and whose age
//     is inside prefs.AgeRange, both ends inclusive.
//   - Pool order is preserved.
//
// The result may be empty; see OrPlaceholder.
func NextCandidates(
	pool []model.Profile,
	selfID uint64,
	excludeIDs map[uint64]struct{},
	prefs model.Preferences,
) []model.Profile {
	out := make([]model.Profile, 0, len(pool))
	for _, p := range pool {
		if p.ID == selfID || p.IsPlaceholder() {
			continue
		}
		if _, seen := excludeIDs[p.ID]; seen {
			continue
		}
		if !prefs.WantsGender(normalize.Gender(p.Gender)) || !prefs.InAgeRange(p.Age) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// OrPlaceholder returns seq, or a single placeholder card when seq is empty.
func OrPlaceholder(seq []model.Profile) []model.Profile {
	if len(seq) == 0 {
		return []model.Profile{model.Placeholder()}
	}
	return seq
}

// SwipedSet is the exclusion set built from a userSwipes_<id> record.
func SwipedSet(swipes model.SwipeMap) map[uint64]struct{} {
	out := make(map[uint64]struct{}, len(swipes))
	for id := range swipes {
		out[id] = struct{}{}
	}
	return out
}
