package store

import "fmt"

// KeyUsers holds the []model.User list of every account.
const KeyUsers = "users"

// KeyUserSeq holds the highest user id ever assigned. Deleting an account
// never lowers it, so ids are not reused.
const KeyUserSeq = "userSeq"

func SettingsKey(userID uint64) string {
	return fmt.Sprintf("userSettings_%d", userID)
}

// SwipedProfilesKey holds []model.SwipeRecord, one per candidate.
func SwipedProfilesKey(userID uint64) string {
	return fmt.Sprintf("swipedProfiles_%d", userID)
}

// UserSwipesKey holds model.SwipeMap, the reciprocity lookup table.
func UserSwipesKey(userID uint64) string {
	return fmt.Sprintf("userSwipes_%d", userID)
}

func MatchesKey(userID uint64) string {
	return fmt.Sprintf("matches_%d", userID)
}

func NegativeChatsKey(userID uint64) string {
	return fmt.Sprintf("negativeChats_%d", userID)
}

// ChatKey is keyed by the unordered pair, smaller id first, so both
// participants read the same transcript.
func ChatKey(a, b uint64) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("chat_%d_%d", a, b)
}

// UserKeys lists every per-user key removed on account deletion.
// Chat transcripts are not included; they depend on the partner list.
func UserKeys(userID uint64) []string {
	return []string{
		SettingsKey(userID),
		SwipedProfilesKey(userID),
		UserSwipesKey(userID),
		MatchesKey(userID),
		NegativeChatsKey(userID),
	}
}
