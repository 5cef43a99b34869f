package model

import "time"

// Direction of a swipe: right is a like, left is a pass.
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

func (d Direction) Valid() bool {
	return d == DirectionLeft || d == DirectionRight
}

// SwipeRecord is one entry of swipedProfiles_<id>.
type SwipeRecord struct {
	ProfileID uint64    `json:"id"`
	Direction Direction `json:"swipe"`
	Date      time.Time `json:"date"`
}

// SwipeMap is the userSwipes_<id> record: candidate id -> latest direction.
// JSON object keys are the decimal candidate ids.
type SwipeMap map[uint64]Direction

// Outcome classifies a swipe against the counterpart's swipe.
type Outcome uint

const (
	OutcomeLiked        Outcome = iota + 1 // right, counterpart has not liked back
	OutcomePassed                          // left, counterpart has not passed too
	OutcomeMatch                           // both right
	OutcomeNegativeChat                    // both left
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLiked:
		return "liked"
	case OutcomePassed:
		return "passed"
	case OutcomeMatch:
		return "match"
	case OutcomeNegativeChat:
		return "negative_chat"
	default:
		return "unknown"
	}
}

// Mutual is true for outcomes that unlock a conversation.
func (o Outcome) Mutual() bool {
	return o == OutcomeMatch || o == OutcomeNegativeChat
}
