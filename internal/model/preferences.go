package model

const (
	MinAgeRange = 18
	MaxAgeRange = 80
)

// Notifications are three independent opt-ins.
type Notifications struct {
	NewMatches  bool `json:"newMatches"`
	NewMessages bool `json:"newMessages"`
	Promotions  bool `json:"promotions"`
}

// Preferences are the discovery settings stored under userSettings_<id>.
type Preferences struct {
	DiscoveryGender []Gender      `json:"discoveryGender" validate:"min=1,unique,dive,oneof=female male other"`
	ShowMeOnApp     bool          `json:"showMeOnApp"`
	AgeRange        [2]int        `json:"ageRange"`
	Distance        int           `json:"distance" validate:"gte=1,lte=100"`
	Notifications   Notifications `json:"notifications"`
}

// DefaultPreferences are written on signup and used when none are stored.
func DefaultPreferences() Preferences {
	return Preferences{
		DiscoveryGender: AllGenders(),
		ShowMeOnApp:     true,
		AgeRange:        [2]int{18, 55},
		Distance:        50,
		Notifications: Notifications{
			NewMatches:  true,
			NewMessages: true,
			Promotions:  false,
		},
	}
}

// Clone returns a deep copy.
func (p Preferences) Clone() Preferences {
	out := p
	out.DiscoveryGender = append([]Gender(nil), p.DiscoveryGender...)
	return out
}

// WantsGender reports whether g is in the discovery set.
func (p Preferences) WantsGender(g Gender) bool {
	for _, want := range p.DiscoveryGender {
		if want == g {
			return true
		}
	}
	return false
}

// InAgeRange is inclusive on both ends.
func (p Preferences) InAgeRange(age int) bool {
	return age >= p.AgeRange[0] && age <= p.AgeRange[1]
}
