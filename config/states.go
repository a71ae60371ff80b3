package config

// AnimationID identifies a player animation clip.
type AnimationID int

const (
	AnimNone AnimationID = iota
	WalkLeft
	WalkRight
	IdleFront
)

var animationNames = map[AnimationID]string{
	WalkLeft:  "walk_left",
	WalkRight: "walk_right",
	IdleFront: "idle_front",
}

func (a AnimationID) String() string {
	if name, ok := animationNames[a]; ok {
		return name
	}
	return "none"
}

// AnimationIDByName resolves a clip name from the animation table to
// its AnimationID. Returns AnimNone for unknown names.
func AnimationIDByName(name string) AnimationID {
	for id, n := range animationNames {
		if n == name {
			return id
		}
	}
	return AnimNone
}
