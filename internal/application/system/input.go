package system

// InputState holds the sampled controls for one tick
type InputState struct {
	Left  bool
	Right bool
	Boost bool
	Shoot bool
}

// Intents converts held controls into intents.
// Fire comes first so a missile spawns where the player stood.
// Left and Right together cancel out.
func (in InputState) Intents() []Intent {
	var intents []Intent
	if in.Shoot {
		intents = append(intents, FireIntent{})
	}

	dir := 0
	if in.Left {
		dir--
	}
	if in.Right {
		dir++
	}
	if dir != 0 {
		intents = append(intents, MoveIntent{Direction: dir, Boost: in.Boost})
	}
	return intents
}
