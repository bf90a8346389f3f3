package character

// Ability identifies one of the six ability scores
type Ability string

const (
	AbilityStrength     Ability = "str"
	AbilityDexterity    Ability = "dex"
	AbilityConstitution Ability = "con"
	AbilityIntelligence Ability = "int"
	AbilityWisdom       Ability = "wis"
	AbilityCharisma     Ability = "cha"
)

// Point-buy rules
const (
	StatBase    = 8
	StatMin     = 3
	StatMax     = 18
	TotalPoints = 27
)

// Abilities returns the six abilities in display order
func Abilities() []Ability {
	return []Ability{
		AbilityStrength,
		AbilityDexterity,
		AbilityConstitution,
		AbilityIntelligence,
		AbilityWisdom,
		AbilityCharisma,
	}
}

// StatBlock holds the six ability scores
type StatBlock struct {
	Strength     int `json:"str"`
	Dexterity    int `json:"dex"`
	Constitution int `json:"con"`
	Intelligence int `json:"int"`
	Wisdom       int `json:"wis"`
	Charisma     int `json:"cha"`
}

// NewStatBlock returns a stat block with every score at the point-buy base
func NewStatBlock() StatBlock {
	return StatBlock{
		Strength:     StatBase,
		Dexterity:    StatBase,
		Constitution: StatBase,
		Intelligence: StatBase,
		Wisdom:       StatBase,
		Charisma:     StatBase,
	}
}

// Score returns the value of the given ability
func (s *StatBlock) Score(a Ability) int {
	switch a {
	case AbilityStrength:
		return s.Strength
	case AbilityDexterity:
		return s.Dexterity
	case AbilityConstitution:
		return s.Constitution
	case AbilityIntelligence:
		return s.Intelligence
	case AbilityWisdom:
		return s.Wisdom
	case AbilityCharisma:
		return s.Charisma
	}
	return 0
}

// SetScore assigns an ability score directly. Callers own bounds and budget
// validation.
func (s *StatBlock) SetScore(a Ability, value int) {
	switch a {
	case AbilityStrength:
		s.Strength = value
	case AbilityDexterity:
		s.Dexterity = value
	case AbilityConstitution:
		s.Constitution = value
	case AbilityIntelligence:
		s.Intelligence = value
	case AbilityWisdom:
		s.Wisdom = value
	case AbilityCharisma:
		s.Charisma = value
	}
}

// PointsRemaining returns the unspent point-buy budget. Negative values can
// only come from externally supplied scores, never from Increment itself.
func (s *StatBlock) PointsRemaining() int {
	spent := 0
	for _, a := range Abilities() {
		spent += s.Score(a) - StatBase
	}
	return TotalPoints - spent
}

// Increment raises an ability by one point. Returns false without changing
// anything if the score is at the maximum or the budget is exhausted.
func (s *StatBlock) Increment(a Ability) bool {
	current := s.Score(a)
	if current >= StatMax {
		return false
	}
	if s.PointsRemaining() <= 0 {
		return false
	}
	s.SetScore(a, current+1)
	return true
}

// Decrement lowers an ability by one point. Decrements always free up budget,
// so only the minimum bound is checked.
func (s *StatBlock) Decrement(a Ability) bool {
	current := s.Score(a)
	if current <= StatMin {
		return false
	}
	s.SetScore(a, current-1)
	return true
}

// Modifier returns the D&D-style modifier for the given ability
func (s *StatBlock) Modifier(a Ability) int {
	return Modifier(s.Score(a))
}

// Modifier returns the D&D-style modifier for a raw score
func Modifier(score int) int {
	// floor((score-10)/2), correct for negative values too
	if score >= 10 {
		return (score - 10) / 2
	}
	return -((11 - score) / 2)
}
