package pokerole

// Height of a species
type Height struct {
	Meters float64 `json:"Meters"`
	Feet   float64 `json:"Feet"`
}

// Weight of a species
type Weight struct {
	Kilograms float64 `json:"Kilograms"`
	Pounds    float64 `json:"Pounds"`
}

// Evolution describes one evolution path
type Evolution struct {
	To    string `json:"To"`
	Kind  string `json:"Kind"`
	Speed string `json:"Speed"`
}

// LearnsetEntry pairs a move with the rank at which the species learns it
type LearnsetEntry struct {
	Learned string `json:"Learned"`
	Name    string `json:"Name"`
}

// Species is the immutable reference record a Character is created from
type Species struct {
	ID              string          `json:"_id,omitempty"`
	Number          int             `json:"Number"`
	DexID           string          `json:"DexID"`
	Name            string          `json:"Name"`
	Type1           string          `json:"Type1"`
	Type2           string          `json:"Type2,omitempty"`
	BaseHP          int             `json:"BaseHP"`
	Strength        int             `json:"Strength"`
	MaxStrength     int             `json:"MaxStrength"`
	Dexterity       int             `json:"Dexterity"`
	MaxDexterity    int             `json:"MaxDexterity"`
	Vitality        int             `json:"Vitality"`
	MaxVitality     int             `json:"MaxVitality"`
	Special         int             `json:"Special"`
	MaxSpecial      int             `json:"MaxSpecial"`
	Insight         int             `json:"Insight"`
	MaxInsight      int             `json:"MaxInsight"`
	Ability1        string          `json:"Ability1"`
	Ability2        string          `json:"Ability2,omitempty"`
	HiddenAbility   string          `json:"HiddenAbility,omitempty"`
	EventAbilities  string          `json:"EventAbilities,omitempty"`
	RecommendedRank string          `json:"RecommendedRank"`
	GenderType      string          `json:"GenderType,omitempty"`
	Legendary       bool            `json:"Legendary"`
	GoodStarter     bool            `json:"GoodStarter"`
	DexCategory     string          `json:"DexCategory"`
	Height          Height          `json:"Height"`
	Weight          Weight          `json:"Weight"`
	DexDescription  string          `json:"DexDescription"`
	Evolutions      []Evolution     `json:"Evolutions"`
	Image           string          `json:"Image"`
	Moves           []LearnsetEntry `json:"Moves"`
}

// LearnedRank returns the rank at which the species learns move.
// The second result is false when the move is not in the learnset.
func (s *Species) LearnedRank(move string) (Rank, bool) {
	for _, m := range s.Moves {
		if m.Name == move {
			return ParseRank(m.Learned), true
		}
	}
	return "", false
}

// HasType reports whether t is one of the species' types
func (s *Species) HasType(t string) bool {
	return t != "" && (s.Type1 == t || s.Type2 == t)
}

// MoveData is the reference record for a move
type MoveData struct {
	Name        string `json:"Name"`
	Type        string `json:"Type"`
	Power       int    `json:"Power"`
	Accuracy1   string `json:"Accuracy1"`
	Accuracy2   string `json:"Accuracy2,omitempty"`
	Damage1     string `json:"Damage1,omitempty"`
	Damage2     string `json:"Damage2,omitempty"`
	Target      string `json:"Target"`
	Effect      string `json:"Effect,omitempty"`
	Description string `json:"Description"`
	Category    string `json:"Category,omitempty"`
}

// HasDamage reports whether the move carries a damage pool
func (m *MoveData) HasDamage() bool {
	return m.Damage1 != ""
}

// Ability is the reference record for an ability
type Ability struct {
	Name        string `json:"Name"`
	Description string `json:"Description"`
	Effect      string `json:"Effect"`
}

// Nature is the reference record for a nature
type Nature struct {
	Name        string   `json:"Name"`
	Keywords    []string `json:"Keywords"`
	Description string   `json:"Description"`
	Confidence  string   `json:"Confidence"`
}

// Item is the reference record for an item
type Item struct {
	ID          string `json:"_id"`
	Name        string `json:"Name"`
	Description string `json:"Description"`
	Type        string `json:"Type,omitempty"`
	Cost        int    `json:"Cost,omitempty"`
	Effect      string `json:"Effect,omitempty"`
}
