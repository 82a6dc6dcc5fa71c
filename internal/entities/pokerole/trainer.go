package pokerole

// Pocket names one of the two fixed inventory pockets
type Pocket string

// Inventory pockets
const (
	PocketMain Pocket = "main"
	PocketKey  Pocket = "key"
)

// PotionTier names a potion strength
type PotionTier string

// Potion tiers
const (
	PotionBasic PotionTier = "Potion"
	PotionSuper PotionTier = "Super Potion"
	PotionHyper PotionTier = "Hyper Potion"
)

// PotionTiers returns the tiers from weakest to strongest
func PotionTiers() []PotionTier {
	return []PotionTier{PotionBasic, PotionSuper, PotionHyper}
}

// InventoryItem is a stack of one item in a pocket
type InventoryItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Inventory holds a trainer's items and potion charges
type Inventory struct {
	Main    []InventoryItem    `json:"main"`
	Key     []InventoryItem    `json:"key"`
	Potions map[PotionTier]int `json:"potions"`
}

// Pocket returns a pointer to the named pocket, or nil if unknown
func (inv *Inventory) Pocket(p Pocket) *[]InventoryItem {
	switch p {
	case PocketMain:
		return &inv.Main
	case PocketKey:
		return &inv.Key
	default:
		return nil
	}
}

// Pokedex counters
type Pokedex struct {
	Seen   int `json:"seen"`
	Caught int `json:"caught"`
}

// Trainer is the player character
type Trainer struct {
	Name       string     `json:"name"`
	Age        int        `json:"age"`
	Image      *string    `json:"image"`
	Money      int        `json:"money"`
	Pokedex    Pokedex    `json:"pokedex"`
	Nature     string     `json:"nature"`
	Confidence int        `json:"confidence"`
	Attributes Attributes `json:"attributes"`
	Skills     Skills     `json:"skills"`
	HP         Stat       `json:"hp"`
	Will       Stat       `json:"will"`
	Inventory  Inventory  `json:"inventory"`
}

// StatBlock exposes the trainer's attributes and skills.
// Trainers have no contest stats.
func (t *Trainer) StatBlock() StatBlock {
	return StatBlock{
		Attributes: &t.Attributes,
		Skills:     &t.Skills,
	}
}

// NewTrainer returns the default sheet for a new player
func NewTrainer() *Trainer {
	attr := Stat{Current: 2, Max: 5}
	return &Trainer{
		Name:       "New Trainer",
		Age:        10,
		Money:      1500,
		Nature:     "Hardy",
		Confidence: 2,
		Attributes: Attributes{
			Strength:  attr,
			Dexterity: attr,
			Vitality:  attr,
			Special:   attr,
			Insight:   attr,
		},
		HP:   NewStat(4),
		Will: NewStat(4),
		Inventory: Inventory{
			Main:    []InventoryItem{},
			Key:     []InventoryItem{},
			Potions: map[PotionTier]int{},
		},
	}
}
