// Package roster implements the roster orchestrator: the party, the PC
// boxes and the trainer sheet a player owns
package roster

//go:generate mockgen -destination=mock/mock_service.go -package=rostermock github.com/KirkDiggler/pokerole-api/internal/orchestrators/roster Service

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/KirkDiggler/pokerole-api/internal/engine"
	"github.com/KirkDiggler/pokerole-api/internal/entities/pokerole"
	"github.com/KirkDiggler/pokerole-api/internal/errors"
	"github.com/KirkDiggler/pokerole-api/internal/orchestrators/catalog"
	"github.com/KirkDiggler/pokerole-api/internal/pkg/idgen"
	rosterrepo "github.com/KirkDiggler/pokerole-api/internal/repositories/roster"
)

// Service defines the interface for roster operations
type Service interface {
	GetRoster(ctx context.Context, input *GetRosterInput) (*GetRosterOutput, error)

	// Slot management
	AddCharacter(ctx context.Context, input *AddCharacterInput) (*AddCharacterOutput, error)
	MoveCharacter(ctx context.Context, input *MoveCharacterInput) (*MoveCharacterOutput, error)
	ReleaseCharacter(ctx context.Context, input *ReleaseCharacterInput) (*ReleaseCharacterOutput, error)

	// Character sheet
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error)
	LearnMove(ctx context.Context, input *LearnMoveInput) (*LearnMoveOutput, error)
	ForgetMove(ctx context.Context, input *ForgetMoveInput) (*ForgetMoveOutput, error)
	RecordBattle(ctx context.Context, input *RecordBattleInput) (*RecordBattleOutput, error)

	// Trainer sheet
	GetTrainer(ctx context.Context, input *GetTrainerInput) (*GetTrainerOutput, error)
	UpdateTrainer(ctx context.Context, input *UpdateTrainerInput) (*UpdateTrainerOutput, error)
	AdjustInventory(ctx context.Context, input *AdjustInventoryInput) (*AdjustInventoryOutput, error)
}

// Config holds the dependencies for the roster orchestrator
type Config struct {
	RosterRepo  rosterrepo.Repository
	Catalog     catalog.Service
	Engine      engine.Engine
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.RosterRepo == nil {
		vb.RequiredField("RosterRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	rosterRepo rosterrepo.Repository
	catalog    catalog.Service
	engine     engine.Engine
	idGen      idgen.Generator
}

// NewOrchestrator creates a new roster orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		rosterRepo: cfg.RosterRepo,
		catalog:    cfg.Catalog,
		engine:     cfg.Engine,
		idGen:      cfg.IDGenerator,
	}, nil
}

// load returns the stored roster, or a fresh one for a user with nothing saved
func (o *orchestrator) load(ctx context.Context, userID string) (*GetRosterOutput, error) {
	if userID == "" {
		return nil, errors.InvalidArgument("user ID is required")
	}

	out, err := o.rosterRepo.Get(ctx, rosterrepo.GetInput{UserID: userID})
	if errors.IsNotFound(err) {
		return &GetRosterOutput{Roster: pokerole.NewRoster(), New: true}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load roster for %s", userID)
	}

	return &GetRosterOutput{Roster: out.Roster, UpdatedAt: out.UpdatedAt}, nil
}

func (o *orchestrator) save(ctx context.Context, userID string, r *pokerole.Roster) error {
	if _, err := o.rosterRepo.Save(ctx, rosterrepo.SaveInput{UserID: userID, Roster: r}); err != nil {
		return errors.Wrapf(err, "failed to save roster for %s", userID)
	}
	return nil
}

// findCharacter loads the roster and locates a character in it
func (o *orchestrator) findCharacter(
	ctx context.Context,
	userID, characterID string,
) (*pokerole.Roster, pokerole.SlotAddress, *pokerole.Character, error) {
	if characterID == "" {
		return nil, pokerole.SlotAddress{}, nil, errors.InvalidArgument("character ID is required")
	}

	loaded, err := o.load(ctx, userID)
	if err != nil {
		return nil, pokerole.SlotAddress{}, nil, err
	}

	addr, c, ok := loaded.Roster.Find(characterID)
	if !ok {
		return nil, pokerole.SlotAddress{}, nil, errors.NotFoundf("character %s not found", characterID).
			WithMeta("user_id", userID)
	}
	return loaded.Roster, addr, c, nil
}

func (o *orchestrator) GetRoster(ctx context.Context, input *GetRosterInput) (*GetRosterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.load(ctx, input.UserID)
}

func (o *orchestrator) AddCharacter(ctx context.Context, input *AddCharacterInput) (*AddCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SpeciesName == "" {
		return nil, errors.InvalidArgument("species name is required")
	}
	if err := input.Slot.Validate(); err != nil {
		return nil, err
	}

	loaded, err := o.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	occupant, err := loaded.Roster.At(input.Slot)
	if err != nil {
		return nil, err
	}
	if occupant != nil {
		return nil, errors.FailedPreconditionf("slot %s is occupied by %s", input.Slot, occupant.Nickname).
			WithMeta("character_id", occupant.ID)
	}

	species, err := o.catalog.GetSpecies(ctx, &catalog.GetSpeciesInput{Name: input.SpeciesName})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get species %s", input.SpeciesName)
	}

	c := pokerole.NewCharacterFromSpecies(o.idGen.Generate(), species.Species)
	if nickname := strings.TrimSpace(input.Nickname); nickname != "" {
		c.Nickname = nickname
	}

	if err := loaded.Roster.Set(input.Slot, c); err != nil {
		return nil, err
	}
	if err := o.save(ctx, input.UserID, loaded.Roster); err != nil {
		return nil, err
	}

	slog.Info("Character added",
		"user_id", input.UserID,
		"character_id", c.ID,
		"species", c.SpeciesName,
		"slot", input.Slot.String(),
	)

	return &AddCharacterOutput{Character: c, Slot: input.Slot}, nil
}

func (o *orchestrator) MoveCharacter(ctx context.Context, input *MoveCharacterInput) (*MoveCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := input.From.Validate(); err != nil {
		return nil, err
	}
	if err := input.To.Validate(); err != nil {
		return nil, err
	}
	if input.From == input.To {
		return &MoveCharacterOutput{}, nil
	}

	loaded, err := o.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	from, _ := loaded.Roster.At(input.From)
	to, _ := loaded.Roster.At(input.To)
	if from == nil && to == nil {
		return &MoveCharacterOutput{}, nil
	}

	if err := loaded.Roster.Swap(input.From, input.To); err != nil {
		return nil, err
	}
	if err := o.save(ctx, input.UserID, loaded.Roster); err != nil {
		return nil, err
	}

	slog.Debug("Slots swapped",
		"user_id", input.UserID,
		"from", input.From.String(),
		"to", input.To.String(),
	)

	return &MoveCharacterOutput{Moved: true}, nil
}

func (o *orchestrator) ReleaseCharacter(
	ctx context.Context,
	input *ReleaseCharacterInput,
) (*ReleaseCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := input.Slot.Validate(); err != nil {
		return nil, err
	}

	loaded, err := o.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	c, err := loaded.Roster.At(input.Slot)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.NotFoundf("slot %s is empty", input.Slot)
	}

	if err := loaded.Roster.Set(input.Slot, nil); err != nil {
		return nil, err
	}
	if err := o.save(ctx, input.UserID, loaded.Roster); err != nil {
		return nil, err
	}

	slog.Info("Character released",
		"user_id", input.UserID,
		"character_id", c.ID,
		"slot", input.Slot.String(),
	)

	return &ReleaseCharacterOutput{Character: c}, nil
}

func (o *orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	_, addr, c, err := o.findCharacter(ctx, input.UserID, input.CharacterID)
	if err != nil {
		return nil, err
	}
	return &GetCharacterOutput{Character: c, Slot: addr}, nil
}

func (o *orchestrator) UpdateCharacter(
	ctx context.Context,
	input *UpdateCharacterInput,
) (*UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r, addr, current, err := o.findCharacter(ctx, input.UserID, input.CharacterID)
	if err != nil {
		return nil, err
	}

	c := current.Clone()
	if err := o.applyCharacterEdits(ctx, c, &input.Edits); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := r.Set(addr, c); err != nil {
		return nil, err
	}
	if err := o.save(ctx, input.UserID, r); err != nil {
		return nil, err
	}

	return &UpdateCharacterOutput{Character: c}, nil
}

func (o *orchestrator) applyCharacterEdits(ctx context.Context, c *pokerole.Character, e *CharacterEdits) error {
	if e.Nickname != nil {
		c.Nickname = strings.TrimSpace(*e.Nickname)
		if c.Nickname == "" {
			c.Nickname = c.SpeciesName
		}
	}
	if e.Attributes != nil {
		c.Attributes = *e.Attributes
	}
	if e.Skills != nil {
		c.Skills = *e.Skills
	}
	if e.Contest != nil {
		c.Contest = *e.Contest
	}
	if e.HP != nil {
		c.HP = *e.HP
	}
	if e.Will != nil {
		c.Will = *e.Will
	}
	if e.Happiness != nil {
		c.Happiness = *e.Happiness
	}
	if e.Loyalty != nil {
		c.Loyalty = *e.Loyalty
	}
	if e.Battles != nil {
		c.Battles = *e.Battles
	}
	if e.Victories != nil {
		c.Victories = *e.Victories
	}
	if e.Item != nil {
		c.Item = *e.Item
	}
	if e.Accessory != nil {
		c.Accessory = *e.Accessory
	}
	if e.Status != nil {
		c.Status = *e.Status
	}
	if e.Rank != nil {
		c.Rank = *e.Rank
	}
	if e.Combat != nil {
		c.Combat = *e.Combat
	}

	if e.Nature != nil && *e.Nature != c.Nature {
		if *e.Nature == "" {
			c.Nature = ""
			c.Confidence = ""
			return nil
		}
		nature, err := o.catalog.GetNature(ctx, &catalog.GetNatureInput{Name: *e.Nature})
		if err != nil {
			return errors.Wrapf(err, "failed to get nature %s", *e.Nature)
		}
		c.Nature = nature.Nature.Name
		c.Confidence = nature.Nature.Confidence
	}

	return nil
}

func (o *orchestrator) LearnMove(ctx context.Context, input *LearnMoveInput) (*LearnMoveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.MoveName == "" {
		return nil, errors.InvalidArgument("move name is required")
	}

	r, _, c, err := o.findCharacter(ctx, input.UserID, input.CharacterID)
	if err != nil {
		return nil, err
	}

	move, err := o.catalog.GetMove(ctx, &catalog.GetMoveInput{Name: input.MoveName})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get move %s", input.MoveName)
	}
	species, err := o.catalog.GetSpecies(ctx, &catalog.GetSpeciesInput{Name: c.SpeciesName})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get species %s", c.SpeciesName)
	}

	learned, err := o.engine.LearnMove(ctx, &engine.LearnMoveInput{
		Character: c,
		Species:   species.Species,
		MoveName:  move.Move.Name,
	})
	if err != nil {
		return nil, err
	}

	if learned.Added {
		if err := o.save(ctx, input.UserID, r); err != nil {
			return nil, err
		}
		slog.Info("Move learned",
			"user_id", input.UserID,
			"character_id", c.ID,
			"move", move.Move.Name,
		)
	}

	return &LearnMoveOutput{Added: learned.Added, Moves: learned.Moves, Limit: learned.Limit}, nil
}

func (o *orchestrator) ForgetMove(ctx context.Context, input *ForgetMoveInput) (*ForgetMoveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.MoveName == "" {
		return nil, errors.InvalidArgument("move name is required")
	}

	r, _, c, err := o.findCharacter(ctx, input.UserID, input.CharacterID)
	if err != nil {
		return nil, err
	}

	forgot, err := o.engine.ForgetMove(ctx, &engine.ForgetMoveInput{Character: c, MoveName: input.MoveName})
	if err != nil {
		return nil, err
	}
	if err := o.save(ctx, input.UserID, r); err != nil {
		return nil, err
	}

	return &ForgetMoveOutput{Moves: forgot.Moves}, nil
}

func (o *orchestrator) RecordBattle(ctx context.Context, input *RecordBattleInput) (*RecordBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r, _, c, err := o.findCharacter(ctx, input.UserID, input.CharacterID)
	if err != nil {
		return nil, err
	}

	c.Battles++
	if input.Victory {
		c.Victories++
	}
	if err := o.save(ctx, input.UserID, r); err != nil {
		return nil, err
	}

	return &RecordBattleOutput{Battles: c.Battles, Victories: c.Victories}, nil
}

func (o *orchestrator) GetTrainer(ctx context.Context, input *GetTrainerInput) (*GetTrainerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	loaded, err := o.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetTrainerOutput{Trainer: loaded.Roster.Trainer}, nil
}

func (o *orchestrator) UpdateTrainer(ctx context.Context, input *UpdateTrainerInput) (*UpdateTrainerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	loaded, err := o.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	t := loaded.Roster.Trainer
	if err := o.applyTrainerEdits(ctx, t, &input.Edits); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := o.save(ctx, input.UserID, loaded.Roster); err != nil {
		return nil, err
	}

	return &UpdateTrainerOutput{Trainer: t}, nil
}

func (o *orchestrator) applyTrainerEdits(ctx context.Context, t *pokerole.Trainer, e *TrainerEdits) error {
	if e.Name != nil {
		t.Name = strings.TrimSpace(*e.Name)
	}
	if e.Age != nil {
		t.Age = *e.Age
	}
	if e.Image != nil {
		if *e.Image == "" {
			t.Image = nil
		} else {
			image := *e.Image
			t.Image = &image
		}
	}
	if e.Money != nil {
		t.Money = *e.Money
	}
	if e.Pokedex != nil {
		t.Pokedex = *e.Pokedex
	}
	if e.Attributes != nil {
		t.Attributes = *e.Attributes
	}
	if e.Skills != nil {
		t.Skills = *e.Skills
	}
	if e.HP != nil {
		t.HP = *e.HP
	}
	if e.Will != nil {
		t.Will = *e.Will
	}

	if e.Nature != nil && *e.Nature != t.Nature {
		nature, err := o.catalog.GetNature(ctx, &catalog.GetNatureInput{Name: *e.Nature})
		if err != nil {
			return errors.Wrapf(err, "failed to get nature %s", *e.Nature)
		}
		t.Nature = nature.Nature.Name
		if confidence, err := strconv.Atoi(strings.TrimSpace(nature.Nature.Confidence)); err == nil {
			t.Confidence = confidence
		} else {
			slog.Warn("Nature confidence is not a number",
				"nature", nature.Nature.Name,
				"confidence", nature.Nature.Confidence,
			)
		}
	}
	// An explicit confidence wins over the one a nature carries
	if e.Confidence != nil {
		t.Confidence = *e.Confidence
	}

	return nil
}

func (o *orchestrator) AdjustInventory(
	ctx context.Context,
	input *AdjustInventoryInput,
) (*AdjustInventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Delta == 0 {
		return nil, errors.InvalidArgument("delta must not be zero")
	}

	loaded, err := o.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	inv := &loaded.Roster.Trainer.Inventory
	if input.PotionTier != "" {
		if err := adjustPotions(inv, input.PotionTier, input.Delta); err != nil {
			return nil, err
		}
	} else if err := adjustPocket(inv, input.Pocket, input.Name, input.Delta); err != nil {
		return nil, err
	}

	if err := o.save(ctx, input.UserID, loaded.Roster); err != nil {
		return nil, err
	}

	return &AdjustInventoryOutput{Inventory: *inv}, nil
}

func adjustPotions(inv *pokerole.Inventory, tier pokerole.PotionTier, delta int) error {
	known := false
	for _, t := range pokerole.PotionTiers() {
		if t == tier {
			known = true
			break
		}
	}
	if !known {
		return errors.InvalidArgumentf("unknown potion tier %q", tier)
	}

	if inv.Potions == nil {
		inv.Potions = make(map[pokerole.PotionTier]int)
	}
	inv.Potions[tier] = max(0, inv.Potions[tier]+delta)
	return nil
}

func adjustPocket(inv *pokerole.Inventory, pocket pokerole.Pocket, name string, delta int) error {
	items := inv.Pocket(pocket)
	if items == nil {
		return errors.InvalidArgumentf("unknown pocket %q", pocket)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.InvalidArgument("item name is required")
	}

	for i, item := range *items {
		if !strings.EqualFold(item.Name, name) {
			continue
		}
		if q := item.Quantity + delta; q > 0 {
			(*items)[i].Quantity = q
		} else {
			*items = append((*items)[:i:i], (*items)[i+1:]...)
		}
		return nil
	}

	if delta < 0 {
		return errors.NotFoundf("no %s in the %s pocket", name, pocket)
	}
	*items = append(*items, pokerole.InventoryItem{Name: name, Quantity: delta})
	return nil
}
