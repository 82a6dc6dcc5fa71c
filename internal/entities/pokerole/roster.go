package pokerole

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/pokerole-api/internal/errors"
)

// Roster dimensions
const (
	PartySize   = 6
	BoxCount    = 20
	BoxCapacity = 30

	// PartyBox addresses the party instead of a PC box
	PartyBox = -1
)

// SlotAddress locates one slot in the party or a PC box
type SlotAddress struct {
	Box  int `json:"box"`
	Slot int `json:"slot"`
}

// Party returns the address of a party slot
func Party(slot int) SlotAddress {
	return SlotAddress{Box: PartyBox, Slot: slot}
}

// InBox returns the address of a PC box slot
func InBox(box, slot int) SlotAddress {
	return SlotAddress{Box: box, Slot: slot}
}

// IsParty reports whether the address points into the party
func (a SlotAddress) IsParty() bool {
	return a.Box == PartyBox
}

// String renders the address as "party/2" or "box3/17"
func (a SlotAddress) String() string {
	if a.IsParty() {
		return fmt.Sprintf("party/%d", a.Slot)
	}
	return fmt.Sprintf("box%d/%d", a.Box, a.Slot)
}

// ParseSlotAddress reads the form produced by String: "party/2" or
// "box3/17". The result is validated.
func ParseSlotAddress(s string) (SlotAddress, error) {
	where, slot, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "/")
	if !ok {
		return SlotAddress{}, errors.InvalidArgumentf("slot %q must look like party/N or boxN/M", s)
	}

	n, err := strconv.Atoi(slot)
	if err != nil {
		return SlotAddress{}, errors.InvalidArgumentf("slot %q has a non-numeric index", s)
	}

	var addr SlotAddress
	switch {
	case where == "party":
		addr = Party(n)
	case strings.HasPrefix(where, "box"):
		box, err := strconv.Atoi(strings.TrimPrefix(where, "box"))
		if err != nil {
			return SlotAddress{}, errors.InvalidArgumentf("slot %q has a non-numeric box", s)
		}
		addr = InBox(box, n)
	default:
		return SlotAddress{}, errors.InvalidArgumentf("slot %q must look like party/N or boxN/M", s)
	}

	return addr, addr.Validate()
}

// Validate checks the address is inside the roster
func (a SlotAddress) Validate() error {
	if a.IsParty() {
		if a.Slot < 0 || a.Slot >= PartySize {
			return errors.OutOfRangef("party slot %d out of range [0,%d)", a.Slot, PartySize)
		}
		return nil
	}
	if a.Box < 0 || a.Box >= BoxCount {
		return errors.OutOfRangef("box %d out of range [0,%d)", a.Box, BoxCount)
	}
	if a.Slot < 0 || a.Slot >= BoxCapacity {
		return errors.OutOfRangef("box slot %d out of range [0,%d)", a.Slot, BoxCapacity)
	}
	return nil
}

// Roster is everything a player owns: the party, the PC boxes and the
// trainer sheet. Empty slots are nil.
type Roster struct {
	Party   []*Character   `json:"party"`
	Boxes   [][]*Character `json:"boxes"`
	Trainer *Trainer       `json:"trainer"`
}

// NewRoster returns an empty roster with a default trainer
func NewRoster() *Roster {
	r := &Roster{}
	r.Normalize()
	return r
}

// Normalize pads the party and boxes to their fixed sizes, trims
// anything beyond them and fills in a default trainer. It reports
// whether anything changed.
func (r *Roster) Normalize() bool {
	changed := false

	if len(r.Party) != PartySize {
		r.Party = resize(r.Party, PartySize)
		changed = true
	}

	if len(r.Boxes) != BoxCount {
		boxes := make([][]*Character, BoxCount)
		copy(boxes, r.Boxes)
		r.Boxes = boxes
		changed = true
	}
	for i, box := range r.Boxes {
		if len(box) != BoxCapacity {
			r.Boxes[i] = resize(box, BoxCapacity)
			changed = true
		}
	}

	if r.Trainer == nil {
		r.Trainer = NewTrainer()
		changed = true
	}

	return changed
}

func resize(slots []*Character, size int) []*Character {
	out := make([]*Character, size)
	copy(out, slots)
	return out
}

// At returns the character in a slot, nil when empty
func (r *Roster) At(addr SlotAddress) (*Character, error) {
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	if addr.IsParty() {
		return r.Party[addr.Slot], nil
	}
	return r.Boxes[addr.Box][addr.Slot], nil
}

// Set stores c in a slot. A nil c empties it.
func (r *Roster) Set(addr SlotAddress, c *Character) error {
	if err := addr.Validate(); err != nil {
		return err
	}
	if addr.IsParty() {
		r.Party[addr.Slot] = c
	} else {
		r.Boxes[addr.Box][addr.Slot] = c
	}
	return nil
}

// Swap exchanges the contents of two slots. Swapping a slot with itself
// is a no-op.
func (r *Roster) Swap(from, to SlotAddress) error {
	if from == to {
		return from.Validate()
	}
	a, err := r.At(from)
	if err != nil {
		return err
	}
	b, err := r.At(to)
	if err != nil {
		return err
	}
	if err := r.Set(from, b); err != nil {
		return err
	}
	return r.Set(to, a)
}

// Find locates a character by instance ID
func (r *Roster) Find(id string) (SlotAddress, *Character, bool) {
	for i, c := range r.Party {
		if c != nil && c.ID == id {
			return Party(i), c, true
		}
	}
	for b, box := range r.Boxes {
		for s, c := range box {
			if c != nil && c.ID == id {
				return InBox(b, s), c, true
			}
		}
	}
	return SlotAddress{}, nil, false
}

// PartyMembers returns the non-empty party slots in order
func (r *Roster) PartyMembers() []*Character {
	out := make([]*Character, 0, PartySize)
	for _, c := range r.Party {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Count returns the number of occupied slots across party and boxes
func (r *Roster) Count() int {
	n := len(r.PartyMembers())
	for _, box := range r.Boxes {
		for _, c := range box {
			if c != nil {
				n++
			}
		}
	}
	return n
}
