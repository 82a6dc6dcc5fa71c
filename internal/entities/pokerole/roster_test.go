package pokerole_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokerole-api/internal/entities/pokerole"
	"github.com/KirkDiggler/pokerole-api/internal/errors"
)

func TestNewRoster(t *testing.T) {
	r := pokerole.NewRoster()

	assert.Len(t, r.Party, pokerole.PartySize)
	assert.Len(t, r.Boxes, pokerole.BoxCount)
	for _, box := range r.Boxes {
		assert.Len(t, box, pokerole.BoxCapacity)
	}
	require.NotNil(t, r.Trainer)
	assert.Equal(t, 0, r.Count())
	assert.False(t, r.Normalize())
}

func TestRosterNormalizePadsShortData(t *testing.T) {
	mon := pokerole.NewCharacterFromSpecies("mon_1", testSpecies())
	r := &pokerole.Roster{
		Party: []*pokerole.Character{mon},
		Boxes: [][]*pokerole.Character{{nil, mon}},
	}

	assert.True(t, r.Normalize())
	assert.Len(t, r.Party, pokerole.PartySize)
	assert.Len(t, r.Boxes, pokerole.BoxCount)
	assert.Len(t, r.Boxes[0], pokerole.BoxCapacity)
	assert.Len(t, r.Boxes[19], pokerole.BoxCapacity)
	assert.Same(t, mon, r.Party[0])
	assert.Same(t, mon, r.Boxes[0][1])
	assert.NotNil(t, r.Trainer)
}

func TestRosterSwap(t *testing.T) {
	r := pokerole.NewRoster()
	a := pokerole.NewCharacterFromSpecies("a", testSpecies())
	b := pokerole.NewCharacterFromSpecies("b", testSpecies())
	require.NoError(t, r.Set(pokerole.Party(0), a))
	require.NoError(t, r.Set(pokerole.InBox(3, 10), b))

	require.NoError(t, r.Swap(pokerole.Party(0), pokerole.InBox(3, 10)))
	assert.Same(t, b, r.Party[0])
	assert.Same(t, a, r.Boxes[3][10])

	require.NoError(t, r.Swap(pokerole.InBox(3, 10), pokerole.InBox(3, 10)))
	assert.Same(t, a, r.Boxes[3][10])

	require.NoError(t, r.Swap(pokerole.Party(0), pokerole.Party(5)))
	assert.Nil(t, r.Party[0])
	assert.Same(t, b, r.Party[5])

	addr, found, ok := r.Find("a")
	assert.True(t, ok)
	assert.Same(t, a, found)
	assert.Equal(t, pokerole.InBox(3, 10), addr)
	assert.Equal(t, 2, r.Count())
}

func TestSlotAddressValidate(t *testing.T) {
	tests := []struct {
		name string
		addr pokerole.SlotAddress
		ok   bool
	}{
		{"party first", pokerole.Party(0), true},
		{"party last", pokerole.Party(5), true},
		{"party overflow", pokerole.Party(6), false},
		{"box last slot", pokerole.InBox(19, 29), true},
		{"box overflow", pokerole.InBox(20, 0), false},
		{"slot overflow", pokerole.InBox(0, 30), false},
		{"negative box", pokerole.InBox(-2, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.addr.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.IsOutOfRange(err))
		})
	}

	assert.Equal(t, "party/2", pokerole.Party(2).String())
	assert.Equal(t, "box3/17", pokerole.InBox(3, 17).String())
}

func TestParseSlotAddress(t *testing.T) {
	tests := []struct {
		in      string
		want    pokerole.SlotAddress
		wantErr func(error) bool
	}{
		{in: "party/2", want: pokerole.Party(2)},
		{in: " Box3/17 ", want: pokerole.InBox(3, 17)},
		{in: "party/6", wantErr: errors.IsOutOfRange},
		{in: "box20/0", wantErr: errors.IsOutOfRange},
		{in: "party", wantErr: errors.IsInvalidArgument},
		{in: "boxA/1", wantErr: errors.IsInvalidArgument},
		{in: "bag/1", wantErr: errors.IsInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := pokerole.ParseSlotAddress(tt.in)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) pokerole.SlotAddress {
	t.Helper()
	addr, err := pokerole.ParseSlotAddress(s)
	require.NoError(t, err)
	return addr
}
