package pool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/KirkDiggler/pokerole-api/internal/engine/pool"
	"github.com/KirkDiggler/pokerole-api/internal/engine/stats"
	"github.com/KirkDiggler/pokerole-api/internal/entities/pokerole"
	"github.com/KirkDiggler/pokerole-api/internal/errors"
	"github.com/KirkDiggler/pokerole-api/internal/testutils/builders"
)

func testCharacter() *pokerole.Character {
	return builders.NewCharacterBuilder().
		WithStrength(3).
		WithDexterity(4).
		WithSkills(pokerole.Skills{
			Fight: pokerole.FightSkills{Brawl: 2, Channel: 1},
		}).
		Build()
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want pool.Pool
	}{
		{
			name: "two terms",
			expr: "Dexterity + Channel",
			want: pool.Pool{Primary: "Dexterity", Secondary: "Channel"},
		},
		{
			name: "no spaces",
			expr: "Strength+Brawl",
			want: pool.Pool{Primary: "Strength", Secondary: "Brawl"},
		},
		{
			name: "single term",
			expr: "Special",
			want: pool.Pool{Primary: "Special"},
		},
		{
			name: "literal secondary",
			expr: "Strength + 2",
			want: pool.Pool{Primary: "Strength", Secondary: "2"},
		},
		{
			name: "choice",
			expr: "Strength/Dexterity + Brawl",
			want: pool.Pool{
				Primary:   "Strength/Dexterity",
				Secondary: "Brawl",
				Options:   []string{"Strength", "Dexterity"},
				IsChoice:  true,
			},
		},
		{
			name: "choice with spaces",
			expr: " Strength / Special ",
			want: pool.Pool{
				Primary:  "Strength / Special",
				Options:  []string{"Strength", "Special"},
				IsChoice: true,
			},
		},
		{
			name: "extra segments ignored",
			expr: "Strength + Brawl + Clash",
			want: pool.Pool{Primary: "Strength", Secondary: "Brawl"},
		},
		{
			name: "empty",
			expr: "",
			want: pool.Pool{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pool.Parse(tt.expr))
		})
	}
}

func TestResolve(t *testing.T) {
	c := testCharacter()

	v, err := pool.Resolve(c, pool.Parse("Strength + Brawl"))
	require.NoError(t, err)
	assert.Equal(t, pool.Values{Primary: 3, Secondary: 2}, v)
	assert.Equal(t, 5, v.Total())

	v, err = pool.Resolve(c, pool.Parse(""))
	require.NoError(t, err)
	assert.Equal(t, 0, v.Total())
}

func TestChoiceSuspendsResolution(t *testing.T) {
	c := testCharacter()
	p := pool.Parse("Strength/Dexterity + Brawl")

	_, err := pool.Resolve(c, p)
	require.Error(t, err)
	assert.True(t, pool.IsChoiceRequired(err))
	assert.True(t, errors.IsFailedPrecondition(err))
	assert.Equal(t, []string{"Strength", "Dexterity"}, pool.ChoiceOptions(err))

	bound, err := p.Choose("dexterity")
	require.NoError(t, err)
	assert.False(t, bound.IsChoice)
	assert.Equal(t, "Dexterity", bound.Primary)

	v, err := pool.Resolve(c, bound)
	require.NoError(t, err)
	assert.Equal(t, pool.Values{Primary: 4, Secondary: 2}, v)
}

func TestChooseRejects(t *testing.T) {
	_, err := pool.Parse("Strength/Dexterity").Choose("Special")
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = pool.Parse("Strength").Choose("Strength")
	assert.True(t, errors.IsFailedPrecondition(err))
	assert.False(t, pool.IsChoiceRequired(err))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "Dexterity + Channel", pool.Join("Dexterity", "Channel"))
	assert.Equal(t, "Dexterity", pool.Join("Dexterity", ""))
	assert.Equal(t, "+ Channel", pool.Join("", "Channel"))
	assert.Equal(t, pool.Pool{Secondary: "Channel"}, pool.Parse(pool.Join("", "Channel")))
	assert.Equal(t, "Strength/Dexterity + Brawl", pool.Parse("Strength/Dexterity+Brawl").String())
}

var termGen = rapid.OneOf(
	rapid.SampledFrom(stats.Names()),
	rapid.StringMatching(`[0-9]`),
	rapid.StringMatching(`[A-Za-z]{1,8}`),
)

func TestParseRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		c := builders.NewCharacterBuilder().
			WithStrength(rapid.IntRange(0, 6).Draw(rt, "strength")).
			WithSkills(pokerole.Skills{
				Fight: pokerole.FightSkills{Brawl: rapid.IntRange(0, 5).Draw(rt, "brawl")},
			}).
			Build()

		a := termGen.Draw(rt, "a")
		b := termGen.Draw(rt, "b")

		v, err := pool.Resolve(c, pool.Parse(a+" + "+b))
		if err != nil {
			rt.Fatalf("unexpected error: %v", err)
		}
		if v.Primary != stats.Resolve(c, a) || v.Secondary != stats.Resolve(c, b) {
			rt.Fatalf("resolve(%q + %q) = %+v", a, b, v)
		}
	})
}

func TestChoiceOptionsProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		opts := rapid.SliceOfNDistinct(rapid.SampledFrom(stats.Names()[:5]), 2, 5, rapid.ID[string]).Draw(rt, "options")
		secondary := rapid.SampledFrom(stats.Names()[5:17]).Draw(rt, "secondary")

		expr := ""
		for i, o := range opts {
			if i > 0 {
				expr += "/"
			}
			expr += o
		}
		p := pool.Parse(expr + " + " + secondary)

		if !p.IsChoice {
			rt.Fatalf("%q not parsed as a choice", expr)
		}
		if len(p.Options) != len(opts) {
			rt.Fatalf("options = %v, want %v", p.Options, opts)
		}
		if _, err := pool.Resolve(nil, p); !pool.IsChoiceRequired(err) {
			rt.Fatalf("resolve of choice pool did not suspend: %v", err)
		}
	})
}
