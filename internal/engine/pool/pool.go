// Package pool parses dice pool expressions such as "Dexterity + Channel"
// or "Strength/Dexterity + Brawl" and resolves them against a sheet.
package pool

import (
	"strings"

	"github.com/KirkDiggler/pokerole-api/internal/engine/stats"
	"github.com/KirkDiggler/pokerole-api/internal/errors"
)

// ReasonChoiceRequired tags the error returned when a pool still offers a choice
const ReasonChoiceRequired = "CHOICE_REQUIRED"

// MetaOptions is the error metadata key listing the available choices
const MetaOptions = "options"

// Pool is a parsed pool expression
type Pool struct {
	Primary   string
	Secondary string
	Options   []string
	IsChoice  bool
}

// Values holds the resolved dice counts of a pool
type Values struct {
	Primary   int
	Secondary int
}

// Total is the number of dice the pool rolls
func (v Values) Total() int {
	return v.Primary + v.Secondary
}

// Parse splits expr on '+' into a primary and an optional secondary term.
// Segments after the second are ignored and an empty expression yields an
// empty pool that rolls zero dice. A primary term containing '/' is a
// choice between the listed attributes and must be bound with Choose
// before it can be resolved.
func Parse(expr string) Pool {
	segments := strings.Split(expr, "+")

	p := Pool{Primary: strings.TrimSpace(segments[0])}
	if len(segments) > 1 {
		p.Secondary = strings.TrimSpace(segments[1])
	}

	if strings.Contains(p.Primary, "/") {
		for _, opt := range strings.Split(p.Primary, "/") {
			if opt = strings.TrimSpace(opt); opt != "" {
				p.Options = append(p.Options, opt)
			}
		}
		p.IsChoice = true
	}

	return p
}

// IsEmpty reports whether the pool has no terms at all
func (p Pool) IsEmpty() bool {
	return p.Primary == "" && p.Secondary == ""
}

// Choose binds a choice pool to one of its options. The match ignores case
// and the option is stored as listed in the expression.
func (p Pool) Choose(option string) (Pool, error) {
	if !p.IsChoice {
		return Pool{}, errors.FailedPrecondition("pool does not offer a choice")
	}

	want := strings.TrimSpace(option)
	for _, opt := range p.Options {
		if strings.EqualFold(opt, want) {
			return Pool{Primary: opt, Secondary: p.Secondary}, nil
		}
	}

	return Pool{}, errors.InvalidArgumentf("%q is not one of %s", option, strings.Join(p.Options, "/")).
		WithMeta(MetaOptions, p.Options)
}

// String renders the pool back into expression form
func (p Pool) String() string {
	return Join(p.Primary, p.Secondary)
}

// Resolve looks up both terms on sheet. A pool that still offers a choice
// returns ErrChoiceRequired carrying the options; callers treat that as a
// request for input rather than a failure.
func Resolve(sheet stats.Sheet, p Pool) (Values, error) {
	if p.IsChoice {
		return Values{}, ErrChoiceRequired(p.Options)
	}

	return Values{
		Primary:   stats.Resolve(sheet, p.Primary),
		Secondary: stats.Resolve(sheet, p.Secondary),
	}, nil
}

// ErrChoiceRequired builds the suspension error for a choice pool
func ErrChoiceRequired(options []string) error {
	return errors.FailedPreconditionf("choose one of %s", strings.Join(options, "/")).
		WithReason(ReasonChoiceRequired).
		WithMeta(MetaOptions, options)
}

// IsChoiceRequired reports whether err is a choice suspension
func IsChoiceRequired(err error) bool {
	return errors.HasReason(err, ReasonChoiceRequired)
}

// ChoiceOptions extracts the options from a choice suspension
func ChoiceOptions(err error) []string {
	opts, _ := errors.GetMeta(err)[MetaOptions].([]string)
	return opts
}

// Join builds an expression from a move's two pool fields
func Join(primary, secondary string) string {
	primary = strings.TrimSpace(primary)
	secondary = strings.TrimSpace(secondary)

	if secondary == "" {
		return primary
	}
	return strings.TrimSpace(primary + " + " + secondary)
}
