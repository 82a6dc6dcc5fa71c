package main

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokerole-api/internal/entities/pokerole"
	"github.com/KirkDiggler/pokerole-api/internal/errors"
)

func TestValidateOutput(t *testing.T) {
	for _, format := range []string{outputText, outputJSON, outputYAML} {
		assert.NoError(t, validateOutput(format))
	}
	assert.True(t, errors.IsInvalidArgument(validateOutput("xml")))
}

func TestRenderTo(t *testing.T) {
	v := pokerole.InventoryItem{Name: "Oran Berry", Quantity: 3}
	text := func(w io.Writer) { fmt.Fprint(w, "Oran Berry x3") }

	testCases := []struct {
		name   string
		format string
		want   string
	}{
		{name: "text", format: outputText, want: "Oran Berry x3"},
		{name: "json", format: outputJSON, want: "{\n  \"name\": \"Oran Berry\",\n  \"quantity\": 3\n}\n"},
		{name: "yaml", format: outputYAML, want: "name: Oran Berry\nquantity: 3\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, renderTo(&buf, tc.format, v, text))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestPrintRosterSkipsEmptyBoxSlots(t *testing.T) {
	r := pokerole.NewRoster()
	c := &pokerole.Character{ID: "mon_1", Nickname: "Shelly", SpeciesName: "Squirtle", Status: pokerole.StatusNeutral}
	require.NoError(t, r.Set(pokerole.InBox(2, 4), c))

	var buf bytes.Buffer
	printRoster(&buf, r, true)

	out := buf.String()
	assert.Contains(t, out, "party/0")
	assert.Contains(t, out, "box2/4")
	assert.Contains(t, out, "Shelly")
	assert.NotContains(t, out, "box0/0")
}

func TestReportErrorListsFields(t *testing.T) {
	err := errors.NewValidationBuilder().
		Field("skills.brawl", "must be between 0 and 5").
		RequiredField("nickname").
		Build()

	var buf bytes.Buffer
	reportError(&buf, errors.Wrap(err, "invalid character"))

	out := buf.String()
	assert.Contains(t, out, "Error: INVALID_ARGUMENT: invalid character")
	assert.Contains(t, out, "  nickname is required\n  skills.brawl must be between 0 and 5\n")
}
