package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r)
	assert.Len(t, r.Commands(), len(BuiltinCommands()))
}

func TestResolve_CanonicalName(t *testing.T) {
	r := DefaultRegistry()

	cmd, ok := r.Resolve("explore")
	assert.True(t, ok)
	assert.Equal(t, "explore", cmd.Name)
	assert.Equal(t, HandlerExplore, cmd.Handler)
}

func TestResolve_Alias(t *testing.T) {
	r := DefaultRegistry()

	cmd, ok := r.Resolve("go")
	assert.True(t, ok)
	assert.Equal(t, "travel", cmd.Name)
}

func TestResolve_CaseInsensitive(t *testing.T) {
	r := DefaultRegistry()

	cmd, ok := r.Resolve("PickPocket")
	require.True(t, ok)
	assert.Equal(t, HandlerPickPocket, cmd.Handler)
}

func TestResolve_NotFound(t *testing.T) {
	r := DefaultRegistry()

	_, ok := r.Resolve("teleport")
	assert.False(t, ok)
}

func TestResolve_AllBuiltins(t *testing.T) {
	r := DefaultRegistry()

	tests := []struct {
		input   string
		handler string
	}{
		{"create", HandlerCreate},
		{"new", HandlerCreate},
		{"status", HandlerStatus},
		{"st", HandlerStatus},
		{"i", HandlerInventory},
		{"log", HandlerLog},
		{"x", HandlerExplore},
		{"r", HandlerRest},
		{"beg", HandlerBeg},
		{"pp", HandlerPickPocket},
		{"shop", HandlerTrade},
		{"buy", HandlerBuy},
		{"study", HandlerStudy},
		{"m", HandlerMap},
		{"t", HandlerTravel},
		{"time", HandlerTime},
		{"set", HandlerSettings},
		{"save", HandlerSave},
		{"reset", HandlerReset},
		{"?", HandlerHelp},
		{"exit", HandlerQuit},
		{"q", HandlerQuit},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd, ok := r.Resolve(tt.input)
			require.True(t, ok, "command %q not found", tt.input)
			assert.Equal(t, tt.handler, cmd.Handler)
		})
	}
}

func TestCommands_RegistrationOrder(t *testing.T) {
	r := DefaultRegistry()
	builtins := BuiltinCommands()

	cmds := r.Commands()
	require.Len(t, cmds, len(builtins))
	for i, cmd := range cmds {
		assert.Equal(t, builtins[i].Name, cmd.Name)
	}
}

func TestCommandsByCategory(t *testing.T) {
	r := DefaultRegistry()
	cats := r.CommandsByCategory()

	assert.Len(t, cats, 4)
	assert.Len(t, cats[CategoryCharacter], 4)
	assert.Len(t, cats[CategoryActivity], 7)
	assert.Len(t, cats[CategoryTravel], 2)
	assert.Len(t, cats[CategorySystem], 6)
	assert.Equal(t, "explore", cats[CategoryActivity][0].Name)
}

func TestNewRegistry_DuplicateName(t *testing.T) {
	_, err := NewRegistry([]Command{
		{Name: "rest", Handler: HandlerRest},
		{Name: "rest", Handler: HandlerRest},
	})
	assert.Error(t, err)
}

func TestNewRegistry_AliasCollidesWithName(t *testing.T) {
	_, err := NewRegistry([]Command{
		{Name: "rest", Handler: HandlerRest},
		{Name: "sleep", Aliases: []string{"rest"}, Handler: HandlerRest},
	})
	assert.Error(t, err)
}

func TestNewRegistry_NameCollidesWithAlias(t *testing.T) {
	_, err := NewRegistry([]Command{
		{Name: "sleep", Aliases: []string{"rest"}, Handler: HandlerRest},
		{Name: "rest", Handler: HandlerRest},
	})
	assert.Error(t, err)
}

func TestNewRegistry_DuplicateAlias(t *testing.T) {
	_, err := NewRegistry([]Command{
		{Name: "rest", Aliases: []string{"r"}, Handler: HandlerRest},
		{Name: "run", Aliases: []string{"r"}, Handler: HandlerTravel},
	})
	assert.Error(t, err)
}

func TestPropertyAllAliasesResolveToCanonical(t *testing.T) {
	r := DefaultRegistry()
	cmds := r.Commands()

	rapid.Check(t, func(t *rapid.T) {
		idx := rapid.IntRange(0, len(cmds)-1).Draw(t, "cmdIdx")
		cmd := cmds[idx]

		resolved, ok := r.Resolve(cmd.Name)
		if !ok {
			t.Fatalf("canonical name %q did not resolve", cmd.Name)
		}
		if resolved.Name != cmd.Name {
			t.Fatalf("resolved %q to %q", cmd.Name, resolved.Name)
		}

		for _, alias := range cmd.Aliases {
			aliasResolved, ok := r.Resolve(alias)
			if !ok {
				t.Fatalf("alias %q did not resolve", alias)
			}
			if aliasResolved.Name != cmd.Name {
				t.Fatalf("alias %q resolved to %q, expected %q", alias, aliasResolved.Name, cmd.Name)
			}
		}
	})
}
