// Package command provides the console command registry, parser, and
// built-in command definitions.
package command

// Categories for organizing commands in help output.
const (
	CategoryCharacter = "character"
	CategoryActivity  = "activity"
	CategoryTravel    = "travel"
	CategorySystem    = "system"
)

// Handler identifiers mapping commands to console handlers.
const (
	HandlerCreate     = "create"
	HandlerStatus     = "status"
	HandlerInventory  = "inventory"
	HandlerLog        = "log"
	HandlerExplore    = "explore"
	HandlerRest       = "rest"
	HandlerBeg        = "beg"
	HandlerPickPocket = "pickpocket"
	HandlerTrade      = "trade"
	HandlerBuy        = "buy"
	HandlerStudy      = "study"
	HandlerMap        = "map"
	HandlerTravel     = "travel"
	HandlerTime       = "time"
	HandlerSettings   = "settings"
	HandlerSave       = "save"
	HandlerReset      = "reset"
	HandlerHelp       = "help"
	HandlerQuit       = "quit"
)

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Usage shows the argument shape, if any.
	Usage string
	// Help is the short help text displayed to players.
	Help string
	// Category groups the command.
	Category string
	// Handler maps to the console handler.
	Handler string
}

// BuiltinCommands returns all built-in commands in help order.
func BuiltinCommands() []Command {
	return []Command{
		// Character commands
		{Name: "create", Aliases: []string{"new"}, Usage: "<name> [urchin|waif]", Help: "Create a character and start a new game", Category: CategoryCharacter, Handler: HandlerCreate},
		{Name: "status", Aliases: []string{"st", "score"}, Help: "Show your character", Category: CategoryCharacter, Handler: HandlerStatus},
		{Name: "inventory", Aliases: []string{"inv", "i"}, Help: "List the upgrades you own", Category: CategoryCharacter, Handler: HandlerInventory},
		{Name: "log", Aliases: []string{"events"}, Usage: "[count]", Help: "Show recent events", Category: CategoryCharacter, Handler: HandlerLog},

		// Activity commands
		{Name: "explore", Aliases: []string{"x"}, Help: "Explore the current location", Category: CategoryActivity, Handler: HandlerExplore},
		{Name: "rest", Aliases: []string{"r"}, Help: "Rest to recover stamina", Category: CategoryActivity, Handler: HandlerRest},
		{Name: "beg", Help: "Beg passers-by for coin", Category: CategoryActivity, Handler: HandlerBeg},
		{Name: "pickpocket", Aliases: []string{"pick", "pp"}, Help: "Lift coin from an unwary purse", Category: CategoryActivity, Handler: HandlerPickPocket},
		{Name: "trade", Aliases: []string{"shop"}, Help: "Browse the merchants' wares", Category: CategoryActivity, Handler: HandlerTrade},
		{Name: "buy", Usage: "<item>", Help: "Buy an upgrade", Category: CategoryActivity, Handler: HandlerBuy},
		{Name: "study", Help: "Study at the academy", Category: CategoryActivity, Handler: HandlerStudy},

		// Travel commands
		{Name: "map", Aliases: []string{"locations", "m"}, Help: "List the locations you know", Category: CategoryTravel, Handler: HandlerMap},
		{Name: "travel", Aliases: []string{"go", "t"}, Usage: "<location>", Help: "Travel to a discovered location", Category: CategoryTravel, Handler: HandlerTravel},

		// System commands
		{Name: "time", Help: "Show the time in the city", Category: CategorySystem, Handler: HandlerTime},
		{Name: "settings", Aliases: []string{"set"}, Usage: "[sound|animations|autosave on|off]", Help: "Show or change settings", Category: CategorySystem, Handler: HandlerSettings},
		{Name: "save", Help: "Save the game now", Category: CategorySystem, Handler: HandlerSave},
		{Name: "reset", Usage: "confirm", Help: "Delete your save and start over", Category: CategorySystem, Handler: HandlerReset},
		{Name: "help", Aliases: []string{"?"}, Help: "Show available commands", Category: CategorySystem, Handler: HandlerHelp},
		{Name: "quit", Aliases: []string{"exit", "q"}, Help: "Save and leave the city", Category: CategorySystem, Handler: HandlerQuit},
	}
}
