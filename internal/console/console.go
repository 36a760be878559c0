package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/cory-johannsen/wonders/internal/game/character"
	"github.com/cory-johannsen/wonders/internal/game/command"
	"github.com/cory-johannsen/wonders/internal/game/gametime"
	"github.com/cory-johannsen/wonders/internal/game/location"
	"github.com/cory-johannsen/wonders/internal/gameserver"
)

// DefaultLogLines is how many events the log command shows without a count.
const DefaultLogLines = 10

// Options configures a Console. Zero fields take the documented defaults.
type Options struct {
	// Color enables ANSI styling of output.
	Color bool
	// Registry defaults to command.DefaultRegistry().
	Registry *command.Registry
	// Logger defaults to a no-op logger.
	Logger *zap.Logger
}

// Console reads commands from in and writes rendered output to out.
//
// Writes are serialized so the clock announcer and the command loop never
// interleave partial lines.
type Console struct {
	game     *gameserver.Game
	registry *command.Registry
	logger   *zap.Logger
	in       io.Reader
	color    bool

	mu  sync.Mutex
	out io.Writer
}

// New creates a Console driving g.
//
// Precondition: g, in, and out must be non-nil.
func New(g *gameserver.Game, in io.Reader, out io.Writer, opts Options) *Console {
	if opts.Registry == nil {
		opts.Registry = command.DefaultRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Console{
		game:     g,
		registry: opts.Registry,
		logger:   opts.Logger,
		in:       in,
		color:    opts.Color,
		out:      out,
	}
}

// Run greets the player and executes commands until quit, end of input, or
// ctx cancellation. Daylight changes are announced while it runs.
//
// Postcondition: Returns nil on quit, EOF, or cancellation, or a wrapped
// error when reading input fails.
func (c *Console) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	defer wg.Wait()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	updates := make(chan gameserver.TimeUpdate, 8)
	c.game.Subscribe(updates)
	defer c.game.Unsubscribe(updates)

	since := c.game.Time()
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.announce(ctx, updates, since)
	}()

	// The reader is not joined: a read from a terminal cannot be interrupted.
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
		close(lines)
	}()

	c.greet()
	c.prompt()
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("reading input: %w", err)
				}
				c.logger.Info("console input closed")
				return nil
			}
			if c.Execute(ctx, line) {
				return nil
			}
			c.prompt()
		}
	}
}

// announce writes daylight transitions and new days as the clock ticks,
// starting from the calendar position last.
func (c *Console) announce(ctx context.Context, updates <-chan gameserver.TimeUpdate, last gametime.GameTime) {
	for {
		select {
		case <-ctx.Done():
			return
		case u := <-updates:
			if u.Time.Day > last.Day {
				c.write(Colorf(BrightCyan, "Day %d begins.", u.Time.Day) + "\n")
			}
			if u.Daylight != last.Daylight() {
				c.write(RenderDaylightChange(u.Daylight))
			}
			last = u.Time
		}
	}
}

func (c *Console) greet() {
	if ch, ok := c.game.Character(); ok {
		c.write(Colorf(BrightYellow, "Welcome back to the City of Wonders, %s.", ch.Name) + "\n")
		c.write(RenderTime(c.game.Time()))
		return
	}
	c.write(Colorize(BrightYellow, "Welcome to the City of Wonders.") + "\n")
	c.write("Type 'create <name> [urchin|waif]' to begin, or 'help' for commands.\n")
}

func (c *Console) prompt() {
	if ch, ok := c.game.Character(); ok {
		c.write(Colorf(BrightCyan, "[%s @ %s]> ", ch.Name, c.game.CurrentLocation().Name))
		return
	}
	c.write(Colorize(BrightCyan, "> "))
}

func (c *Console) write(s string) {
	if !c.color {
		s = StripANSI(s)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = io.WriteString(c.out, s)
}

func (c *Console) warn(format string, args ...any) {
	c.write(Colorf(Red, format, args...) + "\n")
}

// Execute runs one input line.
//
// Postcondition: Returns true when the player asked to quit.
func (c *Console) Execute(ctx context.Context, line string) bool {
	parsed := command.Parse(line)
	if parsed.Command == "" {
		return false
	}
	cmd, ok := c.registry.Resolve(parsed.Command)
	if !ok {
		c.logger.Debug("unknown command", zap.String("input", parsed.Command))
		c.warn("Unknown command %q. Type 'help' for a list.", parsed.Command)
		return false
	}

	switch cmd.Handler {
	case command.HandlerCreate:
		c.create(ctx, parsed)
	case command.HandlerStatus:
		c.status()
	case command.HandlerInventory:
		c.write(RenderInventory(c.game.Inventory(), c.game.Shop()))
	case command.HandlerLog:
		c.log(parsed)
	case command.HandlerExplore:
		c.write(RenderResult(c.game.Explore(ctx)))
	case command.HandlerRest:
		c.write(RenderResult(c.game.Rest(ctx)))
	case command.HandlerBeg:
		c.write(RenderResult(c.game.Beg(ctx)))
	case command.HandlerPickPocket:
		c.write(RenderResult(c.game.PickPocket(ctx)))
	case command.HandlerTrade:
		c.write(RenderResult(c.game.Trade(ctx)))
	case command.HandlerBuy:
		c.buy(ctx, parsed)
	case command.HandlerStudy:
		c.write(RenderResult(c.game.Study(ctx)))
	case command.HandlerMap:
		c.write(RenderMap(c.game.Locations()))
	case command.HandlerTravel:
		c.travel(ctx, parsed)
	case command.HandlerTime:
		c.write(RenderTime(c.game.Time()))
	case command.HandlerSettings:
		c.settings(ctx, parsed)
	case command.HandlerSave:
		if c.game.Save(ctx) {
			c.write(Colorize(Green, "Game saved.") + "\n")
		} else {
			c.warn("The game could not be saved.")
		}
	case command.HandlerReset:
		c.reset(ctx, parsed)
	case command.HandlerHelp:
		c.write(RenderHelp(c.registry))
	case command.HandlerQuit:
		c.write(Colorize(Cyan, "The city lamps dim behind you. Farewell.") + "\n")
		return true
	default:
		c.warn("%s is not available here.", cmd.Name)
	}
	return false
}

func (c *Console) create(ctx context.Context, parsed command.ParseResult) {
	if len(parsed.Args) == 0 {
		c.warn("Usage: create <name> [urchin|waif]")
		return
	}
	if _, ok := c.game.Character(); ok {
		c.warn("You already have a character. Type 'reset confirm' to start over.")
		return
	}
	name := parsed.RawArgs
	class := character.ClassNone
	if n := len(parsed.Args); n > 1 {
		if cl, ok := parseClass(parsed.Args[n-1]); ok {
			class = cl
			name = strings.Join(parsed.Args[:n-1], " ")
		}
	}
	res := c.game.CreateCharacter(ctx, name, class)
	c.write(RenderResult(res))
	if res.Success {
		c.status()
	}
}

func parseClass(s string) (character.Class, bool) {
	switch strings.ToLower(s) {
	case "urchin":
		return character.ClassUrchin, true
	case "waif":
		return character.ClassWaif, true
	case "none", "commoner":
		return character.ClassNone, true
	default:
		return character.ClassNone, false
	}
}

func (c *Console) status() {
	ch, ok := c.game.Character()
	if !ok {
		c.warn("You have no character yet. Type 'create <name>' to begin.")
		return
	}
	c.write(RenderCharacter(ch))
	c.write(Colorf(Dim, "  at %s, %s", c.game.CurrentLocation().Name, c.game.Time()) + "\n")
}

func (c *Console) log(parsed command.ParseResult) {
	n := DefaultLogLines
	if len(parsed.Args) > 0 {
		v, err := strconv.Atoi(parsed.Args[0])
		if err != nil || v < 1 {
			c.warn("Usage: log [count]")
			return
		}
		n = v
	}
	events := c.game.Events()
	if len(events) > n {
		events = events[len(events)-n:]
	}
	c.write(RenderEvents(events))
}

func (c *Console) buy(ctx context.Context, parsed command.ParseResult) {
	if parsed.RawArgs == "" {
		c.warn("Usage: buy <item>")
		return
	}
	id := parsed.RawArgs
	for _, u := range c.game.Shop().All() {
		if strings.EqualFold(u.ID, id) || strings.EqualFold(u.Name, id) {
			id = u.ID
			break
		}
	}
	c.write(RenderResult(c.game.Purchase(ctx, id)))
}

func (c *Console) travel(ctx context.Context, parsed command.ParseResult) {
	if parsed.RawArgs == "" {
		c.warn("Usage: travel <location>")
		return
	}
	var dest location.ID
	for _, v := range c.game.Locations() {
		if strings.EqualFold(string(v.Location.ID), parsed.RawArgs) || strings.EqualFold(v.Location.Name, parsed.RawArgs) {
			dest = v.Location.ID
			break
		}
	}
	if dest == "" {
		c.warn("You have never heard of %q.", parsed.RawArgs)
		return
	}
	res := c.game.ChangeLocation(ctx, dest)
	c.write(RenderResult(res))
	if res.Success {
		c.write(Colorize(White, c.game.CurrentLocation().Description) + "\n")
	}
}

func (c *Console) settings(ctx context.Context, parsed command.ParseResult) {
	s := c.game.Settings()
	if len(parsed.Args) == 0 {
		c.write(RenderSettings(s))
		return
	}
	if len(parsed.Args) != 2 {
		c.warn("Usage: settings [sound|animations|autosave on|off]")
		return
	}
	var value bool
	switch strings.ToLower(parsed.Args[1]) {
	case "on", "true", "yes":
		value = true
	case "off", "false", "no":
		value = false
	default:
		c.warn("Expected on or off, got %q.", parsed.Args[1])
		return
	}
	switch strings.ToLower(parsed.Args[0]) {
	case "sound":
		s.SoundEnabled = value
	case "animations":
		s.AnimationsEnabled = value
	case "autosave":
		s.AutosaveEnabled = value
	default:
		c.warn("Unknown setting %q.", parsed.Args[0])
		return
	}
	if !c.game.UpdateSettings(ctx, s) {
		c.warn("Settings changed but could not be saved.")
	}
	c.write(RenderSettings(s))
}

func (c *Console) reset(ctx context.Context, parsed command.ParseResult) {
	if len(parsed.Args) != 1 || !strings.EqualFold(parsed.Args[0], "confirm") {
		c.warn("This deletes your save. Type 'reset confirm' to continue.")
		return
	}
	if err := c.game.Reset(ctx); err != nil {
		c.logger.Error("reset", zap.Error(err))
		c.warn("The game was reset but the old save could not be deleted.")
		return
	}
	c.write(Colorize(Yellow, "Your story begins again. Type 'create <name>' to start.") + "\n")
}
