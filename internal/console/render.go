package console

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/wonders/internal/game/activity"
	"github.com/cory-johannsen/wonders/internal/game/character"
	"github.com/cory-johannsen/wonders/internal/game/command"
	"github.com/cory-johannsen/wonders/internal/game/gametime"
	"github.com/cory-johannsen/wonders/internal/game/inventory"
	"github.com/cory-johannsen/wonders/internal/gameserver"
	"github.com/cory-johannsen/wonders/internal/save"
)

// categoryOrder is the order help lists command categories in.
var categoryOrder = []string{
	command.CategoryCharacter,
	command.CategoryActivity,
	command.CategoryTravel,
	command.CategorySystem,
}

var daylightColor = map[gametime.Daylight]string{
	gametime.Dawn:  BrightMagenta,
	gametime.Day:   BrightYellow,
	gametime.Dusk:  Magenta,
	gametime.Night: Blue,
}

var kindColor = map[gameserver.EventKind]string{
	gameserver.KindInfo:      White,
	gameserver.KindSuccess:   Green,
	gameserver.KindWarning:   Red,
	gameserver.KindLevelUp:   BrightYellow,
	gameserver.KindDiscovery: BrightMagenta,
	gameserver.KindTime:      Cyan,
}

// RenderCharacter formats the character sheet.
func RenderCharacter(c *character.Character) string {
	var b strings.Builder
	class := string(c.Class)
	if class == "" {
		class = "Commoner"
	}
	b.WriteString(Colorf(BrightYellow, "%s the %s", c.Name, class))
	b.WriteString(Colorf(Dim, "  (level %d)", c.Level))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n", Colorize(Red, "Health: "), meter(c.Health, c.MaxHealth))
	fmt.Fprintf(&b, "  %s %s\n", Colorize(Green, "Stamina:"), meter(c.Stamina, c.MaxStamina))
	fmt.Fprintf(&b, "  %s %s\n", Colorize(Yellow, "Gold:   "), meter(c.Gold, c.MaxGold))
	fmt.Fprintf(&b, "  %s %d/%d\n", Colorize(Cyan, "XP:     "), c.Experience, c.ExperienceToNextLevel)
	b.WriteString("  ")
	c.Stats.Each(func(name string, value int) {
		fmt.Fprintf(&b, "%s %d  ", Colorize(Dim, name[:3]), value)
	})
	b.WriteString("\n")
	return b.String()
}

func meter(cur, limit int) string {
	return fmt.Sprintf("%d/%d", cur, limit)
}

// RenderResult formats the outcome of an activity. Successful lines are
// colored by what they announce; failures are red.
func RenderResult(res activity.Result) string {
	var b strings.Builder
	lines := res.Events
	if res.Message != "" && !contains(lines, res.Message) {
		lines = append(append([]string{}, lines...), res.Message)
	}
	for _, line := range lines {
		color := Green
		switch {
		case !res.Success:
			color = Red
		case line == activity.LevelUpMessage:
			color = BrightYellow
		case res.Discovered != nil && line == activity.DiscoveryMessage(res.Discovered):
			color = BrightMagenta
		}
		b.WriteString(Colorize(color, line))
		b.WriteString("\n")
	}
	if len(res.Offers) > 0 {
		b.WriteString(RenderOffers(res.Offers))
	}
	return b.String()
}

func contains(lines []string, s string) bool {
	for _, l := range lines {
		if l == s {
			return true
		}
	}
	return false
}

// RenderOffers formats the shop listing.
func RenderOffers(offers []activity.Offer) string {
	var b strings.Builder
	for _, o := range offers {
		u := o.Upgrade
		var status string
		switch {
		case o.Owned:
			status = Colorize(Dim, "owned")
		case o.Locked:
			status = Colorf(Dim, "requires %s", u.Requires)
		case o.Affordable:
			status = Colorize(BrightGreen, "available")
		default:
			status = Colorize(Red, "too expensive")
		}
		fmt.Fprintf(&b, "  %s%-12s%s %s%3d gold%s  %s\n",
			BrightCyan, u.ID, Reset, Yellow, u.Cost, Reset, status)
		fmt.Fprintf(&b, "    %s (+%d max gold)\n", u.Name, u.MaxGoldBonus)
	}
	return b.String()
}

// RenderMap lists discovered locations with their actions and counts the
// ones still hidden.
func RenderMap(views []gameserver.LocationView) string {
	var b strings.Builder
	hidden := 0
	for _, v := range views {
		if !v.Discovery.Discovered {
			hidden++
			continue
		}
		marker := "  "
		name := Colorize(White, v.Location.Name)
		if v.Current {
			marker = Colorize(BrightGreen, "> ")
			name = Colorize(BrightYellow, v.Location.Name)
		}
		actions := make([]string, 0, len(v.Location.Actions))
		for _, a := range v.Location.Actions {
			actions = append(actions, string(a))
		}
		fmt.Fprintf(&b, "%s%s %s\n", marker, name, Colorf(Dim, "[%s] %s", v.Location.ID, strings.Join(actions, ", ")))
	}
	if hidden > 0 {
		b.WriteString(Colorf(Dim, "  %d more to discover...", hidden))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderEvents formats event log entries, oldest first.
func RenderEvents(events []gameserver.Event) string {
	if len(events) == 0 {
		return Colorize(Dim, "Nothing has happened yet.") + "\n"
	}
	var b strings.Builder
	for _, e := range events {
		color, ok := kindColor[e.Kind]
		if !ok {
			color = White
		}
		fmt.Fprintf(&b, "%s %s\n", Colorf(Dim, "[%s]", e.GameTime), Colorize(color, e.Message))
	}
	return b.String()
}

// RenderTime formats the calendar position with its daylight band.
func RenderTime(t gametime.GameTime) string {
	d := t.Daylight()
	return Colorf(daylightColor[d], "%s (%s)", t.String(), d) + "\n"
}

// RenderDaylightChange announces a transition into band d.
func RenderDaylightChange(d gametime.Daylight) string {
	var msg string
	switch d {
	case gametime.Dawn:
		msg = "The sky pales over the rooftops. Dawn breaks."
	case gametime.Day:
		msg = "The city wakes and its streets fill with people."
	case gametime.Dusk:
		msg = "Lamplighters make their rounds as dusk settles."
	default:
		msg = "Night falls over the City of Wonders."
	}
	return Colorize(daylightColor[d], msg) + "\n"
}

// RenderInventory lists owned upgrades by display name.
func RenderInventory(ids []string, shop *inventory.Registry) string {
	if len(ids) == 0 {
		return Colorize(Dim, "You own nothing but the clothes on your back.") + "\n"
	}
	var b strings.Builder
	for _, id := range ids {
		name := id
		if u, ok := shop.Upgrade(id); ok {
			name = u.Name
		}
		fmt.Fprintf(&b, "  %s\n", Colorize(BrightCyan, name))
	}
	return b.String()
}

// RenderSettings formats the player's preferences.
func RenderSettings(s save.Settings) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  sound       %s\n", onOff(s.SoundEnabled))
	fmt.Fprintf(&b, "  animations  %s\n", onOff(s.AnimationsEnabled))
	fmt.Fprintf(&b, "  autosave    %s\n", onOff(s.AutosaveEnabled))
	return b.String()
}

func onOff(v bool) string {
	if v {
		return Colorize(Green, "on")
	}
	return Colorize(Red, "off")
}

// RenderHelp lists every command grouped by category.
func RenderHelp(reg *command.Registry) string {
	var b strings.Builder
	cats := reg.CommandsByCategory()
	for _, cat := range categoryOrder {
		cmds := cats[cat]
		if len(cmds) == 0 {
			continue
		}
		b.WriteString(Colorize(BrightYellow, strings.ToUpper(cat[:1])+cat[1:]))
		b.WriteString("\n")
		for _, cmd := range cmds {
			usage := cmd.Name
			if cmd.Usage != "" {
				usage += " " + cmd.Usage
			}
			fmt.Fprintf(&b, "  %s%-28s%s %s", BrightCyan, usage, Reset, cmd.Help)
			if len(cmd.Aliases) > 0 {
				b.WriteString(Colorf(Dim, " (%s)", strings.Join(cmd.Aliases, ", ")))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
