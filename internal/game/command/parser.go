package command

import "strings"

// ParseResult is one console line split into a verb and what follows it.
type ParseResult struct {
	// Command is the verb, lowercased so aliases resolve regardless of case.
	Command string
	// Args are the words after the verb, case preserved.
	Args []string
	// RawArgs is everything after the verb with its inner spacing intact,
	// so multi-word names such as "Lady Marigold" survive.
	RawArgs string
}

// Parse splits a typed line on its first run of blanks.
//
// Postcondition: Command is empty only for a blank line; Args is nil when
// the verb stands alone.
func Parse(line string) ParseResult {
	words := strings.Fields(line)
	if len(words) == 0 {
		return ParseResult{}
	}
	res := ParseResult{Command: strings.ToLower(words[0])}
	if len(words) == 1 {
		return res
	}
	res.Args = words[1:]
	trimmed := strings.TrimSpace(line)
	res.RawArgs = strings.TrimSpace(trimmed[len(words[0]):])
	return res
}
