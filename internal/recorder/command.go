package recorder

import "strings"

type command int

const (
	cmdDone command = iota + 1
	cmdUndo
	cmdShow
	cmdPreview
	cmdLegal
	cmdHelp
)

var commands = map[string]command{
	"done":    cmdDone,
	"quit":    cmdDone,
	"exit":    cmdDone,
	"undo":    cmdUndo,
	"show":    cmdShow,
	"preview": cmdPreview,
	"legal":   cmdLegal,
	"help":    cmdHelp,
}

// parseCommand matches entry-loop commands case-insensitively. Move text never
// collides with a command word.
func parseCommand(input string) (command, bool) {
	cmd, ok := commands[strings.ToLower(strings.TrimSpace(input))]
	return cmd, ok
}
