package terminal

import (
	termbox "github.com/nsf/termbox-go"

	"sokoban/game/engine"
)

// CommandKind classifies a resolved input command
type CommandKind int

const (
	CommandNone CommandKind = iota
	CommandMove
	CommandReset
	CommandQuit
)

// String returns the string representation of the command kind
func (k CommandKind) String() string {
	switch k {
	case CommandNone:
		return "none"
	case CommandMove:
		return "move"
	case CommandReset:
		return "reset"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Command is a resolved input command. Direction is meaningful only when
// Kind is CommandMove.
type Command struct {
	Kind      CommandKind
	Direction engine.Direction
}

// CommandForEvent maps one termbox key event to a game command. Keys
// outside the control set resolve to CommandNone and are ignored by the
// game loop.
func CommandForEvent(ev termbox.Event) Command {
	if ev.Type != termbox.EventKey {
		return Command{Kind: CommandNone}
	}

	switch ev.Key {
	case termbox.KeyArrowUp:
		return Command{Kind: CommandMove, Direction: engine.Up}
	case termbox.KeyArrowDown:
		return Command{Kind: CommandMove, Direction: engine.Down}
	case termbox.KeyArrowLeft:
		return Command{Kind: CommandMove, Direction: engine.Left}
	case termbox.KeyArrowRight:
		return Command{Kind: CommandMove, Direction: engine.Right}
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return Command{Kind: CommandQuit}
	}

	switch ev.Ch {
	case 'w', 'W':
		return Command{Kind: CommandMove, Direction: engine.Up}
	case 's', 'S':
		return Command{Kind: CommandMove, Direction: engine.Down}
	case 'a', 'A':
		return Command{Kind: CommandMove, Direction: engine.Left}
	case 'd', 'D':
		return Command{Kind: CommandMove, Direction: engine.Right}
	case 'r', 'R':
		return Command{Kind: CommandReset}
	case 'q', 'Q':
		return Command{Kind: CommandQuit}
	default:
		return Command{Kind: CommandNone}
	}
}

// ReadCommand blocks until the next key event resolves to a command,
// discarding keys outside the control set
func ReadCommand() Command {
	for {
		cmd := CommandForEvent(termbox.PollEvent())
		if cmd.Kind != CommandNone {
			return cmd
		}
	}
}
