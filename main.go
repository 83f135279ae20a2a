// Command sokoban runs a terminal-rendered Sokoban puzzle.
//
// The default command loads a level and starts the interactive game loop.
// The validate command checks every level file in the levels directory,
// and list shows the available levels. The levels directory is resolved
// from the --levels-dir flag, the LEVELS_DIR environment variable (also
// honored from a .env file), or the bundled levels/ directory.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	cli "github.com/urfave/cli/v3"

	"sokoban/game/level"
	"sokoban/game/session"
	"sokoban/terminal"
	"sokoban/validate"
)

const (
	version = "1.0.0"
	appName = "sokoban"
)

func main() {
	// Load .env if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cmd := &cli.Command{
		Name:    appName,
		Usage:   "push the crates onto the goals",
		Version: version,
		Flags:   []cli.Flag{levelsDirFlag()},
		Commands: []*cli.Command{
			{
				Name:  "play",
				Usage: "start the game (default command)",
				Flags: []cli.Flag{
					levelsDirFlag(),
					&cli.StringFlag{
						Name:  "level",
						Value: "default",
						Usage: "name of the level to play",
					},
				},
				Action: runPlay,
			},
			{
				Name:   "validate",
				Usage:  "validate every level file in the levels directory",
				Flags:  []cli.Flag{levelsDirFlag()},
				Action: runValidate,
			},
			{
				Name:   "list",
				Usage:  "list available levels",
				Flags:  []cli.Flag{levelsDirFlag()},
				Action: runList,
			},
		},
		// Bare `sokoban` plays the default level
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return play(cmd.String("levels-dir"), "default")
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// levelsDirFlag returns a fresh levels-dir flag; each command gets its
// own instance so flag state is never shared
func levelsDirFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "levels-dir",
		Value:   "levels",
		Usage:   "directory containing level JSON files",
		Sources: cli.EnvVars("LEVELS_DIR"),
	}
}

func runPlay(ctx context.Context, cmd *cli.Command) error {
	return play(cmd.String("levels-dir"), cmd.String("level"))
}

// play loads the level, creates the session and hands control to the
// terminal loop. A bad level aborts before any screen state is touched.
func play(levelsDir, name string) error {
	manager, err := level.NewManager(levelsDir)
	if err != nil {
		return err
	}

	lvl, err := manager.Load(name)
	if err != nil {
		if errors.Is(err, level.ErrInvalidLevel) {
			return fmt.Errorf("cannot start: bad level data: %w", err)
		}
		return err
	}

	sess, err := session.New(lvl)
	if err != nil {
		return fmt.Errorf("cannot start: bad level data: %w", err)
	}

	if err := terminal.Run(sess); err != nil {
		return err
	}

	if sess.Solved() {
		fmt.Printf("Solved %q in %d moves.\n", lvl.Name, sess.Moves())
	}
	return nil
}

func runValidate(ctx context.Context, cmd *cli.Command) error {
	results, err := validate.Dir(cmd.String("levels-dir"))
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("no level files found in %s", cmd.String("levels-dir"))
	}
	if !validate.Report(os.Stdout, results) {
		return fmt.Errorf("validation failed")
	}
	return nil
}

func runList(ctx context.Context, cmd *cli.Command) error {
	manager, err := level.NewManager(cmd.String("levels-dir"))
	if err != nil {
		return err
	}

	infos, err := manager.List()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("No levels found.")
		return nil
	}

	for _, info := range infos {
		fmt.Printf("%-12s %s (%dx%d, %d goals)", info.File, info.Name, info.Width, info.Height, info.Goals)
		if info.Description != "" {
			fmt.Printf("  %s", info.Description)
		}
		fmt.Println()
	}
	return nil
}
