package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/chariotsofiron/colonizer/internal/applog"
	"github.com/chariotsofiron/colonizer/internal/catanlog"
	"github.com/chariotsofiron/colonizer/internal/controller"
	"github.com/chariotsofiron/colonizer/internal/replay"
	"github.com/chariotsofiron/colonizer/internal/resource"
)

var (
	version = "dev"
	commit  = "local"
)

func main() {
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	replayPath := flag.String("replay", "", "Tail a local chat-log text file instead of a live browser session")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: colonizer [-debug] [-replay path] <your-display-name>")
		os.Exit(2)
	}
	username := flag.Arg(0)

	applog.Init(*debugFlag)
	slog.Info("starting", "version", version, "commit", commit, "username", username)

	if code := run(username, *replayPath); code != 0 {
		os.Exit(code)
	}
}

func run(username, replayPath string) (exitCode int) {
	ctrl := controller.New()
	parser := catanlog.NewParserWithUsername(username)

	defer func() {
		if r := recover(); r != nil {
			slog.Error("fatal error", "error", r)
			exitCode = 1
		}
	}()

	if replayPath != "" {
		runReplay(ctrl, parser, replayPath)
	} else {
		runStdin(ctrl, parser)
	}

	printTable(ctrl)
	return 0
}

// runStdin reads pre-extracted chat text from stdin, one message per line.
// This is the path a browser collaborator feeds once it has converted the
// rendered log's HTML to plain text.
func runStdin(ctrl *controller.Controller, parser *catanlog.Parser) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if ev, ok := parser.ParseLine(scanner.Text()); ok {
			ctrl.Process(ev)
		}
	}
	if err := scanner.Err(); err != nil {
		slog.Warn("reading stdin", "error", err)
	}
}

// runReplay tails a local chat-log file, blocking until interrupted. Used
// for development and testing without a live browser collaborator.
func runReplay(ctrl *controller.Controller, parser *catanlog.Parser, path string) {
	done := make(chan struct{})
	w, err := replay.New(path, replay.Config{
		Parser: parser,
		OnEvents: func(events []catanlog.Event) {
			for _, ev := range events {
				ctrl.Process(ev)
			}
			printTable(ctrl)
		},
		OnError: func(err error) {
			slog.Warn("replay watcher error", "error", err)
		},
	})
	if err != nil {
		slog.Error("starting replay watcher", "error", err)
		panic(err)
	}
	if err := w.Start(); err != nil {
		slog.Error("starting replay watcher", "error", err)
		panic(err)
	}
	defer w.Stop()

	<-done
}

func printTable(ctrl *controller.Controller) {
	table := ctrl.Table()
	fmt.Printf("%-6s", "seat")
	for _, r := range resource.All {
		fmt.Printf(" %10s", r)
	}
	fmt.Println()

	for seat := range table {
		fmt.Printf("%-6d", seat)
		for _, r := range resource.All {
			cell := table[seat][r]
			fmt.Printf(" %3d/%4.1f/%3.0f%%", cell.Sure, cell.Expected, cell.RobChance*100)
		}
		fmt.Println()
	}
}
