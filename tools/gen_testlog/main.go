// gen_testlog generates synthetic colonist.io chat logs for testing the
// replay harness and belief-state engine without a live game.
//
// It picks a fixed cast of players, then emits a random sequence of resource
// events (starting resources, gains, discards, dice rolls, trade offers,
// player and bank trades, Year of Plenty, unknown-card steals, purchases)
// rendered in the exact chat grammar catanlog.Parser expects. No monopoly
// lines are generated.
// Each run is tagged with a UUID so generated logs can be told apart.
//
// Usage:
//
//	go run ./tools/gen_testlog [flags]
//
// Flags:
//
//	--output      output file path (default: "./testdata/generated/game.log")
//	--players     number of players, 2-6 (default: 4)
//	--lines       number of chat lines to generate (default: 200)
//	--seed        random seed; 0 = use current time (default: 0)
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var resourceNames = []string{"lumber", "brick", "wool", "grain", "ore"}

// cardList renders n random resource tokens concatenated with no separator,
// matching how the game client's HTML renders a hand of icons as text.
func cardList(rng *rand.Rand, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString(resourceNames[rng.Intn(len(resourceNames))])
	}
	return b.String()
}

func randomItem(rng *rand.Rand) string {
	items := []string{"road", "settlement", "city", "development card"}
	return items[rng.Intn(len(items))]
}

// genLine produces one random chat line naming one of the two players at
// indices a and b in names.
func genLine(rng *rand.Rand, names []string, a, b int) string {
	switch rng.Intn(9) {
	case 0:
		return fmt.Sprintf("%s got: %s", names[a], cardList(rng, 1+rng.Intn(3)))
	case 1:
		return fmt.Sprintf("%s discarded: %s", names[a], cardList(rng, 1+rng.Intn(4)))
	case 2:
		return fmt.Sprintf("%s built a %s", names[a], randomItem(rng))
	case 3:
		return fmt.Sprintf("%s stole card from: %s", names[a], names[b])
	case 4:
		return fmt.Sprintf("%s wants to give: %s for: %s", names[a], cardList(rng, 1+rng.Intn(2)), cardList(rng, 1+rng.Intn(2)))
	case 5:
		return fmt.Sprintf("%s traded: %s for: %s with: %s", names[a], cardList(rng, 1), cardList(rng, 1), names[b])
	case 6:
		return fmt.Sprintf("%s took from bank: %s", names[a], cardList(rng, 2))
	case 7:
		return fmt.Sprintf("%s gave bank: %s and took %s", names[a], cardList(rng, 4), cardList(rng, 1))
	default:
		d1, d2 := 1+rng.Intn(6), 1+rng.Intn(6)
		return fmt.Sprintf("%s rolled: dice_%d dice_%d", names[a], d1, d2)
	}
}

func generate(w *os.File, names []string, lineCount int, rng *rand.Rand) error {
	runID := uuid.New()
	if _, err := fmt.Fprintf(w, "# run %s\n", runID); err != nil {
		return err
	}

	for i, name := range names {
		if _, err := fmt.Fprintf(w, "%s received starting resources: %s\n", name, cardList(rng, 2+rng.Intn(2))); err != nil {
			return err
		}
		_ = i
	}

	for i := 0; i < lineCount; i++ {
		a := rng.Intn(len(names))
		b := rng.Intn(len(names))
		for b == a {
			b = rng.Intn(len(names))
		}
		if _, err := fmt.Fprintln(w, genLine(rng, names, a, b)); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	output := flag.String("output", filepath.Join("testdata", "generated", "game.log"), "output file path")
	players := flag.Int("players", 4, "number of players (2-6)")
	lines := flag.Int("lines", 200, "number of chat lines to generate")
	seed := flag.Int64("seed", 0, "random seed (0 = use current Unix time)")
	flag.Parse()

	if *players < 2 || *players > 6 {
		fmt.Fprintln(os.Stderr, "error: --players must be between 2 and 6")
		os.Exit(1)
	}

	actualSeed := *seed
	if actualSeed == 0 {
		actualSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(actualSeed))
	fmt.Printf("seed: %d\n", actualSeed)

	names := make([]string, *players)
	for i := range names {
		names[i] = fmt.Sprintf("Guest%d", i)
	}

	if err := os.MkdirAll(filepath.Dir(*output), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "error: cannot create output dir: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Create(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: cannot create output file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := generate(f, names, *lines, rng); err != nil {
		fmt.Fprintf(os.Stderr, "error generating log: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %d lines to %s\n", *lines, *output)
}
