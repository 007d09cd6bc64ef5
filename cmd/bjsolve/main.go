package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack-solver/internal/config"
	"github.com/lox/blackjack-solver/internal/ev"
	"github.com/lox/blackjack-solver/internal/session"
	"github.com/lox/blackjack-solver/internal/shoe"
)

type CLI struct {
	Hand   string `arg:"" help:"Player's cards as rank characters, e.g. 'T6' or 'AA'" required:""`
	Upcard string `arg:"" help:"Dealer's visible card rank (2-9, T, J, Q, K, A)" required:""`

	Seen      string `short:"r" help:"Other cards already out of the shoe, e.g. '5TK'"`
	Decks     int    `help:"Number of decks in the shoe (overrides config)"`
	Trials    int    `short:"i" help:"Number of Monte Carlo trials per action (overrides config)"`
	Workers   int    `help:"Worker goroutines (overrides config, 0 = one per CPU)"`
	Seed      *int64 `help:"Random seed for reproducible results"`
	Config    string `short:"c" type:"path" default:"bjsolve.hcl" help:"HCL configuration file"`
	LaterTurn bool   `help:"This is not the first decision of the hand (disables Double Down and Split)"`
	SplitHand bool   `help:"The hand is the result of a split"`
	ShowShoe  bool   `help:"Show remaining shoe composition"`
	Verbose   bool   `short:"v" help:"Verbose logging"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	bestStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	runnerUpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Faint(true)

	restStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Faint(true)

	gapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("bjsolve"),
		kong.Description("Monte Carlo blackjack action solver against a depleting shoe"),
		kong.UsageOnError(),
	)

	level := log.WarnLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	if err := run(&cli, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}
}

func run(cli *CLI, logger *log.Logger) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cli.Decks > 0 {
		cfg.Rules.Decks = cli.Decks
	}
	if cli.Trials > 0 {
		cfg.Solver.Trials = cli.Trials
	}
	if cli.Workers > 0 {
		cfg.Solver.Workers = cli.Workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	playerRanks, err := shoe.ParseRanks(cli.Hand)
	if err != nil {
		return fmt.Errorf("parsing player hand: %w", err)
	}
	upcardRanks, err := shoe.ParseRanks(cli.Upcard)
	if err != nil {
		return fmt.Errorf("parsing upcard: %w", err)
	}
	if len(upcardRanks) != 1 {
		return fmt.Errorf("upcard must be a single rank, got %q", cli.Upcard)
	}
	seenRanks, err := shoe.ParseRanks(cli.Seen)
	if err != nil {
		return fmt.Errorf("parsing seen cards: %w", err)
	}

	sess := session.New(cfg, logger)
	if err := sess.DealUpcard(upcardRanks[0]); err != nil {
		return err
	}
	if err := sess.DealPlayer(playerRanks...); err != nil {
		return err
	}
	if len(seenRanks) > 0 {
		if err := sess.RemoveSeen(seenRanks...); err != nil {
			return err
		}
	}
	if cli.LaterTurn {
		sess.MarkDecisionTaken()
	}
	if cli.SplitHand {
		sess.MarkSplit()
	}

	seed := time.Now().UnixNano()
	if cli.Seed != nil {
		seed = *cli.Seed
	}

	start := time.Now()
	results, ranking, err := sess.Solve(context.Background(), seed)
	if err != nil {
		return err
	}
	duration := time.Since(start)

	displayHand(sess, upcardRanks[0])
	displayResults(results, ranking, cli.Verbose)
	displayCounts(sess, upcardRanks[0])
	if cli.ShowShoe {
		displayShoe(sess.Shoe())
	}

	fmt.Printf("\n%d trials per action in %v\n", cfg.Solver.Trials, duration.Truncate(time.Millisecond))
	return nil
}

func displayHand(sess *session.Session, upcard shoe.Rank) {
	h := sess.PlayerHand()
	fmt.Printf("%s %d", headerStyle.Render("player total"), h.Total())
	if h.IsSoft() {
		fmt.Print(" (soft)")
	}
	if h.IsBlackjack() {
		fmt.Print(" blackjack!")
	}
	fmt.Printf("  %s %s\n\n", headerStyle.Render("dealer shows"), upcard)
}

func displayResults(results []*ev.Result, ranking ev.Ranking, verbose bool) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("action"),
		headerStyle.Render("ev"),
		headerStyle.Render("±95%"),
		headerStyle.Render("time"))

	for _, r := range results {
		style := restStyle
		if r == ranking.Best {
			style = bestStyle
		} else if r == ranking.RunnerUp {
			style = runnerUpStyle
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			style.Render(r.Action.String()),
			style.Render(fmt.Sprintf("%+.5f", r.EV)),
			style.Render(fmt.Sprintf("%.5f", 1.96*r.Stat.StandardError())),
			style.Render(r.Elapsed.Truncate(time.Millisecond).String()))
	}
	w.Flush()

	fmt.Printf("\n%s %s", headerStyle.Render("optimal:"), bestStyle.Render(ranking.Best.Action.String()))
	if ranking.RunnerUp != nil {
		fmt.Printf("  %s vs %s",
			gapStyle.Render(fmt.Sprintf("edge %+.5f", ranking.Gap)),
			ranking.RunnerUp.Action)
	}
	fmt.Println()

	if verbose {
		for _, r := range results {
			points := make([]string, 0, len(r.Trace))
			for i, mean := range r.Trace {
				points = append(points, fmt.Sprintf("%d%%: %+.5f", (i+1)*10, mean))
			}
			fmt.Printf("%s convergence [%s]\n", r.Action, strings.Join(points, " | "))
		}
	}
}

func displayCounts(sess *session.Session, upcard shoe.Rank) {
	fmt.Printf("\nrunning count %+.1f | true count %+.1f | %.1f decks remaining\n",
		sess.RunningCount(), sess.TrueCount(), sess.Shoe().DecksRemaining())

	if upcard == shoe.Ace {
		insEV := sess.InsuranceEV()
		style := restStyle
		verdict := "unprofitable"
		if insEV > 0 {
			style = bestStyle
			verdict = "profitable"
		}
		fmt.Printf("insurance ev %s (%s)\n", style.Render(fmt.Sprintf("%+.5f", insEV)), verdict)
	}
}

func displayShoe(s *shoe.Shoe) {
	fmt.Printf("\n%s\n", headerStyle.Render("shoe composition"))
	max := 4 * s.Decks()
	for r := shoe.Ace; r >= shoe.Two; r-- {
		fmt.Printf(" %-7s %d of %d\n", r.Name(), s.Count(r), max)
	}
}
