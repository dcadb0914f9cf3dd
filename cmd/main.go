package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/goserg/tournament/internal/bracket"
	"github.com/goserg/tournament/internal/config"
	"github.com/goserg/tournament/internal/domain"
	"github.com/goserg/tournament/internal/logger"
	"github.com/goserg/tournament/internal/notify"
	"github.com/goserg/tournament/internal/progression"
	"github.com/goserg/tournament/internal/service"
	"github.com/goserg/tournament/internal/storage/sqlite"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

type app struct {
	service *service.TournamentService
	close   func() error
}

func run() error {
	return newApp().Run(os.Args)
}

func newApp() *cli.App {
	a := &app{}
	return &cli.App{
		Name:  "tournament",
		Usage: "single-elimination tournament manager",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: config.DefaultPath, Usage: "path to the server config"},
		},
		Before: a.setup,
		After: func(*cli.Context) error {
			if a.close != nil {
				return a.close()
			}
			return nil
		},
		Commands: []*cli.Command{
			a.createCommand(),
			a.registerCommand(),
			a.unregisterCommand(),
			a.generateCommand(),
			a.resultCommand(),
			a.advanceCommand(),
			{
				Name:   "remaining",
				Usage:  "generate every round whose previous round is complete",
				Flags:  []cli.Flag{tournamentFlag},
				Action: a.bracketStep((*service.TournamentService).GenerateRemainingRounds),
			},
			{
				Name:   "third-place",
				Usage:  "create the third-place match once both semifinals are decided",
				Flags:  []cli.Flag{tournamentFlag},
				Action: a.bracketStep((*service.TournamentService).EnsureThirdPlace),
			},
			{
				Name:   "show",
				Usage:  "print the bracket",
				Flags:  []cli.Flag{tournamentFlag},
				Action: a.bracketStep((*service.TournamentService).GetBracket),
			},
			a.finalizeCommand(),
			a.planCommand(),
			a.promoteCommand(),
			a.leaderboardCommand(),
			a.glickoCommand(),
		},
	}
}

func (a *app) setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	l := logger.New(cfg.Server)
	st, err := sqlite.New(l, cfg.Storage)
	if err != nil {
		return err
	}
	hub := notify.NewHub(l)
	hub.Subscribe(notify.NewLogNotifier(l),
		domain.EventBracketGenerated,
		domain.EventRoundGenerated,
		domain.EventMatchAdvanced,
		domain.EventTournamentCompleted,
		domain.EventPlayerPromoted,
	)
	a.service = service.New(l, st, hub, cfg.Engine)
	a.close = st.Close
	return nil
}

var tournamentFlag = &cli.StringFlag{Name: "tournament", Aliases: []string{"t"}, Usage: "tournament id", Required: true}

func parseID(c *cli.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.String(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s id: %w", name, err)
	}
	return id, nil
}

func (a *app) createCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "create a tournament open for registration",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Required: true},
			&cli.StringFlag{Name: "tier", Value: string(domain.TierK)},
			&cli.StringFlag{Name: "format", Value: string(domain.Format9Ball)},
			&cli.IntFlag{Name: "max", Value: 16, Usage: "maximum participants"},
			&cli.Int64Flag{Name: "fee", Usage: "entry fee"},
		},
		Action: func(c *cli.Context) error {
			t, err := a.service.CreateTournament(c.Context, domain.Tournament{
				Name:            c.String("name"),
				Tier:            domain.Tier(c.String("tier")),
				GameFormat:      domain.GameFormat(c.String("format")),
				MaxParticipants: c.Int("max"),
				EntryFee:        c.Int64("fee"),
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, t.ID)
			return nil
		},
	}
}

func (a *app) registerCommand() *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "register a player, a new player id is generated when none is given",
		Flags: []cli.Flag{
			tournamentFlag,
			&cli.StringFlag{Name: "player", Aliases: []string{"p"}},
			&cli.StringFlag{Name: "payment", Value: string(domain.PaymentPaid)},
		},
		Action: func(c *cli.Context) error {
			tid, err := parseID(c, "tournament")
			if err != nil {
				return err
			}
			pid := uuid.New()
			if c.String("player") != "" {
				if pid, err = parseID(c, "player"); err != nil {
					return err
				}
			}
			r, err := a.service.Register(c.Context, tid, pid, domain.PaymentStatus(c.String("payment")))
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, r.PlayerID)
			return nil
		},
	}
}

func (a *app) unregisterCommand() *cli.Command {
	return &cli.Command{
		Name:  "unregister",
		Usage: "withdraw a player before the bracket is generated",
		Flags: []cli.Flag{
			tournamentFlag,
			&cli.StringFlag{Name: "player", Aliases: []string{"p"}, Required: true},
		},
		Action: func(c *cli.Context) error {
			tid, err := parseID(c, "tournament")
			if err != nil {
				return err
			}
			pid, err := parseID(c, "player")
			if err != nil {
				return err
			}
			return a.service.RemoveRegistration(c.Context, tid, pid)
		},
	}
}

func (a *app) generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "seed the bracket",
		Flags: []cli.Flag{
			tournamentFlag,
			&cli.StringFlag{Name: "method", Usage: "ranked, random or registration_order"},
			&cli.BoolFlag{Name: "force", Usage: "replace a bracket nobody has played in yet"},
		},
		Action: func(c *cli.Context) error {
			tid, err := parseID(c, "tournament")
			if err != nil {
				return err
			}
			method := bracket.Method(c.String("method"))
			if method != "" && !method.Valid() {
				return fmt.Errorf("%w: %s", bracket.ErrUnknownMethod, method)
			}
			b, err := a.service.GenerateBracket(c.Context, tid, service.GenerateOptions{
				Method: method,
				Force:  c.Bool("force"),
			})
			if err != nil {
				return err
			}
			printBracket(c, b)
			return nil
		},
	}
}

func (a *app) resultCommand() *cli.Command {
	return &cli.Command{
		Name:  "result",
		Usage: "record a match result",
		Flags: []cli.Flag{
			tournamentFlag,
			&cli.IntFlag{Name: "round", Required: true},
			&cli.IntFlag{Name: "match", Required: true},
			&cli.StringFlag{Name: "winner", Required: true},
			&cli.IntFlag{Name: "score1"},
			&cli.IntFlag{Name: "score2"},
		},
		Action: func(c *cli.Context) error {
			tid, err := parseID(c, "tournament")
			if err != nil {
				return err
			}
			winner, err := parseID(c, "winner")
			if err != nil {
				return err
			}
			b, err := a.service.RecordResult(c.Context, tid, progression.Result{
				Match:        domain.MatchKey{Round: c.Int("round"), Number: c.Int("match")},
				ScorePlayer1: c.Int("score1"),
				ScorePlayer2: c.Int("score2"),
				Winner:       winner,
			})
			if err != nil {
				return err
			}
			printBracket(c, b)
			return nil
		},
	}
}

func (a *app) advanceCommand() *cli.Command {
	return &cli.Command{
		Name:  "advance",
		Usage: "generate the round after a completed round",
		Flags: []cli.Flag{
			tournamentFlag,
			&cli.IntFlag{Name: "round", Required: true},
		},
		Action: func(c *cli.Context) error {
			tid, err := parseID(c, "tournament")
			if err != nil {
				return err
			}
			b, err := a.service.AdvanceRound(c.Context, tid, c.Int("round"))
			if err != nil {
				return err
			}
			printBracket(c, b)
			return nil
		},
	}
}

type bracketFunc func(*service.TournamentService, context.Context, uuid.UUID) (domain.Bracket, error)

func (a *app) bracketStep(fn bracketFunc) cli.ActionFunc {
	return func(c *cli.Context) error {
		tid, err := parseID(c, "tournament")
		if err != nil {
			return err
		}
		b, err := fn(a.service, c.Context, tid)
		if err != nil {
			return err
		}
		printBracket(c, b)
		return nil
	}
}

func (a *app) finalizeCommand() *cli.Command {
	return &cli.Command{
		Name:  "finalize",
		Usage: "pay out a completed bracket",
		Flags: []cli.Flag{tournamentFlag},
		Action: func(c *cli.Context) error {
			tid, err := parseID(c, "tournament")
			if err != nil {
				return err
			}
			payouts, err := a.service.Finalize(c.Context, tid)
			if errors.Is(err, service.ErrAlreadyFinalized) {
				fmt.Fprintln(c.App.Writer, "already finalized")
				return nil
			}
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "POS\tPLAYER\tCASH\tELO\tSPA")
			for _, p := range payouts {
				fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\n", p.Position, p.PlayerID, p.CashPrize, p.EloPoints, p.SpaPoints)
			}
			return w.Flush()
		},
	}
}

func (a *app) planCommand() *cli.Command {
	return &cli.Command{
		Name:  "plan",
		Usage: "calculate and store the reward plan",
		Flags: []cli.Flag{tournamentFlag},
		Action: func(c *cli.Context) error {
			tid, err := parseID(c, "tournament")
			if err != nil {
				return err
			}
			plan, v, err := a.service.PlanRewards(c.Context, tid)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "total prize\t%d\n", plan.TotalPrize)
			fmt.Fprintln(w, "POS\tCASH\tELO\tSPA")
			for _, p := range plan.Positions {
				fmt.Fprintf(w, "%d\t%d\t%d\t%d\n", p.Position, p.CashPrize, p.EloPoints, p.SpaPoints)
			}
			for _, award := range plan.SpecialAwards {
				fmt.Fprintf(w, "%s\t%d\t\t\n", award.Name, award.CashPrize)
			}
			for _, warning := range v.Warnings {
				fmt.Fprintf(w, "warning\t%s\t\t\n", warning)
			}
			return w.Flush()
		},
	}
}

func (a *app) promoteCommand() *cli.Command {
	return &cli.Command{
		Name:  "promote",
		Usage: "promote a player who qualifies for the next rank",
		Flags: []cli.Flag{&cli.StringFlag{Name: "player", Aliases: []string{"p"}, Required: true}},
		Action: func(c *cli.Context) error {
			pid, err := parseID(c, "player")
			if err != nil {
				return err
			}
			r, err := a.service.ApplyPromotion(c.Context, pid)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, r.RankCode)
			return nil
		},
	}
}

func (a *app) leaderboardCommand() *cli.Command {
	return &cli.Command{
		Name:  "leaderboard",
		Usage: "list player rankings",
		Action: func(c *cli.Context) error {
			rankings, err := a.service.Leaderboard(c.Context)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PLAYER\tRANK\tELO\tSPA\tMATCHES\tWINS")
			for _, r := range rankings {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\n", r.PlayerID, r.RankCode, r.EloPoints, r.SpaPoints, r.TotalMatches, r.Wins)
			}
			return w.Flush()
		},
	}
}

func (a *app) glickoCommand() *cli.Command {
	return &cli.Command{
		Name:  "glicko",
		Usage: "rate all played matches with glicko-2",
		Action: func(c *cli.Context) error {
			ratings, err := a.service.Glicko2Standings(c.Context)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PLAYER\tRATING\tRD\tMATCHES")
			for _, r := range ratings {
				fmt.Fprintf(w, "%s\t%.0f\t%.0f\t%d\n", r.PlayerID, r.Rating, r.Deviation, r.Matches)
			}
			return w.Flush()
		},
	}
}

func printBracket(c *cli.Context, b domain.Bracket) {
	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "bracket\t%s\t%s\tround %d/%d\n", b.ID, b.Status, b.CurrentRound, b.TotalRounds)
	for _, m := range b.Matches {
		label := m.Key.String()
		if m.IsThirdPlace {
			label += " (3rd)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d:%d\t%s\n", label, player(m.Player1), player(m.Player2), m.ScorePlayer1, m.ScorePlayer2, m.Status)
	}
	_ = w.Flush()
}

func player(id uuid.UUID) string {
	if id == uuid.Nil {
		return "-"
	}
	return id.String()
}
