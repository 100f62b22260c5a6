package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"

	"github.com/goserg/tennisleague/internal/auth"
	"github.com/goserg/tennisleague/internal/domain"
	"github.com/goserg/tennisleague/internal/export"
	"github.com/goserg/tennisleague/internal/service"
)

type env struct {
	svc  *service.LeagueService
	sess auth.Session
	out  io.Writer
}

type command func(ctx context.Context, e env, args []string) error

var commands = map[string]command{
	"standings":      standingsCmd,
	"wo-stats":       woStatsCmd,
	"month":          monthCmd,
	"bracket":        bracketCmd,
	"record":         recordCmd,
	"reset":          resetCmd,
	"not-played":     notPlayedCmd,
	"bracket-record": bracketRecordCmd,
	"bracket-reset":  bracketResetCmd,
	"advance":        advanceCmd,
	"rename":         renameCmd,
	"add-player":     addPlayerCmd,
	"export-csv":     exportCSVCmd,
	"export":         exportCmd,
	"import":         importCmd,
	"backup":         backupCmd,
	"backups":        backupsCmd,
	"restore":        restoreCmd,
	"backup-delete":  backupDeleteCmd,
	"ratings":        ratingsCmd,
}

func usage(format string) error {
	return errors.New("usage: league " + format)
}

func table(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func standingsCmd(_ context.Context, e env, _ []string) error {
	w := table(e.out)
	fmt.Fprintln(w, "#\tID\tPlayer\tPts\tW\tL\tSets\tMonth Pts\tMonth W\tMonth L")
	for i, p := range e.svc.Standings() {
		fmt.Fprintf(w, "%d\t%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			i+1, p.ID, p.Name, p.TotalPoints, p.Wins, p.Losses, p.SetsWon,
			p.MonthlyPoints, p.MonthlyWins, p.MonthlyLosses)
	}
	return w.Flush()
}

// woStatsCmd lists walkover wins and losses, lifetime and for the current month.
func woStatsCmd(_ context.Context, e env, _ []string) error {
	w := table(e.out)
	fmt.Fprintln(w, "#\tID\tPlayer\tWO W\tWO L\tMonth WO W\tMonth WO L")
	for i, p := range e.svc.Standings() {
		fmt.Fprintf(w, "%d\t%d\t%s\t%d\t%d\t%d\t%d\n",
			i+1, p.ID, p.Name, p.TotalWoWins, p.TotalWoLosses, p.MonthlyWoWins, p.MonthlyWoLosses)
	}
	return w.Flush()
}

func monthCmd(_ context.Context, e env, _ []string) error {
	month, ok := e.svc.CurrentMonth()
	if !ok {
		fmt.Fprintln(e.out, "no season yet, run `league advance`")
		return nil
	}
	state := e.svc.Snapshot()
	fmt.Fprintf(e.out, "%s (month %d)\n", month.Name, month.ID)
	for _, g := range month.Groups {
		names := make([]string, 0, len(g.PlayerIDs))
		for _, id := range g.PlayerIDs {
			names = append(names, playerName(state, id))
		}
		fmt.Fprintf(e.out, "%s: %s\n", g.Name, strings.Join(names, ", "))
	}
	w := table(e.out)
	for _, m := range month.Matches {
		fmt.Fprintf(w, "%s\t%s\tvs\t%s\t%s\n", m.ID, playerName(state, m.Player1ID), playerName(state, m.Player2ID), result(state, m))
	}
	return w.Flush()
}

func result(state domain.AppState, m domain.Match) string {
	switch {
	case m.IsNotPlayed:
		return m.Score
	case !m.Decided():
		return "-"
	case m.IsWO:
		return playerName(state, *m.WinnerID) + " (W.O.)"
	}
	return playerName(state, *m.WinnerID) + " " + m.Score
}

func playerName(state domain.AppState, id int) string {
	if p, ok := state.Player(id); ok {
		return p.Name
	}
	return "#" + strconv.Itoa(id)
}

func bracketCmd(_ context.Context, e env, _ []string) error {
	b := e.svc.Bracket()
	if len(b) == 0 {
		fmt.Fprintln(e.out, "the Master bracket needs at least 16 players")
		return nil
	}
	state := e.svc.Snapshot()
	slot := func(id *int) string {
		if id == nil {
			return "TBD"
		}
		return playerName(state, *id)
	}
	w := table(e.out)
	for _, m := range b {
		winner := "-"
		if m.Decided() {
			winner = slot(m.WinnerID) + " " + m.Score
		}
		fmt.Fprintf(w, "%s\t%s\tvs\t%s\t%s\n", m.ID, slot(m.Player1ID), slot(m.Player2ID), winner)
	}
	return w.Flush()
}

// resolvePlayer accepts a numeric id or a player name.
func resolvePlayer(e env, arg string) (int, error) {
	if id, err := strconv.Atoi(arg); err == nil {
		return id, nil
	}
	p, ok := e.svc.PlayerByName(arg)
	if !ok {
		return 0, fmt.Errorf("unknown player %q", arg)
	}
	return p.ID, nil
}

func recordCmd(ctx context.Context, e env, args []string) error {
	isWO := len(args) > 0 && args[0] == "-wo"
	if isWO {
		args = args[1:]
	}
	if len(args) < 2 {
		return usage("record [-wo] <match-id> <winner> [score...]")
	}
	winner, err := resolvePlayer(e, args[1])
	if err != nil {
		return err
	}
	return e.svc.RecordGroupMatch(ctx, e.sess, args[0], winner, strings.Join(args[2:], " "), isWO)
}

func resetCmd(ctx context.Context, e env, args []string) error {
	if len(args) != 1 {
		return usage("reset <match-id>")
	}
	return e.svc.ResetGroupMatch(ctx, e.sess, args[0])
}

func notPlayedCmd(ctx context.Context, e env, args []string) error {
	if len(args) != 1 {
		return usage("not-played <match-id>")
	}
	return e.svc.MarkNotPlayed(ctx, e.sess, args[0])
}

func bracketRecordCmd(ctx context.Context, e env, args []string) error {
	if len(args) < 2 {
		return usage("bracket-record <match-id> <winner> [score...]")
	}
	winner, err := resolvePlayer(e, args[1])
	if err != nil {
		return err
	}
	return e.svc.RecordBracketMatch(ctx, e.sess, args[0], winner, strings.Join(args[2:], " "))
}

func bracketResetCmd(ctx context.Context, e env, args []string) error {
	if len(args) != 1 {
		return usage("bracket-reset <match-id>")
	}
	return e.svc.ResetBracketMatch(ctx, e.sess, args[0])
}

func advanceCmd(ctx context.Context, e env, _ []string) error {
	if err := e.svc.AdvanceSeason(ctx, e.sess); err != nil {
		return err
	}
	return monthCmd(ctx, e, nil)
}

func renameCmd(ctx context.Context, e env, args []string) error {
	if len(args) < 2 {
		return usage("rename <player> <new name>")
	}
	id, err := resolvePlayer(e, args[0])
	if err != nil {
		return err
	}
	return e.svc.RenamePlayer(ctx, e.sess, id, strings.Join(args[1:], " "))
}

func addPlayerCmd(ctx context.Context, e env, args []string) error {
	if len(args) == 0 {
		return usage("add-player <name>")
	}
	p, err := e.svc.AddPlayer(ctx, e.sess, strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "added %s with id %d\n", p.Name, p.ID)
	return nil
}

// create opens path for writing, or returns out when path is empty or "-".
func create(path string, out io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return out, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func exportCSVCmd(_ context.Context, e env, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	} else if month, ok := e.svc.CurrentMonth(); ok {
		path = export.FileName(month.Name)
	}
	w, closeFn, err := create(path, e.out)
	if err != nil {
		return err
	}
	if err := e.svc.ExportCSV(w); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

func exportCmd(_ context.Context, e env, args []string) error {
	data, err := e.svc.Export(e.sess)
	if err != nil {
		return err
	}
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	w, closeFn, err := create(path, e.out)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

func importCmd(ctx context.Context, e env, args []string) error {
	if len(args) != 1 {
		return usage("import <file>")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	return e.svc.Import(ctx, e.sess, data)
}

func backupCmd(ctx context.Context, e env, args []string) error {
	b, err := e.svc.Backup(ctx, e.sess, strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, b.ID)
	return nil
}

func backupsCmd(ctx context.Context, e env, _ []string) error {
	backups, err := e.svc.Backups(ctx)
	if err != nil {
		return err
	}
	w := table(e.out)
	for _, b := range backups {
		fmt.Fprintf(w, "%s\t%s\t%d players\t%d months\t%s\n",
			b.ID, b.CreatedAt.Local().Format("2006-01-02 15:04"), b.Players, b.Months, b.Label)
	}
	return w.Flush()
}

func restoreCmd(ctx context.Context, e env, args []string) error {
	if len(args) != 1 {
		return usage("restore <backup-id>")
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return err
	}
	return e.svc.Restore(ctx, e.sess, id)
}

func backupDeleteCmd(ctx context.Context, e env, args []string) error {
	if len(args) != 1 {
		return usage("backup-delete <backup-id>")
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return err
	}
	return e.svc.DeleteBackup(ctx, e.sess, id)
}

func ratingsCmd(_ context.Context, e env, _ []string) error {
	w := table(e.out)
	fmt.Fprintln(w, "#\tPlayer\tGames\tElo\tGlicko-2\tRD")
	for i, r := range e.svc.Ratings() {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%.0f\t%.0f\n", i+1, r.Name, r.GamesPlayed, r.Elo, r.Glicko, r.GlickoRD)
	}
	return w.Flush()
}
