package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"

	"github.com/Winmix713/hekoprot2/internal/app"
	"github.com/Winmix713/hekoprot2/internal/domain/admin"
	"github.com/Winmix713/hekoprot2/internal/domain/match"
	"github.com/Winmix713/hekoprot2/internal/domain/mlmodel"
	"github.com/Winmix713/hekoprot2/internal/domain/prediction"
	"github.com/Winmix713/hekoprot2/internal/domain/statistics"
	"github.com/Winmix713/hekoprot2/internal/platform/fetch"
	"github.com/Winmix713/hekoprot2/internal/usecase"
)

var errUsage = errors.New("usage error")

func isUsage(err error) bool {
	return errors.Is(err, errUsage)
}

type command struct {
	usage string
	run   func(ctx context.Context, a *app.App, args []string, stdout io.Writer) error
}

var commands = map[string]command{
	"login":       {usage: "login -email EMAIL [-password PASSWORD]", run: runLogin},
	"logout":      {usage: "logout", run: runLogout},
	"health":      {usage: "health", run: runHealth},
	"matches":     {usage: "matches [-page N] [-size N] [-status S] [-team ID] [-season ID] [-from DATE] [-to DATE]", run: runMatches},
	"match":       {usage: "match MATCH_ID", run: runMatch},
	"match-stats": {usage: "match-stats [-season ID]", run: runMatchStats},
	"table":       {usage: "table [-season ID]", run: runLeagueTable},
	"team-stats":  {usage: "team-stats TEAM_ID [-season ID] [-home-only] [-away-only] [-last N]", run: runTeamStats},
	"analysis":    {usage: "analysis -home ID -away ID [-season ID]", run: runTeamAnalysis},
	"h2h":         {usage: "h2h -home ID -away ID", run: runMatchPrediction},
	"statistics":  {usage: "statistics [-season ID] [-team ID] [-from DATE] [-to DATE]", run: runMatchStatistics},
	"predictions": {usage: "predictions [-page N] [-size N] [-status S] [-model ID] [-confidence-min X]", run: runPredictions},
	"prediction":  {usage: "prediction PREDICTION_ID", run: runPrediction},
	"models":      {usage: "models [-page N] [-size N] [-status S]", run: runModels},
	"model":       {usage: "model MODEL_ID", run: runModel},
	"train":       {usage: "train MODEL_ID [-config FILE]", run: runTrain},
	"performance": {usage: "performance MODEL_ID", run: runPerformance},
	"status":      {usage: "status", run: runSystemStatus},
	"users":       {usage: "users [-page N] [-size N]", run: runUsers},
	"overview":    {usage: "overview [-season ID]", run: runOverview},
	"import":      {usage: "import FILE", run: runImport},
}

func printUsage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "usage: predictctl <command> [flags]")
	fmt.Fprintln(w)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", commands[name].usage)
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %v", errUsage, fs.Name(), err)
	}
	return nil
}

// splitPositional pulls the leading positional argument so flags may follow it.
func splitPositional(name string, args []string) (string, []string, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return "", nil, fmt.Errorf("%w: %s requires an argument", errUsage, name)
	}
	return args[0], args[1:], nil
}

func writeJSON(w io.Writer, v any) error {
	out, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return crerr.Wrap(err, "encode output")
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func runLogin(ctx context.Context, a *app.App, args []string, stdout io.Writer) error {
	fs := newFlagSet("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (defaults to $PREDICTCTL_PASSWORD)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *password == "" {
		*password = os.Getenv("PREDICTCTL_PASSWORD")
	}

	token, err := a.Client.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "logged in (token type %s, expires in %ds)\n", token.TokenType, token.ExpiresIn)
	return nil
}

func runLogout(ctx context.Context, a *app.App, _ []string, stdout io.Writer) error {
	if err := a.Client.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(stdout, "logged out")
	return nil
}

func runHealth(ctx context.Context, a *app.App, _ []string, stdout io.Writer) error {
	q := usecase.UseHealthCheck(ctx, a.Client)
	defer q.Close()
	out, err := settle(ctx, q)
	if err != nil {
		return err
	}
	return writeJSON(stdout, out)
}

// settle waits for the query's own automatic run and returns its outcome. A
// query that never started, because its ids are missing, settles with zero data.
func settle[P, T any](ctx context.Context, q *fetch.Query[P, T]) (T, error) {
	var zero T
	state, err := q.Wait(ctx)
	if err != nil {
		return zero, err
	}
	if state.HasError() {
		return zero, state.Err()
	}
	return state.Data, nil
}

func runMatches(ctx context.Context, a *app.App, args []string, stdout io.Writer) error {
	fs := newFlagSet("matches")
	var filter match.Filter
	var status string
	fs.IntVar(&filter.Page, "page", 0, "page number")
	fs.IntVar(&filter.Size, "size", 0, "page size")
	fs.StringVar(&status, "status", "", "scheduled|live|finished|postponed|cancelled")
	fs.StringVar(&filter.TeamID, "team", "", "team id")
	fs.StringVar(&filter.SeasonID, "season", "", "season id")
	fs.StringVar(&filter.DateFrom, "from", "", "date from")
	fs.StringVar(&filter.DateTo, "to", "", "date to")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if status != "" {
		filter.Status = match.NormalizeStatus(status)
	}

	list, err := a.Client.ListMatches(ctx, filter)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tHOME\tSCORE\tAWAY\tSTATUS")
	for _, m := range list.Matches {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			m.ID, m.MatchDate.Format("2006-01-02 15:04"), m.HomeTeam.Name, m.Score(), m.AwayTeam.Name, m.Status)
	}
	fmt.Fprintf(tw, "\npage %d/%d, %d total\n", list.Page, list.Pages, list.Total)
	return tw.Flush()
}

func runMatch(ctx context.Context, a *app.App, args []string, stdout io.Writer) error {
	id, _, err := splitPositional("match", args)
	if err != nil {
		return err
	}
	out, err := a.Client.GetMatch(ctx, id)
	if err != nil {
		return err
	}
	return writeJSON(stdout, out)
}

func runMatchStats(ctx context.Context, a *app.App, args []string, stdout io.Writer) error {
	fs := newFlagSet("match-stats")
	season := fs.String("season", "", "season id")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	out, err := a.Client.GetMatchStats(ctx, *season)
	if err != nil {
		return err
	}
	return writeJSON(stdout, out)
}

func runLeagueTable(ctx context.Context, a *app.App, args []string, stdout io.Writer) error {
	fs := newFlagSet("table")
	season := fs.String("season", "", "season id")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	rows, err := a.Client.GetLeagueTable(ctx, *season)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "POS\tTEAM\tP\tW\tD\tL\tGF\tGA\tGD\tPTS\tFORM")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%s\n",
			r.Position, r.TeamName, r.MatchesPlayed, r.Wins, r.Draws, r.Losses,
			r.GoalsFor, r.GoalsAgainst, r.GoalDifference, r.Points, r.Form)
	}
	return tw.Flush()
}

func runTeamStats(ctx context.Context, a *app.App, args []string, stdout io.Writer) error {
	teamID, rest, err := splitPositional("team-stats", args)
	if err != nil {
		return err
	}

	fs := newFlagSet("team-stats")
	var filter statistics.TeamStatsFilter
	var homeOnly, awayOnly bool
	fs.StringVar(&filter.SeasonID, "season", "", "season id")
	fs.BoolVar(&homeOnly, "home-only", false, "home matches only")
	fs.BoolVar(&awayOnly, "away-only", false, "away matches only")
	fs.IntVar(&filter.LastNMatches, "last", 0, "last N matches")
	if err := parseFlags(fs, rest); err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "home-only":
			filter.HomeOnly = &homeOnly
		case "away-only":
			filter.AwayOnly = &awayOnly
		}
	})

	out, err := a.Client.GetTeamStats(ctx, teamID, filter)
	if err != nil {
		return err
	}
	return writeJSON(stdout, out)
}

func parseTeamPair(name string, args []string, withSeason bool) (usecase.TeamPair, error) {
	fs := newFlagSet(name)
	var pair usecase.TeamPair
	fs.StringVar(&pair.HomeTeamID, "home", "", "home team id")
	fs.StringVar(&pair.AwayTeamID, "away", "", "away team id")
	if withSeason {
		fs.StringVar(&pair.SeasonID, "season", "", "season id")
	}
	if err := parseFlags(fs, args); err != nil {
		return usecase.TeamPair{}, err
	}
	return pair, nil
}

// runTeamAnalysis goes through the hook so a missing team id resolves to null
// without a request.
func runTeamAnalysis(ctx context.Context, a *app.App, args []string, stdout io.Writer) error {
	pair, err := parseTeamPair("analysis", args, true)
	if err != nil {
		return err
	}

	q := usecase.UseTeamAnalysis(ctx, a.Client, pair)
	defer q.Close()
	out, err := settle(ctx, q)
	if err != nil {
		return err
	}
	return writeJSON(stdout, out)
}

func runMatchPrediction(ctx context.Context, a *app.App, args []string, stdout io.Writer) error {
	pair, err := parseTeamPair("h2h", args, false)
	if err != nil {
		return err
	}

	q := usecase.UseMatchPrediction(ctx, a.Client, pair)
	defer q.Close()
	out, err := settle(ctx, q)
	if err != nil {
		return err
	}
	return writeJSON(stdout, out)
}

func runMatchStatistics(ctx context.Context, a *app.App, args []string, stdout io.Writer) error {
	fs := newFlagSet("statistics")
	var filter statistics.MatchStatsFilter
	fs.StringVar(&filter.SeasonID, "season", "", "season id")
	fs.StringVar(&filter.TeamID, "team", "", "team id")
	fs.StringVar(&filter.DateFrom, "from", "", "date from")
	fs.StringVar(&filter.DateTo, "to", "", "date to")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	out, err := a.Client.GetMatchStatistics(ctx, filter)
	if err != nil {
		return err
	}
	return writeJSON(stdout, out)
}

func runPredictions(ctx context.Context, a *app.App, args []string, stdout io.Writer) error {
	fs := newFlagSet("predictions")
	var filter prediction.Filter
	var confidenceMin string
	fs.IntVar(&filter.Page, "page", 0, "page number")
	fs.IntVar(&filter.Size, "size", 0, "page size")
	fs.StringVar(&filter.Status, "status", "", "pending|correct|wrong")
	fs.StringVar(&filter.ModelID, "model", "", "model id")
	fs.StringVar(&confidenceMin, "confidence-min", "", "minimum confidence, e.g. 0.7")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if confidenceMin != "" {
		value, err := decimal.NewFromString(confidenceMin)
		if err != nil {
			return fmt.Errorf("%w: confidence-min: %v", errUsage, err)
		}
		filter.ConfidenceMin = &value
	}

	list, err := a.Client.ListPredictions(ctx, filter)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tMATCH\tWINNER\tCONFIDENCE\tRESULT")
	for _, p := range list.Predictions {
		winner := "-"
		if p.PredictedWinner != nil {
			winner = *p.PredictedWinner
		}
		fmt.Fprintf(tw, "%s\t%s vs %s\t%s\t%s\t%s\n",
			p.ID, p.Match.HomeTeamName, p.Match.AwayTeamName, winner, p.ConfidenceScore.StringFixed(2), p.ResultStatus)
	}
	fmt.Fprintf(tw, "\npage %d/%d, %d total\n", list.Page, list.Pages, list.Total)
	return tw.Flush()
}

func runPrediction(ctx context.Context, a *app.App, args []string, stdout io.Writer) error {
	id, _, err := splitPositional("prediction", args)
	if err != nil {
		return err
	}
	out, err := a.Client.GetPrediction(ctx, id)
	if err != nil {
		return err
	}
	return writeJSON(stdout, out)
}

func runModels(ctx context.Context, a *app.App, args []string, stdout io.Writer) error {
	fs := newFlagSet("models")
	var filter mlmodel.Filter
	var status string
	fs.IntVar(&filter.Page, "page", 0, "page number")
	fs.IntVar(&filter.Size, "size", 0, "page size")
	fs.StringVar(&status, "status", "", "active|training|inactive|error")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	filter.Status = mlmodel.Status(strings.ToLower(strings.TrimSpace(status)))

	list, err := a.Client.ListModels(ctx, filter)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tVERSION\tALGORITHM\tSTATUS\tACCURACY\tPREDICTIONS")
	for _, m := range list.Models {
		accuracy := "-"
		if m.Accuracy.Valid {
			accuracy = m.Accuracy.Decimal.StringFixed(3)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			m.ID, m.Name, m.Version, m.Algorithm, m.EffectiveStatus(), accuracy, m.PredictionsCount)
	}
	return tw.Flush()
}

func runModel(ctx context.Context, a *app.App, args []string, stdout io.Writer) error {
	id, _, err := splitPositional("model", args)
	if err != nil {
		return err
	}
	out, err := a.Client.GetModel(ctx, id)
	if err != nil {
		return err
	}
	return writeJSON(stdout, out)
}

func runTrain(ctx context.Context, a *app.App, args []string, stdout io.Writer) error {
	id, rest, err := splitPositional("train", args)
	if err != nil {
		return err
	}

	fs := newFlagSet("train")
	configPath := fs.String("config", "", "JSON file with training_config and training_data_config")
	if err := parseFlags(fs, rest); err != nil {
		return err
	}

	var req mlmodel.TrainRequest
	if *configPath != "" {
		raw, err := os.ReadFile(*configPath)
		if err != nil {
			return crerr.Wrapf(err, "read %s", *configPath)
		}
		if err := sonic.Unmarshal(raw, &req); err != nil {
			return crerr.Wrapf(err, "decode %s", *configPath)
		}
	}

	out, err := a.Client.TrainModel(ctx, id, req)
	if err != nil {
		return err
	}
	return writeJSON(stdout, out)
}

func runPerformance(ctx context.Context, a *app.App, args []string, stdout io.Writer) error {
	id, _, err := splitPositional("performance", args)
	if err != nil {
		return err
	}
	out, err := a.Client.GetModelPerformance(ctx, id)
	if err != nil {
		return err
	}
	return writeJSON(stdout, out)
}

func runSystemStatus(ctx context.Context, a *app.App, _ []string, stdout io.Writer) error {
	out, err := a.Client.GetSystemStatus(ctx)
	if err != nil {
		return err
	}
	return writeJSON(stdout, out)
}

func runUsers(ctx context.Context, a *app.App, args []string, stdout io.Writer) error {
	fs := newFlagSet("users")
	var filter admin.UserFilter
	fs.IntVar(&filter.Page, "page", 0, "page number")
	fs.IntVar(&filter.Size, "size", 0, "page size")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	list, err := a.Client.ListUsers(ctx, filter)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tEMAIL\tROLE\tACTIVE")
	for _, u := range list.Users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", u.ID, u.Email, u.Role, u.IsActive)
	}
	return tw.Flush()
}

func runOverview(ctx context.Context, a *app.App, args []string, stdout io.Writer) error {
	fs := newFlagSet("overview")
	season := fs.String("season", "", "season id")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	overview, err := a.Dashboard.Overview(ctx, *season)
	if err != nil {
		return err
	}
	return writeJSON(stdout, overviewView(overview))
}

type panelView struct {
	Data  any    `json:"data"`
	Error string `json:"error,omitempty"`
}

func overviewView(o usecase.Overview) map[string]panelView {
	return map[string]panelView{
		"match_stats":    {Data: o.MatchStats.Data, Error: o.MatchStats.Error},
		"live_matches":   {Data: o.LiveMatches.Data, Error: o.LiveMatches.Error},
		"recent_results": {Data: o.RecentResults.Data, Error: o.RecentResults.Error},
		"active_models":  {Data: o.ActiveModels.Data, Error: o.ActiveModels.Error},
		"predictions":    {Data: o.Predictions.Data, Error: o.Predictions.Error},
		"system_status":  {Data: o.SystemStatus.Data, Error: o.SystemStatus.Error},
		"league_table":   {Data: o.LeagueTable.Data, Error: o.LeagueTable.Error},
	}
}

func runImport(ctx context.Context, a *app.App, args []string, stdout io.Writer) error {
	path, _, err := splitPositional("import", args)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return crerr.Wrapf(err, "read %s", path)
	}
	var inputs []prediction.CreateInput
	if err := sonic.Unmarshal(raw, &inputs); err != nil {
		return crerr.Wrapf(err, "decode %s", path)
	}

	result, err := a.Importer.Import(ctx, inputs)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "ROW\tMATCH\tSTATUS\tMESSAGE")
	for _, row := range result.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", row.Row, row.Input.MatchID, row.Status, row.Message)
	}
	fmt.Fprintf(tw, "\n%d created, %d failed\n", result.CreatedCount, result.FailedCount)
	if err := tw.Flush(); err != nil {
		return err
	}
	if result.FailedCount > 0 {
		return fmt.Errorf("%d of %d predictions failed to import", result.FailedCount, len(result.Rows))
	}
	return nil
}
