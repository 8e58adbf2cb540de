package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"projarapi/internal/config"
	logpkg "projarapi/internal/logger"
	"projarapi/internal/projar"
	"projarapi/internal/store"
	"projarapi/internal/version"
)

// repoOpener returns the repository a command reads from and a func that
// releases it.
type repoOpener func(c *cli.Context) (projar.Repository, func(), error)

func main() {
	if err := newApp(openStore).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(open repoOpener) *cli.App {
	searchFlags := []cli.Flag{
		&cli.BoolFlag{Name: "json", Usage: "Print results as JSON"},
	}
	for _, key := range projar.Keys {
		searchFlags = append(searchFlags, &cli.StringFlag{
			Name:  flagName(key),
			Usage: fmt.Sprintf("Filter by %s", strings.ReplaceAll(key, "_", " ")),
		})
	}

	return &cli.App{
		Name:    "projar",
		Usage:   "Search the archival catalog from the command line",
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env",
				Usage:   "Config environment (config/<env>.yaml)",
				EnvVars: []string{"ENV"},
				Value:   "local",
			},
			&cli.StringFlag{
				Name:  "driver",
				Usage: "Database driver (postgres, sqlite), overrides config",
			},
			&cli.StringFlag{
				Name:  "dsn",
				Usage: "Database DSN, overrides config",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "search",
				Usage:  "List records matching the given filters, newest first",
				Flags:  searchFlags,
				Action: withService(open, searchCommand),
			},
			{
				Name:  "show",
				Usage: "Show one record with its relations",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "id", Usage: "Record id", Required: true},
				},
				Action: withService(open, showCommand),
			},
			{
				Name:  "options",
				Usage: "Print the filter option lists",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "Print options as JSON"},
				},
				Action: withService(open, optionsCommand),
			},
			{
				Name:   "count",
				Usage:  "Print the number of catalog records",
				Action: withService(open, countCommand),
			},
		},
	}
}

func flagName(key string) string { return strings.ReplaceAll(key, "_", "-") }

func withService(open repoOpener, run func(c *cli.Context, svc *projar.Service) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		repo, release, err := open(c)
		if err != nil {
			return err
		}
		defer release()
		return run(c, projar.NewService(repo, nil))
	}
}

func openStore(c *cli.Context) (projar.Repository, func(), error) {
	dbCfg, err := databaseConfig(c)
	if err != nil {
		return nil, nil, err
	}

	logger, err := logpkg.NewLogger(c.String("env"), c.String("log-level"))
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}

	st, err := store.Open(c.Context, dbCfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return st, func() {
		st.Close()
		_ = logger.Sync()
	}, nil
}

// databaseConfig loads the environment's config and applies the --driver and
// --dsn flags on top of it.
func databaseConfig(c *cli.Context) (config.DatabaseConfig, error) {
	cfg, err := config.Load(c.String("env"))
	if err != nil {
		return config.DatabaseConfig{}, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.OverrideDatabase(c.String("driver"), c.String("dsn")); err != nil {
		return config.DatabaseConfig{}, err
	}
	return cfg.Database, nil
}

func searchCommand(c *cli.Context, svc *projar.Service) error {
	params := projar.Params{}
	for _, key := range projar.Keys {
		if v := c.String(flagName(key)); v != "" {
			params[key] = v
		}
	}

	res, err := svc.Search(c.Context, params)
	if err != nil {
		return err
	}
	if c.Bool("json") {
		return writeJSON(c.App.Writer, res)
	}

	tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCALL NUMBER\tDATE\tTITLE")
	for _, r := range res.Records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.ID, r.CallNumber, formatDate(r), r.Title)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.App.Writer, "%d records\n", len(res.Records))
	return err
}

func showCommand(c *cli.Context, svc *projar.Service) error {
	rec, err := svc.Get(c.Context, c.Int("id"))
	if err != nil {
		return err
	}
	return writeJSON(c.App.Writer, rec)
}

func optionsCommand(c *cli.Context, svc *projar.Service) error {
	opts, err := svc.Options(c.Context)
	if err != nil {
		return err
	}
	if c.Bool("json") {
		return writeJSON(c.App.Writer, opts)
	}

	w := c.App.Writer
	section := func(title string, lines []string) {
		fmt.Fprintf(w, "%s (%d)\n", title, len(lines))
		for _, l := range lines {
			fmt.Fprintf(w, "  %s\n", l)
		}
	}
	section("Locations", named(opts.Locations, func(v projar.Location) string { return fmt.Sprintf("%d %s", v.ID, v.Name) }))
	section("Sectors", named(opts.Sectors, func(v projar.Sector) string { return fmt.Sprintf("%d %s", v.ID, v.Name) }))
	section("Subjects", named(opts.Subjects, func(v projar.Subject) string { return fmt.Sprintf("%d %s", v.ID, v.Name) }))
	section("Executors", named(opts.Executors, func(v projar.Executor) string { return fmt.Sprintf("%d %s", v.ID, v.Name) }))
	section("Authors", named(opts.Authors, func(v projar.Author) string {
		return fmt.Sprintf("%d %s (%s)", v.ID, v.Name, v.Role)
	}))
	section("Contents", opts.Contents)
	return nil
}

func countCommand(c *cli.Context, svc *projar.Service) error {
	_, err := fmt.Fprintln(c.App.Writer, svc.Total(c.Context))
	return err
}

func named[T any](items []T, format func(T) string) []string {
	out := make([]string, len(items))
	for i, v := range items {
		out[i] = format(v)
	}
	return out
}

func formatDate(r projar.Record) string {
	if r.Date == nil {
		return "-"
	}
	return r.Date.Format("2006-01-02")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
