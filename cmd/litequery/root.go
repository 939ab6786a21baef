package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/golobby/litequery"
)

type globalFlags struct {
	database     string
	workDir      string
	configPath   string
	debug        bool
	noAutocreate bool
	showSQL      bool
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	cmd := &cobra.Command{
		Use:   "litequery",
		Short: "Run fluent queries against a SQLite file",
		Long: `Run SELECT, INSERT, UPDATE and DELETE statements against a SQLite file
without writing SQL by hand.

Examples:
  litequery --db app.db select users --fields id,email --where "id > 10" --order id --dir desc
  litequery --db app.db count users
  litequery --db app.db insert users email=a@b.com password=x
  litequery --db app.db update users name=bob --where "id=1"
  litequery --db app.db delete users --where "id=5"`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&g.database, "db", "", "database file")
	cmd.PersistentFlags().StringVar(&g.workDir, "workdir", "", "directory the database file is resolved against")
	cmd.PersistentFlags().StringVar(&g.configPath, "config", "", "YAML config file")
	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "report database errors instead of returning empty results")
	cmd.PersistentFlags().BoolVar(&g.noAutocreate, "no-autocreate", false, "fail when the database file does not exist")
	cmd.PersistentFlags().BoolVar(&g.showSQL, "show-sql", false, "print the executed SQL")

	cmd.AddCommand(newSelectCmd(g))
	cmd.AddCommand(newCountCmd(g))
	cmd.AddCommand(newInsertCmd(g))
	cmd.AddCommand(newUpdateCmd(g))
	cmd.AddCommand(newDeleteCmd(g))

	return cmd
}

// open builds the DB from the config file first and the flags second, so
// flags win.
func (g *globalFlags) open(cmd *cobra.Command) (*litequery.DB, error) {
	var opts []litequery.Option
	database := g.database

	if g.configPath != "" {
		cfg, err := litequery.LoadConfig(g.configPath)
		if err != nil {
			return nil, err
		}
		cfgOpts, err := cfg.Options()
		if err != nil {
			return nil, err
		}
		opts = append(opts, cfgOpts...)
		if database == "" {
			database = cfg.Database
		}
	}

	if database == "" {
		return nil, fmt.Errorf("no database given, use --db or a config file")
	}
	if g.workDir != "" {
		opts = append(opts, litequery.WorkDir(g.workDir))
	}
	if cmd.Flags().Changed("debug") {
		opts = append(opts, litequery.Debug(g.debug))
	}
	if g.noAutocreate {
		opts = append(opts, litequery.Autocreate(false))
	}

	return litequery.New(database, opts...)
}

func (g *globalFlags) finish(cmd *cobra.Command, db *litequery.DB) error {
	if g.showSQL {
		fmt.Fprintln(cmd.OutOrStdout(), db.RenderLog())
	}
	return db.Close()
}
