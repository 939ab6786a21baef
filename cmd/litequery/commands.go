package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSelectCmd(g *globalFlags) *cobra.Command {
	var (
		fields string
		where  string
		order  string
		dir    string
		one    bool
	)
	cmd := &cobra.Command{
		Use:   "select TABLE",
		Short: "Print rows of a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := g.open(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			var columns []string
			if fields != "" {
				for _, f := range strings.Split(fields, ",") {
					columns = append(columns, strings.TrimSpace(f))
				}
			}

			q := db.Select(columns...).From(args[0]).Where(where)
			if order != "" {
				q.OrderBy(order, dir)
			}

			if one {
				row, err := q.One(cmd.Context())
				if err != nil {
					return err
				}
				if row == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "no row matched")
				} else {
					printRows(cmd, columns, []map[string]interface{}{row})
				}
			} else {
				rows, err := q.All(cmd.Context())
				if err != nil {
					return err
				}
				out := make([]map[string]interface{}, 0, len(rows))
				for _, r := range rows {
					out = append(out, r)
				}
				printRows(cmd, columns, out)
			}
			return g.finish(cmd, db)
		},
	}
	cmd.Flags().StringVar(&fields, "fields", "", "comma separated columns, all when empty")
	cmd.Flags().StringVar(&where, "where", "", "raw SQL condition")
	cmd.Flags().StringVar(&order, "order", "", "column to order by")
	cmd.Flags().StringVar(&dir, "dir", "asc", "order direction")
	cmd.Flags().BoolVar(&one, "one", false, "print only the first row")
	return cmd
}

func newCountCmd(g *globalFlags) *cobra.Command {
	var where string
	cmd := &cobra.Command{
		Use:   "count TABLE",
		Short: "Count rows of a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := g.open(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			row, err := db.Count().From(args[0]).Where(where).One(cmd.Context())
			if err != nil {
				return err
			}
			if row == nil {
				fmt.Fprintln(cmd.OutOrStdout(), 0)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), row["count"])
			}
			return g.finish(cmd, db)
		},
	}
	cmd.Flags().StringVar(&where, "where", "", "raw SQL condition")
	return cmd
}

func newInsertCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "insert TABLE COLUMN=VALUE...",
		Short: "Insert a row",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := parseAssignments(args[1:])
			if err != nil {
				return err
			}
			db, err := g.open(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			ok, err := db.Insert(payload).Into(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("insert into %s failed, rerun with --debug for details", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), "inserted 1 row")
			return g.finish(cmd, db)
		},
	}
}

func newUpdateCmd(g *globalFlags) *cobra.Command {
	var where string
	cmd := &cobra.Command{
		Use:   "update TABLE COLUMN=VALUE... --where EXPR",
		Short: "Update matching rows",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := parseAssignments(args[1:])
			if err != nil {
				return err
			}
			db, err := g.open(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			res, err := db.Update(args[0]).Values(payload).Where(where).Exec(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated %d rows\n", res.RowsAffected)
			return g.finish(cmd, db)
		},
	}
	cmd.Flags().StringVar(&where, "where", "", "raw SQL condition (required)")
	return cmd
}

func newDeleteCmd(g *globalFlags) *cobra.Command {
	var where string
	cmd := &cobra.Command{
		Use:   "delete TABLE --where EXPR",
		Short: "Delete matching rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := g.open(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			res, err := db.Delete().From(args[0]).Where(where).Exec(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d rows\n", res.RowsAffected)
			return g.finish(cmd, db)
		},
	}
	cmd.Flags().StringVar(&where, "where", "", "raw SQL condition (required)")
	return cmd
}
