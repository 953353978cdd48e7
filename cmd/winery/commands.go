package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/S4ng4/winery-resolver/internal/catalog"
	"github.com/S4ng4/winery-resolver/internal/domain"
	"github.com/S4ng4/winery-resolver/internal/report"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var errNotFound = errors.New("winery not found")

type options struct {
	catalogPath string
	winesPath   string
}

func (o *options) table() (*domain.Table, error) {
	return catalog.Load(o.catalogPath)
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "winery",
		Short:         "Resolve wine producer names against the winery catalog",
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "path to a catalog YAML file (defaults to the embedded catalog)")

	root.AddCommand(
		newLookupCommand(opts),
		newDescribeCommand(opts),
		newListCommand(opts),
		newReportCommand(opts),
		newProducersCommand(opts),
	)
	return root
}

func newLookupCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup {producer}...",
		Short: "Find the winery for one or more producer names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.table()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			missing := 0
			for _, producer := range args {
				m, ok := t.Resolve(producer)
				if !ok {
					missing++
					fmt.Fprintf(out, "%s: no match\n", producer)
					continue
				}
				desc, _ := domain.Describe(&m.Winery)
				fmt.Fprintf(out, "%s: %s (%s)\n", producer, m.Key, m.Strategy)
				if desc != "" {
					fmt.Fprintf(out, "  %s\n", desc)
				}
			}
			if missing == len(args) {
				return errNotFound
			}
			return nil
		},
	}
}

func newDescribeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "describe {key}",
		Short: "Print the description of a winery by catalog key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.table()
			if err != nil {
				return err
			}
			m, ok := t.Lookup(args[0])
			if !ok {
				return fmt.Errorf("%w: %q", errNotFound, args[0])
			}
			desc, ok := domain.Describe(&m.Winery)
			if !ok {
				desc = m.Winery.Name
			}
			fmt.Fprintln(cmd.OutOrStdout(), desc)
			return nil
		},
	}
}

func newListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every winery in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := opts.table()
			if err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout())
			tw.AppendHeader(table.Row{"Key", "Name", "Region", "Aliases"})
			for _, key := range t.Keys() {
				m, _ := t.Lookup(key)
				tw.AppendRow(table.Row{m.Key, m.Winery.Name, m.Winery.Region, strings.Join(m.Winery.Aliases, ", ")})
			}
			tw.Render()
			return nil
		},
	}
}

func newReportCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Report how the producers of a wine list export match the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := opts.table()
			if err != nil {
				return err
			}
			wines, err := report.LoadWines(opts.winesPath)
			if err != nil {
				return err
			}
			writeMatchReport(cmd.OutOrStdout(), len(wines), report.BuildMatchReport(wines, t))
			return nil
		},
	}
	addWinesFlag(cmd, opts)
	return cmd
}

func newProducersCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "producers",
		Short: "List unique producers of a wine list export with wine counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wines, err := report.LoadWines(opts.winesPath)
			if err != nil {
				return err
			}
			counts := report.CountProducers(wines)

			tw := newTable(cmd.OutOrStdout())
			tw.AppendHeader(table.Row{"Producer", "Wines"})
			total := 0
			for _, c := range counts {
				tw.AppendRow(table.Row{c.Name, c.Wines})
				total += c.Wines
			}
			tw.AppendFooter(table.Row{fmt.Sprintf("%d producers", len(counts)), total})
			tw.Render()
			return nil
		},
	}
	addWinesFlag(cmd, opts)
	return cmd
}

func addWinesFlag(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVar(&opts.winesPath, "wines", "data/wines.json", "path to the wine list export")
}

func writeMatchReport(w io.Writer, wines int, rep report.MatchReport) {
	fmt.Fprintf(w, "Wines: %d, unique producers: %d\n\n", wines, rep.Producers())

	tw := newTable(w)
	tw.AppendHeader(table.Row{"Winery", "Strategy", "Producers"})
	for _, g := range rep.Matched {
		tw.AppendRow(table.Row{g.Key, g.Strategy, strings.Join(g.Producers, ", ")})
	}
	tw.Render()

	if len(rep.Unmatched) > 0 {
		fmt.Fprintf(w, "\nUnmatched producers (%d):\n", len(rep.Unmatched))
		for _, p := range rep.Unmatched {
			fmt.Fprintf(w, "  %s\n", p)
		}
	}
	fmt.Fprintf(w, "\nMatch rate: %.1f%%\n", rep.MatchRate()*100)
}

func newTable(w io.Writer) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	style := table.StyleLight
	style.Options.DrawBorder = false
	tw.SetStyle(style)
	return tw
}
