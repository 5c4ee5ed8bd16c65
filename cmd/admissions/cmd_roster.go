package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jask/admissions/internal/export"
	"github.com/jask/admissions/internal/format"
	"github.com/jask/admissions/internal/roster"
	"github.com/jask/admissions/internal/table"
)

var errNotFound = errors.New("candidate not found")

func (c *cli) newListCmd() *cobra.Command {
	var (
		search string
		sortBy string
		desc   bool
		asc    bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the candidate table",
		Long: `Prints the roster filtered by --search (case-insensitive match on name or
program) and ordered by --sort. Without --sort the configured initial
sort is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := c.listState(search, sortBy, cmd.Flags().Changed("sort"), desc, asc)
			if err != nil {
				return err
			}
			cands, err := c.loadRoster(cmd.Context())
			if err != nil {
				return err
			}
			rows := state.Apply(cands)
			fmt.Fprintln(cmd.OutOrStdout(), renderList(rows))
			fmt.Fprintln(cmd.OutOrStdout(), format.Results(len(rows)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "filter by name or program")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort field: name, program, gpa, appliedDate")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	cmd.Flags().BoolVar(&asc, "asc", false, "sort ascending")
	cmd.MarkFlagsMutuallyExclusive("desc", "asc")
	return cmd
}

// listState starts from the configured sort and applies the flags over it.
// A new --sort field defaults to ascending, matching a header click.
func (c *cli) listState(search, sortBy string, sortSet, desc, asc bool) (table.State, error) {
	field, dir, err := c.cfg.Table.Sort()
	if err != nil {
		return table.State{}, err
	}
	if sortSet {
		f, err := table.ParseField(sortBy)
		if err != nil {
			return table.State{}, err
		}
		field, dir = f, table.Ascending
	}
	switch {
	case desc:
		dir = table.Descending
	case asc:
		dir = table.Ascending
	}
	state := table.NewState(field, dir)
	state.Search = search
	return state, nil
}

func renderList(rows []roster.Candidate) string {
	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Name", "Program", "GPA", "Status", "Applied Date").
		StyleFunc(func(int, int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, c := range rows {
		t.Row(strconv.Itoa(c.ID), c.Name, c.Program, format.GPAShort(c.GPA), string(c.Status), format.Date(c.AppliedDate))
	}
	return t.Render()
}

func (c *cli) newShowCmd() *cobra.Command {
	var (
		raw   bool
		style string
		width int
	)
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one candidate's application summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("candidate id %q: %w", args[0], err)
			}
			cands, err := c.loadRoster(cmd.Context())
			if err != nil {
				return err
			}
			cand, ok := roster.ByID(cands, id)
			if !ok {
				return fmt.Errorf("%w: %d", errNotFound, id)
			}
			md := export.Markdown(cand)
			if raw {
				fmt.Fprint(cmd.OutOrStdout(), md)
				return nil
			}
			out, err := export.Render(md, width, style)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without rendering")
	cmd.Flags().StringVar(&style, "style", "auto", "glamour style: auto, dark, light, notty")
	cmd.Flags().IntVar(&width, "width", 100, "wrap width")
	return cmd
}
