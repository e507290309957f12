package main

import (
	"fmt"

	"github.com/Sternrassler/museum-client/internal/tui"
	"github.com/Sternrassler/museum-client/pkg/artic"
	"github.com/Sternrassler/museum-client/pkg/logging"
	"github.com/Sternrassler/museum-client/pkg/met"
	"github.com/Sternrassler/museum-client/pkg/pagination"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newMetCmd(a *app) *cobra.Command {
	var department string
	var page int

	cmd := &cobra.Command{
		Use:   "met",
		Short: "Print one page of a Met department",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if department == "" {
				department = a.cfg.Met.Department
			}
			name, ok := met.LookupDepartment(department)
			if !ok {
				return fmt.Errorf("unknown department %q (run 'artview departments')", department)
			}

			session, err := a.metSession(cmd.Context())
			if err != nil {
				return err
			}
			return a.printState(met.Backend, name, session.Fetch(cmd.Context(), name, page))
		},
	}
	cmd.Flags().StringVarP(&department, "department", "d", "", "department name (default from config)")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number, starting at 1")
	return cmd
}

func newArticCmd(a *app) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "artic",
		Short: "Print one page of the Art Institute of Chicago collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.articSession()
			if err != nil {
				return err
			}
			return a.printState(artic.Backend, "Art Institute of Chicago", session.Fetch(cmd.Context(), "", page))
		},
	}
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number, starting at 1")
	return cmd
}

func newDepartmentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "departments",
		Short: "List the Met departments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.printer.PrintList(met.Departments)
			return nil
		},
	}
}

func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "browse met|artic",
		Short:     "Browse a collection interactively",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{met.Backend, artic.Backend},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Log lines would tear the alternate screen.
			if !a.verbose {
				logging.Setup(logging.Config{Level: logging.LevelDisabled, Output: a.errOut})
			}

			var (
				session *pagination.Session
				opts    tui.Options
				err     error
			)
			switch args[0] {
			case met.Backend:
				session, err = a.metSession(cmd.Context())
				opts = tui.Options{Title: "The Met", Queries: met.Departments, Initial: a.cfg.Met.Department}
			case artic.Backend:
				session, err = a.articSession()
				opts = tui.Options{Title: "Art Institute of Chicago"}
			default:
				return fmt.Errorf("unknown backend %q: must be met or artic", args[0])
			}
			if err != nil {
				return err
			}

			program := tea.NewProgram(tui.New(cmd.Context(), session, opts), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = program.Run()
			return err
		},
	}
}

func (a *app) printState(backend, title string, state pagination.FetchState) error {
	if a.cfg.Output.JSON {
		return a.printer.PrintJSON(backend, state)
	}
	return a.printer.PrintState(title, state)
}
