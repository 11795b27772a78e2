package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"shift-schedule-bot/internal/service"
	"shift-schedule-bot/pkg/roster"

	"github.com/spf13/cobra"
)

func newImportCmd(c *cli) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a schedule (.csv, .xlsx or tab-separated text, - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, name, err := openInput(cmd, args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			schedules, err := c.svc.ImportFile(month, in, name)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d schedules for %s\n", len(schedules), month)
			return nil
		},
	}
	requireMonthFlag(cmd, &month)
	return cmd
}

func newVacationsCmd(c *cli) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "vacations FILE",
		Short: "Apply a vacation export (7-line blocks) to a saved month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _, err := openInput(cmd, args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			data, err := io.ReadAll(in)
			if err != nil {
				return err
			}

			result, err := c.svc.ApplyVacations(month, string(data))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "applied %d vacation entries, %d schedules changed\n", result.Entries, result.Changed)
			return nil
		},
	}
	requireMonthFlag(cmd, &month)
	return cmd
}

func newReportCmd(c *cli) *cobra.Command {
	var (
		month  string
		filter service.Filter
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print working, required and overtime hours for a saved month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schedules, err := c.svc.GetMonth(month)
			if err != nil {
				return err
			}

			return writeReport(cmd.OutOrStdout(), service.FilterSchedules(schedules, filter))
		},
	}
	requireMonthFlag(cmd, &month)
	cmd.Flags().StringVarP(&filter.EmployeeID, "employee", "e", "", "filter by employee number substring")
	cmd.Flags().BoolVar(&filter.MissingOnly, "missing", false, fmt.Sprintf("only employees below %d hours", roster.TargetHours))
	return cmd
}

func writeReport(out io.Writer, schedules []roster.EmployeeSchedule) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tID\tNAME\tWORKING\tREQUIRED\t+/-\tVACATION")
	for i, s := range schedules {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%+d\t%d\n",
			i+1,
			s.Employee.EmployeeNumber,
			s.Employee.Name,
			s.WorkingHours,
			s.RequiredHours,
			s.Overtime,
			s.VacationDays(),
		)
	}
	return w.Flush()
}

func newMonthsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "months",
		Short: "List saved months",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshots, err := c.svc.ListMonths()
			if err != nil {
				return err
			}

			for _, s := range snapshots {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d employees\t%d below target\n", s.Month, s.EmployeeCount(), s.MissingHoursCount())
			}
			return nil
		},
	}
}

func newDeleteCmd(c *cli) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a saved month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.svc.DeleteMonth(month); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", month)
			return nil
		},
	}
	requireMonthFlag(cmd, &month)
	return cmd
}
