package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-drift/docskit/pkg/datetime"
)

var (
	dtValue    string
	dtDate     string
	dtTime     string
	dtLocation string
)

func init() {
	datetimeCmd := &cobra.Command{
		Use:   "datetime",
		Short: "Apply date/time picker edits to a timestamp",
		Long: `Apply the edits a DateTimePicker makes to a timestamp.

  docskit datetime edit-date --value 2024-03-05T14:30:00 --date 2024-03-10
  2024-03-10T14:30:00

  docskit datetime edit-time --value 2024-03-05T14:30:00 --time 09:15
  2024-03-05T09:15:00`,
	}
	datetimeCmd.PersistentFlags().StringVar(&dtValue, "value", "", "current timestamp (YYYY-MM-DDTHH:MM:SS)")
	datetimeCmd.PersistentFlags().StringVar(&dtLocation, "tz", "Local", "time zone used to read the time of day and today's date")

	editDateCmd := &cobra.Command{
		Use:   "edit-date",
		Short: "Replace the date, keeping the time of day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			editor, err := newEditor()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), editor.EditDate(dtValue, dtDate))
			return err
		},
	}
	editDateCmd.Flags().StringVar(&dtDate, "date", "", "new date (YYYY-MM-DD); empty clears the value")

	editTimeCmd := &cobra.Command{
		Use:   "edit-time",
		Short: "Replace the time of day, keeping the date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			editor, err := newEditor()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), editor.EditTime(dtValue, dtTime))
			return err
		},
	}
	editTimeCmd.Flags().StringVar(&dtTime, "time", "", "new time of day (HH:MM)")

	splitCmd := &cobra.Command{
		Use:   "split",
		Short: "Print the date and time-of-day parts of a timestamp",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			editor, err := newEditor()
			if err != nil {
				return err
			}
			date, hhmm := editor.Split(dtValue)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "date=%s\ntime=%s\n", date, hhmm)
			return err
		},
	}

	datetimeCmd.AddCommand(editDateCmd, editTimeCmd, splitCmd)
	RegisterCommand(datetimeCmd)
}

func newEditor() (datetime.Editor, error) {
	loc, err := time.LoadLocation(dtLocation)
	if err != nil {
		return datetime.Editor{}, fmt.Errorf("invalid --tz: %w", err)
	}
	return datetime.Editor{Location: loc}, nil
}
