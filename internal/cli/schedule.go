package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shaiso/Composer/internal/schedule"
)

// NewScheduleCmd создаёт группу команд для работы с интервалами расписания.
func NewScheduleCmd(outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Inspect schedule intervals",
	}

	cmd.AddCommand(
		newScheduleNextCmd(outputFn),
	)

	return cmd
}

func newScheduleNextCmd(outputFn func() *Output) *cobra.Command {
	var count int
	var fromStr string

	cmd := &cobra.Command{
		Use:   "next INTERVAL",
		Short: "Show the next fire times of a schedule interval",
		Long: "Show the next fire times of a schedule_interval value\n" +
			"(a cron expression or a preset such as '@daily').",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			from := time.Now().UTC()
			if fromStr != "" {
				var err error
				from, err = time.Parse(time.RFC3339, fromStr)
				if err != nil {
					return fmt.Errorf("parse --from: %w", err)
				}
			}

			times, err := schedule.NextTimes(args[0], from, count)
			if err != nil {
				return err
			}

			headers := []string{"FIRE_TIME"}
			rows := make([][]string, len(times))
			jsonData := make([]string, len(times))
			for i, t := range times {
				s := t.Format(time.RFC3339)
				rows[i] = []string{s}
				jsonData[i] = s
			}

			out.Print(headers, rows, jsonData)
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 5, "Number of fire times to show")
	cmd.Flags().StringVar(&fromStr, "from", "", "Start time, RFC3339 (defaults to now)")

	return cmd
}
