package cli

import (
	"github.com/spf13/cobra"

	"github.com/shaiso/Composer/internal/engine"
)

// NewOperatorsCmd создаёт группу команд для справки по операторам.
func NewOperatorsCmd(outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "operators",
		Short: "Inspect supported task types",
	}

	cmd.AddCommand(
		newOperatorsListCmd(outputFn),
	)

	return cmd
}

func newOperatorsListCmd(outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known task types and their Airflow operator classes",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			types := engine.OperatorTypes()

			headers := []string{"TYPE", "OPERATOR_CLASS"}
			rows := make([][]string, len(types))
			jsonData := make(map[string]string, len(types))
			for i, t := range types {
				class := engine.OperatorClassName(t)
				rows[i] = []string{t, class}
				jsonData[t] = class
			}

			out.Print(headers, rows, jsonData)
			return nil
		},
	}
}
