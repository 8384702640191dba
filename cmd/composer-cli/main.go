// Composer CLI — инструмент командной строки для генерации
// Airflow DAG программ из декларативных YAML-спецификаций pipeline.
//
// Использование:
//
//	composer [--json] <command> [flags]
//
// Команды:
//
//	render     Рендеринг спецификации в текст DAG программы
//	operators  Справка по поддерживаемым типам задач
//	schedule   Подсказки по интервалам расписания
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shaiso/Composer/internal/cli"
	"github.com/shaiso/Composer/internal/telemetry"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	telemetry.SetupLogger()

	var jsonOutput bool

	rootCmd := &cobra.Command{
		Use:           "composer",
		Short:         "Composer CLI — pipeline to Airflow DAG generator",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	outputFn := func() *cli.Output { return cli.NewOutput(jsonOutput) }

	rootCmd.AddCommand(
		cli.NewRenderCmd(outputFn),
		cli.NewOperatorsCmd(outputFn),
		cli.NewScheduleCmd(outputFn),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
