package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/shaiso/Composer/internal/config"
	"github.com/shaiso/Composer/internal/domain"
	"github.com/shaiso/Composer/internal/engine"
	"github.com/shaiso/Composer/internal/telemetry"
)

// NewRenderCmd создаёт команду рендеринга pipeline в Airflow DAG программу.
func NewRenderCmd(outputFn func() *Output) *cobra.Command {
	var name string
	var envPath string
	var outPath string

	cmd := &cobra.Command{
		Use:   "render [SPEC_FILE]",
		Short: "Render a pipeline spec into Airflow DAG source",
		Long: "Render a declarative YAML pipeline spec into Airflow DAG source code.\n" +
			"Reads the spec from SPEC_FILE, or from stdin when no file is given.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			specText, specPath, err := readSpec(args)
			if err != nil {
				return err
			}

			dagName := name
			if dagName == "" {
				if specPath == "" {
					return fmt.Errorf("--name is required when reading from stdin")
				}
				dagName = strings.TrimSuffix(filepath.Base(specPath), filepath.Ext(specPath))
			}

			env := domain.Env{}
			if envPath != "" {
				env, err = config.LoadEnv(envPath)
				if err != nil {
					return err
				}
			}

			logger := telemetry.WithPipeline(slog.Default(), dagName)
			logger.Debug("rendering pipeline", "spec", specPath, "env", envPath)

			program, err := engine.Render(specText, dagName, env)
			if err != nil {
				return err
			}
			if program == "" {
				logger.Warn("empty spec, nothing to render")
				return nil
			}

			if outPath == "" {
				fmt.Fprint(out.Writer(), program)
				return nil
			}

			if err := writeFileAtomic(outPath, program); err != nil {
				return err
			}
			out.Success("Wrote " + outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "DAG identifier (defaults to the spec file base name)")
	cmd.Flags().StringVar(&envPath, "env", "", "YAML file with named SQL queries for $name references")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output file (defaults to stdout)")

	return cmd
}

// readSpec читает текст спецификации из файла или stdin.
// Возвращает текст и путь к файлу ("" для stdin).
func readSpec(args []string) (string, string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), "", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("read spec: %w", err)
	}
	return string(data), args[0], nil
}

// writeFileAtomic записывает файл через временное имя и rename,
// чтобы читатели не увидели частично записанную программу.
func writeFileAtomic(path, text string) error {
	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())
	if err := os.WriteFile(tmp, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
