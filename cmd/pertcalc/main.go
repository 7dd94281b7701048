package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mlefevre/pertcalc/internal/model"
	"github.com/mlefevre/pertcalc/internal/project"
	"github.com/mlefevre/pertcalc/internal/render"
	"github.com/mlefevre/pertcalc/internal/scheduler"
)

const (
	exitOK    = 0
	exitError = 1
	exitCycle = 2
)

var (
	flagFormat  string
	flagNoColor bool
	flagVerbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pertcalc",
		Short: "Critical Path Method scheduling for project plans",
		Long: `Pertcalc reads a project plan (tasks with durations and dependencies)
from a YAML file, computes the CPM/PERT schedule and reports earliest and
latest dates, slacks and the critical path.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "", "Output format: table, summary or json")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(scheduleCmd())
	rootCmd.AddCommand(checkCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		if errors.Is(err, scheduler.ErrCyclicDependency) {
			os.Exit(exitCycle)
		}
		os.Exit(exitError)
	}
}

func scheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule <project.yaml>",
		Short: "Compute the full schedule for a project file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer logger.Sync()
			loadConfig(logger)

			p, result, err := loadAndCompute(logger, args[0])
			if err != nil {
				return err
			}

			opts := render.Options{Color: useColor()}
			switch format() {
			case "json":
				return render.JSON(cmd.OutOrStdout(), p, result)
			case "summary":
				render.Summary(cmd.OutOrStdout(), p, result, opts)
			case "table":
				render.Table(cmd.OutOrStdout(), p, result, opts)
			default:
				return fmt.Errorf("unknown output format %q", format())
			}
			return nil
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <project.yaml>",
		Short: "Validate a project file without printing dates",
		Long: `Check loads a project file, validates its shape and verifies the
dependency graph is acyclic. It prints nothing but a confirmation on
success and exits non-zero on any problem.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer logger.Sync()
			loadConfig(logger)

			p, _, err := loadAndCompute(logger, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "OK: %s (%d tasks, acyclic)\n", p.Name, len(p.Tasks))
			return nil
		},
	}
}

// loadAndCompute runs the full pipeline: file load, form validation, then
// the scheduling engine. The engine re-checks everything the loader checked;
// both layers report typed errors the exit-code logic can inspect.
func loadAndCompute(logger *zap.Logger, path string) (*model.Project, *model.ScheduleResult, error) {
	loader := project.NewLoader(logger, project.WithMaxTasks(viper.GetInt("limits.max_tasks")))

	p, err := loader.Load(path)
	if err != nil {
		return nil, nil, err
	}

	result, err := scheduler.Compute(p.Tasks)
	if err != nil {
		return nil, nil, fmt.Errorf("schedule %q: %w", p.Name, err)
	}

	logger.Debug("schedule computed",
		zap.String("project", p.Name),
		zap.Int("tasks", len(result.Tasks)),
		zap.Int("duration", result.ProjectDuration),
		zap.Strings("critical_path", result.CriticalPath))

	return p, result, nil
}

// loadConfig reads the optional pertcalc.yaml. Missing config is fine;
// defaults cover everything.
func loadConfig(logger *zap.Logger) {
	viper.SetConfigName("pertcalc")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home + "/.config/pertcalc")
	}

	viper.SetDefault("output.format", "table")
	viper.SetDefault("output.color", true)
	viper.SetDefault("limits.max_tasks", project.DefaultMaxTasks)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			logger.Warn("Failed to read config file", zap.Error(err))
		}
	}
}

func format() string {
	if flagFormat != "" {
		return flagFormat
	}
	return viper.GetString("output.format")
}

func useColor() bool {
	if flagNoColor {
		return false
	}
	return viper.GetBool("output.color")
}

func newLogger() *zap.Logger {
	var cfg zap.Config
	if flagVerbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	return logger
}
