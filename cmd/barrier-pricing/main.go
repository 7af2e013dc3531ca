package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iwvelando/barrier-pricing/internal/config"
	"github.com/iwvelando/barrier-pricing/internal/experiment"
	"github.com/iwvelando/barrier-pricing/internal/pricing"
	"github.com/iwvelando/barrier-pricing/pkg/constants"
	"github.com/iwvelando/barrier-pricing/pkg/output"
	"github.com/iwvelando/barrier-pricing/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings, err := conf.ValidateConfiguration()
	if err != nil {
		logger.Fatal("invalid configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	params, err := conf.OptionParams()
	if err != nil {
		logger.Fatal("failed to construct option parameters",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// The closed-form vanilla price gives context for the convergence runs.
	reference, err := pricing.VanillaBlackScholes(params)
	if err != nil {
		logger.Fatal("failed to compute analytic reference price",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	logger.Info("analytic vanilla Black-Scholes reference price",
		zap.String("op", "main"),
		zap.Float64("price", reference),
	)

	mcResults, err := experiment.RunMCConvergence(logger, params, conf.Experiment.Paths,
		conf.Experiment.MonteCarloSteps, conf.Experiment.Antithetic, conf.Experiment.Seed)
	if err != nil {
		logger.Fatal("failed to run Monte Carlo convergence sweep",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	treeResults, err := experiment.RunTreeConvergence(logger, params, conf.Experiment.TreeSteps)
	if err != nil {
		logger.Fatal("failed to run binomial tree convergence sweep",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	results := append(mcResults, treeResults...)

	err = output.SaveResultsCSV(results, conf.Output.ResultsFile)
	if err != nil {
		logger.Fatal("failed to persist results",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	logger.Info("saved results",
		zap.String("op", "main"),
		zap.String("path", conf.Output.ResultsFile),
	)

	err = output.PlotConvergence(results, conf.Output.PlotsDirectory)
	if err != nil {
		logger.Fatal("failed to render convergence plots",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	logger.Info("rendered convergence plots",
		zap.String("op", "main"),
		zap.String("dir", conf.Output.PlotsDirectory),
	)

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(results)
	case constants.OutputFormatCSV:
		if err := output.CsvFormat(results); err != nil {
			logger.Fatal("failed to write CSV output",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}
