package cmd

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"memoprof.dev/pkg/memoprof/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "memoprof"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName        = "output"
	engineFlagName        = "engine"
	verboseFlagName       = "verbose"
	logFileFlagName       = "log-file"
	parallelFlagName      = "parallel"
	timeSensitiveFlagName = "time-sensitive"
	trialsFlagName        = "trials"
	pumpsFlagName         = "pumps"
	keepArtifactsFlagName = "keep-artifacts"
	noExpandFlagName      = "no-expand"
	detectOnlyFlagName    = "detect-only"
	maxMSFlagName         = "max-ms"
	semanticFlagName      = "semantic"
	performanceFlagName   = "performance"

	enginePathKey          = "engine.path"
	engineKeepArtifactsKey = "engine.keep_artifacts"
	engineArtifactDirKey   = "engine.artifact_dir"
	detectLadderKey        = "detect.ladder"
	detectTimeoutKey       = "detect.timeout"
	detectExpandKey        = "detect.expand"
	detectOnlyKey          = "detect.only"
	measurePumpsKey        = "measure.pumps"
	measureTrialsKey       = "measure.trials"
	measureTimeoutKey      = "measure.timeout"
	measureCVWarnKey       = "measure.cv_warn"
	runParallelConfigKey   = "run.parallel"
	runTimeSensitiveKey    = "run.time_sensitive"
	runSpillDirKey         = "run.spill_dir"
	storeSQLiteKey         = "store.sqlite"
	referenceEnginesKey    = "reference.engines"
	referenceTimeoutKey    = "reference.timeout"
	curveTrialsKey         = "curve.trials"
	curveMaxMSKey          = "curve.max_ms"
	curveTimeoutKey        = "curve.timeout"

	defaultReportsDir  = ".memoprof-results"
	defaultRunParallel = 0

	envPrefix = "MEMOPROF"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	// consoleLogFilename sends logs to stderr instead of a rotating file.
	consoleLogFilename = "-"

	defaultLogFilename   = ".memoprof.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	defaults := domain.DefaultConfig()

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportsDir)
	viper.SetDefault(enginePathKey, "")
	viper.SetDefault(engineKeepArtifactsKey, false)
	viper.SetDefault(engineArtifactDirKey, "")
	viper.SetDefault(detectLadderKey, defaults.DetectionPumpLadder)
	viper.SetDefault(detectTimeoutKey, defaults.DetectionTimeout.String())
	viper.SetDefault(detectExpandKey, defaults.ExpandTemplates)
	viper.SetDefault(detectOnlyKey, defaults.DetectOnly)
	viper.SetDefault(measurePumpsKey, defaults.MeasurementPumpCounts)
	viper.SetDefault(measureTrialsKey, defaults.TrialsPerCondition)
	viper.SetDefault(measureTimeoutKey, defaults.MeasurementTimeout.String())
	viper.SetDefault(measureCVWarnKey, defaults.CVWarnThreshold)
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(runTimeSensitiveKey, defaults.TimeSensitive)
	viper.SetDefault(runSpillDirKey, "")
	viper.SetDefault(storeSQLiteKey, "")
	viper.SetDefault(referenceEnginesKey, map[string][]string{})
	viper.SetDefault(referenceTimeoutKey, defaults.ReferenceTimeout.String())
	viper.SetDefault(curveTrialsKey, domain.DefaultCurveTrials)
	viper.SetDefault(curveMaxMSKey, domain.DefaultCurveMaxMatchMS)
	viper.SetDefault(curveTimeoutKey, domain.DefaultCurveQueryTimeout.String())

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return
		}

		slog.Warn("Failed to read config file", "path", viper.ConfigFileUsed(), "error", err)
	}
}

// pipelineConfig builds the measurement configuration from flags, env and config file.
func pipelineConfig() domain.Config {
	cfg := domain.DefaultConfig()

	cfg.DetectionPumpLadder = viper.GetIntSlice(detectLadderKey)
	cfg.MeasurementPumpCounts = viper.GetIntSlice(measurePumpsKey)
	cfg.TrialsPerCondition = viper.GetInt(measureTrialsKey)
	cfg.DetectionTimeout = viper.GetDuration(detectTimeoutKey)
	cfg.MeasurementTimeout = viper.GetDuration(measureTimeoutKey)
	cfg.ReferenceTimeout = viper.GetDuration(referenceTimeoutKey)
	cfg.ExpandTemplates = viper.GetBool(detectExpandKey)
	cfg.CVWarnThreshold = viper.GetFloat64(measureCVWarnKey)
	cfg.Workers = viper.GetInt(runParallelConfigKey)
	cfg.TimeSensitive = viper.GetBool(runTimeSensitiveKey)
	cfg.DetectOnly = viper.GetBool(detectOnlyKey)

	return cfg
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	if d := viper.GetDuration(key); d > 0 {
		return d
	}

	return fallback
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info to a rotating file; if verbose is true it logs
// at Debug. A log path of "-" logs to stderr with colors.
func configureLogger(logPath string, verbose bool, stderr io.Writer) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	var handler slog.Handler

	if logPath == consoleLogFilename {
		handler = tint.NewHandler(stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.Kitchen,
		})
	} else {
		logWriter := &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    viper.GetInt(logMaxSizeKey),
			MaxBackups: viper.GetInt(logMaxBackupsKey),
			MaxAge:     viper.GetInt(logMaxAgeKey),
			Compress:   viper.GetBool(logCompressKey),
		}

		handler = slog.NewTextHandler(logWriter, &slog.HandlerOptions{
			AddSource: true,
			Level:     logLevel,
		})
	}

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
