package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "pragmacheck"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	syntaxFlagName      = "syntax"
	excludeFlagName     = "exclude"
	recursiveFlagName   = "recursive"
	patternsFlagName    = "patterns"
	stopOnErrorFlagName = "stop-on-error"
	parallelFlagName    = "parallel"
	verboseFlagName     = "verbose"
	quietFlagName       = "quiet"
	tuiFlagName         = "tui"
	reportFlagName      = "report"
	logVerboseFlagName  = "log-verbose"

	syntaxConfigKey      = "syntax"
	excludeConfigKey     = "paths.exclude"
	recursiveConfigKey   = "check.recursive"
	patternsConfigKey    = "check.patterns"
	stopOnErrorConfigKey = "check.stop_on_error"
	parallelConfigKey    = "check.parallel"
	verboseConfigKey     = "output.verbose"
	quietConfigKey       = "output.quiet"
	tuiConfigKey         = "output.tui"
	reportConfigKey      = "report"

	defaultSyntaxFile  = "syntax.json"
	defaultRecursive   = false
	defaultStopOnError = false
	defaultParallel    = 1
	defaultVerbose     = false
	defaultQuiet       = false
	defaultTUI         = false
	defaultReport      = ""

	envPrefix = "PRAGMACHECK"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".pragmacheck.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var defaultPatterns = []string{"*.hpp", "*.cpp"}

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setConfigDefaults()
	readConfigFile()
}

// readConfigFile loads the optional config file. A missing file is silent.
func readConfigFile() {
	if err := viper.ReadInConfig(); err != nil {
		if isConfigNotFound(err) {
			return
		}

		slog.Warn("Failed to read config file", "file", configFileName, "error", err)
	}
}

// isConfigNotFound reports whether err means there is no config file.
// SetConfigFile makes viper return the raw open error instead of
// ConfigFileNotFoundError.
func isConfigNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError

	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

func setConfigDefaults() {
	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(syntaxConfigKey, defaultSyntaxFile)
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(recursiveConfigKey, defaultRecursive)
	viper.SetDefault(patternsConfigKey, defaultPatterns)
	viper.SetDefault(stopOnErrorConfigKey, defaultStopOnError)
	viper.SetDefault(parallelConfigKey, defaultParallel)
	viper.SetDefault(verboseConfigKey, defaultVerbose)
	viper.SetDefault(quietConfigKey, defaultQuiet)
	viper.SetDefault(tuiConfigKey, defaultTUI)
	viper.SetDefault(reportConfigKey, defaultReport)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
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
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
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

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
