package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	"gopkg.in/yaml.v3"

	"strata.dev/pkg/strata/internal/domain"
	m "strata.dev/pkg/strata/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "strata"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName      = "output"
	excludeFlagName     = "exclude"
	includeFlagName     = "include"
	langFlagName        = "lang"
	symbolsFlagName     = "symbols"
	verboseFlagName     = "verbose"
	runParallelFlagName = "parallel"
	shardFlagName       = "shard"
	diffFlagName        = "diff"
	variantFlagName     = "variant"

	excludeConfigKey       = "paths.exclude"
	includeConfigKey       = "paths.include"
	langConfigKey          = "source.lang"
	extensionsConfigKey    = "source.extensions"
	symbolsConfigKey       = "symbols_file"
	runParallelConfigKey   = "run.parallel"
	spillDirConfigKey      = "run.spill_dir"
	scanCacheSizeConfigKey = "run.scan_cache_size"
	includeDocConfigKey    = "extract.include_doc"
	requireDocConfigKey    = "extract.require_doc"
	strataConfigKey        = "strata"

	defaultOutputDir  = "strata-out"
	defaultIncludeDoc = true
	defaultRequireDoc = false

	envPrefix = "STRATA"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".strata.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var defaultRunParallel = runtime.NumCPU()

var globalLogger *slog.Logger

func init() {
	// Values already present in the environment win over .env entries.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "strata: failed to load .env: %v\n", err)
	}

	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultOutputDir)
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(includeConfigKey, []string{})
	viper.SetDefault(langConfigKey, "")
	viper.SetDefault(extensionsConfigKey, map[string]string{})
	viper.SetDefault(symbolsConfigKey, "")
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(spillDirConfigKey, "")
	viper.SetDefault(scanCacheSizeConfigKey, domain.DefaultScanCacheSize)
	viper.SetDefault(includeDocConfigKey, defaultIncludeDoc)
	viper.SetDefault(requireDocConfigKey, defaultRequireDoc)
	viper.SetDefault(strataConfigKey, defaultStrataSetting())

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return
		}

		fmt.Fprintf(os.Stderr, "strata: failed to read %s: %v\n", configFileName, err)
	}
}

// defaultStrataSetting returns the default strata in the generic form viper
// stores, so that init writes them out and UnmarshalKey decodes them like
// values read from a file.
func defaultStrataSetting() []any {
	data, err := yaml.Marshal(domain.DefaultStrataConfig())
	if err != nil {
		return nil
	}

	var generic []any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil
	}

	return generic
}

// loadStrata decodes and validates the configured strata.
func loadStrata() (m.Strata, error) {
	var configs []domain.StratumConfig
	if err := viper.UnmarshalKey(strataConfigKey, &configs); err != nil {
		return nil, fmt.Errorf("%w: %w", m.ErrInvalidStrata, err)
	}

	return domain.ParseStrata(configs)
}

// loadExtractOptions reads and validates the extract section.
func loadExtractOptions() (domain.ExtractOptions, error) {
	opts := domain.ExtractOptions{
		IncludeDoc: viper.GetBool(includeDocConfigKey),
		RequireDoc: viper.GetBool(requireDocConfigKey),
	}

	return opts, opts.Validate()
}

// loadSymbols reads the symbol table file. Viper folds map keys to lower
// case, so identifiers are kept in their own YAML file.
func loadSymbols() (m.SymbolTable, error) {
	path := strings.TrimSpace(viper.GetString(symbolsConfigKey))
	if path == "" {
		return domain.ParseSymbolTable(domain.SymbolTableConfig{})
	}

	// #nosec G304 - the path is user configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return m.SymbolTable{}, fmt.Errorf("read symbols file: %w", err)
	}

	var cfg domain.SymbolTableConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return m.SymbolTable{}, fmt.Errorf("%w: %w", m.ErrInvalidSymbolTable, err)
	}

	return domain.ParseSymbolTable(cfg)
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

	// Numeric slog levels, e.g. -4 for debug.
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger writing to a rotated
// log file. It logs at the configured level, or at Debug when verbose.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	logLevel := parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	if verbose {
		logLevel = slog.LevelDebug
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
