package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"couchpotato/internal/catalog"
	"couchpotato/internal/nav"
)

// Config captures runtime configuration for the application.
type Config struct {
	// CatalogPath is a .toml/.yaml seed file; empty uses the embedded seed.
	CatalogPath string
	// Source selects the catalog backend (memory or sqlite).
	Source  string
	Section catalog.Section
	// Route is an initial route string, e.g. "details/shows/The%20Office".
	Route   string
	Logging Logging
	// File is the config file that was applied, if any.
	File string
	Args []string
}

type Logging struct {
	FilePath string
	Debug    bool
}

// fileConfig mirrors config.toml. Unset keys keep their defaults.
type fileConfig struct {
	Catalog string `toml:"catalog"`
	Source  string `toml:"source"`
	Section string `toml:"section"`
	Route   string `toml:"route"`
	LogFile string `toml:"log_file"`
	Debug   *bool  `toml:"debug"`
}

const (
	envConfig  = "COUCHPOTATO_CONFIG"
	envCatalog = "COUCHPOTATO_CATALOG"
	envSource  = "COUCHPOTATO_SOURCE"
	envSection = "COUCHPOTATO_SECTION"
	envRoute   = "COUCHPOTATO_ROUTE"
	envLogFile = "COUCHPOTATO_LOG_FILE"
	envDebug   = "COUCHPOTATO_DEBUG"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Precedence is
// flag, then environment, then config file, then built-in default.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	path, explicit := configPath(args, env)
	var file fileConfig
	if path != "" {
		if _, err := toml.DecodeFile(path, &file); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return Config{}, fmt.Errorf("config file %s: %w", path, err)
			}
			path = ""
		}
	}

	debugDefault := false
	if file.Debug != nil {
		debugDefault = *file.Debug
	}

	fs := flag.NewFlagSet("couchpotato", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("config", path, "path to a TOML config file")
	catalogPath := fs.String("catalog", envOrDefault(env, envCatalog, file.Catalog), "path to a .toml or .yaml catalog seed (default: built-in catalog)")
	source := fs.String("source", envOrDefault(env, envSource, orDefault(file.Source, catalog.KindMemory)), "catalog backend: memory or sqlite")
	section := fs.String("section", envOrDefault(env, envSection, orDefault(file.Section, "movies")), "initial section: movies or shows")
	route := fs.String("route", envOrDefault(env, envRoute, file.Route), "initial route, e.g. details/movies/Inception")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, file.LogFile), "path to the log file (logs are discarded when empty)")
	debug := fs.Bool("debug", envOrBool(env, envDebug, debugDefault), "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	sec, err := catalog.ParseSection(*section)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		CatalogPath: *catalogPath,
		Source:      strings.ToLower(strings.TrimSpace(*source)),
		Section:     sec,
		Route:       *route,
		Logging: Logging{
			FilePath: *logFile,
			Debug:    *debug,
		},
		File: path,
		Args: append([]string(nil), fs.Args()...),
	}
	return cfg, Validate(cfg)
}

// configPath finds the config file: --config, then COUCHPOTATO_CONFIG, then
// the XDG default. explicit is false for the XDG default, which may be absent.
func configPath(args []string, env map[string]string) (string, bool) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			break
		}
		name := strings.TrimLeft(a, "-")
		if name == a {
			continue
		}
		if v, ok := strings.CutPrefix(name, "config="); ok {
			return v, true
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1], true
		}
	}
	if v := env[envConfig]; v != "" {
		return v, true
	}
	dir := env["XDG_CONFIG_HOME"]
	if dir == "" {
		home := env["HOME"]
		if home == "" {
			return "", false
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "couchpotato", "config.toml"), false
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		values[k] = v
	}
	return values
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok && v != "" {
		return v
	}
	return fallback
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprint(os.Stdout, Usage())
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Usage renders the flag help text.
func Usage() string {
	var b strings.Builder
	fs := flag.NewFlagSet("couchpotato", flag.ContinueOnError)
	fs.SetOutput(&b)
	fs.String("config", "", "path to a TOML config file")
	fs.String("catalog", "", "path to a .toml or .yaml catalog seed (default: built-in catalog)")
	fs.String("source", catalog.KindMemory, "catalog backend: memory or sqlite")
	fs.String("section", "movies", "initial section: movies or shows")
	fs.String("route", "", "initial route, e.g. details/movies/Inception")
	fs.String("log-file", "", "path to the log file (logs are discarded when empty)")
	fs.Bool("debug", false, "enable debug logging")
	fmt.Fprintln(&b, "Usage: couchpotato [flags]")
	fs.PrintDefaults()
	return b.String()
}

// Validate checks enum values and the initial route.
func Validate(cfg Config) error {
	switch cfg.Source {
	case catalog.KindMemory, catalog.KindSQLite:
	default:
		return fmt.Errorf("source must be %q or %q (got %q)", catalog.KindMemory, catalog.KindSQLite, cfg.Source)
	}
	if !cfg.Section.Valid() {
		return fmt.Errorf("invalid section %d", int(cfg.Section))
	}
	if cfg.Route != "" {
		if _, err := nav.ParseRoute(cfg.Route); err != nil {
			return err
		}
	}
	return nil
}
