package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"worldcountries/internal/filter"
	"worldcountries/internal/model"
	"worldcountries/internal/source"
	"worldcountries/internal/util"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

type Config struct {
	Source    string        `yaml:"source"`
	Endpoint  string        `yaml:"endpoint"`
	FilePath  string        `yaml:"file"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
	Locale    string        `yaml:"locale"`
	Theme     Theme         `yaml:"theme"`

	// Initial view state
	Search     string `yaml:"search"`
	MinBorders int    `yaml:"min_borders"`
	SortKey    string `yaml:"sort"`
	Direction  string `yaml:"order"`
	Where      string `yaml:"where"`

	// list command output
	Format string `yaml:"format"`
	Out    string `yaml:"out"`

	LogLevel  string `yaml:"log_level"`
	LogFile   string `yaml:"log_file"`
	LogStderr bool   `yaml:"log_stderr"`

	ConfigFile string `yaml:"-"`
}

// Default returns the built-in defaults overridden by environment variables.
func Default() *Config {
	return &Config{
		Source:    getenvDefault("WORLDCOUNTRIES_SOURCE", string(source.KindHTTP)),
		Endpoint:  getenvDefault("WORLDCOUNTRIES_ENDPOINT", source.DefaultEndpoint),
		Timeout:   getenvDefaultDuration("WORLDCOUNTRIES_TIMEOUT", 15*time.Second),
		Locale:    getenvDefault("WORLDCOUNTRIES_LOCALE", "en"),
		Theme:     Theme(getenvDefault("WORLDCOUNTRIES_THEME", string(ThemeDark))),
		SortKey:   string(model.SortByName),
		Direction: string(model.Ascending),
		Format:    "table",
		LogLevel:  getenvDefault("WORLDCOUNTRIES_LOG_LEVEL", "info"),
		LogStderr: getenvDefaultBool("WORLDCOUNTRIES_LOG_STDERR", false),
	}
}

// BindFlags registers every setting on fs; flags default to the current values.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.ConfigFile, "config", "", "YAML config file (flags override it)")
	fs.StringVar(&c.Source, "source", c.Source, "data source: http|file|demo")
	fs.StringVar(&c.Endpoint, "endpoint", c.Endpoint, "country directory URL (http source)")
	fs.StringVar(&c.FilePath, "file", c.FilePath, "path to a JSON payload (file source)")
	fs.DurationVar(&c.Timeout, "timeout", c.Timeout, "request timeout")
	fs.StringVar(&c.UserAgent, "user-agent", c.UserAgent, "User-Agent header override")
	fs.StringVar(&c.Locale, "locale", c.Locale, "BCP 47 locale for name ordering")
	fs.Var(&c.Theme, "theme", "theme: dark|light")
	fs.StringVarP(&c.Search, "search", "s", c.Search, "initial name search")
	fs.IntVarP(&c.MinBorders, "min-borders", "b", c.MinBorders, "initial minimum number of borders")
	fs.StringVar(&c.SortKey, "sort", c.SortKey, "sort key: name|population|area|borders")
	fs.StringVar(&c.Direction, "order", c.Direction, "sort direction: asc|desc")
	fs.StringVarP(&c.Where, "where", "w", c.Where, "filter expression, e.g. \"population > 1e6 && region == 'Europe'\"")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug|info|warn|error")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "append application logs to this file")
	fs.BoolVar(&c.LogStderr, "log-stderr", c.LogStderr, "also write application logs to stderr")
}

// BindListFlags registers flags only the list command uses.
func (c *Config) BindListFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Format, "format", "f", c.Format, "output format: table|csv|json")
	fs.StringVarP(&c.Out, "out", "o", c.Out, "write to this file instead of stdout")
}

func (t *Theme) String() string { return string(*t) }

func (t *Theme) Set(s string) error {
	switch Theme(strings.ToLower(s)) {
	case ThemeDark, ThemeLight:
		*t = Theme(strings.ToLower(s))
		return nil
	}
	return fmt.Errorf("unknown theme %q (dark|light)", s)
}

func (t *Theme) Type() string { return "theme" }

// flagNames maps YAML keys to the flag that overrides them.
var flagNames = map[string]string{
	"source": "source", "endpoint": "endpoint", "file": "file", "timeout": "timeout",
	"user_agent": "user-agent", "locale": "locale", "theme": "theme",
	"search": "search", "min_borders": "min-borders", "sort": "sort", "order": "order", "where": "where",
	"format": "format", "out": "out", "log_level": "log-level", "log_file": "log-file", "log_stderr": "log-stderr",
}

// Resolve applies the config file (when set) for every setting whose flag was
// not given explicitly, then validates. Precedence: flag > file > env > default.
func (c *Config) Resolve(fs *pflag.FlagSet) error {
	if c.ConfigFile != "" {
		b, err := os.ReadFile(c.ConfigFile)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if err := c.mergeYAML(b, fs); err != nil {
			return fmt.Errorf("config: %s: %w", c.ConfigFile, err)
		}
	}
	return c.Validate()
}

func (c *Config) mergeYAML(b []byte, fs *pflag.FlagSet) error {
	var present map[string]yaml.Node
	if err := yaml.Unmarshal(b, &present); err != nil {
		return err
	}
	var fromFile Config
	if err := yaml.Unmarshal(b, &fromFile); err != nil {
		return err
	}
	for key := range present {
		name, ok := flagNames[key]
		if !ok {
			return fmt.Errorf("unknown key %q", key)
		}
		if fs != nil && fs.Changed(name) {
			continue
		}
		switch key {
		case "source":
			c.Source = fromFile.Source
		case "endpoint":
			c.Endpoint = fromFile.Endpoint
		case "file":
			c.FilePath = fromFile.FilePath
		case "timeout":
			c.Timeout = fromFile.Timeout
		case "user_agent":
			c.UserAgent = fromFile.UserAgent
		case "locale":
			c.Locale = fromFile.Locale
		case "theme":
			c.Theme = fromFile.Theme
		case "search":
			c.Search = fromFile.Search
		case "min_borders":
			c.MinBorders = fromFile.MinBorders
		case "sort":
			c.SortKey = fromFile.SortKey
		case "order":
			c.Direction = fromFile.Direction
		case "where":
			c.Where = fromFile.Where
		case "format":
			c.Format = fromFile.Format
		case "out":
			c.Out = fromFile.Out
		case "log_level":
			c.LogLevel = fromFile.LogLevel
		case "log_file":
			c.LogFile = fromFile.LogFile
		case "log_stderr":
			c.LogStderr = fromFile.LogStderr
		}
	}
	return nil
}

func (c *Config) Validate() error {
	switch source.Kind(c.Source) {
	case source.KindHTTP:
		if strings.TrimSpace(c.Endpoint) == "" {
			return errors.New("--endpoint is required for the http source")
		}
	case source.KindFile:
		if strings.TrimSpace(c.FilePath) == "" {
			return errors.New("--source file requires --file path")
		}
	case source.KindDemo:
	default:
		return fmt.Errorf("unknown source %q (http|file|demo)", c.Source)
	}
	if c.Timeout <= 0 {
		return errors.New("--timeout must be positive")
	}
	if c.Theme != ThemeDark && c.Theme != ThemeLight {
		return fmt.Errorf("unknown theme %q (dark|light)", c.Theme)
	}
	if c.MinBorders < 0 {
		c.MinBorders = 0
	}
	if _, err := c.InitialQuery(); err != nil {
		return err
	}
	if w := strings.TrimSpace(c.Where); w != "" {
		if _, err := filter.Compile(w); err != nil {
			return err
		}
	}
	switch c.Format {
	case "table", "csv", "json":
	default:
		return fmt.Errorf("unknown format %q (table|csv|json)", c.Format)
	}
	return nil
}

// InitialQuery is the view state the UI and list command start from.
func (c *Config) InitialQuery() (model.Query, error) {
	key, err := model.ParseSortKey(c.SortKey)
	if err != nil {
		return model.Query{}, err
	}
	dir, err := model.ParseSortDirection(c.Direction)
	if err != nil {
		return model.Query{}, err
	}
	q := model.Query{Search: c.Search, SortKey: key, Direction: dir, Where: strings.TrimSpace(c.Where)}
	return q.WithMinBorders(c.MinBorders), nil
}

func (c *Config) SourceOptions() source.Options {
	return source.Options{
		Kind:      source.Kind(c.Source),
		Endpoint:  c.Endpoint,
		Path:      c.FilePath,
		Timeout:   c.Timeout,
		UserAgent: c.UserAgent,
	}
}

func getenvDefault(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// getenvDefaultBool treats 0, false, no and off as false and any other
// non-empty value as true.
func getenvDefaultBool(k string, d bool) bool {
	switch v := strings.ToLower(strings.TrimSpace(os.Getenv(k))); v {
	case "":
		return d
	case "0", "false", "no", "off":
		return false
	}
	return true
}

func getenvDefaultDuration(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	// bare seconds
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return d
}

func (c *Config) String() string {
	loc := c.FilePath
	if c.Source == string(source.KindHTTP) {
		loc = util.RedactURL(c.Endpoint)
	}
	return fmt.Sprintf("source=%s at=%s timeout=%s locale=%s theme=%s", c.Source, loc, c.Timeout, c.Locale, c.Theme)
}
