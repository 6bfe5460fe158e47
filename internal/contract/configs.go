package contract

import (
	"fmt"
	"math"
	"net"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/orderpulse/schema"
	"github.com/robfig/cron/v3"
)

// Default values for configuration.
const (
	DefaultBaseURL   = "http://localhost:5000"
	DefaultTimeout   = 30 * time.Second
	DefaultCacheTTL  = 5 * time.Minute
	DefaultPrecision = 2
	DefaultSchedule  = "@every 5m"
	DefaultLogLevel  = "warn"
	DefaultRange     = "0,100"
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// validLogLevels lists the log levels understood by the logger.
var validLogLevels = []string{"debug", "info", "warn", "error"}

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for every command.
// This struct is the "final, validated" config.
type Config struct {
	BaseURL      string
	Timeout      time.Duration
	CacheBackend schema.CacheBackend
	CacheTTL     time.Duration

	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	Filters schema.Filters
	Range   schema.VisibleRange
	Page    int
	PerPage int
	Item    string // stock code whose price history is expanded

	Views       []schema.View
	Schedule    string
	MetricsAddr string // serve Prometheus metrics here while watching (empty = off)

	LogLevel string
	Env      string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	BaseURL      string `mapstructure:"base-url"`
	Timeout      string `mapstructure:"timeout"`
	CacheBackend string `mapstructure:"cache-backend"`
	CacheTTL     string `mapstructure:"cache-ttl"`
	Precision    int    `mapstructure:"precision"`
	Output       string `mapstructure:"output"`
	OutputFile   string `mapstructure:"output-file"`
	Width        int    `mapstructure:"width"`
	Color        string `mapstructure:"color"`
	LogLevel     string `mapstructure:"log-level"`
	Env          string `mapstructure:"env"`

	// --- Filter flags shared by trend, orders, dashboard and watch ---
	Branch       string `mapstructure:"branch"`
	Area         string `mapstructure:"area"`
	Customer     string `mapstructure:"customer"`
	ProductClass string `mapstructure:"product-class"`
	Salesperson  string `mapstructure:"salesperson"`

	// --- Fields from trendCmd.Flags() ---
	Range string `mapstructure:"range"`

	// --- Fields from ordersCmd.Flags() ---
	Page    int `mapstructure:"page"`
	PerPage int `mapstructure:"per-page"`

	// --- Fields from stockCmd.Flags() ---
	Item string `mapstructure:"item"`

	// --- Fields from dashboardCmd and watchCmd ---
	Views       string `mapstructure:"views"`
	Schedule    string `mapstructure:"schedule"`
	MetricsAddr string `mapstructure:"metrics-addr"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Views = slices.Clone(c.Views)
	clone.Filters = cloneFilters(c.Filters)
	return &clone
}

func cloneFilters(f schema.Filters) schema.Filters {
	var out schema.Filters
	for _, key := range schema.AllFilterKeys {
		if v, ok := f.Get(key); ok {
			_ = out.Set(string(key), v)
		}
	}
	return out
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateConnection(cfg, input); err != nil {
		return err
	}
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processFilters(cfg, input); err != nil {
		return err
	}
	if err := processViewInputs(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateConnection validates the service address and cache settings.
func validateConnection(cfg *Config, input *ConfigRawInput) error {
	baseURL, err := ValidateBaseURL(input.BaseURL)
	if err != nil {
		return err
	}
	cfg.BaseURL = baseURL

	timeout, err := parseDuration("timeout", input.Timeout, DefaultTimeout)
	if err != nil {
		return err
	}
	if timeout <= 0 {
		return fmt.Errorf("timeout must be greater than 0 (received %s)", input.Timeout)
	}
	cfg.Timeout = timeout

	backend := strings.ToLower(strings.TrimSpace(input.CacheBackend))
	if backend == "" {
		backend = string(schema.MemoryBackend)
	}
	cfg.CacheBackend = schema.CacheBackend(backend)
	if _, ok := schema.ValidCacheBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be memory, none", input.CacheBackend)
	}

	ttl, err := parseDuration("cache-ttl", input.CacheTTL, DefaultCacheTTL)
	if err != nil {
		return err
	}
	if ttl < 0 {
		return fmt.Errorf("cache-ttl cannot be negative (received %s)", input.CacheTTL)
	}
	cfg.CacheTTL = ttl
	return nil
}

// ValidateBaseURL checks that raw is an absolute http or https URL and strips any trailing slash.
func ValidateBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("base-url is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid base-url '%s': %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid base-url '%s'. scheme must be http or https", raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid base-url '%s'. host is missing", raw)
	}
	return strings.TrimRight(raw, "/"), nil
}

// validateSimpleInputs processes and validates the output related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.Env = strings.ToLower(strings.TrimSpace(input.Env))

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, yaml, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	level := strings.ToLower(strings.TrimSpace(input.LogLevel))
	if level == "" {
		level = DefaultLogLevel
	}
	if !slices.Contains(validLogLevels, level) {
		return fmt.Errorf("invalid log level '%s'. must be debug, info, warn, error", input.LogLevel)
	}
	cfg.LogLevel = level
	return nil
}

// processFilters builds the typed filter record from the individual flags.
func processFilters(cfg *Config, input *ConfigRawInput) error {
	var filters schema.Filters
	values := map[schema.FilterKey]string{
		schema.FilterBranch:       input.Branch,
		schema.FilterArea:         input.Area,
		schema.FilterCustomer:     input.Customer,
		schema.FilterProductClass: input.ProductClass,
		schema.FilterSalesperson:  input.Salesperson,
	}
	for _, key := range schema.AllFilterKeys {
		if err := filters.Set(string(key), values[key]); err != nil {
			return err
		}
	}
	cfg.Filters = filters
	return nil
}

// processViewInputs handles range, pagination, views and schedule.
func processViewInputs(cfg *Config, input *ConfigRawInput) error {
	r, err := ParseRange(input.Range)
	if err != nil {
		return err
	}
	cfg.Range = r

	if err := ValidatePaging(input.Page, input.PerPage); err != nil {
		return err
	}
	cfg.Page = input.Page
	cfg.PerPage = input.PerPage
	cfg.Item = strings.TrimSpace(input.Item)

	views, err := schema.ParseViews(input.Views)
	if err != nil {
		return err
	}
	cfg.Views = views

	schedule := strings.TrimSpace(input.Schedule)
	if schedule == "" {
		schedule = DefaultSchedule
	}
	if _, err := cron.ParseStandard(schedule); err != nil {
		return fmt.Errorf("invalid schedule '%s': %w", schedule, err)
	}
	cfg.Schedule = schedule

	addr := strings.TrimSpace(input.MetricsAddr)
	if addr != "" {
		if _, _, err := net.SplitHostPort(addr); err != nil {
			return fmt.Errorf("invalid metrics-addr '%s': %w", input.MetricsAddr, err)
		}
	}
	cfg.MetricsAddr = addr
	return nil
}

// ValidatePaging checks the page number and page size.
func ValidatePaging(page, perPage int) error {
	if page < 1 {
		return fmt.Errorf("page must be at least 1 (received %d)", page)
	}
	if perPage < 1 || perPage > schema.MaxPerPage {
		return fmt.Errorf("per-page must be between 1 and %d (received %d)", schema.MaxPerPage, perPage)
	}
	return nil
}

// ParseRange parses a "start,end" percentage pair. An empty string selects the full range.
func ParseRange(s string) (schema.VisibleRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return schema.FullRange, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return schema.VisibleRange{}, fmt.Errorf("invalid range '%s', expected 'start,end'", s)
	}
	start, err := parsePct(parts[0])
	if err != nil {
		return schema.VisibleRange{}, fmt.Errorf("invalid range start: %w", err)
	}
	end, err := parsePct(parts[1])
	if err != nil {
		return schema.VisibleRange{}, fmt.Errorf("invalid range end: %w", err)
	}
	r := schema.VisibleRange{StartPct: start, EndPct: end}
	if err := ValidateRange(r); err != nil {
		return schema.VisibleRange{}, err
	}
	return r, nil
}

// ValidateRange checks that both percentages lie in 0..100 and start does not exceed end.
func ValidateRange(r schema.VisibleRange) error {
	for _, v := range []float64{r.StartPct, r.EndPct} {
		if math.IsNaN(v) || v < 0 || v > 100 {
			return fmt.Errorf("range value %g is outside 0..100", v)
		}
	}
	if r.StartPct > r.EndPct {
		return fmt.Errorf("range start (%g) cannot be after range end (%g)", r.StartPct, r.EndPct)
	}
	return nil
}

func parsePct(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("'%s' is not a number", strings.TrimSpace(s))
	}
	if math.IsNaN(v) || v < 0 || v > 100 {
		return 0, fmt.Errorf("%g is outside 0..100", v)
	}
	return v, nil
}

// parseDuration parses a Go duration string, falling back to def when s is empty.
func parseDuration(name, s string, def time.Duration) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s '%s': %w", name, s, err)
	}
	return d, nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}
