
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Config is shared by the CLI and the server. Every field can also be set
// from the environment.
type Config struct {
	Input     string `long:"input" short:"i" env:"CLASSIFIER_INPUT" description:"URL list (tsv first column, csv with 'url' header, or ndjson)"`
	Output    string `long:"output" short:"o" env:"CLASSIFIER_OUTPUT" description:"Result file (default stdout)"`
	Format    string `long:"format" env:"CLASSIFIER_FORMAT" default:"tsv" choice:"tsv" choice:"ndjson" description:"Result format"`
	Retailers string `long:"retailers" env:"CLASSIFIER_RETAILERS" default:"retailer_list.csv" description:"Retailer domain list (tsv, first column)"`
	Rules     string `long:"rules" env:"CLASSIFIER_RULES" description:"YAML keyword rule table (default built-in table)"`
	Keywords  int    `long:"keywords" env:"CLASSIFIER_KEYWORDS" default:"30" description:"Top keywords taken from each page"`

	Timeout     time.Duration `long:"timeout" env:"CLASSIFIER_TIMEOUT" default:"15s" description:"Per-page fetch timeout"`
	DialTimeout time.Duration `long:"dial-timeout" env:"CLASSIFIER_DIAL_TIMEOUT" default:"5s" description:"TCP dial timeout"`
	MaxBody     int64         `long:"max-body" env:"CLASSIFIER_MAX_BODY" default:"5242880" description:"Maximum page size in bytes"`
	Rate        float64       `long:"rate" env:"CLASSIFIER_RATE" default:"0" description:"Maximum fetches per second (0 = unlimited)"`
	Robots      bool          `long:"robots" env:"CLASSIFIER_ROBOTS" description:"Honour robots.txt"`
	UserAgent   string        `long:"user-agent" env:"CLASSIFIER_USER_AGENT" description:"User agent for page fetches"`

	Addr string `long:"addr" env:"CLASSIFIER_ADDR" default:":8080" description:"Server listen address"`

	LogLevel  string `long:"log-level" env:"CLASSIFIER_LOG_LEVEL" default:"info" choice:"debug" choice:"info" choice:"warn" choice:"error" description:"Log level"`
	LogFormat string `long:"log-format" env:"CLASSIFIER_LOG_FORMAT" default:"console" choice:"console" choice:"json" description:"Log format"`
}

// Load parses args and the environment. It returns nil, nil when help was
// requested and already printed.
func Load(args []string) (*Config, error) {
	var cfg Config
	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if cfg.Keywords <= 0 {
		return nil, fmt.Errorf("keywords must be positive, got %d", cfg.Keywords)
	}
	if cfg.MaxBody <= 0 {
		return nil, fmt.Errorf("max-body must be positive, got %d", cfg.MaxBody)
	}
	return &cfg, nil
}
