package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/zoobzio/zlog"
	"gopkg.in/yaml.v3"
)

const (
	defaultDialect = "postgres"
	dialectEnv     = "ASTDDL_DIALECT"
	databaseEnv    = "ASTDDL_DATABASE_URL"
)

var errNoIndexes = errors.New("no indexes defined")

// globalOptions holds the persistent flags.
type globalOptions struct {
	file    string
	dialect string
	verbose bool
}

// Config represents an index definitions file.
type Config struct {
	Dialect     string     `yaml:"dialect"`
	DatabaseURL string     `yaml:"database_url"`
	Indexes     []IndexDef `yaml:"indexes"`
}

// IndexDef is one index as written in the definitions file.
type IndexDef struct {
	Name         string      `yaml:"name"`
	Table        string      `yaml:"table"`
	Columns      []ColumnDef `yaml:"columns"`
	Type         string      `yaml:"type"`
	Unique       bool        `yaml:"unique"`
	Primary      bool        `yaml:"primary"`
	IfNotExists  bool        `yaml:"if_not_exists"`
	Concurrently bool        `yaml:"concurrently"`
	NullsNotDist bool        `yaml:"nulls_not_distinct"`
	Include      []string    `yaml:"include"`
	Where        string      `yaml:"where"`
}

// ColumnDef is an index key. A bare string in YAML is accepted as the column name.
type ColumnDef struct {
	Name   string  `yaml:"name"`
	Order  string  `yaml:"order"`
	Prefix *uint32 `yaml:"prefix"`
}

// UnmarshalYAML accepts either a scalar column name or a mapping.
func (c *ColumnDef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		c.Name = node.Value
		return nil
	}
	type plain ColumnDef
	return node.Decode((*plain)(c))
}

// loadConfig reads the definitions file and resolves the dialect.
// Precedence: CLI flags > env vars > config file > defaults
func loadConfig(opts *globalOptions) (*Config, error) {
	data, err := os.ReadFile(opts.file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", opts.file, err)
	}

	cfg, err := parseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", opts.file, err)
	}

	if cfg.Dialect == "" {
		cfg.Dialect = defaultDialect
	}
	if env := os.Getenv(dialectEnv); env != "" {
		cfg.Dialect = env
	}
	if opts.dialect != "" {
		cfg.Dialect = opts.dialect
	}
	cfg.DatabaseURL = os.ExpandEnv(cfg.DatabaseURL)

	newEventLog(opts).debug("loaded index definitions",
		zlog.String("file", opts.file),
		zlog.String("dialect", cfg.Dialect),
		zlog.String("count", strconv.Itoa(len(cfg.Indexes))),
	)
	return cfg, nil
}

func parseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if len(cfg.Indexes) == 0 {
		return nil, errNoIndexes
	}
	return cfg, nil
}
