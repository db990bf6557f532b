// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/CrawX/imap-readinglist/transform"

	"github.com/BurntSushi/toml"
)

const (
	ProtocolImap = "imap"
	ProtocolPop3 = "pop3"

	StoreFile   = "file"
	StoreSqlite = "sqlite"
)

type RewriteRule struct {
	Pattern     string
	Replacement string
}

type Config struct {
	Protocol string

	Host               string
	User               string
	Password           string
	Mailbox            string
	Compress           bool
	InsecureSkipVerify bool
	TimeoutSeconds     int

	DocumentStore string
	DocumentDir   string
	Database      string
	Document      string

	ShowDiff bool
	DryRun   bool

	// Rewrite replaces the built-in rewrite rules when set. Rules are applied
	// in the listed order.
	Rewrite []RewriteRule

	Loglevel *string
}

func ReadConfig(filename string) (*Config, error) {
	config := defaultConfig()

	_, err := toml.DecodeFile(filename, config)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	err = config.validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

func defaultConfig() *Config {
	return &Config{
		Protocol:       ProtocolImap,
		Mailbox:        "INBOX",
		TimeoutSeconds: 60,
		DocumentStore:  StoreFile,
		DocumentDir:    ".",
		Database:       "readinglist.db",
		Document:       "Reading list",
	}
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c *Config) validate() error {
	if c.Protocol != ProtocolImap && c.Protocol != ProtocolPop3 {
		return fmt.Errorf("Protocol must be either %s or %s", ProtocolImap, ProtocolPop3)
	}

	if err := validateNonEmptyStringField(c.Host, "Host must not be empty, set to host:port of the mail server"); err != nil {
		return err
	}

	if len(strings.TrimSpace(c.User)) > 0 {
		if err := validateNonEmptyStringField(c.Password, "Password must not be empty if User is set"); err != nil {
			return err
		}
	} else if c.Protocol == ProtocolPop3 {
		return errors.New("User must not be empty, POP3 requires authentication")
	}

	if c.Protocol == ProtocolImap {
		if err := validateNonEmptyStringField(c.Mailbox, "Mailbox must not be empty, set to the imap folder used as queue"); err != nil {
			return err
		}
	}

	if c.TimeoutSeconds <= 0 {
		return errors.New("TimeoutSeconds must be positive")
	}

	if err := validateNonEmptyStringField(c.Document, "Document must not be empty, set to the name of the reading list"); err != nil {
		return err
	}

	switch c.DocumentStore {
	case StoreFile:
		if err := validateNonEmptyStringField(c.DocumentDir, "DocumentDir must not be empty for the file store"); err != nil {
			return err
		}
	case StoreSqlite:
		if err := validateNonEmptyStringField(c.Database, "Database must not be empty, set to a filename for the sqlite database"); err != nil {
			return err
		}
	default:
		return fmt.Errorf("DocumentStore must be either %s or %s", StoreFile, StoreSqlite)
	}

	for i, r := range c.Rewrite {
		if err := validateNonEmptyStringField(r.Pattern, fmt.Sprintf("Rewrite rule %d has an empty Pattern", i+1)); err != nil {
			return err
		}
	}

	return nil
}

func validateNonEmptyStringField(field string, err string) error {
	if len(strings.TrimSpace(field)) == 0 {
		return errors.New(err)
	}

	return nil
}

// Rules compiles the configured rewrite rules, or returns the built-in rules
// when none are configured.
func (c *Config) Rules() ([]*transform.Rule, error) {
	if len(c.Rewrite) == 0 {
		return transform.DefaultRules(), nil
	}

	rules := make([]*transform.Rule, 0, len(c.Rewrite))
	for i, r := range c.Rewrite {
		rule, err := transform.NewRule(r.Pattern, r.Replacement)
		if err != nil {
			return nil, fmt.Errorf("could not compile rewrite rule %d: %w", i+1, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
