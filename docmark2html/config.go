// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"rsc.io/docmark"
)

// Config holds the settings for a run, merged from flags,
// DOCMARK_* environment variables, and docmark.yaml, in that order of precedence.
type Config struct {
	Root    string   `mapstructure:"root"`
	Href    string   `mapstructure:"href"`
	Classes []string `mapstructure:"classes"`
	Format  string   `mapstructure:"format"`
	Verbose bool     `mapstructure:"verbose"`
}

var formats = map[string]bool{
	"html": true,
	"text": true,
	"tree": true,
}

// loadConfig reads the configuration into v and returns it.
// If file is empty, docmark.yaml is looked for in the current directory
// and in $HOME/.config/docmark; a missing file is not an error.
func loadConfig(v *viper.Viper, file string) (*Config, error) {
	v.SetDefault("root", "p")
	v.SetDefault("format", "html")

	v.SetEnvPrefix("DOCMARK")
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("docmark")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "docmark"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if _, err := cfg.root(); err != nil {
		return nil, err
	}
	if !formats[cfg.Format] {
		return nil, fmt.Errorf("unknown format %q (want html, text, or tree)", cfg.Format)
	}
	return &cfg, nil
}

// root returns the root tag kind named by c.Root.
func (c *Config) root() (docmark.Root, error) {
	switch c.Root {
	case "p":
		return docmark.Paragraph, nil
	case "a":
		return docmark.Anchor, nil
	}
	return 0, fmt.Errorf("unknown root %q (want p or a)", c.Root)
}

// attr returns the attributes of the root tag.
func (c *Config) attr() map[string]string {
	if c.Href == "" {
		return nil
	}
	return map[string]string{"href": c.Href}
}
