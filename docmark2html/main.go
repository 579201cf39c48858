// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Docmark2html converts documentation inline markup to HTML.
//
// Usage:
//
//	docmark2html [flags] [file...]
//
// Docmark2html reads the named files, or else standard input,
// splits them into paragraphs at blank lines, and prints each paragraph
// rendered as HTML on its own line.
//
// The flags are:
//
//	--root p|a
//		the tag to wrap each paragraph in (default p)
//	--href url
//		the href attribute of the root tag
//	--class name
//		a class to attach to every link; may be repeated
//	--format html|text|tree
//		print HTML, the plain text content, or a drawing of the tag tree
//	--config file
//		read settings from file instead of docmark.yaml
//	-v, --verbose
//		log each file converted
//
// Settings may also come from DOCMARK_* environment variables
// (DOCMARK_ROOT, DOCMARK_FORMAT, and so on) or from a docmark.yaml file
// in the current directory or in $HOME/.config/docmark.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"rsc.io/docmark"
)

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	var configFile string
	cmd := &cobra.Command{
		Use:          "docmark2html [file...]",
		Short:        "Convert documentation inline markup to HTML",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, configFile)
			if err != nil {
				return err
			}
			return run(cmd, cfg, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "config `file` (default docmark.yaml)")
	flags.String("root", "p", "root tag: p or a")
	flags.String("href", "", "href `url` of the root tag")
	flags.StringSlice("class", nil, "class `name` for links (repeatable)")
	flags.String("format", "html", "output format: html, text, or tree")
	flags.BoolP("verbose", "v", false, "log each file converted")

	v.BindPFlag("root", flags.Lookup("root"))
	v.BindPFlag("href", flags.Lookup("href"))
	v.BindPFlag("classes", flags.Lookup("class"))
	v.BindPFlag("format", flags.Lookup("format"))
	v.BindPFlag("verbose", flags.Lookup("verbose"))
	return cmd
}

// A converter renders paragraphs according to a Config.
type converter struct {
	parser docmark.Parser
	root   docmark.Root
	attr   map[string]string
	format string
	tree   *treePrinter
}

func run(cmd *cobra.Command, cfg *Config, args []string) error {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	root, _ := cfg.root()
	c := &converter{
		parser: docmark.Parser{LinkClasses: cfg.Classes},
		root:   root,
		attr:   cfg.attr(),
		format: cfg.Format,
		tree:   newTreePrinter(cmd.OutOrStdout()),
	}
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		n, err := c.convert(out, string(data))
		if err != nil {
			return err
		}
		log.Debug("converted", "file", "<stdin>", "paragraphs", n)
		return nil
	}

	failed := 0
	for _, file := range args {
		data, err := os.ReadFile(file)
		if err != nil {
			log.Error("read failed", "file", file, "error", err)
			failed++
			continue
		}
		n, err := c.convert(out, string(data))
		if err != nil {
			return err
		}
		log.Debug("converted", "file", file, "paragraphs", n)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be read", failed, len(args))
	}
	return nil
}

// convert writes the rendering of each paragraph of text to w
// and returns the number of paragraphs.
func (c *converter) convert(w io.Writer, text string) (int, error) {
	paras := paragraphs(text)
	for _, para := range paras {
		tag := c.parser.Render(c.root, c.attr, para)
		var err error
		switch c.format {
		case "text":
			_, err = fmt.Fprintln(w, tag.Text())
		case "tree":
			_, err = fmt.Fprintln(w, c.tree.String(tag))
		default:
			if err = docmark.WriteHTML(w, tag); err == nil {
				_, err = io.WriteString(w, "\n")
			}
		}
		if err != nil {
			return 0, err
		}
	}
	return len(paras), nil
}

// paragraphs splits text into paragraphs separated by blank lines.
// The lines of a paragraph are joined with newlines.
func paragraphs(text string) []string {
	var (
		paras []string
		lines []string
	)
	flush := func() {
		if len(lines) > 0 {
			paras = append(paras, strings.Join(lines, "\n"))
			lines = nil
		}
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		lines = append(lines, line)
	}
	flush()
	return paras
}
