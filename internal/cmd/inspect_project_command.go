// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/hashicorp/tsproject-fs/internal/filesystem"
	"github.com/hashicorp/tsproject-fs/internal/logging"
	"github.com/hashicorp/tsproject-fs/internal/overlay"
	"github.com/hashicorp/tsproject-fs/internal/settings"
	"github.com/mitchellh/cli"
	"github.com/mitchellh/go-homedir"
)

type InspectProjectCommand struct {
	Ui      cli.Ui
	Verbose bool

	// Accessor overrides the OS filesystem accessor
	Accessor filesystem.Accessor

	settingsPath string
	logFilePath  string
	checks       stringSlice

	logger *log.Logger
}

func (c *InspectProjectCommand) flags() *flag.FlagSet {
	fs := defaultFlagSet("inspect-project")
	fs.BoolVar(&c.Verbose, "verbose", false, "whether to enable verbose output")
	fs.StringVar(&c.settingsPath, "settings", "", "path to a settings file (JSON with comments)")
	fs.StringVar(&c.logFilePath, "log-file", "", "path to a file to log into with support "+
		"for functions (timestamp, pid, ppid) via Go template syntax, e.g. {{ pid }}")
	fs.Var(&c.checks, "check", "path to query through the overlay (repeatable)")
	fs.Usage = func() { c.Ui.Error(c.Help()) }
	return fs
}

func (c *InspectProjectCommand) Run(args []string) int {
	f := c.flags()
	if err := f.Parse(args); err != nil {
		c.Ui.Error(fmt.Sprintf("Error parsing command-line flags: %s", err))
		return 1
	}

	if f.NArg() != 1 {
		c.Ui.Output(fmt.Sprintf("expected exactly 1 argument (%d given): %q",
			f.NArg(), f.Args()))
		return 1
	}

	opts := &settings.Options{}
	if c.settingsPath != "" {
		settingsPath, err := homedir.Expand(c.settingsPath)
		if err != nil {
			c.Ui.Error(fmt.Sprintf("Failed to expand settings path: %s", err))
			return 1
		}
		b, err := ioutil.ReadFile(settingsPath)
		if err != nil {
			c.Ui.Error(fmt.Sprintf("Failed to read settings: %s", err))
			return 1
		}
		out, err := settings.ParseFile(b)
		if err != nil {
			c.Ui.Error(fmt.Sprintf("Failed to decode settings: %s", err))
			return 1
		}
		if len(out.UnusedKeys) > 0 {
			c.Ui.Warn(fmt.Sprintf("Unknown settings ignored: %q", out.UnusedKeys))
		}
		opts = out.Options
	}
	if c.logFilePath != "" {
		opts.LogFilePath = c.logFilePath
	}
	if err := opts.Validate(); err != nil {
		c.Ui.Error(fmt.Sprintf("Invalid settings: %s", err))
		return 1
	}

	if opts.LogFilePath != "" {
		fl, err := logging.NewFileLogger(opts.LogFilePath)
		if err != nil {
			c.Ui.Error(fmt.Sprintf("Failed to setup logging: %s", err))
			return 1
		}
		defer fl.Close()
		c.logger = fl.Logger()
	} else {
		var logDestination io.Writer
		if c.Verbose {
			logDestination = os.Stderr
		} else {
			logDestination = ioutil.Discard
		}
		c.logger = logging.NewLogger(logDestination)
	}

	err := c.inspect(f.Arg(0), opts)
	if err != nil {
		c.Ui.Output(err.Error())
		return 1
	}

	return 0
}

func (c *InspectProjectCommand) inspect(descriptorPath string, opts *settings.Options) error {
	host := c.Accessor
	if host == nil {
		osAccessor, err := filesystem.NewOsAccessor()
		if err != nil {
			return err
		}
		host = osAccessor
	}

	descriptorPath, err := homedir.Expand(descriptorPath)
	if err != nil {
		return err
	}
	descriptorPath = host.ResolvePath(descriptorPath)
	o, err := overlay.Load(descriptorPath, host, c.logger,
		overlay.WithAncestorDepth(opts.AncestorDepth))
	if err != nil {
		return err
	}

	files, err := o.Files()
	if err != nil {
		return err
	}
	dirs, err := o.Directories()
	if err != nil {
		return err
	}

	c.Ui.Output(fmt.Sprintf("Project %s", descriptorPath))
	c.Ui.Output(formatPathList("root directories", o.RootDirs()))
	c.Ui.Output(formatPathList("known files", files))
	c.Ui.Output(formatPathList("known directories", dirs))

	if len(c.checks) == 0 {
		return nil
	}

	proxy := overlay.NewProxyAccessorFromOverlay(host, o, c.logger)
	c.Ui.Output(fmt.Sprintf(" - %d checks", len(c.checks)))
	for _, path := range c.checks {
		c.Ui.Output(fmt.Sprintf("     - %s: file=%t directory=%t",
			host.ResolvePath(path), proxy.FileExists(path), proxy.DirectoryExists(path)))
	}

	return nil
}

func formatPathList(name string, paths []string) string {
	out := fmt.Sprintf(" - %d %s", len(paths), name)
	for _, p := range paths {
		out += fmt.Sprintf("\n     - %s", p)
	}
	return out
}

func (c *InspectProjectCommand) Help() string {
	helpText := `
Usage: tsproject-fs inspect-project [options] [tsconfig.json]

` + c.Synopsis() + "\n\n" + helpForFlags(c.flags())
	return strings.TrimSpace(helpText)
}

func (c *InspectProjectCommand) Synopsis() string {
	return "Shows the overlay index of a project and answers existence queries through it"
}
