// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package logging

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/mitchellh/go-homedir"
)

func NewLogger(w io.Writer) *log.Logger {
	return log.New(w, "", log.LstdFlags|log.Lshortfile)
}

func NopLogger() *log.Logger {
	return log.New(ioutil.Discard, "", 0)
}

type fileLogger struct {
	l *log.Logger
	f *os.File
}

func NewFileLogger(rawPath string) (*fileLogger, error) {
	path, err := ParseLogPath(rawPath)
	if err != nil {
		return nil, err
	}

	mode := os.O_TRUNC | os.O_CREATE | os.O_WRONLY
	file, err := os.OpenFile(path, mode, 0600)
	if err != nil {
		return nil, err
	}

	return &fileLogger{
		l: NewLogger(file),
		f: file,
	}, nil
}

// ParseLogPath renders a templated log path, such as
// "/tmp/tsproject-fs-{{ pid }}.log", and checks it is absolute.
// A leading "~" is expanded to the user's home directory.
func ParseLogPath(rawPath string) (string, error) {
	rawPath, err := homedir.Expand(rawPath)
	if err != nil {
		return "", fmt.Errorf("failed to expand path: %w", err)
	}

	tpl, err := template.New("log-file").Funcs(pathFuncs()).Parse(rawPath)
	if err != nil {
		return "", fmt.Errorf("failed to parse path: %w", err)
	}

	buf := &strings.Builder{}
	err = tpl.Execute(buf, nil)
	if err != nil {
		return "", fmt.Errorf("failed to parse path: %w", err)
	}

	path := buf.String()
	if !filepath.IsAbs(path) {
		return "", fmt.Errorf("please provide absolute log path to prevent ambiguity (given: %q)",
			path)
	}

	return path, nil
}

func (fl *fileLogger) Logger() *log.Logger {
	return fl.l
}

func (fl *fileLogger) Close() error {
	return fl.f.Close()
}

func pathFuncs() template.FuncMap {
	return template.FuncMap{
		"timestamp": time.Now().Local().Unix,
		"pid":       os.Getpid,
		"ppid":      os.Getppid,
	}
}
