// Copyright 2019-2021 VMware, Inc.
// SPDX-License-Identifier: BSD-2-Clause

package utils

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	infoColor  = color.New(color.FgHiCyan)
	titleColor = color.New(color.BgHiWhite, color.FgHiBlack, color.Bold)
	warnColor  = color.New(color.FgHiYellow)
)

// Infof writes a cyan label to w
func Infof(w io.Writer, format string, args ...interface{}) {
	fprintf(w, infoColor, format, args...)
}

// Titlef writes an inverted bold title to w
func Titlef(w io.Writer, format string, args ...interface{}) {
	fprintf(w, titleColor, format, args...)
}

// Warnf writes a yellow line to w
func Warnf(w io.Writer, format string, args ...interface{}) {
	fprintf(w, warnColor, format, args...)
}

// fprintf only colors output headed for a terminal; log files get plain text
func fprintf(w io.Writer, c *color.Color, format string, args ...interface{}) {
	if f, ok := w.(*os.File); ok && !color.NoColor && isatty.IsTerminal(f.Fd()) {
		_, _ = c.Fprintf(w, format, args...)
		return
	}
	_, _ = fmt.Fprintf(w, format, args...)
}
