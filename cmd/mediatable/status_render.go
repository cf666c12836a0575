package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const ansiReset = "\x1b[0m"

var statusStyles = [...]struct {
	label string
	color string
}{
	statusInfo:  {"INFO", "\x1b[34m"},
	statusOK:    {"OK", "\x1b[32m"},
	statusWarn:  {"WARN", "\x1b[33m"},
	statusError: {"ERROR", "\x1b[31m"},
}

// statusReport prints the check command's sections and aligned status lines:
//
//	  MediaInfo:           [OK] /usr/bin/mediainfo (v24.06)
type statusReport struct {
	w     io.Writer
	color bool
}

func newStatusReport(w io.Writer) *statusReport {
	return &statusReport{w: w, color: shouldColorize(w)}
}

func (r *statusReport) section(title string) {
	heading := "== " + strings.TrimSpace(title) + " =="
	r.emit(statusInfo, heading)
	r.emit(statusInfo, strings.Repeat("-", len(heading)))
}

func (r *statusReport) line(label string, kind statusKind, detail string) {
	status := "[" + statusStyles[kind].label + "]"
	if detail != "" {
		status += " " + detail
	}
	r.emit(kind, fmt.Sprintf("  %-20s %s", label+":", status))
}

func (r *statusReport) emit(kind statusKind, text string) {
	if r.color {
		text = statusStyles[kind].color + text + ansiReset
	}
	fmt.Fprintln(r.w, text)
}

// shouldColorize reports whether writer is a terminal. Tests and pipes get
// plain output, as does any environment that sets NO_COLOR.
func shouldColorize(writer io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
