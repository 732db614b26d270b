// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package diag

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/afero"

	"github.com/regina-lang/regina/pkg/diag/colors"
	"github.com/regina-lang/regina/pkg/util/contract"
)

// Sink facilitates pluggable diagnostics messages.
type Sink interface {
	// Count fetches the total number of diagnostics issued (errors plus warnings).
	Count() int
	// Errors fetches the number of errors issued.
	Errors() int
	// Warnings fetches the number of warnings issued.
	Warnings() int
	// Success returns true if this sink is currently error-free.
	Success() bool

	// Errorf issues a new error diagnostic.
	Errorf(diag *Diag, args ...interface{})
	// Warningf issues a new warning diagnostic.
	Warningf(diag *Diag, args ...interface{})

	// Stringify stringifies a diagnostic in the usual way (e.g., "main.yaml(7,39): error RG1004: error goes here\n").
	Stringify(diag *Diag, cat Category, args ...interface{}) string
	// StringifyLocation stringifies a source document location.
	StringifyLocation(doc *Document, loc *Location) string
}

// Category dictates the kind of diagnostic.
type Category string

const (
	Error   Category = "error"
	Warning Category = "warning"
)

// FormatOptions controls the output style and content.
type FormatOptions struct {
	Pwd    string   // the working directory.
	Colors bool     // if true, output will be colorized.
	Source afero.Fs // if non-nil, located diagnostics quote their source line from this file system.
}

// DefaultSink returns a default sink that writes everything to stderr, leaving stdout to the running program.
func DefaultSink(opts FormatOptions) Sink {
	return newDefaultSink(opts, os.Stderr)
}

func newDefaultSink(opts FormatOptions, w io.Writer) *defaultSink {
	return &defaultSink{opts: opts, w: w, lines: make(map[string][]string)}
}

const DefaultSinkIDPrefix = "RG"

type defaultSink struct {
	opts     FormatOptions       // a set of options that control output style and content.
	w        io.Writer           // the output stream.
	errors   int                 // the number of errors that have been issued.
	warnings int                 // the number of warnings that have been issued.
	lines    map[string][]string // source lines of quoted files; nil entries could not be read.
}

func (d *defaultSink) Count() int    { return d.errors + d.warnings }
func (d *defaultSink) Errors() int   { return d.errors }
func (d *defaultSink) Warnings() int { return d.warnings }
func (d *defaultSink) Success() bool { return d.errors == 0 }

func (d *defaultSink) Errorf(diag *Diag, args ...interface{}) {
	msg := d.Stringify(diag, Error, args...)
	glog.V(3).Infof("diag error: %v", strings.TrimSuffix(msg, "\n"))
	fmt.Fprint(d.w, msg)
	d.errors++
}

func (d *defaultSink) Warningf(diag *Diag, args ...interface{}) {
	msg := d.Stringify(diag, Warning, args...)
	glog.V(4).Infof("diag warning: %v", strings.TrimSuffix(msg, "\n"))
	fmt.Fprint(d.w, msg)
	d.warnings++
}

func (d *defaultSink) Stringify(diag *Diag, cat Category, args ...interface{}) string {
	var buffer bytes.Buffer

	if diag.Doc != nil || diag.Loc != nil {
		buffer.WriteString(d.StringifyLocation(diag.Doc, diag.Loc))
		buffer.WriteString(": ")
	}

	var color string
	switch cat {
	case Error:
		color = colors.Red
	case Warning:
		color = colors.BrightYellow
	default:
		contract.Failf("Unrecognized diagnostic category: %v", cat)
	}
	d.paint(&buffer, color, string(cat))
	if diag.ID > 0 {
		buffer.WriteString(" " + DefaultSinkIDPrefix + strconv.Itoa(int(diag.ID)))
	}
	buffer.WriteString(": ")

	// Messages without arguments are already formatted, so any % characters in them are literal.
	msg := diag.Message
	if len(args) > 0 {
		msg = fmt.Sprintf(diag.Message, args...)
	}
	d.paint(&buffer, colors.White, msg)
	buffer.WriteRune('\n')

	if excerpt, ok := d.excerpt(diag.Doc, diag.Loc); ok {
		buffer.WriteString(excerpt)
	}

	s := buffer.String()
	if d.opts.Colors {
		s = colors.ColorizeText(s)
	}
	return s
}

func (d *defaultSink) StringifyLocation(doc *Document, loc *Location) string {
	if doc == nil && loc == nil {
		return ""
	}

	var where string
	if doc != nil {
		where = doc.File
		if d.opts.Pwd != "" {
			if rel, err := filepath.Rel(d.opts.Pwd, where); err == nil {
				where = rel
			}
		}
	}
	if loc != nil && !loc.IsEmpty() {
		where += "(" + strconv.Itoa(loc.Start.Line) + "," + strconv.Itoa(loc.Start.Column) + ")"
	}

	var buffer bytes.Buffer
	d.paint(&buffer, colors.Cyan, where)
	if d.opts.Colors {
		return colors.ColorizeText(buffer.String())
	}
	return buffer.String()
}

func (d *defaultSink) paint(buffer *bytes.Buffer, color string, text string) {
	if !d.opts.Colors {
		buffer.WriteString(text)
		return
	}
	buffer.WriteString(color)
	buffer.WriteString(text)
	buffer.WriteString(colors.Reset)
}

// excerpt renders the source line loc starts on with a caret under its column.
func (d *defaultSink) excerpt(doc *Document, loc *Location) (string, bool) {
	if d.opts.Source == nil || doc == nil || loc == nil || loc.Start.Line < 1 {
		return "", false
	}
	lines, cached := d.lines[doc.File]
	if !cached {
		if src, err := ReadDocument(d.opts.Source, doc.File); err == nil {
			lines = strings.Split(string(src.Body), "\n")
		} else {
			glog.V(5).Infof("no excerpt for %v: %v", doc.File, err)
		}
		d.lines[doc.File] = lines
	}
	if loc.Start.Line > len(lines) {
		return "", false
	}

	line := strings.TrimRight(lines[loc.Start.Line-1], "\r")
	col := loc.Start.Column
	if col < 1 {
		col = 1
	}
	// Tabs are kept under the caret so that it lines up whatever the tab width.
	pad := []rune(line)
	if col-1 < len(pad) {
		pad = pad[:col-1]
	}
	for i, r := range pad {
		if r != '\t' {
			pad[i] = ' '
		}
	}
	return "    " + line + "\n    " + string(pad) + "^\n", true
}
