// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

// Package testutil holds helpers shared by tests across packages.
package testutil

import (
	"github.com/regina-lang/regina/pkg/diag"
)

// TestDiagSink keeps every diagnostic instead of printing it, so tests can compare both rendered text and IDs.
type TestDiagSink struct {
	sink     diag.Sink
	errors   []*diag.Diag
	warnings []*diag.Diag
	rendered map[*diag.Diag]string
}

var _ diag.Sink = (*TestDiagSink)(nil)

// NewTestDiagSink renders paths relative to pwd and never colorizes.
func NewTestDiagSink(pwd string) *TestDiagSink {
	return &TestDiagSink{
		sink:     diag.DefaultSink(diag.FormatOptions{Pwd: pwd}),
		rendered: make(map[*diag.Diag]string),
	}
}

func (d *TestDiagSink) Count() int    { return d.Errors() + d.Warnings() }
func (d *TestDiagSink) Errors() int   { return len(d.errors) }
func (d *TestDiagSink) Warnings() int { return len(d.warnings) }
func (d *TestDiagSink) Success() bool { return d.Errors() == 0 }

// ErrorMsgs returns the rendered errors in the order they were issued.
func (d *TestDiagSink) ErrorMsgs() []string { return d.render(d.errors) }

// WarningMsgs returns the rendered warnings in the order they were issued.
func (d *TestDiagSink) WarningMsgs() []string { return d.render(d.warnings) }

// ErrorIDs returns the IDs of the errors in the order they were issued; unnumbered errors have ID zero.
func (d *TestDiagSink) ErrorIDs() []diag.ID {
	ids := make([]diag.ID, len(d.errors))
	for i, e := range d.errors {
		ids[i] = e.ID
	}
	return ids
}

func (d *TestDiagSink) Errorf(dia *diag.Diag, args ...interface{}) {
	d.errors = append(d.errors, d.record(dia, diag.Error, args))
}

func (d *TestDiagSink) Warningf(dia *diag.Diag, args ...interface{}) {
	d.warnings = append(d.warnings, d.record(dia, diag.Warning, args))
}

func (d *TestDiagSink) Stringify(dia *diag.Diag, cat diag.Category, args ...interface{}) string {
	return d.sink.Stringify(dia, cat, args...)
}

func (d *TestDiagSink) StringifyLocation(doc *diag.Document, loc *diag.Location) string {
	return d.sink.StringifyLocation(doc, loc)
}

// record copies dia so that one template issued twice is kept as two entries.
func (d *TestDiagSink) record(dia *diag.Diag, cat diag.Category, args []interface{}) *diag.Diag {
	cp := *dia
	d.rendered[&cp] = d.Stringify(dia, cat, args...)
	return &cp
}

func (d *TestDiagSink) render(diags []*diag.Diag) []string {
	msgs := make([]string, len(diags))
	for i, dia := range diags {
		msgs[i] = d.rendered[dia]
	}
	return msgs
}
