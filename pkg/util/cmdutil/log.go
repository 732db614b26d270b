// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package cmdutil

import (
	"flag"
	"strconv"

	"github.com/golang/glog"
)

// LogToStderr is true when glog output goes to stderr instead of files.
var LogToStderr = false

// Verbose is the current glog verbosity.
var Verbose = 0

// InitLogging ensures the glog library has been initialized with the given settings.
func InitLogging(logToStderr bool, verbose int) {
	// Remember the settings so that error reporting can decide how much to print.
	LogToStderr = logToStderr
	Verbose = verbose

	// Ensure the glog library has been initialized, including calling flag.Parse beforehand.  Unfortunately,
	// this is the only way to control the way glog runs.  That includes poking around at flags below.
	flag.Parse()
	if err := flag.Lookup("logtostderr").Value.Set(strconv.FormatBool(logToStderr)); err != nil {
		glog.Warningf("could not set logtostderr: %v", err)
	}
	if err := flag.Lookup("v").Value.Set(strconv.Itoa(verbose)); err != nil {
		glog.Warningf("could not set verbosity: %v", err)
	}
}
