// Go support for leveled logs, analogous to https://code.google.com/p/google-glog/
//
// Copyright 2013 Google Inc. All Rights Reserved.
// Modifications copyright 2017 ETC Dev Team. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package glog implements logging analogous to the Google-internal C++ INFO/ERROR/V setup,
// trimmed to the call-site surface this core actually exercises: V-gated Infof.
//
//	glog.V(logger.Warn).Infof("block #%d rejected: %v", num, err)
//
// V reports whether verbosity at the call site is at least the requested
// level; the full upstream glog also offers Info/Warning/Error/Fatal
// variants, per-file vmodule filtering, a backtrace-at-line trigger, and
// size/age-based log rotation with optional gzip compression -- none of
// which any caller in this repo uses, so none of it is reproduced here.
package glog

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"time"
)

// Level is the verbosity threshold passed to V. Lower is louder.
type Level int32

// DefaultVerbosity is the threshold V logging is enabled at until SetV
// changes it.
var DefaultVerbosity = 5

var verbosity int32 = int32(DefaultVerbosity)

// SetV changes the verbosity threshold: V(level) logs whenever level <= v.
func SetV(v int) {
	atomic.StoreInt32(&verbosity, int32(v))
}

// Verbose implements Infof; see V.
type Verbose bool

// V reports whether verbosity at the call site is at least the requested
// level. The returned value is a boolean of type Verbose, which implements
// Infof. Thus one may write:
//
//	glog.V(logger.Warn).Infof("...")
func V(level Level) Verbose {
	return Verbose(atomic.LoadInt32(&verbosity) >= int32(level))
}

// Infof writes a header-prefixed, printf-formatted line to stderr if v is
// true, and is a no-op otherwise.
func (v Verbose) Infof(format string, args ...interface{}) {
	if !v {
		return
	}
	now := time.Now()
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file, line = "???", 1
	} else {
		file = filepath.Base(file)
	}
	fmt.Fprintf(os.Stderr, "I%s %s:%d] %s\n",
		now.Format("0102 15:04:05.000000"), file, line, fmt.Sprintf(format, args...))
}
