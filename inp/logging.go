// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"log"
	"os"

	"github.com/cpmech/gosl/io"
)

// logFile holds a handle to the log file
var logFile *os.File

// InitLogFile initialises logger
func InitLogFile(dirout, fnamekey string) (err error) {

	// create log file
	logFile, err = os.Create(io.Sf("%s/%s.log", dirout, fnamekey))
	if err != nil {
		return
	}

	// connect logger to output file
	log.SetOutput(logFile)
	return
}

// FlushLog saves the log (flushes to disk)
func FlushLog() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// LogErr logs an error and returns a stop flag
func LogErr(err error, msg string) (stop bool) {
	if err != nil {
		log.Printf("ERROR: %s : %v\n", msg, err)
		return true
	}
	return false
}

// LogErrCond logs an error message if condition is true and returns a stop flag
func LogErrCond(condition bool, msg string, prm ...interface{}) (stop bool) {
	if condition {
		fullmsg := "ERROR: " + io.Sf(msg, prm...)
		log.Printf("%s\n", fullmsg)
		io.PfRed("%s\n", fullmsg)
		return true
	}
	return false
}
