// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/pbglang/pbg/host"
)

func main() {
	flag.CommandLine.Usage = func() {
		fmt.Println("Usage: pbg [script] ..\nOptions:")
		flag.PrintDefaults()
	}
	flag.Parse()

	h := host.New()

	// Run commands contained in command-line files first.
	args := flag.Args()
	for _, filename := range args {
		file, err := os.Open(filename)
		if err != nil {
			exitOnError(err)
		}
		h.RunCommands(file, os.Stdout, false)
		file.Close()
	}

	// A Ctrl-C during interactive use should exit the program cleanly
	// rather than kill the process mid-prompt.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		<-c
		os.Exit(0)
	}()

	h.RunCommands(os.Stdin, os.Stdout, true)
}

func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(1)
}
