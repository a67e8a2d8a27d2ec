// Package main is the entry point for the employee directory API.
package main

import (
	"context"
	"log"
	"os"

	"employeeapi/src/app/cli"
)

// Set through -ldflags at build time.
var (
	version   = "dev"
	commit    = "none"
	buildTime = "unknown"
)

func main() {
	build := cli.BuildInfo{Version: version, Commit: commit, BuildTime: buildTime}
	if err := cli.Execute(context.Background(), os.Stdout, build, os.Args[1:]); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}
