// cmd/tokbench/main.go
package main

import (
	cli "github.com/mwiater/tokbench/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	setVersionInfo = cli.SetVersionInfo
	executeCmd     = cli.Execute
)

// main starts the tokbench CLI by delegating to the cobra root command.
func main() {
	setVersionInfo(version, commit, date)
	executeCmd()
}
