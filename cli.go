//go:build cli
// +build cli

package main

import (
	_ "supplysense/custom"

	"supplysense/cmd"
	"supplysense/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
