package main

import (
	"os"

	"k8s.io/component-base/cli"

	"github.com/mihai-snyk/paretokit/cmd/frontctl/app"
)

func main() {
	command := app.NewFrontctlCommand(os.Stdout)
	code := cli.Run(command)
	os.Exit(code)
}
