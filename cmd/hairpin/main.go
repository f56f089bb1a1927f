// cmd/hairpin/main.go
package main

import (
	"hairpin/internal/appshell"
	"hairpin/internal/cli"
)

func main() { appshell.Main(cli.RunContext) }
