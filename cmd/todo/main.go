package main

import (
	"context"
	"fmt"
	"os"

	"github.com/nhle/todo/internal/cli"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	err := cli.Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr, cli.DefaultDeps(version))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
