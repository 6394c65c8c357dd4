package main

import (
	"context"
	"os"

	"github.com/smartcontractkit/scaffold/cmd/scaffold"
)

func main() {
	os.Exit(scaffold.Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
