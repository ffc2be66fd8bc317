package main

import (
	"log/slog"
	"os"

	_ "go.uber.org/automaxprocs"

	"github.com/felixbrock/hellopage/cmd"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cmd.Execute()
}
