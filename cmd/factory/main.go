package main

import (
	"os"

	"github.com/galaplate/patterns/bootstrap"
	"github.com/galaplate/patterns/console"
	"github.com/galaplate/patterns/logger"
)

func main() {
	if _, err := bootstrap.Init(); err != nil {
		logger.Fatal("Failed to bootstrap", map[string]any{"error": err.Error()})
	}

	kernel := console.NewKernel(os.Stdout)
	kernel.RegisterCommands()

	if err := kernel.Call("demo:factory", nil); err != nil {
		logger.Fatal("Demo failed", map[string]any{"error": err.Error()})
	}
}
