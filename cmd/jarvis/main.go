package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"jarvis/internal/infrastructure/cli"
)

func main() {
	// Secrets such as OPENROUTER_API_KEY may live in a local .env.
	_ = godotenv.Load()

	ctx := context.Background()

	root, err := cli.NewRootCmd(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
