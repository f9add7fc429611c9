package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/cartbuild/cmd/cartbuild"
	"github.com/arthur-debert/cartbuild/pkg/config"
	"github.com/arthur-debert/cartbuild/pkg/output/styles"
)

func main() {
	envFlags, args := config.ParseEnvArgs(os.Args[1:])

	rootCmd := cartbuild.NewRootCmd(envFlags)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		msg := fmt.Sprintf("Error: %v", err)
		if os.Getenv("NO_COLOR") == "" {
			msg = styles.Get("Error").Render(msg)
		}
		fmt.Fprintln(os.Stderr, msg)
		os.Exit(1)
	}
}
