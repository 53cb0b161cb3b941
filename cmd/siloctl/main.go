// Package main is the entry point for siloctl, a command-line companion of the
// order service that prices object storage lines against live backend pricing.
//
//	siloctl quote --context tenant --line lon1:7:0:12 --line lon1:7:20:12
//	siloctl catalog --context admin --region lon1
package main

import (
	"fmt"
	"os"

	"github.com/UnicloudAfrica/uniclo-sub012/cmd/siloctl/commands"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
