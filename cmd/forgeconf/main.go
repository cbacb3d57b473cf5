package main

import "forgeconf/internal/cli"

func main() {
	cli.Execute()
}
