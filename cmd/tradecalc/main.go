package main

import "github.com/rustyeddy/tradecalc/internal/cli"

func main() {
	cli.Execute()
}
