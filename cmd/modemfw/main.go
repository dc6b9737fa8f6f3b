package main

import "modemfw/internal/cli"

func main() {
	cli.Execute()
}
