package main

import "mclauncher/internal/cli"

func main() {
	cli.Execute()
}
