package main

import "github.com/sadopc/taskmaster/internal/cli"

func main() {
	cli.Execute()
}
