package main

import "svw.info/minesweeper/internal/cli"

func main() {
	cli.Execute()
}
