package main

import "github.com/cluegrid/sudoku/cmd"

func main() {
	cmd.Execute()
}
