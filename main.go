package main

import "github.com/joseantonio2001/Running-Fit-Tech/cmd"

func main() {
	cmd.Execute()
}
