package main

import "github.com/eslsoft/atelier/cmd"

func main() {
	cmd.Execute()
}
