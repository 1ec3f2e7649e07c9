package main

import "wcagpal/cmd"

func main() {
	cmd.Execute()
}
