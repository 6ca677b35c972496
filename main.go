package main

import "docsort/cmd"

func main() {
	cmd.Execute()
}
