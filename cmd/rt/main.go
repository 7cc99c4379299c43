package main

import "rainythoughts/cmd/rt/root"

func main() {
	root.Execute()
}
