package main

import "inventory-viewer/cmd"

func main() {
	cmd.Execute()
}
