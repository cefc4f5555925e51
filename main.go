package main

import "clocksheet/cmd"

func main() {
	cmd.Execute()
}
