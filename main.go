package main

import "lab-launcher/cmd"

func main() {
	cmd.Execute()
}
