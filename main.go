package main

import "finaid-preflight/cmd"

func main() {
	cmd.Execute()
}
