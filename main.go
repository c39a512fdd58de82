package main

import "depot-planner/cmd"

func main() {
	cmd.Execute()
}
