package main

import "github.com/cmmoran/cppgen/cmd"

func main() {
	cmd.Execute()
}
