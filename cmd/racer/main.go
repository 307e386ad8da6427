package main

import "github.com/mpihlak/goracer/pkg/cmd"

func main() {
	cmd.Execute()
}
