package main

import "bloom-vcpkg/internal/cli"

func main() {
	cli.Execute()
}
