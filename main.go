package main

import "github.com/llehouerou/periodic/internal/cli"

func main() {
	cli.Execute()
}
