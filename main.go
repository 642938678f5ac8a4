package main

import "github.com/plateful-app/plateful-cli/cmd/plateful"

func main() {
	plateful.Execute()
}
