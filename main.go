package main

import "github.com/jonpas/ue4cli/cmd"

func main() {
	cmd.Execute()
}
