package main

import "lbimport/cmd"

func main() {
	cmd.Execute()
}
