package main

import "homefolder/cmd/cli/app/cmd"

func main() {
	cmd.Execute()
}
