package main

import "github.com/theirongolddev/habitrack/cmd"

func main() {
	cmd.Execute()
}
