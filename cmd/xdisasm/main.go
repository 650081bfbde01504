package main

import "github.com/keurnel/xdisasm/cmd/xdisasm/cmd"

func main() {
	cmd.Execute()
}
