// Command rp6ctl inspects ATmega32 device descriptions and talks to the RP6
// over its serial link.
package main

import "rp6/cmd/rp6ctl/cmd"

func main() {
	cmd.Execute()
}
