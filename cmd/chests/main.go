// Command chests tracks the contents of a wall-and-chest storage room.
package main

import "github.com/mesh-intelligence/chests/internal/cli"

func main() {
	cli.Execute()
}
