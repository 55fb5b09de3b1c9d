package main

import (
	"log"

	"github.com/hoppxi/osdctl/internal/cmd"
)

func main() {
	log.SetFlags(0)
	cmd.Execute()
}
