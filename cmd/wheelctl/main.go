package main

import (
	"github.com/wheelparty/fortunegame-go/internal/cli"
)

func main() {
	cli.Execute()
}
