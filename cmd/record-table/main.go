package main

import (
	"github.com/ytget/record-table/internal/app"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	app.Run(version)
}
