package main

import (
	"bioseq/internal/app"
	"bioseq/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
