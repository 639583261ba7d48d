package main

import (
	"embed"

	"github.com/voicebook/voicebook/cmd"
)

//go:embed views
var embedViews embed.FS

func main() {
	cmd.Execute(embedViews)
}
