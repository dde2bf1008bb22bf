package main

import (
	"github.com/humanbelnik/moviepick/internal/app"
	"github.com/humanbelnik/moviepick/internal/config"
)

func main() {
	app.Go(config.Load())
}
