package main

import (
	"github.com/M0nkiiii/Screentime-Management/app"
	"github.com/M0nkiiii/Screentime-Management/pkg/observability"
)

func main() {
	observability.StartProfiling("screentime-service")
	app.Run()
}
