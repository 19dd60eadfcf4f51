package main

import (
	"embed"

	"wipefile_enterprise/internal/app"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
)

//go:embed all:frontend/dist
var assets embed.FS

// main is entry point for Wails application
func main() {
	appInstance := app.NewApp()

	// Create application with options
	err := wails.Run(&options.App{
		Title:  "WipeFile Enterprise v1.0.0",
		Width:  900,
		Height: 620,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup:        appInstance.Startup,
		OnBeforeClose:    appInstance.BeforeClose,
		OnShutdown:       appInstance.Shutdown,
		Bind: []interface{}{
			appInstance,
		},
	})

	if err != nil {
		panic("Error when running application: " + err.Error())
	}
}
