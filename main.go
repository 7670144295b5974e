package main

import (
	"fmt"
	"log"
	"net/http"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/lineup-browser/internal/audio"
	"github.com/ytget/lineup-browser/internal/config"
	"github.com/ytget/lineup-browser/internal/lineup"
	"github.com/ytget/lineup-browser/internal/playback"
	"github.com/ytget/lineup-browser/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.lineup-browser"
	AppName = "Lineup Browser"

	WindowWidth  = 900
	WindowHeight = 700
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	env := config.LoadEnv()

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp).WithEnv(env)

	loader := lineup.NewService(&http.Client{}, settings.ResolveDataURL())
	if timeout := settings.Env().HTTPTimeout; timeout > 0 {
		loader.SetTimeout(timeout)
	}

	player := audio.NewPlayer(nil, fyne.Do)
	coordinator := playback.NewCoordinator(player)

	// Create and setup UI
	root := ui.NewRootUI(myWindow, settings, loader, coordinator)

	myWindow.SetOnClosed(func() {
		coordinator.Stop()
		player.Close()
		log.Printf("Playback released, exiting")
	})

	// Fetch the lineup once the window is up
	root.Reload()

	// Show and run
	myWindow.ShowAndRun()
}
