// Package app wires settings, logging, the record store and the UI into a
// runnable Fyne application. Both entry points start through it.
package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/record-table/internal/config"
	"github.com/ytget/record-table/internal/logging"
	"github.com/ytget/record-table/internal/seed"
	"github.com/ytget/record-table/internal/store"
	"github.com/ytget/record-table/internal/ui"
)

const (
	AppID   = "com.ytget.record-table"
	AppName = "Record Table"

	WindowWidth  = 800
	WindowHeight = 600
)

// Run builds the application and blocks until its window is closed
func Run(version string) {
	myApp := fyneapp.NewWithID(AppID)

	level := logging.NewLevel(config.NewSettings(myApp).GetVerboseLogging())
	logger := logging.NewOrNop(level)
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting", zap.String("app", AppName), zap.String("version", version))

	myWindow := Setup(myApp, version, level, logger)
	myWindow.ShowAndRun()
}

// Setup applies the theme, loads the bundled records and builds the main
// window on an existing app. The window is returned unshown.
func Setup(myApp fyne.App, version string, level zap.AtomicLevel, logger *zap.Logger) fyne.Window {
	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	settings := config.NewSettings(myApp)

	windowTitle := fmt.Sprintf("%s v%s", ui.LabelAppTitle, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize the record store with the bundled records
	recordStore := store.NewStore(logger, settings.GetCollationLocale())
	records, err := seed.Default()
	if err != nil {
		logger.Error("Failed to parse seed records", zap.Error(err))
	} else if err := recordStore.Seed(records); err != nil {
		logger.Error("Failed to load seed records", zap.Error(err))
	}

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, recordStore, logger)
	rootUI.SetLogLevel(level)
	myWindow.SetOnClosed(rootUI.Close)

	return myWindow
}
