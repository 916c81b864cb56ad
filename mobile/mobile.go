//go:build mobile

// Package mobile is the ebitenmobile binding entry for the crashit demo.
//
// Build with:
//
//	ebitenmobile bind -target android -tags mobile -javapkg com.phanxgames.crashit -o build/crashit.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/Crashit.xcframework ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/phanxgames/scenegraph"
	"github.com/phanxgames/scenegraph/internal/crashit"
	"github.com/phanxgames/scenegraph/internal/save"
)

func init() {
	cfg := crashit.DefaultConfig()

	scores, err := save.Open(cfg.AppName)
	if err != nil {
		log.Printf("[mobile] Warning: %v (best score kept in memory)", err)
	}

	app := crashit.NewApp(cfg, scenegraph.MonitorMetrics{}, scores)
	// The monitor size is only known once Ebitengine is running.
	app.StartOnFirstUpdate()
	mobile.SetGame(app.Game())
}

// Dummy is an exported no-op so ebitenmobile picks up the package.
func Dummy() {}
