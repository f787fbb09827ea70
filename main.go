package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	cfg "github.com/automoto/toastbuddy/config"
	"github.com/automoto/toastbuddy/fonts"
	"github.com/automoto/toastbuddy/scenes"
	"github.com/automoto/toastbuddy/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

type Game struct {
	scene scenes.Scene
}

func NewGame() (*Game, error) {
	if err := fonts.LoadResource(cfg.Toast.Font, cfg.Toast.FontSize); err != nil {
		return nil, err
	}
	if err := fonts.LoadBuiltinAs(fonts.Hint, fonts.GoRegular, 16); err != nil {
		return nil, err
	}

	scene, err := scenes.NewToastScene()
	if err != nil {
		return nil, err
	}
	return &Game{scene: scene}, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	if d, ok := g.scene.(interface{ Done() bool }); ok && d.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

// Close releases the current scene's background work
func (g *Game) Close() {
	if c, ok := g.scene.(interface{ Close() }); ok {
		c.Close()
	}
}

type options struct {
	configPath string
	mode       string
	justify    string
	show       time.Duration
	events     time.Duration
	noPanel    bool
	noSave     bool
	logToasts  bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "toastbuddy",
		Short: "Toast notification demo",
		Long: `toastbuddy opens a window that stacks toast notifications in a corner.
Arrow keys and Enter pop up messages, Space clears them and M switches between
the timed (rolling) and manual (clear on demand) modes.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML config overlay")
	f.StringVar(&opts.mode, "mode", "", "toast mode: timed or manual")
	f.StringVar(&opts.justify, "justify", "", "text justification: left, center or right")
	f.DurationVar(&opts.show, "show", 0, "how long timed toasts stay up")
	f.DurationVar(&opts.events, "events", 0, "post a simulated session event this often (0 disables)")
	f.BoolVar(&opts.noPanel, "no-panel", false, "hide the control panel")
	f.BoolVar(&opts.noSave, "no-save", false, "do not load or save settings")
	f.BoolVar(&opts.logToasts, "log-toasts", false, "log every toast shown from input")

	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	if opts.configPath != "" {
		if err := cfg.LoadFile(opts.configPath); err != nil {
			return err
		}
	}

	// Initialize persistence and load saved settings
	if !opts.noSave {
		if err := systems.InitPersistence(); err != nil {
			log.Printf("Warning: Could not initialize persistence: %v", err)
		}
		if saved, err := systems.LoadSettings(); err == nil && saved != nil {
			systems.ApplySavedSettingsGlobal(saved)
		}
	}

	// Flags win over saved settings and the config file
	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Toast.Mode = opts.mode
	}
	if flags.Changed("justify") {
		cfg.Toast.Justify = opts.justify
	}
	if flags.Changed("show") {
		cfg.Toast.Show = opts.show
	}
	if flags.Changed("events") {
		cfg.Demo.EventInterval = opts.events
	}
	if opts.noPanel {
		cfg.Demo.ShowPanel = false
	}
	cfg.Debug.LogToasts = opts.logToasts

	if err := cfg.Toast.Validate(); err != nil {
		return fmt.Errorf("invalid toast settings: %w", err)
	}
	if cfg.Demo.EventInterval < 0 {
		return fmt.Errorf("--events must not be negative")
	}

	game, err := NewGame()
	if err != nil {
		return fmt.Errorf("startup: %w", err)
	}
	defer game.Close()

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
