package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/hopwire/pour-panic/audio"
	"github.com/hopwire/pour-panic/constants"
	"github.com/hopwire/pour-panic/engine"
	"github.com/hopwire/pour-panic/render"
	"github.com/hopwire/pour-panic/store"
	"github.com/hopwire/pour-panic/systems"
)

var (
	debugFlag     = flag.Bool("debug", false, "Enable debug logging to logs/pour-panic.log")
	saveFlag      = flag.String("save", "", "Path to save database (default: user config dir)")
	ephemeralFlag = flag.Bool("ephemeral", false, "Run without persistence")
	muteFlag      = flag.Bool("mute", false, "Disable audio")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before the stack trace prints,
	// otherwise it lands on a raw-mode screen
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nPOUR PANIC CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	saveStore := openStore()
	if saveStore != nil {
		defer saveStore.Close()
	}

	ctx := engine.NewGameContext(saveStore)

	audioCfg := audio.LoadConfig()
	if *muteFlag {
		audioCfg.Enabled = false
	}
	audioEngine := audio.NewEngine(audioCfg)
	if err := audioEngine.Start(); err != nil {
		log.Printf("audio start failed, continuing silent: %v", err)
	}
	defer audioEngine.Stop()

	scheduler := engine.NewClockScheduler(ctx, constants.GameTickInterval)

	progression := systems.NewProgressionSystem()
	frenzy := systems.NewFrenzySystem()
	scheduler.Register(systems.NewLifecycleSystem())
	scheduler.Register(systems.NewPatienceSystem())
	scheduler.Register(systems.NewCustomerSpawnSystem())
	scheduler.Register(systems.NewPourSystem())
	scheduler.Register(systems.NewScoringSystem(progression, frenzy))
	scheduler.Register(progression)
	scheduler.Register(frenzy)
	scheduler.Register(systems.NewAudioSystem(audioEngine))

	toasts := render.NewToastFeed()
	scheduler.RegisterHandler(toasts)

	scheduler.Start()
	defer scheduler.Stop()

	run(ctx, screen, toasts)
}

// openStore resolves the persistence backend from flags. Falls back to
// in-memory when the database cannot be opened so a broken config dir
// never blocks play.
func openStore() engine.SaveStore {
	if *ephemeralFlag {
		return store.NewMemoryStore()
	}

	path := *saveFlag
	if path == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			log.Printf("no user config dir, running in-memory: %v", err)
			return store.NewMemoryStore()
		}
		dir := filepath.Join(configDir, "pour-panic")
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Printf("cannot create save dir, running in-memory: %v", err)
			return store.NewMemoryStore()
		}
		path = filepath.Join(dir, "save.db")
	}

	s, err := store.OpenSQLite(path)
	if err != nil {
		log.Printf("cannot open save db %s, running in-memory: %v", path, err)
		return store.NewMemoryStore()
	}
	return s
}

// run is the render and input loop. The simulation advances on its own
// goroutine inside the scheduler; this loop only reads snapshots and
// translates key presses into commands.
func run(ctx *engine.GameContext, screen tcell.Screen, toasts *render.ToastFeed) {
	renderer := render.NewRenderer(screen)

	eventChan := make(chan tcell.Event, 64)
	quitChan := make(chan struct{})
	go screen.ChannelEvents(eventChan, quitChan)
	defer close(quitChan)

	frameTicker := time.NewTicker(constants.RenderInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					return
				}
				if !render.HandleKey(ctx, ctx.State.Snapshot(), ev) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-frameTicker.C:
			renderer.Draw(ctx.State.Snapshot(), toasts.Active(ctx.Clock.Now()))
		}
	}
}
