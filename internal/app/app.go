package app

import (
	"context"
	"errors"
	"os"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/IVSoftware/debug-slow-flow/internal/backend"
	"github.com/IVSoftware/debug-slow-flow/internal/clickwatch"
	"github.com/IVSoftware/debug-slow-flow/internal/config"
	"github.com/IVSoftware/debug-slow-flow/internal/event"
	"github.com/IVSoftware/debug-slow-flow/internal/event/events"
	"github.com/IVSoftware/debug-slow-flow/internal/event/topic"
	"github.com/IVSoftware/debug-slow-flow/internal/script"
	"github.com/IVSoftware/debug-slow-flow/internal/ui"
)

// Application is the central coordinator. It owns every component's
// lifecycle and runs the main event loop.
type Application struct {
	logger  *Logger
	logFile *os.File

	bus     *event.Bus
	cfg     *config.Config
	theme   *config.Theme
	watcher *config.Watcher

	backend backend.Backend
	loop    *ui.Loop
	win     *ui.Window
	form    *mainForm
	filter  *clickwatch.Filter
	script  *script.State

	running      atomic.Bool
	done         chan struct{}
	shutdownOnce sync.Once

	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the TOML configuration file. Empty
	// runs on defaults with live reload disabled.
	ConfigPath string

	// ScriptPath overrides the configuration's script path.
	ScriptPath string

	// LogLevel sets the logging verbosity. Empty defers to the
	// configuration file.
	LogLevel string

	// Debug forces debug-level logging and a bus tap that logs every
	// published event.
	Debug bool

	// NoWatch disables live configuration reload.
	NoWatch bool

	// Version is reported in the startup event.
	Version string
}

// New creates an Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts: opts,
		done: make(chan struct{}),
	}
	if err := app.bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Logger
	logCfg := DefaultLoggerConfig()
	switch {
	case app.opts.Debug:
		logCfg.Level = LogLevelDebug
	case app.opts.LogLevel != "":
		logCfg.Level = ParseLogLevel(app.opts.LogLevel)
	}
	app.logger = NewLogger(logCfg)
	SetLogger(app.logger)

	// 2. Event bus
	app.bus = event.New()

	// 3. Configuration
	cfg, err := config.Load(app.opts.ConfigPath)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.cfg = cfg
	if app.opts.LogLevel == "" && !app.opts.Debug && cfg.Log.Level != "" {
		app.logger.SetLevel(ParseLogLevel(cfg.Log.Level))
	}
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			app.logger.Warn("cannot open log file %s: %v", cfg.Log.File, err)
		} else {
			app.logFile = f
			app.logger.SetOutput(f)
		}
	}

	// 4. Theme
	theme, err := config.LoadTheme(cfg.UI.Theme)
	if err != nil {
		app.logger.Warn("theme %s: %v; using terminal defaults", cfg.UI.Theme, err)
		theme = config.DefaultTheme()
	}
	app.theme = theme

	// 5. Loop, window and form
	app.loop = ui.NewLoop()
	app.win = ui.NewWindow(app.loop, "main", cfg.App.Title)
	app.form = buildMainForm(app.win, cfg, theme)
	app.form.quit.Clicked().Attach(func() {
		app.logger.Info("quit button pressed")
		app.Shutdown()
	})

	// 6. Click observer
	app.filter = clickwatch.New()
	app.filter.Register(app.win)
	app.win.ClickObserved().Attach(app.onClickObserved)
	app.win.Disposing().Attach(func() {
		_ = app.bus.Publish(context.Background(), events.TopicUIWindowDisposing,
			events.WindowDisposing{Name: app.win.Name()})
	})

	// 7. Config watcher (non-fatal)
	if !app.opts.NoWatch && app.opts.ConfigPath != "" {
		w, err := config.NewWatcher(app.opts.ConfigPath, app.onConfigFileChanged)
		if err != nil {
			app.logger.Warn("config watcher: %v; live reload disabled", err)
		} else {
			app.watcher = w
		}
	}

	// 8. Scripting (non-fatal: a broken script must not take the
	// application down)
	scriptPath := app.opts.ScriptPath
	if scriptPath == "" {
		scriptPath = cfg.Script.Path
	}
	if scriptPath != "" {
		s := script.New(script.Options{
			Log: func(msg string) {
				app.logger.WithComponent("script").Info("%s", msg)
			},
			People: peopleForScript(cfg),
		})
		if err := s.DoFile(scriptPath); err != nil {
			app.logger.Warn("script %s: %v; scripting disabled", scriptPath, err)
			s.Close()
		} else {
			app.script = s
			app.logger.Debug("script loaded: %s (%d click handlers)", scriptPath, s.HandlerCount())
		}
	}

	// 9. Bus subscriptions
	if app.opts.Debug {
		_, err := app.bus.Subscribe(topic.Topic(topic.WildcardMulti), app.logEnvelope,
			event.WithPriority(event.PriorityLow))
		if err != nil {
			return &InitError{Component: "subscriptions", Err: err}
		}
	}

	return nil
}

// onClickObserved handles every logical click the observer delivers.
// It runs on the loop goroutine.
func (app *Application) onClickObserved(ci ui.ClickInfo) {
	label := clickwatch.DisplayLabel(ci.Target)
	name := ci.Target.Name()

	app.logger.WithComponent("clicks").Info("click on %q (%s) at %s", label, name, ci.Pos)
	app.form.SetStatus("clicked: " + label)
	app.form.AppendLog("clicked: " + label)

	if err := app.bus.Publish(context.Background(), events.TopicUIClickObserved, events.ClickObserved{
		Handle:    uint64(ci.Target.Handle()),
		Name:      name,
		Text:      widgetText(ci.Target),
		Label:     label,
		X:         ci.Pos.X,
		Y:         ci.Pos.Y,
		Timestamp: ci.Time,
	}); err != nil && !errors.Is(err, event.ErrBusClosed) {
		app.logger.Warn("publishing click: %v", err)
	}

	if app.script != nil {
		if err := app.script.EmitClick(label, name, ci.Pos.X, ci.Pos.Y); err != nil {
			app.logger.WithComponent("script").Warn("%v", err)
		}
	}

	if app.cfg.App.ShowMessageBox {
		app.win.ShowMessage("Click observed", label)
	}
}

// widgetText returns the widget's text, or empty for widgets that
// carry none.
func widgetText(w ui.Widget) string {
	if t, ok := w.(ui.Texter); ok {
		return t.Text()
	}
	return ""
}

// peopleForScript converts the configured rows for the script module.
func peopleForScript(cfg *config.Config) []script.Person {
	people := make([]script.Person, 0, cfg.People.Rows())
	for i, name := range cfg.People.Names {
		people = append(people, script.Person{Name: name, Age: cfg.People.Age(i)})
	}
	return people
}

// logEnvelope is the debug-mode bus tap.
func (app *Application) logEnvelope(_ context.Context, env event.Envelope) error {
	app.logger.WithComponent("bus").Debug("%s %T", env.Topic, env.Payload)
	return nil
}

// onConfigFileChanged runs on the watcher goroutine; the reload
// itself is marshalled onto the loop.
func (app *Application) onConfigFileChanged(path string) {
	app.loop.PostTask(func() {
		app.reloadConfig(path)
	})
}

// reloadConfig re-reads the configuration and applies it to the live
// widget tree. A file that fails to load keeps the previous
// configuration.
func (app *Application) reloadConfig(path string) {
	cfg, err := config.Load(path)
	if err != nil {
		app.logger.Warn("config reload: %v; keeping previous configuration", err)
		return
	}
	theme, err := config.LoadTheme(cfg.UI.Theme)
	if err != nil {
		app.logger.Warn("config reload: theme: %v; keeping previous theme", err)
		theme = app.theme
	}

	app.cfg = cfg
	app.theme = theme
	app.win.SetTitle(cfg.App.Title)
	app.form.Rebuild(cfg, theme)
	app.layout()

	_ = app.bus.Publish(context.Background(), events.TopicConfigReloaded,
		events.ConfigReloaded{Path: path, Timestamp: time.Now()})
	app.logger.Info("configuration reloaded from %s", path)
}

// SetBackend sets the terminal backend. Must be called before Run.
func (app *Application) SetBackend(b backend.Backend) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Run starts the application and blocks until shutdown. A clean quit
// returns nil. A panic that unwinds out of the loop (a misbehaving
// click subscriber, for instance) comes back as a
// *RecoveredPanicError; nothing below this point recovers.
func (app *Application) Run() (err error) {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	defer func() {
		if r := recover(); r != nil {
			err = &RecoveredPanicError{Value: r, Stack: debug.Stack()}
			app.logger.Error("%v", err)
		}
	}()

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()
	defer app.Shutdown()
	defer app.teardownUI()

	if app.cfg.UI.Mouse {
		app.backend.EnableMouse()
	}

	app.layout()
	app.render()

	_ = app.bus.Publish(context.Background(), events.TopicAppStarted,
		events.AppStarted{Version: app.opts.Version, Timestamp: time.Now()})
	app.logger.Info("started: %s", app.cfg.App.Title)

	input := app.startInputPolling()
	err = app.eventLoop(input)
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

// teardownUI detaches the observer and disposes the widget tree. It
// runs on the loop goroutine as Run unwinds.
func (app *Application) teardownUI() {
	app.filter.Unregister()
	app.win.Dispose()
}

// Shutdown initiates graceful shutdown. It is safe to call from any
// goroutine and more than once; only the first call does the work.
func (app *Application) Shutdown() {
	app.shutdownOnce.Do(func() {
		close(app.done)

		_ = app.bus.Publish(context.Background(), events.TopicAppStopping,
			events.AppStopping{Reason: "shutdown"})

		// Reverse of bootstrap order.
		if app.script != nil {
			app.script.Close()
		}
		if app.watcher != nil {
			app.watcher.Close()
		}
		app.bus.Stop()
		if app.logFile != nil {
			app.logFile.Close()
		}
		app.logger.Info("stopped")
	})
}

// IsRunning reports whether Run is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Bus returns the event bus.
func (app *Application) Bus() *event.Bus {
	return app.bus
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	return app.cfg
}

// MainWindow returns the root window.
func (app *Application) MainWindow() *ui.Window {
	return app.win
}

// Loop returns the window's task loop.
func (app *Application) Loop() *ui.Loop {
	return app.loop
}

// ClickFilter returns the click-anywhere observer.
func (app *Application) ClickFilter() *clickwatch.Filter {
	return app.filter
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}
