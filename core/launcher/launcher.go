package launcher

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"lab-launcher/core/browser"
	"lab-launcher/core/loader"
	"lab-launcher/core/middleware/rayid"
	"lab-launcher/core/middleware/requestlog"
	"lab-launcher/core/netcheck"
	"lab-launcher/core/server"
	"lab-launcher/feature/static"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	rule            = "====================================="
	shutdownTimeout = 5 * time.Second
	lookupTimeout   = 2 * time.Second
)

// OwnerLookup names the process listening on a port.
type OwnerLookup func(ctx context.Context, port int) (netcheck.Owner, error)

// Option configures a Launcher.
type Option func(*Launcher)

// WithOutput sets the writer receiving the status lines.
func WithOutput(w io.Writer) Option {
	return func(l *Launcher) { l.out = w }
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Launcher) { l.logger = logger }
}

// WithOpener sets the browser opener.
func WithOpener(open browser.Opener) Option {
	return func(l *Launcher) { l.open = open }
}

// WithOwnerLookup sets how the holder of a busy port is found.
func WithOwnerLookup(lookup OwnerLookup) Option {
	return func(l *Launcher) { l.lookup = lookup }
}

// Launcher serves the serving root over HTTP until its context ends.
type Launcher struct {
	cfg    server.Config
	out    io.Writer
	logger *zap.Logger
	open   browser.Opener
	lookup OwnerLookup
}

// New creates a launcher for cfg.
func New(cfg server.Config, opts ...Option) *Launcher {
	l := &Launcher{
		cfg:    cfg,
		out:    os.Stdout,
		logger: zap.NewNop(),
		open:   browser.Default,
		lookup: netcheck.PortOwner,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run binds the port, prints the status banner, tries to open a browser and
// serves until ctx is cancelled. A cancelled ctx is a clean shutdown and
// returns nil; bind failures return *PortInUseError or a wrapped error.
func (l *Launcher) Run(ctx context.Context) error {
	if l.cfg.Root == "" {
		return ErrNoRoot
	}

	app, err := l.newApp()
	if err != nil {
		return err
	}

	ln, err := l.listen(ctx)
	if err != nil {
		return err
	}
	defer ln.Close()

	l.printBanner()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- app.Listener(ln)
	}()

	fmt.Fprintf(l.out, "✅ Server started on port %d\n", l.cfg.Port)
	l.openBrowser()
	fmt.Fprintln(l.out, "🟢 Server running...")

	select {
	case <-ctx.Done():
		fmt.Fprintln(l.out, "\n📴 Shutting down server...")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			l.logger.Warn("Shutdown did not complete", zap.Error(err))
		}
		_ = ln.Close()
		<-serveErr
		return nil
	case err := <-serveErr:
		if err == nil {
			return nil
		}
		return fmt.Errorf("server stopped: %w", err)
	}
}

func (l *Launcher) newApp() (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "lab-launcher",
	})

	app.Use(rayid.New())
	app.Use(requestlog.New(l.logger))

	mgr := loader.NewManager()
	mgr.Register(static.NewFeature(l.cfg.Root, l.logger))
	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}

	return app, nil
}

func (l *Launcher) listen(ctx context.Context) (net.Listener, error) {
	addr := l.cfg.Address()

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err == nil {
		return ln, nil
	}

	if !netcheck.IsAddrInUse(err) {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	perr := &PortInUseError{Port: l.cfg.Port, Err: err}

	lctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()
	if owner, lerr := l.lookup(lctx, l.cfg.Port); lerr == nil {
		perr.Owner = owner.String()
	} else {
		l.logger.Debug("Port owner unknown", zap.Int("port", l.cfg.Port), zap.Error(lerr))
	}

	return nil, perr
}

func (l *Launcher) printBanner() {
	fmt.Fprintln(l.out, rule)
	fmt.Fprintln(l.out, "🧪 Experiment Manager - Static Server")
	fmt.Fprintln(l.out, rule)
	fmt.Fprintf(l.out, "📋 URL: %s\n", l.cfg.URL())
	fmt.Fprintf(l.out, "📁 Directory: %s\n", l.cfg.Root)
	fmt.Fprintf(l.out, "⏰ Started: %s\n", time.Now().Format(time.DateTime))
	fmt.Fprintln(l.out, "🛑 Press Ctrl+C to stop the server")
	fmt.Fprintln(l.out, rule)
	fmt.Fprintln(l.out, "⚠️  Note: this is a plain static file server")
	fmt.Fprintln(l.out, rule)
}

// openBrowser never fails the run; errors become a hint to open the URL by hand.
func (l *Launcher) openBrowser() {
	url := l.cfg.URL()
	if err := l.open(url); err != nil {
		l.logger.Debug("Browser launch failed", zap.String("url", url), zap.Error(err))
		fmt.Fprintf(l.out, "🌐 Please open %s in your browser manually\n", url)
		return
	}
	fmt.Fprintln(l.out, "🌐 Tried to open the page in your browser")
}
