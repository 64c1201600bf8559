// Package browser wraps a headless Chrome session and its pages as scoped
// resources: Launch and OpenPage acquire, Close releases.
package browser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"

	"github.com/chromedp/chromedp"
)

var (
	// ErrNoBrowser is returned when no Chrome or Chromium executable is found.
	ErrNoBrowser = errors.New("no chrome or chromium executable found")
	// ErrNotFound is returned when a selector matches no element.
	ErrNotFound = errors.New("element not found")
	// ErrClosed is returned when a closed session is used.
	ErrClosed = errors.New("browser session closed")
)

// Viewport is a page's CSS pixel size.
type Viewport struct {
	Width  int64 `yaml:"width"`
	Height int64 `yaml:"height"`
}

// DefaultViewport is the size every page starts at.
var DefaultViewport = Viewport{Width: 1200, Height: 800}

// Options configures Launch.
type Options struct {
	ExecPath string // empty lets chromedp search its default locations
	Headless bool
	Viewport Viewport
	Logf     func(format string, args ...any)
}

// Session is one running browser. It is shared by the pages of a run and is
// not safe for concurrent page operations.
type Session struct {
	ctx           context.Context
	cancelBrowser context.CancelFunc
	cancelAlloc   context.CancelFunc
	viewport      Viewport

	closeOnce sync.Once
	closeErr  error
}

// Launch starts a browser that lives until Close is called or ctx ends.
// Sandboxing is always disabled so the suite runs in containers and CI as root.
func Launch(ctx context.Context, opts Options) (*Session, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.Flag("disable-setuid-sandbox", true),
	)
	if !opts.Headless {
		allocOpts = append(allocOpts, chromedp.Flag("headless", false))
	}
	if opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ExecPath))
	}
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)

	var ctxOpts []chromedp.ContextOption
	if opts.Logf != nil {
		ctxOpts = append(ctxOpts, chromedp.WithLogf(opts.Logf), chromedp.WithErrorf(opts.Logf))
	}
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx, ctxOpts...)

	// Running no actions starts the browser process and its first tab.
	if err := chromedp.Run(browserCtx); err != nil {
		cancelBrowser()
		cancelAlloc()
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	vp := opts.Viewport
	if vp.Width <= 0 || vp.Height <= 0 {
		vp = DefaultViewport
	}
	return &Session{
		ctx:           browserCtx,
		cancelBrowser: cancelBrowser,
		cancelAlloc:   cancelAlloc,
		viewport:      vp,
	}, nil
}

// Alive reports whether the browser is still usable.
func (s *Session) Alive() bool {
	if s.ctx.Err() != nil {
		return false
	}
	c := chromedp.FromContext(s.ctx)
	return c != nil && c.Browser != nil
}

// Viewport returns the size new pages start at.
func (s *Session) Viewport() Viewport {
	return s.viewport
}

// Close shuts the browser down. It is safe to call more than once.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		if err := chromedp.Cancel(s.ctx); err != nil && !errors.Is(err, context.Canceled) {
			s.closeErr = fmt.Errorf("closing browser: %w", err)
		}
		s.cancelBrowser()
		s.cancelAlloc()
	})
	return s.closeErr
}

// chromeCandidates are looked up on PATH in order.
var chromeCandidates = []string{
	"headless-shell",
	"headless_shell",
	"chromium",
	"chromium-browser",
	"google-chrome",
	"google-chrome-stable",
	"chrome",
}

// macChrome is the default install location on macOS.
const macChrome = "/Applications/Google Chrome.app/Contents/MacOS/Google Chrome"

// FindExecPath locates a browser: $STYLELAB_CHROME first, then PATH.
func FindExecPath() (string, error) {
	if p := os.Getenv("STYLELAB_CHROME"); p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("STYLELAB_CHROME=%s: %w", p, err)
		}
		return p, nil
	}
	for _, name := range chromeCandidates {
		if p, err := exec.LookPath(name); err == nil {
			return p, nil
		}
	}
	if _, err := os.Stat(macChrome); err == nil {
		return macChrome, nil
	}
	return "", ErrNoBrowser
}
