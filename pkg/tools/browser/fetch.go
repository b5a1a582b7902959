package browser

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	ae "github.com/theapemachine/yamap-mcp/pkg/errors"
)

// Result captures the rendered page returned by Fetch.
type Result struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	HTML     string `json:"html"`
	Duration int64  `json:"duration_ms"`
}

/*
Config controls how the headless browser is launched and how long a page is
given to settle before its HTML is snapshotted.
*/
type Config struct {
	Headless bool          `mapstructure:"headless"`
	Bin      string        `mapstructure:"bin"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Stable   time.Duration `mapstructure:"stable"`
}

func DefaultConfig() Config {
	return Config{
		Headless: true,
		Timeout:  60 * time.Second,
		Stable:   time.Second,
	}
}

/*
Browser drives a fresh Chromium instance per call. Nothing is shared between
calls, so a Browser is safe for concurrent use.
*/
type Browser struct {
	cfg Config
}

func NewBrowser(cfg Config) *Browser {
	return &Browser{cfg: cfg}
}

// Navigate renders pageURL and returns the HTML of the settled document.
func (browser *Browser) Navigate(ctx context.Context, pageURL string) (string, error) {
	res, err := browser.Fetch(ctx, pageURL)

	if err != nil {
		return "", err
	}

	return res.HTML, nil
}

/*
Fetch opens pageURL in a headless browser, waits for the load event and for
the DOM and network to stay quiet for the configured window, then snapshots
the document. The function is cancellable via ctx.
*/
func (browser *Browser) Fetch(ctx context.Context, pageURL string) (res *Result, err error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" && u.Scheme != "data" {
		return nil, errors.New("unsupported URL scheme (allowed: http, https, data)")
	}

	if browser.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, browser.cfg.Timeout)
		defer cancel()
	}

	launch := launcher.New().Context(ctx).Headless(browser.cfg.Headless).Leakless(true)
	if browser.cfg.Bin != "" {
		launch = launch.Bin(browser.cfg.Bin)
	}

	wsURL, err := launch.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}
	defer func() {
		launch.Kill()
		launch.Cleanup()
	}()

	rb := rod.New().ControlURL(wsURL).Context(ctx)
	if err = rb.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}
	defer func() {
		if closeErr := rb.Close(); closeErr != nil {
			log.Warn("failed to close browser", "error", closeErr)
			if err != nil {
				err = ae.NewError(err, closeErr)
			}
		}
	}()

	start := time.Now()

	page, err := rb.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	log.Debug("navigating", "url", pageURL)

	if err = page.Navigate(pageURL); err != nil {
		return nil, fmt.Errorf("failed to navigate to %s: %w", pageURL, err)
	}
	if err = page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("failed waiting for load: %w", err)
	}
	if browser.cfg.Stable > 0 {
		if err = page.WaitStable(browser.cfg.Stable); err != nil {
			return nil, fmt.Errorf("failed waiting for page to settle: %w", err)
		}
	}

	html, err := page.HTML()
	if err != nil {
		return nil, fmt.Errorf("failed to read page HTML: %w", err)
	}

	info, err := page.Info()
	if err != nil {
		return nil, fmt.Errorf("failed to read page info: %w", err)
	}

	log.Info("page rendered", "url", info.URL, "bytes", len(html), "duration", time.Since(start))

	return &Result{
		Title:    info.Title,
		URL:      info.URL,
		HTML:     html,
		Duration: time.Since(start).Milliseconds(),
	}, nil
}
