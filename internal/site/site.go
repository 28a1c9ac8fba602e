// Package site lays the configured pages out into a kinetic scene and keeps
// them current across page switches, window resizes and config reloads.
//
// Everything a Site does happens on the goroutine that steps its scene.
// Reload is the one method that may be called from elsewhere; the new
// config is picked up at the next frame.
package site

import (
	"errors"
	"fmt"

	"github.com/forgeline/kinetic"
	"github.com/forgeline/kinetic/internal/config"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// ErrUnknownPage is returned for a page name the config does not define.
var ErrUnknownPage = errors.New("site: unknown page")

// Stats counts what the current page was built from.
type Stats struct {
	Sections   int
	Reveals    int
	Parallax   int
	Tilts      int
	HoverCards int
	Marquees   int
	Floats     int
	Buttons    int
}

// Site owns the page content under the scene root.
type Site struct {
	scene *kinetic.Scene
	log   *zap.Logger
	cfg   *config.Config
	page  string
	width float64

	content *kinetic.Element
	banner  *kinetic.Element
	fade    kinetic.FrameHandle
	stats   Stats

	submissions int
	rebuilds    int

	reloads     chan *config.Config
	pendingPage string
	dirty       bool
}

// New builds the named page into s. An empty name selects the first page.
func New(s *kinetic.Scene, cfg *config.Config, page string, log *zap.Logger) (*Site, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if len(cfg.Pages) == 0 {
		return nil, fmt.Errorf("%w: config has no pages", ErrUnknownPage)
	}
	if page == "" {
		page = cfg.Pages[0].Name
	}
	if _, ok := cfg.Page(page); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPage, page)
	}
	st := &Site{
		scene:   s,
		log:     log.Named("site"),
		cfg:     cfg,
		page:    page,
		width:   s.Viewport().Screen.Width,
		reloads: make(chan *config.Config, 1),
	}
	st.build(false)
	s.OnFrame(nil, st.tick)
	return st, nil
}

// Page returns the name of the page on screen.
func (st *Site) Page() string {
	return st.page
}

// Config returns the config the page was built from.
func (st *Site) Config() *config.Config {
	return st.cfg
}

// Stats returns the component counts of the current page.
func (st *Site) Stats() Stats {
	return st.stats
}

// Content returns the element holding the current page.
func (st *Site) Content() *kinetic.Element {
	return st.content
}

// Submissions returns how many times the contact button was pressed.
func (st *Site) Submissions() int {
	return st.submissions
}

// Rebuilds returns how many times the page was laid out again after the
// first build.
func (st *Site) Rebuilds() int {
	return st.rebuilds
}

// BannerVisible reports whether the submit confirmation is on screen.
func (st *Site) BannerVisible() bool {
	return st.banner != nil && st.banner.Visible && st.banner.Alpha > 0
}

// Show switches to the named page at the next frame.
func (st *Site) Show(name string) error {
	if _, ok := st.cfg.Page(name); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPage, name)
	}
	st.pendingPage = name
	return nil
}

// Resize lays the page out again for a new window width at the next frame.
// It matches kinetic.RunConfig.OnResize.
func (st *Site) Resize(w, _ float64) {
	if w == st.width {
		return
	}
	st.width = w
	st.dirty = true
}

// Reload queues cfg to replace the current config. Only the latest queued
// config is applied. It is safe to call from any goroutine.
func (st *Site) Reload(cfg *config.Config) {
	for {
		select {
		case st.reloads <- cfg:
			return
		default:
		}
		select {
		case <-st.reloads:
		default:
		}
	}
}

func (st *Site) tick(float64) {
	select {
	case cfg := <-st.reloads:
		st.apply(cfg)
	default:
	}
	if st.pendingPage != "" {
		name := st.pendingPage
		st.pendingPage = ""
		if _, ok := st.cfg.Page(name); !ok {
			st.log.Warn("page gone before show", zap.String("page", name))
		} else if name != st.page {
			st.log.Info("show page", zap.String("from", st.page), zap.String("to", name))
			st.page = name
			st.build(false)
			return
		}
	}
	if st.dirty {
		st.build(true)
	}
}

func (st *Site) apply(cfg *config.Config) {
	if _, ok := cfg.Page(st.page); !ok {
		st.log.Warn("page gone after reload", zap.String("page", st.page))
		st.page = cfg.Pages[0].Name
	}
	st.cfg = cfg
	st.scene.SetDebugMode(cfg.Debug)
	st.log.Info("config applied", zap.String("page", st.page), zap.Int("pages", len(cfg.Pages)))
	st.build(true)
}

// build replaces the page content. keepScroll holds the scroll position
// for a relayout of the same page; a page switch starts at the top.
func (st *Site) build(keepScroll bool) {
	v := st.scene.Viewport()
	scrollY := v.ScrollY
	if st.content != nil {
		st.content.Dispose()
		st.rebuilds++
	}
	st.fade.Stop()
	st.banner = nil
	st.stats = Stats{}
	st.dirty = false

	page, _ := st.cfg.Page(st.page)
	st.content = kinetic.NewElement("page/"+page.Name, st.width, 0)
	st.scene.Root().AddChild(st.content)

	y := st.buildNav(page)
	for i, b := range page.Blocks {
		y += st.buildBlock(page.Name, i, b, y)
	}
	st.content.SetSize(st.width, y)
	st.scene.FitContent()

	if keepScroll {
		v.SetScroll(0, scrollY)
	} else {
		v.SetScroll(0, 0)
	}
	st.log.Debug("page built",
		zap.String("page", page.Name),
		zap.Float64("width", st.width),
		zap.Float64("height", y),
		zap.Int("sections", st.stats.Sections))
}

// submit handles the contact button: it logs the submission and shows a
// confirmation banner that fades out after a few seconds.
func (st *Site) submit() {
	st.submissions++
	st.log.Info("contact form submitted",
		zap.String("page", st.page), zap.Int("submissions", st.submissions))
	if st.banner == nil {
		return
	}
	st.fade.Stop()
	st.banner.Visible = true
	st.banner.SetAlpha(1)
	st.fade = st.scene.Animate(kinetic.TweenAlpha(st.banner, 0, bannerFade, ease.InQuad).WithDelay(bannerHold))
}
