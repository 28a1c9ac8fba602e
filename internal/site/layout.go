package site

import (
	"fmt"
	"strings"

	"github.com/forgeline/kinetic"
	"github.com/forgeline/kinetic/internal/config"
	"go.uber.org/zap"
)

// Layout metrics in page pixels.
const (
	NavHeight = 56
	Padding   = 48
	Gap       = 24

	navLinkWidth  = 96
	buttonWidth   = 200
	buttonHeight  = 56
	bannerHeight  = 40
	floaterSize   = 48
	cardStagger   = 0.1
	floatStagger  = 0.3
	bannerHold    = 2.5
	bannerFade    = 0.5
	defaultButton = "Send message"
	bannerText    = "Thanks! We will be in touch shortly."
)

var defaultHeights = map[string]float64{
	config.KindHero:    560,
	config.KindText:    220,
	config.KindCards:   360,
	config.KindMarquee: 96,
	config.KindFloat:   280,
	config.KindButton:  200,
}

var (
	navColor    = kinetic.Color{R: 0.09, G: 0.1, B: 0.13, A: 1}
	activeColor = kinetic.Color{R: 0.95, G: 0.55, B: 0.15, A: 1}
	cardColor   = kinetic.Color{R: 0.97, G: 0.97, B: 0.98, A: 1}
	darkText    = kinetic.Color{R: 0.1, G: 0.1, B: 0.12, A: 1}
)

var defaultColors = map[string]kinetic.Color{
	config.KindHero:    {R: 0.12, G: 0.16, B: 0.24, A: 1},
	config.KindText:    {R: 1, G: 1, B: 1, A: 1},
	config.KindCards:   {R: 0.93, G: 0.94, B: 0.96, A: 1},
	config.KindMarquee: {R: 0.95, G: 0.55, B: 0.15, A: 1},
	config.KindFloat:   {R: 0.16, G: 0.2, B: 0.3, A: 1},
	config.KindButton:  {R: 1, G: 1, B: 1, A: 1},
}

// blockHeight returns the configured height or the kind's default.
func blockHeight(b config.BlockConfig) float64 {
	if b.Height > 0 {
		return b.Height
	}
	return defaultHeights[b.Kind]
}

// blockColor returns the configured color or the kind's default. The config
// is validated, so a parse error cannot happen here.
func blockColor(b config.BlockConfig) kinetic.Color {
	if b.Color != "" {
		if c, err := config.ParseColor(b.Color); err == nil {
			return c
		}
	}
	return defaultColors[b.Kind]
}

// textOn picks a readable label color for a background.
func textOn(bg kinetic.Color) kinetic.Color {
	if 0.2126*bg.R+0.7152*bg.G+0.0722*bg.B < 0.5 {
		return kinetic.ColorWhite
	}
	return darkText
}

// wrap breaks text into lines of at most width pixels of debug-font text.
func wrap(text string, width float64) string {
	cw, _ := kinetic.MeasureLabel("m")
	maxChars := max(int(width/cw), 1)
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			switch {
			case line == "":
				line = word
			case len(line)+1+len(word) <= maxChars:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (st *Site) buildNav(page config.PageConfig) float64 {
	bar := kinetic.NewBox("nav", st.width, NavHeight, navColor)
	bar.SetZIndex(1)
	st.content.AddChild(bar)

	title := st.cfg.Window.Title
	if page.Title != "" {
		title += " | " + page.Title
	}
	brand := kinetic.NewLabel("nav/title", title, kinetic.ColorWhite)
	brand.SetPosition(Padding/2, (NavHeight-brand.Height)/2)
	bar.AddChild(brand)

	x := st.width - Padding/2 - float64(len(st.cfg.Pages))*navLinkWidth
	for _, p := range st.cfg.Pages {
		link := kinetic.NewElement("nav/"+p.Name, navLinkWidth, NavHeight)
		link.SetPosition(x, 0)
		link.Interactable = true
		link.UserData = p.Name
		c := kinetic.ColorWhite
		if p.Name == st.page {
			c = activeColor
		}
		label := kinetic.NewLabel("nav/"+p.Name+"/label", p.Name, c)
		label.SetPosition((navLinkWidth-label.Width)/2, (NavHeight-label.Height)/2)
		link.AddChild(label)
		link.OnClick = func(ctx kinetic.PointerContext) {
			if name, ok := ctx.Element.UserData.(string); ok {
				st.pendingPage = name
			}
		}
		bar.AddChild(link)
		x += navLinkWidth
	}
	return NavHeight
}

// buildBlock adds one section at y and returns its height.
func (st *Site) buildBlock(page string, i int, b config.BlockConfig, y float64) float64 {
	h := blockHeight(b)
	bg := blockColor(b)
	section := kinetic.NewBox(fmt.Sprintf("%s/%d-%s", page, i, b.Kind), st.width, h, bg)
	section.SetPosition(0, y)
	st.content.AddChild(section)
	st.stats.Sections++

	switch b.Kind {
	case config.KindHero:
		st.buildHero(section, b, textOn(bg))
	case config.KindText:
		st.buildText(section, b, textOn(bg))
	case config.KindCards:
		st.buildCards(section, b)
	case config.KindMarquee:
		st.buildMarquee(section, b, textOn(bg))
	case config.KindFloat:
		st.buildFloat(section, b)
	case config.KindButton:
		st.buildButton(section, b)
	}
	return h
}

func (st *Site) reveal(el *kinetic.Element, r *config.RevealSettings, extraDelay float64) {
	if r == nil {
		return
	}
	cfg, err := r.Resolve(st.cfg.Defaults.Reveal)
	if err != nil {
		st.log.Warn("reveal skipped", zap.String("element", el.Name), zap.Error(err))
		return
	}
	cfg.Delay += extraDelay
	kinetic.NewReveal(st.scene, el, cfg)
	st.stats.Reveals++
}

func (st *Site) float(el *kinetic.Element, f *config.FloatSettings, extraDelay float64) {
	cfg := f.Resolve(st.cfg.Defaults.Float)
	cfg.Delay += extraDelay
	kinetic.NewFloating(st.scene, el, cfg)
	st.stats.Floats++
}

func (st *Site) buildHero(section *kinetic.Element, b config.BlockConfig, fg kinetic.Color) {
	content := kinetic.NewElement(section.Name+"/content", section.Width, section.Height)
	section.AddChild(content)

	label := kinetic.NewLabel(section.Name+"/headline", wrap(b.Text, section.Width-2*Padding), fg)
	label.SetPosition(Padding, (section.Height-label.Height)/2)
	content.AddChild(label)
	st.reveal(label, b.Reveal, 0)

	if b.Float != nil {
		spots := [][2]float64{{0.15, 0.25}, {0.82, 0.6}}
		for j, p := range spots {
			shape := kinetic.NewBox(fmt.Sprintf("%s/floater-%d", section.Name, j), floaterSize, floaterSize, activeColor)
			shape.SetPosition(section.Width*p[0], section.Height*p[1])
			content.AddChild(shape)
			st.float(shape, b.Float, float64(j)*floatStagger)
		}
	}

	if b.Parallax != nil {
		cfg, err := b.Parallax.Resolve(st.cfg.Defaults.Parallax)
		if err != nil {
			st.log.Warn("parallax skipped", zap.String("element", section.Name), zap.Error(err))
			return
		}
		kinetic.NewParallax(st.scene, section, content, cfg)
		st.stats.Parallax++
	}
}

func (st *Site) buildText(section *kinetic.Element, b config.BlockConfig, fg kinetic.Color) {
	label := kinetic.NewLabel(section.Name+"/text", wrap(b.Text, section.Width-2*Padding), fg)
	label.SetPosition(Padding, Padding)
	section.AddChild(label)
	st.reveal(label, b.Reveal, 0)
}

// buildCards lays the items out in one row. Each card sits in a slot so a
// reveal can move the slot while tilt or hover effects move the card.
func (st *Site) buildCards(section *kinetic.Element, b config.BlockConfig) {
	n := float64(len(b.Items))
	w := (section.Width - 2*Padding - Gap*(n-1)) / n
	h := section.Height - 2*Padding
	if w <= 0 || h <= 0 {
		st.log.Warn("cards do not fit", zap.String("element", section.Name), zap.Float64("width", w))
		return
	}

	var tilt *kinetic.TiltConfig
	if b.Tilt != nil {
		cfg := b.Tilt.Resolve(st.cfg.Defaults.Tilt)
		tilt = &cfg
	}
	effect := kinetic.HoverNone
	if b.Card != nil {
		effect, _ = kinetic.ParseHoverEffect(b.Card.Effect)
	}

	for j, item := range b.Items {
		name := fmt.Sprintf("%s/card-%d", section.Name, j)
		slot := kinetic.NewElement(name+"/slot", w, h)
		slot.SetPosition(Padding+float64(j)*(w+Gap), Padding)
		section.AddChild(slot)

		card := kinetic.NewBox(name, w, h, cardColor)
		slot.AddChild(card)
		label := kinetic.NewLabel(name+"/label", wrap(item, w-Gap), darkText)
		label.SetPosition(Gap/2, Gap/2)
		card.AddChild(label)

		switch {
		case tilt != nil:
			kinetic.NewTiltCard(st.scene, card, *tilt)
			st.stats.Tilts++
		case b.Card != nil:
			kinetic.NewHoverCard(st.scene, card, effect)
			st.stats.HoverCards++
		}
		st.reveal(slot, b.Reveal, float64(j)*cardStagger)
	}
}

func (st *Site) buildMarquee(section *kinetic.Element, b config.BlockConfig, fg kinetic.Color) {
	settings := config.MarqueeSettings{}
	if b.Marquee != nil {
		settings = *b.Marquee
	}
	cfg, err := settings.Resolve(st.cfg.Defaults.Marquee)
	if err != nil {
		st.log.Warn("marquee skipped", zap.String("element", section.Name), zap.Error(err))
		return
	}
	kinetic.NewMarquee(st.scene, section, b.Text, fg, cfg)
	st.stats.Marquees++
}

func (st *Site) buildFloat(section *kinetic.Element, b config.BlockConfig) {
	settings := config.FloatSettings{}
	if b.Float != nil {
		settings = *b.Float
	}
	spots := [][2]float64{{0.2, 0.3}, {0.5, 0.55}, {0.78, 0.25}}
	for j, p := range spots {
		shape := kinetic.NewBox(fmt.Sprintf("%s/floater-%d", section.Name, j), floaterSize, floaterSize, activeColor)
		shape.SetPosition(section.Width*p[0], section.Height*p[1])
		section.AddChild(shape)
		st.float(shape, &settings, float64(j)*floatStagger)
	}
	if b.Text != "" {
		label := kinetic.NewLabel(section.Name+"/caption", wrap(b.Text, section.Width-2*Padding), kinetic.ColorWhite)
		label.SetPosition(Padding, section.Height-Padding-label.Height)
		section.AddChild(label)
	}
}

// buildButton adds the contact submit button with a hidden banner above it.
func (st *Site) buildButton(section *kinetic.Element, b config.BlockConfig) {
	text := b.Text
	if text == "" {
		text = defaultButton
	}
	button := kinetic.NewBox(section.Name+"/button", buttonWidth, buttonHeight, activeColor)
	button.SetPosition((section.Width-buttonWidth)/2, section.Height-Padding-buttonHeight)
	button.Interactable = true
	button.OnClick = func(kinetic.PointerContext) { st.submit() }
	section.AddChild(button)

	label := kinetic.NewLabel(button.Name+"/label", text, kinetic.ColorWhite)
	label.SetPosition((buttonWidth-label.Width)/2, (buttonHeight-label.Height)/2)
	button.AddChild(label)

	bw, _ := kinetic.MeasureLabel(bannerText)
	banner := kinetic.NewBox(section.Name+"/banner", bw+2*Gap, bannerHeight, navColor)
	banner.SetPosition((section.Width-banner.Width)/2, Padding/2)
	banner.Visible = false
	msg := kinetic.NewLabel(banner.Name+"/label", bannerText, kinetic.ColorWhite)
	msg.SetPosition(Gap, (bannerHeight-msg.Height)/2)
	banner.AddChild(msg)
	section.AddChild(banner)

	st.banner = banner
	st.stats.Buttons++
	st.reveal(button, b.Reveal, 0)
}
