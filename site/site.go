// Package site builds the shared HTML chrome (navigation and footer) of the
// colorpick pages.
//
// Builders are pure: the active page and the copyright year are inputs, so
// output depends on nothing but the arguments. Interpolated values go through
// html/template and are escaped for their context.
package site

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

// Defaults for the stock site chrome
const (
	DefaultBrand   = "ColorPick"
	DefaultTipURL  = "https://etherscan.io/address/0xEeD903787Cb86bcCc17777E5C7d10A4c2De43823"
	DefaultTagline = "Free color tools for designers"
)

var (
	navTemplate = template.Must(template.New("nav").Parse(`<nav>
  <a href="{{.Home}}" class="logo">{{.Brand}} 🎨</a>
  <ul>{{range .Links}}<li><a href="{{.Href}}" class="{{.Class}}">{{.Title}}</a></li>{{end}}</ul>
</nav>`))

	footerTemplate = template.Must(template.New("footer").Parse(`<footer>
  <p>Love the colors? <a class="tip-link" href="{{.TipURL}}" target="_blank">Buy the artist a coffee ☕</a></p>
  <p style="margin-top:0.5rem;font-size:0.8rem">© {{.Year}} {{.Brand}} — {{.Tagline}}</p>
</footer>`))
)

// Builder holds the configurable parts of the site chrome
type Builder struct {
	Brand   string
	TipURL  string
	Tagline string
}

// DefaultBuilder returns a builder with the stock strings
func DefaultBuilder() Builder {
	return Builder{
		Brand:   DefaultBrand,
		TipURL:  DefaultTipURL,
		Tagline: DefaultTagline,
	}
}

type navLink struct {
	Href, Title, Class string
}

// Nav renders the navigation bar with active marked by class="active"
// An unknown active page leaves every link unmarked
func (b Builder) Nav(active Page) string {
	links := make([]navLink, 0, len(pageMeta))
	for _, p := range Pages() {
		class := ""
		if p == active {
			class = "active"
		}
		links = append(links, navLink{Href: p.Href(), Title: p.Title(), Class: class})
	}

	return render(navTemplate, struct {
		Home  string
		Brand string
		Links []navLink
	}{Home.Href(), b.Brand, links})
}

// Footer renders the footer with the given copyright year
func (b Builder) Footer(year int) string {
	return render(footerTemplate, struct {
		TipURL  string
		Year    int
		Brand   string
		Tagline string
	}{b.TipURL, year, b.Brand, b.Tagline})
}

// FooterText returns the copyright line as plain text, for non-HTML front-ends
func (b Builder) FooterText(year int) string {
	return fmt.Sprintf("© %d %s — %s", year, b.Brand, b.Tagline)
}

// FooterAt renders the footer with the year taken from clock
func (b Builder) FooterAt(clock func() time.Time) string {
	return b.Footer(clock().Year())
}

func render(t *template.Template, data any) string {
	var sb strings.Builder
	// Templates are parsed at init and data shapes are fixed; execution cannot fail on strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		panic(err)
	}
	return sb.String()
}

var defaultBuilder = DefaultBuilder()

// Nav renders the stock navigation bar
func Nav(active Page) string {
	return defaultBuilder.Nav(active)
}

// Footer renders the stock footer for year
func Footer(year int) string {
	return defaultBuilder.Footer(year)
}

// FooterNow renders the stock footer using clock for the year
func FooterNow(clock func() time.Time) string {
	return defaultBuilder.FooterAt(clock)
}
