package site

// Page identifies one of the colorpick tool pages
type Page int

const (
	Home Page = iota
	Picker
	Palette
	Contrast
)

// NoPage marks no navigation entry as active
const NoPage Page = -1

var pageMeta = [...]struct{ href, title string }{
	Home:     {"index.html", "Home"},
	Picker:   {"picker.html", "Picker"},
	Palette:  {"palette.html", "Palette"},
	Contrast: {"contrast.html", "Contrast"},
}

// Pages returns all pages in navigation order
func Pages() []Page {
	return []Page{Home, Picker, Palette, Contrast}
}

// Valid reports whether p is a known page
func (p Page) Valid() bool {
	return p >= 0 && int(p) < len(pageMeta)
}

// Href returns the page file name, empty for unknown pages
func (p Page) Href() string {
	if !p.Valid() {
		return ""
	}
	return pageMeta[p].href
}

// Title returns the navigation label, empty for unknown pages
func (p Page) Title() string {
	if !p.Valid() {
		return ""
	}
	return pageMeta[p].title
}

// String implements fmt.Stringer
func (p Page) String() string {
	if !p.Valid() {
		return "none"
	}
	return pageMeta[p].title
}

// PageFromHref resolves a page by file name ("picker.html") or bare name ("picker")
func PageFromHref(href string) (Page, bool) {
	for _, p := range Pages() {
		meta := pageMeta[p]
		if href == meta.href || href+".html" == meta.href {
			return p, true
		}
	}
	return NoPage, false
}
