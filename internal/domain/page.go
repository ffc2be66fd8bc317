package domain

type Image struct {
	Src      string
	Alt      string
	Width    int
	Height   int
	Priority bool
}

type Page struct {
	Title string
	Image Image
}

// HomePage is the content served at the site root.
func HomePage() Page {
	return Page{
		Title: "Hello, Next.js!",
		Image: Image{
			Src:      "/next.svg",
			Alt:      "NextJS Logo",
			Width:    150,
			Height:   30,
			Priority: true,
		},
	}
}
