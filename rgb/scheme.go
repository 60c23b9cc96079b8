package rgb

// Scheme assigns colors to the roles used by the boot screens.
type Scheme struct {
	Text       Color
	Background Color
	Banner     Color
	Title      Color
	Dim        Color
	Heading    Color
	OK         Color
	Error      Color
}

var DefaultScheme = Scheme{
	Text:       White,
	Background: Black,
	Banner:     Magenta,
	Title:      Yellow,
	Dim:        Gray,
	Heading:    Cyan,
	OK:         Green,
	Error:      Red,
}
