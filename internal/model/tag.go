package model

// TagColor is the fixed palette a tag can be rendered in
type TagColor string

const (
	TagGray   TagColor = "GRAY"
	TagRed    TagColor = "RED"
	TagOrange TagColor = "ORANGE"
	TagYellow TagColor = "YELLOW"
	TagGreen  TagColor = "GREEN"
	TagBlue   TagColor = "BLUE"
	TagPurple TagColor = "PURPLE"
	TagPink   TagColor = "PINK"
)

// TagColors returns the full palette
func TagColors() []TagColor {
	return []TagColor{TagGray, TagRed, TagOrange, TagYellow, TagGreen, TagBlue, TagPurple, TagPink}
}

// ParseTagColor resolves a stored color name, falling back to gray
func ParseTagColor(s string) TagColor {
	for _, c := range TagColors() {
		if TagColor(s) == c {
			return c
		}
	}
	return TagGray
}

// Tag labels a task, e.g. "bug" or "design"
type Tag struct {
	Label string
	Color TagColor
}
