package dump

import "strings"

// LookupCategory maps the pspUmdTypes code token from the tool's disc log to
// a Category. Codes outside the known table resolve to CategoryUnknown; the
// Games fallback is applied by Merge, not here.
func LookupCategory(code string) Category {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "1", "GAME":
		return CategoryGames
	case "2", "VIDEO":
		return CategoryVideo
	case "3", "AUDIO":
		return CategoryAudio
	default:
		return CategoryUnknown
	}
}
