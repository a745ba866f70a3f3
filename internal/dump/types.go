package dump

// MediaType identifies the physical media a dump was taken from. Only UMD
// dumps carry the log set this package understands; every other media type
// passes validation vacuously.
type MediaType string

const (
	MediaUMD     MediaType = "umd"
	MediaCD      MediaType = "cd"
	MediaDVD     MediaType = "dvd"
	MediaUnknown MediaType = "unknown"
)

// ParseMediaType maps user-supplied media names onto a MediaType.
func ParseMediaType(value string) MediaType {
	switch value {
	case "umd", "UMD":
		return MediaUMD
	case "cd", "CD":
		return MediaCD
	case "dvd", "DVD":
		return MediaDVD
	default:
		return MediaUnknown
	}
}

// Category is the disc category reported by the imaging tool.
type Category string

const (
	CategoryGames   Category = "Games"
	CategoryVideo   Category = "Video"
	CategoryAudio   Category = "Audio"
	CategoryUnknown Category = "Unknown"
)

// AuxInfo carries the fields mined from the _disc.txt log in one pass.
// SizeBytes defaults to -1 when the log never reported a file size.
type AuxInfo struct {
	Title         string
	Version       string
	Category      Category
	HasCategory   bool
	Layerbreak    int64
	HasLayerbreak bool
	SizeBytes     int64
}

// Artifact is the captured raw content of one diagnostic log, base64 encoded
// for transport alongside the extracted metadata.
type Artifact struct {
	Name    string
	Content string
}

// SubmissionInfo is the caller-owned slice of the submission record this
// package populates. Text fields are empty strings, never absent, once a
// report has been merged.
type SubmissionInfo struct {
	Title            string
	Category         Category
	Version          string
	Layerbreak       *int64
	SizeBytes        int64
	VolumeDescriptor string
	Artifacts        map[string]string
}
