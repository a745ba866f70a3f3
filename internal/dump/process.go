package dump

import (
	"umdproc/internal/imagefile"
)

// Report is the freshly built metadata fragment for one dump. Callers apply
// it to their own submission record with Merge; Process never mutates shared
// state.
type Report struct {
	BasePath string
	Media    MediaType

	Complete bool
	Missing  []string

	Title            string
	Category         Category
	Version          string
	Layerbreak       *int64
	SizeBytes        int64
	VolumeDescriptor string
	AuxFound         bool

	Artifacts []Artifact
}

// Process runs the full post-dump pass against basePath: completeness check,
// volume descriptor and aux info extraction for UMD media, and artifact
// collection for every media type. It is a pure function of the files on
// disk and safe to repeat.
func Process(basePath string, media MediaType) Report {
	report := Report{
		BasePath:  basePath,
		Media:     media,
		Category:  CategoryGames,
		SizeBytes: -1,
	}

	result := Completeness(basePath, media)
	report.Complete = result.OK
	report.Missing = result.Missing

	if media == MediaUMD {
		// Image measurement seeds the size; a successful aux extraction
		// overrides it with the size the tool itself reported.
		if measured, err := imagefile.Measure(basePath + ".iso"); err == nil {
			report.SizeBytes = measured.SizeBytes
		}
		if block, ok := ExtractVolumeDescriptor(basePath + "_mainInfo.txt"); ok {
			report.VolumeDescriptor = block
		}
		if info, ok := ExtractAuxInfo(basePath + "_disc.txt"); ok {
			report.AuxFound = true
			report.Title = info.Title
			report.Version = info.Version
			report.SizeBytes = info.SizeBytes
			if info.HasCategory {
				report.Category = info.Category
			}
			if info.HasLayerbreak {
				value := info.Layerbreak
				report.Layerbreak = &value
			}
		}
	}

	// Artifact attachment is independent of media type and of whether any
	// field extraction succeeded.
	report.Artifacts = CollectArtifacts(basePath)
	return report
}

// Merge writes a report into the caller-owned submission record. Text fields
// land as empty strings when absent and the category falls back to Games,
// so the merged record never carries null-equivalent values.
func Merge(info *SubmissionInfo, report Report) {
	if info == nil {
		return
	}
	if report.Media == MediaUMD {
		info.Title = report.Title
		info.Version = report.Version
		info.VolumeDescriptor = report.VolumeDescriptor
		info.SizeBytes = report.SizeBytes
		if report.Category != "" {
			info.Category = report.Category
		} else {
			info.Category = CategoryGames
		}
		if report.Layerbreak != nil {
			value := *report.Layerbreak
			info.Layerbreak = &value
		}
	}
	if info.Artifacts == nil {
		info.Artifacts = make(map[string]string, len(report.Artifacts))
	}
	for _, artifact := range report.Artifacts {
		info.Artifacts[artifact.Name] = artifact.Content
	}
}
