package dump

import (
	"encoding/base64"
	"os"
)

// artifactFiles maps each log suffix to its artifact name, in attachment
// order.
var artifactFiles = []struct {
	suffix string
	name   string
}{
	{"_disc.txt", "disc"},
	{"_mainError.txt", "mainError"},
	{"_mainInfo.txt", "mainInfo"},
	{"_volDesc.txt", "volDesc"},
}

// CollectArtifacts reads every log file present next to basePath and returns
// it base64 encoded under its fixed artifact name. Absent files are skipped;
// collection never fails.
func CollectArtifacts(basePath string) []Artifact {
	var artifacts []Artifact
	for _, entry := range artifactFiles {
		data, err := os.ReadFile(basePath + entry.suffix)
		if err != nil {
			continue
		}
		artifacts = append(artifacts, Artifact{
			Name:    entry.name,
			Content: base64.StdEncoding.EncodeToString(data),
		})
	}
	return artifacts
}
