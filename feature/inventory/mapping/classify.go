package mapping

import "strings"

// ClassifyFilename maps an uploaded mapping filename to its source.
// Achievement and item-info dumps are recognized but not used; ok is false for them.
func ClassifyFilename(name string) (Source, bool) {
	n := strings.ToLower(basename(name))
	switch {
	case strings.Contains(n, "achievements"), strings.Contains(n, "iteminfo"):
		return "", false
	case strings.Contains(n, "charactericons"):
		return SourceCharacterIcons, true
	case strings.Contains(n, "characters"):
		return SourceCharacters, true
	case strings.Contains(n, "weapons"):
		return SourceWeapons, true
	case strings.Contains(n, "echostats"):
		return SourceEchoStats, true
	case strings.Contains(n, "echoes"):
		return SourceEchoes, true
	case strings.Contains(n, "sonataname"):
		return SourceSonataNames, true
	case strings.Contains(n, "items"), strings.Contains(n, "resource"), strings.Contains(n, "dev"):
		return SourceItems, true
	case strings.Contains(n, "icons"), strings.Contains(n, "manifest"):
		return SourceCharacterIcons, true
	default:
		return "", false
	}
}
