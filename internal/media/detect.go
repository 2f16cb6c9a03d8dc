package media

import "strings"

var sketchExts = map[string]bool{
	".yaml": true,
	".yml":  true,
	".txt":  true,
	".csv":  true,
}

var audioExts = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".flac": true,
	".ogg":  true,
}

// IsSketchExt returns true if the extension is a point or sketch file.
func IsSketchExt(ext string) bool {
	return sketchExts[strings.ToLower(ext)]
}

// IsAudioExt returns true if the extension is a stereo audio format that can
// be traced as an XY path.
func IsAudioExt(ext string) bool {
	return audioExts[strings.ToLower(ext)]
}

// IsSupportedExt returns true if the extension can be loaded as a sketch.
func IsSupportedExt(ext string) bool {
	return IsSketchExt(ext) || IsAudioExt(ext)
}

// SupportedExtsList returns a human-readable list of loadable formats.
func SupportedExtsList() string {
	return ".yaml, .yml, .txt, .csv, .mp3, .wav, .flac, .ogg"
}
