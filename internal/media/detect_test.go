package media

import (
	"strings"
	"testing"
)

func TestSupportedExtsAreCaseInsensitive(t *testing.T) {
	for _, ext := range []string{".YAML", ".Csv", ".txt", ".WAV", ".flac"} {
		if !IsSupportedExt(ext) {
			t.Fatalf("expected %s to be supported", ext)
		}
	}
	if IsSupportedExt(".aac") || IsSupportedExt("") {
		t.Fatal("expected .aac and empty ext to be unsupported")
	}
	if IsAudioExt(".yaml") || IsSketchExt(".mp3") {
		t.Fatal("sketch and audio extensions must not overlap")
	}
}

func TestSupportedExtsListCoversEveryExt(t *testing.T) {
	list := SupportedExtsList()
	for _, exts := range []map[string]bool{sketchExts, audioExts} {
		for ext := range exts {
			if !strings.Contains(list, ext) {
				t.Fatalf("expected supported ext list to include %s, got %q", ext, list)
			}
		}
	}
}
