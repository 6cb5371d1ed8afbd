package profile

import "fmt"

// Profile holds the fixed parameters shared by the asset tools.
type Profile struct {
	AssetDir      string  // output directory consumed by the front-end
	SourceDir     string  // externally populated photographs
	TotalImages   int     // number of indexed slots the front-end preloads
	Width         int     // placeholder canvas width
	Height        int     // placeholder canvas height
	MaxWidth      int     // resizer threshold (strictly greater triggers)
	Saturation    float64 // placeholder background saturation
	Value         float64 // placeholder background value
	FontSize      float64 // placeholder label size in points at 72 DPI
	GenQuality    int     // JPEG quality of generated placeholders
	ResizeQuality int     // JPEG quality of resized assets
}

// Default returns the parameters the front-end was built against.
func Default() Profile {
	return Profile{
		AssetDir:      "assets",
		SourceDir:     "Images",
		TotalImages:   96,
		Width:         1920,
		Height:        1080,
		MaxWidth:      1920,
		Saturation:    0.8,
		Value:         0.8,
		FontSize:      300,
		GenQuality:    80,
		ResizeQuality: 85,
	}
}

// SlotName returns the file name the front-end expects for index i.
// Indices are zero-based and never zero-padded.
func SlotName(i int) string {
	return fmt.Sprintf("img_%d.jpg", i)
}
