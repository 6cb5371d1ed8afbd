package profile

import "testing"

func TestDefaultProfileConstants(t *testing.T) {
	p := Default()
	if p.TotalImages != 96 {
		t.Errorf("total images: got %d, want 96", p.TotalImages)
	}
	if p.Width != 1920 || p.Height != 1080 {
		t.Errorf("canvas: got %dx%d, want 1920x1080", p.Width, p.Height)
	}
	if p.MaxWidth != 1920 {
		t.Errorf("max width: got %d", p.MaxWidth)
	}
	if p.GenQuality != 80 || p.ResizeQuality != 85 {
		t.Errorf("quality: got %d/%d, want 80/85", p.GenQuality, p.ResizeQuality)
	}
	if p.AssetDir != "assets" || p.SourceDir != "Images" {
		t.Errorf("dirs: got %q/%q", p.AssetDir, p.SourceDir)
	}
}

func TestSlotName(t *testing.T) {
	tests := []struct {
		i    int
		want string
	}{
		{0, "img_0.jpg"},
		{7, "img_7.jpg"},
		{95, "img_95.jpg"},
	}
	for _, tt := range tests {
		if got := SlotName(tt.i); got != tt.want {
			t.Errorf("SlotName(%d) = %q, want %q", tt.i, got, tt.want)
		}
	}
}
