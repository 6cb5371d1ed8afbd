package manifest

// Report describes the state of an asset directory against the slots the
// front-end preloads.
type Report struct {
	Version     int      `json:"version"`
	GeneratedAt string   `json:"generated_at"`
	Dir         string   `json:"dir"`
	Expected    int      `json:"expected"`
	Slots       []Slot   `json:"slots"`
	Strays      []string `json:"strays,omitempty"` // files that are not slot names
	Stats       Stats    `json:"stats"`
}

// Slot is one img_{i}.jpg position.
type Slot struct {
	Index    int       `json:"index"`
	Name     string    `json:"name"`
	Present  bool      `json:"present"`
	Size     int64     `json:"size,omitempty"` // bytes on disk
	Width    int       `json:"width,omitempty"`
	Height   int       `json:"height,omitempty"`
	Hash     string    `json:"hash,omitempty"` // xxhash64, 16 hex chars
	AvgColor *[3]uint8 `json:"avg_color,omitempty"`
	TakenAt  string    `json:"taken_at,omitempty"` // EXIF capture time, RFC 3339
	Error    string    `json:"error,omitempty"`    // why the slot could not be decoded
}

// Stats aggregates slot counts.
type Stats struct {
	Present    int   `json:"present"`
	Missing    int   `json:"missing"`
	Invalid    int   `json:"invalid"`
	Duplicates int   `json:"duplicates"` // slots sharing content with a lower index
	TotalBytes int64 `json:"total_bytes"`
}

// SupportedReportVersion is the current schema version.
const SupportedReportVersion = 1
