package timeline

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// TrackKind describes what a track carries. The ripple engine treats the
// kind as informational only.
type TrackKind string

const (
	TrackVideo   TrackKind = "video"
	TrackAudio   TrackKind = "audio"
	TrackCaption TrackKind = "caption"
	TrackOverlay TrackKind = "overlay"
)

var allTrackKinds = []TrackKind{TrackVideo, TrackAudio, TrackCaption, TrackOverlay}

// ParseTrackKind maps a string to a known track kind.
func ParseTrackKind(value string) (TrackKind, bool) {
	for _, kind := range allTrackKinds {
		if string(kind) == value {
			return kind, true
		}
	}
	return "", false
}

// Clip is a placed media segment: an absolute timeline position plus
// duration, and a trim range into the source asset. Ripple math only ever
// translates TimelineInSec; the source range is never touched.
type Clip struct {
	ID            string  `json:"id"`
	AssetID       string  `json:"assetId,omitempty"`
	TimelineInSec float64 `json:"timelineInSec"`
	DurationSec   float64 `json:"durationSec"`
	SourceInSec   float64 `json:"sourceInSec"`
	SourceOutSec  float64 `json:"sourceOutSec"`
	Label         string  `json:"label,omitempty"`
}

// NewClip creates a clip with a fresh identifier placed at timelineIn.
func NewClip(assetID string, timelineIn, duration, sourceIn, sourceOut float64) Clip {
	return Clip{
		ID:            uuid.NewString(),
		AssetID:       assetID,
		TimelineInSec: timelineIn,
		DurationSec:   duration,
		SourceInSec:   sourceIn,
		SourceOutSec:  sourceOut,
	}
}

// TimelineOutSec returns the clip's end position on the timeline.
func (c Clip) TimelineOutSec() float64 {
	return c.TimelineInSec + c.DurationSec
}

// SourceDuration returns the length of the trimmed source range.
func (c Clip) SourceDuration() float64 {
	return c.SourceOutSec - c.SourceInSec
}

// Overlaps reports whether two placements intersect. Touching edges do not
// count as overlap.
func (c Clip) Overlaps(other Clip) bool {
	return c.TimelineInSec < other.TimelineOutSec() && c.TimelineOutSec() > other.TimelineInSec
}

// Track is a lane of non-overlapping clips within a sequence.
type Track struct {
	ID     string    `json:"id"`
	Kind   TrackKind `json:"kind"`
	Name   string    `json:"name"`
	Clips  []Clip    `json:"clips"`
	Muted  bool      `json:"muted,omitempty"`
	Locked bool      `json:"locked,omitempty"`
}

// NewTrack creates an empty track with a fresh identifier.
func NewTrack(name string, kind TrackKind) Track {
	return Track{
		ID:   uuid.NewString(),
		Kind: kind,
		Name: name,
	}
}

// Clip returns the clip with the given id, or nil when absent.
func (t *Track) Clip(clipID string) *Clip {
	for i := range t.Clips {
		if t.Clips[i].ID == clipID {
			return &t.Clips[i]
		}
	}
	return nil
}

// SortedClips returns the track's clips ordered ascending by timeline
// position. The underlying slice is left untouched.
func (t *Track) SortedClips() []Clip {
	clips := make([]Clip, len(t.Clips))
	copy(clips, t.Clips)
	sort.SliceStable(clips, func(i, j int) bool {
		return clips[i].TimelineInSec < clips[j].TimelineInSec
	})
	return clips
}

// HasOverlap reports whether any two clips on the track intersect.
func (t *Track) HasOverlap() bool {
	clips := t.SortedClips()
	for i := 1; i < len(clips); i++ {
		if clips[i-1].Overlaps(clips[i]) {
			return true
		}
	}
	return false
}

// MarkerType categorizes a timeline marker.
type MarkerType string

const (
	MarkerGeneric MarkerType = "generic"
	MarkerChapter MarkerType = "chapter"
	MarkerTodo    MarkerType = "todo"
)

// Marker is a labeled instant on the sequence timeline.
type Marker struct {
	ID      string     `json:"id"`
	TimeSec float64    `json:"timeSec"`
	Label   string     `json:"label"`
	Type    MarkerType `json:"type"`
}

// Sequence is the timeline container. Tracks are stored directly so a
// sequence serializes as one self-contained snapshot.
type Sequence struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Tracks     []Track   `json:"tracks"`
	Markers    []Marker  `json:"markers,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

// NewSequence creates an empty sequence with a fresh identifier.
func NewSequence(name string) *Sequence {
	now := time.Now().UTC()
	return &Sequence{
		ID:         uuid.NewString(),
		Name:       name,
		CreatedAt:  now,
		ModifiedAt: now,
	}
}

// Track returns the track with the given id, or nil when absent.
func (s *Sequence) Track(trackID string) *Track {
	for i := range s.Tracks {
		if s.Tracks[i].ID == trackID {
			return &s.Tracks[i]
		}
	}
	return nil
}

// AddTrack appends a track and bumps the modification time.
func (s *Sequence) AddTrack(track Track) {
	s.Tracks = append(s.Tracks, track)
	s.ModifiedAt = time.Now().UTC()
}

// AddMarker appends a marker and bumps the modification time.
func (s *Sequence) AddMarker(marker Marker) {
	s.Markers = append(s.Markers, marker)
	s.ModifiedAt = time.Now().UTC()
}

// FindClip locates a clip anywhere in the sequence, returning its track.
// Both results are nil when the id is unknown.
func (s *Sequence) FindClip(clipID string) (*Track, *Clip) {
	for i := range s.Tracks {
		if clip := s.Tracks[i].Clip(clipID); clip != nil {
			return &s.Tracks[i], clip
		}
	}
	return nil, nil
}

// Duration returns the end position of the latest clip across all tracks.
func (s *Sequence) Duration() float64 {
	var max float64
	for i := range s.Tracks {
		for _, clip := range s.Tracks[i].Clips {
			if out := clip.TimelineOutSec(); out > max {
				max = out
			}
		}
	}
	return max
}

// ClipCount returns the number of clips across all tracks.
func (s *Sequence) ClipCount() int {
	total := 0
	for i := range s.Tracks {
		total += len(s.Tracks[i].Clips)
	}
	return total
}

// Clone returns a deep copy the caller may mutate freely.
func (s *Sequence) Clone() *Sequence {
	clone := *s
	clone.Tracks = make([]Track, len(s.Tracks))
	for i, track := range s.Tracks {
		copied := track
		copied.Clips = make([]Clip, len(track.Clips))
		copy(copied.Clips, track.Clips)
		clone.Tracks[i] = copied
	}
	if len(s.Markers) > 0 {
		clone.Markers = make([]Marker, len(s.Markers))
		copy(clone.Markers, s.Markers)
	}
	return &clone
}
