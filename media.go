package godeck

import "os"

// MediaFormat tags the container of embedded audio or video bytes.
type MediaFormat string

const (
	MediaMP4 MediaFormat = "mp4"
	MediaMOV MediaFormat = "mov"
	MediaAVI MediaFormat = "avi"
	MediaMP3 MediaFormat = "mp3"
	MediaWAV MediaFormat = "wav"
	MediaM4A MediaFormat = "m4a"
)

func (f MediaFormat) extension() string { return string(f) }

func (f MediaFormat) contentType() string {
	switch f {
	case MediaMP4:
		return "video/mp4"
	case MediaMOV:
		return "video/quicktime"
	case MediaAVI:
		return "video/x-msvideo"
	case MediaMP3:
		return "audio/mpeg"
	case MediaWAV:
		return "audio/wav"
	case MediaM4A:
		return "audio/mp4"
	default:
		return "application/octet-stream"
	}
}

func (f MediaFormat) isVideo() bool {
	switch f {
	case MediaMP4, MediaMOV, MediaAVI:
		return true
	}
	return false
}

var mediaFormatByExt = map[string]MediaFormat{
	"mp4": MediaMP4, "mov": MediaMOV, "avi": MediaAVI,
	"mp3": MediaMP3, "wav": MediaWAV, "m4a": MediaM4A,
}

// Playback controls how embedded media behaves during the show.
type Playback struct {
	AutoPlay  bool
	Loop      bool
	Mute      bool
	Volume    int     // 0..100
	TrimStart float64 // seconds
	TrimEnd   float64 // seconds; 0 means play to the end
}

// Media is an embedded video or audio clip placed on a slide. Video clips
// occupy their frame; audio clips render as a speaker icon.
type Media struct {
	BaseElement
	data     []byte
	format   MediaFormat
	playback Playback
}

func (*Media) element() {}

// NewVideo embeds a video clip.
func NewVideo(data []byte, format MediaFormat, t Transform) (*Media, error) {
	if !format.isVideo() {
		return nil, newError(ErrUnsupportedFormat, "%s is not a video format", format)
	}
	m := &Media{data: data, format: format, playback: Playback{Volume: 100}}
	m.transform = t
	return m, nil
}

// NewAudio embeds an audio clip.
func NewAudio(data []byte, format MediaFormat, t Transform) (*Media, error) {
	if format.isVideo() {
		return nil, newError(ErrUnsupportedFormat, "%s is not an audio format", format)
	}
	m := &Media{data: data, format: format, playback: Playback{Volume: 100}}
	m.transform = t
	return m, nil
}

// NewMediaFromFile embeds a clip read from disk, inferring the format from
// the file extension.
func NewMediaFromFile(path string, t Transform) (*Media, error) {
	ext := ""
	for i := len(path) - 1; i >= 0 && path[i] != '/' && path[i] != '\\'; i-- {
		if path[i] == '.' {
			ext = path[i+1:]
			break
		}
	}
	format, ok := mediaFormatByExt[ext]
	if !ok {
		return nil, newError(ErrUnsupportedFormat, "media extension %q not recognized", ext)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapError(ErrMissingAsset, err, "media %s", path)
	}
	m := &Media{data: data, format: format, playback: Playback{Volume: 100}}
	m.transform = t
	return m, nil
}

// IsVideo reports whether the clip is video.
func (m *Media) IsVideo() bool { return m.format.isVideo() }

// GetFormat returns the media container format.
func (m *Media) GetFormat() MediaFormat { return m.format }

// SetPlayback sets the playback options.
func (m *Media) SetPlayback(p Playback) *Media {
	m.playback = p
	return m
}

func (m *Media) validate() error {
	if m.playback.Volume < 0 || m.playback.Volume > 100 {
		return newError(ErrInvalidInput, "media volume %d out of range 0..100", m.playback.Volume)
	}
	if m.playback.TrimStart < 0 || m.playback.TrimEnd < 0 {
		return newError(ErrInvalidInput, "media trim times must be non-negative")
	}
	if m.playback.TrimEnd != 0 && m.playback.TrimEnd < m.playback.TrimStart {
		return newError(ErrInvalidInput, "media trim end %.2fs before start %.2fs", m.playback.TrimEnd, m.playback.TrimStart)
	}
	return nil
}
