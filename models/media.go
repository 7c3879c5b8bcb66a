// backend/models/media.go
package models

// Video types as served to the client. "mp4" covers any direct playable file
// reference (mp4/webm/ogg), matching what the frontend player expects.
const (
	VideoTypeYouTube = "youtube"
	VideoTypeMP4     = "mp4"
)

type VideoInfo struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type ImageInfo struct {
	URL string `json:"url"`
}

// MediaInfo is the best-effort scraping result for one boulder page. Absent
// video or image is a normal outcome, not an error; both nil is the canonical
// "nothing found" value and is cached like any other result.
type MediaInfo struct {
	Video *VideoInfo `json:"video"`
	Image *ImageInfo `json:"image"`
}

// Empty reports whether no media was found at all.
func (m MediaInfo) Empty() bool {
	return m.Video == nil && m.Image == nil
}
