// backend/scraper/media.go
package scraper

import (
	"log"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Thimm/bleau-backend/models"
)

// Media extraction over a fetched bleau.info boulder page. Page structure is
// outside our control, so every rule is best-effort: a rule that does not
// match falls through to the next, and a page yielding nothing is a normal
// result, never an error.

// An imageRule inspects the parsed page and returns an image URL. Rules are
// evaluated in order, first success wins, each widening the search scope.
type imageRule struct {
	name string
	find func(doc *goquery.Document) (string, bool)
}

var imageRules = []imageRule{
	{
		// Lightbox anchor wrapping an image inside the first photo block.
		name: "fancybox in boulder_photo",
		find: func(doc *goquery.Document) (string, bool) {
			return firstSrc(doc.Find("div.boulder_photos div.boulder_photo a.fancybox img"))
		},
	},
	{
		name: "img in boulder_photo",
		find: func(doc *goquery.Document) (string, bool) {
			return firstSrc(doc.Find("div.boulder_photos div.boulder_photo img"))
		},
	},
	{
		name: "any img in boulder_photos",
		find: func(doc *goquery.Document) (string, bool) {
			return firstSrc(doc.Find("div.boulder_photos img"))
		},
	},
	{
		name: "anchor-wrapped img in boulder_photos",
		find: func(doc *goquery.Document) (string, bool) {
			return firstSrc(doc.Find("div.boulder_photos a img"))
		},
	},
}

// ExtractMedia pulls the embedded video and representative photo out of a
// boulder page. origin is the absolute base ("https://bleau.info") used to
// resolve path-absolute references.
func ExtractMedia(html, origin string) models.MediaInfo {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		log.Printf("WARN Scraper: Could not parse boulder page HTML: %v", err)
		return models.MediaInfo{}
	}

	return models.MediaInfo{
		Video: extractVideo(doc, origin),
		Image: extractImage(doc, origin),
	}
}

// extractVideo looks for a YouTube embed first, then a direct video file,
// scoped to the boulder_mp4s section when the page has one.
func extractVideo(doc *goquery.Document, origin string) *models.VideoInfo {
	scope := doc.Find("div.boulder_mp4s")
	if scope.Length() == 0 {
		scope = doc.Selection
	}

	var found *models.VideoInfo
	scope.Find("iframe[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src, _ := s.Attr("src")
		if strings.Contains(src, "youtube.com/embed/") || strings.Contains(src, "youtu.be") {
			found = &models.VideoInfo{Type: models.VideoTypeYouTube, URL: resolveRef(src, origin)}
			return false
		}
		return true
	})
	if found != nil {
		return found
	}

	scope.Find("source[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src, _ := s.Attr("src")
		if hasVideoExtension(src) {
			found = &models.VideoInfo{Type: models.VideoTypeMP4, URL: resolveRef(src, origin)}
			return false
		}
		return true
	})
	return found
}

func extractImage(doc *goquery.Document, origin string) *models.ImageInfo {
	for _, rule := range imageRules {
		if src, ok := rule.find(doc); ok {
			return &models.ImageInfo{URL: resolveRef(src, origin)}
		}
	}

	// Global fallback: take the first image anywhere on the page, but only if
	// its path looks like actual content. Without this check the site logo is
	// usually the first <img>.
	if src, ok := firstSrc(doc.Find("img")); ok && looksLikeContentImage(src, origin) {
		return &models.ImageInfo{URL: resolveRef(src, origin)}
	}
	return nil
}

func firstSrc(sel *goquery.Selection) (string, bool) {
	src, ok := sel.First().Attr("src")
	if !ok || strings.TrimSpace(src) == "" {
		return "", false
	}
	return src, true
}

func hasVideoExtension(src string) bool {
	lower := strings.ToLower(src)
	return strings.HasSuffix(lower, ".mp4") ||
		strings.HasSuffix(lower, ".webm") ||
		strings.HasSuffix(lower, ".ogg")
}

func looksLikeContentImage(src, origin string) bool {
	if strings.Contains(src, "/photos/") || strings.Contains(src, "/images/") {
		return true
	}
	if host := originHost(origin); host != "" && strings.Contains(src, host) {
		return true
	}
	return false
}

func originHost(origin string) string {
	u, err := url.Parse(origin)
	if err != nil {
		return ""
	}
	return u.Host
}

// resolveRef rewrites path-absolute references against the source origin.
// Anything else (already absolute, protocol-relative, data URIs) passes
// through unchanged.
func resolveRef(ref, origin string) string {
	if strings.HasPrefix(ref, "/") && !strings.HasPrefix(ref, "//") {
		return strings.TrimSuffix(origin, "/") + ref
	}
	return ref
}
