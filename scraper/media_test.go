// backend/scraper/media_test.go
package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thimm/bleau-backend/models"
)

const origin = "https://bleau.info"

func page(body string) string {
	return "<html><head><title>t</title></head><body>" + body + "</body></html>"
}

func TestExtractVideoYouTube(t *testing.T) {
	html := page(`
		<div class="boulder_mp4s">
			<iframe src="https://www.youtube.com/embed/abc123"></iframe>
			<video><source src="/videos/clip.mp4"></video>
		</div>`)

	media := ExtractMedia(html, origin)
	require.NotNil(t, media.Video)
	assert.Equal(t, models.VideoTypeYouTube, media.Video.Type)
	assert.Equal(t, "https://www.youtube.com/embed/abc123", media.Video.URL)
}

func TestExtractVideoDirectFileWhenNoEmbed(t *testing.T) {
	html := page(`
		<div class="boulder_mp4s">
			<iframe src="https://player.vimeo.com/video/123"></iframe>
			<video><source src="/videos/clip.webm"></video>
		</div>`)

	media := ExtractMedia(html, origin)
	require.NotNil(t, media.Video)
	assert.Equal(t, models.VideoTypeMP4, media.Video.Type)
	assert.Equal(t, "https://bleau.info/videos/clip.webm", media.Video.URL)
}

func TestExtractVideoFallsBackToWholeDocument(t *testing.T) {
	html := page(`<video><source src="https://cdn.example.com/clip.mp4"></video>`)

	media := ExtractMedia(html, origin)
	require.NotNil(t, media.Video)
	assert.Equal(t, models.VideoTypeMP4, media.Video.Type)
	assert.Equal(t, "https://cdn.example.com/clip.mp4", media.Video.URL)
}

func TestNoVideo(t *testing.T) {
	media := ExtractMedia(page(`<div class="boulder_mp4s"></div>`), origin)
	assert.Nil(t, media.Video)
}

func TestExtractImageFancyboxChain(t *testing.T) {
	html := page(`
		<img src="/assets/logo.png">
		<div class="boulder_photos">
			<div class="boulder_photo">
				<a class="fancybox" href="/photos/42_full.jpg"><img src="/photos/42.jpg"></a>
			</div>
		</div>`)

	media := ExtractMedia(html, origin)
	require.NotNil(t, media.Image)
	assert.Equal(t, "https://bleau.info/photos/42.jpg", media.Image.URL)
}

func TestExtractImagePlainImgInPhotoBlock(t *testing.T) {
	html := page(`
		<div class="boulder_photos">
			<div class="boulder_photo"><img src="/photos/7.jpg"></div>
		</div>`)

	media := ExtractMedia(html, origin)
	require.NotNil(t, media.Image)
	assert.Equal(t, "https://bleau.info/photos/7.jpg", media.Image.URL)
}

func TestExtractImageAnywhereInPhotosSection(t *testing.T) {
	html := page(`
		<div class="boulder_photos">
			<p>no photo block here</p>
			<img src="/photos/wide.jpg">
		</div>`)

	media := ExtractMedia(html, origin)
	require.NotNil(t, media.Image)
	assert.Equal(t, "https://bleau.info/photos/wide.jpg", media.Image.URL)
}

func TestGlobalFallbackRejectsSiteFurniture(t *testing.T) {
	// No photo section at all; the only image is the site logo, which the
	// content-likeness filter must reject.
	media := ExtractMedia(page(`<img src="/assets/logo.png">`), origin)
	assert.Nil(t, media.Image)
}

func TestGlobalFallbackAcceptsContentLikeImage(t *testing.T) {
	media := ExtractMedia(page(`<img src="/photos/123.jpg">`), origin)
	require.NotNil(t, media.Image)
	assert.Equal(t, "https://bleau.info/photos/123.jpg", media.Image.URL)

	media = ExtractMedia(page(`<img src="https://bleau.info/img/456.jpg">`), origin)
	require.NotNil(t, media.Image)
	assert.Equal(t, "https://bleau.info/img/456.jpg", media.Image.URL)
}

func TestAbsoluteReferencesPassThrough(t *testing.T) {
	html := page(`
		<div class="boulder_photos">
			<div class="boulder_photo"><img src="https://cdn.example.com/p/1.jpg"></div>
		</div>`)

	media := ExtractMedia(html, origin)
	require.NotNil(t, media.Image)
	assert.Equal(t, "https://cdn.example.com/p/1.jpg", media.Image.URL)
}

func TestMalformedMarkupDegradesToEmpty(t *testing.T) {
	media := ExtractMedia(`<div class="boulder_photos"><a <img src=`, origin)
	// Must not panic; whatever the tolerant parser salvages is acceptable,
	// the contract is only "no error, no crash".
	_ = media
}

func TestEmptyPage(t *testing.T) {
	media := ExtractMedia("", origin)
	assert.True(t, media.Empty())
}

func TestBoulderPageURL(t *testing.T) {
	assert.Equal(t,
		"https://bleau.info/cuvier/la-marie-rose.html",
		BoulderPageURL("https://bleau.info", " Cuvier ", "la-marie-rose"))
}
