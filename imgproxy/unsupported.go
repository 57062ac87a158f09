package imgproxy

// Processing options this package does not support yet. Each method returns
// a builder carrying a not-implemented error so the failure surfaces from
// URL instead of being silently dropped mid-chain.

// Gradient is not supported yet.
func (img *Image) Gradient() *Image { return img.fail("gradient") }

// Watermark is not supported yet.
func (img *Image) Watermark() *Image { return img.fail("watermark") }

// WatermarkURL is not supported yet.
func (img *Image) WatermarkURL() *Image { return img.fail("watermark_url") }

// WatermarkText is not supported yet.
func (img *Image) WatermarkText() *Image { return img.fail("watermark_text") }

// WatermarkSize is not supported yet.
func (img *Image) WatermarkSize() *Image { return img.fail("watermark_size") }

// WatermarkShadow is not supported yet.
func (img *Image) WatermarkShadow() *Image { return img.fail("watermark_shadow") }

// Style is not supported yet.
func (img *Image) Style() *Image { return img.fail("style") }

// DPI is not supported yet.
func (img *Image) DPI() *Image { return img.fail("dpi") }

// FormatQuality is not supported yet.
func (img *Image) FormatQuality() *Image { return img.fail("format_quality") }

// Autoquality is not supported yet.
func (img *Image) Autoquality() *Image { return img.fail("autoquality") }

// MaxBytes is not supported yet.
func (img *Image) MaxBytes() *Image { return img.fail("max_bytes") }

// JPEGOptions is not supported yet.
func (img *Image) JPEGOptions() *Image { return img.fail("jpeg_options") }

// PNGOptions is not supported yet.
func (img *Image) PNGOptions() *Image { return img.fail("png_options") }

// WebPOptions is not supported yet.
func (img *Image) WebPOptions() *Image { return img.fail("webp_options") }

// VideoThumbnailSecond is not supported yet.
func (img *Image) VideoThumbnailSecond() *Image { return img.fail("video_thumbnail_second") }

// VideoThumbnailKeyframes is not supported yet.
func (img *Image) VideoThumbnailKeyframes() *Image { return img.fail("video_thumbnail_keyframes") }

// VideoThumbnailTile is not supported yet.
func (img *Image) VideoThumbnailTile() *Image { return img.fail("video_thumbnail_tile") }

// FallbackImageURL is not supported yet.
func (img *Image) FallbackImageURL() *Image { return img.fail("fallback_image_url") }

// SkipProcessing is not supported yet.
func (img *Image) SkipProcessing() *Image { return img.fail("skip_processing") }

// Expires is not supported yet.
func (img *Image) Expires() *Image { return img.fail("expires") }

// Filename is not supported yet.
func (img *Image) Filename() *Image { return img.fail("filename") }

// Preset is not supported yet.
func (img *Image) Preset() *Image { return img.fail("preset") }

// Hashsum is not supported yet.
func (img *Image) Hashsum() *Image { return img.fail("hashsum") }
