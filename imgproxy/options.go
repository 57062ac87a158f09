package imgproxy

// Named wrappers around AddOption, one per imgproxy processing option. Each
// wrapper forwards its parameters in the exact order the option expects on
// the wire; changing the order would change the serialized token and the
// signature with it.

// Resize is a meta-option that defines the resizing type, width, height,
// enlarge, and extend in a single token. All arguments are optional.
func (img *Image) Resize(resizingType, width, height, enlarge, extend, gravityType, xOffset, yOffset Arg) *Image {
	return img.AddOption("resize", resizingType, width, height, enlarge, extend, gravityType, xOffset, yOffset)
}

// Size is a meta-option that defines the width, height, enlarge, and extend
// in a single token. All arguments are optional.
func (img *Image) Size(width, height, enlarge, extend, gravityType, xOffset, yOffset Arg) *Image {
	return img.AddOption("size", width, height, enlarge, extend, gravityType, xOffset, yOffset)
}

// ResizingType defines how imgproxy will resize the source image. Supported
// resizing types are fit, fill, fill-down, force, and auto.
//
// Default: fit
func (img *Image) ResizingType(resizingType string) *Image {
	return img.AddOption("resizing_type", String(resizingType))
}

// ResizingAlgorithm defines the algorithm that imgproxy will use for
// resizing. Supported algorithms are nearest, linear, cubic, lanczos2, and
// lanczos3.
//
// Default: lanczos3
func (img *Image) ResizingAlgorithm(resizingAlgorithm string) *Image {
	return img.AddOption("resizing_algorithm", String(resizingAlgorithm))
}

// Width defines the width of the resulting image. When set to 0, imgproxy
// will calculate the width from the defined height and source aspect ratio.
//
// Default: 0
func (img *Image) Width(width int) *Image {
	return img.AddOption("width", Int(width))
}

// Height defines the height of the resulting image. When set to 0, imgproxy
// will calculate the height from the defined width and source aspect ratio.
//
// Default: 0
func (img *Image) Height(height int) *Image {
	return img.AddOption("height", Int(height))
}

// MinWidth defines the minimum width of the resulting image. When both width
// and min-width are set, the final image will be cropped according to width.
//
// Default: 0
func (img *Image) MinWidth(width int) *Image {
	return img.AddOption("min-width", Int(width))
}

// MinHeight defines the minimum height of the resulting image. When both
// height and min-height are set, the final image will be cropped according
// to height.
//
// Default: 0
func (img *Image) MinHeight(height int) *Image {
	return img.AddOption("min-height", Int(height))
}

// Zoom multiplies the image dimensions by the given factors. The values
// must be greater than 0. Unlike Dpr, Zoom doesn't affect gravity offsets,
// watermark offsets, or paddings.
//
// Default: 1
func (img *Image) Zoom(x float64, y Arg) *Image {
	return img.AddOption("zoom", Float(x), y)
}

// Dpr multiplies the image dimensions by this factor for HiDPI (Retina)
// devices. The value must be greater than 0.
//
// Default: 1
func (img *Image) Dpr(dpr float64) *Image {
	return img.AddOption("dpr", Float(dpr))
}

// Enlarge, when set to true, makes imgproxy enlarge the image if it is
// smaller than the given size.
//
// Default: false
func (img *Image) Enlarge(enlarge bool) *Image {
	return img.AddOption("enlarge", Bool(enlarge))
}

// Extend, when set to true, makes imgproxy extend the image if it is smaller
// than the given size. gravityType accepts the same values as Gravity,
// except sm; when unset, ce gravity without offsets is used.
//
// Default: false:ce:0:0
func (img *Image) Extend(extend, gravityType, xOffset, yOffset Arg) *Image {
	return img.AddOption("extend", extend, gravityType, xOffset, yOffset)
}

// ExtendAspectRatio, when set to true, makes imgproxy extend the image to
// the requested aspect ratio. gravityType accepts the same values as
// Gravity, except sm; when unset, ce gravity without offsets is used.
//
// Default: false:ce:0:0
func (img *Image) ExtendAspectRatio(extend, gravityType, xOffset, yOffset Arg) *Image {
	return img.AddOption("extend_aspect_ratio", extend, gravityType, xOffset, yOffset)
}

// Gravity guides imgproxy when it needs to cut some parts of the image.
//
// gravityType specifies the gravity type: no (north), so (south), ea (east),
// we (west), noea, nowe, soea, sowe, or ce (center). xOffset and yOffset
// specify the gravity offset along the X and Y axes; offsets greater than or
// equal to 1 are absolute, smaller ones are relative.
//
// Default: ce:0:0
func (img *Image) Gravity(gravityType, xOffset, yOffset Arg) *Image {
	return img.AddOption("gravity", gravityType, xOffset, yOffset)
}

// Crop defines an area of the image to be processed (crop before resize).
//
// width and height define the size of the area: values greater than or equal
// to 1 are absolute, smaller ones are relative, and 0 uses the full source
// width/height. gravityType accepts the same values as Gravity and falls
// back to the gravity option when unset.
func (img *Image) Crop(width, height, gravityType, xOffset, yOffset Arg) *Image {
	return img.AddOption("crop", width, height, gravityType, xOffset, yOffset)
}

// Trim removes the surrounding background. threshold is the color
// similarity tolerance, color an optional hex-coded background color to cut
// off. equalHor/equalVer make imgproxy cut only equal parts from opposite
// sides.
func (img *Image) Trim(threshold, color, equalHor, equalVer Arg) *Image {
	return img.AddOption("trim", threshold, color, equalHor, equalVer)
}

// Padding defines padding size using CSS-style syntax: top applies to all
// unset sides, right also to left. Padded space is filled according to the
// background option.
func (img *Image) Padding(top int, right, bottom, left Arg) *Image {
	return img.AddOption("padding", Int(top), right, bottom, left)
}

// AutoRotate, when set to true, makes imgproxy automatically rotate images
// based on the EXIF Orientation parameter. Overrides the IMGPROXY_AUTO_ROTATE
// configuration per request.
func (img *Image) AutoRotate(autoRotate bool) *Image {
	return img.AddOption("auto_rotate", Bool(autoRotate))
}

// Rotate rotates the image by the specified angle. Only multiples of 90
// degrees are supported.
//
// Default: 0
func (img *Image) Rotate(angle int) *Image {
	return img.AddOption("rotate", Int(angle))
}

// Background fills the resulting image background with the specified
// hex-coded color. Useful when converting an image with an alpha channel to
// JPEG. Use BackgroundRGB for separate channel values.
//
// Default: disabled
func (img *Image) Background(hexColor string) *Image {
	return img.AddOption("background", String(hexColor))
}

// BackgroundRGB fills the resulting image background with the specified
// color given as red, green and blue channel values (0-255).
//
// Default: disabled
func (img *Image) BackgroundRGB(red, green, blue int) *Image {
	return img.AddOption("background", Int(red), Int(green), Int(blue))
}

// BackgroundAlpha adds an alpha channel to the background. alpha is a
// positive floating point number between 0 and 1.
//
// Default: 1
func (img *Image) BackgroundAlpha(alpha float64) *Image {
	return img.AddOption("background_alpha", Float(alpha))
}

// Adjust is a meta-option that defines the brightness, contrast, and
// saturation in a single token. All arguments are optional.
func (img *Image) Adjust(brightness, contrast, saturation Arg) *Image {
	return img.AddOption("adjust", brightness, contrast, saturation)
}

// Brightness adjusts the brightness of the resulting image; an integer
// ranging from -255 to 255.
//
// Default: 0
func (img *Image) Brightness(brightness int) *Image {
	return img.AddOption("brightness", Int(brightness))
}

// Contrast adjusts the contrast of the resulting image; a positive number
// where 1 leaves the contrast unchanged.
//
// Default: 1
func (img *Image) Contrast(contrast float64) *Image {
	return img.AddOption("contrast", Float(contrast))
}

// Saturation adjusts the saturation of the resulting image; a positive
// number where 1 leaves the saturation unchanged.
//
// Default: 1
func (img *Image) Saturation(saturation float64) *Image {
	return img.AddOption("saturation", Float(saturation))
}

// Blur applies a gaussian blur filter to the resulting image. sigma defines
// the size of the mask.
//
// Default: disabled
func (img *Image) Blur(sigma float64) *Image {
	return img.AddOption("blur", Float(sigma))
}

// Sharpen applies the sharpen filter to the resulting image. sigma defines
// the size of the mask; as a guideline, use 0.5 for display resolution and
// 1.5 for 300 dpi.
//
// Default: disabled
func (img *Image) Sharpen(sigma float64) *Image {
	return img.AddOption("sharpen", Float(sigma))
}

// Pixelate applies the pixelate filter to the resulting image. size defines
// the individual pixel size.
//
// Default: disabled
func (img *Image) Pixelate(size int) *Image {
	return img.AddOption("pixelate", Int(size))
}

// UnsharpMasking redefines the unsharp masking options. The arguments have
// the same meaning as the unsharp masking configs and are all optional.
func (img *Image) UnsharpMasking(mode, weight, divider Arg) *Image {
	return img.AddOption("unsharp_masking", mode, weight, divider)
}

// BlurDetections detects objects of the provided classes and blurs them. If
// class names are omitted, all detected objects are blurred. sigma defines
// the size of the mask.
func (img *Image) BlurDetections(sigma float64, classNames ...string) *Image {
	args := make([]Arg, 0, len(classNames)+1)
	args = append(args, Float(sigma))
	for _, name := range classNames {
		args = append(args, String(name))
	}
	return img.AddOption("blur_detections", args...)
}

// DrawDetections, when draw is set to true, detects objects of the provided
// classes and draws their bounding boxes. If class names are omitted, the
// bounding boxes of all detected objects are drawn.
func (img *Image) DrawDetections(draw bool, classNames ...string) *Image {
	args := make([]Arg, 0, len(classNames)+1)
	args = append(args, Bool(draw))
	for _, name := range classNames {
		args = append(args, String(name))
	}
	return img.AddOption("draw_detections", args...)
}

// StripMetadata, when set to true, strips the metadata (EXIF, IPTC, etc.)
// from JPEG and WebP output images. Overrides the IMGPROXY_STRIP_METADATA
// configuration per request.
func (img *Image) StripMetadata(stripMetadata bool) *Image {
	return img.AddOption("strip_metadata", Bool(stripMetadata))
}

// KeepCopyright, when set to true, keeps copyright info while stripping
// metadata. Overrides the IMGPROXY_KEEP_COPYRIGHT configuration per request.
func (img *Image) KeepCopyright(keepCopyright bool) *Image {
	return img.AddOption("keep_copyright", Bool(keepCopyright))
}

// StripColorProfile, when set to true, transforms the embedded color
// profile (ICC) to sRGB and removes it from the image. Overrides the
// IMGPROXY_STRIP_COLOR_PROFILE configuration per request.
func (img *Image) StripColorProfile(stripColorProfile bool) *Image {
	return img.AddOption("strip_color_profile", Bool(stripColorProfile))
}

// EnforceThumbnail, when set to true, makes imgproxy always use the embedded
// thumbnail instead of the main image (heic and avif only). Overrides the
// IMGPROXY_ENFORCE_THUMBNAIL configuration per request.
func (img *Image) EnforceThumbnail(enforceThumbnail bool) *Image {
	return img.AddOption("enforce_thumbnail", Bool(enforceThumbnail))
}

// Quality redefines the quality of the resulting image, as a percentage.
// When set to 0, quality is assumed based on IMGPROXY_QUALITY and the
// format_quality config.
//
// Default: 0
func (img *Image) Quality(quality int) *Image {
	return img.AddOption("quality", Int(quality))
}

// Format specifies the resulting image format. Alias for the extension part
// of the URL.
//
// Default: jpg
func (img *Image) Format(extension string) *Image {
	return img.AddOption("format", String(extension))
}

// Page specifies the page to use when the source image supports pagination
// (PDF, TIFF) or animation (GIF, WebP). Page numeration starts from zero.
//
// Default: 0
func (img *Image) Page(page int) *Image {
	return img.AddOption("page", Int(page))
}

// Pages specifies the number of pages to use when the source image supports
// pagination or animation. The pages will be stacked vertically and
// left-aligned.
//
// Default: 1
func (img *Image) Pages(pages int) *Image {
	return img.AddOption("pages", Int(pages))
}

// DisableAnimation, when set to true, makes imgproxy treat all images as
// not animated. Use Page and Pages to specify which frames to use.
//
// Default: false
func (img *Image) DisableAnimation(disable bool) *Image {
	return img.AddOption("disable_animation", Bool(disable))
}

// Raw, when set to true, makes imgproxy respond with a raw unprocessed and
// unchecked source image, streamed directly to the response.
//
// Default: false
func (img *Image) Raw(raw bool) *Image {
	return img.AddOption("raw", Bool(raw))
}

// Cachebuster doesn't affect image processing but changing it allows
// bypassing the CDN, proxy server and browser cache. Prefer it over a URL
// query string because it can be properly signed.
//
// Default: empty
func (img *Image) Cachebuster(value string) *Image {
	return img.AddOption("cachebuster", String(value))
}

// ReturnAttachment, when set to true, makes imgproxy return attachment in
// the Content-Disposition header. Overrides the IMGPROXY_RETURN_ATTACHMENT
// configuration per request.
func (img *Image) ReturnAttachment(returnAttachment bool) *Image {
	return img.AddOption("return_attachment", Bool(returnAttachment))
}

// MaxSrcResolution redefines the IMGPROXY_MAX_SRC_RESOLUTION config. Only
// allowed when IMGPROXY_ALLOW_SECURITY_OPTIONS is set to true.
func (img *Image) MaxSrcResolution(resolution int) *Image {
	return img.AddOption("max_src_resolution", Int(resolution))
}

// MaxSrcFileSize redefines the IMGPROXY_MAX_SRC_FILE_SIZE config. Only
// allowed when IMGPROXY_ALLOW_SECURITY_OPTIONS is set to true.
func (img *Image) MaxSrcFileSize(size int) *Image {
	return img.AddOption("max_src_file_size", Int(size))
}

// MaxAnimationFrames redefines the IMGPROXY_MAX_ANIMATION_FRAMES config.
// Only allowed when IMGPROXY_ALLOW_SECURITY_OPTIONS is set to true.
func (img *Image) MaxAnimationFrames(size int) *Image {
	return img.AddOption("max_animation_frames", Int(size))
}

// MaxAnimationFrameResolution redefines the
// IMGPROXY_MAX_ANIMATION_FRAME_RESOLUTION config. Only allowed when
// IMGPROXY_ALLOW_SECURITY_OPTIONS is set to true.
func (img *Image) MaxAnimationFrameResolution(size int) *Image {
	return img.AddOption("max_animation_frame_resolution", Int(size))
}
