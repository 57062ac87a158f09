package imgproxy

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"
)

// Image is an immutable request builder: one source URL plus an ordered list
// of serialized processing options. Every chain method returns a new Image;
// the receiver is never modified, so builders can be shared and forked
// freely across goroutines.
type Image struct {
	endpoint  *Endpoint
	sourceURL string
	options   []string
	err       error

	urlOnce sync.Once
	url     string
}

// AddOption appends one processing option, returning a new Image.
//
// The option is serialized as name:arg1:arg2:... with trailing absent
// arguments dropped and absent arguments in the middle rendered as empty
// strings, so AddOption("demo", Int(1), None, Int(2)) yields "demo:1::2"
// while AddOption("demo", Int(1), None, None) yields "demo:1". If every
// argument is absent the token is the bare option name.
//
// AddOption underlies every named option method but can also be used
// directly for options this package has no wrapper for.
func (img *Image) AddOption(name string, args ...Arg) *Image {
	n := len(args)
	for n > 0 && !args[n-1].set {
		n--
	}

	parts := make([]string, 0, n+1)
	parts = append(parts, name)
	for _, a := range args[:n] {
		parts = append(parts, a.val)
	}

	options := make([]string, len(img.options), len(img.options)+1)
	copy(options, img.options)
	options = append(options, strings.Join(parts, ":"))

	return &Image{
		endpoint:  img.endpoint,
		sourceURL: img.sourceURL,
		options:   options,
		err:       img.err,
	}
}

// SourceURL replaces the source URL, keeping the options accumulated so far.
func (img *Image) SourceURL(sourceURL string) *Image {
	options := make([]string, len(img.options))
	copy(options, img.options)

	return &Image{
		endpoint:  img.endpoint,
		sourceURL: sourceURL,
		options:   options,
		err:       img.err,
	}
}

// Options returns a copy of the serialized option tokens in insertion order.
func (img *Image) Options() []string {
	options := make([]string, len(img.options))
	copy(options, img.options)
	return options
}

// Err returns the first error recorded on the chain, if any.
func (img *Image) Err() error {
	return img.err
}

// URL assembles the final request URL. The result is computed once per
// Image and cached; identical chains always produce byte-identical URLs.
//
// The path is /signature/options.../source when the endpoint has both a key
// and a salt, and /options.../source otherwise. It returns an error if an
// unsupported option method was used anywhere in the chain.
func (img *Image) URL() (string, error) {
	if img.err != nil {
		return "", img.err
	}

	img.urlOnce.Do(func() {
		img.url = img.endpoint.url + img.path()
	})

	return img.url, nil
}

// path builds the full request path, signing it when the endpoint carries
// both a key and a salt.
func (img *Image) path() string {
	optionsPath := strings.Join(img.options, "/")
	// Prefix the options with / only if any are set, or the URL would
	// contain an empty segment
	if optionsPath != "" {
		optionsPath = "/" + optionsPath
	}

	var imagePath string
	if sourceURLNeedsEncoding(img.sourceURL) {
		imagePath = "/" + base64.RawURLEncoding.EncodeToString([]byte(img.sourceURL))
	} else {
		imagePath = "/plain/" + img.sourceURL
	}

	unsignedPath := optionsPath + imagePath

	if len(img.endpoint.key) == 0 || len(img.endpoint.salt) == 0 {
		// No signature checking - the signature segment is omitted entirely
		return unsignedPath
	}

	mac := hmac.New(sha256.New, img.endpoint.key)
	mac.Write(img.endpoint.salt)
	mac.Write([]byte(unsignedPath))
	signature := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))

	return "/" + signature + unsignedPath
}

// sourceURLNeedsEncoding reports whether the source URL cannot be embedded
// verbatim in the plain path form. imgproxy treats @, ?, %, space and
// anything outside 7-bit ASCII as unsafe; those sources go into the path
// base64url-encoded instead.
func sourceURLNeedsEncoding(sourceURL string) bool {
	for i := 0; i < len(sourceURL); i++ {
		switch c := sourceURL[i]; {
		case c == '@', c == '?', c == '%', c == ' ':
			return true
		case c > 0x7f:
			return true
		}
	}
	return false
}

// fail returns a copy of the builder whose chain is poisoned with a
// not-implemented error for the named option. The error surfaces from URL.
func (img *Image) fail(option string) *Image {
	if img.err != nil {
		return img
	}
	return &Image{
		endpoint:  img.endpoint,
		sourceURL: img.sourceURL,
		options:   img.options,
		err:       fmt.Errorf("%w: %s", ErrNotImplemented, option),
	}
}

// String implements fmt.Stringer for debugging output.
func (img *Image) String() string {
	return fmt.Sprintf("<Image %s>", img.sourceURL)
}
