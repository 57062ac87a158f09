// Package imgproxy builds signed request URLs for an imgproxy instance.
//
// imgproxy fetches and transforms images on the fly; this package only
// constructs the URLs that tell it what to do. It performs no network I/O
// and no image processing: given an endpoint configuration, a source URL
// and a chain of processing options, it deterministically renders the
// request path and signs it with HMAC-SHA256.
//
// # Basic Usage
//
// Create an endpoint and build a URL:
//
//	import "github.com/gobeaver/imgproxy-kit/imgproxy"
//
//	endpoint, err := imgproxy.New(imgproxy.Config{
//	    URL:  "https://imgproxy.example.org",
//	    Key:  "736563726574",
//	    Salt: "68656c6c6f",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	url, err := endpoint.Image("https://example.org/photo.jpg").
//	    ResizingType("fill").
//	    Width(300).
//	    Height(400).
//	    URL()
//
// # Environment Configuration
//
// Configuration can come from the environment (IMGPROXY_URL, IMGPROXY_KEY,
// IMGPROXY_SALT, IMGPROXY_SOURCE_URL_ENCRYPTION_KEY) using the global
// instance:
//
//	if err := imgproxy.Init(); err != nil {
//	    log.Fatal(err)
//	}
//	url, err := imgproxy.Service().Image("photo.jpg").Width(640).URL()
//
// # Immutability
//
// An Image is an immutable value: every option method returns a new builder
// and never touches the receiver, so a partially configured builder can be
// shared across goroutines and forked into variants safely:
//
//	base := endpoint.Image("photo.jpg").ResizingType("fill")
//	small := base.Width(320)
//	large := base.Width(1280)
//
// # Optional Arguments
//
// Options with optional positional arguments take Arg values. Use the
// Int, Float, Bool and String constructors for present arguments and None
// for absent ones; trailing absent arguments are dropped from the
// serialized token:
//
//	// gravity:nowe
//	img.Gravity(imgproxy.String("nowe"), imgproxy.None, imgproxy.None)
//
//	// size:640:480
//	img.Size(imgproxy.Int(640), imgproxy.Int(480), imgproxy.None,
//	    imgproxy.None, imgproxy.None, imgproxy.None, imgproxy.None)
//
// Options without a named wrapper can be added through the AddOption
// escape hatch, which serializes arguments the same way.
//
// # Signing
//
// When the configuration carries both a key and a salt, the request path is
// prefixed with an HMAC-SHA256 signature over the salt-prefixed path,
// encoded as unpadded URL-safe base64. Without a key or salt the signature
// segment is omitted entirely and the URL only works against an instance
// that skips signature verification.
package imgproxy
