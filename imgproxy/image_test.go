package imgproxy

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// testEndpoint returns an endpoint with the reference key and salt used
// throughout the URL tests.
func testEndpoint(t *testing.T) *Endpoint {
	t.Helper()
	endpoint, err := New(Config{
		URL:  "https://example.org/thumbnail",
		Key:  strings.Repeat("1", 16),
		Salt: strings.Repeat("2", 16),
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return endpoint
}

func TestAddOption(t *testing.T) {
	endpoint := testEndpoint(t)

	tests := []struct {
		name string
		args []Arg
		want string
	}{
		{
			name: "absent in the middle, trailing absent dropped",
			args: []Arg{Int(1), None, Int(2), None, Int(3), None},
			want: "demo:1::2::3",
		},
		{
			name: "all absent leaves the bare option name",
			args: []Arg{None, None, None},
			want: "demo",
		},
		{
			name: "no arguments",
			args: nil,
			want: "demo",
		},
		{
			name: "mixed types",
			args: []Arg{String("fill"), Int(640), Float(0.5), Bool(true)},
			want: "demo:fill:640:0.5:true",
		},
		{
			name: "absent renders empty between set values",
			args: []Arg{None, Int(7)},
			want: "demo::7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := endpoint.Image("demo.png").AddOption("demo", tt.args...)
			if got := img.Options(); !reflect.DeepEqual(got, []string{tt.want}) {
				t.Errorf("Options() = %v, want %v", got, []string{tt.want})
			}
		})
	}
}

func TestAddOptionDoesNotMutateReceiver(t *testing.T) {
	endpoint := testEndpoint(t)

	base := endpoint.Image("demo.png").Width(100)
	before := base.Options()

	derived := base.Height(200)

	if derived == base {
		t.Fatal("chain call returned the receiver instead of a new builder")
	}
	if got := base.Options(); !reflect.DeepEqual(got, before) {
		t.Errorf("receiver options changed: %v, want %v", got, before)
	}
	want := []string{"width:100", "height:200"}
	if got := derived.Options(); !reflect.DeepEqual(got, want) {
		t.Errorf("derived options = %v, want %v", got, want)
	}
}

func TestForkedBuildersAreIndependent(t *testing.T) {
	endpoint := testEndpoint(t)

	base := endpoint.Image("demo.png").ResizingType("fill")
	small := base.Width(320)
	large := base.Width(1280)

	if got, want := small.Options(), []string{"resizing_type:fill", "width:320"}; !reflect.DeepEqual(got, want) {
		t.Errorf("small options = %v, want %v", got, want)
	}
	if got, want := large.Options(), []string{"resizing_type:fill", "width:1280"}; !reflect.DeepEqual(got, want) {
		t.Errorf("large options = %v, want %v", got, want)
	}
}

func TestSourceURLReplacesSourceAndKeepsOptions(t *testing.T) {
	endpoint := testEndpoint(t)

	base := endpoint.Image("demo.png").Width(100)
	replaced := base.SourceURL("another_image.png")

	if replaced == base {
		t.Fatal("SourceURL returned the receiver instead of a new builder")
	}
	if replaced.sourceURL != "another_image.png" {
		t.Errorf("sourceURL = %v, want %v", replaced.sourceURL, "another_image.png")
	}
	if got := replaced.Options(); !reflect.DeepEqual(got, []string{"width:100"}) {
		t.Errorf("Options() = %v, want %v", got, []string{"width:100"})
	}
	if base.sourceURL != "demo.png" {
		t.Errorf("receiver sourceURL changed to %v", base.sourceURL)
	}
}

func TestURL(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		build func(*Endpoint) *Image
		want  string
	}{
		{
			name: "signed with options",
			cfg: Config{
				URL:  "https://example.org/thumbnail",
				Key:  strings.Repeat("1", 16),
				Salt: strings.Repeat("2", 16),
			},
			build: func(e *Endpoint) *Image {
				return e.Image("demo.png").Size(Int(640), Int(480), None, None, None, None, None)
			},
			want: "https://example.org/thumbnail/muzV--3ARhtX_iCFwE_kLkzvohwQIJLZloJpBBg7MkQ/size:640:480/plain/demo.png",
		},
		{
			name: "signed without options",
			cfg: Config{
				URL:  "https://example.org/thumbnail",
				Key:  strings.Repeat("1", 16),
				Salt: strings.Repeat("2", 16),
			},
			build: func(e *Endpoint) *Image {
				return e.Image("demo.png")
			},
			want: "https://example.org/thumbnail/qHrDO4lTysklvMcR1YNDeupe94JCjzzSA0rdEgfq2rc/plain/demo.png",
		},
		{
			name: "source needs base64 encoding",
			cfg: Config{
				URL:  "https://example.org/thumbnail",
				Key:  strings.Repeat("1", 16),
				Salt: strings.Repeat("2", 16),
			},
			build: func(e *Endpoint) *Image {
				return e.Image("demo.png?hello=world")
			},
			want: "https://example.org/thumbnail/Mr9iFZTtzF7OS2NYKYdzmcG_pWk4ffjIUbe4FyobHnM/ZGVtby5wbmc_aGVsbG89d29ybGQ",
		},
		{
			name: "no key or salt omits the signature segment",
			cfg:  Config{URL: "https://example.org/thumbnail"},
			build: func(e *Endpoint) *Image {
				return e.Image("demo.png").Size(Int(640), Int(480), None, None, None, None, None)
			},
			want: "https://example.org/thumbnail/size:640:480/plain/demo.png",
		},
		{
			name: "key without salt omits the signature segment",
			cfg: Config{
				URL: "https://example.org/thumbnail",
				Key: strings.Repeat("1", 16),
			},
			build: func(e *Endpoint) *Image {
				return e.Image("demo.png")
			},
			want: "https://example.org/thumbnail/plain/demo.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			endpoint, err := New(tt.cfg)
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}

			url, err := tt.build(endpoint).URL()
			if err != nil {
				t.Fatalf("URL() failed: %v", err)
			}
			if url != tt.want {
				t.Errorf("URL() = %v, want %v", url, tt.want)
			}
		})
	}
}

func TestURLIsDeterministic(t *testing.T) {
	endpoint := testEndpoint(t)

	build := func() string {
		url, err := endpoint.Image("demo.png").
			ResizingType("fill").
			Width(640).
			Height(480).
			Quality(80).
			URL()
		if err != nil {
			t.Fatalf("URL() failed: %v", err)
		}
		return url
	}

	first := build()
	second := build()
	if first != second {
		t.Errorf("identical chains produced different URLs:\n%s\n%s", first, second)
	}
}

func TestURLIsMemoized(t *testing.T) {
	endpoint := testEndpoint(t)
	img := endpoint.Image("demo.png").Width(640)

	first, err := img.URL()
	if err != nil {
		t.Fatalf("URL() failed: %v", err)
	}
	second, err := img.URL()
	if err != nil {
		t.Fatalf("URL() failed: %v", err)
	}
	if first != second {
		t.Errorf("repeated URL() calls disagree: %q vs %q", first, second)
	}
}

func TestSourceURLNeedsEncoding(t *testing.T) {
	tests := []struct {
		source string
		want   bool
	}{
		{"demo.png", false},
		{"https://example.org/demo.png", false},
		{"demo.png?hello=world", true},
		{"user@example.org/demo.png", true},
		{"demo%20file.png", true},
		{"demo file.png", true},
		{"demö.png", true},
		{"", false},
	}

	for _, tt := range tests {
		if got := sourceURLNeedsEncoding(tt.source); got != tt.want {
			t.Errorf("sourceURLNeedsEncoding(%q) = %v, want %v", tt.source, got, tt.want)
		}
	}
}

func TestUnsupportedOptionFailsURL(t *testing.T) {
	endpoint := testEndpoint(t)

	_, err := endpoint.Image("demo.png").Watermark().URL()
	if !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("URL() error = %v, want ErrNotImplemented", err)
	}
	if !strings.Contains(err.Error(), "watermark") {
		t.Errorf("error does not name the option: %v", err)
	}
}

func TestUnsupportedOptionPoisonsTheChain(t *testing.T) {
	endpoint := testEndpoint(t)

	// Options chained after the unsupported one must not clear the error
	img := endpoint.Image("demo.png").Style().Width(640)
	if !errors.Is(img.Err(), ErrNotImplemented) {
		t.Fatalf("Err() = %v, want ErrNotImplemented", img.Err())
	}

	_, err := img.URL()
	if !errors.Is(err, ErrNotImplemented) {
		t.Errorf("URL() error = %v, want ErrNotImplemented", err)
	}

	// The first failure wins when several unsupported options are chained
	img = endpoint.Image("demo.png").Preset().Hashsum()
	if got := img.Err(); got == nil || !strings.Contains(got.Error(), "preset") {
		t.Errorf("Err() = %v, want the first unsupported option (preset)", got)
	}
}

func TestOptionsReturnsACopy(t *testing.T) {
	endpoint := testEndpoint(t)
	img := endpoint.Image("demo.png").Width(100)

	got := img.Options()
	got[0] = "mutated"

	if img.Options()[0] != "width:100" {
		t.Error("mutating the returned slice changed the builder")
	}
}
