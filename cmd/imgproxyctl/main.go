package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gobeaver/imgproxy-kit/imgproxy"
)

var (
	baseURL string
	hexKey  string
	hexSalt string
)

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "imgproxyctl: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "imgproxyctl",
		Short: "imgproxy URL generator",
		Long: `imgproxyctl builds signed imgproxy request URLs from the command line.

The endpoint is taken from the --url, --key and --salt flags, falling back to
the IMGPROXY_URL, IMGPROXY_KEY and IMGPROXY_SALT environment variables (and a
.env file in the current directory) when omitted.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&baseURL, "url", "", "Base URL of the imgproxy instance")
	cmd.PersistentFlags().StringVar(&hexKey, "key", "", "Hex-encoded signing key")
	cmd.PersistentFlags().StringVar(&hexSalt, "salt", "", "Hex-encoded signing salt")
	cmd.AddCommand(
		newURLCmd(),
	)
	return cmd
}

// newEndpoint builds the endpoint from flags, falling back to the
// environment for anything left unset.
func newEndpoint() (*imgproxy.Endpoint, error) {
	cfg, err := imgproxy.GetConfig()
	if err != nil {
		return nil, err
	}
	if baseURL != "" {
		cfg.URL = baseURL
	}
	if hexKey != "" {
		cfg.Key = hexKey
	}
	if hexSalt != "" {
		cfg.Salt = hexSalt
	}
	return imgproxy.New(*cfg)
}

func newURLCmd() *cobra.Command {
	var (
		resizingType string
		width        int
		height       int
		dpr          float64
		enlarge      bool
		blur         float64
		quality      int
		format       string
		rawOptions   []string
	)
	cmd := &cobra.Command{
		Use:   "url SOURCE_URL",
		Short: "Build a signed imgproxy URL for a source image",
		Long: `Build a signed imgproxy URL for a source image.

Processing flags are applied in a fixed order: resizing type, width, height,
dpr, enlarge, blur, quality, format, then every --option in the order given.
Each --option takes a raw colon-delimited token (e.g. --option rotate:90) and
is passed through unvalidated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoint, err := newEndpoint()
			if err != nil {
				return err
			}

			img := endpoint.Image(args[0])
			if cmd.Flags().Changed("resizing-type") {
				img = img.ResizingType(resizingType)
			}
			if cmd.Flags().Changed("width") {
				img = img.Width(width)
			}
			if cmd.Flags().Changed("height") {
				img = img.Height(height)
			}
			if cmd.Flags().Changed("dpr") {
				img = img.Dpr(dpr)
			}
			if cmd.Flags().Changed("enlarge") {
				img = img.Enlarge(enlarge)
			}
			if cmd.Flags().Changed("blur") {
				img = img.Blur(blur)
			}
			if cmd.Flags().Changed("quality") {
				img = img.Quality(quality)
			}
			if cmd.Flags().Changed("format") {
				img = img.Format(format)
			}
			for _, raw := range rawOptions {
				img, err = addRawOption(img, raw)
				if err != nil {
					return err
				}
			}

			url, err := img.URL()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}
	cmd.Flags().StringVar(&resizingType, "resizing-type", "", "Resizing type (fit, fill, fill-down, force, auto)")
	cmd.Flags().IntVar(&width, "width", 0, "Width of the resulting image")
	cmd.Flags().IntVar(&height, "height", 0, "Height of the resulting image")
	cmd.Flags().Float64Var(&dpr, "dpr", 1, "Device pixel ratio multiplier")
	cmd.Flags().BoolVar(&enlarge, "enlarge", false, "Enlarge the image if it is smaller than the given size")
	cmd.Flags().Float64Var(&blur, "blur", 0, "Gaussian blur sigma")
	cmd.Flags().IntVar(&quality, "quality", 0, "Quality of the resulting image (percent)")
	cmd.Flags().StringVar(&format, "format", "", "Resulting image format")
	cmd.Flags().StringArrayVar(&rawOptions, "option", nil, "Raw processing option as name:arg:... (repeatable)")
	return cmd
}

// addRawOption splits a colon-delimited token into an option name and string
// arguments and appends it through the generic AddOption escape hatch.
func addRawOption(img *imgproxy.Image, raw string) (*imgproxy.Image, error) {
	parts := strings.Split(raw, ":")
	if parts[0] == "" {
		return nil, fmt.Errorf("invalid option %q: empty option name", raw)
	}
	args := make([]imgproxy.Arg, 0, len(parts)-1)
	for _, part := range parts[1:] {
		args = append(args, imgproxy.String(part))
	}
	return img.AddOption(parts[0], args...), nil
}
