package discdb

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ImageOptions sets the requested image size. Zero values are omitted, and
// the image server keeps the aspect ratio for a missing dimension.
type ImageOptions struct {
	Width  int
	Height int
}

// ImageURL resolves an image path against {origin}/images/.
func ImageURL(origin, path string, opts ImageOptions) (string, error) {
	if origin == "" {
		origin = DefaultOrigin
	}
	base, err := url.Parse(strings.TrimRight(origin, "/") + "/images/")
	if err != nil {
		return "", fmt.Errorf("parse origin: %w", err)
	}
	ref, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse image path: %w", err)
	}

	u := base.ResolveReference(ref)
	if opts.Width > 0 || opts.Height > 0 {
		q := u.Query()
		if opts.Width > 0 {
			q.Set("width", strconv.Itoa(opts.Width))
		}
		if opts.Height > 0 {
			q.Set("height", strconv.Itoa(opts.Height))
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}
