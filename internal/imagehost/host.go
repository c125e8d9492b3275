package imagehost

import (
	"context"
	"errors"
)

// ErrUpload marks failures talking to the image hosting service. Callers
// translate it to a 502 at the HTTP boundary.
var ErrUpload = errors.New("image upload failed")

// Result is what the hosting service hands back for a stored image.
// ThumbURL, Width and Height are optional; not every host reports them.
type Result struct {
	URL      string
	ThumbURL string
	Width    int
	Height   int
}

// Host stores an image blob with an external hosting service and returns its
// public URL. Implementations hold no state about uploaded images and make a
// single attempt; retrying is the caller's decision.
type Host interface {
	Upload(ctx context.Context, data []byte, filename, mimeType string) (*Result, error)

	// Name returns the provider name (e.g., "freeimage", "s3")
	Name() string
}
