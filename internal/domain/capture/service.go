package capture

import "context"

// DefaultQuality is the JPEG quality requested from the camera.
const DefaultQuality = 0.8

// Options configures a single capture attempt.
type Options struct {
	// ItemID is the checklist item the photo will be attached to.
	ItemID string
	// Quality is the requested JPEG quality in [0,1]. Zero means DefaultQuality.
	Quality float64
}

// Shot is what the camera hands back after the viewfinder closes.
type Shot struct {
	// URI is an opaque reference to the stored photo.
	URI string
	// Cancelled is true when the user backed out without taking a photo.
	// That is an outcome, not an error.
	Cancelled bool
}

// Service is the device-facing port a camera integration implements.
type Service interface {
	// RequestPermission reports whether the camera may be used.
	RequestPermission(ctx context.Context) (bool, error)

	// Capture opens the camera and blocks until the user takes or abandons
	// a photo. Errors are reserved for hardware or I/O failures.
	Capture(ctx context.Context, opts Options) (Shot, error)
}
