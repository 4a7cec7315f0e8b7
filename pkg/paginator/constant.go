package paginator

const (
	DefaultPage  = 1
	DefaultLimit = 50
	// MaxLimit bounds a page of detections or ignored hostnames.
	MaxLimit = 500
)
