// Package platform delivers desktop notifications through the host's
// notification service.
package platform

// AppName identifies the application to notification services.
const AppName = "PolyPaint"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath points to an image shown next to the message when supported.
	IconPath string
	// TimeoutMillis is how long the notification stays visible. Zero uses
	// the platform default.
	TimeoutMillis int32
}

func (o Options) timeout() int32 {
	if o.TimeoutMillis > 0 {
		return o.TimeoutMillis
	}
	return 5000
}
