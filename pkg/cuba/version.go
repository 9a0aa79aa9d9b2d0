package cuba

// Version is the binding's semantic version, populated at build time via
// ldflags. Development builds report the fallback below.
var Version = "v0.0.0-dev"

// UpstreamVersion is the Cuba release whose argument lists and status codes
// this binding is written against.
const UpstreamVersion = "4.2.2"
