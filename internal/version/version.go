package version

// AppVersion is the semantic version of itemctl. Overridable at build time via
// -ldflags "-X itemctl/internal/version.AppVersion=...".
var AppVersion = "0.1.0"
