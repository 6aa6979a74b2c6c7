// Package buildinfo carries version metadata injected at link time via
// -ldflags and surfaced on the health endpoint.
package buildinfo

var (
	Version = "dev"
	Commit  = ""
	BuiltAt = ""
)

func Info() map[string]string {
	return map[string]string{
		"version": Version,
		"commit":  Commit,
		"builtAt": BuiltAt,
	}
}
