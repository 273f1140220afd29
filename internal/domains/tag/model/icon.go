package model

// Icon names arrive from stored catalog rows and, historically, from
// free-form admin input. Rendering resolves them through a closed allowlist
// so an unknown name can never reach a client as-is.

const IconFallback = "tag"

var allowedIcons = map[string]struct{}{
	"tag":          {},
	"wifi":         {},
	"parking":      {},
	"kitchen":      {},
	"tv":           {},
	"washer":       {},
	"elevator":     {},
	"wheelchair":   {},
	"bed":          {},
	"bath":         {},
	"nurse":        {},
	"stethoscope":  {},
	"pill":         {},
	"wheelchair-2": {},
	"heart":        {},
	"shield":       {},
	"car":          {},
	"utensils":     {},
	"snowflake":    {},
	"sun":          {},
}

// ResolveIcon maps a stored icon name to a renderable one, falling back to
// IconFallback for anything outside the allowlist.
func ResolveIcon(name string) string {
	if _, ok := allowedIcons[name]; ok {
		return name
	}

	return IconFallback
}
