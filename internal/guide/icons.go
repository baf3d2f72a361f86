package guide

// glyphs maps icon tokens to the symbols shown in the page and terminal.
var glyphs = map[string]string{
	"sparkles":       "✨",
	"book-open":      "📖",
	"building":       "🏢",
	"zap":            "⚡",
	"dollar-sign":    "💲",
	"file-text":      "📄",
	"clipboard-list": "📋",
	"hammer":         "🔨",
	"handshake":      "🤝",
	"users":          "👥",
	"target":         "🎯",
	"message-square": "💬",
	"settings":       "⚙️",
	"rocket":         "🚀",
	"calendar":       "📅",
	"database":       "🗄️",
	"bar-chart":      "📊",
	"star":           "⭐",
	"help-circle":    "❓",
	"book-marked":    "🔖",
	"shield":         "🛡️",
	"message-circle": "🗨️",
}

// Glyph returns the symbol for an icon token, or a bullet for unknown tokens.
func Glyph(icon string) string {
	if g, ok := glyphs[icon]; ok {
		return g
	}
	return "•"
}
