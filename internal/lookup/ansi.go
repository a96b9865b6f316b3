package lookup

// ansiCodes maps SGR parameters for the 4-bit palette to colors, using the
// Terminal.app defaults. The default background is black and the default
// foreground white. Bold plus a base color selects the bright variant.
var ansiCodes = map[string]string{
	"39": "#ffffff", // default foreground
	"49": "#000000", // default background

	"30": "#000000", "40": "#000000", // black
	"31": "#990000", "41": "#990000", // red
	"32": "#00a600", "42": "#00a600", // green
	"33": "#999900", "43": "#999900", // yellow
	"34": "#0000b2", "44": "#0000b2", // blue
	"35": "#b200b2", "45": "#b200b2", // magenta
	"36": "#00a6b2", "46": "#00a6b2", // cyan
	"37": "#ffffff", "47": "#ffffff", // white

	"90": "#666666", "100": "#666666", "1;30": "#666666", "1;40": "#666666", // bright black
	"91": "#e50000", "101": "#e50000", "1;31": "#e50000", "1;41": "#e50000", // bright red
	"92": "#00d900", "102": "#00d900", "1;32": "#00d900", "1;42": "#00d900", // bright green
	"93": "#e5e500", "103": "#e5e500", "1;33": "#e5e500", "1;43": "#e5e500", // bright yellow
	"94": "#0000ff", "104": "#0000ff", "1;34": "#0000ff", "1;44": "#0000ff", // bright blue
	"95": "#e500e5", "105": "#e500e5", "1;35": "#e500e5", "1;45": "#e500e5", // bright magenta
	"96": "#00e5e5", "106": "#00e5e5", "1;36": "#00e5e5", "1;46": "#00e5e5", // bright cyan
	"97": "#e5e5e5", "107": "#e5e5e5", "1;37": "#e5e5e5", "1;47": "#e5e5e5", // bright white
}
