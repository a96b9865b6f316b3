package lookup

import (
	"fmt"

	"golang.org/x/image/colornames"
)

// cssNames returns the CSS named colors. colornames covers the SVG 1.1 set;
// rebeccapurple was added by CSS Color Level 4.
func cssNames() map[string]string {
	names := make(map[string]string, len(colornames.Map)+1)
	for name, c := range colornames.Map {
		names[name] = fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	names["rebeccapurple"] = "#663399"
	return names
}
