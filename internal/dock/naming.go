package dock

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const controlPrefix = "toggle"

// ControlID derives the conventional control id for a panel:
// "filesWidget" -> "toggleFilesWidget".
func ControlID(panelName string) string {
	if panelName == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(panelName)
	return controlPrefix + string(unicode.ToUpper(r)) + panelName[size:]
}

// PanelName inverts ControlID. Ids without the prefix yield "".
func PanelName(controlID string) string {
	rest, ok := strings.CutPrefix(controlID, controlPrefix)
	if !ok || rest == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(rest)
	return string(unicode.ToLower(r)) + rest[size:]
}
