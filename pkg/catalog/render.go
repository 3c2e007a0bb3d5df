package catalog

import (
	"fmt"
	"strings"
)

// EmptyCatalogMessage is returned by Render when no skills were discovered.
const EmptyCatalogMessage = "No skills found."

// Render produces the catalog listing handed back to a calling agent: each
// entry as a bolded name followed by its description on the next line, in
// catalog order.
func Render(entries []Entry) string {
	if len(entries) == 0 {
		return EmptyCatalogMessage
	}

	var sb strings.Builder
	sb.WriteString("Available skills:\n")
	for _, entry := range entries {
		fmt.Fprintf(&sb, "\n**%s**\n%s\n", entry.Name, entry.Description)
	}
	return sb.String()
}
