package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	cipherDomain "github.com/allisson/ciphers/internal/cipher/domain"
)

// RunListCiphers prints the cipher catalogue as a table, or as JSON when format is "json".
func RunListCiphers(writer io.Writer, format string) error {
	catalogue := cipherDomain.Catalogue()

	if format == "json" {
		type entry struct {
			ID          string   `json:"id"`
			Name        string   `json:"name"`
			KeyFields   []string `json:"key_fields"`
			Description string   `json:"description"`
		}
		entries := make([]entry, 0, len(catalogue))
		for _, info := range catalogue {
			entries = append(entries, entry{
				ID:          info.Kind.String(),
				Name:        info.Name,
				KeyFields:   info.KeyFields,
				Description: info.Description,
			})
		}
		return writeJSON(writer, entries)
	}

	tw := tabwriter.NewWriter(writer, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tKEY FIELDS\tDESCRIPTION")
	for _, info := range catalogue {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Kind, strings.Join(info.KeyFields, ", "), info.Description)
	}
	return tw.Flush()
}
