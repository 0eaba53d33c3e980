// Package export renders the occurrence listing as CSV, entirely on the
// client. There is no dedicated backend endpoint for this.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/sosdefesa/admin/internal/model"
)

// csvHeaders are the fixed export columns. Every data row carries exactly
// this many fields.
var csvHeaders = []string{
	"Tipo",
	"Localização",
	"Latitude",
	"Longitude",
	"Criado em",
	"Curtidas",
	"Anexo",
}

const timestampLayout = "02/01/2006 15:04:05"

// OccurrencesCSV builds the CSV document for the given occurrences,
// formatting timestamps in loc. Rows are plain comma joins with no quoting
// or escaping: a field value containing a comma corrupts its row. That is a
// known limitation of the upstream export, kept as-is rather than silently
// fixed.
func OccurrencesCSV(occurrences []model.Occurrence, loc *time.Location) string {
	rows := make([]string, 0, len(occurrences)+1)
	rows = append(rows, strings.Join(csvHeaders, ","))

	for _, oc := range occurrences {
		attachment := "Não"
		if oc.AttachmentCount > 0 {
			attachment = "Sim"
		}
		row := []string{
			model.TypeName(oc.Type),
			oc.Neighborhood,
			fmt.Sprintf("%g", oc.Latitude),
			fmt.Sprintf("%g", oc.Longitude),
			oc.CreatedAt.In(loc).Format(timestampLayout),
			fmt.Sprintf("%d", oc.LikeCount),
			attachment,
		}
		rows = append(rows, strings.Join(row, ","))
	}

	return strings.Join(rows, "\n")
}
