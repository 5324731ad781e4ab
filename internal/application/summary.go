package application

import (
	"strconv"

	"github.com/gosuri/uitable"

	"github.com/GBA-BI/drs-manifest/internal/domain"
)

func summaryTable(entries []*domain.ManifestEntry) string {
	table := uitable.New()
	table.MaxColWidth = 80
	table.Wrap = true
	table.AddRow("DRS URI", "FILEPATH", "SIZE", "MD5")
	for _, entry := range entries {
		table.AddRow(entry.DRSURI, entry.Filepath, strconv.FormatInt(entry.FileSize, 10), entry.Checksum)
	}
	return table.String()
}
