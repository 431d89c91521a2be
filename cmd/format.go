package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopsight/shopsight-mcp/internal/models"
	"github.com/shopsight/shopsight-mcp/internal/report"
)

// emit writes either indented JSON of the decoded records or the prepared
// text report, with the credit footer, to stdout.
func emit(format, text string, records any, meta *models.Meta) error {
	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Data any          `json:"data"`
			Meta *models.Meta `json:"meta"`
		}{records, meta})
	}
	fmt.Println(report.WithCredits(text, meta))
	return nil
}
