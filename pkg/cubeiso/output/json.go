// Package output serializes analysis reports.
package output

import (
	"encoding/json"

	"github.com/qcgrid/cubeiso-go/pkg/cubeiso/models"
)

// ToJSON serializes a report, optionally pretty-printed.
func ToJSON(rep *models.Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(rep, "", "  ")
	}
	return json.Marshal(rep)
}
