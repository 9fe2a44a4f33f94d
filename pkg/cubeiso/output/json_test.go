package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/qcgrid/cubeiso-go/pkg/cubeiso/models"
)

func TestToJSON(t *testing.T) {
	rep := &models.Report{
		File:       "h2o.cube",
		CalcType:   models.CalcORCA,
		DataKind:   models.KindOrbital,
		Dims:       [3]int{40, 40, 40},
		NativeUnit: "bohr",
		Mode:       models.ModePercent,
		Input:      85,
		Positive:   true,
		Isovalue:   0.05,
	}

	data, err := ToJSON(rep, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	var decoded models.Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.File != "h2o.cube" || decoded.Isovalue != 0.05 {
		t.Errorf("round-trip mismatch: %+v", decoded)
	}

	pretty, err := ToJSON(rep, true)
	if err != nil {
		t.Fatalf("ToJSON pretty failed: %v", err)
	}
	if !strings.Contains(string(pretty), "\n  ") {
		t.Error("pretty output is not indented")
	}
}
