package parser

import (
	"strings"

	"github.com/qcgrid/cubeiso-go/pkg/cubeiso/models"
)

// icontains reports whether s contains substr, ignoring case.
func icontains(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// calcTypeRules is checked in order; the first keyword found in either
// comment wins. New vendor conventions slot in here.
var calcTypeRules = []struct {
	keyword string
	result  models.CalcType
}{
	{"ORCA", models.CalcORCA},
	{"Q-Chem", models.CalcQChem},
}

func detectCalcType(comment1, comment2 string) models.CalcType {
	for _, r := range calcTypeRules {
		if icontains(comment1, r.keyword) || icontains(comment2, r.keyword) {
			return r.result
		}
	}
	return models.CalcGeneric
}

// dataKindRules is checked in order. Orbital keywords outrank density, and
// an unlabeled file is assumed to be orbital data.
var dataKindRules = []struct {
	keyword   string
	isOrbital bool
}{
	{"MO", true},
	{"Orbital", true},
	{"density", false},
}

func detectOrbital(comment1, comment2 string) bool {
	for _, r := range dataKindRules {
		if icontains(comment1, r.keyword) || icontains(comment2, r.keyword) {
			return r.isOrbital
		}
	}
	return true
}
