package met

import "strings"

// Departments are the curatorial departments offered as queries, in display order.
var Departments = []string{
	"American Wing",
	"Ancient Near Eastern Art",
	"Arms and Armor",
	"Arts of Africa, Oceania, and the Americas",
	"Asian Art",
	"Costume Institute",
	"Egyptian Art",
	"European Paintings",
	"European Sculpture and Decorative Arts",
	"Greek and Roman Art",
	"Islamic Art",
	"Modern and Contemporary Art",
	"Musical Instruments",
}

// DefaultDepartment is selected when no department is given.
const DefaultDepartment = "European Paintings"

// LookupDepartment returns the canonical department name matching name
// case-insensitively.
func LookupDepartment(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, d := range Departments {
		if strings.EqualFold(d, name) {
			return d, true
		}
	}
	return "", false
}
