package genre

import (
	"strings"
)

// None is the code for an unknown or missing genre.
const None uint8 = 0

// NoneName is the label reported for code 0 and for codes not in the table.
const NoneName = "(None)"

// Genre is one entry of the launcher's genre table.
type Genre struct {
	Name string `json:"name"`
	Code uint8  `json:"code"`
}

// table is the launcher's genre list in code order.
var table = []Genre{
	{NoneName, 0},
	{"Action", 1},
	{"Adventure", 2},
	{"Beat 'em Up", 3},
	{"Board Game", 4},
	{"Casino", 5},
	{"Compilation", 6},
	{"Construction and Management Simulation", 7},
	{"Education", 8},
	{"Fighting", 9},
	{"Flight Simulator", 10},
	{"Horror", 11},
	{"Life Simulation", 12},
	{"MMO", 13},
	{"Music", 14},
	{"Party", 15},
	{"Pinball", 16},
	{"Platform", 17},
	{"Puzzle", 18},
	{"Quiz", 19},
	{"Racing", 20},
	{"Role-Playing", 21},
	{"Sandbox", 22},
	{"Shooter", 23},
	{"Sports", 24},
	{"Stealth", 25},
	{"Strategy", 26},
	{"Vehicle Simulation", 27},
	{"Visual Novel", 28},
}

// rule maps an uppercase label to a code when match reports true.
type rule struct {
	match func(upper string) bool
	code  uint8
}

// rules is evaluated in order; the first matching rule wins.
var rules = []rule{
	{anyOf("ACTION"), 1},
	{anyOf("ADVENTURE"), 2},
	{anyOf("BEAT", "BRAWL"), 3},
	{anyOf("BOARD"), 4},
	{anyOf("CASINO"), 5},
	{anyOf("COMPILATION"), 6},
	{anyOf("CONSTRUCTION", "MANAGEMENT", "BUILDING"), 7},
	{anyOf("EDUCATION", "LEARNING"), 8},
	{anyOf("FIGHTING"), 9},
	{anyOf("FLIGHT"), 10},
	{anyOf("HORROR"), 11},
	{allOf("LIFE", "SIM"), 12},
	{anyOf("MMO", "ONLINE"), 13},
	{anyOf("MUSIC", "RHYTHM"), 14},
	{anyOf("PARTY"), 15},
	{anyOf("PINBALL"), 16},
	{anyOf("PLATFORM"), 17},
	{anyOf("PUZZLE"), 18},
	{anyOf("QUIZ", "TRIVIA"), 19},
	{anyOf("RACING", "DRIVING"), 20},
	{anyOf("ROLE", "RPG"), 21},
	{anyOf("SANDBOX"), 22},
	{anyOf("SHOOT", "FPS", "SHMUP"), 23},
	{anyOf("SPORT"), 24},
	{anyOf("STEALTH"), 25},
	{anyOf("STRATEG"), 26},
	{allOf("VEHICLE", "SIM"), 27},
	{allOf("VISUAL", "NOVEL"), 28},
}

func anyOf(words ...string) func(string) bool {
	return func(s string) bool {
		for _, w := range words {
			if strings.Contains(s, w) {
				return true
			}
		}
		return false
	}
}

func allOf(words ...string) func(string) bool {
	return func(s string) bool {
		for _, w := range words {
			if !strings.Contains(s, w) {
				return false
			}
		}
		return true
	}
}

// Resolve returns the genre code for a catalog label, or None.
func Resolve(label string) uint8 {
	if label == "" {
		return None
	}

	for _, g := range table {
		if g.Name == label {
			return g.Code
		}
	}

	upper := strings.ToUpper(label)
	for _, g := range table {
		if strings.ToUpper(g.Name) == upper {
			return g.Code
		}
	}

	for _, r := range rules {
		if r.match(upper) {
			return r.code
		}
	}

	return None
}

// NameOf returns the table label for code. Only used for reporting.
func NameOf(code uint8) string {
	for _, g := range table {
		if g.Code == code {
			return g.Name
		}
	}
	return NoneName
}

// Table returns a copy of the genre table in code order.
func Table() []Genre {
	out := make([]Genre, len(table))
	copy(out, table)
	return out
}
