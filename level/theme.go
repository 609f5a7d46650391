package level

// Theme is a named ordered set of collectible ids with display labels and
// a flag controlling whether gates are generated for it. The catalog is
// closed: adding a theme only requires adding an entry here.
type Theme struct {
	Name   string
	IDs    []string // Required collection order
	Labels []string // Human labels, parallel to IDs
	Gated  bool     // True = one gate generated per collectible
}

// Total returns the number of tokens the theme requires
func (t Theme) Total() int {
	return len(t.IDs)
}

// Label returns the human label for a token id, falling back to the id
func (t Theme) Label(id string) string {
	for i, tid := range t.IDs {
		if tid == id {
			return t.Labels[i]
		}
	}
	return id
}

var themes = map[string]Theme{
	"tcp": {
		Name:   "tcp",
		IDs:    []string{"SYN", "SYN-ACK", "ACK"},
		Labels: []string{"SYN (synchronize)", "SYN-ACK (acknowledge)", "ACK (established)"},
		Gated:  true,
	},
	"http": {
		Name:   "http",
		IDs:    []string{"REQUEST", "HEADERS", "BODY"},
		Labels: []string{"Request line", "Request headers", "Request body"},
		Gated:  true,
	},
	"auth": {
		Name:   "auth",
		IDs:    []string{"CREDENTIALS", "TOKEN", "SESSION"},
		Labels: []string{"Credentials", "Signed token", "Session cookie"},
		Gated:  false,
	},
	"api": {
		Name:   "api",
		IDs:    []string{"ENDPOINT", "REQUEST", "RESPONSE"},
		Labels: []string{"Endpoint route", "API request", "API response"},
		Gated:  false,
	},
	"none": {
		Name: "none",
	},
}

// ThemeByName resolves a theme from the catalog. Unknown names resolve to
// the empty "none" theme rather than failing.
func ThemeByName(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["none"]
}
