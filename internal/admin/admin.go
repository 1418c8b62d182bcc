// Package admin holds the declarative configuration of the management
// console: which columns each entity lists, how its edit form groups
// fields, and which related entities appear inline. It carries no
// behavior beyond lookup.
package admin

type Fieldset struct {
	Title  string   `json:"title,omitempty"`
	Fields []string `json:"fields"`
}

type ModelAdmin struct {
	Model       string     `json:"model"`
	ListDisplay []string   `json:"list_display"`
	ListFilter  []string   `json:"list_filter,omitempty"`
	Fieldsets   []Fieldset `json:"fieldsets,omitempty"`
	Inlines     []string   `json:"inlines,omitempty"`
}

// Registry lists every entity managed through the console.
var Registry = []ModelAdmin{
	{
		Model:       "author",
		ListDisplay: []string{"last_name", "first_name", "date_of_birth", "date_of_death"},
		Fieldsets: []Fieldset{
			{Fields: []string{"first_name", "last_name"}},
			{Title: "Dates", Fields: []string{"date_of_birth", "date_of_death"}},
		},
		Inlines: []string{"book"},
	},
	{
		Model:       "book",
		ListDisplay: []string{"title", "author", "display_genre"},
		Inlines:     []string{"book_instance"},
	},
	{
		Model:       "book_instance",
		ListDisplay: []string{"book", "status", "borrower", "due_back", "id"},
		ListFilter:  []string{"status", "due_back"},
		Fieldsets: []Fieldset{
			{Fields: []string{"book", "imprint", "id"}},
			{Title: "Availability", Fields: []string{"status", "due_back", "borrower"}},
		},
	},
	{
		Model:       "genre",
		ListDisplay: []string{"name"},
	},
	{
		Model:       "language",
		ListDisplay: []string{"name", "code"},
	},
}

// Find returns the descriptor for a model name.
func Find(model string) (ModelAdmin, bool) {
	for _, m := range Registry {
		if m.Model == model {
			return m, true
		}
	}
	return ModelAdmin{}, false
}
