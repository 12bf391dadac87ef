package domain

type Language struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Display string `json:"display"`
}

var languages = []Language{
	{Code: "en", Name: "English", Display: "English"},
	{Code: "es", Name: "Spanish", Display: "Español"},
	{Code: "fr", Name: "French", Display: "Français"},
	{Code: "ja", Name: "Japanese", Display: "日本語"},
}

// Languages returns the narration languages in display order.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

func LookupLanguage(code string) (Language, bool) {
	for _, l := range languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}
