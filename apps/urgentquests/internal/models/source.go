package models

// Source is a schedule page events were imported from. Two sources are the
// same when both title and URL match.
type Source struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

func (source Source) Key() string {
	return source.Title + "\x00" + source.URL
}
