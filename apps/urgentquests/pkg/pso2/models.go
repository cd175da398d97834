package pso2

// Schedule is one schedule page advertised on the index.
type Schedule struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}
