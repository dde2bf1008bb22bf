package model

type Recommendation struct {
	Query    string
	Genres   []string
	Movies   []string
	Excluded []string
}

type Feedback struct {
	Movie   string
	Liked   bool
	Message string
}
