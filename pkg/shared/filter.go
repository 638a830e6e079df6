package shared

// Filter data
type Filter struct {
	Limit   int    `json:"limit" default:"10"`
	Page    int    `json:"page" default:"1"`
	Offset  int    `json:"-"`
	Search  string `json:"search,omitempty"`
	OrderBy string `json:"orderBy,omitempty"`
	Sort    string `json:"sort,omitempty" default:"asc" lower:"true"`
}

// CalculateOffset set offset from page & limit
func (f *Filter) CalculateOffset() {
	if f.Limit <= 0 {
		f.Limit = 10
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	f.Offset = (f.Page - 1) * f.Limit
}
