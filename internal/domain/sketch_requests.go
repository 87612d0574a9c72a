package domain

// SaveSketchRequest is the body of both create and update calls. Server
// assigned fields (id, timestamps) are never read from it.
type SaveSketchRequest struct {
	Title       string      `json:"title" validate:"required,max=200"`
	Description *string     `json:"description" validate:"omitempty,max=2000"`
	Incidents   []Incident  `json:"incidents" validate:"max=2000,dive"`
	DrawnLines  []DrawnLine `json:"drawn_lines" validate:"max=2000,dive"`
	Metadata    Metadata    `json:"metadata"`
	IsPublic    bool        `json:"is_public"`
}

type ListSketchesRequest struct {
	Page  int `query:"page" validate:"min=1"`
	Limit int `query:"limit" validate:"min=1,max=100"`
}

type ListSketchesResponse struct {
	Sketches []SketchSummary `json:"sketches"`
	Page     int             `json:"page"`
	Limit    int             `json:"limit"`
	Total    int64           `json:"total"`
}

type CreateSketchResponse struct {
	ID string `json:"id"`
}

// ToSketch builds an unsaved sketch from the request body.
func (r SaveSketchRequest) ToSketch() *Sketch {
	s := &Sketch{
		Title:       r.Title,
		Description: r.Description,
		Incidents:   r.Incidents,
		DrawnLines:  r.DrawnLines,
		Metadata:    r.Metadata,
		IsPublic:    r.IsPublic,
	}
	if s.Incidents == nil {
		s.Incidents = []Incident{}
	}
	if s.DrawnLines == nil {
		s.DrawnLines = []DrawnLine{}
	}
	return s
}

func NewSaveSketchRequest(s *Sketch) SaveSketchRequest {
	return SaveSketchRequest{
		Title:       s.Title,
		Description: s.Description,
		Incidents:   s.Incidents,
		DrawnLines:  s.DrawnLines,
		Metadata:    s.Metadata,
		IsPublic:    s.IsPublic,
	}
}
