package catalog

// The map renderer contract is satisfied with data, not markup: the server
// hands clients a geometry model (building rectangles, streets, landmarks)
// and the client draws it. Positions are relative coordinates on a 900x450
// canvas laid out after the real UIC East Campus.

// BuildingStyle is the color and short label used when plotting a building.
type BuildingStyle struct {
	Color string `json:"color"`
	Label string `json:"label"`
}

// MapRect is a building footprint on the campus map canvas.
type MapRect struct {
	Key    string `json:"key"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Color  string `json:"color"`
	Label  string `json:"label"`
}

// MapStreet is a street segment with a display label.
type MapStreet struct {
	Name      string `json:"name"`
	X1        int    `json:"x1"`
	Y1        int    `json:"y1"`
	X2        int    `json:"x2"`
	Y2        int    `json:"y2"`
	Direction string `json:"direction"`
}

// MapLandmark is a non-building feature such as the quad.
type MapLandmark struct {
	Key    string `json:"key"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Label  string `json:"label"`
}

// MapModel is the full render model for the campus overview map.
type MapModel struct {
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	Buildings []MapRect     `json:"buildings"`
	Streets   []MapStreet   `json:"streets"`
	Landmarks []MapLandmark `json:"landmarks"`
	Highlight string        `json:"highlight,omitempty"`
}

var mapRects = map[string]MapRect{
	"SCE": {Key: "SCE", X: 620, Y: 180, Width: 100, Height: 70, Color: "#D32F2F", Label: "SCE"},
	"ARC": {Key: "ARC", X: 720, Y: 240, Width: 90, Height: 80, Color: "#2196F3", Label: "ARC"},
	"BSB": {Key: "BSB", X: 450, Y: 280, Width: 85, Height: 75, Color: "#9C27B0", Label: "BSB"},
	"LIB": {Key: "LIB", X: 380, Y: 140, Width: 120, Height: 110, Color: "#795548", Label: "LIB"},
	"SES": {Key: "SES", X: 560, Y: 310, Width: 95, Height: 70, Color: "#FF5722", Label: "SES"},
	"UH":  {Key: "UH", X: 300, Y: 150, Width: 70, Height: 120, Color: "#607D8B", Label: "UH"},
	"TH":  {Key: "TH", X: 380, Y: 290, Width: 75, Height: 70, Color: "#3F51B5", Label: "TH"},
	"LCA": {Key: "LCA", X: 490, Y: 150, Width: 90, Height: 80, Color: "#00BCD4", Label: "LCA"},
}

var mapStreets = []MapStreet{
	{Name: "Halsted St", X1: 600, Y1: 100, X2: 600, Y2: 400, Direction: "vertical"},
	{Name: "Morgan St", X1: 200, Y1: 100, X2: 200, Y2: 400, Direction: "vertical"},
	{Name: "Harrison St", X1: 200, Y1: 250, X2: 800, Y2: 250, Direction: "horizontal"},
	{Name: "Taylor St", X1: 200, Y1: 350, X2: 800, Y2: 350, Direction: "horizontal"},
}

var mapLandmarks = []MapLandmark{
	{Key: "quad", X: 450, Y: 200, Width: 120, Height: 90, Label: "The Quad"},
}

// GetBuildingStyle returns the plot color and label for a building key.
func GetBuildingStyle(key string) (BuildingStyle, bool) {
	r, ok := mapRects[key]
	if !ok {
		return BuildingStyle{}, false
	}
	return BuildingStyle{Color: r.Color, Label: r.Label}, true
}

// CampusMapModel assembles the render model, optionally highlighting one
// building. Unknown highlight keys are passed through as empty.
func CampusMapModel(highlight string) MapModel {
	m := MapModel{
		Width:   900,
		Height:  450,
		Streets: append([]MapStreet(nil), mapStreets...),
	}
	m.Landmarks = append(m.Landmarks, mapLandmarks...)
	for _, key := range BuildingKeys() {
		if r, ok := mapRects[key]; ok {
			m.Buildings = append(m.Buildings, r)
		}
	}
	if _, ok := mapRects[highlight]; ok {
		m.Highlight = highlight
	}
	return m
}
