// Package symbols holds the closed catalog of incident types placed on a
// sketch and the pure mapping from an incident's state to its glyph.
package symbols

import (
	"sort"
	"strings"
)

type Type string

const (
	Car        Type = "car"
	Truck      Type = "truck"
	Bus        Type = "bus"
	Motorcycle Type = "motorcycle"
	Bicycle    Type = "bicycle"
	Van        Type = "van"
	Tractor    Type = "tractor"

	Police    Type = "police"
	Ambulance Type = "ambulance"
	FireTruck Type = "fire_truck"

	Pedestrian    Type = "pedestrian"
	CyclistPerson Type = "cyclist_person"
	Group         Type = "group"

	TrafficLight Type = "traffic_light"
	Cone         Type = "cone"
	Barrier      Type = "barrier"
	Tree         Type = "tree"
	Pole         Type = "pole"

	StopSign    Type = "stop_sign"
	YieldSign   Type = "yield_sign"
	SpeedSign   Type = "speed_sign"
	NoEntrySign Type = "no_entry_sign"

	ArrowStraight Type = "arrow_straight"
	ArrowLeft     Type = "arrow_left"
	ArrowRight    Type = "arrow_right"
	ArrowUTurn    Type = "arrow_u_turn"

	Text Type = "text"
)

type Category string

const (
	CategoryVehicles  Category = "vehicles"
	CategoryEmergency Category = "emergency"
	CategoryPeople    Category = "people"
	CategoryRoad      Category = "road"
	CategorySigns     Category = "signs"
	CategoryArrows    Category = "arrows"
	CategoryText      Category = "text"
	// CategoryDrawing has no symbols. Selecting it switches the editor into
	// freehand drawing instead of arming a tool.
	CategoryDrawing Category = "drawing"
)

// Categories in toolbar order.
var Categories = []Category{
	CategoryVehicles,
	CategoryEmergency,
	CategoryPeople,
	CategoryRoad,
	CategorySigns,
	CategoryArrows,
	CategoryText,
	CategoryDrawing,
}

// Entry describes how one type is presented.
type Entry struct {
	Type     Type     `json:"type"`
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Icon     string   `json:"icon"`
	Fallback string   `json:"fallback"`
	Width    float64  `json:"width"`
	Height   float64  `json:"height"`
	// HitRadius is the screen distance in pixels, at scale 1, within which
	// a pointer event selects an incident of this type.
	HitRadius float64 `json:"hit_radius"`
	Color     string  `json:"color"`
	// Directional entries draw a heading notch so rotation is visible.
	Directional bool `json:"directional"`
}

const DefaultText = "Text"

var catalog = map[Type]Entry{
	Car:        vehicle(Car, "Car", "🚗", 24, 44, "#1e88e5"),
	Truck:      vehicle(Truck, "Truck", "🚚", 28, 64, "#3949ab"),
	Bus:        vehicle(Bus, "Bus", "🚌", 28, 70, "#00897b"),
	Motorcycle: vehicle(Motorcycle, "Motorcycle", "🏍", 14, 30, "#6d4c41"),
	Bicycle:    vehicle(Bicycle, "Bicycle", "🚲", 12, 28, "#7cb342"),
	Van:        vehicle(Van, "Van", "🚐", 26, 50, "#5e35b1"),
	Tractor:    vehicle(Tractor, "Tractor", "🚜", 28, 48, "#f9a825"),

	Police:    emergency(Police, "Police", "🚓", "#0d47a1"),
	Ambulance: emergency(Ambulance, "Ambulance", "🚑", "#c62828"),
	FireTruck: emergency(FireTruck, "Fire truck", "🚒", "#d84315"),

	Pedestrian:    person(Pedestrian, "Pedestrian", "🚶"),
	CyclistPerson: person(CyclistPerson, "Cyclist", "🚴"),
	Group:         person(Group, "Group of people", "👥"),

	TrafficLight: road(TrafficLight, "Traffic light", "🚦", "#424242"),
	Cone:         road(Cone, "Traffic cone", "▲", "#ff6f00"),
	Barrier:      road(Barrier, "Barrier", "▬", "#e53935"),
	Tree:         road(Tree, "Tree", "🌳", "#2e7d32"),
	Pole:         road(Pole, "Pole", "●", "#616161"),

	StopSign:    sign(StopSign, "Stop sign", "⛔", "#c62828"),
	YieldSign:   sign(YieldSign, "Yield sign", "▽", "#e53935"),
	SpeedSign:   sign(SpeedSign, "Speed limit sign", "⓹", "#b71c1c"),
	NoEntrySign: sign(NoEntrySign, "No entry sign", "⊖", "#d32f2f"),

	ArrowStraight: arrow(ArrowStraight, "Arrow straight", "↑"),
	ArrowLeft:     arrow(ArrowLeft, "Arrow left", "↰"),
	ArrowRight:    arrow(ArrowRight, "Arrow right", "↱"),
	ArrowUTurn:    arrow(ArrowUTurn, "U-turn arrow", "↶"),

	Text: {
		Type:      Text,
		Category:  CategoryText,
		Label:     "Text",
		Icon:      "",
		Fallback:  "T",
		Width:     80,
		Height:    24,
		HitRadius: 40,
		Color:     "#000000",
	},
}

func vehicle(t Type, label, fallback string, w, h float64, color string) Entry {
	return Entry{Type: t, Category: CategoryVehicles, Label: label, Icon: iconPath(t), Fallback: fallback,
		Width: w, Height: h, HitRadius: h / 2, Color: color, Directional: true}
}

func emergency(t Type, label, fallback, color string) Entry {
	return Entry{Type: t, Category: CategoryEmergency, Label: label, Icon: iconPath(t), Fallback: fallback,
		Width: 26, Height: 52, HitRadius: 26, Color: color, Directional: true}
}

func person(t Type, label, fallback string) Entry {
	return Entry{Type: t, Category: CategoryPeople, Label: label, Icon: iconPath(t), Fallback: fallback,
		Width: 16, Height: 16, HitRadius: 12, Color: "#8e24aa", Directional: true}
}

func road(t Type, label, fallback, color string) Entry {
	return Entry{Type: t, Category: CategoryRoad, Label: label, Icon: iconPath(t), Fallback: fallback,
		Width: 16, Height: 16, HitRadius: 12, Color: color}
}

func sign(t Type, label, fallback, color string) Entry {
	return Entry{Type: t, Category: CategorySigns, Label: label, Icon: iconPath(t), Fallback: fallback,
		Width: 22, Height: 22, HitRadius: 14, Color: color}
}

func arrow(t Type, label, fallback string) Entry {
	return Entry{Type: t, Category: CategoryArrows, Label: label, Icon: iconPath(t), Fallback: fallback,
		Width: 16, Height: 48, HitRadius: 24, Color: "#212121", Directional: true}
}

func iconPath(t Type) string {
	return "/icons/" + string(t) + ".svg"
}

// Lookup returns the catalog entry for t.
func Lookup(t Type) (Entry, bool) {
	en, ok := catalog[t]
	return en, ok
}

func Valid(tag string) bool {
	_, ok := catalog[Type(tag)]
	return ok
}

// Parse converts a persisted tag into a Type.
func Parse(tag string) (Type, bool) {
	t := Type(tag)
	_, ok := catalog[t]
	return t, ok
}

// InCategory returns the entries of c sorted by label.
func InCategory(c Category) []Entry {
	var out []Entry
	for _, en := range catalog {
		if en.Category == c {
			out = append(out, en)
		}
	}
	sortByLabel(out)
	return out
}

// All returns every entry, grouped in toolbar category order.
func All() []Entry {
	out := make([]Entry, 0, len(catalog))
	for _, c := range Categories {
		out = append(out, InCategory(c)...)
	}
	return out
}

// Filter returns entries of c whose label or tag contains query, ignoring
// case. An empty category searches the whole catalog.
func Filter(c Category, query string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	var src []Entry
	if c == "" {
		src = All()
	} else {
		src = InCategory(c)
	}
	if q == "" {
		return src
	}
	out := src[:0:0]
	for _, en := range src {
		if strings.Contains(strings.ToLower(en.Label), q) || strings.Contains(string(en.Type), q) {
			out = append(out, en)
		}
	}
	return out
}

func sortByLabel(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Label == entries[j].Label {
			return entries[i].Type < entries[j].Type
		}
		return entries[i].Label < entries[j].Label
	})
}
