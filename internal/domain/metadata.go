package domain

import "encoding/json"

var metadataKnownKeys = map[string]struct{}{
	"mapCenter":    {},
	"zoom":         {},
	"currentLayer": {},
}

func (m Metadata) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(m.Extra)+3)
	for k, v := range m.Extra {
		if _, known := metadataKnownKeys[k]; !known {
			out[k] = v
		}
	}
	if m.MapCenter != nil {
		out["mapCenter"] = m.MapCenter
	}
	if m.Zoom != nil {
		out["zoom"] = *m.Zoom
	}
	if m.CurrentLayer != "" {
		out["currentLayer"] = m.CurrentLayer
	}
	return json.Marshal(out)
}

func (m *Metadata) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*m = Metadata{}
	for k, v := range raw {
		switch k {
		case "mapCenter":
			var c LatLng
			if err := json.Unmarshal(v, &c); err != nil {
				return err
			}
			m.MapCenter = &c
		case "zoom":
			var z float64
			if err := json.Unmarshal(v, &z); err != nil {
				return err
			}
			m.Zoom = &z
		case "currentLayer":
			if err := json.Unmarshal(v, &m.CurrentLayer); err != nil {
				return err
			}
		default:
			var anyVal any
			if err := json.Unmarshal(v, &anyVal); err != nil {
				return err
			}
			if m.Extra == nil {
				m.Extra = make(map[string]any)
			}
			m.Extra[k] = anyVal
		}
	}
	return nil
}
