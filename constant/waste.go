package constant

// WasteType classifies a collection record.
type WasteType string

const (
	WasteOrganic   WasteType = "Organic"
	WasteInorganic WasteType = "Inorganic"
	WasteMixed     WasteType = "Mixed"
)

func (w WasteType) Valid() bool {
	switch w {
	case WasteOrganic, WasteInorganic, WasteMixed:
		return true
	}
	return false
}
