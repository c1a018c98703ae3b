package document

// Type tags the variant of a Layer.
type Type uint8

const (
	TypeBitmap Type = iota + 1
	TypeVector
	TypeCamera
	TypeSound
)

func (t Type) String() string {
	switch t {
	case TypeBitmap:
		return "Type(Bitmap)"
	case TypeVector:
		return "Type(Vector)"
	case TypeCamera:
		return "Type(Camera)"
	case TypeSound:
		return "Type(Sound)"
	}
	return "Type(UNKNOWN)"
}

// ParseType maps a lower-case layer kind name to its Type.
func ParseType(s string) (Type, bool) {
	switch s {
	case "bitmap":
		return TypeBitmap, true
	case "vector":
		return TypeVector, true
	case "camera":
		return TypeCamera, true
	case "sound":
		return TypeSound, true
	}
	return 0, false
}
