package wizard

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

const (
	FieldCategory      = "category"
	FieldLocation      = "location"
	FieldGuestCount    = "guestCount"
	FieldRoomCount     = "roomCount"
	FieldBathroomCount = "bathroomCount"
	FieldImageSrc      = "imageSrc"
	FieldTitle         = "title"
	FieldDescription   = "description"
	FieldPrice         = "price"
)

var (
	ErrUnknownField = errors.New("unknown draft field")
	ErrFieldType    = errors.New("invalid value type for draft field")
)

// Location is the place picked on the location step. Value is the country
// code the listing is stored under.
type Location struct {
	Value  string     `json:"value"`
	Label  string     `json:"label"`
	Flag   string     `json:"flag,omitempty"`
	Region string     `json:"region,omitempty"`
	LatLng [2]float64 `json:"latlng"`
}

// Draft is the listing a host is composing. It lives only as long as the
// wizard session that owns it.
type Draft struct {
	Category      string    `json:"category"`
	Location      *Location `json:"location"`
	GuestCount    int       `json:"guestCount"`
	RoomCount     int       `json:"roomCount"`
	BathroomCount int       `json:"bathroomCount"`
	ImageSrc      string    `json:"imageSrc"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Price         int       `json:"price"`
}

// NewDraft returns a draft holding the wizard defaults.
func NewDraft() Draft {
	return Draft{
		GuestCount:    1,
		RoomCount:     1,
		BathroomCount: 1,
		Price:         1,
	}
}

// FieldNames lists every settable field.
func FieldNames() []string {
	return []string{
		FieldCategory, FieldLocation, FieldGuestCount, FieldRoomCount,
		FieldBathroomCount, FieldImageSrc, FieldTitle, FieldDescription, FieldPrice,
	}
}

// Clone returns a copy that shares no memory with d.
func (d Draft) Clone() Draft {
	if d.Location != nil {
		loc := *d.Location
		d.Location = &loc
	}
	return d
}

// Set writes a single field. Integer fields accept any integral number.
func (d *Draft) Set(name string, value any) error {
	switch name {
	case FieldCategory, FieldImageSrc, FieldTitle, FieldDescription:
		s, ok := value.(string)
		if !ok {
			return fieldTypeError(name, value)
		}
		switch name {
		case FieldCategory:
			d.Category = s
		case FieldImageSrc:
			d.ImageSrc = s
		case FieldTitle:
			d.Title = s
		default:
			d.Description = s
		}
	case FieldLocation:
		switch v := value.(type) {
		case nil:
			d.Location = nil
		case Location:
			d.Location = &v
		case *Location:
			if v == nil {
				d.Location = nil
				return nil
			}
			loc := *v
			d.Location = &loc
		default:
			return fieldTypeError(name, value)
		}
	case FieldGuestCount, FieldRoomCount, FieldBathroomCount, FieldPrice:
		n, ok := toInt(value)
		if !ok {
			return fieldTypeError(name, value)
		}
		switch name {
		case FieldGuestCount:
			d.GuestCount = n
		case FieldRoomCount:
			d.RoomCount = n
		case FieldBathroomCount:
			d.BathroomCount = n
		default:
			d.Price = n
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// Get reads a single field.
func (d Draft) Get(name string) (any, bool) {
	switch name {
	case FieldCategory:
		return d.Category, true
	case FieldLocation:
		if d.Location == nil {
			return nil, true
		}
		return *d.Location, true
	case FieldGuestCount:
		return d.GuestCount, true
	case FieldRoomCount:
		return d.RoomCount, true
	case FieldBathroomCount:
		return d.BathroomCount, true
	case FieldImageSrc:
		return d.ImageSrc, true
	case FieldTitle:
		return d.Title, true
	case FieldDescription:
		return d.Description, true
	case FieldPrice:
		return d.Price, true
	}
	return nil, false
}

// DecodeField turns a raw JSON value into the Go type Set expects for name.
func DecodeField(name string, raw json.RawMessage) (any, error) {
	switch name {
	case FieldCategory, FieldImageSrc, FieldTitle, FieldDescription:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrFieldType, name, err)
		}
		return s, nil
	case FieldLocation:
		var loc *Location
		if err := json.Unmarshal(raw, &loc); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrFieldType, name, err)
		}
		return loc, nil
	case FieldGuestCount, FieldRoomCount, FieldBathroomCount, FieldPrice:
		var f float64
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrFieldType, name, err)
		}
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// toInt accepts whole numbers that fit in an int32, so whatever is stored
// reads back unchanged on every platform.
func toInt(value any) (int, bool) {
	var n int64
	switch v := value.(type) {
	case int:
		n = int64(v)
	case int32:
		n = int64(v)
	case int64:
		n = v
	case float64:
		if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
			return 0, false
		}
		n = int64(v)
	case json.Number:
		var err error
		if n, err = v.Int64(); err != nil {
			return 0, false
		}
	default:
		return 0, false
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, false
	}
	return int(n), true
}

func fieldTypeError(name string, value any) error {
	return fmt.Errorf("%w: %s got %T", ErrFieldType, name, value)
}
