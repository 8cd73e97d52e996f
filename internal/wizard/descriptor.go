package wizard

type InputKind string

const (
	InputCategoryGrid  InputKind = "category_grid"
	InputCountrySelect InputKind = "country_select"
	InputCounters      InputKind = "counters"
	InputImageUpload   InputKind = "image_upload"
	InputText          InputKind = "text"
	InputPrice         InputKind = "price"
)

// Descriptor tells the presentation layer what to render for a step.
type Descriptor struct {
	Step     Step      `json:"-"`
	Name     string    `json:"name"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Input    InputKind `json:"input"`
	Fields   []string  `json:"fields"`
}

var descriptors = map[Step]Descriptor{
	StepCategory: {
		Title:    "Which of these best describes your place?",
		Subtitle: "Pick a category",
		Input:    InputCategoryGrid,
		Fields:   []string{FieldCategory},
	},
	StepLocation: {
		Title:    "Where is your place located?",
		Subtitle: "Help guests find you!",
		Input:    InputCountrySelect,
		Fields:   []string{FieldLocation},
	},
	StepBasicInfo: {
		Title:    "Share some basics about your place",
		Subtitle: "What amenities do you have?",
		Input:    InputCounters,
		Fields:   []string{FieldGuestCount, FieldRoomCount, FieldBathroomCount},
	},
	StepImages: {
		Title:    "Add a photo of your place",
		Subtitle: "Show guests what your place looks like!",
		Input:    InputImageUpload,
		Fields:   []string{FieldImageSrc},
	},
	StepDescription: {
		Title:    "How would you describe your place?",
		Subtitle: "Short and sweet works best!",
		Input:    InputText,
		Fields:   []string{FieldTitle, FieldDescription},
	},
	StepPrice: {
		Title:    "Now, set your price",
		Subtitle: "How much do you charge per night?",
		Input:    InputPrice,
		Fields:   []string{FieldPrice},
	},
}

// Describe maps a step to its rendering descriptor. Unknown steps yield a
// zero descriptor with only Step and Name set.
func Describe(s Step) Descriptor {
	d := descriptors[s]
	d.Step = s
	d.Name = s.String()
	d.Fields = append([]string(nil), d.Fields...)
	return d
}
