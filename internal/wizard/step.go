package wizard

// Step is one page of the listing creation wizard. Steps are totally ordered
// and the wizard only ever moves one step at a time.
type Step int

const (
	StepCategory Step = iota
	StepLocation
	StepBasicInfo
	StepImages
	StepDescription
	StepPrice
)

const (
	FirstStep = StepCategory
	LastStep  = StepPrice
)

const (
	LabelNext   = "Next"
	LabelCreate = "Create"
	LabelBack   = "Back"
)

var stepNames = map[Step]string{
	StepCategory:    "category",
	StepLocation:    "location",
	StepBasicInfo:   "info",
	StepImages:      "images",
	StepDescription: "description",
	StepPrice:       "price",
}

// Steps returns every step in wizard order.
func Steps() []Step {
	return []Step{StepCategory, StepLocation, StepBasicInfo, StepImages, StepDescription, StepPrice}
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

func (s Step) IsFirst() bool { return s == FirstStep }

func (s Step) IsLast() bool { return s == LastStep }

// Next returns the following step, or false at the terminal step.
func (s Step) Next() (Step, bool) {
	if s >= LastStep {
		return s, false
	}
	return s + 1, true
}

// Prev returns the preceding step, or false at the initial step.
func (s Step) Prev() (Step, bool) {
	if s <= FirstStep {
		return s, false
	}
	return s - 1, true
}

// PrimaryLabel is "Create" on the terminal step and "Next" everywhere else.
// It always agrees with what Controller.Submit does on that step.
func PrimaryLabel(s Step) string {
	if s.IsLast() {
		return LabelCreate
	}
	return LabelNext
}

// SecondaryLabel reports the back button label. The initial step has none.
func SecondaryLabel(s Step) (string, bool) {
	if s.IsFirst() {
		return "", false
	}
	return LabelBack, true
}
