package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSteps_Order(t *testing.T) {
	steps := Steps()

	assert.Len(t, steps, 6)
	assert.Equal(t, FirstStep, steps[0])
	assert.Equal(t, LastStep, steps[len(steps)-1])
	for i := 1; i < len(steps); i++ {
		next, ok := steps[i-1].Next()
		assert.True(t, ok)
		assert.Equal(t, steps[i], next)
		prev, ok := steps[i].Prev()
		assert.True(t, ok)
		assert.Equal(t, steps[i-1], prev)
	}
}

func TestStep_Boundaries(t *testing.T) {
	_, ok := StepPrice.Next()
	assert.False(t, ok)
	_, ok = StepCategory.Prev()
	assert.False(t, ok)
	assert.False(t, Step(9).Valid())
	assert.Equal(t, "unknown", Step(9).String())
}

func TestLabels(t *testing.T) {
	for _, s := range Steps() {
		label, ok := SecondaryLabel(s)
		if s == StepCategory {
			assert.False(t, ok)
			assert.Empty(t, label)
		} else {
			assert.True(t, ok)
			assert.Equal(t, LabelBack, label)
		}

		if s == StepPrice {
			assert.Equal(t, LabelCreate, PrimaryLabel(s))
		} else {
			assert.Equal(t, LabelNext, PrimaryLabel(s))
		}
	}
}

func TestDescribe(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Steps() {
		d := Describe(s)
		assert.Equal(t, s, d.Step)
		assert.NotEmpty(t, d.Title)
		assert.NotEmpty(t, d.Input)
		for _, f := range d.Fields {
			assert.False(t, seen[f], "field %s rendered twice", f)
			seen[f] = true
		}
	}
	assert.Len(t, seen, len(FieldNames()))

	d := Describe(StepCategory)
	d.Fields[0] = "mutated"
	assert.Equal(t, FieldCategory, Describe(StepCategory).Fields[0])
}
