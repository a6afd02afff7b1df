package editor

import "github.com/jonathan/resume-studio/internal/schema"

// Stepper walks the ordered sequence {basics, ...enabledSections} for
// wizard-style flows. Stepping past either end is a no-op, never an
// error, so callers can wire it to unguarded next/back inputs.
type Stepper struct {
	steps []schema.SectionKey
	idx   int
}

// NewStepper builds a stepper over basics followed by the given enabled
// section keys, positioned at basics.
func NewStepper(enabled []schema.SectionKey) *Stepper {
	steps := make([]schema.SectionKey, 0, len(enabled)+1)
	steps = append(steps, schema.KeyBasics)
	steps = append(steps, enabled...)
	return &Stepper{steps: steps}
}

// Current returns the step the wizard is on.
func (s *Stepper) Current() schema.SectionKey {
	return s.steps[s.idx]
}

// Index returns the zero-based position of the current step.
func (s *Stepper) Index() int { return s.idx }

// Len returns the total number of steps.
func (s *Stepper) Len() int { return len(s.steps) }

// Next advances one step, clamped at the last step.
func (s *Stepper) Next() {
	if s.idx < len(s.steps)-1 {
		s.idx++
	}
}

// Prev steps back, clamped at basics.
func (s *Stepper) Prev() {
	if s.idx > 0 {
		s.idx--
	}
}
