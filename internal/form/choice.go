// internal/form/choice.go
package form

import "strings"

// Other is the escape value that routes a field through its free-text
// custom value instead of the enumeration.
const Other = "Other"

// FieldChoice is one configurable campaign attribute: a closed enumeration
// plus an "Other" escape backed by free text. The same struct serves every
// enumerated field; only the allowed list differs.
type FieldChoice struct {
	Allowed []string
	Value   string
	Custom  string
}

func NewFieldChoice(allowed []string, defaultValue string) FieldChoice {
	return FieldChoice{Allowed: allowed, Value: defaultValue}
}

// Resolve returns the effective scalar: Custom when Value is "Other",
// otherwise Value itself.
func (c FieldChoice) Resolve() string {
	if c.Value == Other {
		return c.Custom
	}
	return c.Value
}

// SeedFrom re-derives the Value/Custom split from a persisted scalar. A raw
// value found in this field's allowed list selects it directly and clears
// any stale custom text; anything else lands in the "Other" branch.
func (c *FieldChoice) SeedFrom(raw string) {
	if c.contains(raw) {
		c.Value = raw
		c.Custom = ""
		return
	}
	c.Value = Other
	c.Custom = raw
}

// Set updates the selected value. Switching away from "Other" clears the
// custom text so it cannot leak into a later resolve.
func (c *FieldChoice) Set(value string) {
	c.Value = value
	if value != Other {
		c.Custom = ""
	}
}

func (c *FieldChoice) SetCustom(text string) {
	c.Custom = text
}

// Empty reports whether the choice resolves to nothing submittable.
func (c FieldChoice) Empty() bool {
	return strings.TrimSpace(c.Resolve()) == ""
}

func (c FieldChoice) contains(v string) bool {
	for _, a := range c.Allowed {
		if a == v {
			return true
		}
	}
	return false
}
