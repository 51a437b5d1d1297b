// internal/form/form.go
package form

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/unclebandit/campaign-planner/internal/api"
	"github.com/unclebandit/campaign-planner/internal/model"
)

// ValidationError reports the exact required fields still empty, so the
// caller can render targeted per-field errors instead of a blanket message.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// StrategyLister is the one backend operation the form needs.
type StrategyLister interface {
	ListStrategies(ctx context.Context) ([]model.Strategy, error)
}

// Form holds the state of one campaign plan dialog: nine enumerated choices
// plus the scalar fields. Each dialog owns its own Form; nothing is shared.
type Form struct {
	CampaignID string // empty until the campaign is persisted

	Goal         FieldChoice
	Audience     FieldChoice
	Platform     FieldChoice
	Tone         FieldChoice
	PostLength   FieldChoice
	BrandVoice   FieldChoice
	CallToAction FieldChoice
	Offer        FieldChoice
	PainPoint    FieldChoice

	Name       string
	Budget     string // raw user text, coerced on submit
	StrategyID string
	Hashtags   string
}

// New returns a fresh form with the same defaults the create dialog opens
// with.
func New() *Form {
	return &Form{
		Goal:         NewFieldChoice(CampaignGoals, ""),
		Audience:     NewFieldChoice(Audiences, ""),
		Platform:     NewFieldChoice(Platforms, "Facebook"),
		Tone:         NewFieldChoice(Tones, "Neutral"),
		PostLength:   NewFieldChoice(PostLengths, "Short"),
		BrandVoice:   NewFieldChoice(BrandVoices, "Professional"),
		CallToAction: NewFieldChoice(CallToActions, "Learn more"),
		Offer:        NewFieldChoice(Offers, ""),
		PainPoint:    NewFieldChoice(PainPoints, ""),
	}
}

// FromRecord seeds a form from a persisted campaign for editing. Each
// choice re-derives its enum/"Other" split against its own allowed list.
func FromRecord(c *model.Campaign) *Form {
	f := New()
	f.CampaignID = c.ID
	f.Name = c.Name
	f.Budget = strconv.Itoa(c.Budget)
	f.StrategyID = c.StrategyID
	f.Hashtags = c.Hashtags
	f.Goal.SeedFrom(c.Goal)
	f.Audience.SeedFrom(c.Audience)
	f.Platform.SeedFrom(c.Platform)
	f.Tone.SeedFrom(c.Tone)
	f.PostLength.SeedFrom(c.PostLength)
	f.BrandVoice.SeedFrom(c.BrandVoiceNotes)
	f.CallToAction.SeedFrom(c.CallToAction)
	f.Offer.SeedFrom(c.Offer)
	f.PainPoint.SeedFrom(c.PainPoint)
	return f
}

func (f *Form) choice(field string) *FieldChoice {
	switch field {
	case FieldGoal:
		return &f.Goal
	case FieldAudience:
		return &f.Audience
	case FieldPlatform:
		return &f.Platform
	case FieldTone:
		return &f.Tone
	case FieldPostLength:
		return &f.PostLength
	case FieldBrandVoice:
		return &f.BrandVoice
	case FieldCallToAction:
		return &f.CallToAction
	case FieldOffer:
		return &f.Offer
	case FieldPainPoint:
		return &f.PainPoint
	}
	return nil
}

// Set routes a raw user value to the right choice or scalar. Unknown field
// names are ignored, matching how the dialog only wires known inputs.
func (f *Form) Set(field, value string) {
	if c := f.choice(field); c != nil {
		c.Set(value)
		return
	}
	switch field {
	case FieldName:
		f.Name = value
	case FieldBudget:
		f.Budget = value
	case FieldStrategyID:
		f.StrategyID = value
	case FieldHashtags:
		f.Hashtags = value
	}
}

// SetCustom routes free text into a choice's "Other" branch.
func (f *Form) SetCustom(field, text string) {
	if c := f.choice(field); c != nil {
		c.SetCustom(text)
	}
}

// Validate returns the names of required fields currently empty or
// unresolved. An empty slice means the form can build a payload.
func (f *Form) Validate() []string {
	var missing []string
	if strings.TrimSpace(f.Name) == "" {
		missing = append(missing, FieldName)
	}
	if f.Goal.Empty() {
		missing = append(missing, FieldGoal)
	}
	if f.Audience.Empty() {
		missing = append(missing, FieldAudience)
	}
	if strings.TrimSpace(f.Budget) == "" {
		missing = append(missing, FieldBudget)
	} else if _, err := strconv.Atoi(strings.TrimSpace(f.Budget)); err != nil {
		missing = append(missing, FieldBudget)
	}
	if strings.TrimSpace(f.StrategyID) == "" {
		missing = append(missing, FieldStrategyID)
	}
	return missing
}

// Payload resolves every choice into the flat submission payload. It fails
// with a ValidationError when required fields are missing; callers must not
// send an unvalidated form to the backend.
func (f *Form) Payload() (api.CampaignPayload, error) {
	if missing := f.Validate(); len(missing) > 0 {
		return api.CampaignPayload{}, &ValidationError{Missing: missing}
	}
	budget, err := strconv.Atoi(strings.TrimSpace(f.Budget))
	if err != nil {
		return api.CampaignPayload{}, &ValidationError{Missing: []string{FieldBudget}}
	}
	if budget < 0 {
		return api.CampaignPayload{}, &ValidationError{Missing: []string{FieldBudget}}
	}
	return api.CampaignPayload{
		Name:            strings.TrimSpace(f.Name),
		Goal:            f.Goal.Resolve(),
		Audience:        f.Audience.Resolve(),
		Platform:        f.Platform.Resolve(),
		Tone:            f.Tone.Resolve(),
		PostLength:      f.PostLength.Resolve(),
		BrandVoiceNotes: f.BrandVoice.Resolve(),
		CallToAction:    f.CallToAction.Resolve(),
		Offer:           f.Offer.Resolve(),
		PainPoint:       f.PainPoint.Resolve(),
		Hashtags:        f.Hashtags,
		Budget:          budget,
		StrategyID:      f.StrategyID,
	}, nil
}

// LoadStrategies fetches the linkable strategies and, when the form has no
// selection yet, defaults to the first one. An explicit prior selection
// (editing an existing record) is never overridden.
func (f *Form) LoadStrategies(ctx context.Context, client StrategyLister) ([]model.Strategy, error) {
	strategies, err := client.ListStrategies(ctx)
	if err != nil {
		return nil, err
	}
	if f.StrategyID == "" && len(strategies) > 0 {
		f.StrategyID = strategies[0].ID
	}
	return strategies, nil
}
