package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeedFromResolveRoundTrip(t *testing.T) {
	// Any raw value must survive seed-then-resolve, whether or not it is
	// part of the enumeration.
	cases := []string{
		"Facebook",
		"Email",
		"Mastodon",
		"Re-engage churned users",
		"",
	}
	for _, raw := range cases {
		c := NewFieldChoice(Platforms, "")
		c.SeedFrom(raw)
		assert.Equal(t, raw, c.Resolve(), "round trip for %q", raw)
	}
}

func TestSeedFromSplitsEnumAndCustom(t *testing.T) {
	c := NewFieldChoice(Tones, "")

	c.SeedFrom("Witty")
	assert.Equal(t, "Witty", c.Value)
	assert.Empty(t, c.Custom)

	c.SeedFrom("Sarcastic but kind")
	assert.Equal(t, Other, c.Value)
	assert.Equal(t, "Sarcastic but kind", c.Custom)
}

func TestSeedFromClearsStaleCustom(t *testing.T) {
	c := NewFieldChoice(Audiences, "")
	c.SeedFrom("Dog owners")
	assert.Equal(t, Other, c.Value)

	// Reloading with an enumerated value must not leak the old custom text.
	c.SeedFrom("Gen Z")
	assert.Equal(t, "Gen Z", c.Value)
	assert.Empty(t, c.Custom)
	assert.Equal(t, "Gen Z", c.Resolve())
}

func TestSeedingIsPerFieldAllowedList(t *testing.T) {
	// "Professional" is a valid tone and a valid brand voice, but not a
	// valid audience. Each field applies its own list.
	tone := NewFieldChoice(Tones, "")
	tone.SeedFrom("Professional")
	assert.Equal(t, "Professional", tone.Value)

	audience := NewFieldChoice(Audiences, "")
	audience.SeedFrom("Professional")
	assert.Equal(t, Other, audience.Value)
	assert.Equal(t, "Professional", audience.Custom)
}

func TestSetClearsCustomWhenLeavingOther(t *testing.T) {
	c := NewFieldChoice(Offers, "")
	c.Set(Other)
	c.SetCustom("Founders discount")
	assert.Equal(t, "Founders discount", c.Resolve())

	c.Set("Free trial")
	assert.Empty(t, c.Custom)
	assert.Equal(t, "Free trial", c.Resolve())
}

func TestEmpty(t *testing.T) {
	c := NewFieldChoice(CampaignGoals, "")
	assert.True(t, c.Empty())

	c.Set(Other)
	assert.True(t, c.Empty(), "Other with no custom text resolves to nothing")

	c.SetCustom("   ")
	assert.True(t, c.Empty(), "whitespace-only custom text is not submittable")

	c.SetCustom("Boost retention")
	assert.False(t, c.Empty())
}
