// internal/form/fields.go
package form

// Field names, also used as validation error keys.
const (
	FieldName         = "name"
	FieldGoal         = "goal"
	FieldAudience     = "audience"
	FieldPlatform     = "platform"
	FieldTone         = "tone"
	FieldPostLength   = "postLength"
	FieldBrandVoice   = "brandVoiceNotes"
	FieldCallToAction = "callToAction"
	FieldOffer        = "offer"
	FieldPainPoint    = "painPoint"
	FieldBudget       = "budget"
	FieldStrategyID   = "strategyId"
	FieldHashtags     = "hashtags"
)

// Canonical option lists, one per enumerated field. Each field applies its
// own list when seeding, so a value accepted by one enumeration still takes
// the "Other" branch in another.
var (
	Platforms     = []string{"Facebook", "Instagram", "Twitter", "LinkedIn", "TikTok", "Email"}
	PostLengths   = []string{"Short", "Medium", "Long"}
	Tones         = []string{"Neutral", "Friendly", "Professional", "Witty", "Urgent"}
	BrandVoices   = []string{"Professional", "Casual", "Witty", "Bold", "Inspirational", "Neutral"}
	CallToActions = []string{"Sign up now", "Learn more", "Try it free", "Get started today", "Book a demo", "Shop now"}
	CampaignGoals = []string{"Increase Brand Awareness", "Generate Leads", "Boost Engagement", "Drive Website Traffic", "Promote Product Launch", "Build Community", "Increase Sales"}
	Audiences     = []string{"Gen Z", "Millennials", "Parents", "Professionals", "Small Business Owners", "Students", "Retirees", "Investors"}
	PainPoints    = []string{"Low engagement on social media", "Lack of leads", "Low sales", "No brand awareness", "Poor traffic conversion"}
	Offers        = []string{"None", "Free trial", "20% off", "BOGO deal", "Exclusive access", "Free consultation", "Limited time offer", "Free shipping"}
)
