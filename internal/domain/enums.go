package domain

import "strings"

// Outcome is the classified type of a submitted entry.
type Outcome string

const (
	OutcomeDream    Outcome = "dream"
	OutcomeQuestion Outcome = "question"
	OutcomeDecline  Outcome = "decline"
)

func (o Outcome) String() string { return string(o) }

func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeDream, OutcomeQuestion, OutcomeDecline:
		return true
	}
	return false
}

// Tone is one of the fixed style labels a dream analysis is tagged with.
type Tone string

const (
	TonePeaceful    Tone = "Peaceful / gentle"
	ToneEpic        Tone = "Epic / heroic"
	ToneWhimsical   Tone = "Whimsical / surreal"
	ToneNightmarish Tone = "Nightmarish / dark"
	ToneRomantic    Tone = "Romantic / nostalgic"
	ToneAncient     Tone = "Ancient / mythic"
	ToneFuturistic  Tone = "Futuristic / uncanny"
	ToneElegant     Tone = "Elegant / ornate"
)

// Tones lists every tone label in display order.
var Tones = []Tone{
	TonePeaceful, ToneEpic, ToneWhimsical, ToneNightmarish,
	ToneRomantic, ToneAncient, ToneFuturistic, ToneElegant,
}

func (t Tone) String() string { return string(t) }

func (t Tone) IsValid() bool {
	for _, v := range Tones {
		if v == t {
			return true
		}
	}
	return false
}

// ParseTone matches a free-form tone label against the known tones.
// Matching ignores case and the spacing around the slash, so "epic/heroic"
// resolves to ToneEpic. Unknown labels return false.
func ParseTone(s string) (Tone, bool) {
	key := toneKey(s)
	if key == "" {
		return "", false
	}
	for _, t := range Tones {
		if toneKey(string(t)) == key {
			return t, true
		}
	}
	return "", false
}

func toneKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r == ' ' || r == '\t' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CreditKind identifies one of the two independently metered quotas.
type CreditKind string

const (
	CreditText  CreditKind = "text"
	CreditImage CreditKind = "image"
)

func (k CreditKind) String() string { return string(k) }

// Tier is the entitlement tier reported by the entitlement source.
type Tier string

const (
	TierFree  Tier = "free"
	TierTrial Tier = "trial"
	TierPro   Tier = "pro"
)

func (t Tier) String() string { return string(t) }

// Entitled reports whether the tier bypasses quota gating.
func (t Tier) Entitled() bool {
	return t == TierPro || t == TierTrial
}
