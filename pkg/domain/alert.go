package domain

// AlertSubscription is a subscriber's filter criteria and delivery targets.
// At least one of Email and WebhookURL is expected to be set.
type AlertSubscription struct {
	ID int64 `json:"id"`
	// Email receives the HTML digest when set.
	Email string `json:"email,omitempty"`
	// WebhookURL receives the JSON digest when set.
	WebhookURL string `json:"webhookUrl,omitempty"`

	// MinQualityScore is the inclusive lower bound on TotalScore.
	MinQualityScore float64 `json:"minQualityScore"`
	// MinDomainAge and MaxDomainAge bound AgeDays, both inclusive.
	MinDomainAge int `json:"minDomainAge"`
	MaxDomainAge int `json:"maxDomainAge"`
	// MinBacklinks is the inclusive lower bound on BacklinkCount.
	MinBacklinks int `json:"minBacklinks"`
}

// Matches reports whether rec satisfies every threshold of the subscription.
func (s AlertSubscription) Matches(rec DomainRecord) bool {
	if rec.Score.TotalScore < s.MinQualityScore {
		return false
	}
	age := rec.Enrichment.AgeDays
	if age < s.MinDomainAge || age > s.MaxDomainAge {
		return false
	}

	return rec.Enrichment.BacklinkCount >= s.MinBacklinks
}
