package postgres

import (
	"database/sql"
	"domainfinder/pkg/domain"
	"time"
)

// PgScores holds the score columns shared by domains and domain_scores.
type PgScores struct {
	AgeScore          float64 `db:"age_score"`
	BacklinkScore     float64 `db:"backlink_score"`
	AuthorityScore    float64 `db:"authority_score"`
	BrandabilityScore float64 `db:"brandability_score"`
	KeywordScore      float64 `db:"keyword_score"`
	TrafficScore      float64 `db:"traffic_score"`
	TLDScore          float64 `db:"tld_score"`
	TotalScore        float64 `db:"total_score"`
}

func (s PgScores) ToDomain() domain.ScoreBreakdown {
	return domain.ScoreBreakdown{
		AgeScore:          s.AgeScore,
		BacklinkScore:     s.BacklinkScore,
		AuthorityScore:    s.AuthorityScore,
		BrandabilityScore: s.BrandabilityScore,
		KeywordScore:      s.KeywordScore,
		TrafficScore:      s.TrafficScore,
		TLDScore:          s.TLDScore,
		TotalScore:        s.TotalScore,
	}
}

func pgScoresFromDomain(s domain.ScoreBreakdown) PgScores {
	return PgScores{
		AgeScore:          s.AgeScore,
		BacklinkScore:     s.BacklinkScore,
		AuthorityScore:    s.AuthorityScore,
		BrandabilityScore: s.BrandabilityScore,
		KeywordScore:      s.KeywordScore,
		TrafficScore:      s.TrafficScore,
		TLDScore:          s.TLDScore,
		TotalScore:        s.TotalScore,
	}
}

type PgDomain struct {
	ID int64 `db:"id" goqu:"skipinsert,skipupdate"`

	DomainName string `db:"domain_name"`
	TLD        string `db:"tld"`

	Registered         bool           `db:"registered"`
	RegisteredDate     sql.NullTime   `db:"registered_date"`
	Registrar          sql.NullString `db:"registrar"`
	DomainAgeDays      int            `db:"domain_age_days"`
	BacklinkCount      int            `db:"backlink_count"`
	EstimatedAuthority sql.NullInt32  `db:"estimated_authority"`
	SnapshotCount      int            `db:"snapshot_count"`
	FirstSeen          sql.NullTime   `db:"first_seen"`
	MonthlyVisitors    sql.NullInt64  `db:"monthly_visitors"`
	TrafficTrend       sql.NullString `db:"traffic_trend"`

	PgScores

	PriceLow   float64 `db:"price_low"`
	PriceHigh  float64 `db:"price_high"`
	ROIPercent float64 `db:"roi_percent"`
	Grade      string  `db:"grade"`

	LastChecked time.Time `db:"last_checked"`
	CreatedAt   time.Time `db:"created_at" goqu:"skipinsert,skipupdate"`
	UpdatedAt   time.Time `db:"updated_at" goqu:"skipinsert,skipupdate"`
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}

	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()

	return &v
}

func (p *PgDomain) ToDomain() *domain.DomainRecord {
	rec := &domain.DomainRecord{
		Key: domain.NewDomainKey(p.DomainName, p.TLD),
		Enrichment: domain.EnrichmentResult{
			Registered:     p.Registered,
			RegisteredDate: timePtr(p.RegisteredDate),
			Registrar:      p.Registrar.String,
			AgeDays:        p.DomainAgeDays,
			BacklinkCount:  p.BacklinkCount,
			SnapshotCount:  p.SnapshotCount,
			FirstSeen:      timePtr(p.FirstSeen),
		},
		Score: p.PgScores.ToDomain(),
		Valuation: domain.ValuationEstimate{
			PriceLow:   p.PriceLow,
			PriceHigh:  p.PriceHigh,
			ROIPercent: p.ROIPercent,
			Grade:      domain.Grade(p.Grade),
		},
		LastChecked: p.LastChecked,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.EstimatedAuthority.Valid {
		da := int(p.EstimatedAuthority.Int32)
		rec.Enrichment.EstimatedAuthority = &da
	}
	if p.MonthlyVisitors.Valid {
		rec.Enrichment.Traffic = &domain.Traffic{
			MonthlyVisitors: p.MonthlyVisitors.Int64,
			Trend:           p.TrafficTrend.String,
		}
	}

	return rec
}

func (p *PgDomain) FromDomain(rec domain.DomainRecord) {
	e := rec.Enrichment
	*p = PgDomain{
		DomainName:     rec.Key.Name,
		TLD:            rec.Key.TLD,
		Registered:     e.Registered,
		RegisteredDate: nullTime(e.RegisteredDate),
		Registrar: sql.NullString{
			String: e.Registrar,
			Valid:  e.Registrar != "",
		},
		DomainAgeDays: e.AgeDays,
		BacklinkCount: e.BacklinkCount,
		SnapshotCount: e.SnapshotCount,
		FirstSeen:     nullTime(e.FirstSeen),
		PgScores:      pgScoresFromDomain(rec.Score),
		PriceLow:      rec.Valuation.PriceLow,
		PriceHigh:     rec.Valuation.PriceHigh,
		ROIPercent:    rec.Valuation.ROIPercent,
		Grade:         string(rec.Valuation.Grade),
		LastChecked:   rec.LastChecked,
	}
	if e.EstimatedAuthority != nil {
		p.EstimatedAuthority = sql.NullInt32{Int32: int32(*e.EstimatedAuthority), Valid: true} //nolint: gosec
	}
	if e.Traffic != nil {
		p.MonthlyVisitors = sql.NullInt64{Int64: e.Traffic.MonthlyVisitors, Valid: true}
		p.TrafficTrend = sql.NullString{String: e.Traffic.Trend, Valid: e.Traffic.Trend != ""}
	}
	if p.Grade == "" {
		p.Grade = string(domain.GradeF)
	}
}

// pgUpsertedDomain is a domains row plus whether the upsert inserted it.
type pgUpsertedDomain struct {
	PgDomain
	Inserted bool `db:"inserted"`
}

type PgScoreHistory struct {
	ID       int64 `db:"id" goqu:"skipinsert"`
	DomainID int64 `db:"domain_id"`

	PgScores

	CalculatedAt time.Time `db:"calculated_at"`
}

func (p *PgScoreHistory) ToDomain(key domain.DomainKey) domain.ScoreHistoryEntry {
	return domain.ScoreHistoryEntry{
		ID:           p.ID,
		Key:          key,
		Score:        p.PgScores.ToDomain(),
		CalculatedAt: p.CalculatedAt,
	}
}

type PgSubscription struct {
	ID int64 `db:"id" goqu:"skipinsert"`

	Email      sql.NullString `db:"email"`
	WebhookURL sql.NullString `db:"webhook_url"`

	MinQualityScore float64 `db:"min_quality_score"`
	MinDomainAge    int     `db:"min_domain_age"`
	MaxDomainAge    int     `db:"max_domain_age"`
	MinBacklinks    int     `db:"min_backlinks"`
	Enabled         bool    `db:"enabled"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgSubscription) ToDomain() domain.AlertSubscription {
	return domain.AlertSubscription{
		ID:              p.ID,
		Email:           p.Email.String,
		WebhookURL:      p.WebhookURL.String,
		MinQualityScore: p.MinQualityScore,
		MinDomainAge:    p.MinDomainAge,
		MaxDomainAge:    p.MaxDomainAge,
		MinBacklinks:    p.MinBacklinks,
	}
}

func (p *PgSubscription) FromDomain(sub domain.AlertSubscription) {
	*p = PgSubscription{
		Email:           sql.NullString{String: sub.Email, Valid: sub.Email != ""},
		WebhookURL:      sql.NullString{String: sub.WebhookURL, Valid: sub.WebhookURL != ""},
		MinQualityScore: sub.MinQualityScore,
		MinDomainAge:    sub.MinDomainAge,
		MaxDomainAge:    sub.MaxDomainAge,
		MinBacklinks:    sub.MinBacklinks,
		Enabled:         true,
	}
}
