package models

import "time"

// CompanyRating is one user's rating of a company. A user rates a company once.
type CompanyRating struct {
	ID                int64     `json:"id" db:"id"`
	UserID            int64     `json:"user_id" db:"user_id"`
	CompanyName       string    `json:"company_name" db:"company_name"`
	SafetyRating      float64   `json:"safety_rating" db:"safety_rating"`
	PayEqualityRating float64   `json:"pay_equality_rating" db:"pay_equality_rating"`
	CultureRating     float64   `json:"culture_rating" db:"culture_rating"`
	Comment           *string   `json:"comment" db:"comment"`
	IsAnonymous       bool      `json:"is_anonymous" db:"is_anonymous"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// Company is a registered employer.
type Company struct {
	ID                  int64     `json:"id" db:"id"`
	Name                string    `json:"name" db:"name"`
	Industry            string    `json:"industry" db:"industry"`
	EmployeeCount       *int      `json:"employee_count" db:"employee_count"`
	GenderEqualityScore float64   `json:"gender_equality_score" db:"gender_equality_score"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
}

// CompanySummary aggregates all ratings of one company, joined with its
// registry entry when the company is registered.
type CompanySummary struct {
	Name                string   `json:"name" db:"company_name"`
	Industry            *string  `json:"industry,omitempty" db:"industry"`
	EmployeeCount       *int     `json:"employee_count,omitempty" db:"employee_count"`
	GenderEqualityScore *float64 `json:"gender_equality_score,omitempty" db:"gender_equality_score"`
	TotalRatings        int      `json:"total_ratings" db:"total_ratings"`
	AvgSafety           float64  `json:"avg_safety" db:"avg_safety"`
	AvgPayEquality      float64  `json:"avg_pay_equality" db:"avg_pay_equality"`
	AvgCulture          float64  `json:"avg_culture" db:"avg_culture"`
}

// PayGap is the gender pay gap of a sector in a year.
type PayGap struct {
	ID               int64     `json:"id" db:"id"`
	Sector           string    `json:"sector" db:"sector"`
	Year             int       `json:"year" db:"year"`
	PayGapPercentage float64   `json:"pay_gap_percentage" db:"pay_gap_percentage"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// LeadershipStat is the share of women in leadership of a sector in a year.
type LeadershipStat struct {
	ID                int64     `json:"id" db:"id"`
	Sector            string    `json:"sector" db:"sector"`
	Year              int       `json:"year" db:"year"`
	WomenInLeadership float64   `json:"women_in_leadership" db:"women_in_leadership"`
	TotalPositions    int       `json:"total_positions" db:"total_positions"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// FieldRatio counts women and men working in a field.
type FieldRatio struct {
	ID         int64     `json:"id" db:"id"`
	FieldName  string    `json:"field_name" db:"field_name"`
	WomenCount int       `json:"women_count" db:"women_count"`
	MenCount   int       `json:"men_count" db:"men_count"`
	Year       int       `json:"year" db:"year"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Feedback is a visitor's suggestion, complaint or appreciation.
type Feedback struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	FeedbackType string    `json:"feedback_type" db:"feedback_type"`
	Message      string    `json:"message" db:"message"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// StatsFilter narrows equality statistics listings.
type StatsFilter struct {
	Sector string
	Field  string
	Type   string
	Year   *int
}

// Dashboard is the gender equality overview.
type Dashboard struct {
	GenderPayGap struct {
		Overall  float64            `json:"overall"`
		BySector map[string]float64 `json:"by_sector"`
	} `json:"gender_pay_gap"`
	LeadershipDiversity struct {
		WomenInLeadership float64            `json:"women_in_leadership"`
		BySector          map[string]float64 `json:"by_sector"`
	} `json:"leadership_diversity"`
	TopCompanies []CompanySummary `json:"top_companies"`
}

// GovernmentScheme is a public welfare scheme.
type GovernmentScheme struct {
	ID                 int64   `json:"id" db:"id"`
	Name               string  `json:"name" db:"name"`
	Description        string  `json:"description" db:"description"`
	Eligibility        string  `json:"eligibility" db:"eligibility"`
	ApplicationProcess string  `json:"application_process" db:"application_process"`
	ContactInfo        string  `json:"contact_info" db:"contact_info"`
	Location           *string `json:"location" db:"location"`
	Category           string  `json:"category" db:"category"`
}
