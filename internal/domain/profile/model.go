package profile

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Plan string

const (
	PlanFree       Plan = "free"
	PlanPro        Plan = "pro"
	PlanEnterprise Plan = "enterprise"
)

// DefaultCreditsLimit - месячный лимит кредитов бесплатного тарифа.
const DefaultCreditsLimit = 100

// Profile - публичные данные пользователя и учет израсходованных кредитов.
type Profile struct {
	ID           uuid.UUID `json:"id"`
	Username     *string   `json:"username,omitempty"`
	FullName     *string   `json:"full_name,omitempty"`
	AvatarURL    *string   `json:"avatar_url,omitempty"`
	PlanType     Plan      `json:"plan_type"`
	CreditsUsed  int       `json:"credits_used"`
	CreditsLimit int       `json:"credits_limit"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UsagePercent - доля израсходованных кредитов, округленная до целого.
func (p Profile) UsagePercent() int {
	if p.CreditsLimit <= 0 {
		return 0
	}
	return int(math.Round(float64(p.CreditsUsed) / float64(p.CreditsLimit) * 100))
}

func (p Profile) DisplayName() string {
	if p.FullName != nil && *p.FullName != "" {
		return *p.FullName
	}
	if p.Username != nil && *p.Username != "" {
		return *p.Username
	}
	return "User"
}

func (p Profile) PlanDisplay() string {
	if p.PlanType == "" {
		return "Free"
	}
	s := string(p.PlanType)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Patch - поля профиля, которые пользователь может менять сам.
type Patch struct {
	Username  *string `json:"username,omitempty"`
	FullName  *string `json:"full_name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

func (p Patch) IsEmpty() bool {
	return p.Username == nil && p.FullName == nil && p.AvatarURL == nil
}
