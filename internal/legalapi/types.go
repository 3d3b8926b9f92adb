// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package legalapi

// =============================================================================
// REQUEST ENUMS
// =============================================================================

// Country selects the jurisdiction context sent with a chat request.
type Country string

const (
	CountryUSA     Country = "USA"
	CountryUAE     Country = "UAE"
	CountryUK      Country = "UK"
	CountryGeneral Country = "general"
)

// Countries lists the supported values in display order.
func Countries() []Country {
	return []Country{CountryUSA, CountryUAE, CountryUK, CountryGeneral}
}

// Valid reports whether c is one of the supported countries.
func (c Country) Valid() bool {
	switch c {
	case CountryUSA, CountryUAE, CountryUK, CountryGeneral:
		return true
	}
	return false
}

// UserType describes who is asking, which shapes the backend's answer.
type UserType string

const (
	UserTypeIndividual UserType = "individual"
	UserTypeSME        UserType = "sme"
	UserTypeCorporate  UserType = "corporate"
)

// UserTypes lists the supported values in display order.
func UserTypes() []UserType {
	return []UserType{UserTypeIndividual, UserTypeSME, UserTypeCorporate}
}

// Valid reports whether u is one of the supported user types.
func (u UserType) Valid() bool {
	switch u {
	case UserTypeIndividual, UserTypeSME, UserTypeCorporate:
		return true
	}
	return false
}

// =============================================================================
// CHAT
// =============================================================================

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message   string   `json:"message"`
	Country   Country  `json:"country"`
	UserType  UserType `json:"user_type"`
	SessionID string   `json:"session_id,omitempty"` // Correlates requests within one session
}

// LawReference is one statute citation in a chat answer.
type LawReference struct {
	Name   string `json:"name"`              // Korean statute name
	NameEn string `json:"name_en,omitempty"` // English statute name, when translated
	URL    string `json:"url"`               // law.go.kr English-law page
	ID     string `json:"id,omitempty"`      // National Law Information id
}

// ChatResponse is the success body of POST /chat.
type ChatResponse struct {
	Reply               string         `json:"reply"`
	Confidence          *float64       `json:"confidence,omitempty"` // 0..1, absent when the backend has no estimate
	NeedsExpert         bool           `json:"needs_expert,omitempty"`
	SuggestedExpertType string         `json:"suggested_expert_type,omitempty"`
	SuggestedActions    []string       `json:"suggested_actions,omitempty"`
	Disclaimer          string         `json:"disclaimer,omitempty"`
	LawReferences       []LawReference `json:"law_references,omitempty"`
}

// errorResponse is the failure body shape; detail carries the server message.
type errorResponse struct {
	Detail string `json:"detail"`
}

// =============================================================================
// PROBES
// =============================================================================

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Service   string            `json:"service"`
	APIStatus map[string]string `json:"api_status,omitempty"`
}

// Healthy reports whether the backend declared itself healthy.
func (h *HealthResponse) Healthy() bool {
	return h.Status == "healthy"
}

// CountriesResponse is the body of GET /countries.
type CountriesResponse struct {
	Countries   []string `json:"countries"`
	Description string   `json:"description"`
}

// =============================================================================
// ENGLISH LAW CATALOG
// =============================================================================

// EnglishLaw is one entry of the English-law (영문법령) catalog.
type EnglishLaw struct {
	NameKr string `json:"name_kr"`
	NameEn string `json:"name_en"`
	URL    string `json:"url"`
}

// EnglishLawsResponse is GET /english-laws?topic=... for a single topic.
type EnglishLawsResponse struct {
	Topic  string       `json:"topic"`
	Laws   []EnglishLaw `json:"laws"`
	Source string       `json:"source"`
}

// EnglishLawCatalogResponse is GET /english-laws without a topic filter.
type EnglishLawCatalogResponse struct {
	Topics      []string                `json:"topics"`
	LawsByTopic map[string][]EnglishLaw `json:"laws_by_topic"`
	Source      string                  `json:"source"`
	Usage       string                  `json:"usage,omitempty"`
}

// LawURLResponse is GET /english-laws/url.
type LawURLResponse struct {
	LawName  string `json:"law_name"`
	URL      string `json:"url"`
	PathRule string `json:"path_rule,omitempty"`
}

// =============================================================================
// LAW SEARCH
// =============================================================================

// LawSearchRequest is the body of POST /laws/search.
type LawSearchRequest struct {
	Keyword    string `json:"keyword"`
	SearchType string `json:"search_type,omitempty"` // law, prec, detc, expc
	Page       int    `json:"page,omitempty"`
	Count      int    `json:"count,omitempty"`
}

// LawSearchResponse is the result of POST /laws/search.
type LawSearchResponse struct {
	Success      bool             `json:"success"`
	TotalCount   int              `json:"total_count"`
	Laws         []map[string]any `json:"laws"`
	ErrorMessage string           `json:"error_message,omitempty"`
}

// LawArticle is one statute article (조문) in a law detail response.
type LawArticle struct {
	ArticleNo      string `json:"article_no"`
	ArticleTitle   string `json:"article_title"`
	ArticleContent string `json:"article_content"`
}

// LawDetailResponse is GET /laws/{id}, the full text of one statute keyed by
// its MST number.
type LawDetailResponse struct {
	Success          bool         `json:"success"`
	LawID            string       `json:"law_id"`
	LawName          string       `json:"law_name"`
	PromulgationDate string       `json:"promulgation_date"`
	EnforcementDate  string       `json:"enforcement_date"`
	Articles         []LawArticle `json:"articles"`
}
