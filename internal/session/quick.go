// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

// QuickQuestion is a preset topic the user can stage with one keypress.
type QuickQuestion struct {
	Key   string // stable selection key
	Label string // short text shown in the picker
	Text  string // canonical question staged into the input buffer
}

// quickQuestions is the closed set of presets, in display order. Keys match
// the backend's English-law catalog topics where one exists.
var quickQuestions = []QuickQuestion{
	{
		Key:   "investment",
		Label: "Foreign investment",
		Text:  "What incentives and reporting obligations apply to foreign direct investment in Korea?",
	},
	{
		Key:   "digital",
		Label: "Digital & AI",
		Text:  "What compliance rules apply to online platforms and AI services in Korea?",
	},
	{
		Key:   "labor",
		Label: "Labor",
		Text:  "What should a foreign employer know about hiring and dismissal under Korean labor law?",
	},
	{
		Key:   "ip",
		Label: "IP & trademarks",
		Text:  "How do I register and protect a trademark in Korea?",
	},
	{
		Key:   "esg",
		Label: "ESG",
		Text:  "What ESG and supply chain due diligence duties apply to companies operating in Korea?",
	},
	{
		Key:   "corporate",
		Label: "Corporate & tax",
		Text:  "What are the corporate, tax, and compliance requirements for running a company in Korea?",
	},
}

// QuickQuestions returns the presets in display order.
func QuickQuestions() []QuickQuestion {
	return quickQuestions
}

// Select stages the canonical question for key into the input buffer. The
// empty placeholder key and unknown keys are no-ops. Select never dispatches;
// the user still has to send.
func (s *Session) Select(key string) bool {
	if key == "" {
		return false
	}
	for _, q := range quickQuestions {
		if q.Key == key {
			s.InputBuffer = q.Text
			return true
		}
	}
	return false
}
