package ats

import (
	"strings"

	"resume-ats/internal/ats/model"
)

const contactTopLines = 3

func (a *Analyzer) analyzeContact(text string) ContactResult {
	mt := a.model.Matcher()
	res := ContactResult{
		Email:    mt.Match("email", text),
		Phone:    mt.Match("phone", text),
		LinkedIn: mt.Match("linkedin", text),
		Website:  mt.Match("website", text),
	}

	var t tally
	if res.Email {
		t.award("Email", 25, 25, "Email found")
	} else {
		t.award("Email", 0, 25, "Missing email")
	}
	if res.Phone {
		t.award("Phone", 25, 25, "Phone found")
	} else {
		t.award("Phone", 0, 25, "Missing phone")
	}
	if res.LinkedIn {
		t.award("LinkedIn", 25, 25, "LinkedIn profile found")
	} else {
		t.award("LinkedIn", 0, 25, "Missing LinkedIn profile")
	}
	if res.Website && !res.LinkedIn {
		t.award("Website", 15, 15, "Portfolio/website found")
	}

	if res.Email && !contactAtTop(text) {
		t.deduct(10, "Contact info not at top of resume")
	}

	exists := res.Email || res.Phone || res.LinkedIn || res.Website
	res.SectionResult = t.result(SectionContact, exists, a.model.Weight(model.SectionContact))
	return res
}

func contactAtTop(text string) bool {
	lines := nonBlankLines(text)
	if len(lines) > contactTopLines {
		lines = lines[:contactTopLines]
	}
	for _, line := range lines {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "@") || strings.Contains(lower, "email") {
			return true
		}
	}
	return false
}
