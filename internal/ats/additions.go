package ats

import (
	"strings"

	"github.com/eliteskills/ats-engine/internal/types"
)

// buildSuggestedAdditions synthesizes template summary sentences, experience
// bullets, and skills-list entries from the missing-keyword set. Category
// picks are first-match-wins over the deduplicated list; this is template
// filling, not generation.
func buildSuggestedAdditions(missing []string) types.SuggestedAdditions {
	seen := make(map[string]bool, len(missing))
	var uniq []string
	for _, k := range missing {
		if !seen[k] {
			seen[k] = true
			uniq = append(uniq, k)
		}
	}

	has := func(s string) bool { return seen[s] }
	pickFirst := func(candidates ...string) string {
		for _, c := range candidates {
			if has(c) {
				return c
			}
		}
		return ""
	}

	booking := pickFirst("booking management", "booking", "bookings")
	travel := pickFirst("travel operations", "travel booking", "travel")
	customer := pickFirst("customer support", "customer", "service")
	supplier := pickFirst("supplier coordination", "suppliers", "supplier")
	ota := pickFirst("ota", "operations ota", "ota operations")
	reporting := pickFirst("reporting", "dashboards", "mis")
	tools := pickFirst("google sheets", "sheets", "excel", "crm")

	var summary []string
	if travel != "" || booking != "" {
		summary = append(summary,
			"Operations professional with exposure to "+joinPresent(" and ", travel, booking)+
				" and a focus on accuracy and turnaround time.")
	}
	if customer != "" || supplier != "" || ota != "" {
		s := "Comfortable coordinating across stakeholders"
		if customer != "" {
			s += " (customers)"
		}
		if supplier != "" {
			s += " and suppliers"
		}
		if ota != "" {
			s += " and working with OTAs"
		}
		summary = append(summary, s+".")
	}

	bookingTerm := booking
	if bookingTerm == "" {
		bookingTerm = "bookings"
	}
	travelTerm := travel
	if travelTerm == "" {
		travelTerm = "travel requests"
	}
	experienceBullets := []string{
		"- Managed " + bookingTerm + " / " + travelTerm +
			" end-to-end: confirmations, vouchers, and timely updates to stakeholders. (Impact: [add metric])",
	}
	if supplier != "" || customer != "" {
		with := "partners"
		if supplier != "" {
			with = "suppliers"
		}
		and := "internal teams"
		if customer != "" {
			and = "customers"
		}
		experienceBullets = append(experienceBullets,
			"- Coordinated with "+with+" and "+and+" to resolve issues and ensure smooth service delivery. (Impact: [add metric])")
	}
	if reporting != "" || tools != "" {
		using := tools
		if using == "" {
			using = "Excel/Google Sheets"
		}
		experienceBullets = append(experienceBullets,
			"- Maintained daily MIS / reporting using "+using+" and tracked operational metrics on dashboards for continuous improvements. (Impact: [add metric])")
	}

	var skills []string
	var toolsList []string
	if has("excel") {
		toolsList = append(toolsList, "Excel")
	}
	if has("google sheets") || has("sheets") {
		toolsList = append(toolsList, "Google Sheets")
	}
	if has("crm") {
		toolsList = append(toolsList, "CRM")
	}
	if has("dashboards") {
		toolsList = append(toolsList, "Dashboards")
	}
	if has("reporting") {
		toolsList = append(toolsList, "Reporting")
	}
	if has("mis") {
		toolsList = append(toolsList, "MIS")
	}
	if len(toolsList) > 0 {
		skills = append(skills, "- Tools: "+strings.Join(toolsList, ", "))
	}
	if ota != "" {
		skills = append(skills, "- Platforms: OTA portals (as applicable)")
	}
	if booking != "" || customer != "" || supplier != "" {
		skills = append(skills, "- Operations: "+joinPresent(", ", booking, customer, supplier))
	}

	return types.SuggestedAdditions{
		Summary:           summary,
		ExperienceBullets: experienceBullets,
		Skills:            skills,
	}
}

// joinPresent joins the non-empty values with sep.
func joinPresent(sep string, values ...string) string {
	var present []string
	for _, v := range values {
		if v != "" {
			present = append(present, v)
		}
	}
	return strings.Join(present, sep)
}
