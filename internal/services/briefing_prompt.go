package services

import (
	"fmt"
	"strings"
)

// briefingSystemPrompt is the fixed persona instruction sent with every
// briefing request. It is never parameterized.
const briefingSystemPrompt = `You are an experienced restaurant General Manager with 20+ years of operational experience in full-service and fine-dining restaurants.

Your job is to help restaurant operators make better real-time decisions by clearly explaining operational data in plain language.

You do NOT act like a data analyst or dashboard.
You do NOT list raw numbers without interpretation.

You:
• Think like an operator preparing for service
• Connect operational dots across sales, staffing, and guests
• Use cautious, realistic language (e.g., "likely," "suggests," "appears")
• Never invent data or assumptions not provided
• Never overstate certainty

If data is insufficient, say so clearly.
Your goal is clarity, context, and actionable insight — not prediction.`

// Placeholder lines for empty sections
const (
	noPeakLine  = "- No clear peak identified"
	noStaffLine = "- No staff scheduled"
	noVIPLine   = "- No VIP or high-value guests identified"
)

// buildUserPrompt renders the per-request data block. Pure string assembly:
// identical inputs always produce byte-identical output.
func buildUserPrompt(serviceDate string, data briefingData, m briefingMetrics) string {
	var b strings.Builder

	b.WriteString("You are generating a pre-shift operational briefing for a restaurant manager.\n\n")
	b.WriteString("The data below includes:\n")
	b.WriteString("• Tonight's reservations\n")
	b.WriteString("• Expected walk-in range\n")
	b.WriteString("• Staffing schedule and overtime risk\n")
	b.WriteString("• Basic guest history and preferences\n\n")
	b.WriteString("This briefing will be read quickly before service.\n")
	b.WriteString("Assume the reader has NO time to interpret charts or tables.\n\n")

	fmt.Fprintf(&b, "SERVICE DATE: %s\n\n", serviceDate)

	b.WriteString("RESERVATIONS DATA:\n")
	fmt.Fprintf(&b, "- Total confirmed reservations: %d\n", len(data.reservations))
	fmt.Fprintf(&b, "- Total booked covers: %d\n", m.TotalBookedCovers)
	fmt.Fprintf(&b, "- Expected walk-ins: %d-%d\n", m.WalkInMin, m.WalkInMax)
	fmt.Fprintf(&b, "- Total expected guest range: %d-%d\n\n", m.TotalExpectedMin, m.TotalExpectedMax)

	b.WriteString("PEAK PERIODS:\n")
	if len(m.PeakSlots) == 0 {
		b.WriteString(noPeakLine + "\n")
	} else {
		for _, slot := range m.PeakSlots {
			fmt.Fprintf(&b, "- %s: %d covers\n", slot.Time, slot.Covers)
		}
	}
	b.WriteString("\n")

	b.WriteString("STAFFING DATA:\n")
	fmt.Fprintf(&b, "- Total staff scheduled: %d\n", len(data.schedules))
	fmt.Fprintf(&b, "- Total scheduled hours: %g\n", m.TotalScheduledHours)
	fmt.Fprintf(&b, "- Estimated labor cost: $%.2f\n", m.TotalLaborCost)
	b.WriteString("Staff breakdown:\n")
	if len(data.schedules) == 0 {
		b.WriteString(noStaffLine + "\n")
	} else {
		for _, s := range data.schedules {
			fmt.Fprintf(&b, "- %s (%s): %s-%s (%ghrs @ $%g/hr)\n",
				s.StaffName, s.Position, s.ShiftStart, s.ShiftEnd, s.ScheduledHours, s.HourlyRate)
		}
	}
	b.WriteString("\n")

	b.WriteString("VIP/HIGH-VALUE GUESTS:\n")
	if len(m.VIPGuests) == 0 {
		b.WriteString(noVIPLine + "\n")
	} else {
		for _, g := range m.VIPGuests {
			fmt.Fprintf(&b, "- %s (Party of %d) at %s - %d visits, $%.2f lifetime spend",
				g.Name, g.PartySize, g.Time, g.TotalVisits, g.TotalSpend)
			if g.VIPStatus {
				b.WriteString(" - VIP")
			}
			if g.Preferences != "" {
				b.WriteString(" - " + g.Preferences)
			}
			if g.Notes != "" {
				b.WriteString(" - Note: " + g.Notes)
			}
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	b.WriteString("Generate a concise operational story using the exact format below.\n\n")
	b.WriteString("Rules:\n")
	b.WriteString("• Do NOT use bullet points unless explicitly shown\n")
	b.WriteString("• Do NOT include raw tables or JSON\n")
	b.WriteString("• Do NOT exceed 250–300 words\n")
	b.WriteString("• Use calm, confident, operator-friendly tone\n")
	b.WriteString("• Avoid technical or analytical jargon\n\n")

	b.WriteString("TITLE:\n")
	fmt.Fprintf(&b, "Tonight's Service Intelligence — %s\n\n", serviceDate)

	b.WriteString("SECTION 1 — HEADLINE\n")
	b.WriteString("Write 1–2 sentences summarizing the most important operational takeaway for tonight.\n\n")

	b.WriteString("SECTION 2 — WHAT TONIGHT LOOKS LIKE\n")
	b.WriteString("Briefly explain:\n")
	b.WriteString("• Booked covers\n")
	b.WriteString("• Expected total guest range\n")
	b.WriteString("• Peak periods\n\n")

	b.WriteString("SECTION 3 — STAFFING INSIGHT\n")
	b.WriteString("Explain whether staffing appears aligned or misaligned.\n")
	b.WriteString("Mention overtime risk ONLY if relevant.\n")
	b.WriteString("Frame recommendations as considerations, not commands.\n\n")

	b.WriteString("SECTION 4 — GUEST HIGHLIGHTS\n")
	b.WriteString("Mention ONLY guests that materially impact service or revenue.\n")
	b.WriteString("Explain why they matter operationally.\n\n")

	b.WriteString("SECTION 5 — SUGGESTED ACTIONS\n")
	b.WriteString("List 2–3 clear, practical actions the manager could consider before or during service.\n")
	b.WriteString("Phrase actions as suggestions, not instructions.")

	return b.String()
}
