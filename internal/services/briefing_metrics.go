package services

import (
	"sort"

	"github.com/tableside/restaurant-ops-backend/internal/models"
)

// vipSpendThreshold is the lifetime spend above which a guest counts as
// high-value even without the VIP flag.
const vipSpendThreshold = 1000.0

// peakSlot is one reservation time bucket with its summed covers. Times are
// exact strings; "19:00" and "19:05" are distinct slots.
type peakSlot struct {
	Time   string
	Covers int
}

// vipEntry is one VIP/high-value guest line for the briefing. Notes come from
// the reservation, not the guest profile.
type vipEntry struct {
	Name        string
	PartySize   int
	Time        string
	VIPStatus   bool
	TotalVisits int
	TotalSpend  float64
	Preferences string
	Notes       string
}

// briefingMetrics holds the derived numeric summaries for one service date
type briefingMetrics struct {
	TotalBookedCovers   int
	WalkInMin           int
	WalkInMax           int
	TotalExpectedMin    int
	TotalExpectedMax    int
	TotalScheduledHours float64
	TotalLaborCost      float64
	PeakSlots           []peakSlot
	VIPGuests           []vipEntry
}

// calculateMetrics derives the briefing metrics from the collected snapshot.
// Pure computation, no I/O. Walk-in bounds pass through unclamped and
// min<=max is not enforced.
func calculateMetrics(data briefingData) briefingMetrics {
	var m briefingMetrics

	for _, r := range data.reservations {
		m.TotalBookedCovers += r.PartySize
	}

	if data.config != nil {
		m.WalkInMin = data.config.ExpectedWalkInMin
		m.WalkInMax = data.config.ExpectedWalkInMax
	}
	m.TotalExpectedMin = m.TotalBookedCovers + m.WalkInMin
	m.TotalExpectedMax = m.TotalBookedCovers + m.WalkInMax

	for _, s := range data.schedules {
		m.TotalScheduledHours += s.ScheduledHours
		m.TotalLaborCost += s.ScheduledHours * s.HourlyRate
	}

	m.PeakSlots = peakTimeSlots(data.reservations)
	m.VIPGuests = vipGuestList(data.reservations, data.guests)

	return m
}

// peakTimeSlots groups confirmed reservations by exact time string and
// returns the top 3 slots by summed covers. Ties break by ascending time
// string so the ranking is deterministic.
func peakTimeSlots(reservations []models.Reservation) []peakSlot {
	covers := map[string]int{}
	for _, r := range reservations {
		covers[r.Time] += r.PartySize
	}

	slots := make([]peakSlot, 0, len(covers))
	for t, c := range covers {
		slots = append(slots, peakSlot{Time: t, Covers: c})
	}

	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Covers != slots[j].Covers {
			return slots[i].Covers > slots[j].Covers
		}
		return slots[i].Time < slots[j].Time
	})

	if len(slots) > 3 {
		slots = slots[:3]
	}
	return slots
}

// vipGuestList picks the VIP/high-value entries in reservation order.
// Reservations whose guest_id has no fetched match are skipped.
func vipGuestList(reservations []models.Reservation, guests map[string]models.Guest) []vipEntry {
	entries := []vipEntry{}
	for _, r := range reservations {
		guest, ok := guests[r.GuestID]
		if !ok {
			continue
		}
		if !guest.VIPStatus && guest.TotalSpend <= vipSpendThreshold {
			continue
		}

		entry := vipEntry{
			Name:        guest.Name,
			PartySize:   r.PartySize,
			Time:        r.Time,
			VIPStatus:   guest.VIPStatus,
			TotalVisits: guest.TotalVisits,
			TotalSpend:  guest.TotalSpend,
		}
		if guest.Preferences != nil {
			entry.Preferences = *guest.Preferences
		}
		if r.Notes != nil {
			entry.Notes = *r.Notes
		}
		entries = append(entries, entry)
	}
	return entries
}
