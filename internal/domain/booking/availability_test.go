package booking

import "testing"

func slotStarts(slots []TimeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Start)
	}
	return out
}

func assertStarts(t *testing.T, slots []TimeSlot, expected ...string) {
	t.Helper()
	got := slotStarts(slots)
	if len(got) != len(expected) {
		t.Fatalf("expected %v slots, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, got)
		}
	}
}

func TestComputeSlots_EmptyDay(t *testing.T) {
	win := DayWindow{OpensAt: "09:00", ClosesAt: "12:00"}

	slots := ComputeSlots(win, 60, nil)
	assertStarts(t, slots, "09:00", "10:00", "11:00")

	if slots[len(slots)-1].End != "12:00" {
		t.Fatalf("expected last slot to end at closing, got %s", slots[len(slots)-1].End)
	}
}

func TestComputeSlots_ExcludesBookedSlot(t *testing.T) {
	win := DayWindow{OpensAt: "09:00", ClosesAt: "12:00"}
	busy := []BusyInterval{{StartMin: 10 * 60, EndMin: 11 * 60}}

	slots := ComputeSlots(win, 60, busy)
	assertStarts(t, slots, "09:00", "11:00")
}

func TestComputeSlots_OffGridReservationBlocksOverlaps(t *testing.T) {
	// reserva de 45min começando 10:45: um teste por amostragem de 30min
	// não enxergaria o conflito com 10:00 nem com 11:00
	win := DayWindow{OpensAt: "09:00", ClosesAt: "12:00"}
	busy := []BusyInterval{{StartMin: 10*60 + 45, EndMin: 11*60 + 30}}

	slots := ComputeSlots(win, 60, busy)
	assertStarts(t, slots, "09:00")
}

func TestComputeSlots_NoSlotPastClosing(t *testing.T) {
	win := DayWindow{OpensAt: "09:00", ClosesAt: "10:30"}

	slots := ComputeSlots(win, 60, nil)
	assertStarts(t, slots, "09:00")
}

func TestComputeSlots_DurationLongerThanWindow(t *testing.T) {
	win := DayWindow{OpensAt: "09:00", ClosesAt: "10:00"}

	slots := ComputeSlots(win, 90, nil)
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %v", slotStarts(slots))
	}
}

func TestComputeSlots_DegenerateInputs(t *testing.T) {
	win := DayWindow{OpensAt: "09:00", ClosesAt: "12:00"}

	if slots := ComputeSlots(win, 0, nil); len(slots) != 0 {
		t.Fatalf("zero duration: expected empty, got %v", slotStarts(slots))
	}
	if slots := ComputeSlots(win, -30, nil); len(slots) != 0 {
		t.Fatalf("negative duration: expected empty, got %v", slotStarts(slots))
	}

	inverted := DayWindow{OpensAt: "18:00", ClosesAt: "09:00"}
	if slots := ComputeSlots(inverted, 30, nil); len(slots) != 0 {
		t.Fatalf("inverted window: expected empty, got %v", slotStarts(slots))
	}

	broken := DayWindow{OpensAt: "xx", ClosesAt: "12:00"}
	if slots := ComputeSlots(broken, 30, nil); len(slots) != 0 {
		t.Fatalf("unparseable window: expected empty, got %v", slotStarts(slots))
	}
}

func TestComputeSlots_BreakWindow(t *testing.T) {
	win := DayWindow{
		OpensAt:    "09:00",
		ClosesAt:   "14:00",
		BreakStart: "12:00",
		BreakEnd:   "13:00",
	}

	slots := ComputeSlots(win, 60, nil)
	assertStarts(t, slots, "09:00", "10:00", "11:00", "13:00")
}

func TestComputeSlots_DurationAligned(t *testing.T) {
	// slots dependem da duração do serviço, não de uma grade fixa
	win := DayWindow{OpensAt: "09:00", ClosesAt: "11:00"}

	slots := ComputeSlots(win, 45, nil)
	assertStarts(t, slots, "09:00", "09:45")
}

func TestComputeSlots_Deterministic(t *testing.T) {
	win := DayWindow{OpensAt: "08:00", ClosesAt: "18:00"}
	busy := []BusyInterval{
		{StartMin: 9 * 60, EndMin: 9*60 + 30},
		{StartMin: 14 * 60, EndMin: 15 * 60},
	}

	first := ComputeSlots(win, 30, busy)
	second := ComputeSlots(win, 30, busy)

	if len(first) != len(second) {
		t.Fatalf("expected identical results, got %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("expected identical results at %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestSlotsFrom(t *testing.T) {
	win := DayWindow{OpensAt: "09:00", ClosesAt: "12:00"}
	slots := ComputeSlots(win, 60, nil)

	assertStarts(t, SlotsFrom(slots, 10*60), "10:00", "11:00")
	assertStarts(t, SlotsFrom(slots, 10*60+1), "11:00")
	assertStarts(t, SlotsFrom(slots, 0), "09:00", "10:00", "11:00")

	if got := SlotsFrom(slots, 12*60); len(got) != 0 {
		t.Fatalf("expected no slots, got %v", slotStarts(got))
	}
}

func TestMinuteOfDay(t *testing.T) {
	cases := []struct {
		in       string
		expected int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"23:59", 1439},
		{"24:00", -1},
		{"09:60", -1},
		{"", -1},
		{"abc", -1},
	}

	for _, tc := range cases {
		if got := MinuteOfDay(tc.in); got != tc.expected {
			t.Fatalf("MinuteOfDay(%q): expected %d, got %d", tc.in, tc.expected, got)
		}
	}
}
