package booking

import "fmt"

// ===============================
// Availability (pure)
// ===============================

// MinuteOfDay converte "HH:MM" em minutos desde a meia-noite.
// Retorna -1 para entrada inválida.
func MinuteOfDay(hm string) int {
	var h, m int
	if _, err := fmt.Sscanf(hm, "%d:%d", &h, &m); err != nil {
		return -1
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return -1
	}
	return h*60 + m
}

func formatMinute(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	// intervalos semiabertos [start, end)
	return aStart < bEnd && bStart < aEnd
}

// ComputeSlots deriva os horários livres de um dia: candidatos andam de
// serviceDuration em serviceDuration a partir da abertura e são descartados
// quando cruzam a pausa ou qualquer agendamento existente.
//
// Entradas degeneradas (duração <= 0, janela vazia ou invertida) produzem
// lista vazia, nunca erro: a UI trata vazio como "sem horários".
func ComputeSlots(win DayWindow, serviceDuration int, busy []BusyInterval) []TimeSlot {
	openMin := MinuteOfDay(win.OpensAt)
	closeMin := MinuteOfDay(win.ClosesAt)

	if serviceDuration <= 0 || openMin < 0 || closeMin < 0 || openMin >= closeMin {
		return []TimeSlot{}
	}

	hasBreak := win.BreakStart != "" && win.BreakEnd != ""
	breakStart, breakEnd := 0, 0
	if hasBreak {
		breakStart = MinuteOfDay(win.BreakStart)
		breakEnd = MinuteOfDay(win.BreakEnd)
		if breakStart < 0 || breakEnd < 0 {
			hasBreak = false
		}
	}

	slots := []TimeSlot{}

	for cur := openMin; cur+serviceDuration <= closeMin; cur += serviceDuration {
		slotStart := cur
		slotEnd := cur + serviceDuration

		if hasBreak && overlaps(slotStart, slotEnd, breakStart, breakEnd) {
			continue
		}

		conflict := false
		for _, b := range busy {
			if overlaps(slotStart, slotEnd, b.StartMin, b.EndMin) {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, TimeSlot{
				Start: formatMinute(slotStart),
				End:   formatMinute(slotEnd),
			})
		}
	}

	return slots
}

// SlotsFrom descarta os horários que começam antes de earliestStartMin.
// Corta o início do dia corrente pela antecedência mínima do negócio.
func SlotsFrom(slots []TimeSlot, earliestStartMin int) []TimeSlot {
	out := []TimeSlot{}
	for _, s := range slots {
		if MinuteOfDay(s.Start) >= earliestStartMin {
			out = append(out, s)
		}
	}
	return out
}
