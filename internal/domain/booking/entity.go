package booking

import "time"

type AvailabilityInput struct {
	BusinessID     uint
	ProfessionalID uint
	ServiceID      uint
	Date           time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DayWindow é o expediente de um dia, já resolvido a partir das
// configurações do negócio. Horários HH:MM; break vazio = sem pausa.
type DayWindow struct {
	OpensAt    string
	ClosesAt   string
	BreakStart string
	BreakEnd   string
}

// BusyInterval é um agendamento existente, reduzido a minutos do dia.
// A duração é a do serviço daquele agendamento, não a do serviço
// sendo consultado.
type BusyInterval struct {
	StartMin int
	EndMin   int
}
