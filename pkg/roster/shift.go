package roster

import "strings"

// ShiftCode - код смены из графика. Пустой код означает выходной.
type ShiftCode string

const (
	ShiftOff  ShiftCode = ""
	ShiftD8   ShiftCode = "D8"
	ShiftD10  ShiftCode = "D10"
	ShiftD11  ShiftCode = "D11"
	ShiftD12  ShiftCode = "D12"
	ShiftN8   ShiftCode = "N8"
	ShiftN10  ShiftCode = "N10"
	ShiftN11  ShiftCode = "N11"
	ShiftN12  ShiftCode = "N12"
	ShiftLN10 ShiftCode = "LN10"
	ShiftLN11 ShiftCode = "LN11"
	// ShiftVacation - отпуск, всегда 8 часов
	ShiftVacation ShiftCode = "V"
	ShiftC        ShiftCode = "C"
)

var knownShifts = map[ShiftCode]struct{}{
	ShiftOff: {}, ShiftD8: {}, ShiftD10: {}, ShiftD11: {}, ShiftD12: {},
	ShiftN8: {}, ShiftN10: {}, ShiftN11: {}, ShiftN12: {},
	ShiftLN10: {}, ShiftLN11: {}, ShiftVacation: {}, ShiftC: {},
}

// Known сообщает, входит ли код в словарь смен.
// Неизвестные коды парсер пропускает как есть.
func (c ShiftCode) Known() bool {
	_, ok := knownShifts[c]
	return ok
}

// IsOff - пустой код, выходной день
func (c ShiftCode) IsOff() bool {
	return c == ShiftOff
}

// HoursFor возвращает длительность смены в часах
func HoursFor(code ShiftCode) int {
	switch code {
	case ShiftOff:
		return 0
	case ShiftVacation, ShiftC:
		return VacationHours
	}

	// Длительность закодирована числом в конце кода: D8, LN10, N12.
	// Сравниваем число целиком, а не отдельные цифры.
	s := string(code)
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}

	switch s[i:] {
	case "8":
		return 8
	case "10":
		return 10
	case "11":
		return 11
	case "12":
		return 12
	}
	return 0
}

// LookupHours как HoursFor, но отличает неизвестный код от выходного
func LookupHours(code ShiftCode) (int, bool) {
	return HoursFor(code), code.Known()
}

// IsOffDay - пустая ячейка (в том числе одиночный таб) означает выходной
func IsOffDay(raw string) bool {
	return strings.TrimSpace(raw) == ""
}

// ParseCode превращает ячейку графика в код смены без валидации
func ParseCode(raw string) ShiftCode {
	if IsOffDay(raw) {
		return ShiftOff
	}
	return ShiftCode(strings.TrimSpace(raw))
}
