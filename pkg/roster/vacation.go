package roster

import "strings"

// vacationBlockSize - одна запись об отпуске занимает ровно 7 строк
const vacationBlockSize = 7

// Строки внутри блока. Строки 3 и 5 не используются.
const (
	lineType = iota
	lineEmployeeID
	lineEmployeeName
	_
	lineStartDate
	_
	lineEndDate
)

// ParseVacations разбирает выгрузку отпусков блоками по 7 строк.
// Неполный хвост и блоки без номера или дат пропускаются.
func ParseVacations(text string) []VacationEntry {
	lines := strings.Split(text, "\n")
	vacations := []VacationEntry{}

	for i := 0; i+vacationBlockSize <= len(lines); i += vacationBlockSize {
		block := lines[i : i+vacationBlockSize]

		employeeID := strings.TrimSpace(block[lineEmployeeID])
		startDate := strings.TrimSpace(block[lineStartDate])
		endDate := strings.TrimSpace(block[lineEndDate])

		if employeeID == "" || startDate == "" || endDate == "" {
			continue
		}

		vacations = append(vacations, VacationEntry{
			Type:         strings.TrimSpace(block[lineType]),
			EmployeeID:   employeeID,
			EmployeeName: strings.TrimSpace(block[lineEmployeeName]),
			StartDate:    strings.ReplaceAll(startDate, "/", "-"),
			EndDate:      strings.ReplaceAll(endDate, "/", "-"),
		})
	}

	return vacations
}
