package service

import (
	"strings"

	"pagamentos/models"
)

// Search keeps the records where term is a case-insensitive substring of any
// textual field value. An empty term keeps everything. Order is preserved.
func Search(records []models.Payment, term string) []models.Payment {
	if term == "" {
		return records
	}
	needle := strings.ToLower(term)
	matches := make([]models.Payment, 0, len(records))
	for i := range records {
		if matchesPayment(&records[i], needle) {
			matches = append(matches, records[i])
		}
	}
	return matches
}

func matchesPayment(p *models.Payment, needle string) bool {
	for _, f := range models.PaymentFields {
		if strings.Contains(strings.ToLower(f.Get(p)), needle) {
			return true
		}
	}
	return false
}
