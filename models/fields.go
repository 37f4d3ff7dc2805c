package models

// Field describes one textual column of Payment. The PaymentFields table is
// the single ordered list used by validation, search, the spreadsheet and the
// receipt.
type Field struct {
	Key   string // input / JSON key
	Label string // spreadsheet header and receipt label
	Month bool
	Get   func(*Payment) string
	Set   func(*Payment, string)
}

// Required field keys, in message order.
const (
	FieldClub     = "club"
	FieldChurch   = "church"
	FieldRegion   = "region"
	FieldCategory = "category"
	FieldTotal    = "total"
)

// RequiredPaymentFields fields that must be non-empty on create and update.
var RequiredPaymentFields = []string{FieldClub, FieldChurch, FieldRegion, FieldCategory, FieldTotal}

// PaymentFields core fields followed by the twelve months in calendar order.
var PaymentFields = []Field{
	{Key: FieldClub, Label: "Clube",
		Get: func(p *Payment) string { return p.Club }, Set: func(p *Payment, v string) { p.Club = v }},
	{Key: FieldChurch, Label: "Igreja",
		Get: func(p *Payment) string { return p.Church }, Set: func(p *Payment, v string) { p.Church = v }},
	{Key: FieldRegion, Label: "Região",
		Get: func(p *Payment) string { return p.Region }, Set: func(p *Payment, v string) { p.Region = v }},
	{Key: FieldCategory, Label: "Categoria",
		Get: func(p *Payment) string { return p.Category }, Set: func(p *Payment, v string) { p.Category = v }},
	{Key: FieldTotal, Label: "Total",
		Get: func(p *Payment) string { return p.Total }, Set: func(p *Payment, v string) { p.Total = v }},
	{Key: "january", Label: "Janeiro", Month: true,
		Get: func(p *Payment) string { return p.January }, Set: func(p *Payment, v string) { p.January = v }},
	{Key: "february", Label: "Fevereiro", Month: true,
		Get: func(p *Payment) string { return p.February }, Set: func(p *Payment, v string) { p.February = v }},
	{Key: "march", Label: "Março", Month: true,
		Get: func(p *Payment) string { return p.March }, Set: func(p *Payment, v string) { p.March = v }},
	{Key: "april", Label: "Abril", Month: true,
		Get: func(p *Payment) string { return p.April }, Set: func(p *Payment, v string) { p.April = v }},
	{Key: "may", Label: "Maio", Month: true,
		Get: func(p *Payment) string { return p.May }, Set: func(p *Payment, v string) { p.May = v }},
	{Key: "june", Label: "Junho", Month: true,
		Get: func(p *Payment) string { return p.June }, Set: func(p *Payment, v string) { p.June = v }},
	{Key: "july", Label: "Julho", Month: true,
		Get: func(p *Payment) string { return p.July }, Set: func(p *Payment, v string) { p.July = v }},
	{Key: "august", Label: "Agosto", Month: true,
		Get: func(p *Payment) string { return p.August }, Set: func(p *Payment, v string) { p.August = v }},
	{Key: "september", Label: "Setembro", Month: true,
		Get: func(p *Payment) string { return p.September }, Set: func(p *Payment, v string) { p.September = v }},
	{Key: "october", Label: "Outubro", Month: true,
		Get: func(p *Payment) string { return p.October }, Set: func(p *Payment, v string) { p.October = v }},
	{Key: "november", Label: "Novembro", Month: true,
		Get: func(p *Payment) string { return p.November }, Set: func(p *Payment, v string) { p.November = v }},
	{Key: "december", Label: "Dezembro", Month: true,
		Get: func(p *Payment) string { return p.December }, Set: func(p *Payment, v string) { p.December = v }},
}

// LookupField finds a field by key.
func LookupField(key string) (Field, bool) {
	for _, f := range PaymentFields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// MonthFields returns the twelve month fields, January first.
func MonthFields() []Field {
	months := make([]Field, 0, 12)
	for _, f := range PaymentFields {
		if f.Month {
			months = append(months, f)
		}
	}
	return months
}
