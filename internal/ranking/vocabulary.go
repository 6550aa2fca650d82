package ranking

// categoryVocabulary maps display language -> category -> translated keyword
// entries for that category. A query term found in an entry for the article's
// category earns the category-term bonus. Entries are lowercase; multi-word
// entries match on substring.
var categoryVocabulary = map[string]map[string][]string{
	"hr": {
		"employment":    {"radni odnosi", "ugovor o radu", "poslodavac", "radnik", "zaposlenje", "probni rad"},
		"working_hours": {"radno vrijeme", "prekovremeni rad", "noćni rad", "smjena", "stanka", "raspored"},
		"leave":         {"godišnji odmor", "bolovanje", "dopust", "rodiljni dopust", "plaćeni dopust"},
		"termination":   {"otkaz", "otkazni rok", "otpremnina", "prestanak ugovora", "izvanredni otkaz"},
		"wages":         {"plaća", "naknada", "dodatak", "minimalna plaća", "isplata"},
		"safety":        {"zaštita na radu", "ozljeda na radu", "sigurnost", "zaštitna oprema"},
	},
	"en": {
		"employment":    {"labor relations", "employment contract", "employer", "employee", "probation"},
		"working_hours": {"working hours", "overtime", "night work", "shift", "break", "schedule"},
		"leave":         {"annual leave", "sick leave", "parental leave", "paid leave", "vacation"},
		"termination":   {"termination", "notice period", "severance pay", "dismissal", "contract end"},
		"wages":         {"salary", "wage", "compensation", "allowance", "minimum wage", "payment"},
		"safety":        {"occupational safety", "workplace injury", "protective equipment", "safety"},
	},
	"es": {
		"employment":    {"relaciones laborales", "contrato de trabajo", "empleador", "empleado", "prueba"},
		"working_hours": {"horario de trabajo", "horas extras", "trabajo nocturno", "turno", "descanso"},
		"leave":         {"vacaciones anuales", "baja por enfermedad", "permiso parental", "permiso retribuido"},
		"termination":   {"despido", "plazo de preaviso", "indemnización por despido", "fin de contrato"},
		"wages":         {"salario", "sueldo", "compensación", "salario mínimo", "pago"},
		"safety":        {"seguridad laboral", "accidente de trabajo", "equipo de protección", "seguridad"},
	},
}

// CategoryVocabulary returns the translated keyword entries for a category in
// the given display language, or nil when no dictionary is available.
func CategoryVocabulary(language, category string) []string {
	byCategory, ok := categoryVocabulary[language]
	if !ok {
		return nil
	}
	return byCategory[category]
}
