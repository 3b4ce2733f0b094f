package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the Russian labels the UI shows.
var FieldLabels = map[string]string{
	// Candidate fields
	"NameRu":              "Имя (рус.)",
	"NameEn":              "Имя (англ.)",
	"Email":               "Email",
	"Vacancy":             "Вакансия",
	"Status":              "Статус",
	"StatusComment":       "Комментарий к статусу",
	"ScreeningDate":       "Дата скрининга",
	"Recruiter":           "Рекрутер",
	"Telegram":            "Telegram",
	"Skype":               "Skype",
	"Phone":               "Телефон",
	"LocationCityCountry": "Локация",
	"EnglishLevel":        "Уровень английского",
	"MinSalary":           "Минимальная зарплата",
	"MaxSalary":           "Максимальная зарплата",
	"SalaryCurrency":      "Валюта",
	"TechStack":           "Технологии",
	"Comments":            "Комментарии",

	// Interview fields
	"CandidateID": "ID кандидата",

	// Vacancy fields
	"Title":            "Название",
	"Description":      "Описание",
	"Requirements":     "Требования",
	"Responsibilities": "Обязанности",
	"SalaryRangeMin":   "Зарплата от",
	"SalaryRangeMax":   "Зарплата до",
	"Currency":         "Валюта",
	"Location":         "Локация",
	"EmploymentType":   "Тип занятости",
	"Department":       "Отдел",
	"Level":            "Уровень",
	"Client":           "Заказчик",

	// Employee / department fields
	"Position":        "Должность",
	"EmploymentPlace": "Место работы",
	"StartDate":       "Дата начала работы",
	"Name":            "Название",
	"Type":            "Тип",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: обязательное поле", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: минимум %s символа(ов)", label, param)
		}
		return fmt.Sprintf("%s: минимум %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: максимум %s символа(ов)", label, param)
		}
		return fmt.Sprintf("%s: максимум %s", label, param)

	case "oneof":
		return fmt.Sprintf("%s: допустимые значения: %s", label, strings.Join(strings.Split(param, " "), ", "))

	case "email":
		return fmt.Sprintf("%s: некорректный email", label)

	case "url":
		return fmt.Sprintf("%s: некорректный URL", label)

	default:
		return fmt.Sprintf("%s: не прошло проверку (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
