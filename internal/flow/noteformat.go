package flow

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"pomodoro-bot-be/internal/entity"
)

// Notes are filed in the user's home time zone, not the server's.
var noteZone = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Tbilisi")
	if err != nil {
		return time.UTC
	}
	return loc
}()

var titleSanitizer = regexp.MustCompile(`[^a-zA-Z0-9а-яА-Я ]`)

const (
	untitledSession  = "Untitled Session"
	maxTitleLength   = 50
	fileNameTimeForm = "2006-01-02 15-04"
)

// FileName derives the archive file name from the session start time and
// task title: "yyyy-MM-dd HH-mm - <title>.md". The title keeps only Latin
// and Cyrillic letters, digits and spaces, and is capped at 50 characters.
func FileName(start time.Time, title string) string {
	safe := strings.TrimSpace(titleSanitizer.ReplaceAllString(title, ""))
	if runes := []rune(safe); len(runes) > maxTitleLength {
		safe = string(runes[:maxTitleLength])
	}
	if safe == "" {
		safe = untitledSession
	}
	return start.In(noteZone).Format(fileNameTimeForm) + " - " + safe + ".md"
}

const noteTemplate = `# {{task}}

- **Дата**: {{date}}
- **Начало**: {{startTime}}
- **Конец**: {{stopTime}}
- **Длительность (план)**: {{duration}} мин

## Настройка

- **Роль**: {{role}}
- **Рабочий продукт**: {{productType}}
- **Применение**: {{usageContext}}
- **Контекст**: {{workContext}}
- **Ресурсы**: {{resources}}
- **Ограничения**: {{constraints}}

## Рефлексия

- **Энергия**: {{energyLevel}}
- **Фокус**: {{focusLevel}}
- **Качество**: {{qualityLevel}}

## Итог

{{summary}}

## Следующий шаг

{{nextStep}}
`

// Render produces the Markdown document for a completed session. Absent
// fields render as "N/A".
func Render(s entity.Session, stopTime time.Time) string {
	r := strings.NewReplacer(
		"{{date}}", formatDate(s.StartTime),
		"{{startTime}}", formatTimePtr(s.StartTime),
		"{{stopTime}}", formatTime(stopTime),
		"{{duration}}", strconv.Itoa(s.Duration),
		"{{task}}", orNA(s.Task),
		"{{role}}", orNA(s.Role),
		"{{productType}}", orNA(s.ProductType),
		"{{usageContext}}", orNA(s.UsageContext),
		"{{workContext}}", orNA(s.WorkContext),
		"{{resources}}", orNA(s.Resources),
		"{{constraints}}", orNA(s.Constraints),
		"{{energyLevel}}", orNA(s.EnergyLevel),
		"{{focusLevel}}", orNA(s.FocusLevel),
		"{{qualityLevel}}", orNA(s.QualityLevel),
		"{{summary}}", orNA(s.Summary),
		"{{nextStep}}", orNA(s.NextStep),
	)
	return r.Replace(noteTemplate)
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.In(noteZone).Format("2006-01-02")
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return formatTime(*t)
}

func formatTime(t time.Time) string {
	return t.In(noteZone).Format("2006-01-02T15:04:05")
}
