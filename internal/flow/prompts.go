package flow

import "pomodoro-bot-be/pkg/telegram"

// User-facing texts. The bot speaks Russian to its single user.
const (
	MsgChooseDuration  = "Выберите продолжительность сессии (минуты):"
	MsgAskTask         = "Что ты собираешься делать? (Один глагол, описание метода)"
	MsgAskRole         = "В какой роли ты это будешь делать?"
	MsgAskProductType  = "Какой рабочий продукт рассчитываешь получить? (Заготовка, код и т.п.)"
	MsgAskUsageContext = "Где и при каких условиях этот рабочий продукт будет применен?"
	MsgAskWorkContext  = "Каков контекст рабочей сессии? (Ситуация, причина, триггер)"
	MsgAskResources    = "Каковы ресурсы на входе?"
	MsgAskConstraints  = "Ограничения, если есть?"
	MsgTimerStartedFmt = "Таймер запущен на %d минут. Работаем."
	MsgTimeIsUp        = "Время вышло. Что делаем дальше?"
	MsgExtendedFmt     = "Таймер продлен на %d минут. Работаем."
	MsgSessionStopped  = "Сессия остановлена. Каков был уровень энергии?"
	MsgAskEnergy       = "Каков был уровень энергии?"
	MsgAskFocus        = "Каков был уровень фокуса?"
	MsgAskQuality      = "Каково качество рабочего продукта?"
	MsgAskSummary      = "Подведите краткий итог сессии."
	MsgAskNextStep     = "Каков следующий шаг?"
	MsgSessionSaved    = "Сессия сохранена. Отдыхаем."
	MsgSaveFailed      = "Ошибка при сохранении сессии. Проверьте логи."
	MsgQuickNoteSaved  = "Информация о рабочей сессии сохранена!"
	MsgQuickNoteFailed = "Ошибка при сохранении заметки. Попробуйте позже."
	MsgNoActiveSession = "Нет активной сессии для остановки."
)

var DurationButtons = []telegram.Button{
	{Label: "5 минут", Data: "duration:5"},
	{Label: "30 минут", Data: "duration:30"},
	{Label: "45 минут", Data: "duration:45"},
	{Label: "60 минут", Data: "duration:60"},
	{Label: "90 минут", Data: "duration:90"},
}

var RoleButtons = []telegram.Button{
	{Label: "Ученик", Data: "role:ученик"},
	{Label: "Интеллектуал", Data: "role:интеллектуал"},
	{Label: "Профессионал", Data: "role:профессионал"},
	{Label: "Исследователь", Data: "role:исследователь"},
	{Label: "Просветитель", Data: "role:просветитель"},
}

var EnergyButtons = []telegram.Button{
	{Label: "5-Пиковый", Data: "energy:5"},
	{Label: "4-Потоковый", Data: "energy:4"},
	{Label: "3-Функциональный", Data: "energy:3"},
	{Label: "2-Упадок", Data: "energy:2"},
	{Label: "1-Истощение", Data: "energy:1"},
	{Label: "0-Критический", Data: "energy:0"},
}

var FocusButtons = []telegram.Button{
	{Label: "3-Предельный", Data: "focus:3"},
	{Label: "2-Обычный", Data: "focus:2"},
	{Label: "1-Рассеянный", Data: "focus:1"},
}

var QualityButtons = []telegram.Button{
	{Label: "3-Исключительное", Data: "quality:3"},
	{Label: "2-Приемлемое", Data: "quality:2"},
	{Label: "1-Низкое", Data: "quality:1"},
}

var ExtensionButtons = []telegram.Button{
	{Label: "Завершить", Data: "extension:finish"},
	{Label: "+5 мин", Data: "extension:5"},
	{Label: "+10 мин", Data: "extension:10"},
	{Label: "+15 мин", Data: "extension:15"},
	{Label: "+20 мин", Data: "extension:20"},
	{Label: "+30 мин", Data: "extension:30"},
}
