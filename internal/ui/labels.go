package ui

// Display strings. The interface is Russian only.
const (
	LabelAppTitle          = "Таблица записей"
	LabelFile              = "Файл"
	LabelSettings          = "Настройки"
	LabelAdd               = "Добавить"
	LabelCopy              = "Копировать"
	LabelSearchPlaceholder = "Поиск по всем полям..."
	LabelEditMenu          = "Правка"

	LabelCopyText     = "Копировать как текст"
	LabelCopyMarkdown = "Копировать как Markdown"
	LabelCopyCSV      = "Копировать как CSV"

	LabelColumnName         = "Имя"
	LabelColumnDate         = "Дата"
	LabelColumnNumericValue = "Числовое значение"
	LabelColumnActions      = "Действия"

	LabelEdit   = "Редактировать"
	LabelDelete = "Удалить"

	LabelAddTitle         = "Добавить запись"
	LabelEditTitle        = "Редактировать запись"
	LabelUpdate           = "Обновить"
	LabelCancel           = "Отмена"
	LabelNamePlaceholder  = "Введите имя"
	LabelDatePlaceholder  = "Выберите дату"
	LabelValuePlaceholder = "Введите число"

	LabelPageFormat  = "Стр. %d из %d"
	LabelTotalFormat = "Всего: %d"

	LabelPageSize       = "Строк на странице"
	LabelSearchDebounce = "Задержка поиска (мс)"
	LabelLocale         = "Локаль сортировки"
	LabelVerbose        = "Подробное логирование"
	LabelSave           = "Сохранить"
)

// Notification messages
const (
	MsgRecordAdded    = "Запись добавлена"
	MsgRecordUpdated  = "Запись обновлена"
	MsgRecordDeleted  = "Запись удалена"
	MsgRecordNotFound = "Запись не найдена"
	MsgFormOpen       = "Форма уже открыта"
	MsgCopied         = "Таблица скопирована в буфер обмена"
	MsgSettingsSaved  = "Настройки сохранены"
)
