package submit_reservation

import (
	"time"

	"github.com/clubelmeta/CEM-SalonService/pkg/types"
)

// AddOnItem запрошенная позиция дополнительной услуги
type AddOnItem struct {
	AddOnID  int64  // ID услуги каталога
	Quantity int    // Количество единиц
	Notes    string // Заметки к позиции (опционально)
}

// Request модель заявки на резервацию салона
type Request struct {
	ConfigurationID int64 // ID конфигурации салона (расстановки)

	ClientName     string  // ФИО клиента
	ClientEmail    string  // Email для уведомлений
	ClientPhone    string  // Контактный телефон
	ClientType     string  // MEMBER или NON_MEMBER
	MembershipCode *string // Код членства, обязателен для MEMBER
	EntityName     *string // Название организации (опционально)

	EventDate       time.Time        // Дата мероприятия (без времени)
	StartTime       types.TimeString // Время начала, например "18:30" (опционально)
	Duration        string           // 4H или 8H
	DecorationHours int              // Часы на оформление до начала
	PartySize       int              // Ожидаемое число гостей

	Total  *string // Сумма, если задана персоналом; пустая - рассчитывается
	Notes  string  // Заметки к заявке
	AddOns []AddOnItem
}

// LineItem позиция услуги с зафиксированной ценой
type LineItem struct {
	AddOnID   int64
	AddOnName string
	Quantity  int
	UnitPrice string // цена за единицу на момент подачи
	Subtotal  string
}

// Response модель ответа с созданной резервацией
type Response struct {
	ID              int64            // ID созданной резервации
	ConfigurationID int64            // ID конфигурации салона
	VenueName       string           // Название салона
	Arrangement     string           // Расстановка
	EventDate       time.Time        // Дата мероприятия
	StartTime       types.TimeString // Время начала
	Duration        string           // Длительность
	PartySize       int              // Число гостей
	Status          string           // Статус (PENDING)

	Base      string     // Базовая ставка аренды
	Addons    string     // Сумма позиций услуг
	Total     string     // Полная стоимость
	LineItems []LineItem // Позиции услуг

	CreatedAt time.Time // Время создания
}
