package usecase

import (
	"fmt"
	"html"

	"github.com/fotosvit/fotosvit-api/internal/application/dto"
	"github.com/fotosvit/fotosvit-api/internal/domain"
	"github.com/fotosvit/fotosvit-api/pkg/logger"
)

// Mailer порт відправки листів (зовнішній колаборатор).
type Mailer interface {
	Send(subject, htmlBody string) error
}

// OrderUseCase приймає замовлення фотосесії та пересилає його студії поштою.
// Валідація полів відбувається на HTTP-рівні; тут лише збірка листа і
// відправка.
type OrderUseCase struct {
	mailer Mailer
	log    *logger.Logger
}

// NewOrderUseCase будує кейс замовлення.
func NewOrderUseCase(mailer Mailer, log *logger.Logger) *OrderUseCase {
	return &OrderUseCase{mailer: mailer, log: log}
}

// Submit формує лист українською та відправляє. Збій пошти -> ErrMailSend;
// причина лише логується, назовні не витікає.
func (uc *OrderUseCase) Submit(in dto.OrderRequest) error {
	date := in.Date
	if date == "" {
		date = "Не вказана"
	}
	body := fmt.Sprintf(`
		<h2>Нове замовлення фотосесії</h2>
		<p><strong>Послуга:</strong> %s</p>
		<p><strong>Ім'я:</strong> %s</p>
		<p><strong>Телефон:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Бажана дата:</strong> %s</p>
		<p><strong>Повідомлення:</strong></p>
		<p>%s</p>`,
		html.EscapeString(in.Service),
		html.EscapeString(in.Name),
		html.EscapeString(in.Phone),
		html.EscapeString(in.Email),
		html.EscapeString(date),
		html.EscapeString(in.Message),
	)

	if err := uc.mailer.Send("Нове замовлення: "+in.Service, body); err != nil {
		uc.log.Error().Err(err).Str("service", in.Service).Msg("не вдалося відправити замовлення поштою")
		return domain.ErrMailSend
	}
	return nil
}
