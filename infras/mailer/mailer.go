package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"fmt"
	"time"

	"medistay/config"
	"medistay/shared/constant"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

type Mailer interface {
	SendBookingConfirmed(to, guestName, roomName string, checkIn, checkOut time.Time, total string) error
	SendPasswordReset(to, token string) error
}

type mailerImpl struct {
	dialer *gomail.Dialer
	cfg    *config.Config
}

func New(cfg *config.Config) Mailer {
	dialer := gomail.NewDialer(
		cfg.Mail.SMTPHost,
		cfg.Mail.SMTPPort,
		cfg.Mail.Username,
		cfg.Mail.Password,
	)

	return &mailerImpl{
		dialer: dialer,
		cfg:    cfg,
	}
}

func (m *mailerImpl) SendBookingConfirmed(to, guestName, roomName string, checkIn, checkOut time.Time, total string) error {
	body := fmt.Sprintf(
		"Hola %s,\n\nTu reserva de %s está confirmada.\nEntrada: %s\nSalida: %s\nTotal: %s\n\nGracias por reservar con nosotros.",
		guestName,
		roomName,
		checkIn.Format(constant.DateOnlyFormat),
		checkOut.Format(constant.DateOnlyFormat),
		total,
	)

	return m.send(to, "Reserva confirmada", body)
}

func (m *mailerImpl) SendPasswordReset(to, token string) error {
	body := fmt.Sprintf(
		"Recibimos una solicitud para restablecer tu contraseña.\n\nCódigo de verificación: %s\n\nSi no fuiste tú, ignora este correo.",
		token,
	)

	return m.send(to, "Restablecer contraseña", body)
}

func (m *mailerImpl) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.Mail.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		log.Error().Err(err).Str("to", to).Str("subject", subject).Msg("failed to send mail")

		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}
