// Package smtp implementa el envío de correos de la aplicación vía gomail.
package smtp

import (
	"fmt"

	"github.com/tu-usuario/negocio-api/pkg/config"
	"gopkg.in/gomail.v2"
)

// Mailer envía los correos transaccionales: notificación de contacto y
// recuperación de contraseña. Implementa auth.ResetMailer y usecase.ContactMailer.
type Mailer struct {
	cfg    config.SMTPConfig
	dialer *gomail.Dialer
}

// NewMailer construye el mailer con la configuración SMTP.
func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// SendContactNotification notifica al administrador un mensaje del formulario de contacto.
func (m *Mailer) SendContactNotification(name, email, message string) error {
	if m.cfg.AdminEmail == "" {
		return fmt.Errorf("smtp: SMTP_ADMIN_EMAIL no configurado")
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", m.cfg.AdminEmail)
	msg.SetHeader("Subject", "Nuevo mensaje de contacto de "+name)
	msg.SetHeader("Reply-To", email)
	msg.SetBody("text/plain", fmt.Sprintf("De: %s <%s>\n\n%s", name, email, message))
	return m.send(msg)
}

// SendPasswordReset envía el token de recuperación al correo del usuario.
// El token viaja en claro por este canal; en la DB solo se guarda su hash.
func (m *Mailer) SendPasswordReset(to, token string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Recuperación de contraseña")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Recibimos una solicitud para restablecer tu contraseña.\n\n"+
			"Token de recuperación (vence en 1 hora): %s\n\n"+
			"Si no solicitaste el cambio, ignora este correo.", token))
	return m.send(msg)
}

func (m *Mailer) send(msg *gomail.Message) error {
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp: enviar correo: %w", err)
	}
	return nil
}
