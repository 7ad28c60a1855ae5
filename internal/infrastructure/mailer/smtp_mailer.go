package mailer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/consultoria-api/internal/application/usecase"
	"github.com/jhoicas/consultoria-api/pkg/config"
)

//go:embed templates/*.html
var templatesFS embed.FS

var _ usecase.ReportNotifier = (*SMTPMailer)(nil)

// SMTPMailer implementa el puerto ReportNotifier con gomail sobre SMTP.
// Todos los envíos son best-effort: el caso de uso que lo invoca descarta el
// error tras registrarlo.
type SMTPMailer struct {
	dialer       *gomail.Dialer
	from         string
	adminEmail   string
	dashboardURL string
	confirmation *template.Template
	adminAlert   *template.Template
}

// NewSMTPMailer construye el mailer con la configuración SMTP de la app.
func NewSMTPMailer(cfg config.SMTPConfig) (*SMTPMailer, error) {
	confirmation, err := template.ParseFS(templatesFS, "templates/client_confirmation.html")
	if err != nil {
		return nil, fmt.Errorf("parse plantilla de confirmación: %w", err)
	}
	adminAlert, err := template.ParseFS(templatesFS, "templates/admin_alert.html")
	if err != nil {
		return nil, fmt.Errorf("parse plantilla de alerta: %w", err)
	}
	return &SMTPMailer{
		dialer:       gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:         cfg.From,
		adminEmail:   cfg.AdminEmail,
		dashboardURL: cfg.DashboardURL,
		confirmation: confirmation,
		adminAlert:   adminAlert,
	}, nil
}

// SendReportConfirmation envía al cliente la confirmación del reporte con la
// solicitud de información adicional.
func (m *SMTPMailer) SendReportConfirmation(ctx context.Context, toEmail, clientName, title, description string) error {
	body, err := render(m.confirmation, map[string]string{
		"ClientName":  clientName,
		"Title":       title,
		"Description": description,
	})
	if err != nil {
		return err
	}
	return m.send(ctx, toEmail, "Confirmación de Reporte: "+title, body)
}

// SendAdminAlert avisa al admin de un reporte nuevo con enlace al dashboard.
func (m *SMTPMailer) SendAdminAlert(ctx context.Context, clientName, clientEmail, title string) error {
	body, err := render(m.adminAlert, map[string]string{
		"ClientName":   clientName,
		"ClientEmail":  clientEmail,
		"Title":        title,
		"DashboardURL": m.dashboardURL,
	})
	if err != nil {
		return err
	}
	return m.send(ctx, m.adminEmail, "Nuevo Reporte Recibido: "+title, body)
}

// send entrega un mensaje HTML. gomail no acepta context, así que el ctx solo
// corta envíos que aún no empezaron cuando el timeout del despacho ya venció.
func (m *SMTPMailer) send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("enviar correo a %s: %w", to, err)
	}
	return nil
}

func render(t *template.Template, data map[string]string) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render plantilla: %w", err)
	}
	return buf.String(), nil
}
