package usecase

import "context"

// ReportNotifier es el contrato del notificador de reportes. La implementación
// SMTP vive en infrastructure/mailer; el puerto permite simular fallos en tests.
// Ningún error de envío debe afectar la creación del reporte.
type ReportNotifier interface {
	// SendReportConfirmation envía al cliente la confirmación con los detalles
	// del reporte y la solicitud de información adicional.
	SendReportConfirmation(ctx context.Context, toEmail, clientName, title, description string) error
	// SendAdminAlert avisa al admin de un reporte nuevo con la identidad del cliente.
	SendAdminAlert(ctx context.Context, clientName, clientEmail, title string) error
}
