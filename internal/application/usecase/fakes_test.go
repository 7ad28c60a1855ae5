package usecase_test

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/consultoria-api/internal/domain"
	"github.com/jhoicas/consultoria-api/internal/domain/entity"
	"github.com/jhoicas/consultoria-api/internal/domain/repository"
)

// Fakes en memoria para los puertos de persistencia. Los joins de los
// repositorios reales se emulan con los mapas de clientes y servicios.

type fakeServiceRepo struct {
	services map[string]*entity.Service
	order    []string
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: make(map[string]*entity.Service)}
}

func (r *fakeServiceRepo) Create(_ context.Context, s *entity.Service) error {
	cp := *s
	r.services[s.ID] = &cp
	r.order = append([]string{s.ID}, r.order...)
	return nil
}

func (r *fakeServiceRepo) GetByID(_ context.Context, id string) (*entity.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeServiceRepo) List(_ context.Context, onlyActive bool) ([]*entity.Service, error) {
	out := make([]*entity.Service, 0, len(r.order))
	for _, id := range r.order {
		s := r.services[id]
		if onlyActive && !s.Active {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeServiceRepo) Update(_ context.Context, s *entity.Service) error {
	cp := *s
	r.services[s.ID] = &cp
	return nil
}

func (r *fakeServiceRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.services[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.services, id)
	return nil
}

type fakeConsultationRepo struct {
	consultations map[string]*entity.Consultation
	order         []string
	clients       map[string]*entity.User
	services      *fakeServiceRepo
}

func newFakeConsultationRepo(services *fakeServiceRepo) *fakeConsultationRepo {
	return &fakeConsultationRepo{
		consultations: make(map[string]*entity.Consultation),
		clients:       make(map[string]*entity.User),
		services:      services,
	}
}

func (r *fakeConsultationRepo) Create(_ context.Context, c *entity.Consultation) error {
	if _, ok := r.services.services[c.ServiceID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.consultations[c.ID] = &cp
	r.order = append([]string{c.ID}, r.order...)
	return nil
}

func (r *fakeConsultationRepo) GetByID(_ context.Context, id string) (*entity.Consultation, error) {
	c, ok := r.consultations[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeConsultationRepo) GetDetailByID(_ context.Context, id string) (*repository.ConsultationDetail, error) {
	c, ok := r.consultations[id]
	if !ok {
		return nil, nil
	}
	return r.detail(c), nil
}

func (r *fakeConsultationRepo) ListAll(_ context.Context) ([]*repository.ConsultationDetail, error) {
	out := make([]*repository.ConsultationDetail, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.detail(r.consultations[id]))
	}
	return out, nil
}

func (r *fakeConsultationRepo) ListByClient(_ context.Context, clientID string) ([]*repository.ConsultationDetail, error) {
	out := make([]*repository.ConsultationDetail, 0)
	for _, id := range r.order {
		c := r.consultations[id]
		if c.ClientID == clientID {
			out = append(out, r.detail(c))
		}
	}
	return out, nil
}

func (r *fakeConsultationRepo) Update(_ context.Context, c *entity.Consultation) error {
	cp := *c
	r.consultations[c.ID] = &cp
	return nil
}

func (r *fakeConsultationRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.consultations[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.consultations, id)
	return nil
}

func (r *fakeConsultationRepo) detail(c *entity.Consultation) *repository.ConsultationDetail {
	d := &repository.ConsultationDetail{Consultation: *c}
	if u, ok := r.clients[c.ClientID]; ok {
		d.ClientName = u.Name
		d.ClientEmail = u.Email
		d.ClientCompany = u.Company
	}
	if s, ok := r.services.services[c.ServiceID]; ok {
		d.ServiceName = s.Name
		d.ServiceCategory = s.Category
		d.ServicePrice = s.Price
	}
	return d
}

type fakeReportRepo struct {
	reports map[string]*entity.Report
	order   []string
	clients map[string]*entity.User
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{
		reports: make(map[string]*entity.Report),
		clients: make(map[string]*entity.User),
	}
}

func (r *fakeReportRepo) Create(_ context.Context, rep *entity.Report) error {
	cp := *rep
	r.reports[rep.ID] = &cp
	r.order = append([]string{rep.ID}, r.order...)
	return nil
}

func (r *fakeReportRepo) GetByID(_ context.Context, id string) (*entity.Report, error) {
	rep, ok := r.reports[id]
	if !ok {
		return nil, nil
	}
	cp := *rep
	return &cp, nil
}

func (r *fakeReportRepo) GetDetailByID(_ context.Context, id string) (*repository.ReportDetail, error) {
	rep, ok := r.reports[id]
	if !ok {
		return nil, nil
	}
	return r.detail(rep), nil
}

func (r *fakeReportRepo) ListAll(_ context.Context) ([]*repository.ReportDetail, error) {
	out := make([]*repository.ReportDetail, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.detail(r.reports[id]))
	}
	return out, nil
}

func (r *fakeReportRepo) ListByClient(_ context.Context, clientID string) ([]*repository.ReportDetail, error) {
	out := make([]*repository.ReportDetail, 0)
	for _, id := range r.order {
		rep := r.reports[id]
		if rep.ClientID == clientID {
			out = append(out, r.detail(rep))
		}
	}
	return out, nil
}

func (r *fakeReportRepo) Update(_ context.Context, rep *entity.Report) error {
	cp := *rep
	r.reports[rep.ID] = &cp
	return nil
}

func (r *fakeReportRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.reports[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.reports, id)
	return nil
}

func (r *fakeReportRepo) detail(rep *entity.Report) *repository.ReportDetail {
	d := &repository.ReportDetail{Report: *rep}
	if u, ok := r.clients[rep.ClientID]; ok {
		d.ClientName = u.Name
		d.ClientEmail = u.Email
		d.ClientCompany = u.Company
	}
	return d
}

// fakeNotifier registra las llamadas y puede fallar a demanda.
type fakeNotifier struct {
	mu            sync.Mutex
	fail          bool
	confirmations []string
	alerts        []string
	done          chan struct{}
}

func newFakeNotifier(fail bool) *fakeNotifier {
	return &fakeNotifier{fail: fail, done: make(chan struct{}, 4)}
}

func (n *fakeNotifier) SendReportConfirmation(_ context.Context, toEmail, _, _, _ string) error {
	n.mu.Lock()
	n.confirmations = append(n.confirmations, toEmail)
	n.mu.Unlock()
	n.done <- struct{}{}
	if n.fail {
		return errors.New("smtp: conexión rechazada")
	}
	return nil
}

func (n *fakeNotifier) SendAdminAlert(_ context.Context, _, clientEmail, _ string) error {
	n.mu.Lock()
	n.alerts = append(n.alerts, clientEmail)
	n.mu.Unlock()
	n.done <- struct{}{}
	if n.fail {
		return errors.New("smtp: conexión rechazada")
	}
	return nil
}

func (n *fakeNotifier) wait(count int) {
	for i := 0; i < count; i++ {
		<-n.done
	}
}
