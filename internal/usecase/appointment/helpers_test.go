package appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Math-l7/scheduling-modular-api/internal/audit"
	"github.com/Math-l7/scheduling-modular-api/internal/clock"
	domain "github.com/Math-l7/scheduling-modular-api/internal/domain/appointment"
	"github.com/Math-l7/scheduling-modular-api/internal/infra/lock"
	"github.com/Math-l7/scheduling-modular-api/internal/infra/repository"
	"github.com/Math-l7/scheduling-modular-api/internal/logging"
)

const (
	businessID   uint = 1
	staffID      uint = 10
	staffUserID  uint = 100
	serviceID    uint = 20
	clientUserID uint = 500
)

var (
	client   = domain.Actor{ID: clientUserID, Role: domain.RoleClient}
	barber   = domain.Actor{ID: staffUserID, Role: domain.RoleStaff}
	stranger = domain.Actor{ID: 999, Role: domain.RoleStaff}

	// Wednesday; 2026-10-19 is the following Monday.
	now = time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
)

func monday(hm string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", "2026-10-19 "+hm, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

type recorder struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recorder) Dispatch(ev audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Action)
	}
	return out
}

type fixture struct {
	repo     *repository.MemoryRepository
	rec      *recorder
	create   *CreateAppointment
	cancel   *CancelAppointment
	complete *CompleteAppointment
	get      *GetAppointment
	list     *ListAppointments
	avail    *GetAvailability
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := repository.NewMemoryRepository()
	repo.PutBusiness(domain.Business{ID: businessID, Name: "Corte Fino", Type: domain.BusinessBarbershop, Active: true})
	repo.PutStaff(domain.Staff{ID: staffID, PublicName: "Leo", BusinessID: businessID, UserID: staffUserID, Active: true})
	repo.PutService(domain.Service{
		ID:              serviceID,
		Name:            "Haircut",
		DurationMinutes: 30,
		Price:           decimal.NewFromInt(40),
		BusinessID:      businessID,
		Active:          true,
	})

	wh, err := domain.NewWorkingHours(businessID, time.Monday, domain.MustTimeOfDay("08:00"), domain.MustTimeOfDay("18:00"))
	if err != nil {
		t.Fatalf("working hours: %v", err)
	}
	repo.PutWorkingHours(wh)

	rec := &recorder{}
	clk := clock.Fixed(now)
	logger := logging.Discard()

	return &fixture{
		repo:     repo,
		rec:      rec,
		create:   NewCreateAppointment(repo, lock.NewLocal(), domain.BarberShopPolicy{}, clk, rec, logger),
		cancel:   NewCancelAppointment(repo, clk, rec, logger),
		complete: NewCompleteAppointment(repo, clk, rec, logger),
		get:      NewGetAppointment(repo),
		list:     NewListAppointments(repo),
		avail:    NewGetAvailability(repo, clk),
	}
}

func (f *fixture) book(t *testing.T, hm string) domain.Appointment {
	t.Helper()
	ap, err := f.create.Execute(context.Background(), client, CreateInput{
		BusinessID: businessID,
		StaffID:    staffID,
		ServiceID:  serviceID,
		Start:      monday(hm),
	})
	if err != nil {
		t.Fatalf("book %s: %v", hm, err)
	}
	return ap
}

func wantKind(t *testing.T, err error, kind domain.Kind) {
	t.Helper()
	got, ok := domain.KindOf(err)
	if !ok {
		t.Fatalf("expected %s, got %v", kind, err)
	}
	if got != kind {
		t.Fatalf("expected %s, got %s (%v)", kind, got, err)
	}
}
