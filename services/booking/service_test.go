package booking

import (
	"context"
	"testing"
	"time"

	bookingRepo "courtside/database/repository/booking"
	"courtside/models"
	"courtside/services/slotengine"
)

// --- in-memory fakes ---

type fakeCourtRepo struct{ court models.Court }

func (f *fakeCourtRepo) Create(ctx context.Context, c *models.Court) error { return nil }
func (f *fakeCourtRepo) GetByID(ctx context.Context, id string) (*models.Court, error) {
	c := f.court
	return &c, nil
}
func (f *fakeCourtRepo) GetByVenue(ctx context.Context, venueID string) ([]models.Court, error) {
	return []models.Court{f.court}, nil
}
func (f *fakeCourtRepo) Update(ctx context.Context, c *models.Court) error { return nil }
func (f *fakeCourtRepo) SetPriceRules(ctx context.Context, id string, rules []models.PriceRule) error {
	return nil
}
func (f *fakeCourtRepo) SetBlockedRules(ctx context.Context, id string, rules []models.UnavailabilityRule) error {
	return nil
}
func (f *fakeCourtRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeVenueRepo struct{ venue models.Venue }

func (f *fakeVenueRepo) Create(ctx context.Context, v *models.Venue) error { return nil }
func (f *fakeVenueRepo) GetByID(ctx context.Context, id string) (*models.Venue, error) {
	v := f.venue
	return &v, nil
}
func (f *fakeVenueRepo) List(ctx context.Context, city string) ([]models.Venue, error) {
	return []models.Venue{f.venue}, nil
}
func (f *fakeVenueRepo) Update(ctx context.Context, v *models.Venue) error { return nil }
func (f *fakeVenueRepo) SetOpeningHours(ctx context.Context, id string, hours map[string]models.DayHours) error {
	return nil
}
func (f *fakeVenueRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeGlobalRepo struct{ rules []models.GlobalPriceRule }

func (f *fakeGlobalRepo) Create(ctx context.Context, r *models.GlobalPriceRule) error { return nil }
func (f *fakeGlobalRepo) List(ctx context.Context) ([]models.GlobalPriceRule, error) {
	return f.rules, nil
}
func (f *fakeGlobalRepo) GetActive(ctx context.Context) ([]models.GlobalPriceRule, error) {
	var active []models.GlobalPriceRule
	for _, r := range f.rules {
		if r.IsActive {
			active = append(active, r)
		}
	}
	return active, nil
}
func (f *fakeGlobalRepo) SetActive(ctx context.Context, id string, active bool) error { return nil }
func (f *fakeGlobalRepo) Update(ctx context.Context, r *models.GlobalPriceRule) error { return nil }
func (f *fakeGlobalRepo) Delete(ctx context.Context, id string) error                 { return nil }

type fakeBookingRepo struct {
	bookings []models.Booking
}

func (f *fakeBookingRepo) CreateWithConflictCheck(ctx context.Context, b *models.Booking, revalidate bookingRepo.RevalidateFunc) error {
	if err := revalidate(f.active(b.CourtID, b.Date)); err != nil {
		return err
	}
	f.bookings = append(f.bookings, *b)
	return nil
}
func (f *fakeBookingRepo) active(courtID, date string) []models.Booking {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.CourtID == courtID && b.Date == date && b.Status != models.BookingCancelled {
			out = append(out, b)
		}
	}
	return out
}
func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			return &f.bookings[i], nil
		}
	}
	return nil, bookingRepo.ErrDuplicateSlot
}
func (f *fakeBookingRepo) GetActiveByCourtAndDate(ctx context.Context, courtID, date string) ([]models.Booking, error) {
	return f.active(courtID, date), nil
}
func (f *fakeBookingRepo) GetByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return f.bookings, nil
}
func (f *fakeBookingRepo) GetByCourt(ctx context.Context, courtID string) ([]models.Booking, error) {
	return f.bookings, nil
}
func (f *fakeBookingRepo) GetUpcoming(ctx context.Context, date string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) SetStatus(ctx context.Context, id, status string) error { return nil }
func (f *fakeBookingRepo) Cancel(ctx context.Context, id string) error {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].Status = models.BookingCancelled
		}
	}
	return nil
}

type memQuoteStore struct{ quotes map[string]models.Quote }

func newMemQuoteStore() *memQuoteStore {
	return &memQuoteStore{quotes: make(map[string]models.Quote)}
}
func (m *memQuoteStore) Save(ctx context.Context, q *models.Quote, ttl time.Duration) error {
	m.quotes[q.QuoteID] = *q
	return nil
}
func (m *memQuoteStore) Get(ctx context.Context, id string) (*models.Quote, error) {
	q, ok := m.quotes[id]
	if !ok {
		return nil, ErrQuoteNotFound
	}
	return &q, nil
}
func (m *memQuoteStore) Delete(ctx context.Context, id string) error {
	delete(m.quotes, id)
	return nil
}

func newTestService(existing []models.Booking) (*DefaultBookingService, *fakeBookingRepo) {
	repo := &fakeBookingRepo{bookings: existing}
	svc := &DefaultBookingService{
		CourtRepo: &fakeCourtRepo{court: models.Court{
			ID: "court-1", VenueID: "venue-1", PricePerHour: 100,
			PriceRules: []models.PriceRule{
				{Dates: []string{"2026-02-23"}, SlotFrom: "10:00", SlotTo: "12:00", Price: 150},
			},
		}},
		VenueRepo: &fakeVenueRepo{venue: models.Venue{
			ID: "venue-1", Name: "Arena", Currency: "INR",
			OpeningHours: map[string]models.DayHours{
				"monday": {IsActive: true, Open: "08:00", Close: "22:00"},
			},
		}},
		GlobalRepo: &fakeGlobalRepo{rules: []models.GlobalPriceRule{
			{ID: "global-1", IsActive: true, Rule: models.PriceRule{
				Days: []string{"mon"}, SlotFrom: "08:00", SlotTo: "10:00", Price: 90,
			}},
		}},
		BookingRepo: repo,
		Quotes:      newMemQuoteStore(),
	}
	return svc, repo
}

// --- tests ---

func TestGetAvailabilityEndToEnd(t *testing.T) {
	existing := []models.Booking{
		{ID: "b-1", CourtID: "court-1", Date: "2026-02-23", Status: models.BookingConfirmed,
			TimeSlots: []models.BookedSlot{{StartTime: "11:00", Hour: 11}}},
	}
	svc, _ := newTestService(existing)

	slots, err := svc.GetAvailability(context.Background(), "court-1", "2026-02-23")
	if err != nil {
		t.Fatalf("GetAvailability: %v", err)
	}

	byTime := make(map[string]models.AvailableSlot)
	for _, s := range slots {
		byTime[s.Time] = s
	}

	if s := byTime["08:00"]; s.Price != 90 {
		t.Errorf("08:00 price = %v, want 90 (global rule)", s.Price)
	}
	if s := byTime["10:00"]; s.Price != 150 {
		t.Errorf("10:00 price = %v, want 150 (court date rule)", s.Price)
	}
	if _, ok := byTime["11:00"]; ok {
		t.Error("11:00 is booked and must be absent from availability")
	}
	if s := byTime["12:00"]; s.Price != 100 {
		t.Errorf("12:00 price = %v, want base 100", s.Price)
	}
	if _, ok := byTime["22:00"]; ok {
		t.Error("22:00 is outside operating hours")
	}
	if s := byTime["08:00"]; s.DisplayTime != "08:00 AM" {
		t.Errorf("display time = %q", s.DisplayTime)
	}
}

func TestGetAvailabilityClosedDay(t *testing.T) {
	svc, _ := newTestService(nil)
	// 2026-02-24 is a Tuesday; only monday is configured.
	slots, err := svc.GetAvailability(context.Background(), "court-1", "2026-02-24")
	if err != nil {
		t.Fatalf("GetAvailability: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("closed day must return no slots, got %d", len(slots))
	}
}

func TestCreateBookingConflict(t *testing.T) {
	existing := []models.Booking{
		{ID: "b-1", CourtID: "court-1", Date: "2026-02-23", Status: models.BookingConfirmed,
			TimeSlots: []models.BookedSlot{{StartTime: "10:00", Hour: 10}}},
	}
	svc, _ := newTestService(existing)

	_, err := svc.CreateBooking(context.Background(), BookingRequest{
		CourtID: "court-1", Date: "2026-02-23", Hours: []string{"10:00"}, Players: 2, UserID: "u-1",
	})
	if !slotengine.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	svc, repo := newTestService(nil)

	booking, err := svc.CreateBooking(context.Background(), BookingRequest{
		CourtID: "court-1", Date: "2026-02-23", Hours: []string{"10:00", "11:00"}, Players: 2, UserID: "u-1",
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	// 10:00 @150 and 11:00 @150 (court date rule), 2 players.
	if booking.TotalPrice != (150+150)*2 {
		t.Errorf("total = %v, want %v", booking.TotalPrice, (150+150)*2)
	}
	if len(repo.bookings) != 1 {
		t.Fatalf("booking not persisted")
	}
	if got := repo.bookings[0].Hours; len(got) != 2 || got[0] != 10 || got[1] != 11 {
		t.Errorf("persisted hours = %v", got)
	}

	// The just-created booking now blocks a second attempt.
	_, err = svc.CreateBooking(context.Background(), BookingRequest{
		CourtID: "court-1", Date: "2026-02-23", Hours: []string{"11:00"}, Players: 1, UserID: "u-2",
	})
	if !slotengine.IsConflict(err) {
		t.Fatalf("expected conflict on second booking, got %v", err)
	}
}

func TestCreateBookingClosedHourRejected(t *testing.T) {
	svc, _ := newTestService(nil)
	_, err := svc.CreateBooking(context.Background(), BookingRequest{
		CourtID: "court-1", Date: "2026-02-23", Hours: []string{"23:00"}, Players: 1, UserID: "u-1",
	})
	if slotengine.ErrorCode(err) != slotengine.CodeVenueClosed {
		t.Fatalf("expected venueClosed, got %v", err)
	}
}

func TestQuoteThenBookChargesQuotedPrice(t *testing.T) {
	svc, repo := newTestService(nil)
	ctx := context.Background()

	quote, err := svc.QuoteBooking(ctx, BookingRequest{
		CourtID: "court-1", Date: "2026-02-23", Hours: []string{"09:00 AM"}, Players: 3, UserID: "u-1",
	})
	if err != nil {
		t.Fatalf("QuoteBooking: %v", err)
	}
	// 09:00 takes the global rule price 90, 3 players.
	if quote.TotalPrice != 90*3 {
		t.Errorf("quote total = %v, want %v", quote.TotalPrice, 90*3)
	}

	booking, err := svc.CreateBookingFromQuote(ctx, quote.QuoteID, "u-1")
	if err != nil {
		t.Fatalf("CreateBookingFromQuote: %v", err)
	}
	if booking.TotalPrice != quote.TotalPrice {
		t.Errorf("charged %v but quoted %v", booking.TotalPrice, quote.TotalPrice)
	}
	if len(repo.bookings) != 1 || repo.bookings[0].Hours[0] != 9 {
		t.Errorf("12-hour spelling must book hour 9, got %+v", repo.bookings)
	}

	// Quote is consumed.
	if _, err := svc.CreateBookingFromQuote(ctx, quote.QuoteID, "u-1"); err == nil {
		t.Error("consumed quote must not be reusable")
	}
}

func TestQuotePinsPriceAcrossRuleChange(t *testing.T) {
	svc, repo := newTestService(nil)
	ctx := context.Background()

	quote, err := svc.QuoteBooking(ctx, BookingRequest{
		CourtID: "court-1", Date: "2026-02-23", Hours: []string{"10:00"}, Players: 1, UserID: "u-1",
	})
	if err != nil {
		t.Fatalf("QuoteBooking: %v", err)
	}
	if quote.TotalPrice != 150 {
		t.Fatalf("quote total = %v, want 150", quote.TotalPrice)
	}

	// An admin edits the rule while the quote is still valid.
	svc.CourtRepo.(*fakeCourtRepo).court.PriceRules[0].Price = 500

	booking, err := svc.CreateBookingFromQuote(ctx, quote.QuoteID, "u-1")
	if err != nil {
		t.Fatalf("CreateBookingFromQuote: %v", err)
	}
	if booking.TotalPrice != quote.TotalPrice {
		t.Errorf("charged %v but quoted %v; the quote must pin the price", booking.TotalPrice, quote.TotalPrice)
	}
	if repo.bookings[0].TotalPrice != 150 {
		t.Errorf("persisted total = %v, want the quoted 150", repo.bookings[0].TotalPrice)
	}
}

func TestCancelBookingReleasesSlot(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, BookingRequest{
		CourtID: "court-1", Date: "2026-02-23", Hours: []string{"14:00"}, Players: 1, UserID: "u-1",
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if err := svc.CancelBooking(ctx, booking.ID, "u-1"); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}

	if _, err := svc.CreateBooking(ctx, BookingRequest{
		CourtID: "court-1", Date: "2026-02-23", Hours: []string{"14:00"}, Players: 1, UserID: "u-2",
	}); err != nil {
		t.Errorf("cancelled slot should be bookable again, got %v", err)
	}
}

func TestCancelBookingWrongUser(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, BookingRequest{
		CourtID: "court-1", Date: "2026-02-23", Hours: []string{"15:00"}, Players: 1, UserID: "u-1",
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if err := svc.CancelBooking(ctx, booking.ID, "someone-else"); err == nil {
		t.Error("cancel by non-owner must fail")
	}
}
