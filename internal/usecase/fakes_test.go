package usecase

import (
	"context"
	"fmt"
	"time"

	"toromarket/internal/domain/entity"
	"toromarket/internal/infrastructure/channel"
	"toromarket/pkg/errors"
)

// In-memory repositories mirroring the Firestore adapters' behavior: IDs
// assigned on create, creation timestamps stamped, NOT_FOUND app errors
// for misses.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	var users []*entity.User
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, int64(len(users)), nil
}

type fakeMessageRepo struct {
	messages   []*entity.Message
	seq        int
	failCreate bool
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	if r.failCreate {
		return errors.Internal("Failed to create message", nil)
	}
	r.seq++
	if message.ID == "" {
		message.ID = fmt.Sprintf("msg-%d", r.seq)
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	r.messages = append(r.messages, message)
	return nil
}

func (r *fakeMessageRepo) GetByID(ctx context.Context, id string) (*entity.Message, error) {
	for _, m := range r.messages {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, errors.NotFound("Message", nil)
}

func (r *fakeMessageRepo) Update(ctx context.Context, message *entity.Message) error {
	for i, m := range r.messages {
		if m.ID == message.ID {
			r.messages[i] = message
			return nil
		}
	}
	return errors.NotFound("Message", nil)
}

func (r *fakeMessageRepo) ListConversation(ctx context.Context, userID, otherUserID, listingID string) ([]*entity.Message, error) {
	var out []*entity.Message
	for _, m := range r.messages {
		pair := (m.SenderID == userID && m.RecipientID == otherUserID) ||
			(m.SenderID == otherUserID && m.RecipientID == userID)
		if !pair {
			continue
		}
		if listingID != "" && m.ListingID != listingID {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMessageRepo) ListByParticipant(ctx context.Context, userID string) ([]*entity.Message, error) {
	var out []*entity.Message
	for _, m := range r.messages {
		if m.SenderID == userID || m.RecipientID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) MarkRead(ctx context.Context, recipientID string, ids []string) (int, error) {
	updated := 0
	for _, id := range ids {
		for _, m := range r.messages {
			if m.ID == id && m.RecipientID == recipientID && !m.Read {
				m.Read = true
				updated++
			}
		}
	}
	return updated, nil
}

func (r *fakeMessageRepo) DeleteConversation(ctx context.Context, listingID, userID string) (int, error) {
	var kept []*entity.Message
	deleted := 0
	for _, m := range r.messages {
		if m.ListingID == listingID && (m.SenderID == userID || m.RecipientID == userID) {
			deleted++
			continue
		}
		kept = append(kept, m)
	}
	r.messages = kept
	return deleted, nil
}

func (r *fakeMessageRepo) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	var count int64
	for _, m := range r.messages {
		if m.RecipientID == recipientID && !m.Read {
			count++
		}
	}
	return count, nil
}

type fakeListingRepo struct {
	listings map[string]*entity.Listing
}

func newFakeListingRepo(listings ...*entity.Listing) *fakeListingRepo {
	r := &fakeListingRepo{listings: map[string]*entity.Listing{}}
	for _, l := range listings {
		r.listings[l.ID] = l
	}
	return r
}

func (r *fakeListingRepo) Create(ctx context.Context, listing *entity.Listing) error {
	if listing.ID == "" {
		listing.ID = fmt.Sprintf("listing-%d", len(r.listings)+1)
	}
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = time.Now()
	}
	r.listings[listing.ID] = listing
	return nil
}

func (r *fakeListingRepo) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	if l, ok := r.listings[id]; ok {
		return l, nil
	}
	return nil, errors.NotFound("Listing", nil)
}

func (r *fakeListingRepo) Update(ctx context.Context, listing *entity.Listing) error {
	r.listings[listing.ID] = listing
	return nil
}

func (r *fakeListingRepo) Delete(ctx context.Context, id string) error {
	delete(r.listings, id)
	return nil
}

func (r *fakeListingRepo) List(ctx context.Context, limit, offset int) ([]*entity.Listing, int64, error) {
	var out []*entity.Listing
	for _, l := range r.listings {
		out = append(out, l)
	}
	return out, int64(len(out)), nil
}

func (r *fakeListingRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Listing, error) {
	var out []*entity.Listing
	for _, l := range r.listings {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeNotificationRepo struct {
	notifications []*entity.Notification
	failCreate    bool
}

func (r *fakeNotificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	if r.failCreate {
		return errors.Internal("Failed to create notification", nil)
	}
	if notification.ID == "" {
		notification.ID = fmt.Sprintf("notif-%d", len(r.notifications)+1)
	}
	r.notifications = append(r.notifications, notification)
	return nil
}

func (r *fakeNotificationRepo) ListByRecipient(ctx context.Context, recipientID string, limit, offset int) ([]*entity.Notification, int64, error) {
	var out []*entity.Notification
	for _, n := range r.notifications {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, recipientID string, ids []string) (int, error) {
	updated := 0
	for _, id := range ids {
		for _, n := range r.notifications {
			if n.ID == id && n.RecipientID == recipientID && n.Unread {
				n.Unread = false
				updated++
			}
		}
	}
	return updated, nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
	seq    int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.Order{}}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	r.seq++
	if order.ID == "" {
		order.ID = fmt.Sprintf("order-%d", r.seq)
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	if o, ok := r.orders[id]; ok {
		return o, nil
	}
	return nil, errors.NotFound("Order", nil)
}

func (r *fakeOrderRepo) ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.BuyerID == buyerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.SellerID == sellerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListByListing(ctx context.Context, listingID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.ListingID == listingID {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakePaymentMethodRepo struct {
	methods map[string]*entity.PaymentMethod
}

func newFakePaymentMethodRepo(methods ...*entity.PaymentMethod) *fakePaymentMethodRepo {
	r := &fakePaymentMethodRepo{methods: map[string]*entity.PaymentMethod{}}
	for _, m := range methods {
		r.methods[m.ID] = m
	}
	return r
}

func (r *fakePaymentMethodRepo) Create(ctx context.Context, method *entity.PaymentMethod) error {
	if method.ID == "" {
		method.ID = fmt.Sprintf("pm-%d", len(r.methods)+1)
	}
	r.methods[method.ID] = method
	return nil
}

func (r *fakePaymentMethodRepo) GetByID(ctx context.Context, id string) (*entity.PaymentMethod, error) {
	if m, ok := r.methods[id]; ok {
		return m, nil
	}
	return nil, errors.NotFound("Payment method", nil)
}

func (r *fakePaymentMethodRepo) Update(ctx context.Context, method *entity.PaymentMethod) error {
	r.methods[method.ID] = method
	return nil
}

func (r *fakePaymentMethodRepo) Delete(ctx context.Context, id string) error {
	delete(r.methods, id)
	return nil
}

func (r *fakePaymentMethodRepo) List(ctx context.Context) ([]*entity.PaymentMethod, error) {
	var out []*entity.PaymentMethod
	for _, m := range r.methods {
		out = append(out, m)
	}
	return out, nil
}

type fakeOfferingRepo struct {
	offerings map[string]*entity.Offering
}

func newFakeOfferingRepo(offerings ...*entity.Offering) *fakeOfferingRepo {
	r := &fakeOfferingRepo{offerings: map[string]*entity.Offering{}}
	for _, o := range offerings {
		r.offerings[o.ID] = o
	}
	return r
}

func (r *fakeOfferingRepo) Create(ctx context.Context, offering *entity.Offering) error {
	if offering.ID == "" {
		offering.ID = fmt.Sprintf("off-%d", len(r.offerings)+1)
	}
	r.offerings[offering.ID] = offering
	return nil
}

func (r *fakeOfferingRepo) GetByID(ctx context.Context, id string) (*entity.Offering, error) {
	if o, ok := r.offerings[id]; ok {
		return o, nil
	}
	return nil, errors.NotFound("Offering", nil)
}

func (r *fakeOfferingRepo) GetByIDs(ctx context.Context, ids []string) ([]*entity.Offering, error) {
	var out []*entity.Offering
	for _, id := range ids {
		if o, ok := r.offerings[id]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOfferingRepo) Update(ctx context.Context, offering *entity.Offering) error {
	r.offerings[offering.ID] = offering
	return nil
}

func (r *fakeOfferingRepo) Delete(ctx context.Context, id string) error {
	delete(r.offerings, id)
	return nil
}

func (r *fakeOfferingRepo) List(ctx context.Context) ([]*entity.Offering, error) {
	var out []*entity.Offering
	for _, o := range r.offerings {
		out = append(out, o)
	}
	return out, nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{categories: map[string]*entity.Category{}}
	for _, c := range categories {
		r.categories[c.ID] = c
	}
	return r
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	if category.ID == "" {
		category.ID = fmt.Sprintf("cat-%d", len(r.categories)+1)
	}
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	if c, ok := r.categories[id]; ok {
		return c, nil
	}
	return nil, errors.NotFound("Category", nil)
}

func (r *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id string) error {
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

type fakeReminderRepo struct {
	reminders map[string]*entity.Reminder
	seq       int
}

func newFakeReminderRepo() *fakeReminderRepo {
	return &fakeReminderRepo{reminders: map[string]*entity.Reminder{}}
}

func (r *fakeReminderRepo) Create(ctx context.Context, reminder *entity.Reminder) error {
	r.seq++
	if reminder.ID == "" {
		reminder.ID = fmt.Sprintf("rem-%d", r.seq)
	}
	if reminder.CreatedAt.IsZero() {
		reminder.CreatedAt = time.Now()
	}
	r.reminders[reminder.ID] = reminder
	return nil
}

func (r *fakeReminderRepo) GetByID(ctx context.Context, id string) (*entity.Reminder, error) {
	if rem, ok := r.reminders[id]; ok {
		return rem, nil
	}
	return nil, errors.NotFound("Reminder", nil)
}

func (r *fakeReminderRepo) Update(ctx context.Context, reminder *entity.Reminder) error {
	r.reminders[reminder.ID] = reminder
	return nil
}

func (r *fakeReminderRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Reminder, error) {
	var out []*entity.Reminder
	for _, rem := range r.reminders {
		if rem.UserID == userID && !rem.Deleted {
			out = append(out, rem)
		}
	}
	return out, nil
}

// fakeBroadcaster records deliveries instead of touching sockets.
type broadcastCall struct {
	group   string
	payload []byte
}

type fakeBroadcaster struct {
	calls []broadcastCall
}

func (b *fakeBroadcaster) Join(group string, client *channel.Client)  {}
func (b *fakeBroadcaster) Leave(group string, client *channel.Client) {}

func (b *fakeBroadcaster) Broadcast(group string, payload []byte) {
	b.calls = append(b.calls, broadcastCall{group: group, payload: payload})
}

func (b *fakeBroadcaster) groups() []string {
	var out []string
	for _, c := range b.calls {
		out = append(out, c.group)
	}
	return out
}

type fakeEmailService struct {
	sent int
	fail bool
}

func (s *fakeEmailService) SendOrderConfirmation(ctx context.Context, buyer *entity.User, order *entity.Order, listing *entity.Listing, method *entity.PaymentMethod) error {
	if s.fail {
		return fmt.Errorf("smtp unreachable")
	}
	s.sent++
	return nil
}
