package entity

// Session is the per-request session state carried in a signed cookie.
// It is the only cross-request state outside the database: the identity of
// a logged-in user, the pending cart, and any guest checkout records.
type Session struct {
	UserID   uint         `json:"userId,omitempty"` // 0 while not logged in.
	Username string       `json:"username,omitempty"`
	Cart     Cart         `json:"cart,omitempty"`
	Orders   []GuestOrder `json:"orders,omitempty"` // Guest checkouts only.
}

// LoggedIn reports whether the session belongs to an authenticated user.
func (s *Session) LoggedIn() bool {
	return s.UserID != 0
}

// Clear wipes the whole session, cart and guest orders included. Logout
// uses this; a guest's purchase history does not survive it.
func (s *Session) Clear() {
	*s = Session{}
}

// GuestOrderByTimestamp looks up a guest order by its pseudo-id.
func (s *Session) GuestOrderByTimestamp(timestamp int64) (GuestOrder, bool) {
	for _, o := range s.Orders {
		if o.Timestamp == timestamp {
			return o, true
		}
	}

	return GuestOrder{}, false
}

// AppendGuestOrder records a guest checkout of the given items.
func (s *Session) AppendGuestOrder(items []uint, timestamp int64) {
	copied := make([]uint, len(items))
	copy(copied, items)
	s.Orders = append(s.Orders, GuestOrder{Items: copied, Timestamp: timestamp})
}
