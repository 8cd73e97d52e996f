// Package modals owns which dialog the client should show. A Coordinator is
// a plain value passed to whoever needs it; there are no package globals.
package modals

type Kind string

const (
	KindNone     Kind = ""
	KindLogin    Kind = "login"
	KindRegister Kind = "register"
	KindRent     Kind = "rent"
)

// Coordinator keeps at most one modal open at a time.
type Coordinator struct {
	open Kind
}

func (c *Coordinator) Open(k Kind) {
	c.open = k
}

// Close closes k if it is the open modal.
func (c *Coordinator) Close(k Kind) {
	if c.open == k {
		c.open = KindNone
	}
}

func (c *Coordinator) IsOpen(k Kind) bool {
	return k != KindNone && c.open == k
}

func (c *Coordinator) Current() Kind {
	return c.open
}

// ToggleAuth swaps between the login and register dialogs.
func (c *Coordinator) ToggleAuth() {
	switch c.open {
	case KindLogin:
		c.open = KindRegister
	case KindRegister:
		c.open = KindLogin
	}
}

// OnRent sends anonymous visitors to login and hosts to the rent wizard.
func (c *Coordinator) OnRent(signedIn bool) Kind {
	if !signedIn {
		c.Open(KindLogin)
	} else {
		c.Open(KindRent)
	}
	return c.open
}

type MenuItem struct {
	Label  string `json:"label"`
	Action string `json:"action"`
}

const (
	ActionTrips        = "trips"
	ActionFavorites    = "favorites"
	ActionReservations = "reservations"
	ActionProperties   = "properties"
	ActionRent         = "rent"
	ActionLogout       = "logout"
	ActionLogin        = "login"
	ActionRegister     = "register"
)

// Menu returns the user menu entries for a signed in or anonymous visitor.
func Menu(signedIn bool) []MenuItem {
	if !signedIn {
		return []MenuItem{
			{Label: "Login", Action: ActionLogin},
			{Label: "Sign up", Action: ActionRegister},
		}
	}
	return []MenuItem{
		{Label: "My Trips", Action: ActionTrips},
		{Label: "My Favourites", Action: ActionFavorites},
		{Label: "My Reservations", Action: ActionReservations},
		{Label: "My Properties", Action: ActionProperties},
		{Label: "Airbnb my home", Action: ActionRent},
		{Label: "Logout", Action: ActionLogout},
	}
}
