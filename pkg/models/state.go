package models

// State is the complete application aggregate. All collections are owned by
// the state container; every mutation flows through a dispatched action and
// produces a fresh aggregate, so snapshots held by readers stay valid.
//
// Authenticated and AdminAuthenticated are separate trust domains: the
// customer flag tracks CurrentUser, the admin flag is set directly after the
// shared-password check.
type State struct {
	Products           []Product        `json:"products"`
	Cart               []CartItem       `json:"cart"`
	Orders             []Order          `json:"orders"`
	HeroSlides         []HeroSlide      `json:"hero_slides"`
	Users              []User           `json:"users"`
	Requests           []ProductRequest `json:"requests"`
	CurrentUser        *User            `json:"current_user,omitempty"`
	Authenticated      bool             `json:"authenticated"`
	AdminAuthenticated bool             `json:"admin_authenticated"`
}
