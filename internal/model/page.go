package model

// Page identifies which view the client should render. The set is closed:
// anything else normalizes to the landing page at parse time.
type Page string

const (
	PageLanding           Page = "landing"
	PageSignIn            Page = "signin"
	PageSignUp            Page = "signup"
	PageFarmerDashboard   Page = "farmer-dashboard"
	PageBuyerDashboard    Page = "buyer-dashboard"
	PageMarket            Page = "market"
	PageProductManagement Page = "product-management"
	PageCart              Page = "cart"
	PageOrders            Page = "orders"
	PageProfile           Page = "profile"
)

var knownPages = map[Page]struct{}{
	PageLanding:           {},
	PageSignIn:            {},
	PageSignUp:            {},
	PageFarmerDashboard:   {},
	PageBuyerDashboard:    {},
	PageMarket:            {},
	PageProductManagement: {},
	PageCart:              {},
	PageOrders:            {},
	PageProfile:           {},
}

// ParsePage maps a page label to its Page value. Unknown labels fall back
// to the landing page rather than producing an invalid state.
func ParsePage(s string) Page {
	if _, ok := knownPages[Page(s)]; ok {
		return Page(s)
	}
	return PageLanding
}

// DashboardFor returns the dashboard page matching a role.
func DashboardFor(role Role) Page {
	if role == RoleFarmer {
		return PageFarmerDashboard
	}
	return PageBuyerDashboard
}
