package nav

type Page string

const (
	PageHome            Page = "home"
	PageGallery         Page = "gallery"
	PageArtists         Page = "artists"
	PageExhibitions     Page = "exhibitions"
	PageCart            Page = "cart"
	PageCheckout        Page = "checkout"
	PageUpload          Page = "upload"
	PageFavorites       Page = "favorites"
	PageDetails         Page = "details"
	PageArtistProfile   Page = "artistProfile"
	PageArtistDashboard Page = "artistDashboard"
	PageBuyerDashboard  Page = "buyerDashboard"
)

var pages = map[string]Page{
	string(PageHome):            PageHome,
	string(PageGallery):         PageGallery,
	string(PageArtists):         PageArtists,
	string(PageExhibitions):     PageExhibitions,
	string(PageCart):            PageCart,
	string(PageCheckout):        PageCheckout,
	string(PageUpload):          PageUpload,
	string(PageFavorites):       PageFavorites,
	string(PageDetails):         PageDetails,
	string(PageArtistProfile):   PageArtistProfile,
	string(PageArtistDashboard): PageArtistDashboard,
	string(PageBuyerDashboard):  PageBuyerDashboard,
}

// ParsePage maps a page tag to its Page; unrecognised tags land on home.
func ParsePage(tag string) Page {
	if p, ok := pages[tag]; ok {
		return p
	}
	return PageHome
}

type Modal string

const (
	ModalNone   Modal = ""
	ModalLogin  Modal = "login"
	ModalSignup Modal = "signup"
)

func ParseModal(tag string) (Modal, bool) {
	switch Modal(tag) {
	case ModalLogin, ModalSignup:
		return Modal(tag), true
	}
	return ModalNone, false
}
