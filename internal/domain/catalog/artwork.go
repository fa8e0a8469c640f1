package catalog

type ListingType string

const (
	ListingSale    ListingType = "sale"
	ListingAuction ListingType = "auction"
)

type Category string

const (
	CategoryAbstract  Category = "Abstract"
	CategoryLandscape Category = "Landscape"
	CategoryPortrait  Category = "Portrait"
	CategoryStillLife Category = "Still Life"
	CategoryDigital   Category = "Digital"
)

// Categories is the fixed label set offered on the upload form.
var Categories = []Category{
	CategoryAbstract,
	CategoryLandscape,
	CategoryPortrait,
	CategoryStillLife,
	CategoryDigital,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Review struct {
	ID      int64  `json:"id" yaml:"id"`
	User    string `json:"user" yaml:"user"`
	Comment string `json:"comment" yaml:"comment"`
}

type Artwork struct {
	ID          int64       `json:"id" yaml:"id"`
	ArtistID    int64       `json:"artistId" yaml:"artistId"`
	Title       string      `json:"title" yaml:"title"`
	Price       int64       `json:"price" yaml:"price"`
	Image       string      `json:"image" yaml:"image"`
	Description string      `json:"description" yaml:"description"`
	Medium      string      `json:"medium" yaml:"medium"`
	Dimensions  string      `json:"dimensions" yaml:"dimensions"`
	Category    Category    `json:"category" yaml:"category"`
	Type        ListingType `json:"type" yaml:"type"`
	Reviews     []Review    `json:"reviews" yaml:"reviews"`
}

func (a Artwork) IsAuction() bool { return a.Type == ListingAuction }

// Clone copies the review slice so the snapshot no longer aliases the catalog.
func (a Artwork) Clone() Artwork {
	out := a
	out.Reviews = append([]Review{}, a.Reviews...)
	return out
}
