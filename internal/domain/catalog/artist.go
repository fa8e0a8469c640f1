package catalog

// UnknownArtist is shown when an artwork points at an artist that is not in the catalog.
const UnknownArtist = "Unknown Artist"

type Artist struct {
	ID           int64  `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	ProfileImage string `json:"profileImage" yaml:"profileImage"`
	Bio          string `json:"bio" yaml:"bio"`
}

type Exhibition struct {
	ID          int64  `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Date        string `json:"date" yaml:"date"`
	Description string `json:"description" yaml:"description"`
	Image       string `json:"image" yaml:"image"`
}
