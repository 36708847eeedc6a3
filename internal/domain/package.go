package domain

type PackageType string

const (
	PackageRomantic  PackageType = "romantique"
	PackageFamily    PackageType = "famille"
	PackageAdventure PackageType = "aventure"
	PackageLuxury    PackageType = "luxe"
)

var PackageTypes = []PackageType{PackageRomantic, PackageFamily, PackageAdventure, PackageLuxury}

type Package struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Type        PackageType `json:"type"`
	Price       int64       `json:"price"`
	Image       string      `json:"image"`
	Duration    string      `json:"duration"`
	Description string      `json:"description"`
	Includes    []string    `json:"includes"`
	Persons     string      `json:"persons"` // free text, e.g. "2 adultes + 2 enfants"
	Featured    bool        `json:"featured,omitempty"`
	Badge       *string     `json:"badge,omitempty"`
}
