package domain

type ActivityCategory string

const (
	CategoryNautique ActivityCategory = "nautique"
	CategoryCulturel ActivityCategory = "culturel"
	CategoryNature   ActivityCategory = "nature"
	CategoryAventure ActivityCategory = "aventure"
)

var ActivityCategories = []ActivityCategory{CategoryNautique, CategoryNature, CategoryCulturel, CategoryAventure}

type Difficulty string

const (
	DifficultyEasy     Difficulty = "facile"
	DifficultyModerate Difficulty = "modéré"
	DifficultyHard     Difficulty = "difficile"
)

var Difficulties = []Difficulty{DifficultyEasy, DifficultyModerate, DifficultyHard}

type Activity struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Category    ActivityCategory `json:"category"`
	Price       int64            `json:"price"` // FCFA per person
	Image       string           `json:"image"`
	Duration    string           `json:"duration"`
	Description string           `json:"description"`
	Includes    []string         `json:"includes"`
	Difficulty  Difficulty       `json:"difficulty"`
	Featured    bool             `json:"featured,omitempty"`
}
